package handler

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-playground/validator/v10"

	communitydomain "visionx-go/internal/domain/community"
	coachingdomain "visionx-go/internal/domain/coaching"
	tournamentdomain "visionx-go/internal/domain/tournament"
	userdomain "visionx-go/internal/domain/user"
	"visionx-go/internal/domain/validation"
)

type errorEnvelope struct {
	Error errorBody `json:"error"`
}

type errorBody struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

func writeError(w http.ResponseWriter, status int, code, message string) {
	writeJSON(w, status, errorEnvelope{Error: errorBody{Code: code, Message: message}})
}

func writeJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(payload)
}

func decodeJSON(r *http.Request, dst interface{}) error {
	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()
	return dec.Decode(dst)
}

// decodeValid decodes the body and runs struct validation; it writes the
// error response itself and reports whether the handler should continue.
func (h *Handlers) decodeValid(w http.ResponseWriter, r *http.Request, dst interface{}) bool {
	if err := decodeJSON(r, dst); err != nil {
		writeError(w, http.StatusBadRequest, "invalid_json", "invalid json body")
		return false
	}
	if err := h.validate.Struct(dst); err != nil {
		writeError(w, http.StatusBadRequest, "invalid_request", validationMessage(err))
		return false
	}
	return true
}

func validationMessage(err error) string {
	var fieldErrs validator.ValidationErrors
	if errors.As(err, &fieldErrs) && len(fieldErrs) > 0 {
		first := fieldErrs[0]
		return first.Field() + " failed on " + first.Tag()
	}
	return "invalid request"
}

// serviceError maps a domain error to a response. Everything unknown is a 500
// logged as internal; known business errors are logged at warn level with the
// status they map to.
func (h *Handlers) serviceError(w http.ResponseWriter, op string, err error, args ...any) {
	if v, ok := validation.AsError(err); ok {
		h.log.BusinessError(op+": invalid input", err, args...)
		writeError(w, http.StatusBadRequest, "invalid_request", v.Message)
		return
	}

	status, code := classifyError(err)
	if status == http.StatusInternalServerError {
		h.log.InternalError(op+": unexpected error", err, args...)
		writeError(w, status, "internal_error", "internal error")
		return
	}

	h.log.BusinessError(op+": "+code, err, args...)
	writeError(w, status, code, err.Error())
}

func classifyError(err error) (int, string) {
	switch {
	case errors.Is(err, userdomain.ErrInvalidCredentials):
		return http.StatusUnauthorized, "invalid_credentials"
	case errors.Is(err, userdomain.ErrInvalidToken):
		return http.StatusUnauthorized, "invalid_token"

	case errors.Is(err, userdomain.ErrNotAdmin),
		errors.Is(err, tournamentdomain.ErrNotCaptain),
		errors.Is(err, tournamentdomain.ErrNotAllowed),
		errors.Is(err, communitydomain.ErrNotAllowed):
		return http.StatusForbidden, "forbidden"

	case errors.Is(err, userdomain.ErrUserNotFound):
		return http.StatusNotFound, "user_not_found"
	case errors.Is(err, coachingdomain.ErrChildNotFound):
		return http.StatusNotFound, "child_not_found"
	case errors.Is(err, coachingdomain.ErrSessionNotFound):
		return http.StatusNotFound, "session_not_found"
	case errors.Is(err, coachingdomain.ErrAttendanceNotFound):
		return http.StatusNotFound, "attendance_not_found"
	case errors.Is(err, coachingdomain.ErrHomeVisitNotFound):
		return http.StatusNotFound, "home_visit_not_found"
	case errors.Is(err, coachingdomain.ErrAssessmentNotFound):
		return http.StatusNotFound, "assessment_not_found"
	case errors.Is(err, coachingdomain.ErrActivityNotFound):
		return http.StatusNotFound, "activity_not_found"
	case errors.Is(err, coachingdomain.ErrNotRegistered):
		return http.StatusNotFound, "not_registered"
	case errors.Is(err, tournamentdomain.ErrTournamentNotFound):
		return http.StatusNotFound, "tournament_not_found"
	case errors.Is(err, tournamentdomain.ErrTeamNotFound):
		return http.StatusNotFound, "team_not_found"
	case errors.Is(err, tournamentdomain.ErrMatchNotFound):
		return http.StatusNotFound, "match_not_found"
	case errors.Is(err, tournamentdomain.ErrRegistrationNotFound):
		return http.StatusNotFound, "registration_not_found"
	case errors.Is(err, tournamentdomain.ErrSpiritScoreNotFound):
		return http.StatusNotFound, "spirit_score_not_found"
	case errors.Is(err, communitydomain.ErrThreadNotFound):
		return http.StatusNotFound, "thread_not_found"
	case errors.Is(err, communitydomain.ErrReplyNotFound):
		return http.StatusNotFound, "reply_not_found"
	case errors.Is(err, communitydomain.ErrResourceNotFound):
		return http.StatusNotFound, "resource_not_found"

	case errors.Is(err, userdomain.ErrUsernameTaken):
		return http.StatusConflict, "username_taken"
	case errors.Is(err, coachingdomain.ErrDuplicateAttendance):
		return http.StatusConflict, "duplicate_attendance"
	case errors.Is(err, tournamentdomain.ErrDuplicateRegistration):
		return http.StatusConflict, "duplicate_registration"
	case errors.Is(err, tournamentdomain.ErrTeamNameTaken):
		return http.StatusConflict, "team_name_taken"

	case errors.Is(err, coachingdomain.ErrNotACoach),
		errors.Is(err, tournamentdomain.ErrPlayerNotFound),
		errors.Is(err, tournamentdomain.ErrNotEnoughTeams):
		return http.StatusBadRequest, "invalid_request"
	}
	return http.StatusInternalServerError, "internal_error"
}
