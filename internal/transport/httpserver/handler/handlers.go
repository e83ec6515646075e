package handler

import (
	"net/http"

	"github.com/go-playground/validator/v10"

	coachingdomain "visionx-go/internal/domain/coaching"
	communitydomain "visionx-go/internal/domain/community"
	reportsdomain "visionx-go/internal/domain/reports"
	tournamentdomain "visionx-go/internal/domain/tournament"
	userdomain "visionx-go/internal/domain/user"
	"visionx-go/pkg/logger"
)

type Handlers struct {
	Users       *userdomain.Service
	Coaching    *coachingdomain.Service
	Tournaments *tournamentdomain.Service
	Community   *communitydomain.Service
	Reports     *reportsdomain.Service

	log      logger.Logger
	validate *validator.Validate
}

func New(
	users *userdomain.Service,
	coaching *coachingdomain.Service,
	tournaments *tournamentdomain.Service,
	community *communitydomain.Service,
	reports *reportsdomain.Service,
	log logger.Logger,
) *Handlers {
	return &Handlers{
		Users:       users,
		Coaching:    coaching,
		Tournaments: tournaments,
		Community:   community,
		Reports:     reports,
		log:         log,
		validate:    validator.New(),
	}
}

func (h *Handlers) Health(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}
