package coaching

import "errors"

var (
	ErrChildNotFound       = errors.New("child profile not found")
	ErrSessionNotFound     = errors.New("session not found")
	ErrAttendanceNotFound  = errors.New("attendance record not found")
	ErrHomeVisitNotFound   = errors.New("home visit not found")
	ErrAssessmentNotFound  = errors.New("assessment not found")
	ErrActivityNotFound    = errors.New("coach activity not found")
	ErrDuplicateAttendance = errors.New("attendance already recorded for this child and session")
	ErrNotACoach           = errors.New("assigned coach must have the COACH role")
	ErrNotRegistered       = errors.New("not registered in the coaching program")
)
