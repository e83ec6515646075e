package tournament

import "errors"

var (
	ErrTournamentNotFound    = errors.New("tournament not found")
	ErrTeamNotFound          = errors.New("team not found")
	ErrMatchNotFound         = errors.New("match not found")
	ErrRegistrationNotFound  = errors.New("registration not found")
	ErrSpiritScoreNotFound   = errors.New("spirit score not found")
	ErrTeamNameTaken         = errors.New("team name already taken")
	ErrNotCaptain            = errors.New("you are not the captain of this team")
	ErrPlayerNotFound        = errors.New("no user with that username")
	ErrDuplicateRegistration = errors.New("player already registered for this tournament")
	ErrNotEnoughTeams        = errors.New("need at least 2 teams to generate a schedule")
	ErrNotAllowed            = errors.New("not allowed")
)
