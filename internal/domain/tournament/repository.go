package tournament

import "context"

type Repository interface {
	Transaction(ctx context.Context, fn func(Repository) error) error

	GetUserIDByUsername(ctx context.Context, username string) (string, error)

	ListTournaments(ctx context.Context) ([]Tournament, error)
	GetTournament(ctx context.Context, id string) (*Tournament, error)
	CreateTournament(ctx context.Context, tournament *Tournament) error
	SaveTournament(ctx context.Context, tournament *Tournament) error
	DeleteTournament(ctx context.Context, id string) error

	ListTeams(ctx context.Context) ([]Team, error)
	GetTeam(ctx context.Context, id string) (*Team, error)
	CreateTeam(ctx context.Context, team *Team) error
	SaveTeam(ctx context.Context, team *Team) error
	DeleteTeam(ctx context.Context, id string) error

	// RegisteredTeams returns the distinct teams holding at least one
	// registration for the tournament, ordered by when each team first
	// registered. Schedule generation relies on this order being stable.
	RegisteredTeams(ctx context.Context, tournamentID string) ([]Team, error)

	ListRegistrations(ctx context.Context) ([]PlayerRegistration, error)
	GetRegistration(ctx context.Context, id string) (*PlayerRegistration, error)
	ListRegistrationsByPlayer(ctx context.Context, playerID string) ([]PlayerRegistration, error)
	ListRegistrationsByTeam(ctx context.Context, teamID string) ([]PlayerRegistration, error)
	HasRegistration(ctx context.Context, playerID, tournamentID string) (bool, error)
	CreateRegistration(ctx context.Context, registration *PlayerRegistration) error
	DeleteRegistration(ctx context.Context, id string) error

	ListMatches(ctx context.Context) ([]Match, error)
	GetMatch(ctx context.Context, id string) (*Match, error)
	ListMatchesByTournament(ctx context.Context, tournamentID string) ([]Match, error)
	CreateMatch(ctx context.Context, match *Match) error
	SaveMatch(ctx context.Context, match *Match) error
	DeleteMatch(ctx context.Context, id string) error
	DeleteMatchesByTournament(ctx context.Context, tournamentID string) error

	ListSpiritScores(ctx context.Context) ([]SpiritScore, error)
	GetSpiritScore(ctx context.Context, id string) (*SpiritScore, error)
	CreateSpiritScore(ctx context.Context, score *SpiritScore) error
	SaveSpiritScore(ctx context.Context, score *SpiritScore) error
	DeleteSpiritScore(ctx context.Context, id string) error
}
