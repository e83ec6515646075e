package tournament

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"

	tournamentdomain "visionx-go/internal/domain/tournament"
	userdomain "visionx-go/internal/domain/user"
)

const pgUniqueViolation = "23505"

type PostgresRepository struct {
	db *gorm.DB
}

func NewPostgres(db *gorm.DB) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (r *PostgresRepository) Transaction(ctx context.Context, fn func(tournamentdomain.Repository) error) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(&PostgresRepository{db: tx})
	})
}

func (r *PostgresRepository) GetUserIDByUsername(ctx context.Context, username string) (string, error) {
	var account userdomain.User
	err := r.db.WithContext(ctx).
		Select("id").
		Where("username = ?", username).
		First(&account).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return "", tournamentdomain.ErrPlayerNotFound
		}
		return "", err
	}
	return account.ID, nil
}

// --- Tournaments ---

func (r *PostgresRepository) ListTournaments(ctx context.Context) ([]tournamentdomain.Tournament, error) {
	var tournaments []tournamentdomain.Tournament
	if err := r.db.WithContext(ctx).Order("start_date asc").Find(&tournaments).Error; err != nil {
		return nil, err
	}
	return tournaments, nil
}

func (r *PostgresRepository) GetTournament(ctx context.Context, id string) (*tournamentdomain.Tournament, error) {
	var tournament tournamentdomain.Tournament
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&tournament).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, tournamentdomain.ErrTournamentNotFound
		}
		return nil, err
	}
	return &tournament, nil
}

func (r *PostgresRepository) CreateTournament(ctx context.Context, tournament *tournamentdomain.Tournament) error {
	return r.db.WithContext(ctx).Create(tournament).Error
}

func (r *PostgresRepository) SaveTournament(ctx context.Context, tournament *tournamentdomain.Tournament) error {
	return r.db.WithContext(ctx).Save(tournament).Error
}

func (r *PostgresRepository) DeleteTournament(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).Delete(&tournamentdomain.Tournament{}, "id = ?", id).Error
}

// --- Teams ---

func (r *PostgresRepository) ListTeams(ctx context.Context) ([]tournamentdomain.Team, error) {
	var teams []tournamentdomain.Team
	if err := r.db.WithContext(ctx).Order("name asc").Find(&teams).Error; err != nil {
		return nil, err
	}
	return teams, nil
}

func (r *PostgresRepository) GetTeam(ctx context.Context, id string) (*tournamentdomain.Team, error) {
	var team tournamentdomain.Team
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&team).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, tournamentdomain.ErrTeamNotFound
		}
		return nil, err
	}
	return &team, nil
}

func (r *PostgresRepository) CreateTeam(ctx context.Context, team *tournamentdomain.Team) error {
	err := r.db.WithContext(ctx).Create(team).Error
	if isUniqueViolation(err) {
		return tournamentdomain.ErrTeamNameTaken
	}
	return err
}

func (r *PostgresRepository) SaveTeam(ctx context.Context, team *tournamentdomain.Team) error {
	err := r.db.WithContext(ctx).Save(team).Error
	if isUniqueViolation(err) {
		return tournamentdomain.ErrTeamNameTaken
	}
	return err
}

func (r *PostgresRepository) DeleteTeam(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).Delete(&tournamentdomain.Team{}, "id = ?", id).Error
}

// RegisteredTeams orders by each team's earliest registration so repeated
// schedule generation walks the teams in the same order.
func (r *PostgresRepository) RegisteredTeams(ctx context.Context, tournamentID string) ([]tournamentdomain.Team, error) {
	var teams []tournamentdomain.Team
	err := r.db.WithContext(ctx).
		Table("teams").
		Select("teams.*").
		Joins("join player_registrations on player_registrations.team_id = teams.id").
		Where("player_registrations.tournament_id = ?", tournamentID).
		Group("teams.id").
		Order("MIN(player_registrations.created_at) asc").
		Find(&teams).Error
	if err != nil {
		return nil, err
	}
	return teams, nil
}

// --- Registrations ---

func (r *PostgresRepository) ListRegistrations(ctx context.Context) ([]tournamentdomain.PlayerRegistration, error) {
	var registrations []tournamentdomain.PlayerRegistration
	if err := r.db.WithContext(ctx).Order("created_at desc").Find(&registrations).Error; err != nil {
		return nil, err
	}
	return registrations, nil
}

func (r *PostgresRepository) GetRegistration(ctx context.Context, id string) (*tournamentdomain.PlayerRegistration, error) {
	var registration tournamentdomain.PlayerRegistration
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&registration).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, tournamentdomain.ErrRegistrationNotFound
		}
		return nil, err
	}
	return &registration, nil
}

func (r *PostgresRepository) ListRegistrationsByPlayer(ctx context.Context, playerID string) ([]tournamentdomain.PlayerRegistration, error) {
	var registrations []tournamentdomain.PlayerRegistration
	err := r.db.WithContext(ctx).
		Where("player_id = ?", playerID).
		Order("created_at desc").
		Find(&registrations).Error
	if err != nil {
		return nil, err
	}
	return registrations, nil
}

func (r *PostgresRepository) ListRegistrationsByTeam(ctx context.Context, teamID string) ([]tournamentdomain.PlayerRegistration, error) {
	var registrations []tournamentdomain.PlayerRegistration
	err := r.db.WithContext(ctx).
		Where("team_id = ?", teamID).
		Order("created_at asc").
		Find(&registrations).Error
	if err != nil {
		return nil, err
	}
	return registrations, nil
}

func (r *PostgresRepository) HasRegistration(ctx context.Context, playerID, tournamentID string) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&tournamentdomain.PlayerRegistration{}).
		Where("player_id = ? AND tournament_id = ?", playerID, tournamentID).
		Count(&count).Error
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

func (r *PostgresRepository) CreateRegistration(ctx context.Context, registration *tournamentdomain.PlayerRegistration) error {
	err := r.db.WithContext(ctx).Create(registration).Error
	if isUniqueViolation(err) {
		return tournamentdomain.ErrDuplicateRegistration
	}
	return err
}

func (r *PostgresRepository) DeleteRegistration(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).Delete(&tournamentdomain.PlayerRegistration{}, "id = ?", id).Error
}

// --- Matches ---

func (r *PostgresRepository) ListMatches(ctx context.Context) ([]tournamentdomain.Match, error) {
	var matches []tournamentdomain.Match
	if err := r.db.WithContext(ctx).Order("start_time asc").Find(&matches).Error; err != nil {
		return nil, err
	}
	return matches, nil
}

func (r *PostgresRepository) GetMatch(ctx context.Context, id string) (*tournamentdomain.Match, error) {
	var match tournamentdomain.Match
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&match).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, tournamentdomain.ErrMatchNotFound
		}
		return nil, err
	}
	return &match, nil
}

func (r *PostgresRepository) ListMatchesByTournament(ctx context.Context, tournamentID string) ([]tournamentdomain.Match, error) {
	var matches []tournamentdomain.Match
	err := r.db.WithContext(ctx).
		Where("tournament_id = ?", tournamentID).
		Order("start_time asc").
		Find(&matches).Error
	if err != nil {
		return nil, err
	}
	return matches, nil
}

func (r *PostgresRepository) CreateMatch(ctx context.Context, match *tournamentdomain.Match) error {
	return r.db.WithContext(ctx).Create(match).Error
}

func (r *PostgresRepository) SaveMatch(ctx context.Context, match *tournamentdomain.Match) error {
	return r.db.WithContext(ctx).Save(match).Error
}

func (r *PostgresRepository) DeleteMatch(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).Delete(&tournamentdomain.Match{}, "id = ?", id).Error
}

func (r *PostgresRepository) DeleteMatchesByTournament(ctx context.Context, tournamentID string) error {
	return r.db.WithContext(ctx).
		Delete(&tournamentdomain.Match{}, "tournament_id = ?", tournamentID).Error
}

// --- Spirit scores ---

func (r *PostgresRepository) ListSpiritScores(ctx context.Context) ([]tournamentdomain.SpiritScore, error) {
	var scores []tournamentdomain.SpiritScore
	if err := r.db.WithContext(ctx).Order("submitted_at desc").Find(&scores).Error; err != nil {
		return nil, err
	}
	return scores, nil
}

func (r *PostgresRepository) GetSpiritScore(ctx context.Context, id string) (*tournamentdomain.SpiritScore, error) {
	var score tournamentdomain.SpiritScore
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&score).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, tournamentdomain.ErrSpiritScoreNotFound
		}
		return nil, err
	}
	return &score, nil
}

func (r *PostgresRepository) CreateSpiritScore(ctx context.Context, score *tournamentdomain.SpiritScore) error {
	return r.db.WithContext(ctx).Create(score).Error
}

func (r *PostgresRepository) SaveSpiritScore(ctx context.Context, score *tournamentdomain.SpiritScore) error {
	return r.db.WithContext(ctx).Save(score).Error
}

func (r *PostgresRepository) DeleteSpiritScore(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).Delete(&tournamentdomain.SpiritScore{}, "id = ?", id).Error
}

func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == pgUniqueViolation
}
