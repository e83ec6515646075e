package tournament

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"

	"visionx-go/internal/domain/authz"
	"visionx-go/internal/domain/validation"
)

const scheduleFieldCount = 4

// Every generated match gets the same placeholder start time; real slotting
// is scheduled work that has not landed yet.
var schedulePlaceholderStart = time.Date(2025, time.November, 5, 9, 0, 0, 0, time.UTC)

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

// --- Tournaments ---

type TournamentInput struct {
	Title       string
	Description string
	Rules       string
	StartDate   time.Time
	EndDate     time.Time
	Location    string
}

func (s *Service) ListTournaments(ctx context.Context) ([]Tournament, error) {
	return s.repo.ListTournaments(ctx)
}

func (s *Service) GetTournament(ctx context.Context, id string) (*Tournament, error) {
	return s.repo.GetTournament(ctx, id)
}

func (s *Service) CreateTournament(ctx context.Context, p authz.Principal, input TournamentInput) (*Tournament, error) {
	if !p.Authenticated() {
		return nil, ErrNotAllowed
	}
	if strings.TrimSpace(input.Title) == "" {
		return nil, validation.Errorf("title is required")
	}

	t := Tournament{
		ID:          uuid.NewString(),
		Title:       input.Title,
		Description: input.Description,
		Rules:       input.Rules,
		StartDate:   input.StartDate,
		EndDate:     input.EndDate,
		Location:    input.Location,
	}
	if err := s.repo.CreateTournament(ctx, &t); err != nil {
		return nil, err
	}
	return &t, nil
}

func (s *Service) UpdateTournament(ctx context.Context, p authz.Principal, id string, input TournamentInput) (*Tournament, error) {
	if !p.Authenticated() {
		return nil, ErrNotAllowed
	}
	t, err := s.repo.GetTournament(ctx, id)
	if err != nil {
		return nil, err
	}
	if strings.TrimSpace(input.Title) == "" {
		return nil, validation.Errorf("title is required")
	}

	t.Title = input.Title
	t.Description = input.Description
	t.Rules = input.Rules
	t.StartDate = input.StartDate
	t.EndDate = input.EndDate
	t.Location = input.Location
	if err := s.repo.SaveTournament(ctx, t); err != nil {
		return nil, err
	}
	return t, nil
}

func (s *Service) DeleteTournament(ctx context.Context, p authz.Principal, id string) error {
	if !p.Authenticated() {
		return ErrNotAllowed
	}
	if _, err := s.repo.GetTournament(ctx, id); err != nil {
		return err
	}
	return s.repo.DeleteTournament(ctx, id)
}

// TournamentTeams lists the distinct teams with at least one registration.
func (s *Service) TournamentTeams(ctx context.Context, tournamentID string) ([]Team, error) {
	if _, err := s.repo.GetTournament(ctx, tournamentID); err != nil {
		return nil, err
	}
	return s.repo.RegisteredTeams(ctx, tournamentID)
}

func (s *Service) TournamentMatches(ctx context.Context, tournamentID string) ([]Match, error) {
	if _, err := s.repo.GetTournament(ctx, tournamentID); err != nil {
		return nil, err
	}
	return s.repo.ListMatchesByTournament(ctx, tournamentID)
}

// --- Teams ---

func (s *Service) ListTeams(ctx context.Context) ([]Team, error) {
	return s.repo.ListTeams(ctx)
}

func (s *Service) GetTeam(ctx context.Context, id string) (*Team, error) {
	return s.repo.GetTeam(ctx, id)
}

// CreateTeam makes the caller the team's captain.
func (s *Service) CreateTeam(ctx context.Context, p authz.Principal, name string) (*Team, error) {
	if !p.Authenticated() {
		return nil, ErrNotAllowed
	}
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, validation.Errorf("name is required")
	}

	captainID := p.ID
	team := Team{
		ID:        uuid.NewString(),
		Name:      name,
		CaptainID: &captainID,
	}
	if err := s.repo.CreateTeam(ctx, &team); err != nil {
		return nil, err
	}
	return &team, nil
}

func (s *Service) UpdateTeam(ctx context.Context, p authz.Principal, id, name string) (*Team, error) {
	if !p.Authenticated() {
		return nil, ErrNotAllowed
	}
	team, err := s.repo.GetTeam(ctx, id)
	if err != nil {
		return nil, err
	}
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, validation.Errorf("name is required")
	}
	team.Name = name
	if err := s.repo.SaveTeam(ctx, team); err != nil {
		return nil, err
	}
	return team, nil
}

func (s *Service) DeleteTeam(ctx context.Context, p authz.Principal, id string) error {
	if !p.Authenticated() {
		return ErrNotAllowed
	}
	if _, err := s.repo.GetTeam(ctx, id); err != nil {
		return err
	}
	return s.repo.DeleteTeam(ctx, id)
}

// TeamRoster is captain-only: anybody else gets ErrNotCaptain, never the
// roster.
func (s *Service) TeamRoster(ctx context.Context, p authz.Principal, teamID string) ([]PlayerRegistration, error) {
	team, err := s.repo.GetTeam(ctx, teamID)
	if err != nil {
		return nil, err
	}
	if team.CaptainID == nil || *team.CaptainID != p.ID {
		return nil, ErrNotCaptain
	}
	return s.repo.ListRegistrationsByTeam(ctx, team.ID)
}

// --- Registrations ---

type RegisterInput struct {
	TeamID       string
	TournamentID string
	// Username optionally names the player to register. Empty means the
	// captain registers themselves.
	Username string
}

func (s *Service) ListRegistrations(ctx context.Context) ([]PlayerRegistration, error) {
	return s.repo.ListRegistrations(ctx)
}

func (s *Service) GetRegistration(ctx context.Context, id string) (*PlayerRegistration, error) {
	return s.repo.GetRegistration(ctx, id)
}

func (s *Service) MyRegistrations(ctx context.Context, p authz.Principal) ([]PlayerRegistration, error) {
	return s.repo.ListRegistrationsByPlayer(ctx, p.ID)
}

// Register creates a tournament registration on behalf of a team captain.
// The duplicate pre-check is an optimization for a friendly error message;
// the table's unique (player, tournament) constraint is what actually
// prevents double registration under concurrent requests.
func (s *Service) Register(ctx context.Context, p authz.Principal, input RegisterInput) (*PlayerRegistration, error) {
	team, err := s.repo.GetTeam(ctx, input.TeamID)
	if err != nil {
		return nil, err
	}
	if _, err := s.repo.GetTournament(ctx, input.TournamentID); err != nil {
		return nil, err
	}
	if team.CaptainID == nil || *team.CaptainID != p.ID {
		return nil, ErrNotCaptain
	}

	playerID := p.ID
	if username := strings.TrimSpace(input.Username); username != "" {
		playerID, err = s.repo.GetUserIDByUsername(ctx, username)
		if err != nil {
			return nil, err
		}
	}

	taken, err := s.repo.HasRegistration(ctx, playerID, input.TournamentID)
	if err != nil {
		return nil, err
	}
	if taken {
		return nil, ErrDuplicateRegistration
	}

	registration := PlayerRegistration{
		ID:           uuid.NewString(),
		PlayerID:     playerID,
		TeamID:       team.ID,
		TournamentID: input.TournamentID,
	}
	if err := s.repo.CreateRegistration(ctx, &registration); err != nil {
		return nil, err
	}
	return &registration, nil
}

func (s *Service) DeleteRegistration(ctx context.Context, id string) error {
	if _, err := s.repo.GetRegistration(ctx, id); err != nil {
		return err
	}
	return s.repo.DeleteRegistration(ctx, id)
}

// --- Matches ---

type MatchInput struct {
	TournamentID string
	TeamAID      string
	TeamBID      string
	StartTime    time.Time
	FieldNumber  int
	TeamAScore   *int
	TeamBScore   *int
	Status       *string
	IsFinal      *bool
}

func (s *Service) ListMatches(ctx context.Context) ([]Match, error) {
	return s.repo.ListMatches(ctx)
}

func (s *Service) GetMatch(ctx context.Context, id string) (*Match, error) {
	return s.repo.GetMatch(ctx, id)
}

func (s *Service) CreateMatch(ctx context.Context, p authz.Principal, input MatchInput) (*Match, error) {
	if !authz.CanManageMatches(p) {
		return nil, ErrNotAllowed
	}
	status := MatchScheduled
	if input.Status != nil {
		if !ValidMatchStatus(*input.Status) {
			return nil, validation.Errorf("status must be one of SCHEDULED, LIVE, FINAL")
		}
		status = *input.Status
	}

	match := Match{
		ID:           uuid.NewString(),
		TournamentID: input.TournamentID,
		TeamAID:      input.TeamAID,
		TeamBID:      input.TeamBID,
		StartTime:    input.StartTime,
		FieldNumber:  input.FieldNumber,
		TeamAScore:   input.TeamAScore,
		TeamBScore:   input.TeamBScore,
		Status:       status,
	}
	if input.IsFinal != nil {
		match.IsFinal = *input.IsFinal
	}
	if err := s.repo.CreateMatch(ctx, &match); err != nil {
		return nil, err
	}
	return &match, nil
}

type UpdateMatchInput struct {
	ID          string
	StartTime   *time.Time
	FieldNumber *int
	TeamAScore  *int
	TeamBScore  *int
	Status      *string
	IsFinal     *bool
}

func (s *Service) UpdateMatch(ctx context.Context, p authz.Principal, input UpdateMatchInput) (*Match, error) {
	if !authz.CanManageMatches(p) {
		return nil, ErrNotAllowed
	}
	match, err := s.repo.GetMatch(ctx, input.ID)
	if err != nil {
		return nil, err
	}

	if input.Status != nil {
		if !ValidMatchStatus(*input.Status) {
			return nil, validation.Errorf("status must be one of SCHEDULED, LIVE, FINAL")
		}
		match.Status = *input.Status
	}
	if input.StartTime != nil {
		match.StartTime = *input.StartTime
	}
	if input.FieldNumber != nil {
		match.FieldNumber = *input.FieldNumber
	}
	if input.TeamAScore != nil {
		match.TeamAScore = input.TeamAScore
	}
	if input.TeamBScore != nil {
		match.TeamBScore = input.TeamBScore
	}
	if input.IsFinal != nil {
		match.IsFinal = *input.IsFinal
	}

	if err := s.repo.SaveMatch(ctx, match); err != nil {
		return nil, err
	}
	return match, nil
}

func (s *Service) DeleteMatch(ctx context.Context, p authz.Principal, id string) error {
	if !authz.CanManageMatches(p) {
		return ErrNotAllowed
	}
	if _, err := s.repo.GetMatch(ctx, id); err != nil {
		return err
	}
	return s.repo.DeleteMatch(ctx, id)
}

// GenerateSchedule replaces the tournament's match set with a full
// round-robin over the currently registered teams: every unordered pair
// exactly once, fields cycling 1..4 in generation order. Existing matches,
// scores included, are discarded; delete and recreate happen in one
// transaction so a failure never leaves a half-built schedule. Returns the
// number of matches created.
func (s *Service) GenerateSchedule(ctx context.Context, p authz.Principal, tournamentID string) (int, error) {
	if !authz.CanGenerateSchedule(p) {
		return 0, ErrNotAllowed
	}

	t, err := s.repo.GetTournament(ctx, tournamentID)
	if err != nil {
		return 0, err
	}

	teams, err := s.repo.RegisteredTeams(ctx, t.ID)
	if err != nil {
		return 0, err
	}
	if len(teams) < 2 {
		return 0, ErrNotEnoughTeams
	}

	created := 0
	err = s.repo.Transaction(ctx, func(tx Repository) error {
		if err := tx.DeleteMatchesByTournament(ctx, t.ID); err != nil {
			return err
		}

		field := 1
		for i := 0; i < len(teams); i++ {
			for j := i + 1; j < len(teams); j++ {
				match := Match{
					ID:           uuid.NewString(),
					TournamentID: t.ID,
					TeamAID:      teams[i].ID,
					TeamBID:      teams[j].ID,
					StartTime:    schedulePlaceholderStart,
					FieldNumber:  field,
					Status:       MatchScheduled,
				}
				if err := tx.CreateMatch(ctx, &match); err != nil {
					return err
				}
				created++
				field = field%scheduleFieldCount + 1
			}
		}
		return nil
	})
	if err != nil {
		return 0, err
	}
	return created, nil
}

// --- Spirit scores ---

type SpiritScoreInput struct {
	MatchID          string
	TargetTeamID     string
	RulesKnowledge   *int
	FoulsContact     *int
	FairMindedness   *int
	PositiveAttitude *int
	Communication    *int
	Comments         *string
}

func (s *Service) ListSpiritScores(ctx context.Context) ([]SpiritScore, error) {
	return s.repo.ListSpiritScores(ctx)
}

func (s *Service) GetSpiritScore(ctx context.Context, id string) (*SpiritScore, error) {
	return s.repo.GetSpiritScore(ctx, id)
}

// CreateSpiritScore records a sportsmanship rating. The submitting user is
// always the caller; each sub-score defaults to 2 and must stay within 0-4.
func (s *Service) CreateSpiritScore(ctx context.Context, p authz.Principal, input SpiritScoreInput) (*SpiritScore, error) {
	if _, err := s.repo.GetMatch(ctx, input.MatchID); err != nil {
		return nil, err
	}
	if _, err := s.repo.GetTeam(ctx, input.TargetTeamID); err != nil {
		return nil, err
	}

	score := SpiritScore{
		ID:               uuid.NewString(),
		MatchID:          input.MatchID,
		SubmittingUserID: p.ID,
		TargetTeamID:     input.TargetTeamID,
		RulesKnowledge:   2,
		FoulsContact:     2,
		FairMindedness:   2,
		PositiveAttitude: 2,
		Communication:    2,
		Comments:         input.Comments,
	}

	fields := []struct {
		value *int
		dst   *int
		name  string
	}{
		{input.RulesKnowledge, &score.RulesKnowledge, "rules_knowledge"},
		{input.FoulsContact, &score.FoulsContact, "fouls_contact"},
		{input.FairMindedness, &score.FairMindedness, "fair_mindedness"},
		{input.PositiveAttitude, &score.PositiveAttitude, "positive_attitude"},
		{input.Communication, &score.Communication, "communication"},
	}
	for _, field := range fields {
		if field.value == nil {
			continue
		}
		if *field.value < 0 || *field.value > 4 {
			return nil, validation.Errorf("%s must be between 0 and 4", field.name)
		}
		*field.dst = *field.value
	}

	if err := s.repo.CreateSpiritScore(ctx, &score); err != nil {
		return nil, err
	}
	return &score, nil
}

type UpdateSpiritScoreInput struct {
	ID               string
	TargetTeamID     *string
	RulesKnowledge   *int
	FoulsContact     *int
	FairMindedness   *int
	PositiveAttitude *int
	Communication    *int
	Comments         *string
}

// UpdateSpiritScore amends a submitted rating. The submitting user never
// changes; sub-scores keep the 0-4 bound.
func (s *Service) UpdateSpiritScore(ctx context.Context, p authz.Principal, input UpdateSpiritScoreInput) (*SpiritScore, error) {
	if !p.Authenticated() {
		return nil, ErrNotAllowed
	}
	score, err := s.repo.GetSpiritScore(ctx, input.ID)
	if err != nil {
		return nil, err
	}
	if input.TargetTeamID != nil {
		if _, err := s.repo.GetTeam(ctx, *input.TargetTeamID); err != nil {
			return nil, err
		}
		score.TargetTeamID = *input.TargetTeamID
	}

	fields := []struct {
		value *int
		dst   *int
		name  string
	}{
		{input.RulesKnowledge, &score.RulesKnowledge, "rules_knowledge"},
		{input.FoulsContact, &score.FoulsContact, "fouls_contact"},
		{input.FairMindedness, &score.FairMindedness, "fair_mindedness"},
		{input.PositiveAttitude, &score.PositiveAttitude, "positive_attitude"},
		{input.Communication, &score.Communication, "communication"},
	}
	for _, field := range fields {
		if field.value == nil {
			continue
		}
		if *field.value < 0 || *field.value > 4 {
			return nil, validation.Errorf("%s must be between 0 and 4", field.name)
		}
		*field.dst = *field.value
	}
	if input.Comments != nil {
		score.Comments = input.Comments
	}

	if err := s.repo.SaveSpiritScore(ctx, score); err != nil {
		return nil, err
	}
	return score, nil
}

func (s *Service) DeleteSpiritScore(ctx context.Context, id string) error {
	if _, err := s.repo.GetSpiritScore(ctx, id); err != nil {
		return err
	}
	return s.repo.DeleteSpiritScore(ctx, id)
}
