package tournament

import (
	"time"

	"visionx-go/internal/domain/user"
)

const (
	MatchScheduled = "SCHEDULED"
	MatchLive      = "LIVE"
	MatchFinal     = "FINAL"
)

func ValidMatchStatus(value string) bool {
	switch value {
	case MatchScheduled, MatchLive, MatchFinal:
		return true
	}
	return false
}

type Tournament struct {
	ID          string    `gorm:"type:uuid;primaryKey"`
	Title       string    `gorm:"size:200;not null"`
	Description string    `gorm:"type:text"`
	Rules       string    `gorm:"type:text"`
	StartDate   time.Time `gorm:"type:date;not null"`
	EndDate     time.Time `gorm:"type:date;not null"`
	Location    string    `gorm:"size:255;not null"`
}

type Team struct {
	ID        string    `gorm:"type:uuid;primaryKey"`
	Name      string    `gorm:"size:100;not null;uniqueIndex"`
	CaptainID *string   `gorm:"type:uuid;index"`
	CreatedAt time.Time `gorm:"autoCreateTime"`

	Captain *user.User `gorm:"foreignKey:CaptainID;references:ID;constraint:OnDelete:SET NULL"`
}

type PlayerRegistration struct {
	ID           string    `gorm:"type:uuid;primaryKey"`
	PlayerID     string    `gorm:"type:uuid;not null;uniqueIndex:idx_registration_player_tournament"`
	TeamID       string    `gorm:"type:uuid;not null;index"`
	TournamentID string    `gorm:"type:uuid;not null;uniqueIndex:idx_registration_player_tournament"`
	CreatedAt    time.Time `gorm:"autoCreateTime"`

	Player     *user.User  `gorm:"foreignKey:PlayerID;references:ID;constraint:OnDelete:CASCADE"`
	Team       *Team       `gorm:"foreignKey:TeamID;references:ID;constraint:OnDelete:CASCADE"`
	Tournament *Tournament `gorm:"foreignKey:TournamentID;references:ID;constraint:OnDelete:CASCADE"`
}

type Match struct {
	ID           string    `gorm:"type:uuid;primaryKey"`
	TournamentID string    `gorm:"type:uuid;not null;index"`
	TeamAID      string    `gorm:"type:uuid;not null"`
	TeamBID      string    `gorm:"type:uuid;not null"`
	StartTime    time.Time `gorm:"not null"`
	FieldNumber  int       `gorm:"not null"`
	TeamAScore   *int
	TeamBScore   *int
	Status       string    `gorm:"size:10;not null;default:SCHEDULED"`
	IsFinal      bool      `gorm:"not null;default:false"`
	CreatedAt    time.Time `gorm:"autoCreateTime"`
	UpdatedAt    time.Time `gorm:"autoUpdateTime"`

	Tournament *Tournament `gorm:"foreignKey:TournamentID;references:ID;constraint:OnDelete:CASCADE"`
	TeamA      *Team       `gorm:"foreignKey:TeamAID;references:ID;constraint:OnDelete:CASCADE"`
	TeamB      *Team       `gorm:"foreignKey:TeamBID;references:ID;constraint:OnDelete:CASCADE"`
}

type SpiritScore struct {
	ID               string `gorm:"type:uuid;primaryKey"`
	MatchID          string `gorm:"type:uuid;not null;index"`
	SubmittingUserID string `gorm:"type:uuid;not null"`
	TargetTeamID     string `gorm:"type:uuid;not null"`
	RulesKnowledge   int    `gorm:"not null;default:2"`
	FoulsContact     int    `gorm:"not null;default:2"`
	FairMindedness   int    `gorm:"not null;default:2"`
	PositiveAttitude int    `gorm:"not null;default:2"`
	Communication    int    `gorm:"not null;default:2"`
	Comments         *string
	SubmittedAt      time.Time `gorm:"autoCreateTime"`

	Match          *Match     `gorm:"foreignKey:MatchID;references:ID;constraint:OnDelete:CASCADE"`
	SubmittingUser *user.User `gorm:"foreignKey:SubmittingUserID;references:ID;constraint:OnDelete:CASCADE"`
	TargetTeam     *Team      `gorm:"foreignKey:TargetTeamID;references:ID;constraint:OnDelete:CASCADE"`
}
