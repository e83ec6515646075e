package db

import (
	"gorm.io/gorm"

	"visionx-go/internal/domain/coaching"
	"visionx-go/internal/domain/community"
	"visionx-go/internal/domain/tournament"
	"visionx-go/internal/domain/user"
)

// Migrate creates or updates the schema for every domain model. Uniqueness
// constraints (attendance per child+session, registration per
// player+tournament) live on the tables themselves so concurrent writers
// cannot sneak duplicates past the service-level checks.
func Migrate(dbConn *gorm.DB) error {
	return dbConn.AutoMigrate(
		&user.User{},
		&coaching.ChildProfile{},
		&coaching.Session{},
		&coaching.Attendance{},
		&coaching.HomeVisit{},
		&coaching.LSASAssessment{},
		&coaching.CoachActivity{},
		&tournament.Tournament{},
		&tournament.Team{},
		&tournament.PlayerRegistration{},
		&tournament.Match{},
		&tournament.SpiritScore{},
		&community.DiscussionThread{},
		&community.ThreadReply{},
		&community.Resource{},
	)
}
