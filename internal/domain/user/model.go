package user

import (
	"time"

	"visionx-go/internal/domain/authz"
)

type User struct {
	ID           string     `gorm:"type:uuid;primaryKey"`
	Username     string     `gorm:"size:150;not null;uniqueIndex"`
	Email        string     `gorm:"size:254"`
	FirstName    string     `gorm:"size:150"`
	LastName     string     `gorm:"size:150"`
	PasswordHash string     `gorm:"size:128;not null"`
	Role         authz.Role `gorm:"type:varchar(50);not null"`
	CreatedAt    time.Time  `gorm:"autoCreateTime"`
	UpdatedAt    time.Time  `gorm:"autoUpdateTime"`
}

func (u User) Principal() authz.Principal {
	return authz.Principal{ID: u.ID, Username: u.Username, Role: u.Role}
}

type TokenPair struct {
	Access  string
	Refresh string
}
