package community

import (
	"time"

	"visionx-go/internal/domain/user"
)

type DiscussionThread struct {
	ID        string    `gorm:"type:uuid;primaryKey"`
	Title     string    `gorm:"size:255;not null"`
	Content   string    `gorm:"type:text;not null"`
	AuthorID  string    `gorm:"type:uuid;not null;index"`
	CreatedAt time.Time `gorm:"autoCreateTime"`
	UpdatedAt time.Time `gorm:"autoUpdateTime"`

	Author *user.User `gorm:"foreignKey:AuthorID;references:ID;constraint:OnDelete:CASCADE"`
}

type ThreadReply struct {
	ID        string    `gorm:"type:uuid;primaryKey"`
	ThreadID  string    `gorm:"type:uuid;not null;index"`
	AuthorID  string    `gorm:"type:uuid;not null;index"`
	Content   string    `gorm:"type:text;not null"`
	CreatedAt time.Time `gorm:"autoCreateTime"`

	Thread *DiscussionThread `gorm:"foreignKey:ThreadID;references:ID;constraint:OnDelete:CASCADE"`
	Author *user.User        `gorm:"foreignKey:AuthorID;references:ID;constraint:OnDelete:CASCADE"`
}

// Resource holds file metadata only; the bytes live wherever FileURL points.
type Resource struct {
	ID           string    `gorm:"type:uuid;primaryKey"`
	Title        string    `gorm:"size:255;not null"`
	Description  string    `gorm:"type:text"`
	FileURL      string    `gorm:"size:512;not null"`
	UploadedByID *string   `gorm:"type:uuid"`
	UploadedAt   time.Time `gorm:"autoCreateTime"`

	UploadedBy *user.User `gorm:"foreignKey:UploadedByID;references:ID;constraint:OnDelete:SET NULL"`
}
