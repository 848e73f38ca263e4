package model

import (
	"time"

	"github.com/google/uuid"
)

// PostModel mirrors the 'posts' table. Slug is the public identifier;
// the UUID key exists for comment foreign keys.
type PostModel struct {
	ID            uuid.UUID `gorm:"type:uuid;primary_key;default:gen_random_uuid()"`
	Title         string    `gorm:"type:varchar(200);not null"`
	Slug          string    `gorm:"type:varchar(220);unique;not null;index"`
	Excerpt       string    `gorm:"type:text"`
	Content       string    `gorm:"type:text;not null"`
	Author        string    `gorm:"type:varchar(100);not null"`
	Category      string    `gorm:"type:varchar(100);index"`
	Tags          string    `gorm:"type:text"`
	FeaturedImage string    `gorm:"type:varchar(500)"`
	Published     bool      `gorm:"not null;default:false;index"`
	CreatedAt     time.Time
	UpdatedAt     time.Time

	Comments []CommentModel `gorm:"foreignKey:PostID;constraint:OnDelete:CASCADE"`
}

// TableName explicitly sets the table name for GORM.
func (PostModel) TableName() string {
	return "posts"
}
