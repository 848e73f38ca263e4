package model

import (
	"time"

	"github.com/google/uuid"
)

// CommentModel mirrors the 'comments' table. ParentID is a self-reference
// with ON DELETE CASCADE so removing a comment removes its whole subtree.
type CommentModel struct {
	ID          uuid.UUID  `gorm:"type:uuid;primary_key;default:gen_random_uuid()"`
	PostID      uuid.UUID  `gorm:"type:uuid;not null;index"`
	ParentID    *uuid.UUID `gorm:"type:uuid;index"`
	AuthorName  string     `gorm:"type:varchar(100);not null"`
	AuthorEmail string     `gorm:"type:varchar(255);not null"`
	Content     string     `gorm:"type:text;not null"`
	Approved    bool       `gorm:"not null;default:false;index"`
	CreatedAt   time.Time  `gorm:"index"`

	Replies []CommentModel `gorm:"foreignKey:ParentID;constraint:OnDelete:CASCADE"`
}

// TableName explicitly sets the table name for GORM.
func (CommentModel) TableName() string {
	return "comments"
}
