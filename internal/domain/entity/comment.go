package entity

import (
	"time"

	"github.com/google/uuid"
)

// Comment is a single reader comment on a post. ParentID is nil for
// root-level comments; otherwise it must reference an existing comment on
// the same post, which the store checks before insertion. Comments form a
// forest per post with no depth limit.
type Comment struct {
	ID         uuid.UUID  `json:"id"`
	PostID     uuid.UUID  `json:"post_id"`
	ParentID   *uuid.UUID `json:"parent_id"`
	AuthorName string     `json:"author_name"`
	// AuthorEmail is collected for moderation but never exposed in responses.
	AuthorEmail string    `json:"-"`
	Content     string    `json:"content"`
	Approved    bool      `json:"-"`
	CreatedAt   time.Time `json:"created_at"`
}

// CommentNode wraps a comment with its ordered reply list for the threaded
// response shape.
type CommentNode struct {
	*Comment
	Replies []*CommentNode `json:"replies"`
}
