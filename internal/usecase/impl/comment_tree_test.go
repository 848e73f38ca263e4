package impl

import (
	"testing"
	"time"

	"blog/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func makeComment(id uuid.UUID, parentID *uuid.UUID, offset time.Duration) *entity.Comment {
	base := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

	return &entity.Comment{
		ID:         id,
		ParentID:   parentID,
		AuthorName: "reader",
		Content:    "text",
		CreatedAt:  base.Add(offset),
	}
}

func TestBuildCommentForest_NestsRepliesAndDropsOrphans(t *testing.T) {
	rootID := uuid.New()
	replyID := uuid.New()
	orphanID := uuid.New()
	missingParentID := uuid.New()

	comments := []*entity.Comment{
		makeComment(rootID, nil, 0),
		makeComment(replyID, &rootID, time.Minute),
		makeComment(orphanID, &missingParentID, 2*time.Minute),
	}

	roots, total := buildCommentForest(comments)

	require.Len(t, roots, 1)
	assert.Equal(t, rootID, roots[0].ID)
	require.Len(t, roots[0].Replies, 1)
	assert.Equal(t, replyID, roots[0].Replies[0].ID)

	// The orphan is excluded from the forest but still counted: total
	// reflects the flat fetch, not what survived assembly.
	assert.Equal(t, 3, total)
}

func TestBuildCommentForest_TotalCountsAllDepths(t *testing.T) {
	rootID := uuid.New()
	childID := uuid.New()
	grandchildID := uuid.New()

	comments := []*entity.Comment{
		makeComment(rootID, nil, 0),
		makeComment(childID, &rootID, time.Minute),
		makeComment(grandchildID, &childID, 2*time.Minute),
	}

	roots, total := buildCommentForest(comments)

	require.Len(t, roots, 1)
	assert.Equal(t, 3, total)

	child := roots[0].Replies[0]
	require.Len(t, child.Replies, 1)
	assert.Equal(t, grandchildID, child.Replies[0].ID)
}

func TestBuildCommentForest_OrphanSubtreeDropsEntirely(t *testing.T) {
	missingID := uuid.New()
	orphanID := uuid.New()
	orphanChildID := uuid.New()

	comments := []*entity.Comment{
		makeComment(orphanID, &missingID, 0),
		makeComment(orphanChildID, &orphanID, time.Minute),
	}

	roots, total := buildCommentForest(comments)

	assert.Empty(t, roots)
	assert.Equal(t, 2, total)
}

func TestBuildCommentForest_PreservesOrderWithinLevel(t *testing.T) {
	firstID := uuid.New()
	secondID := uuid.New()
	earlyReplyID := uuid.New()
	lateReplyID := uuid.New()

	comments := []*entity.Comment{
		makeComment(firstID, nil, 0),
		makeComment(earlyReplyID, &firstID, time.Minute),
		makeComment(secondID, nil, 2*time.Minute),
		makeComment(lateReplyID, &firstID, 3*time.Minute),
	}

	roots, total := buildCommentForest(comments)

	require.Len(t, roots, 2)
	assert.Equal(t, firstID, roots[0].ID)
	assert.Equal(t, secondID, roots[1].ID)

	require.Len(t, roots[0].Replies, 2)
	assert.Equal(t, earlyReplyID, roots[0].Replies[0].ID)
	assert.Equal(t, lateReplyID, roots[0].Replies[1].ID)
	assert.Equal(t, 4, total)
}

func TestBuildCommentForest_Empty(t *testing.T) {
	roots, total := buildCommentForest(nil)

	assert.Empty(t, roots)
	assert.Equal(t, 0, total)

	// Roots marshal as an empty array, never null.
	assert.NotNil(t, roots)
}
