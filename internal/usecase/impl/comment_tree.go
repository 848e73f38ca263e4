package impl

import (
	"blog/internal/domain/entity"

	"github.com/google/uuid"
)

// buildCommentForest assembles a flat, creation-time-ordered comment list
// into a forest of threads. The input ordering guarantees every parent
// appears before its replies, so one pass suffices: each comment either
// starts a root thread or attaches to an already-seen parent.
//
// A comment whose parent is absent from the input (filtered out by
// moderation, or racing a deletion) is dropped along with its subtree
// rather than surfacing as a spurious root. The returned total is the
// flat count of fetched comments, so dropped orphans still contribute
// to it even though they never appear in the forest.
func buildCommentForest(comments []*entity.Comment) ([]*entity.CommentNode, int) {
	nodes := make(map[uuid.UUID]*entity.CommentNode, len(comments))
	roots := make([]*entity.CommentNode, 0)

	for _, comment := range comments {
		node := &entity.CommentNode{
			Comment: comment,
			Replies: []*entity.CommentNode{},
		}

		if comment.ParentID == nil {
			nodes[comment.ID] = node
			roots = append(roots, node)

			continue
		}

		parent, ok := nodes[*comment.ParentID]
		if !ok {
			// Orphan: the parent was filtered out or removed. Skipping the
			// node keeps its descendants out of the map too, so the whole
			// subtree is dropped.
			continue
		}

		parent.Replies = append(parent.Replies, node)
		nodes[comment.ID] = node
	}

	return roots, len(comments)
}
