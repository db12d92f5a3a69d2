package blog

import "sort"

// CommentNode is a comment with its reply subtree materialized.
type CommentNode struct {
	Comment
	Replies      []*CommentNode `json:"replies"`
	RepliesCount int            `json:"replies_count"`
}

// BuildCommentTree turns a flat set of comments for one post into the
// list of approved top-level comments, each carrying its full reply
// subtree. The whole tree is built from a single query's result to
// avoid a query per node; replies are attached regardless of their
// approval state, only the top level is gated on moderation.
func BuildCommentTree(comments []Comment) []*CommentNode {
	nodes := make(map[int64]*CommentNode, len(comments))
	for _, c := range comments {
		nodes[c.ID] = &CommentNode{Comment: c, Replies: []*CommentNode{}}
	}

	var roots []*CommentNode
	for _, c := range comments {
		node := nodes[c.ID]
		if c.ParentID == nil {
			if c.IsApproved {
				roots = append(roots, node)
			}
			continue
		}
		if parent, ok := nodes[*c.ParentID]; ok {
			parent.Replies = append(parent.Replies, node)
		}
	}

	for _, node := range nodes {
		sortReplies(node)
		node.RepliesCount = len(node.Replies)
	}
	sort.Slice(roots, func(i, j int) bool {
		return roots[i].CreatedAt.Before(roots[j].CreatedAt)
	})

	if roots == nil {
		roots = []*CommentNode{}
	}
	return roots
}

func sortReplies(n *CommentNode) {
	sort.Slice(n.Replies, func(i, j int) bool {
		return n.Replies[i].CreatedAt.Before(n.Replies[j].CreatedAt)
	})
}
