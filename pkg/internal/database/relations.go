package database

import "git.solsynth.dev/hypernet/yatube/pkg/internal/models"

type DeletionStrategy int8

const (
	// DeleteCascade removes the referencing rows along with the target.
	DeleteCascade = DeletionStrategy(iota)
	// DeleteNullify keeps the referencing rows and empties the column.
	DeleteNullify
)

const (
	KindAccount = "account"
	KindGroup   = "group"
	KindPost    = "post"
	KindComment = "comment"
	KindFollow  = "follow"
)

type Reference struct {
	Kind     string
	Column   string
	Strategy DeletionStrategy
}

var Models = map[string]func() any{
	KindAccount: func() any { return &models.Account{} },
	KindGroup:   func() any { return &models.Group{} },
	KindPost:    func() any { return &models.Post{} },
	KindComment: func() any { return &models.Comment{} },
	KindFollow:  func() any { return &models.Follow{} },
}

// References lists, per kind, who points at it and what happens to them
// when a row of that kind is deleted.
var References = map[string][]Reference{
	KindAccount: {
		{Kind: KindPost, Column: "author_id", Strategy: DeleteCascade},
		{Kind: KindComment, Column: "author_id", Strategy: DeleteCascade},
		{Kind: KindFollow, Column: "user_id", Strategy: DeleteCascade},
		{Kind: KindFollow, Column: "author_id", Strategy: DeleteCascade},
	},
	KindGroup: {
		{Kind: KindPost, Column: "group_id", Strategy: DeleteNullify},
	},
	KindPost: {
		{Kind: KindComment, Column: "post_id", Strategy: DeleteNullify},
	},
}
