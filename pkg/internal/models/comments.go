package models

const CommentMaxLength = 200

type Comment struct {
	BaseModel

	Text string `json:"text" gorm:"size:200;not null"`

	AuthorID uint    `json:"author_id" gorm:"not null;index"`
	Author   Account `json:"author" gorm:"constraint:OnDelete:CASCADE"`

	// PostID is emptied when the post goes away, the comment itself stays.
	PostID *uint `json:"post_id" gorm:"index"`
	Post   *Post `json:"post,omitempty" gorm:"constraint:OnDelete:SET NULL"`
}
