package services

import (
	"strings"

	"git.solsynth.dev/hypernet/yatube/pkg/internal/database"
	"git.solsynth.dev/hypernet/yatube/pkg/internal/models"
	"github.com/rs/zerolog/log"
)

type CommentInput struct {
	Text string `form:"text" validate:"required,max=200"`
}

// CommentForm describes the blank comment form shown under a post.
type CommentForm struct {
	Action    string `json:"action"`
	Field     string `json:"field"`
	MaxLength int    `json:"max_length"`
	Required  bool   `json:"required"`
}

func NewCommentForm(post models.Post) CommentForm {
	return CommentForm{
		Action:    PostCommentURL(post.ID),
		Field:     "text",
		MaxLength: models.CommentMaxLength,
		Required:  true,
	}
}

func ListPostComments(post models.Post) ([]models.Comment, error) {
	comments := make([]models.Comment, 0)
	if err := database.C.
		Where("post_id = ?", post.ID).
		Preload("Author").
		Order("created_at DESC, id DESC").
		Find(&comments).Error; err != nil {
		return comments, err
	}
	return comments, nil
}

func CountPostComments(post models.Post) int64 {
	var count int64
	if err := database.C.Model(&models.Comment{}).
		Where("post_id = ?", post.ID).
		Count(&count).Error; err != nil {
		return 0
	}
	return count
}

func NewComment(user models.Account, post models.Post, in CommentInput) (models.Comment, error) {
	in.Text = strings.TrimSpace(in.Text)
	if err := ValidateStruct(in); err != nil {
		return models.Comment{}, err
	}

	comment := models.Comment{
		Text:     in.Text,
		AuthorID: user.ID,
		PostID:   &post.ID,
	}
	if err := database.C.Create(&comment).Error; err != nil {
		return comment, err
	}
	comment.Author = user

	log.Debug().Uint("post", post.ID).Uint("author", user.ID).Msg("Comment added.")
	return comment, nil
}
