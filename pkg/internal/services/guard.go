package services

import "git.solsynth.dev/hypernet/yatube/pkg/internal/models"

func IsAuthenticated(user *models.Account) bool {
	return user != nil && user.ID > 0
}

// CanEditPost only lets the author touch the post, there are no moderators.
func CanEditPost(user *models.Account, post models.Post) bool {
	return IsAuthenticated(user) && user.ID == post.AuthorID
}
