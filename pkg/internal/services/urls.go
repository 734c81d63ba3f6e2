package services

import (
	"fmt"
	"net/url"
)

func IndexURL() string {
	return "/"
}

func GroupURL(slug string) string {
	return fmt.Sprintf("/group/%s/", url.PathEscape(slug))
}

func ProfileURL(username string) string {
	return fmt.Sprintf("/profile/%s/", url.PathEscape(username))
}

func PostDetailURL(id uint) string {
	return fmt.Sprintf("/posts/%d/", id)
}

func PostEditURL(id uint) string {
	return fmt.Sprintf("/posts/%d/edit/", id)
}

func PostCommentURL(id uint) string {
	return fmt.Sprintf("/posts/%d/comment/", id)
}

func PostCreateURL() string {
	return "/create/"
}

func FollowFeedURL() string {
	return "/follow/"
}
