package services

import (
	"fmt"

	"git.solsynth.dev/hypernet/yatube/pkg/internal/database"
	"git.solsynth.dev/hypernet/yatube/pkg/internal/models"
)

type GroupFeed struct {
	Group models.Group      `json:"group"`
	URL   string            `json:"url"`
	Page  Page[models.Post] `json:"page"`
}

type ProfileFeed struct {
	Author         models.Account    `json:"author"`
	URL            string            `json:"url"`
	PostCount      int64             `json:"post_count"`
	FollowingCount int64             `json:"following_count"`
	Following      bool              `json:"following"`
	Page           Page[models.Post] `json:"page"`
}

type PostDetail struct {
	Post      models.Post      `json:"post"`
	PostCount int64            `json:"post_count"`
	Comments  []models.Comment `json:"comments"`
	Form      CommentForm      `json:"form"`
}

// GetIndexFeed lists every post.
func GetIndexFeed(page string) (Page[models.Post], error) {
	return ListPostPage(database.C, page)
}

// GetGroupFeed lists the posts of one group, an unknown slug is ErrNotFound.
func GetGroupFeed(slug string, page string) (GroupFeed, error) {
	group, err := GetGroup(slug)
	if err != nil {
		return GroupFeed{}, err
	}

	items, err := ListPostPage(FilterPostWithGroup(database.C, group.ID), page)
	if err != nil {
		return GroupFeed{}, fmt.Errorf("unable to list group posts: %v", err)
	}

	return GroupFeed{Group: group, URL: GroupURL(group.Slug), Page: items}, nil
}

// GetProfileFeed lists the posts of one author. The following flag is only
// ever true for an authenticated viewer.
func GetProfileFeed(username string, page string, viewer *models.Account) (ProfileFeed, error) {
	author, err := GetAccountByUsername(username)
	if err != nil {
		return ProfileFeed{}, err
	}

	tx := FilterPostWithAuthor(database.C, author.ID)
	items, err := ListPostPage(tx, page)
	if err != nil {
		return ProfileFeed{}, fmt.Errorf("unable to list profile posts: %v", err)
	}

	following, err := IsSubscribedToUser(viewer, author)
	if err != nil {
		return ProfileFeed{}, err
	}

	followingCount, err := CountSubscriptions(author)
	if err != nil {
		return ProfileFeed{}, fmt.Errorf("unable to count subscriptions: %v", err)
	}

	return ProfileFeed{
		Author:         author,
		URL:            ProfileURL(author.Username),
		PostCount:      items.Count,
		FollowingCount: followingCount,
		Following:      following,
		Page:           items,
	}, nil
}

// GetFollowingFeed lists posts by everyone user follows, empty when they follow nobody.
func GetFollowingFeed(user models.Account, page string) (Page[models.Post], error) {
	return ListPostPage(FilterPostWithFollowing(database.C, user.ID), page)
}

func GetPostDetail(id uint) (PostDetail, error) {
	post, err := GetPost(id)
	if err != nil {
		return PostDetail{}, err
	}

	comments, err := ListPostComments(post)
	if err != nil {
		return PostDetail{}, fmt.Errorf("unable to list comments: %v", err)
	}

	count, err := CountAccountPosts(post.Author)
	if err != nil {
		return PostDetail{}, fmt.Errorf("unable to count author posts: %v", err)
	}

	return PostDetail{
		Post:      post,
		PostCount: count,
		Comments:  comments,
		Form:      NewCommentForm(post),
	}, nil
}
