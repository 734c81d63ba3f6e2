package api

import (
	"git.solsynth.dev/hypernet/yatube/pkg/internal/cache"
	"git.solsynth.dev/hypernet/yatube/pkg/internal/services"
	"github.com/gofiber/fiber/v2"
)

func MapAPIs(app *fiber.App, baseURL string, pages *cache.PageCache) {
	api := app.Group(baseURL)
	{
		api.Get(services.IndexURL(), getIndexFeed(pages))
		api.Get(services.FollowFeedURL(), getFollowingFeed)
		api.Get("/groups/", listGroup)
		api.Get("/group/:slug/", getGroupFeed)

		profiles := api.Group("/profile/:username")
		{
			profiles.Get("/", getProfileFeed)
			profiles.Post("/follow/", followAuthor)
			profiles.Post("/unfollow/", unfollowAuthor)
		}

		api.Get(services.PostCreateURL(), getCreatePostForm)
		api.Post(services.PostCreateURL(), createPost)

		posts := api.Group("/posts/:postId")
		{
			posts.Get("/", getPostDetail)
			posts.Get("/edit/", getEditPostForm)
			posts.Post("/edit/", editPost)
			posts.Post("/comment/", createComment)
		}
	}
}
