package api

import (
	"fmt"

	"git.solsynth.dev/hypernet/yatube/pkg/internal/cache"
	"git.solsynth.dev/hypernet/yatube/pkg/internal/http/exts"
	"git.solsynth.dev/hypernet/yatube/pkg/internal/services"
	"github.com/gofiber/fiber/v2"
	jsoniter "github.com/json-iterator/go"
	"github.com/rs/zerolog/log"
)

// getIndexFeed serves the global feed out of the page cache. Writes never
// evict it, a new post shows up once the entry expires or gets cleared.
func getIndexFeed(pages *cache.PageCache) fiber.Handler {
	return func(c *fiber.Ctx) error {
		key := fmt.Sprintf("index#%s", c.Query("page"))
		if body, ok := pages.Get(c.UserContext(), key); ok {
			c.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSON)
			return c.Send(body)
		}

		page, err := services.GetIndexFeed(c.Query("page"))
		if err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, err.Error())
		}

		body, err := jsoniter.Marshal(page)
		if err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, err.Error())
		}
		if err := pages.Put(c.UserContext(), key, body, pages.TTL()); err != nil {
			log.Warn().Err(err).Str("key", key).Msg("An error occurred when caching the index page...")
		}

		c.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSON)
		return c.Send(body)
	}
}

func getGroupFeed(c *fiber.Ctx) error {
	feed, err := services.GetGroupFeed(c.Params("slug"), c.Query("page"))
	if err != nil {
		return lookupError(err)
	}

	return c.JSON(feed)
}

func getProfileFeed(c *fiber.Ctx) error {
	feed, err := services.GetProfileFeed(c.Params("username"), c.Query("page"), exts.CurrentUser(c))
	if err != nil {
		return lookupError(err)
	}

	return c.JSON(feed)
}

func getFollowingFeed(c *fiber.Ctx) error {
	if err := exts.EnsureAuthenticated(c); err != nil {
		return err
	}
	user := exts.CurrentUser(c)

	page, err := services.GetFollowingFeed(*user, c.Query("page"))
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}

	return c.JSON(page)
}

func getPostDetail(c *fiber.Ctx) error {
	id, err := c.ParamsInt("postId")
	if err != nil || id <= 0 {
		return fiber.NewError(fiber.StatusNotFound, "post not found")
	}

	detail, err := services.GetPostDetail(uint(id))
	if err != nil {
		return lookupError(err)
	}

	return c.JSON(detail)
}

func listGroup(c *fiber.Ctx) error {
	groups, err := services.ListGroup()
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}

	return c.JSON(groups)
}
