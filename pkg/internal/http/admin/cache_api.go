package admin

import (
	"git.solsynth.dev/hypernet/yatube/pkg/internal/cache"
	"github.com/gofiber/fiber/v2"
)

func adminClearCache(pages *cache.PageCache) fiber.Handler {
	return func(c *fiber.Ctx) error {
		if err := pages.Clear(c.UserContext()); err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, err.Error())
		}

		return c.SendStatus(fiber.StatusOK)
	}
}
