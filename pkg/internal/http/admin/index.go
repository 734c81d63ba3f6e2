package admin

import (
	"git.solsynth.dev/hypernet/yatube/pkg/internal/cache"
	"git.solsynth.dev/hypernet/yatube/pkg/internal/http/exts"
	"github.com/gofiber/fiber/v2"
)

func MapControllers(app *fiber.App, baseURL string, pages *cache.PageCache) {
	admin := app.Group(baseURL, exts.EnsureAdministrator)
	{
		admin.Post("/groups", adminCreateGroup)
		admin.Delete("/groups/:slug", adminDeleteGroup)
		admin.Delete("/accounts/:username", adminDeleteAccount)
		admin.Delete("/posts/:postId", adminDeletePost)
		admin.Post("/cache/clear", adminClearCache(pages))
	}
}
