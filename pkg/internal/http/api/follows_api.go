package api

import (
	"git.solsynth.dev/hypernet/yatube/pkg/internal/http/exts"
	"git.solsynth.dev/hypernet/yatube/pkg/internal/services"
	"github.com/gofiber/fiber/v2"
)

func followAuthor(c *fiber.Ctx) error {
	if err := exts.EnsureAuthenticated(c); err != nil {
		return err
	}
	user := exts.CurrentUser(c)

	author, err := lookupAuthor(c)
	if err != nil {
		return err
	}

	if _, err := services.SubscribeToUser(*user, author); err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}

	return c.Redirect(services.ProfileURL(author.Username), fiber.StatusFound)
}

func unfollowAuthor(c *fiber.Ctx) error {
	if err := exts.EnsureAuthenticated(c); err != nil {
		return err
	}
	user := exts.CurrentUser(c)

	author, err := lookupAuthor(c)
	if err != nil {
		return err
	}

	if err := services.UnsubscribeFromUser(*user, author); err != nil {
		return lookupError(err)
	}

	return c.Redirect(services.ProfileURL(author.Username), fiber.StatusFound)
}
