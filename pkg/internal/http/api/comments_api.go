package api

import (
	"git.solsynth.dev/hypernet/yatube/pkg/internal/http/exts"
	"git.solsynth.dev/hypernet/yatube/pkg/internal/services"
	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog/log"
)

// createComment lands on the post page whether or not the comment was accepted.
func createComment(c *fiber.Ctx) error {
	if err := exts.EnsureAuthenticated(c); err != nil {
		return err
	}
	user := exts.CurrentUser(c)

	post, err := lookupPost(c)
	if err != nil {
		return err
	}

	var in services.CommentInput
	if err := c.BodyParser(&in); err != nil {
		log.Debug().Err(err).Msg("Unable to parse comment submission.")
	} else if _, err := services.NewComment(*user, post, in); err != nil {
		if _, ok := services.AsValidationError(err); !ok {
			return fiber.NewError(fiber.StatusInternalServerError, err.Error())
		}
	}

	return c.Redirect(services.PostDetailURL(post.ID), fiber.StatusFound)
}
