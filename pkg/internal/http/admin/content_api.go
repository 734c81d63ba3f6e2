package admin

import (
	"errors"

	"git.solsynth.dev/hypernet/yatube/pkg/internal/http/exts"
	"git.solsynth.dev/hypernet/yatube/pkg/internal/services"
	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog/log"
)

func notFoundOr(err error) error {
	if errors.Is(err, services.ErrNotFound) {
		return fiber.NewError(fiber.StatusNotFound, err.Error())
	}
	return fiber.NewError(fiber.StatusInternalServerError, err.Error())
}

func adminCreateGroup(c *fiber.Ctx) error {
	var data services.GroupInput
	if err := exts.BindAndValidate(c, &data); err != nil {
		return err
	}

	group, err := services.NewGroup(data)
	if err != nil {
		if verr, ok := services.AsValidationError(err); ok {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error":  verr.Error(),
				"fields": verr.Fields,
			})
		}
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}

	return c.Status(fiber.StatusCreated).JSON(group)
}

func adminDeleteGroup(c *fiber.Ctx) error {
	group, err := services.GetGroup(c.Params("slug"))
	if err != nil {
		return notFoundOr(err)
	}

	if err := services.DeleteGroup(group); err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}

	log.Info().Str("slug", group.Slug).Msg("Administrator deleted a group.")
	return c.SendStatus(fiber.StatusOK)
}

func adminDeleteAccount(c *fiber.Ctx) error {
	account, err := services.GetAccountByUsername(c.Params("username"))
	if err != nil {
		return notFoundOr(err)
	}

	if err := services.DeleteAccount(account); err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}

	log.Info().Str("username", account.Username).Msg("Administrator deleted an account.")
	return c.SendStatus(fiber.StatusOK)
}

func adminDeletePost(c *fiber.Ctx) error {
	id, err := c.ParamsInt("postId")
	if err != nil || id <= 0 {
		return fiber.NewError(fiber.StatusNotFound, "post not found")
	}

	post, err := services.GetPost(uint(id))
	if err != nil {
		return notFoundOr(err)
	}

	if err := services.DeletePost(post); err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}

	log.Info().Uint("id", post.ID).Msg("Administrator deleted a post.")
	return c.SendStatus(fiber.StatusOK)
}
