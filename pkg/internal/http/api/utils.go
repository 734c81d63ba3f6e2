package api

import (
	"errors"

	"git.solsynth.dev/hypernet/yatube/pkg/internal/models"
	"git.solsynth.dev/hypernet/yatube/pkg/internal/services"
	"github.com/gofiber/fiber/v2"
)

// lookupError turns a failed lookup into a 404, anything else stays a server failure.
func lookupError(err error) error {
	if errors.Is(err, services.ErrNotFound) {
		return fiber.NewError(fiber.StatusNotFound, err.Error())
	}
	return fiber.NewError(fiber.StatusInternalServerError, err.Error())
}

func lookupPost(c *fiber.Ctx) (models.Post, error) {
	id, err := c.ParamsInt("postId")
	if err != nil || id <= 0 {
		return models.Post{}, fiber.NewError(fiber.StatusNotFound, "post not found")
	}

	post, err := services.GetPost(uint(id))
	if err != nil {
		return post, lookupError(err)
	}
	return post, nil
}

func lookupAuthor(c *fiber.Ctx) (models.Account, error) {
	author, err := services.GetAccountByUsername(c.Params("username"))
	if err != nil {
		return author, lookupError(err)
	}
	return author, nil
}
