package api

import (
	"io"

	"git.solsynth.dev/hypernet/yatube/pkg/internal/http/exts"
	"git.solsynth.dev/hypernet/yatube/pkg/internal/models"
	"git.solsynth.dev/hypernet/yatube/pkg/internal/services"
	"github.com/gofiber/fiber/v2"
)

// bindPostInput reads the form fields and the optional image attachment.
func bindPostInput(c *fiber.Ctx) (services.PostInput, error) {
	var in services.PostInput
	if err := c.BodyParser(&in); err != nil {
		return in, fiber.NewError(fiber.StatusBadRequest, err.Error())
	}

	file, err := c.FormFile("image")
	if err != nil {
		// No attachment, or a body that is not multipart at all.
		return in, nil
	}

	reader, err := file.Open()
	if err != nil {
		return in, fiber.NewError(fiber.StatusBadRequest, err.Error())
	}
	defer reader.Close()

	data, err := io.ReadAll(io.LimitReader(reader, services.MaxImageSize()+1))
	if err != nil {
		return in, fiber.NewError(fiber.StatusBadRequest, err.Error())
	}
	in.Image = &services.ImageUpload{Filename: file.Filename, Data: data}

	return in, nil
}

// redisplayPostForm answers a rejected submission with the filled form and a 200.
func redisplayPostForm(c *fiber.Ctx, post *models.Post, in services.PostInput, verr *services.ValidationError) error {
	form, err := services.NewPostForm(post)
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}

	return c.Status(fiber.StatusOK).JSON(form.Redisplay(in, verr))
}

func getCreatePostForm(c *fiber.Ctx) error {
	if err := exts.EnsureAuthenticated(c); err != nil {
		return err
	}

	form, err := services.NewPostForm(nil)
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}

	return c.JSON(form)
}

func createPost(c *fiber.Ctx) error {
	if err := exts.EnsureAuthenticated(c); err != nil {
		return err
	}
	user := exts.CurrentUser(c)

	in, err := bindPostInput(c)
	if err != nil {
		return err
	}

	if _, err := services.NewPost(c.UserContext(), *user, in); err != nil {
		if verr, ok := services.AsValidationError(err); ok {
			return redisplayPostForm(c, nil, in, verr)
		}
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}

	return c.Redirect(services.ProfileURL(user.Username), fiber.StatusFound)
}

// editablePost resolves the post of the route for its author. When ok is false
// the caller returns err as is, a nil err means a redirect was already written.
func editablePost(c *fiber.Ctx) (models.Post, bool, error) {
	if err := exts.EnsureAuthenticated(c); err != nil {
		return models.Post{}, false, err
	}

	post, err := lookupPost(c)
	if err != nil {
		return post, false, err
	}

	if !services.CanEditPost(exts.CurrentUser(c), post) {
		return post, false, c.Redirect(services.PostDetailURL(post.ID), fiber.StatusFound)
	}

	return post, true, nil
}

func getEditPostForm(c *fiber.Ctx) error {
	post, ok, err := editablePost(c)
	if !ok {
		return err
	}

	form, err := services.NewPostForm(&post)
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}

	return c.JSON(form)
}

func editPost(c *fiber.Ctx) error {
	post, ok, err := editablePost(c)
	if !ok {
		return err
	}

	in, err := bindPostInput(c)
	if err != nil {
		return err
	}

	if _, err := services.EditPost(c.UserContext(), post, in); err != nil {
		if verr, ok := services.AsValidationError(err); ok {
			return redisplayPostForm(c, &post, in, verr)
		}
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}

	return c.Redirect(services.PostDetailURL(post.ID), fiber.StatusFound)
}
