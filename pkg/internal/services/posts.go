package services

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"git.solsynth.dev/hypernet/yatube/pkg/internal/database"
	"git.solsynth.dev/hypernet/yatube/pkg/internal/models"
	"git.solsynth.dev/hypernet/yatube/pkg/internal/storage"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"
)

const PostDefaultOrder = "published_at DESC, id DESC"

// PostInput is what a client may submit for a post.
// Author and publish time never come from here.
type PostInput struct {
	Text       string       `form:"text" validate:"required"`
	Group      string       `form:"group"`
	ClearImage string       `form:"image-clear"`
	Image      *ImageUpload `form:"-"`
}

func FilterPostWithGroup(tx *gorm.DB, groupID uint) *gorm.DB {
	return tx.Where("group_id = ?", groupID)
}

func FilterPostWithAuthor(tx *gorm.DB, authorID uint) *gorm.DB {
	return tx.Where("author_id = ?", authorID)
}

func FilterPostWithFollowing(tx *gorm.DB, userID uint) *gorm.DB {
	following := database.C.Model(&models.Follow{}).
		Select("author_id").
		Where("user_id = ?", userID)
	return tx.Where("author_id IN (?)", following)
}

func PreloadGeneral(tx *gorm.DB) *gorm.DB {
	return tx.
		Preload("Author").
		Preload("Group")
}

func GetPost(id uint) (models.Post, error) {
	var item models.Post
	if err := PreloadGeneral(database.C).
		Where("id = ?", id).
		First(&item).Error; err != nil {
		return item, fmt.Errorf("unable to get post #%d: %w", id, err)
	}

	return item, nil
}

func CountPost(tx *gorm.DB) (int64, error) {
	var count int64
	if err := tx.Model(&models.Post{}).Count(&count).Error; err != nil {
		return count, err
	}

	return count, nil
}

func ListPost(tx *gorm.DB, take int, offset int, order any) ([]models.Post, error) {
	if take > 100 {
		take = 100
	}

	items := make([]models.Post, 0, take)
	if err := PreloadGeneral(tx).
		Limit(take).Offset(offset).
		Order(order).
		Find(&items).Error; err != nil {
		return items, err
	}

	return items, nil
}

// resolvePostInput validates the submission and returns the group it points at.
func resolvePostInput(in *PostInput) (*models.Group, error) {
	in.Text = strings.TrimSpace(in.Text)
	in.Group = strings.TrimSpace(in.Group)

	verr, err := CollectValidation(*in)
	if err != nil {
		return nil, err
	}

	var group *models.Group
	if len(in.Group) > 0 {
		id, err := strconv.ParseUint(in.Group, 10, 64)
		if err != nil {
			verr.Add("group", "select a valid choice")
		} else if item, err := GetGroupWithID(uint(id)); err != nil {
			if !errors.Is(err, ErrNotFound) {
				return nil, err
			}
			verr.Add("group", "select a valid choice, that group does not exist")
		} else {
			group = &item
		}
	}

	if in.Image != nil {
		if err := ValidateImage(in.Image); err != nil {
			verr.Add("image", err.Error())
		}
	}

	return group, verr.OrNil()
}

func NewPost(ctx context.Context, user models.Account, in PostInput) (models.Post, error) {
	group, err := resolvePostInput(&in)
	if err != nil {
		return models.Post{}, err
	}

	log.Debug().Uint("author", user.ID).Msg("Posting a post...")
	start := time.Now()

	item := models.Post{
		Text:        in.Text,
		Language:    DetectLanguage(in.Text),
		PublishedAt: time.Now(),
		AuthorID:    user.ID,
		Author:      user,
	}
	if group != nil {
		item.GroupID = &group.ID
		item.Group = group
	}

	if in.Image != nil {
		if item.Image, err = StoreImage(ctx, in.Image); err != nil {
			return item, err
		}
	}

	log.Debug().Msg("Saving post record into database...")
	if err := database.C.Omit("Author", "Group").Create(&item).Error; err != nil {
		DiscardImage(ctx, item.Image)
		return item, err
	}

	log.Debug().Dur("elapsed", time.Since(start)).Uint("id", item.ID).Msg("The post is posted.")
	return item, nil
}

// EditPost applies a submission to an existing post. The caller checks ownership.
func EditPost(ctx context.Context, item models.Post, in PostInput) (models.Post, error) {
	group, err := resolvePostInput(&in)
	if err != nil {
		return item, err
	}

	item.Text = in.Text
	item.Language = DetectLanguage(in.Text)
	if group != nil {
		item.GroupID = &group.ID
		item.Group = group
	} else {
		item.GroupID = nil
		item.Group = nil
	}

	previous := item.Image
	if in.Image != nil {
		if item.Image, err = StoreImage(ctx, in.Image); err != nil {
			return item, err
		}
	} else if len(in.ClearImage) > 0 {
		item.Image = ""
	}

	err = database.C.Model(&item).
		Select("text", "language", "group_id", "image", "updated_at").
		Updates(map[string]any{
			"text":       item.Text,
			"language":   item.Language,
			"group_id":   item.GroupID,
			"image":      item.Image,
			"updated_at": time.Now(),
		}).Error
	if err != nil {
		if item.Image != previous {
			DiscardImage(ctx, item.Image)
		}
		return item, err
	}
	item.ImageURL = storage.URL(item.Image)

	return item, nil
}

// DeletePost removes the post, its comments stay with an empty post reference.
func DeletePost(item models.Post) error {
	return PurgeRecords(database.KindPost, item.ID)
}
