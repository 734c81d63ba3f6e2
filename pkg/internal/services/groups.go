package services

import (
	"errors"
	"fmt"
	"regexp"
	"strings"

	"git.solsynth.dev/hypernet/yatube/pkg/internal/database"
	"git.solsynth.dev/hypernet/yatube/pkg/internal/models"
	"gorm.io/gorm"
)

var groupSlugPattern = regexp.MustCompile(`^[-a-zA-Z0-9_]+$`)

type GroupInput struct {
	Title       string `json:"title" form:"title" validate:"required,max=200"`
	Slug        string `json:"slug" form:"slug" validate:"required,max=50"`
	Description string `json:"description" form:"description" validate:"required"`
}

func ListGroup() ([]models.Group, error) {
	var groups []models.Group
	err := database.C.Order("title ASC").Find(&groups).Error

	return groups, err
}

func GetGroup(slug string) (models.Group, error) {
	var group models.Group
	if err := database.C.Where("slug = ?", slug).First(&group).Error; err != nil {
		return group, fmt.Errorf("unable to get group %q: %w", slug, err)
	}
	return group, nil
}

func GetGroupWithID(id uint) (models.Group, error) {
	var group models.Group
	if err := database.C.Where("id = ?", id).First(&group).Error; err != nil {
		return group, fmt.Errorf("unable to get group by id: %w", err)
	}
	return group, nil
}

func NewGroup(in GroupInput) (models.Group, error) {
	in.Title = strings.TrimSpace(in.Title)
	in.Slug = strings.TrimSpace(in.Slug)
	in.Description = strings.TrimSpace(in.Description)

	verr, err := CollectValidation(in)
	if err != nil {
		return models.Group{}, err
	}
	if len(in.Slug) > 0 && !groupSlugPattern.MatchString(in.Slug) {
		verr.Add("slug", "enter a valid slug consisting of letters, numbers, underscores or hyphens")
	}
	if _, ok := verr.Fields["slug"]; !ok {
		if _, err := GetGroup(in.Slug); err == nil {
			verr.Add("slug", "group with this slug already exists")
		} else if !errors.Is(err, gorm.ErrRecordNotFound) {
			return models.Group{}, err
		}
	}
	if err := verr.OrNil(); err != nil {
		return models.Group{}, err
	}

	group := models.Group{
		Title:       in.Title,
		Slug:        in.Slug,
		Description: in.Description,
	}
	err = database.C.Create(&group).Error

	return group, err
}

// DeleteGroup removes the group, its posts stay and lose the group reference.
func DeleteGroup(group models.Group) error {
	return PurgeRecords(database.KindGroup, group.ID)
}
