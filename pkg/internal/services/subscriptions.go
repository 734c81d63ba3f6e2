package services

import (
	"errors"
	"fmt"

	"git.solsynth.dev/hypernet/yatube/pkg/internal/database"
	"git.solsynth.dev/hypernet/yatube/pkg/internal/models"
	"github.com/rs/zerolog/log"
	"github.com/samber/lo"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

func GetSubscriptionOnUser(user models.Account, target models.Account) (*models.Follow, error) {
	var subscription models.Follow
	if err := database.C.Where("user_id = ? AND author_id = ?", user.ID, target.ID).First(&subscription).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("unable to get subscription: %v", err)
	}
	return &subscription, nil
}

func IsSubscribedToUser(user *models.Account, target models.Account) (bool, error) {
	if !IsAuthenticated(user) {
		return false, nil
	}
	subscription, err := GetSubscriptionOnUser(*user, target)
	return subscription != nil, err
}

// SubscribeToUser makes sure exactly one edge from user to target exists.
// Following yourself is ignored, the returned edge is nil in that case.
func SubscribeToUser(user models.Account, target models.Account) (*models.Follow, error) {
	if user.ID == target.ID {
		log.Debug().Uint("user", user.ID).Msg("Ignored self subscription.")
		return nil, nil
	}

	subscription := models.Follow{
		UserID:   user.ID,
		AuthorID: target.ID,
	}
	if err := database.C.
		Omit("User", "Author").
		Clauses(clause.OnConflict{DoNothing: true}).
		Create(&subscription).Error; err != nil {
		return nil, fmt.Errorf("unable to create subscription: %v", err)
	}

	existing, err := GetSubscriptionOnUser(user, target)
	if err != nil {
		return nil, err
	} else if existing == nil {
		return nil, fmt.Errorf("subscription vanished right after creation")
	}
	return existing, nil
}

func UnsubscribeFromUser(user models.Account, target models.Account) error {
	tx := database.C.
		Where("user_id = ? AND author_id = ?", user.ID, target.ID).
		Delete(&models.Follow{})
	if tx.Error != nil {
		return fmt.Errorf("unable to delete subscription: %v", tx.Error)
	} else if tx.RowsAffected == 0 {
		return fmt.Errorf("subscription does not exist: %w", ErrNotFound)
	}
	return nil
}

func CountSubscriptions(user models.Account) (int64, error) {
	var count int64
	err := database.C.Model(&models.Follow{}).Where("user_id = ?", user.ID).Count(&count).Error
	return count, err
}

// ListSubscribers returns the accounts following target.
func ListSubscribers(target models.Account) ([]models.Account, error) {
	var subscriptions []models.Follow
	if err := database.C.
		Where("author_id = ?", target.ID).
		Preload("User").
		Order("created_at DESC").
		Find(&subscriptions).Error; err != nil {
		return nil, err
	}
	return lo.Map(subscriptions, func(item models.Follow, _ int) models.Account {
		return item.User
	}), nil
}

// ListSubscriptions returns the accounts user follows.
func ListSubscriptions(user models.Account) ([]models.Account, error) {
	var subscriptions []models.Follow
	if err := database.C.
		Where("user_id = ?", user.ID).
		Preload("Author").
		Order("created_at DESC").
		Find(&subscriptions).Error; err != nil {
		return nil, err
	}
	return lo.Map(subscriptions, func(item models.Follow, _ int) models.Account {
		return item.Author
	}), nil
}
