package services

import (
	"fmt"
	"strings"

	"git.solsynth.dev/hypernet/yatube/pkg/internal/database"
	"git.solsynth.dev/hypernet/yatube/pkg/internal/models"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm/clause"
)

func GetAccountByUsername(username string) (models.Account, error) {
	var account models.Account
	if err := database.C.Where("username = ?", username).First(&account).Error; err != nil {
		return account, fmt.Errorf("unable to get account %q: %w", username, err)
	}
	return account, nil
}

// EnsureAccount returns the local account of an authenticated identity,
// creating it the first time the identity shows up.
func EnsureAccount(username string) (models.Account, error) {
	username = strings.TrimSpace(username)
	if len(username) == 0 {
		return models.Account{}, fmt.Errorf("username cannot be empty")
	}

	account := models.Account{Username: username}
	tx := database.C.Clauses(clause.OnConflict{DoNothing: true}).Create(&account)
	if tx.Error != nil {
		return account, fmt.Errorf("unable to create account: %v", tx.Error)
	} else if tx.RowsAffected > 0 {
		log.Info().Str("username", username).Uint("id", account.ID).Msg("Local account created for new identity.")
		return account, nil
	}

	return GetAccountByUsername(username)
}

func CountAccountPosts(account models.Account) (int64, error) {
	return CountPost(FilterPostWithAuthor(database.C, account.ID))
}

func ListAccountComments(account models.Account) ([]models.Comment, error) {
	var comments []models.Comment
	if err := database.C.
		Where("author_id = ?", account.ID).
		Order("created_at DESC, id DESC").
		Find(&comments).Error; err != nil {
		return comments, err
	}
	return comments, nil
}

// DeleteAccount removes the account together with everything it authored
// and every follow edge touching it.
func DeleteAccount(account models.Account) error {
	if err := PurgeRecords(database.KindAccount, account.ID); err != nil {
		return err
	}
	log.Info().Str("username", account.Username).Msg("Account deleted with its posts, comments and follow edges.")
	return nil
}
