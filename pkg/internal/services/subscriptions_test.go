package services

import (
	"errors"
	"testing"

	"git.solsynth.dev/hypernet/yatube/pkg/internal/database"
	"git.solsynth.dev/hypernet/yatube/pkg/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func countFollows(t *testing.T) int64 {
	t.Helper()
	var count int64
	require.NoError(t, database.C.Model(&models.Follow{}).Count(&count).Error)
	return count
}

func TestSubscribeToSelf(t *testing.T) {
	setupDatabase(t)
	user := createAccount(t, "leo")

	edge, err := SubscribeToUser(user, user)
	require.NoError(t, err)
	assert.Nil(t, edge)
	assert.Zero(t, countFollows(t))
}

func TestSubscribeIdempotent(t *testing.T) {
	setupDatabase(t)
	user := createAccount(t, "leo")
	author := createAccount(t, "mia")

	first, err := SubscribeToUser(user, author)
	require.NoError(t, err)
	require.NotNil(t, first)

	second, err := SubscribeToUser(user, author)
	require.NoError(t, err)
	require.NotNil(t, second)
	assert.Equal(t, first.ID, second.ID)
	assert.EqualValues(t, 1, countFollows(t))

	following, err := IsSubscribedToUser(&user, author)
	require.NoError(t, err)
	assert.True(t, following)

	reverse, err := IsSubscribedToUser(&author, user)
	require.NoError(t, err)
	assert.False(t, reverse)

	subscribers, err := ListSubscribers(author)
	require.NoError(t, err)
	require.Len(t, subscribers, 1)
	assert.Equal(t, "leo", subscribers[0].Username)

	subscriptions, err := ListSubscriptions(user)
	require.NoError(t, err)
	require.Len(t, subscriptions, 1)
	assert.Equal(t, "mia", subscriptions[0].Username)
}

func TestFollowEdgeIsUnique(t *testing.T) {
	setupDatabase(t)
	user := createAccount(t, "leo")
	author := createAccount(t, "mia")

	require.NoError(t, database.C.Create(&models.Follow{UserID: user.ID, AuthorID: author.ID}).Error)
	assert.Error(t, database.C.Create(&models.Follow{UserID: user.ID, AuthorID: author.ID}).Error)
}

func TestUnsubscribe(t *testing.T) {
	setupDatabase(t)
	user := createAccount(t, "leo")
	author := createAccount(t, "mia")

	err := UnsubscribeFromUser(user, author)
	assert.True(t, errors.Is(err, ErrNotFound))

	_, err = SubscribeToUser(user, author)
	require.NoError(t, err)
	require.NoError(t, UnsubscribeFromUser(user, author))
	assert.Zero(t, countFollows(t))
}

func TestIsSubscribedAnonymous(t *testing.T) {
	setupDatabase(t)
	author := createAccount(t, "mia")

	following, err := IsSubscribedToUser(nil, author)
	require.NoError(t, err)
	assert.False(t, following)
}
