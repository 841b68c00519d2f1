package services

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/dennysmatos/mts20t1-ppp-nutrify-api/models"
	"github.com/dennysmatos/mts20t1-ppp-nutrify-api/repositories"
)

const testSecret = "test_secret"

func newTestStore(t *testing.T) *repositories.Store {
	t.Helper()
	store, err := repositories.Open(t.TempDir())
	require.NoError(t, err)
	return store
}

func createFood(t *testing.T, store *repositories.Store, name string, calories float64) models.Food {
	t.Helper()
	food, err := store.Foods.Create(models.Food{Name: name, Calories: calories})
	require.NoError(t, err)
	return food
}

func createUser(t *testing.T, store *repositories.Store, email, role string) models.User {
	t.Helper()
	user, err := store.Users.Create(models.User{
		Name:        "Test",
		Email:       email,
		Password:    "hash",
		Role:        role,
		CalorieGoal: models.DefaultCalorieGoal,
	})
	require.NoError(t, err)
	return user
}
