package services

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dennysmatos/mts20t1-ppp-nutrify-api/models"
)

func TestRegisterFirstUserBecomesAdmin(t *testing.T) {
	store := newTestStore(t)
	svc := NewUserService(store.Users, testSecret)

	first, err := svc.Register(RegisterInput{Name: "A", Email: "a@example.com", Password: "123456"})
	require.NoError(t, err)
	assert.Equal(t, models.RoleAdmin, first.Role)

	second, err := svc.Register(RegisterInput{Name: "B", Email: "b@example.com", Password: "123456"})
	require.NoError(t, err)
	assert.Equal(t, models.RoleUser, second.Role)
}

func TestRegisterDuplicateEmail(t *testing.T) {
	store := newTestStore(t)
	svc := NewUserService(store.Users, testSecret)

	_, err := svc.Register(RegisterInput{Name: "A", Email: "a@example.com", Password: "123456"})
	require.NoError(t, err)

	_, err = svc.Register(RegisterInput{Name: "A2", Email: "a@example.com", Password: "123456"})
	var httpErr *HTTPError
	require.ErrorAs(t, err, &httpErr)
	assert.Equal(t, http.StatusBadRequest, httpErr.Status)
	assert.Equal(t, "Email já cadastrado", httpErr.Message)
}

func TestRegisterDefaultsCalorieGoal(t *testing.T) {
	store := newTestStore(t)
	svc := NewUserService(store.Users, testSecret)

	profile, err := svc.Register(RegisterInput{Name: "A", Email: "a@example.com", Password: "123456"})
	require.NoError(t, err)

	user, ok := store.Users.FindByID(profile.ID)
	require.True(t, ok)
	assert.Equal(t, float64(models.DefaultCalorieGoal), user.CalorieGoal)
	assert.NotEqual(t, "123456", user.Password, "password is stored hashed")
}

func TestLogin(t *testing.T) {
	store := newTestStore(t)
	svc := NewUserService(store.Users, testSecret)

	_, err := svc.Register(RegisterInput{Name: "A", Email: "a@example.com", Password: "123456"})
	require.NoError(t, err)

	token, err := svc.Login("a@example.com", "123456")
	require.NoError(t, err)
	assert.NotEmpty(t, token)

	_, err = svc.Login("a@example.com", "wrong")
	var httpErr *HTTPError
	require.ErrorAs(t, err, &httpErr)
	assert.Equal(t, http.StatusUnauthorized, httpErr.Status)

	_, err = svc.Login("missing@example.com", "123456")
	require.ErrorAs(t, err, &httpErr)
	assert.Equal(t, http.StatusUnauthorized, httpErr.Status)
}

func TestGetProfile(t *testing.T) {
	store := newTestStore(t)
	svc := NewUserService(store.Users, testSecret)

	registered, err := svc.Register(RegisterInput{Name: "A", Email: "a@example.com", Password: "123456"})
	require.NoError(t, err)

	profile, err := svc.GetProfile(registered.ID)
	require.NoError(t, err)
	assert.Equal(t, "a@example.com", profile.Email)
	assert.Equal(t, float64(models.DefaultCalorieGoal), profile.CalorieGoal)

	_, err = svc.GetProfile("missing")
	var httpErr *HTTPError
	require.ErrorAs(t, err, &httpErr)
	assert.Equal(t, http.StatusNotFound, httpErr.Status)
}
