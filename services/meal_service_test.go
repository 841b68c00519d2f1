package services

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dennysmatos/mts20t1-ppp-nutrify-api/models"
)

func TestMealCreateComputesTotals(t *testing.T) {
	store := newTestStore(t)
	svc := NewMealService(store.Meals, store.Foods)

	rice, err := store.Foods.Create(models.Food{Name: "Arroz", Calories: 130, Protein: 2.7, Carbs: 28, Fat: 0.3})
	require.NoError(t, err)
	beans, err := store.Foods.Create(models.Food{Name: "Feijão", Calories: 77, Protein: 5.2, Carbs: 14, Fat: 0.5})
	require.NoError(t, err)

	meal, err := svc.Create("u1", []string{rice.ID, beans.ID})
	require.NoError(t, err)
	assert.Equal(t, float64(207), meal.TotalCalories)
	assert.InDelta(t, 7.9, meal.TotalProtein, 1e-9)
	assert.Equal(t, float64(42), meal.TotalCarbs)
	assert.InDelta(t, 0.8, meal.TotalFat, 1e-9)
	assert.False(t, meal.Date.IsZero(), "date is server-assigned")
	assert.Equal(t, "u1", meal.User)
}

func TestMealCreateRejectsEmptyOrDangling(t *testing.T) {
	store := newTestStore(t)
	svc := NewMealService(store.Meals, store.Foods)

	var httpErr *HTTPError
	_, err := svc.Create("u1", nil)
	require.ErrorAs(t, err, &httpErr)
	assert.Equal(t, http.StatusBadRequest, httpErr.Status)
	assert.Equal(t, "Foods deve ser um array não vazio", httpErr.Message)

	_, err = svc.Create("u1", []string{"missing-food"})
	require.ErrorAs(t, err, &httpErr)
	assert.Equal(t, http.StatusBadRequest, httpErr.Status)
	assert.Equal(t, "Um ou mais alimentos não foram encontrados", httpErr.Message)

	// nothing was persisted
	assert.Empty(t, store.Meals.FindAll())
}

func TestMealListRecomputesTotalsAfterFoodEdit(t *testing.T) {
	store := newTestStore(t)
	svc := NewMealService(store.Meals, store.Foods)

	rice := createFood(t, store, "Arroz", 130)
	meal, err := svc.Create("u1", []string{rice.ID})
	require.NoError(t, err)
	assert.Equal(t, float64(130), meal.TotalCalories)

	// edit the catalog after the meal was logged
	rice.Calories = 200
	_, ok, err := store.Foods.Update(rice.ID, rice)
	require.NoError(t, err)
	require.True(t, ok)

	views, err := svc.List(models.RoleUser, "u1", "")
	require.NoError(t, err)
	require.Len(t, views, 1)
	assert.Equal(t, float64(200), views[0].TotalCalories, "read path recomputes from current foods")

	// the stored record still carries the stale total, by design
	stored, ok := store.Meals.FindByID(meal.ID)
	require.True(t, ok)
	assert.Equal(t, float64(130), stored.TotalCalories)
}

func TestMealListToleratesDanglingReference(t *testing.T) {
	store := newTestStore(t)
	svc := NewMealService(store.Meals, store.Foods)

	rice := createFood(t, store, "Arroz", 130)
	beans := createFood(t, store, "Feijão", 77)
	_, err := svc.Create("u1", []string{rice.ID, beans.ID})
	require.NoError(t, err)

	_, err = store.Foods.Delete(beans.ID)
	require.NoError(t, err)

	views, err := svc.List(models.RoleUser, "u1", "")
	require.NoError(t, err)
	require.Len(t, views, 1)
	require.Len(t, views[0].Foods, 2)
	assert.Nil(t, views[0].Foods[1], "deleted food resolves to null")
	assert.Equal(t, float64(130), views[0].TotalCalories, "dangling reference counts as zero")
}

func TestMealListScoping(t *testing.T) {
	store := newTestStore(t)
	svc := NewMealService(store.Meals, store.Foods)

	rice := createFood(t, store, "Arroz", 130)
	_, err := svc.Create("u1", []string{rice.ID})
	require.NoError(t, err)
	_, err = svc.Create("u2", []string{rice.ID})
	require.NoError(t, err)

	// admin with a target sees that user's meals
	views, err := svc.List(models.RoleAdmin, "admin-id", "u1")
	require.NoError(t, err)
	require.Len(t, views, 1)
	assert.Equal(t, "u1", views[0].User)

	// admin without a target sees everything
	views, err = svc.List(models.RoleAdmin, "admin-id", "")
	require.NoError(t, err)
	assert.Len(t, views, 2)

	// a non-admin is always scoped to self, the target parameter is ignored
	views, err = svc.List(models.RoleUser, "u1", "u2")
	require.NoError(t, err)
	require.Len(t, views, 1)
	assert.Equal(t, "u1", views[0].User)
}

func TestMealUpdateOwnershipAndExistence(t *testing.T) {
	store := newTestStore(t)
	svc := NewMealService(store.Meals, store.Foods)

	rice := createFood(t, store, "Arroz", 130)
	meal, err := svc.Create("u1", []string{rice.ID})
	require.NoError(t, err)

	var httpErr *HTTPError
	_, err = svc.Update(models.RoleUser, "u1", "missing", models.MealPatch{})
	require.ErrorAs(t, err, &httpErr)
	assert.Equal(t, http.StatusNotFound, httpErr.Status)

	_, err = svc.Update(models.RoleUser, "u2", meal.ID, models.MealPatch{})
	require.ErrorAs(t, err, &httpErr)
	assert.Equal(t, http.StatusForbidden, httpErr.Status)
	assert.Equal(t, "Acesso negado", httpErr.Message)

	// admin may update someone else's meal
	_, err = svc.Update(models.RoleAdmin, "admin-id", meal.ID, models.MealPatch{})
	assert.NoError(t, err)
}

func TestMealUpdateFoodsOmittedVersusEmpty(t *testing.T) {
	store := newTestStore(t)
	svc := NewMealService(store.Meals, store.Foods)

	rice := createFood(t, store, "Arroz", 130)
	beans := createFood(t, store, "Feijão", 77)
	meal, err := svc.Create("u1", []string{rice.ID})
	require.NoError(t, err)

	// omitted foods key: list and stored totals untouched, updatedAt refreshed
	updated, err := svc.Update(models.RoleUser, "u1", meal.ID, models.MealPatch{})
	require.NoError(t, err)
	assert.Equal(t, []string{rice.ID}, updated.Foods)
	assert.Equal(t, float64(130), updated.TotalCalories)
	assert.True(t, !updated.UpdatedAt.Before(meal.UpdatedAt))

	// present-and-empty is rejected
	empty := []string{}
	var httpErr *HTTPError
	_, err = svc.Update(models.RoleUser, "u1", meal.ID, models.MealPatch{Foods: &empty})
	require.ErrorAs(t, err, &httpErr)
	assert.Equal(t, "Foods deve ser um array não vazio", httpErr.Message)

	// present-and-valid recomputes and stores the new totals
	newFoods := []string{rice.ID, beans.ID}
	updated, err = svc.Update(models.RoleUser, "u1", meal.ID, models.MealPatch{Foods: &newFoods})
	require.NoError(t, err)
	assert.Equal(t, float64(207), updated.TotalCalories)

	// present-and-dangling is rejected
	bad := []string{"missing-food"}
	_, err = svc.Update(models.RoleUser, "u1", meal.ID, models.MealPatch{Foods: &bad})
	require.ErrorAs(t, err, &httpErr)
	assert.Equal(t, "Um ou mais alimentos não foram encontrados", httpErr.Message)
}

func TestMealDelete(t *testing.T) {
	store := newTestStore(t)
	svc := NewMealService(store.Meals, store.Foods)

	rice := createFood(t, store, "Arroz", 130)
	meal, err := svc.Create("u1", []string{rice.ID})
	require.NoError(t, err)

	var httpErr *HTTPError
	err = svc.Delete(models.RoleUser, "u2", meal.ID)
	require.ErrorAs(t, err, &httpErr)
	assert.Equal(t, http.StatusForbidden, httpErr.Status)

	require.NoError(t, svc.Delete(models.RoleUser, "u1", meal.ID))

	err = svc.Delete(models.RoleUser, "u1", meal.ID)
	require.ErrorAs(t, err, &httpErr)
	assert.Equal(t, http.StatusNotFound, httpErr.Status)
}

func TestComputeTotals(t *testing.T) {
	rice := &models.Food{Calories: 130, Protein: 2.7}
	totals := ComputeTotals([]*models.Food{rice, nil, rice})
	assert.Equal(t, float64(260), totals.TotalCalories)
	assert.InDelta(t, 5.4, totals.TotalProtein, 1e-9)

	assert.Zero(t, ComputeTotals(nil).TotalCalories)
}
