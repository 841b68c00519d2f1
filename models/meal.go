package models

import "time"

// MealTotals holds the nutritional sums over a meal's referenced foods. The
// stored values are a cache hint only: every read path recomputes them from
// the current catalog records.
type MealTotals struct {
	TotalCalories float64 `json:"totalCalories"`
	TotalProtein  float64 `json:"totalProtein"`
	TotalCarbs    float64 `json:"totalCarbs"`
	TotalFat      float64 `json:"totalFat"`
}

// Meal references its foods by id. References are weak: a food deleted after
// the meal was logged is tolerated on read and counts as zero in the totals.
type Meal struct {
	ID    string    `json:"id"`
	User  string    `json:"user"`
	Date  time.Time `json:"date"`
	Foods []string  `json:"foods"`
	MealTotals
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// MealPatch is an update payload. A nil Foods means the key was omitted and
// the food list (and stored totals) stay untouched; a present-but-empty list
// is rejected by the ledger.
type MealPatch struct {
	Foods *[]string
}
