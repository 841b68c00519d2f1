package models

import "time"

const (
	RoleAdmin = "admin"
	RoleUser  = "user"
)

// DefaultCalorieGoal is applied when a user registers without a goal.
const DefaultCalorieGoal = 2000

type User struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Email       string    `json:"email"`
	Password    string    `json:"password"` // bcrypt hash, never exposed by the API
	Role        string    `json:"role"`
	CalorieGoal float64   `json:"calorieGoal"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}
