package services

import (
	"time"

	"github.com/dennysmatos/mts20t1-ppp-nutrify-api/models"
	"github.com/dennysmatos/mts20t1-ppp-nutrify-api/repositories"
)

const dateLayout = "2006-01-02"

type ProgressService struct {
	users *repositories.UserRepo
	meals *repositories.MealRepo
	foods *repositories.FoodRepo
}

func NewProgressService(users *repositories.UserRepo, meals *repositories.MealRepo, foods *repositories.FoodRepo) *ProgressService {
	return &ProgressService{users: users, meals: meals, foods: foods}
}

// DailyProgress classifies a single day's calorie intake against the user's
// goal. It is a stateless computation over current data.
type DailyProgress struct {
	UserID        string  `json:"userId"`
	Date          string  `json:"date"`
	TotalCalories float64 `json:"totalCalories"`
	CalorieGoal   float64 `json:"calorieGoal"`
	Difference    float64 `json:"difference"`
	Status        string  `json:"status"`
}

// normalizeDate defaults to today (UTC) and otherwise requires a real
// calendar date in YYYY-MM-DD form, so "2024-13-01" is rejected.
func normalizeDate(dateStr string) (string, error) {
	if dateStr == "" {
		return time.Now().UTC().Format(dateLayout), nil
	}
	parsed, err := time.Parse(dateLayout, dateStr)
	if err != nil || parsed.Format(dateLayout) != dateStr {
		return "", validationError("Parâmetro date deve estar no formato YYYY-MM-DD")
	}
	return dateStr, nil
}

// GetDaily computes the requested day's total calories for the effective
// target user (admins may aim at someone else, everyone else is scoped to
// self). Meal totals are recomputed from the current catalog, not read from
// the stored records.
func (s *ProgressService) GetDaily(requesterRole, requesterID, targetUserID, dateStr string) (*DailyProgress, error) {
	userID := ResolveTargetUser(requesterRole, requesterID, targetUserID)
	user, ok := s.users.FindByID(userID)
	if !ok {
		return nil, notFoundError("Usuário não encontrado")
	}

	date, err := normalizeDate(dateStr)
	if err != nil {
		return nil, err
	}

	var total float64
	for _, m := range s.meals.FindByUser(userID) {
		if m.Date.UTC().Format(dateLayout) != date {
			continue
		}
		for _, foodID := range m.Foods {
			if f, found := s.foods.FindByID(foodID); found {
				total += f.Calories
			}
		}
	}

	goal := user.CalorieGoal
	if goal == 0 {
		goal = models.DefaultCalorieGoal
	}
	difference := goal - total

	status := "equal"
	if difference > 0 {
		status = "below"
	} else if difference < 0 {
		status = "above"
	}

	return &DailyProgress{
		UserID:        userID,
		Date:          date,
		TotalCalories: total,
		CalorieGoal:   goal,
		Difference:    difference,
		Status:        status,
	}, nil
}
