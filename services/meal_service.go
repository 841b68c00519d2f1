package services

import (
	"time"

	"github.com/dennysmatos/mts20t1-ppp-nutrify-api/models"
	"github.com/dennysmatos/mts20t1-ppp-nutrify-api/repositories"
)

type MealService struct {
	meals *repositories.MealRepo
	foods *repositories.FoodRepo
}

func NewMealService(meals *repositories.MealRepo, foods *repositories.FoodRepo) *MealService {
	return &MealService{meals: meals, foods: foods}
}

// MealView is the populated read shape: food references resolved to full
// catalog records (dangling references come back as null entries) and totals
// recomputed from the current catalog, never read from the stored record.
type MealView struct {
	ID    string         `json:"id"`
	User  string         `json:"user"`
	Date  time.Time      `json:"date"`
	Foods []*models.Food `json:"foods"`
	models.MealTotals
}

// ComputeTotals sums the nutritional fields over the resolved foods. Nil
// entries (dangling references) contribute zero.
func ComputeTotals(foods []*models.Food) models.MealTotals {
	var t models.MealTotals
	for _, f := range foods {
		if f == nil {
			continue
		}
		t.TotalCalories += f.Calories
		t.TotalProtein += f.Protein
		t.TotalCarbs += f.Carbs
		t.TotalFat += f.Fat
	}
	return t
}

// resolveStrict resolves every referenced food and rejects the write when the
// list is empty or any reference dangles.
func (s *MealService) resolveStrict(foodIDs []string) ([]*models.Food, error) {
	if len(foodIDs) == 0 {
		return nil, validationError("Foods deve ser um array não vazio")
	}
	resolved := make([]*models.Food, 0, len(foodIDs))
	for _, id := range foodIDs {
		f, ok := s.foods.FindByID(id)
		if !ok {
			return nil, validationError("Um ou mais alimentos não foram encontrados")
		}
		food := f
		resolved = append(resolved, &food)
	}
	return resolved, nil
}

// resolveLoose resolves for the read path, tolerating dangling references.
func (s *MealService) resolveLoose(foodIDs []string) []*models.Food {
	resolved := make([]*models.Food, 0, len(foodIDs))
	for _, id := range foodIDs {
		if f, ok := s.foods.FindByID(id); ok {
			food := f
			resolved = append(resolved, &food)
		} else {
			resolved = append(resolved, nil)
		}
	}
	return resolved
}

// Create logs a meal for userID. The date is server-assigned; the stored
// totals are computed from the foods as they exist right now.
func (s *MealService) Create(userID string, foodIDs []string) (models.Meal, error) {
	resolved, err := s.resolveStrict(foodIDs)
	if err != nil {
		return models.Meal{}, err
	}
	return s.meals.Create(models.Meal{
		User:       userID,
		Date:       time.Now().UTC(),
		Foods:      foodIDs,
		MealTotals: ComputeTotals(resolved),
	})
}

// List returns meals visible to the requester: admins see the target user's
// meals (or everyone's when no target is given), non-admins only their own
// regardless of any requested target. Totals are recomputed per meal so the
// response stays consistent with catalog edits made after the meal was logged.
func (s *MealService) List(requesterRole, requesterID, targetUserID string) ([]MealView, error) {
	var meals []models.Meal
	if IsAdmin(requesterRole) && targetUserID != "" {
		meals = s.meals.FindByUser(targetUserID)
	} else if IsAdmin(requesterRole) {
		meals = s.meals.FindAll()
	} else {
		meals = s.meals.FindByUser(requesterID)
	}

	views := make([]MealView, 0, len(meals))
	for _, m := range meals {
		foods := s.resolveLoose(m.Foods)
		views = append(views, MealView{
			ID:         m.ID,
			User:       m.User,
			Date:       m.Date,
			Foods:      foods,
			MealTotals: ComputeTotals(foods),
		})
	}
	return views, nil
}

// Update patches a meal after the existence and ownership checks. When the
// foods key was omitted the stored list and totals stay untouched (reads
// recompute anyway); when present it goes through the same validation as
// create and the totals are recomputed and stored.
func (s *MealService) Update(requesterRole, requesterID, mealID string, patch models.MealPatch) (models.Meal, error) {
	existing, ok := s.meals.FindByID(mealID)
	if !ok {
		return models.Meal{}, notFoundError("Refeição não encontrada")
	}
	if !CanAccess(requesterRole, requesterID, existing.User) {
		return models.Meal{}, forbiddenError("Acesso negado")
	}

	updated := existing
	if patch.Foods != nil {
		resolved, err := s.resolveStrict(*patch.Foods)
		if err != nil {
			return models.Meal{}, err
		}
		updated.Foods = *patch.Foods
		updated.MealTotals = ComputeTotals(resolved)
	}

	saved, ok, err := s.meals.Update(mealID, updated)
	if err != nil {
		return models.Meal{}, err
	}
	if !ok {
		return models.Meal{}, notFoundError("Refeição não encontrada")
	}
	return saved, nil
}

func (s *MealService) Delete(requesterRole, requesterID, mealID string) error {
	existing, ok := s.meals.FindByID(mealID)
	if !ok {
		return notFoundError("Refeição não encontrada")
	}
	if !CanAccess(requesterRole, requesterID, existing.User) {
		return forbiddenError("Acesso negado")
	}
	if _, err := s.meals.Delete(mealID); err != nil {
		return err
	}
	return nil
}
