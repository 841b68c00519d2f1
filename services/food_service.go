package services

import (
	"fmt"
	"sort"
	"strings"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"

	"github.com/dennysmatos/mts20t1-ppp-nutrify-api/models"
	"github.com/dennysmatos/mts20t1-ppp-nutrify-api/repositories"
)

// foodSortFields are the accepted values for the list sort key, in the order
// they are reported back on a validation failure.
var foodSortFields = []string{"name", "category", "calories", "protein", "carbs", "fat", "createdAt", "updatedAt"}

type FoodService struct {
	foods *repositories.FoodRepo
}

func NewFoodService(foods *repositories.FoodRepo) *FoodService {
	return &FoodService{foods: foods}
}

func (s *FoodService) Create(in models.FoodInput) (models.Food, error) {
	return s.foods.Create(in.Apply(models.Food{}))
}

// List returns the whole catalog ordered by sortBy/order. Textual fields use
// pt-BR collation, case and accent insensitive; timestamp fields compare as
// instants; the rest compare numerically. Ties keep storage insertion order.
func (s *FoodService) List(sortBy, order string) ([]models.Food, error) {
	valid := false
	for _, f := range foodSortFields {
		if f == sortBy {
			valid = true
			break
		}
	}
	if !valid {
		return nil, validationError(fmt.Sprintf(
			"Campo de ordenação inválido. Campos permitidos: %s",
			strings.Join(foodSortFields, ", ")))
	}

	order = strings.ToLower(order)
	if order != "asc" && order != "desc" {
		return nil, validationError("Direção de ordenação inválida. Use 'asc' ou 'desc'")
	}

	foods := s.foods.FindAll()
	coll := collate.New(language.BrazilianPortuguese, collate.Loose)

	compare := func(a, b models.Food) int {
		switch sortBy {
		case "name":
			return coll.CompareString(a.Name, b.Name)
		case "category":
			return coll.CompareString(a.Category, b.Category)
		case "createdAt":
			return a.CreatedAt.Compare(b.CreatedAt)
		case "updatedAt":
			return a.UpdatedAt.Compare(b.UpdatedAt)
		}
		var av, bv float64
		switch sortBy {
		case "calories":
			av, bv = a.Calories, b.Calories
		case "protein":
			av, bv = a.Protein, b.Protein
		case "carbs":
			av, bv = a.Carbs, b.Carbs
		case "fat":
			av, bv = a.Fat, b.Fat
		}
		switch {
		case av < bv:
			return -1
		case av > bv:
			return 1
		default:
			return 0
		}
	}

	sort.SliceStable(foods, func(i, j int) bool {
		c := compare(foods[i], foods[j])
		if order == "desc" {
			return c > 0
		}
		return c < 0
	})
	return foods, nil
}

// Update merges the payload into the stored record and refreshes the update
// timestamp.
func (s *FoodService) Update(id string, in models.FoodInput) (models.Food, error) {
	existing, ok := s.foods.FindByID(id)
	if !ok {
		return models.Food{}, notFoundError("Alimento não encontrado")
	}
	updated, ok, err := s.foods.Update(id, in.Apply(existing))
	if err != nil {
		return models.Food{}, err
	}
	if !ok {
		return models.Food{}, notFoundError("Alimento não encontrado")
	}
	return updated, nil
}

func (s *FoodService) Delete(id string) error {
	ok, err := s.foods.Delete(id)
	if err != nil {
		return err
	}
	if !ok {
		return notFoundError("Alimento não encontrado")
	}
	return nil
}
