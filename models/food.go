package models

import "time"

// Food is a globally shared catalog entry. Any authenticated user may create
// one; updating and deleting are admin operations.
type Food struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Category  string    `json:"category"`
	Calories  float64   `json:"calories"`
	Protein   float64   `json:"protein"`
	Carbs     float64   `json:"carbs"`
	Fat       float64   `json:"fat"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// FoodInput carries a validated create/update payload. Name and Calories are
// always present (the validator requires them on both POST and PUT); the
// optional fields overwrite the stored record only when supplied.
type FoodInput struct {
	Name     string
	Calories float64
	Category *string
	Protein  *float64
	Carbs    *float64
	Fat      *float64
}

// Apply merges the input into a copy of the record.
func (in FoodInput) Apply(f Food) Food {
	f.Name = in.Name
	f.Calories = in.Calories
	if in.Category != nil {
		f.Category = *in.Category
	}
	if in.Protein != nil {
		f.Protein = *in.Protein
	}
	if in.Carbs != nil {
		f.Carbs = *in.Carbs
	}
	if in.Fat != nil {
		f.Fat = *in.Fat
	}
	return f
}
