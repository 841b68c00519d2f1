// Package repositories persists the three record kinds (users, foods, meals)
// as JSON files under a data directory. Each collection is an id-keyed map
// kept in insertion order and flushed to disk before a mutating call returns.
package repositories

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

type Store struct {
	Users *UserRepo
	Foods *FoodRepo
	Meals *MealRepo
}

// Open loads (or creates) the backing files under dataDir.
func Open(dataDir string) (*Store, error) {
	if err := os.MkdirAll(dataDir, 0o755); err != nil {
		return nil, fmt.Errorf("create data dir: %w", err)
	}
	return &Store{
		Users: newUserRepo(filepath.Join(dataDir, "users.json")),
		Foods: newFoodRepo(filepath.Join(dataDir, "foods.json")),
		Meals: newMealRepo(filepath.Join(dataDir, "meals.json")),
	}, nil
}

// Reset wipes every collection and its backing file. Test support.
func (s *Store) Reset() error {
	if err := s.Users.clear(); err != nil {
		return err
	}
	if err := s.Foods.clear(); err != nil {
		return err
	}
	return s.Meals.clear()
}

// loadRecords reads a JSON array from file. A missing or unparsable file
// yields an empty slice; the next save overwrites it.
func loadRecords[T any](file string) []T {
	content, err := os.ReadFile(file)
	if err != nil {
		return nil
	}
	var items []T
	if err := json.Unmarshal(content, &items); err != nil {
		return nil
	}
	return items
}

func saveRecords[T any](file string, items []T) error {
	data, err := json.MarshalIndent(items, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(file, data, 0o644)
}
