package repositories

import (
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/dennysmatos/mts20t1-ppp-nutrify-api/models"
)

type MealRepo struct {
	mu    sync.RWMutex
	file  string
	items map[string]models.Meal
	order []string
}

func newMealRepo(file string) *MealRepo {
	r := &MealRepo{file: file, items: make(map[string]models.Meal)}
	for _, m := range loadRecords[models.Meal](file) {
		r.items[m.ID] = m
		r.order = append(r.order, m.ID)
	}
	return r
}

func (r *MealRepo) persistLocked() error {
	out := make([]models.Meal, 0, len(r.order))
	for _, id := range r.order {
		out = append(out, r.items[id])
	}
	return saveRecords(r.file, out)
}

func (r *MealRepo) Create(m models.Meal) (models.Meal, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	now := time.Now().UTC()
	m.ID = uuid.NewString()
	m.CreatedAt = now
	m.UpdatedAt = now
	r.items[m.ID] = m
	r.order = append(r.order, m.ID)
	return m, r.persistLocked()
}

func (r *MealRepo) FindAll() []models.Meal {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]models.Meal, 0, len(r.order))
	for _, id := range r.order {
		out = append(out, r.items[id])
	}
	return out
}

func (r *MealRepo) FindByUser(userID string) []models.Meal {
	r.mu.RLock()
	defer r.mu.RUnlock()
	var out []models.Meal
	for _, id := range r.order {
		if r.items[id].User == userID {
			out = append(out, r.items[id])
		}
	}
	return out
}

func (r *MealRepo) FindByID(id string) (models.Meal, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	m, ok := r.items[id]
	return m, ok
}

func (r *MealRepo) Update(id string, m models.Meal) (models.Meal, bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	existing, ok := r.items[id]
	if !ok {
		return models.Meal{}, false, nil
	}
	m.ID = id
	m.CreatedAt = existing.CreatedAt
	m.UpdatedAt = time.Now().UTC()
	r.items[id] = m
	return m, true, r.persistLocked()
}

func (r *MealRepo) Delete(id string) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.items[id]; !ok {
		return false, nil
	}
	delete(r.items, id)
	for i, oid := range r.order {
		if oid == id {
			r.order = append(r.order[:i], r.order[i+1:]...)
			break
		}
	}
	return true, r.persistLocked()
}

func (r *MealRepo) clear() error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.items = make(map[string]models.Meal)
	r.order = nil
	return r.persistLocked()
}
