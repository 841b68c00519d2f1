package repositories

import (
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/dennysmatos/mts20t1-ppp-nutrify-api/models"
)

type FoodRepo struct {
	mu    sync.RWMutex
	file  string
	items map[string]models.Food
	order []string
}

func newFoodRepo(file string) *FoodRepo {
	r := &FoodRepo{file: file, items: make(map[string]models.Food)}
	for _, f := range loadRecords[models.Food](file) {
		r.items[f.ID] = f
		r.order = append(r.order, f.ID)
	}
	return r
}

func (r *FoodRepo) persistLocked() error {
	out := make([]models.Food, 0, len(r.order))
	for _, id := range r.order {
		out = append(out, r.items[id])
	}
	return saveRecords(r.file, out)
}

func (r *FoodRepo) Create(f models.Food) (models.Food, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	now := time.Now().UTC()
	f.ID = uuid.NewString()
	f.CreatedAt = now
	f.UpdatedAt = now
	r.items[f.ID] = f
	r.order = append(r.order, f.ID)
	return f, r.persistLocked()
}

// FindAll returns the catalog in insertion order.
func (r *FoodRepo) FindAll() []models.Food {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]models.Food, 0, len(r.order))
	for _, id := range r.order {
		out = append(out, r.items[id])
	}
	return out
}

func (r *FoodRepo) FindByID(id string) (models.Food, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	f, ok := r.items[id]
	return f, ok
}

// Update replaces the stored record, keeping id and creation timestamp and
// refreshing the update timestamp. The second return reports existence.
func (r *FoodRepo) Update(id string, f models.Food) (models.Food, bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	existing, ok := r.items[id]
	if !ok {
		return models.Food{}, false, nil
	}
	f.ID = id
	f.CreatedAt = existing.CreatedAt
	f.UpdatedAt = time.Now().UTC()
	r.items[id] = f
	return f, true, r.persistLocked()
}

func (r *FoodRepo) Delete(id string) (bool, error) {
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

func (r *FoodRepo) clear() error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.items = make(map[string]models.Food)
	r.order = nil
	return r.persistLocked()
}
