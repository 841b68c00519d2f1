package repositories

import (
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/dennysmatos/mts20t1-ppp-nutrify-api/models"
)

type UserRepo struct {
	mu    sync.RWMutex
	file  string
	items map[string]models.User
	order []string
}

func newUserRepo(file string) *UserRepo {
	r := &UserRepo{file: file, items: make(map[string]models.User)}
	for _, u := range loadRecords[models.User](file) {
		r.items[u.ID] = u
		r.order = append(r.order, u.ID)
	}
	return r
}

func (r *UserRepo) persistLocked() error {
	out := make([]models.User, 0, len(r.order))
	for _, id := range r.order {
		out = append(out, r.items[id])
	}
	return saveRecords(r.file, out)
}

// Create assigns the id and timestamps and makes the record durable.
func (r *UserRepo) Create(u models.User) (models.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	now := time.Now().UTC()
	u.ID = uuid.NewString()
	u.CreatedAt = now
	u.UpdatedAt = now
	if u.Role == "" {
		u.Role = models.RoleUser
	}
	r.items[u.ID] = u
	r.order = append(r.order, u.ID)
	return u, r.persistLocked()
}

func (r *UserRepo) Count() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.items)
}

func (r *UserRepo) FindByID(id string) (models.User, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	u, ok := r.items[id]
	return u, ok
}

func (r *UserRepo) FindByEmail(email string) (models.User, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, id := range r.order {
		if r.items[id].Email == email {
			return r.items[id], true
		}
	}
	return models.User{}, false
}

// Save replaces the stored record (whole-record, last writer wins) keeping
// the original id and creation timestamp.
func (r *UserRepo) Save(u models.User) (models.User, bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	existing, ok := r.items[u.ID]
	if !ok {
		return models.User{}, false, nil
	}
	u.CreatedAt = existing.CreatedAt
	u.UpdatedAt = time.Now().UTC()
	r.items[u.ID] = u
	return u, true, r.persistLocked()
}

func (r *UserRepo) clear() error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.items = make(map[string]models.User)
	r.order = nil
	return r.persistLocked()
}
