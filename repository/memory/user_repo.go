package memory

import (
	"sort"
	"strings"
	"sync"

	userModel "parcel-delivery/models/user"
	"parcel-delivery/repository"
)

// UserRepository is an in-memory repository.UserRepo used by tests.
type UserRepository struct {
	mu     sync.RWMutex
	nextID uint
	users  map[uint]*userModel.User
}

func NewUserRepository() *UserRepository {
	return &UserRepository{users: make(map[uint]*userModel.User)}
}

func (r *UserRepository) Create(u *userModel.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.nextID++
	u.ID = r.nextID
	cp := *u
	r.users[u.ID] = &cp
	return nil
}

func (r *UserRepository) GetByID(id uint) (*userModel.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	u, ok := r.users[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	cp := *u
	return &cp, nil
}

func (r *UserRepository) GetByEmail(email string) (*userModel.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, u := range r.users {
		if u.Email == email {
			cp := *u
			return &cp, nil
		}
	}
	return nil, repository.ErrNotFound
}

func (r *UserRepository) Update(u *userModel.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.users[u.ID]; !ok {
		return repository.ErrNotFound
	}
	cp := *u
	r.users[u.ID] = &cp
	return nil
}

func (r *UserRepository) Search(emailFragment string, limit int) ([]userModel.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	frag := strings.ToLower(emailFragment)
	var out []userModel.User
	for _, u := range r.users {
		if strings.Contains(strings.ToLower(u.Email), frag) {
			out = append(out, *u)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID > out[j].ID })
	if limit > 0 && len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}
