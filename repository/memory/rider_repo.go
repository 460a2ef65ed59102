package memory

import (
	"errors"
	"sort"
	"sync"

	riderModel "parcel-delivery/models/rider"
	userModel "parcel-delivery/models/user"
	"parcel-delivery/repository"
)

var errRiderWriteFailed = errors.New("rider write failed")

// RiderRepository is an in-memory repository.RiderRepo used by tests.
type RiderRepository struct {
	mu     sync.RWMutex
	nextID uint
	riders map[uint]*riderModel.Rider

	// Users backs the compound approval update.
	Users *UserRepository

	// FailUserWrite makes the user half of UpdateWithUser fail.
	FailUserWrite bool

	// FailRead makes GetByID fail.
	FailRead bool
}

func NewRiderRepository(users *UserRepository) *RiderRepository {
	return &RiderRepository{
		riders: make(map[uint]*riderModel.Rider),
		Users:  users,
	}
}

func (r *RiderRepository) Create(rd *riderModel.Rider) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.nextID++
	rd.ID = r.nextID
	cp := *rd
	r.riders[rd.ID] = &cp
	return nil
}

func (r *RiderRepository) GetByID(id uint) (*riderModel.Rider, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	if r.FailRead {
		return nil, errors.New("rider read failed")
	}
	rd, ok := r.riders[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	cp := *rd
	return &cp, nil
}

func (r *RiderRepository) ListByStatus(status string) ([]riderModel.Rider, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var out []riderModel.Rider
	for _, rd := range r.riders {
		if rd.Status == status {
			out = append(out, *rd)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID > out[j].ID })
	return out, nil
}

func (r *RiderRepository) ListAvailable(district string) ([]riderModel.Rider, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var out []riderModel.Rider
	for _, rd := range r.riders {
		if rd.Status != riderModel.StatusActive || rd.WorkStatus != riderModel.WorkStatusAvailable {
			continue
		}
		if district != "" && rd.District != district {
			continue
		}
		out = append(out, *rd)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID > out[j].ID })
	return out, nil
}

func (r *RiderRepository) Update(rd *riderModel.Rider) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.riders[rd.ID]; !ok {
		return repository.ErrNotFound
	}
	cp := *rd
	r.riders[rd.ID] = &cp
	return nil
}

func (r *RiderRepository) UpdateWithUser(rd *riderModel.Rider, u *userModel.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.riders[rd.ID]; !ok {
		return repository.ErrNotFound
	}
	if r.FailUserWrite {
		return errors.New("user write failed")
	}
	if u != nil {
		if err := r.Users.Update(u); err != nil {
			return err
		}
	}
	cp := *rd
	r.riders[rd.ID] = &cp
	return nil
}
