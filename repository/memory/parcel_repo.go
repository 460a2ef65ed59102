package memory

import (
	"sort"
	"sync"

	parcelModel "parcel-delivery/models/parcel"
	riderModel "parcel-delivery/models/rider"
	"parcel-delivery/repository"
)

// ParcelRepository is an in-memory repository.ParcelRepo used by tests.
type ParcelRepository struct {
	mu      sync.RWMutex
	nextID  uint
	parcels map[uint]*parcelModel.Parcel

	// Riders points at the rider repository so compound updates can apply
	// both rows under one pair of locks, mirroring the transactional
	// Postgres implementation.
	Riders *RiderRepository

	// FailRiderWrite makes the rider half of UpdateWithRider fail, for
	// asserting that no partial update leaks out.
	FailRiderWrite bool
}

func NewParcelRepository(riders *RiderRepository) *ParcelRepository {
	return &ParcelRepository{
		parcels: make(map[uint]*parcelModel.Parcel),
		Riders:  riders,
	}
}

func (r *ParcelRepository) Create(p *parcelModel.Parcel) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.nextID++
	p.ID = r.nextID
	cp := *p
	r.parcels[p.ID] = &cp
	return nil
}

func (r *ParcelRepository) GetByID(id uint) (*parcelModel.Parcel, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	p, ok := r.parcels[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	cp := *p
	return &cp, nil
}

func (r *ParcelRepository) List(f repository.ParcelFilter) ([]parcelModel.Parcel, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var out []parcelModel.Parcel
	for _, p := range r.parcels {
		if f.CreatedBy != "" && p.CreatedBy != f.CreatedBy {
			continue
		}
		if f.PaymentStatus != "" && p.PaymentStatus != f.PaymentStatus {
			continue
		}
		if f.DeliveryStatus != "" && p.DeliveryStatus != f.DeliveryStatus {
			continue
		}
		out = append(out, *p)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].CreatedAt.Equal(out[j].CreatedAt) {
			return out[i].ID > out[j].ID
		}
		return out[i].CreatedAt.After(out[j].CreatedAt)
	})
	return out, nil
}

func (r *ParcelRepository) Update(p *parcelModel.Parcel) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.parcels[p.ID]; !ok {
		return repository.ErrNotFound
	}
	cp := *p
	r.parcels[p.ID] = &cp
	return nil
}

func (r *ParcelRepository) UpdateWithRider(p *parcelModel.Parcel, rd *riderModel.Rider) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.parcels[p.ID]; !ok {
		return repository.ErrNotFound
	}
	if r.FailRiderWrite {
		return errRiderWriteFailed
	}
	if err := r.Riders.Update(rd); err != nil {
		return err
	}
	cp := *p
	r.parcels[p.ID] = &cp
	return nil
}

func (r *ParcelRepository) Delete(id uint) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.parcels[id]; !ok {
		return false, nil
	}
	delete(r.parcels, id)
	return true, nil
}

func (r *ParcelRepository) MarkPaid(id uint) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	p, ok := r.parcels[id]
	if !ok {
		return false, nil
	}
	if p.PaymentStatus != parcelModel.PaymentStatusUnpaid {
		return false, nil
	}
	p.PaymentStatus = parcelModel.PaymentStatusPaid
	return true, nil
}

func (r *ParcelRepository) StatusCounts() ([]repository.StatusCount, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	buckets := make(map[string]int64)
	for _, p := range r.parcels {
		buckets[p.DeliveryStatus]++
	}
	var counts []repository.StatusCount
	for status, n := range buckets {
		counts = append(counts, repository.StatusCount{Status: status, Count: n})
	}
	sort.Slice(counts, func(i, j int) bool { return counts[i].Status < counts[j].Status })
	return counts, nil
}

func (r *ParcelRepository) ActiveByRider(email string) ([]parcelModel.Parcel, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var out []parcelModel.Parcel
	for _, p := range r.parcels {
		if p.AssignedRiderEmail == nil || *p.AssignedRiderEmail != email {
			continue
		}
		if p.DeliveryStatus == parcelModel.DeliveryStatusRiderAssigned ||
			p.DeliveryStatus == parcelModel.DeliveryStatusInTransit {
			out = append(out, *p)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	return out, nil
}

func (r *ParcelRepository) CompletedByRider(email string, w *repository.Window) ([]parcelModel.Parcel, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var out []parcelModel.Parcel
	for _, p := range r.parcels {
		if p.AssignedRiderEmail == nil || *p.AssignedRiderEmail != email {
			continue
		}
		if !parcelModel.IsCompletedStatus(p.DeliveryStatus) {
			continue
		}
		if w != nil {
			if p.DeliveredAt == nil || p.DeliveredAt.Before(w.From) || !p.DeliveredAt.Before(w.To) {
				continue
			}
		}
		out = append(out, *p)
	}
	sort.Slice(out, func(i, j int) bool {
		ti, tj := out[i].DeliveredAt, out[j].DeliveredAt
		if ti == nil || tj == nil {
			return out[i].ID > out[j].ID
		}
		return ti.After(*tj)
	})
	return out, nil
}
