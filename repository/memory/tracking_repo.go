package memory

import (
	"sort"
	"sync"

	trackingModel "parcel-delivery/models/tracking"
)

// TrackingRepository is an in-memory repository.TrackingRepo used by tests.
type TrackingRepository struct {
	mu     sync.RWMutex
	nextID uint
	events []trackingModel.TrackingEvent
}

func NewTrackingRepository() *TrackingRepository {
	return &TrackingRepository{}
}

func (r *TrackingRepository) Append(ev *trackingModel.TrackingEvent) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.nextID++
	ev.ID = r.nextID
	r.events = append(r.events, *ev)
	return nil
}

func (r *TrackingRepository) ListByTrackingID(trackingID string) ([]trackingModel.TrackingEvent, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var out []trackingModel.TrackingEvent
	for _, ev := range r.events {
		if ev.TrackingID == trackingID {
			out = append(out, ev)
		}
	}
	sort.SliceStable(out, func(i, j int) bool {
		if out[i].Time.Equal(out[j].Time) {
			return out[i].ID < out[j].ID
		}
		return out[i].Time.Before(out[j].Time)
	})
	return out, nil
}
