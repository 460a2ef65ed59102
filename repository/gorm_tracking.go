package repository

import (
	trackingModel "parcel-delivery/models/tracking"

	"gorm.io/gorm"
)

// GormTrackingRepo is the Postgres-backed TrackingRepo.
type GormTrackingRepo struct {
	DB *gorm.DB
}

func NewGormTrackingRepo(db *gorm.DB) *GormTrackingRepo {
	return &GormTrackingRepo{DB: db}
}

func (r *GormTrackingRepo) Append(ev *trackingModel.TrackingEvent) error {
	return r.DB.Create(ev).Error
}

// ListByTrackingID returns the timeline oldest-first; id breaks ties so the
// order equals insertion order for same-stamp events.
func (r *GormTrackingRepo) ListByTrackingID(trackingID string) ([]trackingModel.TrackingEvent, error) {
	var events []trackingModel.TrackingEvent
	err := r.DB.Where("tracking_id = ?", trackingID).
		Order("time ASC, id ASC").
		Find(&events).Error
	if err != nil {
		return nil, err
	}
	return events, nil
}
