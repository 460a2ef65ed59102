package tracking

import (
	"time"

	trackingModel "parcel-delivery/models/tracking"
	"parcel-delivery/repository"
	"parcel-delivery/types"
	trackingTypes "parcel-delivery/types/tracking"
)

// Service is the tracking log: an append-only status timeline per parcel
// reference. No update or delete path exists.
type Service struct {
	Tracking repository.TrackingRepo
}

func NewService(tracking repository.TrackingRepo) *Service {
	return &Service{Tracking: tracking}
}

// Append records one event. The timestamp is always server-assigned;
// client-supplied times are ignored.
func (s *Service) Append(req trackingTypes.AppendEventRequest) (*trackingModel.TrackingEvent, error) {
	trackingID := req.TrackingID
	if trackingID == "" {
		trackingID = req.ParcelID
	}
	if trackingID == "" {
		return nil, types.ErrValidation("tracking_id is required")
	}
	if req.Status == "" {
		return nil, types.ErrValidation("status is required")
	}

	ev := &trackingModel.TrackingEvent{
		TrackingID: trackingID,
		Status:     req.Status,
		Message:    req.Message,
		Time:       time.Now(),
		UpdatedBy:  req.UpdatedBy,
	}
	if err := s.Tracking.Append(ev); err != nil {
		return nil, err
	}
	return ev, nil
}

// Events returns the timeline for a reference, oldest first. Clients
// render this directly, so the ordering is part of the contract.
func (s *Service) Events(trackingID string) ([]trackingModel.TrackingEvent, error) {
	if trackingID == "" {
		return nil, types.ErrValidation("tracking_id is required")
	}
	return s.Tracking.ListByTrackingID(trackingID)
}
