package parcel

import (
	"errors"
	"fmt"
	"time"

	"parcel-delivery/logger"
	parcelModel "parcel-delivery/models/parcel"
	riderModel "parcel-delivery/models/rider"
	trackingModel "parcel-delivery/models/tracking"
	"parcel-delivery/repository"
	"parcel-delivery/types"
	parcelTypes "parcel-delivery/types/parcel"
	"parcel-delivery/utils"
)

// Service is the parcel lifecycle manager. It owns every write to parcel
// rows and to the rider fields a lifecycle transition touches.
type Service struct {
	Parcels  repository.ParcelRepo
	Riders   repository.RiderRepo
	Tracking repository.TrackingRepo
}

func NewService(parcels repository.ParcelRepo, riders repository.RiderRepo, tracking repository.TrackingRepo) *Service {
	return &Service{
		Parcels:  parcels,
		Riders:   riders,
		Tracking: tracking,
	}
}

// Create inserts a new parcel in its initial state and returns it with the
// storage-assigned identifier and server-generated tracking reference.
func (s *Service) Create(req parcelTypes.ParcelCreateRequest) (*parcelModel.Parcel, error) {
	if req.Title == "" {
		return nil, types.ErrValidation("title is required")
	}
	if req.SenderName == "" || req.ReceiverName == "" {
		return nil, types.ErrValidation("sender_name and receiver_name are required")
	}
	if req.CreatedBy == "" {
		return nil, types.ErrValidation("created_by is required")
	}

	p := &parcelModel.Parcel{
		TrackingID:       utils.GenerateTrackingID(),
		Title:            req.Title,
		Type:             req.Type,
		SenderName:       req.SenderName,
		SenderContact:    req.SenderContact,
		SenderRegion:     req.SenderRegion,
		SenderDistrict:   req.SenderDistrict,
		SenderAddress:    req.SenderAddress,
		ReceiverName:     req.ReceiverName,
		ReceiverContact:  req.ReceiverContact,
		ReceiverRegion:   req.ReceiverRegion,
		ReceiverDistrict: req.ReceiverDistrict,
		ReceiverAddress:  req.ReceiverAddress,
		Weight:           req.Weight,
		Cost:             req.Cost,
		CreatedBy:        req.CreatedBy,
		DeliveryStatus:   parcelModel.DeliveryStatusCreated,
		PaymentStatus:    parcelModel.PaymentStatusUnpaid,
		CashoutStatus:    parcelModel.CashoutStatusNotCashedOut,
		CreatedAt:        time.Now(),
	}

	if err := s.Parcels.Create(p); err != nil {
		return nil, err
	}

	s.appendEvent(p.TrackingID, parcelModel.DeliveryStatusCreated, "Parcel created", req.CreatedBy)
	return p, nil
}

// List returns parcels matching the filter, newest first.
func (s *Service) List(filter repository.ParcelFilter) ([]parcelModel.Parcel, error) {
	return s.Parcels.List(filter)
}

// Get fetches one parcel by identifier.
func (s *Service) Get(id uint) (*parcelModel.Parcel, error) {
	p, err := s.Parcels.GetByID(id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, types.ErrNotFound("parcel")
		}
		return nil, err
	}
	return p, nil
}

// AssignRider puts the parcel into rider_assigned and flips the rider to
// in_delivery. Both rows change atomically or not at all.
func (s *Service) AssignRider(parcelID, riderID uint) (*parcelModel.Parcel, error) {
	p, err := s.Get(parcelID)
	if err != nil {
		return nil, err
	}
	if p.AssignedRiderID != nil {
		return nil, types.ErrConflict("parcel already has an assigned rider")
	}

	rd, err := s.Riders.GetByID(riderID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, types.ErrNotFound("rider")
		}
		return nil, err
	}
	if rd.Status != riderModel.StatusActive {
		return nil, types.ErrConflict("rider is not active")
	}
	if rd.WorkStatus != riderModel.WorkStatusAvailable {
		return nil, types.ErrConflict("rider is already in a delivery")
	}

	p.DeliveryStatus = parcelModel.DeliveryStatusRiderAssigned
	p.AssignedRiderID = &rd.ID
	p.AssignedRiderEmail = &rd.Email
	p.AssignedRiderName = &rd.Name
	rd.WorkStatus = riderModel.WorkStatusInDelivery

	if err := s.Parcels.UpdateWithRider(p, rd); err != nil {
		return nil, err
	}

	s.appendEvent(p.TrackingID, parcelModel.DeliveryStatusRiderAssigned,
		fmt.Sprintf("Rider %s assigned", rd.Name), rd.Email)
	return p, nil
}

// UpdateDeliveryStatus moves the parcel to newStatus. The transition order
// is intentionally not validated; only unknown statuses are rejected.
// in_transit stamps picked_at, delivered stamps delivered_at and releases
// the assigned rider.
func (s *Service) UpdateDeliveryStatus(parcelID uint, newStatus, updatedBy string) (*parcelModel.Parcel, error) {
	if !parcelModel.IsValidDeliveryStatus(newStatus) {
		return nil, types.ErrValidation("unknown delivery status: " + newStatus)
	}

	p, err := s.Get(parcelID)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	p.DeliveryStatus = newStatus
	switch newStatus {
	case parcelModel.DeliveryStatusInTransit:
		p.PickedAt = &now
	case parcelModel.DeliveryStatusDelivered:
		p.DeliveredAt = &now
	}

	var released *riderModel.Rider
	if newStatus == parcelModel.DeliveryStatusDelivered && p.AssignedRiderID != nil {
		rd, err := s.Riders.GetByID(*p.AssignedRiderID)
		switch {
		case err == nil:
			if rd.WorkStatus == riderModel.WorkStatusInDelivery {
				rd.WorkStatus = riderModel.WorkStatusAvailable
				released = rd
			}
		case errors.Is(err, repository.ErrNotFound):
			// The rider row is gone; there is nothing to release.
		default:
			return nil, err
		}
	}

	if released != nil {
		err = s.Parcels.UpdateWithRider(p, released)
	} else {
		err = s.Parcels.Update(p)
	}
	if err != nil {
		return nil, err
	}

	s.appendEvent(p.TrackingID, newStatus, "Delivery status updated to "+newStatus, updatedBy)
	return p, nil
}

// CashOut marks the parcel's earnings as settled. It is a one-time
// transition; repeated calls conflict instead of re-stamping.
func (s *Service) CashOut(parcelID uint) (*parcelModel.Parcel, error) {
	p, err := s.Get(parcelID)
	if err != nil {
		return nil, err
	}
	if p.CashoutStatus == parcelModel.CashoutStatusCashedOut {
		return nil, types.ErrConflict("parcel already cashed out")
	}

	now := time.Now()
	p.CashoutStatus = parcelModel.CashoutStatusCashedOut
	p.CashedOutAt = &now

	if err := s.Parcels.Update(p); err != nil {
		return nil, err
	}
	return p, nil
}

// Delete removes the parcel. Tracking events and payments referencing it
// are left in place.
func (s *Service) Delete(id uint) error {
	deleted, err := s.Parcels.Delete(id)
	if err != nil {
		return err
	}
	if !deleted {
		return types.ErrNotFound("parcel")
	}
	return nil
}

// StatusCounts aggregates parcel counts per delivery status.
func (s *Service) StatusCounts() ([]repository.StatusCount, error) {
	return s.Parcels.StatusCounts()
}

// RiderParcels returns a rider's active work.
func (s *Service) RiderParcels(email string) ([]parcelModel.Parcel, error) {
	if email == "" {
		return nil, types.ErrValidation("email is required")
	}
	return s.Parcels.ActiveByRider(email)
}

// RiderCompletedParcels returns a rider's finished work, optionally
// narrowed to a calendar period (today, week, month).
func (s *Service) RiderCompletedParcels(email, period string) ([]parcelModel.Parcel, error) {
	if email == "" {
		return nil, types.ErrValidation("email is required")
	}

	var window *repository.Window
	if period != "" {
		from, to, ok := utils.PeriodRange(period)
		if !ok {
			return nil, types.ErrValidation("unknown period: " + period)
		}
		window = &repository.Window{From: from, To: to}
	}
	return s.Parcels.CompletedByRider(email, window)
}

// appendEvent writes a tracking entry for a lifecycle transition. A failed
// append never fails the transition itself; the parcel row is the source
// of truth and the timeline is derived history.
func (s *Service) appendEvent(trackingID, status, message, updatedBy string) {
	ev := &trackingModel.TrackingEvent{
		TrackingID: trackingID,
		Status:     status,
		Message:    message,
		Time:       time.Now(),
		UpdatedBy:  updatedBy,
	}
	if err := s.Tracking.Append(ev); err != nil {
		logger.Error("Failed to write tracking event ("+status+")", err)
	}
}
