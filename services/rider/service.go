package rider

import (
	"errors"

	"parcel-delivery/constants"
	riderModel "parcel-delivery/models/rider"
	userModel "parcel-delivery/models/user"
	"parcel-delivery/repository"
	"parcel-delivery/types"
	riderTypes "parcel-delivery/types/rider"
)

// Service is the rider directory.
type Service struct {
	Riders repository.RiderRepo
	Users  repository.UserRepo
}

func NewService(riders repository.RiderRepo, users repository.UserRepo) *Service {
	return &Service{Riders: riders, Users: users}
}

// Register inserts a new rider application in pending state.
func (s *Service) Register(req riderTypes.RiderRegisterRequest) (*riderModel.Rider, error) {
	if req.Name == "" || req.Email == "" {
		return nil, types.ErrValidation("name and email are required")
	}

	rd := &riderModel.Rider{
		Name:             req.Name,
		Email:            req.Email,
		Phone:            req.Phone,
		Age:              req.Age,
		Region:           req.Region,
		District:         req.District,
		NID:              req.NID,
		BikeBrand:        req.BikeBrand,
		BikeRegistration: req.BikeRegistration,
		Status:           riderModel.StatusPending,
		WorkStatus:       riderModel.WorkStatusAvailable,
	}
	if err := s.Riders.Create(rd); err != nil {
		return nil, err
	}
	return rd, nil
}

// ListByStatus returns riders in the given application status.
func (s *Service) ListByStatus(status string) ([]riderModel.Rider, error) {
	if !riderModel.IsValidStatus(status) {
		return nil, types.ErrValidation("unknown rider status: " + status)
	}
	return s.Riders.ListByStatus(status)
}

// ListAvailable returns active, available riders, optionally narrowed to a
// district.
func (s *Service) ListAvailable(district string) ([]riderModel.Rider, error) {
	return s.Riders.ListAvailable(district)
}

// SetStatus updates a rider's application status. Approving a rider also
// promotes the matching user to the rider role; the two writes are one
// atomic unit.
func (s *Service) SetStatus(riderID uint, status, email string) (*riderModel.Rider, error) {
	if !riderModel.IsValidStatus(status) {
		return nil, types.ErrValidation("unknown rider status: " + status)
	}

	rd, err := s.Riders.GetByID(riderID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, types.ErrNotFound("rider")
		}
		return nil, err
	}
	rd.Status = status

	var promoted *userModel.User
	if status == riderModel.StatusActive {
		lookup := email
		if lookup == "" {
			lookup = rd.Email
		}
		u, err := s.Users.GetByEmail(lookup)
		if err != nil {
			if errors.Is(err, repository.ErrNotFound) {
				return nil, types.ErrNotFound("user " + lookup)
			}
			return nil, err
		}
		if u.Role != constants.RoleRider {
			u.Role = constants.RoleRider
			promoted = u
		}
	}

	if err := s.Riders.UpdateWithUser(rd, promoted); err != nil {
		return nil, err
	}
	return rd, nil
}
