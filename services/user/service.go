package user

import (
	"errors"
	"time"

	"parcel-delivery/constants"
	userModel "parcel-delivery/models/user"
	"parcel-delivery/repository"
	"parcel-delivery/types"
)

const searchLimit = 20

// Service is the user directory.
type Service struct {
	Users repository.UserRepo
}

func NewService(users repository.UserRepo) *Service {
	return &Service{Users: users}
}

// Upsert creates the user on first login; an existing user only gets its
// last-login timestamp refreshed.
func (s *Service) Upsert(email, displayName string) (*userModel.User, bool, error) {
	if email == "" {
		return nil, false, types.ErrValidation("email is required")
	}

	existing, err := s.Users.GetByEmail(email)
	if err == nil {
		existing.LastLogInAt = time.Now()
		if err := s.Users.Update(existing); err != nil {
			return nil, false, err
		}
		return existing, false, nil
	}
	if !errors.Is(err, repository.ErrNotFound) {
		return nil, false, err
	}

	u := &userModel.User{
		Email:       email,
		DisplayName: displayName,
		Role:        constants.RoleUser,
		LastLogInAt: time.Now(),
	}
	if err := s.Users.Create(u); err != nil {
		return nil, false, err
	}
	return u, true, nil
}

// RoleOf returns the role for an email, defaulting to plain user when the
// email is unknown.
func (s *Service) RoleOf(email string) (string, error) {
	u, err := s.Users.GetByEmail(email)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return constants.RoleUser, nil
		}
		return "", err
	}
	return u.Role, nil
}

// SetRole changes a user's role.
func (s *Service) SetRole(id uint, role string) (*userModel.User, error) {
	if !constants.IsValidRole(role) {
		return nil, types.ErrValidation("unknown role: " + role)
	}

	u, err := s.Users.GetByID(id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, types.ErrNotFound("user")
		}
		return nil, err
	}
	u.Role = role
	if err := s.Users.Update(u); err != nil {
		return nil, err
	}
	return u, nil
}

// Search finds users whose email contains the fragment,
// case-insensitively, capped at a small page.
func (s *Service) Search(emailFragment string) ([]userModel.User, error) {
	if emailFragment == "" {
		return nil, types.ErrValidation("email query is required")
	}
	return s.Users.Search(emailFragment, searchLimit)
}
