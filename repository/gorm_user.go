package repository

import (
	"errors"
	"strings"

	userModel "parcel-delivery/models/user"

	"gorm.io/gorm"
)

// GormUserRepo is the Postgres-backed UserRepo.
type GormUserRepo struct {
	DB *gorm.DB
}

func NewGormUserRepo(db *gorm.DB) *GormUserRepo {
	return &GormUserRepo{DB: db}
}

func (r *GormUserRepo) Create(u *userModel.User) error {
	return r.DB.Create(u).Error
}

func (r *GormUserRepo) GetByID(id uint) (*userModel.User, error) {
	var u userModel.User
	if err := r.DB.First(&u, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &u, nil
}

func (r *GormUserRepo) GetByEmail(email string) (*userModel.User, error) {
	var u userModel.User
	if err := r.DB.Where("email = ?", email).First(&u).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &u, nil
}

func (r *GormUserRepo) Update(u *userModel.User) error {
	return r.DB.Save(u).Error
}

func (r *GormUserRepo) Search(emailFragment string, limit int) ([]userModel.User, error) {
	var users []userModel.User
	pattern := "%" + strings.ToLower(emailFragment) + "%"
	err := r.DB.Where("LOWER(email) LIKE ?", pattern).
		Order("created_at DESC").
		Limit(limit).
		Find(&users).Error
	if err != nil {
		return nil, err
	}
	return users, nil
}
