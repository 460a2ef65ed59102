package repository

import (
	"errors"

	riderModel "parcel-delivery/models/rider"
	userModel "parcel-delivery/models/user"

	"gorm.io/gorm"
)

// GormRiderRepo is the Postgres-backed RiderRepo.
type GormRiderRepo struct {
	DB *gorm.DB
}

func NewGormRiderRepo(db *gorm.DB) *GormRiderRepo {
	return &GormRiderRepo{DB: db}
}

func (r *GormRiderRepo) Create(rd *riderModel.Rider) error {
	return r.DB.Create(rd).Error
}

func (r *GormRiderRepo) GetByID(id uint) (*riderModel.Rider, error) {
	var rd riderModel.Rider
	if err := r.DB.First(&rd, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &rd, nil
}

func (r *GormRiderRepo) ListByStatus(status string) ([]riderModel.Rider, error) {
	var riders []riderModel.Rider
	err := r.DB.Where("status = ?", status).Order("created_at DESC").Find(&riders).Error
	if err != nil {
		return nil, err
	}
	return riders, nil
}

func (r *GormRiderRepo) ListAvailable(district string) ([]riderModel.Rider, error) {
	q := r.DB.
		Where("status = ?", riderModel.StatusActive).
		Where("work_status = ?", riderModel.WorkStatusAvailable)
	if district != "" {
		q = q.Where("district = ?", district)
	}
	var riders []riderModel.Rider
	if err := q.Order("created_at DESC").Find(&riders).Error; err != nil {
		return nil, err
	}
	return riders, nil
}

func (r *GormRiderRepo) Update(rd *riderModel.Rider) error {
	return r.DB.Save(rd).Error
}

// UpdateWithUser applies a rider update and a user update in one
// transaction (rider approval promotes the matching user's role). A nil
// user means no promotion; only the rider row is written.
func (r *GormRiderRepo) UpdateWithUser(rd *riderModel.Rider, u *userModel.User) error {
	return r.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Save(rd).Error; err != nil {
			return err
		}
		if u == nil {
			return nil
		}
		return tx.Save(u).Error
	})
}
