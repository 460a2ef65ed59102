package repository

import (
	paymentModel "parcel-delivery/models/payment"

	"gorm.io/gorm"
)

// GormPaymentRepo is the Postgres-backed PaymentRepo.
type GormPaymentRepo struct {
	DB *gorm.DB
}

func NewGormPaymentRepo(db *gorm.DB) *GormPaymentRepo {
	return &GormPaymentRepo{DB: db}
}

func (r *GormPaymentRepo) Create(p *paymentModel.Payment) error {
	return r.DB.Create(p).Error
}

func (r *GormPaymentRepo) List(email string) ([]paymentModel.Payment, error) {
	q := r.DB.Model(&paymentModel.Payment{})
	if email != "" {
		q = q.Where("email = ?", email)
	}
	var payments []paymentModel.Payment
	if err := q.Order("paid_at DESC").Find(&payments).Error; err != nil {
		return nil, err
	}
	return payments, nil
}
