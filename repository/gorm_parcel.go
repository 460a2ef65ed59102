package repository

import (
	"errors"

	parcelModel "parcel-delivery/models/parcel"
	riderModel "parcel-delivery/models/rider"

	"gorm.io/gorm"
)

// GormParcelRepo is the Postgres-backed ParcelRepo.
type GormParcelRepo struct {
	DB *gorm.DB
}

func NewGormParcelRepo(db *gorm.DB) *GormParcelRepo {
	return &GormParcelRepo{DB: db}
}

func (r *GormParcelRepo) Create(p *parcelModel.Parcel) error {
	return r.DB.Create(p).Error
}

func (r *GormParcelRepo) GetByID(id uint) (*parcelModel.Parcel, error) {
	var p parcelModel.Parcel
	if err := r.DB.First(&p, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &p, nil
}

func (r *GormParcelRepo) List(f ParcelFilter) ([]parcelModel.Parcel, error) {
	q := r.DB.Model(&parcelModel.Parcel{})
	if f.CreatedBy != "" {
		q = q.Where("created_by = ?", f.CreatedBy)
	}
	if f.PaymentStatus != "" {
		q = q.Where("payment_status = ?", f.PaymentStatus)
	}
	if f.DeliveryStatus != "" {
		q = q.Where("delivery_status = ?", f.DeliveryStatus)
	}
	var parcels []parcelModel.Parcel
	if err := q.Order("created_at DESC").Find(&parcels).Error; err != nil {
		return nil, err
	}
	return parcels, nil
}

func (r *GormParcelRepo) Update(p *parcelModel.Parcel) error {
	return r.DB.Save(p).Error
}

// UpdateWithRider persists a parcel update and a rider update in one
// transaction so a failure cannot leave the two rows inconsistent.
func (r *GormParcelRepo) UpdateWithRider(p *parcelModel.Parcel, rd *riderModel.Rider) error {
	return r.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Save(p).Error; err != nil {
			return err
		}
		return tx.Save(rd).Error
	})
}

func (r *GormParcelRepo) Delete(id uint) (bool, error) {
	res := r.DB.Delete(&parcelModel.Parcel{}, id)
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected > 0, nil
}

// MarkPaid is a guarded single-row update; the WHERE clause makes
// concurrent double payment impossible regardless of caller interleaving.
func (r *GormParcelRepo) MarkPaid(id uint) (bool, error) {
	res := r.DB.Model(&parcelModel.Parcel{}).
		Where("id = ? AND payment_status = ?", id, parcelModel.PaymentStatusUnpaid).
		Update("payment_status", parcelModel.PaymentStatusPaid)
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected > 0, nil
}

func (r *GormParcelRepo) StatusCounts() ([]StatusCount, error) {
	var counts []StatusCount
	err := r.DB.Model(&parcelModel.Parcel{}).
		Select("delivery_status AS status, COUNT(*) AS count").
		Group("delivery_status").
		Scan(&counts).Error
	if err != nil {
		return nil, err
	}
	return counts, nil
}

func (r *GormParcelRepo) ActiveByRider(email string) ([]parcelModel.Parcel, error) {
	var parcels []parcelModel.Parcel
	err := r.DB.
		Where("assigned_rider_email = ?", email).
		Where("delivery_status IN ?", []string{
			parcelModel.DeliveryStatusRiderAssigned,
			parcelModel.DeliveryStatusInTransit,
		}).
		Order("created_at DESC").
		Find(&parcels).Error
	if err != nil {
		return nil, err
	}
	return parcels, nil
}

func (r *GormParcelRepo) CompletedByRider(email string, w *Window) ([]parcelModel.Parcel, error) {
	q := r.DB.
		Where("assigned_rider_email = ?", email).
		Where("delivery_status IN ?", []string{
			parcelModel.DeliveryStatusDelivered,
			parcelModel.DeliveryStatusServiceCenterDelivered,
		})
	if w != nil {
		q = q.Where("delivered_at >= ? AND delivered_at < ?", w.From, w.To)
	}
	var parcels []parcelModel.Parcel
	if err := q.Order("delivered_at DESC").Find(&parcels).Error; err != nil {
		return nil, err
	}
	return parcels, nil
}
