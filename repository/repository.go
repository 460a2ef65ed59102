package repository

import (
	"errors"
	"time"

	parcelModel "parcel-delivery/models/parcel"
	paymentModel "parcel-delivery/models/payment"
	riderModel "parcel-delivery/models/rider"
	trackingModel "parcel-delivery/models/tracking"
	userModel "parcel-delivery/models/user"
)

// ErrNotFound is returned by Get-style lookups when no row matches.
var ErrNotFound = errors.New("record not found")

// ParcelFilter narrows parcel listings. Zero-value fields are ignored.
type ParcelFilter struct {
	CreatedBy      string
	PaymentStatus  string
	DeliveryStatus string
}

// StatusCount is one bucket of the delivery-status aggregation.
type StatusCount struct {
	Status string `json:"status"`
	Count  int64  `json:"count"`
}

// Window is an optional closed-open time range.
type Window struct {
	From time.Time
	To   time.Time
}

// ParcelRepo owns parcel rows. Compound updates that also touch a rider row
// must be applied atomically: either both rows change or neither does.
type ParcelRepo interface {
	Create(p *parcelModel.Parcel) error
	GetByID(id uint) (*parcelModel.Parcel, error)
	List(f ParcelFilter) ([]parcelModel.Parcel, error) // newest first
	Update(p *parcelModel.Parcel) error
	UpdateWithRider(p *parcelModel.Parcel, r *riderModel.Rider) error
	Delete(id uint) (bool, error)
	// MarkPaid flips payment_status from unpaid to paid and reports whether
	// a row actually changed. This is the single-row compare-and-set the
	// double-payment guard relies on.
	MarkPaid(id uint) (bool, error)
	StatusCounts() ([]StatusCount, error)
	ActiveByRider(email string) ([]parcelModel.Parcel, error)
	CompletedByRider(email string, w *Window) ([]parcelModel.Parcel, error)
}

// RiderRepo owns rider rows. UpdateWithUser applies a rider update and a
// user update atomically (rider approval + role promotion). A nil user is
// valid and means only the rider row changes.
type RiderRepo interface {
	Create(r *riderModel.Rider) error
	GetByID(id uint) (*riderModel.Rider, error)
	ListByStatus(status string) ([]riderModel.Rider, error)
	ListAvailable(district string) ([]riderModel.Rider, error)
	Update(r *riderModel.Rider) error
	UpdateWithUser(r *riderModel.Rider, u *userModel.User) error
}

// UserRepo owns user rows.
type UserRepo interface {
	Create(u *userModel.User) error
	GetByID(id uint) (*userModel.User, error)
	GetByEmail(email string) (*userModel.User, error)
	Update(u *userModel.User) error
	Search(emailFragment string, limit int) ([]userModel.User, error)
}

// TrackingRepo owns tracking events. Append-only.
type TrackingRepo interface {
	Append(ev *trackingModel.TrackingEvent) error
	ListByTrackingID(trackingID string) ([]trackingModel.TrackingEvent, error) // time ascending
}

// PaymentRepo owns payment rows.
type PaymentRepo interface {
	Create(p *paymentModel.Payment) error
	List(email string) ([]paymentModel.Payment, error) // paid_at descending
}
