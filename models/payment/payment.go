package payment

import "time"

// Payment records a completed charge against a parcel. Exactly one row
// exists per paid parcel.
type Payment struct {
	ID            uint      `gorm:"primaryKey;autoIncrement" json:"id"`
	ParcelID      uint      `gorm:"not null;index" json:"parcelId"`
	Email         string    `gorm:"type:varchar(255);not null;index" json:"email"`
	Amount        float64   `gorm:"type:decimal(10,2);not null" json:"amount"`
	PaymentMethod string    `gorm:"type:varchar(50)" json:"paymentMethod"`
	TransactionID string    `gorm:"type:varchar(255);not null;uniqueIndex" json:"transactionId"`
	PaidAt        time.Time `gorm:"not null" json:"paid_at"`
}
