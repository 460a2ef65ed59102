package rider

import "time"

// Rider represents a delivery agent.
type Rider struct {
	ID    uint   `gorm:"primaryKey;autoIncrement" json:"id"`
	Name  string `gorm:"type:varchar(255);not null" json:"name"`
	Email string `gorm:"type:varchar(255);not null;uniqueIndex" json:"email"`
	Phone string `gorm:"type:varchar(50)" json:"phone"`
	Age   int    `gorm:"type:int" json:"age"`

	Region   string `gorm:"type:varchar(120)" json:"region"`
	District string `gorm:"type:varchar(120);index" json:"district"`

	NID              string `gorm:"type:varchar(50)" json:"nid"`
	BikeBrand        string `gorm:"type:varchar(120)" json:"bike_brand"`
	BikeRegistration string `gorm:"type:varchar(120)" json:"bike_registration"`

	Status     string `gorm:"type:varchar(50);not null;index" json:"status"`
	WorkStatus string `gorm:"type:varchar(50);not null" json:"work_status"`

	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}

// Application statuses.
const (
	StatusPending  = "pending"
	StatusActive   = "active"
	StatusRejected = "rejected"
)

// Work statuses.
const (
	WorkStatusAvailable  = "available"
	WorkStatusInDelivery = "in_delivery"
)

// IsValidStatus reports whether s is a known application status.
func IsValidStatus(s string) bool {
	return s == StatusPending || s == StatusActive || s == StatusRejected
}
