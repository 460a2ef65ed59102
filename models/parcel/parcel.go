package parcel

import (
	"time"
)

// Parcel represents a shipment record tracked through delivery.
type Parcel struct {
	ID         uint   `gorm:"primaryKey;autoIncrement" json:"id"`
	TrackingID string `gorm:"type:varchar(50);not null;uniqueIndex" json:"tracking_id"`

	Title string `gorm:"type:varchar(255);not null" json:"title"`
	Type  string `gorm:"type:varchar(50)" json:"type"` // document | non-document

	SenderName      string `gorm:"type:varchar(255);not null" json:"sender_name"`
	SenderContact   string `gorm:"type:varchar(50)" json:"sender_contact"`
	SenderRegion    string `gorm:"type:varchar(120)" json:"sender_region"`
	SenderDistrict  string `gorm:"type:varchar(120)" json:"sender_district"`
	SenderAddress   string `gorm:"type:text" json:"sender_address"`
	ReceiverName    string `gorm:"type:varchar(255);not null" json:"receiver_name"`
	ReceiverContact string `gorm:"type:varchar(50)" json:"receiver_contact"`
	ReceiverRegion  string `gorm:"type:varchar(120)" json:"receiver_region"`
	ReceiverDistrict string `gorm:"type:varchar(120)" json:"receiver_district"`
	ReceiverAddress string `gorm:"type:text" json:"receiver_address"`

	Weight float64 `gorm:"type:decimal(10,2)" json:"weight"`
	Cost   float64 `gorm:"type:decimal(10,2)" json:"cost"`

	CreatedBy      string `gorm:"type:varchar(255);not null;index" json:"created_by"`
	DeliveryStatus string `gorm:"type:varchar(50);not null;index" json:"delivery_status"`
	PaymentStatus  string `gorm:"type:varchar(50);not null;index" json:"payment_status"`

	AssignedRiderID    *uint   `gorm:"index" json:"assigned_rider_id,omitempty"`
	AssignedRiderEmail *string `gorm:"type:varchar(255)" json:"assigned_rider_email,omitempty"`
	AssignedRiderName  *string `gorm:"type:varchar(255)" json:"assigned_rider_name,omitempty"`

	CashoutStatus string     `gorm:"type:varchar(50);not null" json:"cashout_status"`
	CashedOutAt   *time.Time `json:"cashed_out_at,omitempty"`

	PickedAt    *time.Time `json:"picked_at,omitempty"`
	DeliveredAt *time.Time `json:"delivered_at,omitempty"`
	CreatedAt   time.Time  `gorm:"autoCreateTime" json:"createdAt"`
	UpdatedAt   time.Time  `gorm:"autoUpdateTime" json:"updated_at"`
}

// Delivery statuses, in pipeline order.
const (
	DeliveryStatusCreated                = "created"
	DeliveryStatusRiderAssigned          = "rider_assigned"
	DeliveryStatusInTransit              = "in_transit"
	DeliveryStatusDelivered              = "delivered"
	DeliveryStatusServiceCenterDelivered = "service_center_delivered"
)

// Payment statuses.
const (
	PaymentStatusUnpaid = "unpaid"
	PaymentStatusPaid   = "paid"
)

// Cashout statuses.
const (
	CashoutStatusNotCashedOut = "not_cashed_out"
	CashoutStatusCashedOut    = "cashed_out"
)

// IsValidDeliveryStatus reports whether s is one of the known delivery statuses.
func IsValidDeliveryStatus(s string) bool {
	switch s {
	case DeliveryStatusCreated, DeliveryStatusRiderAssigned, DeliveryStatusInTransit,
		DeliveryStatusDelivered, DeliveryStatusServiceCenterDelivered:
		return true
	default:
		return false
	}
}

// IsCompletedStatus reports whether s counts as finished rider work.
func IsCompletedStatus(s string) bool {
	return s == DeliveryStatusDelivered || s == DeliveryStatusServiceCenterDelivered
}
