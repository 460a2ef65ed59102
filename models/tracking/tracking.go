package tracking

import "time"

// TrackingEvent is one immutable entry in a parcel's status timeline.
// Rows are only ever inserted; there is no update or delete path.
type TrackingEvent struct {
	ID         uint      `gorm:"primaryKey;autoIncrement" json:"id"`
	TrackingID string    `gorm:"type:varchar(50);not null;index" json:"tracking_id"`
	Status     string    `gorm:"type:varchar(50);not null" json:"status"`
	Message    string    `gorm:"type:text" json:"message"`
	Time       time.Time `gorm:"not null" json:"time"`
	UpdatedBy  string    `gorm:"type:varchar(255)" json:"updated_by"`
}
