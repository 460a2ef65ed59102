package user

import "time"

// User model keyed by the email the identity provider verifies.
type User struct {
	ID          uint   `gorm:"primaryKey;autoIncrement" json:"id"`
	Email       string `gorm:"type:varchar(255);not null;uniqueIndex" json:"email"`
	DisplayName string `gorm:"type:varchar(255)" json:"display_name"`
	Role        string `gorm:"type:varchar(50);not null" json:"role"`

	CreatedAt   time.Time `gorm:"autoCreateTime" json:"created_at"`
	LastLogInAt time.Time `json:"last_log_in_at"`
}
