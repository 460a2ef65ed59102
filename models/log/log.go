package log

import (
	"time"
)

// Log represents an HTTP request/response audit entry.
type Log struct {
	ID          uint      `gorm:"primaryKey;autoIncrement" json:"id"`
	Method      string    `gorm:"type:varchar(10);not null" json:"method"`
	URL         string    `gorm:"type:text;not null" json:"url"`
	UserEmail   string    `gorm:"type:varchar(255);index" json:"user_email"`
	ClientIP    string    `gorm:"type:varchar(64)" json:"client_ip"`
	RequestBody string    `gorm:"type:text" json:"request_body"`
	StatusCode  int       `gorm:"type:int" json:"status_code"`
	CreatedAt   time.Time `gorm:"autoCreateTime" json:"created_at"`
}
