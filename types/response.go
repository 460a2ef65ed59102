package types

import "time"

type ApiResponse struct {
	Message string      `json:"message"`
	Status  int         `json:"status"`
	Data    interface{} `json:"data,omitempty"`
}

// MutationResult is the explicit acknowledgement returned by write
// endpoints instead of raw storage driver results.
type MutationResult struct {
	ID       uint `json:"id"`
	Modified bool `json:"modified"`
}

// LogEntry is the in-flight shape handed to the async request logger.
type LogEntry struct {
	Method      string
	URL         string
	UserEmail   string
	ClientIP    string
	RequestBody string
	StatusCode  int
	CreatedAt   time.Time
}
