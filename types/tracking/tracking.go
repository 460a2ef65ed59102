package tracking

// AppendEventRequest is the payload for POST /trackings.
type AppendEventRequest struct {
	TrackingID string `json:"tracking_id"`
	ParcelID   string `json:"parcel_id"` // accepted as an alias for tracking_id
	Status     string `json:"status"`
	Message    string `json:"message"`
	UpdatedBy  string `json:"updated_by"`
}
