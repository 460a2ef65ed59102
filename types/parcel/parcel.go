package parcel

// ParcelCreateRequest is the payload for POST /parcels.
type ParcelCreateRequest struct {
	Title            string  `json:"title"`
	Type             string  `json:"type"`
	SenderName       string  `json:"sender_name"`
	SenderContact    string  `json:"sender_contact"`
	SenderRegion     string  `json:"sender_region"`
	SenderDistrict   string  `json:"sender_district"`
	SenderAddress    string  `json:"sender_address"`
	ReceiverName     string  `json:"receiver_name"`
	ReceiverContact  string  `json:"receiver_contact"`
	ReceiverRegion   string  `json:"receiver_region"`
	ReceiverDistrict string  `json:"receiver_district"`
	ReceiverAddress  string  `json:"receiver_address"`
	Weight           float64 `json:"weight"`
	Cost             float64 `json:"cost"`
	CreatedBy        string  `json:"created_by"`
}

// AssignRiderRequest is the payload for PATCH /parcels/:id/assign.
type AssignRiderRequest struct {
	RiderID uint `json:"rider_id"`
}

// UpdateStatusRequest is the payload for PATCH /parcels/:id/status.
type UpdateStatusRequest struct {
	Status    string `json:"status"`
	UpdatedBy string `json:"updated_by"`
}
