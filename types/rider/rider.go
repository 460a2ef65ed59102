package rider

// RiderRegisterRequest is the payload for POST /riders.
type RiderRegisterRequest struct {
	Name             string `json:"name"`
	Email            string `json:"email"`
	Phone            string `json:"phone"`
	Age              int    `json:"age"`
	Region           string `json:"region"`
	District         string `json:"district"`
	NID              string `json:"nid"`
	BikeBrand        string `json:"bike_brand"`
	BikeRegistration string `json:"bike_registration"`
}

// SetStatusRequest is the payload for PATCH /riders/:id/status.
type SetStatusRequest struct {
	Status string `json:"status"`
	Email  string `json:"email"`
}
