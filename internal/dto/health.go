package dto

// HealthResponse reports service health and the state of the booking
// database.
type HealthResponse struct {
	Status  string         `json:"status"`
	Details map[string]any `json:"details,omitempty"`
}
