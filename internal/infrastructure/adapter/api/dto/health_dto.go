package dto

// HealthResponse represents the API response for a health probe
type HealthResponse struct {
	Status   string `json:"status"`
	Database string `json:"database"`
}
