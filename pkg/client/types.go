package client

// Recommendation types accepted by the API
const (
	TypeDefault            = "default"
	TypeCrossSell          = "cross-sell"
	TypeUpSell             = "up-sell"
	TypeAccessory          = "accessory"
	TypeFrequentlyTogether = "frequently-together"
)

// Recommendation links a product to a product recommended alongside it
type Recommendation struct {
	ID             int64  `json:"id"`
	PID            int64  `json:"pid"`
	RecommendedPID int64  `json:"recommended_pid"`
	Type           string `json:"type"`
	Liked          bool   `json:"liked"`
}

// HealthResponse represents the liveness check response
type HealthResponse struct {
	Status string `json:"status"`
}

// ReadinessResponse represents the readiness check response
type ReadinessResponse struct {
	Status   string `json:"status"`
	Database string `json:"database"`
}

// ServiceInfo is the metadata served at the API root
type ServiceInfo struct {
	Name    string `json:"name"`
	Version string `json:"version"`
	Paths   string `json:"paths"`
}
