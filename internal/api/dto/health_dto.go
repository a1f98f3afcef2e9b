package dto

// HealthResponse reports liveness and dependency connectivity.
type HealthResponse struct {
	Status    string `json:"status"`
	Service   string `json:"service"`
	Database  string `json:"database"`
	Cache     string `json:"cache"`
	Timestamp string `json:"timestamp"`
}

// ReadyResponse reports per-dependency readiness.
type ReadyResponse struct {
	Status       string            `json:"status"`
	Dependencies map[string]string `json:"dependencies"`
}

// APIInfoResponse is the static capability description.
type APIInfoResponse struct {
	Name           string   `json:"name"`
	Version        string   `json:"version"`
	Description    string   `json:"description"`
	Features       []string `json:"features"`
	Authentication string   `json:"authentication"`
	OutputFormat   string   `json:"output_format"`
}
