package models

// Response is the JSON envelope returned by every API endpoint.
// Success mirrors whether the status code is 2xx.
type Response struct {
	Success bool   `json:"success"`
	Message string `json:"message"`

	// Data carries the payload. Absent when there is nothing to return.
	Data any `json:"data,omitempty"`

	// TotalCount is set only by the case listing.
	TotalCount *int64 `json:"totalCount,omitempty"`

	// Error carries internal error text on 500 responses when the server
	// is configured to expose it.
	Error string `json:"error,omitempty"`
}

// HealthResponse is returned by the health endpoint.
type HealthResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
	Version string `json:"version"`
}
