package utils

import (
	"time"

	"github.com/go-resty/resty/v2"
)

// HTTPClient is a wrapper around the resty.Client HTTP client.
// It embeds *resty.Client to expose all of its methods directly,
// while allowing extension with additional application-specific behavior.
//
// Example usage:
//
//	client := utils.NewAPIClient("http://localhost:4000", 30*time.Second)
//	resp, err := client.R().Get("/api/health")
type HTTPClient struct {
	*resty.Client
}

// TraceIDHeader carries the trace id between client and server.
const TraceIDHeader = "X-Trace-ID"

// NewAPIClient returns an HTTPClient bound to baseURL. Requests time out
// after timeout (zero disables the limit) and cookies set by the server
// are kept in the client's jar, so a login carries over to later calls.
// A trace id found in the request context is sent as X-Trace-ID.
func NewAPIClient(baseURL string, timeout time.Duration) *HTTPClient {
	client := resty.New().
		SetBaseURL(baseURL).
		SetHeader("Accept", "application/json").
		OnBeforeRequest(forwardTraceID)

	if timeout > 0 {
		client.SetTimeout(timeout)
	}

	return &HTTPClient{Client: client}
}

func forwardTraceID(_ *resty.Client, req *resty.Request) error {
	if traceID, ok := GetTraceIDFromContext(req.Context()); ok {
		req.SetHeader(TraceIDHeader, traceID)
	}
	return nil
}
