package adapter

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strings"

	"github.com/go-resty/resty/v2"
)

func mapHTTPError(resp *resty.Response) error {
	return mapStatus(resp.StatusCode(), resp.Body())
}

// mapStatus turns a non-2xx status into a sentinel error carrying the
// server's message.
func mapStatus(status int, body []byte) error {
	if status >= http.StatusOK && status < http.StatusMultipleChoices {
		return nil
	}

	message := messageFromBody(body)
	if message == "" {
		message = http.StatusText(status)
	}

	switch status {
	case http.StatusBadRequest:
		return fmt.Errorf("%w: %s", ErrBadRequest, message)
	case http.StatusUnauthorized:
		return fmt.Errorf("%w: %s", ErrUnauthorized, message)
	case http.StatusNotFound:
		return fmt.Errorf("%w: %s", ErrNotFound, message)
	case http.StatusRequestEntityTooLarge:
		return fmt.Errorf("%w: %s", ErrPayloadTooLarge, message)
	case http.StatusUnsupportedMediaType:
		return fmt.Errorf("%w: %s", ErrUnsupportedMediaType, message)
	case http.StatusInternalServerError:
		return fmt.Errorf("%w: %s", ErrInternalServerError, message)
	default:
		return fmt.Errorf("http %d: %s", status, message)
	}
}

// messageFromBody prefers the envelope's message and falls back to the
// raw body text.
func messageFromBody(body []byte) string {
	var env struct {
		Message string `json:"message"`
	}
	if err := json.Unmarshal(body, &env); err == nil && env.Message != "" {
		return env.Message
	}
	return strings.TrimSpace(string(body))
}
