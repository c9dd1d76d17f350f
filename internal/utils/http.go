package utils

import (
	"encoding/json"
	"errors"
	"fmt"
	"mime"
	"net/http"
)

// ErrUnsupportedBody is returned by DecodeBody when the request carries a
// content type other than JSON or url-encoded form data.
var ErrUnsupportedBody = errors.New("unsupported request body")

// WriteJSON serializes the given data to JSON and writes it to the HTTP response.
//
// It sets the "Content-Type" header to "application/json" and writes
// the provided HTTP status code before sending the response body.
//
// If marshaling fails, it responds with 500 Internal Server Error
// and returns a wrapped error.
//
// Example usage:
//
//	WriteJSON(w, map[string]string{"status": "ok"}, http.StatusOK)
//	WriteJSON(w, map[string]string{"error": "not found"}, http.StatusNotFound)
func WriteJSON(w http.ResponseWriter, data any, statusCode int) (int, error) {
	jsonData, err := json.Marshal(data)
	if err != nil {
		http.Error(w, "error writing data to JSON", http.StatusInternalServerError)
		return 0, fmt.Errorf("error writing data to JSON: %w", err)
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)

	return w.Write(jsonData)
}

// DecodeBody fills dst from the request body. JSON bodies are decoded
// directly; url-encoded forms are flattened to their first value per key
// and mapped onto dst through its json tags. A request without a
// Content-Type is treated as JSON.
func DecodeBody(r *http.Request, dst any) error {
	contentType := r.Header.Get("Content-Type")
	mediaType := "application/json"
	if contentType != "" {
		parsed, _, err := mime.ParseMediaType(contentType)
		if err != nil {
			return fmt.Errorf("%w: %w", ErrUnsupportedBody, err)
		}
		mediaType = parsed
	}

	switch mediaType {
	case "application/json":
		if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
			return fmt.Errorf("error decoding json body: %w", err)
		}
		return nil
	case "application/x-www-form-urlencoded":
		if err := r.ParseForm(); err != nil {
			return fmt.Errorf("error parsing form body: %w", err)
		}

		flat := make(map[string]string, len(r.PostForm))
		for key := range r.PostForm {
			flat[key] = r.PostForm.Get(key)
		}

		raw, err := json.Marshal(flat)
		if err != nil {
			return fmt.Errorf("error converting form body: %w", err)
		}
		if err = json.Unmarshal(raw, dst); err != nil {
			return fmt.Errorf("error converting form body: %w", err)
		}
		return nil
	default:
		return fmt.Errorf("%w: %s", ErrUnsupportedBody, mediaType)
	}
}
