package http

import (
	"errors"
	"net/http"

	"github.com/MKhiriev/go-case-tracker/internal/service"
	"github.com/MKhiriev/go-case-tracker/internal/session"
	"github.com/MKhiriev/go-case-tracker/internal/store"
	"github.com/MKhiriev/go-case-tracker/internal/utils"
	"github.com/MKhiriev/go-case-tracker/internal/validators"
)

const internalServerErrorMessage = "Internal server error"

var errorStatusMap = map[error]int{
	service.ErrValidation:           http.StatusBadRequest,
	service.ErrInvalidCredentials:   http.StatusUnauthorized,
	service.ErrFileMissingOnDisk:    http.StatusNotFound,
	service.ErrUnsupportedMediaType: http.StatusUnsupportedMediaType,
	service.ErrPayloadTooLarge:      http.StatusRequestEntityTooLarge,

	session.ErrUnauthorized: http.StatusUnauthorized,

	store.ErrUserNotFound:      http.StatusBadRequest,
	store.ErrUserAlreadyExists: http.StatusBadRequest,
	store.ErrCaseNotFound:      http.StatusNotFound,
	store.ErrFileNotFound:      http.StatusNotFound,

	ErrInvalidBody:           http.StatusBadRequest,
	ErrFileFieldMissing:      http.StatusBadRequest,
	ErrNotMultipart:          http.StatusBadRequest,
	utils.ErrUnsupportedBody: http.StatusBadRequest,
}

func statusFromError(err error) int {
	var maxBytesErr *http.MaxBytesError
	if errors.As(err, &maxBytesErr) {
		return http.StatusRequestEntityTooLarge
	}

	for target, status := range errorStatusMap {
		if errors.Is(err, target) {
			return status
		}
	}
	return http.StatusInternalServerError
}

// errorMessages is checked in order, so specific causes come before the
// generic errors that wrap them.
var errorMessages = []struct {
	target  error
	message string
}{
	{validators.ErrTitleRequired, "Title and description are required"},
	{validators.ErrDescriptionRequired, "Title and description are required"},
	{validators.ErrInvalidStatus, "Status must be one of Open, In Progress, Closed"},
	{validators.ErrInvalidPriority, "Priority must be one of High, Medium, Low"},
	{validators.ErrInvalidPage, "Page must be a positive integer"},
	{validators.ErrInvalidLimit, "Limit must be between 1 and 100"},
	{validators.ErrUsernameRequired, "Username is required"},
	{validators.ErrInvalidEmail, "Username must be a valid email"},
	{validators.ErrPasswordRequired, "Password is required"},
	{validators.ErrPasswordTooLong, "Password must not exceed 72 bytes"},
	{validators.ErrFileNameRequired, "File name is required"},

	{store.ErrUserNotFound, "User does not exist"},
	{store.ErrUserAlreadyExists, "User already exists"},
	{store.ErrCaseNotFound, "Case not found"},
	{store.ErrFileNotFound, "File not found"},

	{service.ErrInvalidCredentials, "Invalid credentials"},
	{service.ErrFileMissingOnDisk, "File not found on disk"},
	{service.ErrUnsupportedMediaType, "Unsupported file type"},
	{service.ErrPayloadTooLarge, "File is too large"},
	{service.ErrValidation, "Invalid request"},

	{session.ErrUnauthorized, "Unauthorized"},

	{ErrInvalidBody, "Invalid request body"},
	{ErrFileFieldMissing, "No file uploaded"},
	{ErrNotMultipart, "Upload must be multipart/form-data"},
	{utils.ErrUnsupportedBody, "Unsupported request body"},
}

// messageFromError picks the client-facing message for err. Server errors
// use fallback so internals never leak through the message field.
func messageFromError(err error, status int, fallback string) string {
	if status >= http.StatusInternalServerError {
		return fallback
	}
	if status == http.StatusRequestEntityTooLarge {
		return "File is too large"
	}

	for _, m := range errorMessages {
		if errors.Is(err, m.target) {
			return m.message
		}
	}
	return fallback
}
