package adapter

import "errors"

var (
	ErrBadRequest           = errors.New("bad request")
	ErrUnauthorized         = errors.New("client unauthorized")
	ErrNotFound             = errors.New("not found")
	ErrPayloadTooLarge      = errors.New("payload too large")
	ErrUnsupportedMediaType = errors.New("unsupported media type")
	ErrInternalServerError  = errors.New("internal server error")
)
