package validators

import "errors"

var (
	ErrUnsupportedType = errors.New("unsupported type for validation")
	ErrUnknownField    = errors.New("unknown field for validation")

	ErrTitleRequired       = errors.New("title is required")
	ErrDescriptionRequired = errors.New("description is required")
	ErrInvalidStatus       = errors.New("invalid case status")
	ErrInvalidPriority     = errors.New("invalid case priority")
	ErrInvalidPage         = errors.New("page must be a positive integer")
	ErrInvalidLimit        = errors.New("limit must be between 1 and 100")

	ErrUsernameRequired = errors.New("username is required")
	ErrInvalidEmail     = errors.New("username must be a valid email")
	ErrPasswordRequired = errors.New("password is required")
	ErrPasswordTooLong  = errors.New("password must not exceed 72 bytes")

	ErrFileNameRequired    = errors.New("file name is required")
	ErrUnsupportedFileType = errors.New("unsupported file type")
)
