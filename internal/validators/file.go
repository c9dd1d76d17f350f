package validators

import (
	"context"
	"mime"
	"path/filepath"
	"strings"

	"github.com/MKhiriev/go-case-tracker/models"
)

const (
	FieldFileName    = "file_name"
	FieldContentType = "content_type"
)

// FileConstraints defines validation rules for file uploads.
type FileConstraints struct {
	AllowedMimeTypes map[string]bool
	MaxSize          int64
}

// AttachmentConstraints is the allow-list for case attachments: common
// images, PDF and Office documents, up to 10 MiB exclusive.
var AttachmentConstraints = FileConstraints{
	AllowedMimeTypes: map[string]bool{
		"image/jpeg":    true,
		"image/jpg":     true,
		"image/png":     true,
		"image/gif":     true,
		"image/webp":    true,
		"image/bmp":     true,
		"image/svg+xml": true,

		"application/pdf": true,

		"application/vnd.ms-excel": true,
		"application/vnd.openxmlformats-officedocument.spreadsheetml.sheet": true,

		"application/msword": true,
		"application/vnd.openxmlformats-officedocument.wordprocessingml.document": true,

		"application/vnd.ms-powerpoint": true,
		"application/vnd.openxmlformats-officedocument.presentationml.presentation": true,
	},
	MaxSize: 10 << 20,
}

// Allows reports whether contentType (parameters ignored) is on the list.
func (c FileConstraints) Allows(contentType string) bool {
	return c.AllowedMimeTypes[NormalizeContentType(contentType)]
}

// NormalizeContentType lower-cases the media type and drops parameters.
// Unparsable values come back lower-cased and trimmed.
func NormalizeContentType(contentType string) string {
	mediaType, _, err := mime.ParseMediaType(contentType)
	if err != nil {
		return strings.ToLower(strings.TrimSpace(contentType))
	}
	return mediaType
}

// FileValidator checks an upload's name and declared type against its
// constraints. Size is enforced while the body is streamed.
type FileValidator struct {
	constraints FileConstraints
}

func NewFileValidator(constraints FileConstraints) Validator {
	return &FileValidator{constraints: constraints}
}

func (v *FileValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case models.FileUpload:
		return v.validateUpload(value, fields...)
	case *models.FileUpload:
		return v.validateUpload(*value, fields...)
	default:
		return ErrUnsupportedType
	}
}

func (v *FileValidator) validateUpload(upload models.FileUpload, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldContentType, FieldFileName}
	}

	for _, f := range fields {
		switch f {
		case FieldFileName:
			name := filepath.Base(filepath.Clean("/" + upload.FileName))
			if strings.TrimSpace(upload.FileName) == "" || name == "/" || name == "." {
				return ErrFileNameRequired
			}
		case FieldContentType:
			if !v.constraints.Allows(upload.ContentType) {
				return ErrUnsupportedFileType
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}
