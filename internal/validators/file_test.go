package validators

import (
	"context"
	"testing"

	"github.com/MKhiriev/go-case-tracker/models"
	"github.com/stretchr/testify/assert"
)

func TestAttachmentConstraints_Allows(t *testing.T) {
	allowed := []string{
		"image/jpeg", "image/jpg", "image/png", "image/gif", "image/webp", "image/bmp", "image/svg+xml",
		"application/pdf",
		"application/vnd.ms-excel",
		"application/vnd.openxmlformats-officedocument.spreadsheetml.sheet",
		"application/msword",
		"application/vnd.openxmlformats-officedocument.wordprocessingml.document",
		"application/vnd.ms-powerpoint",
		"application/vnd.openxmlformats-officedocument.presentationml.presentation",
		"IMAGE/PNG",
		"application/pdf; name=report.pdf",
	}
	for _, ct := range allowed {
		assert.True(t, AttachmentConstraints.Allows(ct), ct)
	}

	rejected := []string{"", "text/plain", "application/zip", "application/x-msdownload", "image"}
	for _, ct := range rejected {
		assert.False(t, AttachmentConstraints.Allows(ct), ct)
	}
}

func TestAttachmentConstraints_MaxSize(t *testing.T) {
	assert.Equal(t, int64(10*1024*1024), AttachmentConstraints.MaxSize)
}

func TestFileValidator(t *testing.T) {
	v := NewFileValidator(AttachmentConstraints)
	ctx := context.Background()

	assert.NoError(t, v.Validate(ctx, models.FileUpload{FileName: "report.pdf", ContentType: "application/pdf"}))
	assert.ErrorIs(t, v.Validate(ctx, models.FileUpload{FileName: "run.exe", ContentType: "application/x-msdownload"}), ErrUnsupportedFileType)
	assert.ErrorIs(t, v.Validate(ctx, &models.FileUpload{FileName: "", ContentType: "image/png"}), ErrFileNameRequired)
	assert.ErrorIs(t, v.Validate(ctx, models.FileUpload{FileName: "../", ContentType: "image/png"}), ErrFileNameRequired)
	assert.ErrorIs(t, v.Validate(ctx, models.FileUpload{}, "size"), ErrUnknownField)
	assert.ErrorIs(t, v.Validate(ctx, models.CaseInput{}), ErrUnsupportedType)
}
