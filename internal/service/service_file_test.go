package service

import (
	"bytes"
	"context"
	"errors"
	"io"
	"strings"
	"testing"
	"time"

	"github.com/MKhiriev/go-case-tracker/internal/logger"
	"github.com/MKhiriev/go-case-tracker/internal/mock"
	"github.com/MKhiriev/go-case-tracker/internal/store"
	"github.com/MKhiriev/go-case-tracker/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

const testFileID = "0195a1b2-0000-7000-8000-0000000000f1"

func newTestFileSvc(t *testing.T, ctrl *gomock.Controller, maxSize int64) (*fileService, *mock.MockFileRepository, *mock.MockBlobStorage) {
	t.Helper()
	repo := mock.NewMockFileRepository(ctrl)
	blobs := mock.NewMockBlobStorage(ctrl)

	svc := NewFileService(repo, blobs, maxSize, logger.Nop()).(*fileService)
	svc.ids = &fixedIDs{ids: []string{testFileID}}
	svc.now = func() time.Time { return fixedNow }

	return svc, repo, blobs
}

// readAllPut mimics a blob backend: it drains r and reports the byte count.
func readAllPut(got *bytes.Buffer) func(context.Context, string, io.Reader, string) (int64, error) {
	return func(_ context.Context, _ string, r io.Reader, _ string) (int64, error) {
		n, err := io.Copy(got, r)
		return n, err
	}
}

// ─────────────────────────────────────────────
// Store
// ─────────────────────────────────────────────

func TestFileService_Store_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, repo, blobs := newTestFileSvc(t, ctrl, 1024)

	wantKey := "1773480413000-report.pdf"
	var written bytes.Buffer
	blobs.EXPECT().Put(gomock.Any(), wantKey, gomock.Any(), "application/pdf").DoAndReturn(readAllPut(&written))

	want := models.StoredFile{
		ID:        testFileID,
		FileName:  "report.pdf",
		FilePath:  wantKey,
		FileType:  "application/pdf",
		FileSize:  7,
		CreatedAt: fixedNow,
	}
	repo.EXPECT().Create(gomock.Any(), want).Return(want, nil)

	got, err := svc.Store(context.Background(), models.FileUpload{
		FileName:    "../../etc/report.pdf",
		ContentType: "Application/PDF; charset=binary",
		Body:        strings.NewReader("%PDF-1."),
	})

	require.NoError(t, err)
	assert.Equal(t, want, got)
	assert.Equal(t, "%PDF-1.", written.String())
}

func TestFileService_Store_UnsupportedType(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, _, _ := newTestFileSvc(t, ctrl, 1024)

	_, err := svc.Store(context.Background(), models.FileUpload{
		FileName:    "run.sh",
		ContentType: "text/x-shellscript",
		Body:        strings.NewReader("#!/bin/sh"),
	})

	assert.ErrorIs(t, err, ErrUnsupportedMediaType)
}

func TestFileService_Store_MissingName(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, _, _ := newTestFileSvc(t, ctrl, 1024)

	_, err := svc.Store(context.Background(), models.FileUpload{
		ContentType: "image/png",
		Body:        strings.NewReader("png"),
	})

	assert.ErrorIs(t, err, ErrValidation)
}

func TestFileService_Store_TooLarge(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{name: "over the limit", body: "hello"},
		{name: "exactly the limit", body: "abcd"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			svc, _, blobs := newTestFileSvc(t, ctrl, 4)

			var written bytes.Buffer
			blobs.EXPECT().Put(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).DoAndReturn(readAllPut(&written))

			_, err := svc.Store(context.Background(), models.FileUpload{
				FileName:    "a.png",
				ContentType: "image/png",
				Body:        strings.NewReader(tt.body),
			})

			assert.ErrorIs(t, err, ErrPayloadTooLarge)
		})
	}
}

func TestFileService_Store_MetadataFailureRemovesBlob(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, repo, blobs := newTestFileSvc(t, ctrl, 1024)

	var written bytes.Buffer
	dbErr := errors.New("insert failed")

	blobs.EXPECT().Put(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).DoAndReturn(readAllPut(&written))
	repo.EXPECT().Create(gomock.Any(), gomock.Any()).Return(models.StoredFile{}, dbErr)
	blobs.EXPECT().Delete(gomock.Any(), "1773480413000-a.png").Return(nil)

	_, err := svc.Store(context.Background(), models.FileUpload{
		FileName:    "a.png",
		ContentType: "image/png",
		Body:        strings.NewReader("png"),
	})

	assert.ErrorIs(t, err, dbErr)
}

func TestFileService_Store_BlobFailure(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, _, blobs := newTestFileSvc(t, ctrl, 1024)

	ioErr := errors.New("bucket unavailable")
	blobs.EXPECT().Put(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(int64(0), ioErr)

	_, err := svc.Store(context.Background(), models.FileUpload{
		FileName:    "a.png",
		ContentType: "image/png",
		Body:        strings.NewReader("png"),
	})

	assert.ErrorIs(t, err, ioErr)
	assert.False(t, errors.Is(err, ErrPayloadTooLarge))
}

// ─────────────────────────────────────────────
// Get / List / Open
// ─────────────────────────────────────────────

func TestFileService_Get(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, repo, _ := newTestFileSvc(t, ctrl, 0)

	_, err := svc.Get(context.Background(), "nope")
	assert.ErrorIs(t, err, store.ErrFileNotFound)

	repo.EXPECT().GetByID(gomock.Any(), testFileID).Return(models.StoredFile{ID: testFileID}, nil)
	got, err := svc.Get(context.Background(), testFileID)
	require.NoError(t, err)
	assert.Equal(t, testFileID, got.ID)
}

func TestFileService_List(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, repo, _ := newTestFileSvc(t, ctrl, 0)

	files := []models.StoredFile{{ID: "b"}, {ID: "a"}}
	repo.EXPECT().List(gomock.Any()).Return(files, nil)

	got, err := svc.List(context.Background())

	require.NoError(t, err)
	assert.Equal(t, files, got)
}

func TestFileService_Open_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, repo, blobs := newTestFileSvc(t, ctrl, 0)

	meta := models.StoredFile{ID: testFileID, FileName: "a.png", FilePath: "1-a.png", FileSize: 99}
	repo.EXPECT().GetByID(gomock.Any(), testFileID).Return(meta, nil)
	blobs.EXPECT().Open(gomock.Any(), "1-a.png").Return(io.NopCloser(strings.NewReader("png")), int64(3), nil)

	file, rc, err := svc.Open(context.Background(), testFileID)
	require.NoError(t, err)
	defer rc.Close()

	body, err := io.ReadAll(rc)
	require.NoError(t, err)
	assert.Equal(t, "png", string(body))
	assert.Equal(t, int64(3), file.FileSize)
}

func TestFileService_Open_MissingBytes(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, repo, blobs := newTestFileSvc(t, ctrl, 0)

	repo.EXPECT().GetByID(gomock.Any(), testFileID).Return(models.StoredFile{ID: testFileID, FilePath: "gone"}, nil)
	blobs.EXPECT().Open(gomock.Any(), "gone").Return(nil, int64(0), store.ErrBlobNotFound)

	_, rc, err := svc.Open(context.Background(), testFileID)

	assert.Nil(t, rc)
	assert.ErrorIs(t, err, ErrFileMissingOnDisk)
}

func TestFileService_Open_UnknownID(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, repo, _ := newTestFileSvc(t, ctrl, 0)

	repo.EXPECT().GetByID(gomock.Any(), testFileID).Return(models.StoredFile{}, store.ErrFileNotFound)

	_, _, err := svc.Open(context.Background(), testFileID)

	assert.ErrorIs(t, err, store.ErrFileNotFound)
}

func TestBaseFileName(t *testing.T) {
	assert.Equal(t, "a.png", baseFileName("a.png"))
	assert.Equal(t, "a.png", baseFileName("../../a.png"))
	assert.Equal(t, "a.png", baseFileName(`C:\Users\x\a.png`))
}
