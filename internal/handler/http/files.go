package http

import (
	"errors"
	"fmt"
	"io"
	"mime"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/MKhiriev/go-case-tracker/internal/logger"
	"github.com/MKhiriev/go-case-tracker/models"
)

const (
	uploadFieldName = "file"
	downloadChunk   = 32 << 10
)

func (h *Handler) listFiles(w http.ResponseWriter, r *http.Request) {
	files, err := h.services.FileService.List(r.Context())
	if err != nil {
		h.writeError(w, r, err, "Failed to fetch files")
		return
	}
	if files == nil {
		files = []models.StoredFile{}
	}

	writeEnvelope(w, r, http.StatusOK, envelope{Message: "Files fetched successfully", Data: files})
}

// uploadFile streams the "file" part of a multipart body into the file
// service without spooling it to a temporary file.
func (h *Handler) uploadFile(w http.ResponseWriter, r *http.Request) {
	if h.maxUploadSize > 0 {
		r.Body = http.MaxBytesReader(w, r.Body, h.maxUploadSize+multipartOverhead)
	}

	mr, err := r.MultipartReader()
	if err != nil {
		h.writeError(w, r, fmt.Errorf("%w: %w", ErrNotMultipart, err), "Failed to upload file")
		return
	}

	for {
		part, err := mr.NextPart()
		if errors.Is(err, io.EOF) {
			h.writeError(w, r, ErrFileFieldMissing, "Failed to upload file")
			return
		}
		if err != nil {
			h.writeError(w, r, fmt.Errorf("%w: %w", ErrInvalidBody, err), "Failed to upload file")
			return
		}

		if part.FormName() != uploadFieldName || part.FileName() == "" {
			part.Close()
			continue
		}

		file, err := h.services.FileService.Store(r.Context(), models.FileUpload{
			FileName:    part.FileName(),
			ContentType: part.Header.Get("Content-Type"),
			Body:        part,
		})
		part.Close()
		if err != nil {
			h.writeError(w, r, err, "Failed to upload file")
			return
		}

		logger.FromRequest(r).Info().Str("file_id", file.ID).Int64("size", file.FileSize).Msg("file uploaded")
		writeEnvelope(w, r, http.StatusOK, envelope{Message: "File uploaded successfully", Data: file})
		return
	}
}

// downloadFile streams a stored file as an attachment. A read failure
// before the first byte is answered with JSON; later failures cut the
// response short.
func (h *Handler) downloadFile(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	file, rc, err := h.services.FileService.Open(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		h.writeError(w, r, err, "Failed to fetch file")
		return
	}
	defer rc.Close()

	buf := make([]byte, downloadChunk)
	n, readErr := io.ReadAtLeast(rc, buf, 1)
	if readErr != nil && !errors.Is(readErr, io.EOF) {
		h.writeError(w, r, fmt.Errorf("error reading file: %w", readErr), "Failed to read file")
		return
	}

	contentType := file.FileType
	if contentType == "" {
		contentType = "application/octet-stream"
	}

	header := w.Header()
	header.Set("Content-Type", contentType)
	header.Set("Content-Disposition", mime.FormatMediaType("attachment", map[string]string{"filename": file.FileName}))
	if file.FileSize >= 0 {
		header.Set("Content-Length", strconv.FormatInt(file.FileSize, 10))
	}
	w.WriteHeader(http.StatusOK)

	if n == 0 {
		return
	}
	if _, err = w.Write(buf[:n]); err != nil {
		log.Warn().Err(err).Str("file_id", file.ID).Msg("client went away during download")
		return
	}
	if _, err = io.Copy(w, rc); err != nil {
		log.Err(err).Str("file_id", file.ID).Msg("download interrupted")
	}
}
