package models

import (
	"io"
	"time"
)

// StoredFile is the metadata of an uploaded file. The bytes live in blob
// storage under FilePath.
type StoredFile struct {
	ID        string    `json:"_id"`
	FileName  string    `json:"fileName"`
	FilePath  string    `json:"filePath"`
	FileType  string    `json:"fileType"`
	FileSize  int64     `json:"fileSize"`
	CreatedAt time.Time `json:"createdAt"`
}

// TableName returns the name of the database table
// associated with the StoredFile model.
func (f StoredFile) TableName() string {
	return "files"
}

// FileUpload is an incoming file before it is persisted.
type FileUpload struct {
	// FileName is the client supplied name. Directory parts are ignored.
	FileName string

	// ContentType is the declared MIME type of the part.
	ContentType string

	// Body streams the file content. It is read at most once.
	Body io.Reader
}
