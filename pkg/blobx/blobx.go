package blobx

import (
	"context"
	"errors"
	"io"
	"time"
)

// ErrNotFound is returned when no blob exists for the given id.
var ErrNotFound = errors.New("blobx: blob not found")

// ErrInvalidID is returned when the id is not a well-formed blob id.
var ErrInvalidID = errors.New("blobx: invalid blob id")

// Metadata describes a stored blob. It is fully known before the first
// content byte is read, so response headers can be written up front.
type Metadata struct {
	ID          string
	Filename    string
	ContentType string
	Length      int64
	UploadedAt  time.Time
}

// Store reads immutable binary objects addressed by an opaque id.
type Store interface {
	// Open resolves the blob's metadata and a stream over its content.
	// The caller owns the stream and must close it.
	Open(ctx context.Context, id string) (*Metadata, io.ReadCloser, error)
}
