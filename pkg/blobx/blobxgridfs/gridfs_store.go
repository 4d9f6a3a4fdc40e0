package blobxgridfs

import (
	"context"
	"errors"
	"io"

	"github.com/placedly/backend/pkg/blobx"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo/gridfs"
)

const defaultContentType = "application/pdf"

// BucketFunc resolves the GridFS bucket for the current request. The
// applicant-store connection is lazy, so the bucket cannot be captured at
// construction time.
type BucketFunc func(ctx context.Context) (*gridfs.Bucket, error)

// GridFSStore implements blobx.Store over a GridFS bucket.
type GridFSStore struct {
	bucket BucketFunc
}

// NewGridFSStore creates a GridFS-backed blob store.
func NewGridFSStore(bucket BucketFunc) *GridFSStore {
	return &GridFSStore{bucket: bucket}
}

// Open resolves a blob by its object-id hex string.
func (s *GridFSStore) Open(ctx context.Context, id string) (*blobx.Metadata, io.ReadCloser, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, nil, blobx.ErrInvalidID
	}

	bucket, err := s.bucket(ctx)
	if err != nil {
		return nil, nil, err
	}

	stream, err := bucket.OpenDownloadStream(oid)
	if err != nil {
		if errors.Is(err, gridfs.ErrFileNotFound) {
			return nil, nil, blobx.ErrNotFound
		}
		return nil, nil, err
	}

	file := stream.GetFile()
	meta := &blobx.Metadata{
		ID:          id,
		Filename:    file.Name,
		ContentType: contentTypeOf(file.Metadata),
		Length:      file.Length,
		UploadedAt:  file.UploadDate,
	}
	if meta.Filename == "" {
		meta.Filename = id + ".pdf"
	}
	return meta, stream, nil
}

// contentTypeOf reads the content type the uploader recorded in the file
// metadata, defaulting to PDF for records that predate the field.
func contentTypeOf(md bson.Raw) string {
	if len(md) > 0 {
		if v, err := md.LookupErr("contentType"); err == nil {
			if ct, ok := v.StringValueOK(); ok && ct != "" {
				return ct
			}
		}
	}
	return defaultContentType
}
