package docstore

import (
	"context"
	"sync"
	"time"

	"github.com/placedly/backend/pkg/errx"
	"github.com/placedly/backend/pkg/logx"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/gridfs"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"
)

const (
	defaultConnectTimeout = 10 * time.Second
	defaultPingTimeout    = 2 * time.Second

	// ResumeBucketName is the GridFS bucket holding resume blobs.
	ResumeBucketName = "resumes"
)

// Handle wraps one database connection together with its bound collection
// handles. Collections are bound exactly once per connection; the cache is
// keyed by name within the handle, and handles are never shared across
// connections, so binding is keyed by connection identity.
type Handle struct {
	client *mongo.Client
	db     *mongo.Database

	mu          sync.Mutex
	collections map[string]*mongo.Collection
	bucket      *gridfs.Bucket
}

func newHandle(client *mongo.Client, db *mongo.Database) *Handle {
	return &Handle{
		client:      client,
		db:          db,
		collections: make(map[string]*mongo.Collection),
	}
}

// Connect opens the process-default (primary) connection eagerly.
func Connect(ctx context.Context, uri, database string) (*Handle, error) {
	dialCtx, cancel := context.WithTimeout(ctx, defaultConnectTimeout)
	defer cancel()

	client, err := mongo.Connect(dialCtx, options.Client().ApplyURI(uri))
	if err != nil {
		return nil, errx.Wrap(err, "failed to connect to document store", errx.TypeUnavailable)
	}
	if err := client.Ping(dialCtx, readpref.Primary()); err != nil {
		_ = client.Disconnect(context.Background())
		return nil, errx.Wrap(err, "document store is unreachable", errx.TypeUnavailable)
	}
	return newHandle(client, client.Database(database)), nil
}

// Collection returns the bound collection handle, binding it on first use.
func (h *Handle) Collection(name string) *mongo.Collection {
	h.mu.Lock()
	defer h.mu.Unlock()
	if coll, ok := h.collections[name]; ok {
		return coll
	}
	coll := h.db.Collection(name)
	h.collections[name] = coll
	return coll
}

// Bucket returns the resume GridFS bucket, binding it on first use.
func (h *Handle) Bucket() (*gridfs.Bucket, error) {
	h.mu.Lock()
	defer h.mu.Unlock()
	if h.bucket != nil {
		return h.bucket, nil
	}
	bucket, err := gridfs.NewBucket(h.db, options.GridFSBucket().SetName(ResumeBucketName))
	if err != nil {
		return nil, errx.Wrap(err, "failed to open blob bucket", errx.TypeInternal)
	}
	h.bucket = bucket
	return bucket, nil
}

// Ping checks connection liveness.
func (h *Handle) Ping(ctx context.Context) error {
	pingCtx, cancel := context.WithTimeout(ctx, defaultPingTimeout)
	defer cancel()
	return h.client.Ping(pingCtx, readpref.Primary())
}

// Close tears the connection down. Only the container calls this, at
// process shutdown.
func (h *Handle) Close(ctx context.Context) error {
	return h.client.Disconnect(ctx)
}

// Config locates the optional applicant store.
type Config struct {
	// URI of the applicant store. Empty means the store was never
	// configured and applicant-side collections bind to the default
	// connection instead.
	URI      string
	Database string
}

// Resolver hands out the applicant-store connection with connect-or-reuse
// semantics: the first successful dial is memoized for the process
// lifetime, a live cached connection is returned unchanged, a dead one is
// replaced. Dial failures are returned to the caller and never memoized.
type Resolver struct {
	cfg      Config
	fallback *Handle

	mu     sync.Mutex
	cur    *Handle
	warned bool
}

// NewResolver creates a resolver. fallback is the process-default handle
// used when no applicant store is configured.
func NewResolver(cfg Config, fallback *Handle) *Resolver {
	return &Resolver{cfg: cfg, fallback: fallback}
}

// Handle returns the applicant-store handle, connecting lazily on first
// use. When the store was never configured it returns the process-default
// handle instead, warning once.
func (r *Resolver) Handle(ctx context.Context) (*Handle, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.cfg.URI == "" {
		if !r.warned {
			logx.Warn("applicant store is not configured, using the default connection")
			r.warned = true
		}
		if r.fallback == nil {
			return nil, errx.Wrap(errNoStore, "no document store available", errx.TypeUnavailable)
		}
		return r.fallback, nil
	}

	if r.cur != nil {
		if err := r.cur.Ping(ctx); err == nil {
			return r.cur, nil
		}
		logx.Warn("applicant store connection went away, reconnecting")
		_ = r.cur.Close(context.Background())
		r.cur = nil
	}

	handle, err := Connect(ctx, r.cfg.URI, r.cfg.Database)
	if err != nil {
		return nil, err
	}
	r.cur = handle
	return handle, nil
}

// Close releases the memoized applicant connection if one was opened.
func (r *Resolver) Close(ctx context.Context) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.cur == nil {
		return nil
	}
	err := r.cur.Close(ctx)
	r.cur = nil
	return err
}

type storeError string

func (e storeError) Error() string { return string(e) }

const errNoStore = storeError("document store not configured")
