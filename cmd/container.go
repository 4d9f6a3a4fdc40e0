package main

import (
	"context"
	"os"
	"strings"

	"github.com/go-redis/redis/v8"
	"github.com/gofiber/fiber/v2"
	"github.com/placedly/backend/internal/docstore"
	"github.com/placedly/backend/pkg/blobx"
	"github.com/placedly/backend/pkg/blobx/blobxgridfs"
	"github.com/placedly/backend/pkg/logx"
	"github.com/placedly/backend/recruitment/application/applicationapi"
	"github.com/placedly/backend/recruitment/application/applicationinfra"
	"github.com/placedly/backend/recruitment/application/applicationsrv"
	"github.com/placedly/backend/recruitment/posting/postinginfra"
	"github.com/placedly/backend/recruitment/premium"
	"github.com/placedly/backend/recruitment/premium/premiuminfra"
	"github.com/placedly/backend/recruitment/premium/premiumsrv"
	"github.com/placedly/backend/recruitment/recruiterauth"
	"go.mongodb.org/mongo-driver/mongo/gridfs"
)

// Container holds all application dependencies
type Container struct {
	// Infrastructure
	Primary        *docstore.Handle
	ApplicantStore *docstore.Resolver
	Redis          *redis.Client
	BlobStore      blobx.Store

	// Services
	TokenService       *recruiterauth.RecruiterTokenService
	PremiumDirectory   *premiumsrv.Directory
	ApplicationService *applicationsrv.ApplicationService

	// API Handlers
	ApplicationHandlers *applicationapi.Handlers

	// Middleware
	AuthMiddleware fiber.Handler
}

// NewContainer initializes the dependency injection container
func NewContainer() *Container {
	c := &Container{}
	c.initInfrastructure()
	c.initServices()
	return c
}

func (c *Container) initInfrastructure() {
	// 1. Primary Database Connection
	mongoURI := os.Getenv("MONGO_URI")
	if mongoURI == "" {
		logx.Fatal("MONGO_URI is not set")
	}
	mongoDB := os.Getenv("MONGO_DB")
	if mongoDB == "" {
		mongoDB = "placedly"
	}

	primary, err := docstore.Connect(context.Background(), mongoURI, mongoDB)
	if err != nil {
		logx.Fatalf("Failed to connect to database: %v", err)
	}
	c.Primary = primary

	// 2. Applicant Store (optional separate deployment, resolved lazily;
	// falls back to the primary connection when no URI is configured)
	applicantDB := os.Getenv("APPLICANT_DB_NAME")
	if applicantDB == "" {
		applicantDB = mongoDB
	}
	c.ApplicantStore = docstore.NewResolver(docstore.Config{
		URI:      os.Getenv("APPLICANT_DB_URI"),
		Database: applicantDB,
	}, primary)

	// 3. Redis Connection (optional, premium roster cache only)
	redisAddr := os.Getenv("REDIS_ADDR")
	if redisAddr != "" {
		c.Redis = redis.NewClient(&redis.Options{
			Addr:     redisAddr,
			Password: os.Getenv("REDIS_PASS"),
			DB:       0,
		})
		if _, err := c.Redis.Ping(context.Background()).Result(); err != nil {
			logx.Warnf("Failed to connect to Redis: %v", err)
		}
	}

	// 4. Resume Blob Store
	c.BlobStore = blobxgridfs.NewGridFSStore(func(ctx context.Context) (*gridfs.Bucket, error) {
		handle, err := c.ApplicantStore.Handle(ctx)
		if err != nil {
			return nil, err
		}
		return handle.Bucket()
	})

	// 5. Token Service
	jwtSecret := os.Getenv("JWT_SECRET")
	if jwtSecret == "" {
		logx.Warn("JWT_SECRET is not set, using default (unsafe for production)")
		jwtSecret = "super-secret-key-please-change-me-in-production"
	}
	c.TokenService = recruiterauth.NewRecruiterTokenService(jwtSecret, recruiterauth.DefaultTokenDuration)
}

func (c *Container) initServices() {
	// --- Repositories ---
	postingRepo := postinginfra.NewMongoPostingRepository(c.Primary)

	var memberRepo premium.Repository = premiuminfra.NewMongoMemberRepository(c.ApplicantStore)
	if c.Redis != nil {
		memberRepo = premiuminfra.NewRedisMemberCache(c.Redis, memberRepo)
	}

	fullScan := envFlag("TRIAGE_REF_FULL_SCAN", true)
	applicationRepo := applicationinfra.NewMongoApplicationRepository(c.ApplicantStore, fullScan)

	// --- Domain Services ---
	c.PremiumDirectory = premiumsrv.NewDirectory(memberRepo)
	c.ApplicationService = applicationsrv.NewApplicationService(
		applicationRepo,
		postingRepo,
		c.PremiumDirectory,
		c.BlobStore,
	)

	// --- Handlers ---
	c.ApplicationHandlers = applicationapi.NewHandlers(c.ApplicationService)

	// --- Middleware ---
	c.AuthMiddleware = recruiterauth.Middleware(c.TokenService)
}

// Close releases all infrastructure connections
func (c *Container) Close() {
	ctx := context.Background()
	if c.ApplicantStore != nil {
		c.ApplicantStore.Close(ctx)
	}
	if c.Primary != nil {
		c.Primary.Close(ctx)
	}
	if c.Redis != nil {
		c.Redis.Close()
	}
}

// envFlag reads a boolean environment flag, returning def when unset
func envFlag(name string, def bool) bool {
	v := strings.TrimSpace(strings.ToLower(os.Getenv(name)))
	switch v {
	case "":
		return def
	case "1", "true", "yes", "on":
		return true
	default:
		return false
	}
}
