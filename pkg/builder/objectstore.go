package builder

import (
	"context"
	"fmt"
	"time"

	"github.com/aws/aws-sdk-go-v2/service/s3"

	"github.com/joeydtaylor/arraysaver/pkg/internal/objectstore"
	"github.com/joeydtaylor/arraysaver/pkg/internal/types"
)

type (
	S3API          = types.S3API
	S3ClientDeps   = types.S3ClientDeps
	S3ObjectConfig = types.S3ObjectConfig
	S3Config       = objectstore.S3Config
	ObjectError    = objectstore.ObjectError
)

// ObjectStore saves and loads matrices of T in one bucket.
type ObjectStore[T Numeric] = objectstore.Store[T]

var (
	ErrNotConfigured = objectstore.ErrNotConfigured
	ErrEmptyKey      = objectstore.ErrEmptyKey
)

// NewObjectStore creates a store over an S3 client and bucket. opts apply to
// every call made through the store.
func NewObjectStore[T Numeric](deps S3ClientDeps, cfg S3ObjectConfig, opts ...Option) *ObjectStore[T] {
	return objectstore.NewStore[T](deps, cfg, opts...)
}

// ObjectStoreWithClientAndBucket is NewObjectStore with a default layout.
func ObjectStoreWithClientAndBucket[T Numeric](cli S3API, bucket string, opts ...Option) *ObjectStore[T] {
	return objectstore.NewStore[T](types.S3ClientDeps{Client: cli, Bucket: bucket}, types.S3ObjectConfig{}, opts...)
}

// NewS3Client creates an S3 client from cfg (static, default or assumed-role credentials).
func NewS3Client(ctx context.Context, cfg S3Config) (*s3.Client, error) {
	return objectstore.NewS3Client(ctx, cfg)
}

// NewS3ClientAssumeRole creates an S3 client by assuming cfg.RoleARN via STS.
func NewS3ClientAssumeRole(ctx context.Context, cfg S3Config) (*s3.Client, error) {
	return objectstore.NewS3ClientAssumeRole(ctx, cfg)
}

// LocalstackS3AssumeRoleConfig sets up defaults for LocalStack assume-role clients.
type LocalstackS3AssumeRoleConfig struct {
	RoleARN      string
	SessionName  string
	Region       string
	Duration     time.Duration
	ExternalID   string
	Endpoint     string
	AccessKey    string
	SecretKey    string
	SessionToken string
}

// NewS3ClientAssumeRoleLocalstack builds an assume-role S3 client with LocalStack defaults.
func NewS3ClientAssumeRoleLocalstack(ctx context.Context, cfg LocalstackS3AssumeRoleConfig) (*s3.Client, error) {
	if cfg.RoleARN == "" {
		return nil, fmt.Errorf("role ARN is required")
	}
	return objectstore.NewS3Client(ctx, localstackConfig(cfg))
}

func localstackConfig(cfg LocalstackS3AssumeRoleConfig) S3Config {
	out := S3Config{
		Region:         cfg.Region,
		Endpoint:       cfg.Endpoint,
		ForcePathStyle: true,
		AccessKey:      cfg.AccessKey,
		SecretKey:      cfg.SecretKey,
		SessionToken:   cfg.SessionToken,
		RoleARN:        cfg.RoleARN,
		SessionName:    cfg.SessionName,
		ExternalID:     cfg.ExternalID,
		Duration:       cfg.Duration,
	}
	if out.SessionName == "" {
		out.SessionName = "arraysaver"
	}
	if out.Region == "" {
		out.Region = "us-east-1"
	}
	if out.Duration == 0 {
		out.Duration = 15 * time.Minute
	}
	if out.Endpoint == "" {
		out.Endpoint = "http://localhost:4566"
	}
	if out.AccessKey == "" {
		out.AccessKey = "test"
	}
	if out.SecretKey == "" {
		out.SecretKey = "test"
	}
	return out
}
