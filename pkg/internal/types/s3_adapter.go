// pkg/internal/types/s3_adapter.go
package types

import (
	"context"

	"github.com/aws/aws-sdk-go-v2/service/s3"
)

// S3API is the slice of the S3 client the object store needs. *s3.Client
// satisfies it; tests substitute an in-memory fake.
type S3API interface {
	PutObject(ctx context.Context, in *s3.PutObjectInput, optFns ...func(*s3.Options)) (*s3.PutObjectOutput, error)
	GetObject(ctx context.Context, in *s3.GetObjectInput, optFns ...func(*s3.Options)) (*s3.GetObjectOutput, error)
}

// S3ClientDeps wires the client and bucket for the object store.
type S3ClientDeps struct {
	Client S3API  // required; *s3.Client against AWS, LocalStack, MinIO, ...
	Bucket string // required
}

// S3ObjectConfig tunes how matrices are laid out in the bucket.
type S3ObjectConfig struct {
	Prefix      string // prepended to every key, "/" added when missing
	ContentType string // default "text/csv"
	SSEMode     string // "" | "AES256" | "aws:kms"
	KMSKeyID    string // used when SSEMode == "aws:kms"
}
