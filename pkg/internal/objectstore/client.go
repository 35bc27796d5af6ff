package objectstore

import (
	"context"
	"fmt"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/credentials/stscreds"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/aws/aws-sdk-go-v2/service/sts"
)

// S3Config describes how to reach a bucket. Empty fields fall back to the
// default AWS configuration chain (env, shared config, instance role).
type S3Config struct {
	Region         string
	Endpoint       string // LocalStack, MinIO, ...; "" for AWS
	ForcePathStyle bool

	// Static credentials; used when AccessKey is set.
	AccessKey    string
	SecretKey    string
	SessionToken string

	// Assume-role; used when RoleARN is set.
	RoleARN     string
	SessionName string
	ExternalID  string
	Duration    time.Duration
}

// NewS3Client builds an *s3.Client from cfg. When RoleARN is set the base
// credentials are used only to call STS and the client runs as the role.
func NewS3Client(ctx context.Context, cfg S3Config) (*s3.Client, error) {
	base, err := loadBaseConfig(ctx, cfg)
	if err != nil {
		return nil, err
	}
	if cfg.RoleARN != "" {
		base.Credentials = aws.NewCredentialsCache(assumeRoleProvider(base, cfg))
	}
	return s3.NewFromConfig(base, s3Options(cfg)), nil
}

// NewS3ClientAssumeRole is NewS3Client with a mandatory role.
func NewS3ClientAssumeRole(ctx context.Context, cfg S3Config) (*s3.Client, error) {
	if cfg.RoleARN == "" {
		return nil, fmt.Errorf("objectstore: role ARN is required")
	}
	return NewS3Client(ctx, cfg)
}

func loadBaseConfig(ctx context.Context, cfg S3Config) (aws.Config, error) {
	var loaders []func(*config.LoadOptions) error
	if cfg.Region != "" {
		loaders = append(loaders, config.WithRegion(cfg.Region))
	}
	if cfg.AccessKey != "" {
		loaders = append(loaders, config.WithCredentialsProvider(
			credentials.NewStaticCredentialsProvider(cfg.AccessKey, cfg.SecretKey, cfg.SessionToken),
		))
	}
	base, err := config.LoadDefaultConfig(ctx, loaders...)
	if err != nil {
		return aws.Config{}, fmt.Errorf("objectstore: load aws config: %w", err)
	}
	return base, nil
}

func assumeRoleProvider(base aws.Config, cfg S3Config) *stscreds.AssumeRoleProvider {
	stsClient := sts.NewFromConfig(base, func(o *sts.Options) {
		if cfg.Endpoint != "" {
			o.BaseEndpoint = aws.String(cfg.Endpoint)
		}
	})
	return stscreds.NewAssumeRoleProvider(stsClient, cfg.RoleARN, func(o *stscreds.AssumeRoleOptions) {
		o.RoleSessionName = "arraysaver"
		if cfg.SessionName != "" {
			o.RoleSessionName = cfg.SessionName
		}
		if cfg.Duration > 0 {
			o.Duration = cfg.Duration
		}
		if cfg.ExternalID != "" {
			o.ExternalID = aws.String(cfg.ExternalID)
		}
	})
}

func s3Options(cfg S3Config) func(*s3.Options) {
	return func(o *s3.Options) {
		o.UsePathStyle = cfg.ForcePathStyle
		if cfg.Endpoint != "" {
			o.BaseEndpoint = aws.String(cfg.Endpoint)
		}
	}
}
