// Package objectstore saves and loads matrices as objects in an S3-compatible
// bucket, using the same text codec and options as the file saver.
package objectstore

import (
	"strings"

	"github.com/joeydtaylor/arraysaver/pkg/internal/types"
)

const (
	contentTypeText   = "text/csv"
	contentTypeBinary = "application/octet-stream"
)

// Store reads and writes matrices of T under one bucket and key prefix.
// A Store holds no per-call state and is safe for concurrent use.
type Store[T types.Numeric] struct {
	cli         types.S3API
	bucket      string
	prefix      string
	contentType string
	sseMode     string
	kmsKey      string
	opts        []types.Option

	componentMetadata types.ComponentMetadata
}

// NewStore builds a Store. opts are applied to every call, in addition to the
// per-call options.
func NewStore[T types.Numeric](deps types.S3ClientDeps, cfg types.S3ObjectConfig, opts ...types.Option) *Store[T] {
	s := &Store[T]{
		cli:         deps.Client,
		bucket:      deps.Bucket,
		prefix:      normalizePrefix(cfg.Prefix),
		contentType: cfg.ContentType,
		sseMode:     cfg.SSEMode,
		kmsKey:      cfg.KMSKeyID,
		opts:        append([]types.Option(nil), opts...),
		componentMetadata: types.ComponentMetadata{
			Type: "OBJECT_STORE",
			Name: "objectstore",
			ID:   deps.Bucket,
		},
	}
	return s
}

// Bucket returns the bucket the store writes to.
func (s *Store[T]) Bucket() string { return s.bucket }

// Key returns the full object key for name, including the prefix.
func (s *Store[T]) Key(name string) string {
	return s.prefix + strings.TrimPrefix(name, "/")
}

func normalizePrefix(p string) string {
	p = strings.Trim(p, "/")
	if p == "" {
		return ""
	}
	return p + "/"
}
