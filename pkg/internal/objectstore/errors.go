package objectstore

import (
	"errors"
	"fmt"
)

var (
	// ErrNotConfigured is returned when the store has no client or bucket.
	ErrNotConfigured = errors.New("objectstore: client and bucket are required")

	// ErrEmptyKey is returned for an empty object name.
	ErrEmptyKey = errors.New("objectstore: object key is required")
)

// ObjectError reports a failed PutObject or GetObject call, or a failure
// reading an object body.
type ObjectError struct {
	Op     string
	Bucket string
	Key    string
	Err    error
}

func (e *ObjectError) Error() string {
	return fmt.Sprintf("objectstore: %s s3://%s/%s: %v", e.Op, e.Bucket, e.Key, e.Err)
}

func (e *ObjectError) Unwrap() error { return e.Err }
