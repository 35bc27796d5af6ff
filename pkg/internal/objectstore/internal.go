package objectstore

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"math/rand/v2"
	"net"
	"net/http"
	"strings"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	s3api "github.com/aws/aws-sdk-go-v2/service/s3"
	s3types "github.com/aws/aws-sdk-go-v2/service/s3/types"
	"github.com/aws/smithy-go"

	"github.com/joeydtaylor/arraysaver/pkg/internal/codec"
	"github.com/joeydtaylor/arraysaver/pkg/internal/compression"
	"github.com/joeydtaylor/arraysaver/pkg/internal/types"
)

const (
	maxAttempts = 4
	baseBackoff = 100 * time.Millisecond
	maxBackoff  = 2 * time.Second
)

// prepare merges store and call options and checks everything that can be
// checked before talking to S3.
func (s *Store[T]) prepare(name string, opts []types.Option) (types.CodecOptions, string, error) {
	merged := append(s.opts[:len(s.opts):len(s.opts)], opts...)
	o := types.ApplyOptions(merged...)

	if s.cli == nil || s.bucket == "" {
		return o, "", ErrNotConfigured
	}
	if strings.Trim(name, "/") == "" {
		return o, "", ErrEmptyKey
	}
	if err := codec.ValidateDelimiter(o.Delimiter); err != nil {
		return o, "", err
	}
	return o, s.Key(name), nil
}

// upload encodes into memory, compresses per the options and puts the object.
// It returns the number of body bytes sent.
func (s *Store[T]) upload(ctx context.Context, key string, o types.CodecOptions, encode func(io.Writer) error) (int, error) {
	alg, err := compression.Resolve(o.Compression, key)
	if err != nil {
		return 0, err
	}

	var body bytes.Buffer
	cw, err := compression.NewWriter(&body, alg)
	if err != nil {
		return 0, err
	}
	if err := encode(cw); err != nil {
		_ = cw.Close()
		return 0, err
	}
	if err := cw.Close(); err != nil {
		return 0, err
	}

	put := &s3api.PutObjectInput{
		Bucket:      aws.String(s.bucket),
		Key:         aws.String(key),
		ContentType: aws.String(s.contentTypeFor(alg)),
	}
	if alg != types.CompressionNone {
		put.ContentEncoding = aws.String(string(alg))
	}

	switch strings.ToLower(s.sseMode) {
	case "aes256":
		put.ServerSideEncryption = s3types.ServerSideEncryptionAes256
	case "aws:kms":
		put.ServerSideEncryption = s3types.ServerSideEncryptionAwsKms
		if s.kmsKey != "" {
			put.SSEKMSKeyId = aws.String(s.kmsKey)
		}
	}

	if err := s.putWithRetry(ctx, put, body.Bytes(), o); err != nil {
		return 0, &ObjectError{Op: "put", Bucket: s.bucket, Key: key, Err: err}
	}
	return body.Len(), nil
}

func (s *Store[T]) contentTypeFor(alg types.Compression) string {
	switch {
	case s.contentType != "":
		return s.contentType
	case alg != types.CompressionNone:
		return contentTypeBinary
	default:
		return contentTypeText
	}
}

func (s *Store[T]) putWithRetry(ctx context.Context, put *s3api.PutObjectInput, payload []byte, o types.CodecOptions) error {
	var lastErr error
	for attempt := 1; attempt <= maxAttempts; attempt++ {
		put.Body = bytes.NewReader(payload)

		_, err := s.cli.PutObject(ctx, put)
		if err == nil {
			return nil
		}
		lastErr = err

		if !isRetryable(err) || attempt == maxAttempts || ctx.Err() != nil {
			return err
		}
		s.NotifyLoggers(o, types.WarnLevel, "PutObject retry",
			"event", "PutObject",
			"attempt", attempt,
			"max_attempts", maxAttempts,
			"key", aws.ToString(put.Key),
			"error", err,
		)

		select {
		case <-time.After(backoffDuration(attempt)):
		case <-ctx.Done():
			return ctx.Err()
		}
	}
	return lastErr
}

func backoffDuration(attempt int) time.Duration {
	d := baseBackoff << (attempt - 1)
	if d > maxBackoff {
		d = maxBackoff
	}
	return time.Duration(rand.Int64N(int64(d) + 1))
}

// httpStatusError is satisfied by the SDK's transport errors
// (awshttp.ResponseError, smithyhttp.ResponseError).
type httpStatusError interface {
	HTTPStatusCode() int
}

var retryableCodes = map[string]bool{
	"SlowDown":                 true,
	"Throttling":               true,
	"ThrottlingException":      true,
	"TooManyRequestsException": true,
	"RequestTimeout":           true,
	"RequestTimeoutException":  true,
	"InternalError":            true,
	"ServiceUnavailable":       true,
}

// isRetryable classifies err from its typed parts: HTTP status, S3 error code
// or a network timeout. The message text is never inspected.
func isRetryable(err error) bool {
	if err == nil || errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		return false
	}

	var apiErr smithy.APIError
	if errors.As(err, &apiErr) && retryableCodes[apiErr.ErrorCode()] {
		return true
	}

	var statusErr httpStatusError
	if errors.As(err, &statusErr) {
		switch statusErr.HTTPStatusCode() {
		case http.StatusTooManyRequests, http.StatusInternalServerError, http.StatusBadGateway,
			http.StatusServiceUnavailable, http.StatusGatewayTimeout:
			return true
		}
	}

	var netErr net.Error
	return errors.As(err, &netErr) && netErr.Timeout()
}

// resolveGet picks the decompressor for a downloaded object. An explicit
// algorithm wins; otherwise the key extension and then the Content-Encoding
// header are consulted.
func resolveGet(alg types.Compression, key, contentEncoding string) (types.Compression, error) {
	switch alg {
	case types.CompressionAuto:
		if d := compression.Detect(key); d != types.CompressionNone {
			return d, nil
		}
		return fromContentEncoding(contentEncoding), nil
	case types.CompressionNone, "":
		return fromContentEncoding(contentEncoding), nil
	default:
		c, err := compression.Parse(string(alg))
		if err != nil {
			return "", fmt.Errorf("objectstore: %w", err)
		}
		return c, nil
	}
}

func fromContentEncoding(enc string) types.Compression {
	c, err := compression.Parse(enc)
	if err != nil || c == types.CompressionAuto {
		return types.CompressionNone
	}
	return c
}
