package objectstore_test

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"sync"
	"testing"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	s3types "github.com/aws/aws-sdk-go-v2/service/s3/types"
	"github.com/aws/smithy-go"
	smithyhttp "github.com/aws/smithy-go/transport/http"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/joeydtaylor/arraysaver/pkg/internal/codec"
	"github.com/joeydtaylor/arraysaver/pkg/internal/objectstore"
	"github.com/joeydtaylor/arraysaver/pkg/internal/types"
)

type storedObject struct {
	body []byte
	put  s3.PutObjectInput
}

// fakeS3 keeps objects in memory. putErrs are returned by successive
// PutObject calls before any call succeeds.
type fakeS3 struct {
	mu       sync.Mutex
	objects  map[string]storedObject
	putErrs  []error
	putCalls int
}

func newFakeS3() *fakeS3 {
	return &fakeS3{objects: make(map[string]storedObject)}
}

func (f *fakeS3) PutObject(_ context.Context, in *s3.PutObjectInput, _ ...func(*s3.Options)) (*s3.PutObjectOutput, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.putCalls++
	if len(f.putErrs) > 0 {
		err := f.putErrs[0]
		f.putErrs = f.putErrs[1:]
		return nil, err
	}
	body, err := io.ReadAll(in.Body)
	if err != nil {
		return nil, err
	}
	f.objects[aws.ToString(in.Bucket)+"/"+aws.ToString(in.Key)] = storedObject{body: body, put: *in}
	return &s3.PutObjectOutput{}, nil
}

func (f *fakeS3) GetObject(_ context.Context, in *s3.GetObjectInput, _ ...func(*s3.Options)) (*s3.GetObjectOutput, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	obj, ok := f.objects[aws.ToString(in.Bucket)+"/"+aws.ToString(in.Key)]
	if !ok {
		return nil, &s3types.NoSuchKey{Message: aws.String("missing")}
	}
	return &s3.GetObjectOutput{
		Body:            io.NopCloser(bytes.NewReader(obj.body)),
		ContentEncoding: obj.put.ContentEncoding,
		ContentType:     obj.put.ContentType,
	}, nil
}

func (f *fakeS3) object(t *testing.T, key string) storedObject {
	t.Helper()
	f.mu.Lock()
	defer f.mu.Unlock()
	obj, ok := f.objects["bucket/"+key]
	require.True(t, ok, "object %s not stored", key)
	return obj
}

func newStore[T types.Numeric](cli types.S3API, cfg types.S3ObjectConfig) *objectstore.Store[T] {
	return objectstore.NewStore[T](types.S3ClientDeps{Client: cli, Bucket: "bucket"}, cfg, codec.WithQuiet())
}

func TestStoreSaveAndLoad(t *testing.T) {
	ctx := context.Background()
	fake := newFakeS3()
	store := newStore[float64](fake, types.S3ObjectConfig{Prefix: "/exports/", SSEMode: "aws:kms", KMSKeyID: "key-1"})

	m := types.Matrix[float64]{{1.5, 2}, {3, 4.25}}
	require.NoError(t, store.Save(ctx, "m.csv", m, 2, 2))

	obj := fake.object(t, "exports/m.csv")
	assert.Equal(t, "1,5;2\n3;4,25\n", string(obj.body))
	assert.Equal(t, "text/csv", aws.ToString(obj.put.ContentType))
	assert.Nil(t, obj.put.ContentEncoding)
	assert.Equal(t, s3types.ServerSideEncryptionAwsKms, obj.put.ServerSideEncryption)
	assert.Equal(t, "key-1", aws.ToString(obj.put.SSEKMSKeyId))

	got, row, col, err := store.Load(ctx, "m.csv")
	require.NoError(t, err)
	assert.Equal(t, 2, row)
	assert.Equal(t, 2, col)
	assert.Equal(t, m, got)
}

func TestStoreSaveVector(t *testing.T) {
	fake := newFakeS3()
	store := newStore[int](fake, types.S3ObjectConfig{SSEMode: "AES256"})

	require.NoError(t, store.SaveVector(context.Background(), "v.csv", types.Vector[int]{4, 5, 6}, 3))

	obj := fake.object(t, "v.csv")
	assert.Equal(t, "4;5;6\n", string(obj.body))
	assert.Equal(t, s3types.ServerSideEncryptionAes256, obj.put.ServerSideEncryption)
}

func TestStoreCompressedObjects(t *testing.T) {
	ctx := context.Background()
	fake := newFakeS3()
	store := newStore[int](fake, types.S3ObjectConfig{})
	m := types.Matrix[int]{{1, 2, 3}}

	require.NoError(t, store.Save(ctx, "m.csv.zst", m, 1, 3, codec.WithCompression(types.CompressionAuto)))
	obj := fake.object(t, "m.csv.zst")
	assert.Equal(t, "zstd", aws.ToString(obj.put.ContentEncoding))
	assert.Equal(t, "application/octet-stream", aws.ToString(obj.put.ContentType))
	assert.NotEqual(t, "1;2;3\n", string(obj.body))

	// The Content-Encoding header is enough to read it back.
	got, _, _, err := store.Load(ctx, "m.csv.zst")
	require.NoError(t, err)
	assert.Equal(t, m, got)

	require.NoError(t, store.Save(ctx, "plain-name", m, 1, 3, codec.WithCompression(types.CompressionGzip)))
	got, _, _, err = store.Load(ctx, "plain-name", codec.WithCompression(types.CompressionAuto))
	require.NoError(t, err)
	assert.Equal(t, m, got)
}

func TestStoreNotConfigured(t *testing.T) {
	ctx := context.Background()

	noClient := objectstore.NewStore[int](types.S3ClientDeps{Bucket: "bucket"}, types.S3ObjectConfig{})
	assert.ErrorIs(t, noClient.Save(ctx, "k", types.Matrix[int]{{1}}, 1, 1), objectstore.ErrNotConfigured)

	noBucket := objectstore.NewStore[int](types.S3ClientDeps{Client: newFakeS3()}, types.S3ObjectConfig{})
	_, _, _, err := noBucket.Load(ctx, "k")
	assert.ErrorIs(t, err, objectstore.ErrNotConfigured)
}

func TestStoreRejectsBadCallsBeforeUpload(t *testing.T) {
	ctx := context.Background()
	fake := newFakeS3()
	store := newStore[int](fake, types.S3ObjectConfig{})

	assert.ErrorIs(t, store.Save(ctx, "", types.Matrix[int]{{1}}, 1, 1), objectstore.ErrEmptyKey)
	assert.ErrorIs(t, store.Save(ctx, "k", types.Matrix[int]{{1}}, 2, 1), codec.ErrShapeMismatch)
	assert.ErrorIs(t, store.SaveVector(ctx, "k", types.Vector[int]{1}, -1), codec.ErrBadShape)
	assert.ErrorIs(t, store.Save(ctx, "k", types.Matrix[int]{{1}}, 1, 1, codec.WithDelimiter('\r')), codec.ErrInvalidDelimiter)
	assert.Zero(t, fake.putCalls)
}

type timeoutError struct{}

func (timeoutError) Error() string   { return "i/o timeout" }
func (timeoutError) Timeout() bool   { return true }
func (timeoutError) Temporary() bool { return true }

func statusError(code int) error {
	return &smithyhttp.ResponseError{
		Response: &smithyhttp.Response{Response: &http.Response{StatusCode: code}},
		Err:      errors.New(http.StatusText(code)),
	}
}

func TestStoreRetriesTransientPutErrors(t *testing.T) {
	cases := map[string]error{
		"slow down":   &smithy.GenericAPIError{Code: "SlowDown", Message: "please reduce your request rate"},
		"throttling":  fmt.Errorf("put: %w", &smithy.GenericAPIError{Code: "ThrottlingException"}),
		"status 503":  statusError(http.StatusServiceUnavailable),
		"status 429":  statusError(http.StatusTooManyRequests),
		"net timeout": timeoutError{},
	}
	for name, transient := range cases {
		t.Run(name, func(t *testing.T) {
			fake := newFakeS3()
			fake.putErrs = []error{transient}
			store := newStore[int](fake, types.S3ObjectConfig{})

			require.NoError(t, store.Save(context.Background(), "k", types.Matrix[int]{{1}}, 1, 1))
			assert.Equal(t, 2, fake.putCalls)
			assert.Equal(t, "1\n", string(fake.object(t, "k").body))
		})
	}
}

func TestStoreDoesNotRetryOnMessageText(t *testing.T) {
	cases := map[string]error{
		"digits in message": errors.New("AccessDenied: report-503.csv"),
		"plain text":        errors.New("SlowDown: please reduce your request rate"),
		"status 403":        statusError(http.StatusForbidden),
		"other api code":    &smithy.GenericAPIError{Code: "NoSuchBucket", Message: "code 500"},
	}
	for name, permanent := range cases {
		t.Run(name, func(t *testing.T) {
			fake := newFakeS3()
			fake.putErrs = []error{permanent}
			store := newStore[int](fake, types.S3ObjectConfig{})

			err := store.Save(context.Background(), "k", types.Matrix[int]{{1}}, 1, 1)
			require.Error(t, err)
			assert.ErrorIs(t, err, permanent)
			assert.Equal(t, 1, fake.putCalls)
		})
	}
}

func TestStoreReportsPermanentPutErrors(t *testing.T) {
	denied := errors.New("AccessDenied")
	fake := newFakeS3()
	fake.putErrs = []error{denied}
	store := newStore[int](fake, types.S3ObjectConfig{})

	err := store.Save(context.Background(), "k", types.Matrix[int]{{1}}, 1, 1)
	require.Error(t, err)
	assert.ErrorIs(t, err, denied)
	assert.Equal(t, 1, fake.putCalls)

	var objErr *objectstore.ObjectError
	require.ErrorAs(t, err, &objErr)
	assert.Equal(t, "put", objErr.Op)
	assert.Equal(t, "k", objErr.Key)
}

func TestStoreLoadErrors(t *testing.T) {
	ctx := context.Background()
	fake := newFakeS3()
	store := newStore[int](fake, types.S3ObjectConfig{})

	_, _, _, err := store.Load(ctx, "missing")
	var noKey *s3types.NoSuchKey
	assert.ErrorAs(t, err, &noKey)

	fake.objects["bucket/bad"] = storedObject{body: []byte("1;x\n")}
	m, _, _, err := store.Load(ctx, "bad")
	require.NoError(t, err)
	assert.Equal(t, types.Matrix[int]{{1, 0}}, m)

	_, _, _, err = store.Load(ctx, "bad", codec.WithStrictParsing())
	assert.ErrorIs(t, err, codec.ErrParse)
}

func TestStoreKey(t *testing.T) {
	store := newStore[int](newFakeS3(), types.S3ObjectConfig{Prefix: "a/b"})
	assert.Equal(t, "a/b/m.csv", store.Key("/m.csv"))
	assert.Equal(t, "bucket", store.Bucket())

	bare := newStore[int](newFakeS3(), types.S3ObjectConfig{})
	assert.Equal(t, "m.csv", bare.Key("m.csv"))
}

func TestNewS3Client(t *testing.T) {
	ctx := context.Background()

	cli, err := objectstore.NewS3Client(ctx, objectstore.S3Config{
		Region:         "us-east-1",
		Endpoint:       "http://localhost:4566",
		ForcePathStyle: true,
		AccessKey:      "test",
		SecretKey:      "test",
	})
	require.NoError(t, err)
	opts := cli.Options()
	assert.True(t, opts.UsePathStyle)
	assert.Equal(t, "http://localhost:4566", aws.ToString(opts.BaseEndpoint))
	assert.Equal(t, "us-east-1", opts.Region)

	creds, err := opts.Credentials.Retrieve(ctx)
	require.NoError(t, err)
	assert.Equal(t, "test", creds.AccessKeyID)

	_, err = objectstore.NewS3ClientAssumeRole(ctx, objectstore.S3Config{Region: "us-east-1"})
	assert.Error(t, err)

	roleCli, err := objectstore.NewS3ClientAssumeRole(ctx, objectstore.S3Config{
		Region:    "us-east-1",
		AccessKey: "test",
		SecretKey: "test",
		RoleARN:   "arn:aws:iam::000000000000:role/demo",
	})
	require.NoError(t, err)
	assert.NotNil(t, roleCli)
}
