package storage_test

import (
	"context"
	"errors"
	"io"
	"strings"
	"testing"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/aws/aws-sdk-go-v2/service/s3/types"
	"github.com/aws/smithy-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/invoicekit/pkg/storage"
)

type MockS3Client struct {
	mock.Mock
}

func (m *MockS3Client) PutObject(ctx context.Context, params *s3.PutObjectInput, optFns ...func(*s3.Options)) (*s3.PutObjectOutput, error) {
	args := m.Called(ctx, params)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*s3.PutObjectOutput), args.Error(1)
}

func (m *MockS3Client) GetObject(ctx context.Context, params *s3.GetObjectInput, optFns ...func(*s3.Options)) (*s3.GetObjectOutput, error) {
	args := m.Called(ctx, params)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*s3.GetObjectOutput), args.Error(1)
}

func (m *MockS3Client) HeadObject(ctx context.Context, params *s3.HeadObjectInput, optFns ...func(*s3.Options)) (*s3.HeadObjectOutput, error) {
	args := m.Called(ctx, params)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*s3.HeadObjectOutput), args.Error(1)
}

func (m *MockS3Client) DeleteObject(ctx context.Context, params *s3.DeleteObjectInput, optFns ...func(*s3.Options)) (*s3.DeleteObjectOutput, error) {
	args := m.Called(ctx, params)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*s3.DeleteObjectOutput), args.Error(1)
}

func (m *MockS3Client) ListObjectsV2(ctx context.Context, params *s3.ListObjectsV2Input, optFns ...func(*s3.Options)) (*s3.ListObjectsV2Output, error) {
	args := m.Called(ctx, params)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*s3.ListObjectsV2Output), args.Error(1)
}

func newS3(t *testing.T, client *MockS3Client, cfg storage.S3Config) *storage.S3Storage {
	t.Helper()
	if cfg.Bucket == "" {
		cfg.Bucket = "docs"
	}
	if cfg.Region == "" {
		cfg.Region = "eu-north-1"
	}
	s, err := storage.NewS3Storage(context.Background(), cfg, storage.WithS3Client(client))
	require.NoError(t, err)
	return s
}

func TestNewS3Storage(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		cfg     storage.S3Config
		wantURL string
		wantErr error
	}{
		{
			name:    "aws default url",
			cfg:     storage.S3Config{Bucket: "docs", Region: "eu-north-1"},
			wantURL: "https://docs.s3.eu-north-1.amazonaws.com/a.html",
		},
		{
			name:    "custom endpoint",
			cfg:     storage.S3Config{Bucket: "docs", Region: "us-east-1", Endpoint: "http://minio:9000/"},
			wantURL: "http://minio:9000/docs/a.html",
		},
		{
			name:    "custom base url",
			cfg:     storage.S3Config{Bucket: "docs", Region: "us-east-1", BaseURL: "https://cdn.example.com"},
			wantURL: "https://cdn.example.com/a.html",
		},
		{name: "missing bucket", cfg: storage.S3Config{Region: "us-east-1"}, wantErr: storage.ErrInvalidConfig},
		{name: "missing region", cfg: storage.S3Config{Bucket: "docs"}, wantErr: storage.ErrInvalidConfig},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			s, err := storage.NewS3Storage(context.Background(), tt.cfg, storage.WithS3Client(&MockS3Client{}))
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantURL, s.URL("/a.html"))
		})
	}
}

func TestS3Storage_Put(t *testing.T) {
	t.Parallel()

	t.Run("uploads with content type", func(t *testing.T) {
		t.Parallel()

		client := &MockS3Client{}
		client.On("PutObject", mock.Anything, mock.MatchedBy(func(in *s3.PutObjectInput) bool {
			return aws.ToString(in.Bucket) == "docs" &&
				aws.ToString(in.Key) == "invoices/INV-1.html" &&
				aws.ToString(in.ContentType) == "text/html" &&
				aws.ToInt64(in.ContentLength) == 5
		})).Return(&s3.PutObjectOutput{}, nil).Once()

		obj, err := newS3(t, client, storage.S3Config{}).Put(context.Background(), "/invoices/INV-1.html", []byte("hello"), "text/html")
		require.NoError(t, err)
		assert.Equal(t, "invoices/INV-1.html", obj.Key)
		assert.Equal(t, "https://docs.s3.eu-north-1.amazonaws.com/invoices/INV-1.html", obj.URL)
		client.AssertExpectations(t)
	})

	t.Run("rejects traversal", func(t *testing.T) {
		t.Parallel()

		client := &MockS3Client{}
		_, err := newS3(t, client, storage.S3Config{}).Put(context.Background(), "../x", []byte("x"), "")
		assert.ErrorIs(t, err, storage.ErrInvalidKey)
		client.AssertNotCalled(t, "PutObject", mock.Anything, mock.Anything)
	})

	t.Run("access denied", func(t *testing.T) {
		t.Parallel()

		client := &MockS3Client{}
		client.On("PutObject", mock.Anything, mock.Anything).
			Return(nil, &smithy.GenericAPIError{Code: "AccessDenied", Message: "Access Denied"}).Once()

		_, err := newS3(t, client, storage.S3Config{}).Put(context.Background(), "a.html", []byte("x"), "")
		assert.ErrorIs(t, err, storage.ErrAccessDenied)
	})

	t.Run("unclassified error wraps operation", func(t *testing.T) {
		t.Parallel()

		client := &MockS3Client{}
		client.On("PutObject", mock.Anything, mock.Anything).Return(nil, errors.New("boom")).Once()

		_, err := newS3(t, client, storage.S3Config{}).Put(context.Background(), "a.html", []byte("x"), "")
		assert.ErrorIs(t, err, storage.ErrFailedToWrite)
	})

	t.Run("timeout", func(t *testing.T) {
		t.Parallel()

		client := &MockS3Client{}
		client.On("PutObject", mock.Anything, mock.Anything).Return(nil, context.DeadlineExceeded).Once()

		_, err := newS3(t, client, storage.S3Config{}).Put(context.Background(), "a.html", []byte("x"), "")
		assert.ErrorIs(t, err, storage.ErrOperationTimeout)
	})
}

func TestS3Storage_Get(t *testing.T) {
	t.Parallel()

	t.Run("reads body", func(t *testing.T) {
		t.Parallel()

		client := &MockS3Client{}
		client.On("GetObject", mock.Anything, mock.MatchedBy(func(in *s3.GetObjectInput) bool {
			return aws.ToString(in.Key) == "a.html"
		})).Return(&s3.GetObjectOutput{Body: io.NopCloser(strings.NewReader("<p>x</p>"))}, nil).Once()

		data, err := newS3(t, client, storage.S3Config{}).Get(context.Background(), "a.html")
		require.NoError(t, err)
		assert.Equal(t, "<p>x</p>", string(data))
	})

	t.Run("missing key", func(t *testing.T) {
		t.Parallel()

		client := &MockS3Client{}
		client.On("GetObject", mock.Anything, mock.Anything).
			Return(nil, &types.NoSuchKey{Message: aws.String("no such key")}).Once()

		_, err := newS3(t, client, storage.S3Config{}).Get(context.Background(), "a.html")
		assert.ErrorIs(t, err, storage.ErrObjectNotFound)
	})

	t.Run("missing bucket", func(t *testing.T) {
		t.Parallel()

		client := &MockS3Client{}
		client.On("GetObject", mock.Anything, mock.Anything).
			Return(nil, &types.NoSuchBucket{Message: aws.String("no such bucket")}).Once()

		_, err := newS3(t, client, storage.S3Config{}).Get(context.Background(), "a.html")
		assert.ErrorIs(t, err, storage.ErrBucketNotFound)
	})
}

func TestS3Storage_DeleteExists(t *testing.T) {
	t.Parallel()

	t.Run("deletes existing", func(t *testing.T) {
		t.Parallel()

		client := &MockS3Client{}
		client.On("HeadObject", mock.Anything, mock.Anything).Return(&s3.HeadObjectOutput{}, nil).Twice()
		client.On("DeleteObject", mock.Anything, mock.MatchedBy(func(in *s3.DeleteObjectInput) bool {
			return aws.ToString(in.Key) == "a.html"
		})).Return(&s3.DeleteObjectOutput{}, nil).Once()

		s := newS3(t, client, storage.S3Config{})
		assert.True(t, s.Exists(context.Background(), "a.html"))
		require.NoError(t, s.Delete(context.Background(), "a.html"))
		client.AssertExpectations(t)
	})

	t.Run("not found", func(t *testing.T) {
		t.Parallel()

		client := &MockS3Client{}
		client.On("HeadObject", mock.Anything, mock.Anything).Return(nil, &types.NotFound{}).Twice()

		s := newS3(t, client, storage.S3Config{})
		assert.False(t, s.Exists(context.Background(), "a.html"))
		assert.ErrorIs(t, s.Delete(context.Background(), "a.html"), storage.ErrObjectNotFound)
		client.AssertNotCalled(t, "DeleteObject", mock.Anything, mock.Anything)
	})
}

func TestS3Storage_List(t *testing.T) {
	t.Parallel()

	client := &MockS3Client{}
	client.On("ListObjectsV2", mock.Anything, mock.MatchedBy(func(in *s3.ListObjectsV2Input) bool {
		return aws.ToString(in.Prefix) == "invoices/" && aws.ToString(in.Delimiter) == "/"
	})).Return(&s3.ListObjectsV2Output{
		CommonPrefixes: []types.CommonPrefix{{Prefix: aws.String("invoices/2024/")}},
		Contents: []types.Object{
			{Key: aws.String("invoices/"), Size: aws.Int64(0)},
			{Key: aws.String("invoices/a.html"), Size: aws.Int64(42)},
		},
	}, nil).Once()

	entries, err := newS3(t, client, storage.S3Config{}).List(context.Background(), "invoices")
	require.NoError(t, err)
	assert.Equal(t, []storage.Entry{
		{Name: "2024", Key: "invoices/2024/", IsDir: true},
		{Name: "a.html", Key: "invoices/a.html", Size: 42},
	}, entries)
}
