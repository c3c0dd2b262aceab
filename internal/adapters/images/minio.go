package images

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"

	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"

	"github.com/jsamuelsen11/portfolio-service/internal/platform/config"
	"github.com/jsamuelsen11/portfolio-service/internal/platform/resilience"
)

const codeNoSuchKey = "NoSuchKey"

// MinIOBackend stores images in an S3-compatible bucket. Every call goes
// through the executor so the object store gets retries, a circuit breaker,
// spans, and call metrics.
type MinIOBackend struct {
	client *minio.Client
	bucket string
	exec   *resilience.Executor
}

// NewMinIOBackend connects to the object store and creates the bucket when
// it does not exist yet.
func NewMinIOBackend(ctx context.Context, cfg *config.MinIOConfig, exec *resilience.Executor) (*MinIOBackend, error) {
	client, err := minio.New(cfg.Endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(cfg.AccessKey, cfg.SecretKey, ""),
		Secure: cfg.UseSSL,
		Region: cfg.Region,
	})
	if err != nil {
		return nil, fmt.Errorf("creating minio client: %w", err)
	}

	b := &MinIOBackend{client: client, bucket: cfg.Bucket, exec: exec}
	if err := b.ensureBucket(ctx, cfg.Region); err != nil {
		return nil, err
	}
	return b, nil
}

func (b *MinIOBackend) ensureBucket(ctx context.Context, region string) error {
	return b.exec.Do(ctx, "ensure_bucket", func(ctx context.Context) error {
		exists, err := b.client.BucketExists(ctx, b.bucket)
		if err != nil {
			return classify(err)
		}
		if exists {
			return nil
		}
		if err := b.client.MakeBucket(ctx, b.bucket, minio.MakeBucketOptions{Region: region}); err != nil {
			return classify(err)
		}
		return nil
	})
}

// Put uploads r as key. The content is buffered so a retried attempt can
// send it again.
func (b *MinIOBackend) Put(ctx context.Context, key string, r io.Reader, _ int64, contentType string) error {
	data, err := io.ReadAll(r)
	if err != nil {
		return fmt.Errorf("reading %s: %w", key, err)
	}

	return b.exec.Do(ctx, "put_object", func(ctx context.Context) error {
		_, err := b.client.PutObject(ctx, b.bucket, key, bytes.NewReader(data), int64(len(data)),
			minio.PutObjectOptions{ContentType: contentType})
		return classify(err)
	})
}

// Delete removes key from the bucket.
func (b *MinIOBackend) Delete(ctx context.Context, key string) error {
	return b.exec.Do(ctx, "remove_object", func(ctx context.Context) error {
		return classify(b.client.RemoveObject(ctx, b.bucket, key, minio.RemoveObjectOptions{}))
	})
}

// Exists reports whether key is present in the bucket.
func (b *MinIOBackend) Exists(ctx context.Context, key string) (bool, error) {
	var found bool
	err := b.exec.Do(ctx, "stat_object", func(ctx context.Context) error {
		_, err := b.client.StatObject(ctx, b.bucket, key, minio.StatObjectOptions{})
		if isNotFound(err) {
			found = false
			return nil
		}
		if err != nil {
			return classify(err)
		}
		found = true
		return nil
	})
	return found, err
}

// List returns every key under prefix.
func (b *MinIOBackend) List(ctx context.Context, prefix string) ([]string, error) {
	var keys []string
	err := b.exec.Do(ctx, "list_objects", func(ctx context.Context) error {
		keys = keys[:0]
		for obj := range b.client.ListObjects(ctx, b.bucket, minio.ListObjectsOptions{
			Prefix:    prefix,
			Recursive: true,
		}) {
			if obj.Err != nil {
				return classify(obj.Err)
			}
			keys = append(keys, obj.Key)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return keys, nil
}

// Check verifies the bucket is reachable.
func (b *MinIOBackend) Check(ctx context.Context) error {
	exists, err := b.client.BucketExists(ctx, b.bucket)
	if err != nil {
		return fmt.Errorf("object store: %w", err)
	}
	if !exists {
		return fmt.Errorf("object store: bucket %q missing", b.bucket)
	}
	return nil
}

func isNotFound(err error) bool {
	if err == nil {
		return false
	}
	return minio.ToErrorResponse(err).Code == codeNoSuchKey
}

// classify marks client errors (4xx) as permanent so they are not retried.
func classify(err error) error {
	if err == nil {
		return nil
	}
	status := minio.ToErrorResponse(err).StatusCode
	if status >= http.StatusBadRequest && status < http.StatusInternalServerError &&
		status != http.StatusTooManyRequests && status != http.StatusRequestTimeout {
		return resilience.Permanent(err)
	}
	return err
}
