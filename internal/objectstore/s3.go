package objectstore

import (
	"context"
	"fmt"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/s3"
)

// HeadObjectAPI is the slice of the S3 client the store uses.
type HeadObjectAPI interface {
	HeadObject(ctx context.Context, params *s3.HeadObjectInput, optFns ...func(*s3.Options)) (*s3.HeadObjectOutput, error)
}

// ObjectInfo is the subset of S3 object metadata that gets persisted.
// ContentType is empty when S3 reports none.
type ObjectInfo struct {
	Size         int64
	ContentType  string
	LastModified time.Time
}

// Store resolves stored-object metadata from S3.
type Store struct {
	client HeadObjectAPI
}

// New creates a Store on top of an S3 client.
func New(client HeadObjectAPI) *Store {
	return &Store{client: client}
}

// Head returns the metadata of the object at bucket/key. The key must
// already be decoded.
func (s *Store) Head(ctx context.Context, bucket, key string) (ObjectInfo, error) {
	out, err := s.client.HeadObject(ctx, &s3.HeadObjectInput{
		Bucket: aws.String(bucket),
		Key:    aws.String(key),
	})
	if err != nil {
		return ObjectInfo{}, fmt.Errorf("head object s3://%s/%s: %w", bucket, key, err)
	}

	info := ObjectInfo{
		Size:        aws.ToInt64(out.ContentLength),
		ContentType: aws.ToString(out.ContentType),
	}
	if out.LastModified != nil {
		info.LastModified = *out.LastModified
	}
	return info, nil
}
