package recorder

import (
	"context"
	"fmt"
	"log"
	"net/url"
	"time"

	"github.com/aws/aws-lambda-go/events"

	"github.com/objectops/s3-metadata-recorder/internal/model"
	"github.com/objectops/s3-metadata-recorder/internal/objectstore"
)

// ObjectHeader resolves stored-object metadata by bucket and decoded key.
type ObjectHeader interface {
	Head(ctx context.Context, bucket, key string) (objectstore.ObjectInfo, error)
}

// MetadataWriter upserts a metadata row keyed by FileName.
type MetadataWriter interface {
	Put(ctx context.Context, meta model.FileMetadata) error
}

// Recorder turns S3 object-created notifications into FileMetadata rows.
type Recorder struct {
	objects ObjectHeader
	table   MetadataWriter
	now     func() time.Time
}

// New creates a Recorder backed by the given object store and table.
func New(objects ObjectHeader, table MetadataWriter) *Recorder {
	return &Recorder{
		objects: objects,
		table:   table,
		now:     time.Now,
	}
}

// Handle processes one notification batch. Records are handled strictly in
// the order received, one at a time; the first failure aborts the remainder
// of the batch and is returned to the runtime so its redrive policy can
// re-attempt the whole batch.
func (r *Recorder) Handle(ctx context.Context, event events.S3Event) (model.Response, error) {
	for _, record := range event.Records {
		if err := r.process(ctx, record); err != nil {
			log.Printf("ERROR: %v", err)
			return model.Response{}, err
		}
	}

	return model.Response{StatusCode: 200, Body: model.SuccessBody}, nil
}

func (r *Recorder) process(ctx context.Context, record events.S3EventRecord) error {
	bucket := record.S3.Bucket.Name
	if bucket == "" {
		return fmt.Errorf("notification record has no bucket name (key %q)", record.S3.Object.Key)
	}

	key, err := decodeKey(record.S3.Object.Key)
	if err != nil {
		return err
	}

	info, err := r.objects.Head(ctx, bucket, key)
	if err != nil {
		return err
	}

	contentType := info.ContentType
	if contentType == "" {
		contentType = model.DefaultContentType
	}

	// The row is fully built before the write; nothing partial is stored.
	meta := model.FileMetadata{
		FileName:     key,
		BucketName:   bucket,
		FileSize:     info.Size,
		ContentType:  contentType,
		LastModified: info.LastModified.UTC().Format(time.RFC3339Nano),
		UploadedAt:   r.now().UTC().Format(time.RFC3339Nano),
	}

	if err := r.table.Put(ctx, meta); err != nil {
		return err
	}

	log.Printf("INFO: metadata stored for %s", key)
	return nil
}

// decodeKey reverses the encoding S3 applies to object keys in notification
// payloads: "+" stands for a space, the rest is percent-encoded.
func decodeKey(raw string) (string, error) {
	if raw == "" {
		return "", fmt.Errorf("notification record has an empty object key")
	}

	key, err := url.QueryUnescape(raw)
	if err != nil {
		return "", fmt.Errorf("decode object key %q: %w", raw, err)
	}
	return key, nil
}
