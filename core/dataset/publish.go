package dataset

import (
	"bytes"
	"context"
	"fmt"

	"countries-api/core/storage"

	"github.com/minio/minio-go/v7"
)

// Publish validates data as a dataset and uploads it to bucket/object,
// creating the bucket first when needed. Invalid data is never uploaded.
// It returns the number of records in the uploaded dataset.
func Publish(ctx context.Context, client storage.Client, bucket, region, object string, data []byte) (int, error) {
	records, err := Decode(data)
	if err != nil {
		return 0, err
	}

	if err := storage.EnsureBucket(ctx, client, bucket, region); err != nil {
		return 0, err
	}

	_, err = client.PutObject(ctx, bucket, object, bytes.NewReader(data), int64(len(data)), minio.PutObjectOptions{
		ContentType: "application/json",
	})
	if err != nil {
		return 0, fmt.Errorf("failed to upload %s to bucket %s: %w", object, bucket, err)
	}
	return len(records), nil
}
