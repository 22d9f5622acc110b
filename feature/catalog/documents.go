package catalog

import (
	"context"
	"fmt"
	"sort"

	"gamedata-manager/core/storage"

	"github.com/minio/minio-go/v7"
)

// CheckDocuments returns the collection names whose documents are missing
// from the storage bucket. It is a cheap preflight; the Loader still
// reports precise failures when a document disappears between check and load.
func CheckDocuments(ctx context.Context, client storage.Client, bucket string) ([]string, error) {
	exists, err := client.BucketExists(ctx, bucket)
	if err != nil {
		return nil, fmt.Errorf("failed to check bucket existence: %w", err)
	}
	if !exists {
		return nil, fmt.Errorf("bucket %s does not exist", bucket)
	}

	var missing []string
	for collection, object := range Collections {
		opts := minio.ListObjectsOptions{
			Prefix:    object,
			Recursive: false,
			MaxKeys:   1,
		}

		found := false
		for obj := range client.ListObjects(ctx, bucket, opts) {
			if obj.Err == nil && obj.Key == object {
				found = true
			}
			break
		}

		if !found {
			missing = append(missing, collection)
		}
	}

	// Map iteration order is random; keep reports deterministic.
	sort.Strings(missing)

	return missing, nil
}
