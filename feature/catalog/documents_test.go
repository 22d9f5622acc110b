package catalog

import (
	"context"
	"errors"
	"testing"

	"gamedata-manager/core/storage/mocks"

	"github.com/minio/minio-go/v7"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// objectStream builds a closed listing channel carrying the given keys.
func objectStream(keys ...string) <-chan minio.ObjectInfo {
	ch := make(chan minio.ObjectInfo, len(keys))
	for _, key := range keys {
		ch <- minio.ObjectInfo{Key: key}
	}
	close(ch)
	return ch
}

func matchPrefix(prefix string) interface{} {
	return mock.MatchedBy(func(opts minio.ListObjectsOptions) bool {
		return opts.Prefix == prefix
	})
}

func TestCheckDocuments_AllPresent(t *testing.T) {
	client := new(mocks.Client)
	client.On("BucketExists", mock.Anything, "game-assets").Return(true, nil)
	for _, object := range Collections {
		client.On("ListObjects", mock.Anything, "game-assets", matchPrefix(object)).
			Return(objectStream(object))
	}

	missing, err := CheckDocuments(context.Background(), client, "game-assets")

	require.NoError(t, err)
	assert.Empty(t, missing)
	client.AssertExpectations(t)
}

func TestCheckDocuments_SomeMissing(t *testing.T) {
	client := new(mocks.Client)
	client.On("BucketExists", mock.Anything, "game-assets").Return(true, nil)
	for collection, object := range Collections {
		if collection == CollectionRails || collection == CollectionItems {
			client.On("ListObjects", mock.Anything, "game-assets", matchPrefix(object)).
				Return(objectStream())
			continue
		}
		client.On("ListObjects", mock.Anything, "game-assets", matchPrefix(object)).
			Return(objectStream(object))
	}

	missing, err := CheckDocuments(context.Background(), client, "game-assets")

	require.NoError(t, err)
	// Sorted by collection name, not discovery order.
	assert.Equal(t, []string{CollectionItems, CollectionRails}, missing)
}

func TestCheckDocuments_BucketMissing(t *testing.T) {
	client := new(mocks.Client)
	client.On("BucketExists", mock.Anything, "game-assets").Return(false, nil)

	_, err := CheckDocuments(context.Background(), client, "game-assets")

	require.Error(t, err)
	assert.Contains(t, err.Error(), "does not exist")
}

func TestCheckDocuments_BucketCheckFailure(t *testing.T) {
	client := new(mocks.Client)
	client.On("BucketExists", mock.Anything, "game-assets").Return(false, errors.New("access denied"))

	_, err := CheckDocuments(context.Background(), client, "game-assets")

	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to check bucket existence")
}
