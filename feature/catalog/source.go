package catalog

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"

	"gamedata-manager/core/storage"

	"github.com/minio/minio-go/v7"
	"gorm.io/gorm"
)

// Collection names the five logical game data collections. The names double
// as the "source collection" field of validation violations.
const (
	CollectionItems        = "items"
	CollectionBuildings    = "buildings"
	CollectionRecipes      = "recipes"
	CollectionRails        = "rails"
	CollectionCorporations = "corporations"
)

// Collections is the fixed resource map: logical collection name to the
// document object path relative to the data root.
var Collections = map[string]string{
	CollectionItems:        "gamedata/items.json",
	CollectionBuildings:    "gamedata/buildings.json",
	CollectionRecipes:      "gamedata/recipes.json",
	CollectionRails:        "gamedata/rails.json",
	CollectionCorporations: "gamedata/corporations.json",
}

// FailureKind classifies why a single resource could not be loaded.
type FailureKind string

const (
	// FailureTransport means the resource could not be retrieved at all.
	FailureTransport FailureKind = "transport"
	// FailureStatus means the resource responded with an error status.
	FailureStatus FailureKind = "status"
	// FailureParse means the resource body was not valid JSON of the
	// expected shape.
	FailureParse FailureKind = "parse"
)

// LoadError describes the failure of exactly one named resource.
type LoadError struct {
	Resource string
	Kind     FailureKind
	// Status is the response status code; only set for FailureStatus.
	Status int
	Err    error
}

func (e *LoadError) Error() string {
	switch e.Kind {
	case FailureStatus:
		return fmt.Sprintf("resource %s: bad status %d: %v", e.Resource, e.Status, e.Err)
	case FailureParse:
		return fmt.Sprintf("resource %s: malformed content: %v", e.Resource, e.Err)
	default:
		return fmt.Sprintf("resource %s: transport failure: %v", e.Resource, e.Err)
	}
}

func (e *LoadError) Unwrap() error { return e.Err }

// Source retrieves the raw body of one named collection document.
// Implementations translate their transport's errors into *LoadError.
type Source interface {
	Fetch(ctx context.Context, collection string) ([]byte, error)
}

// StorageSource reads the documents from an object storage bucket.
type StorageSource struct {
	client storage.Client
	bucket string
}

// NewStorageSource creates a Source backed by object storage.
func NewStorageSource(client storage.Client, bucket string) *StorageSource {
	return &StorageSource{client: client, bucket: bucket}
}

// Fetch retrieves and fully reads one collection document.
func (s *StorageSource) Fetch(ctx context.Context, collection string) ([]byte, error) {
	object, ok := Collections[collection]
	if !ok {
		return nil, &LoadError{Resource: collection, Kind: FailureTransport, Err: fmt.Errorf("unknown collection")}
	}

	rc, err := s.client.GetObject(ctx, s.bucket, object, minio.GetObjectOptions{})
	if err != nil {
		return nil, translateStorageErr(collection, err)
	}
	defer rc.Close()

	body, err := io.ReadAll(rc)
	if err != nil {
		// Minio surfaces missing objects on first read, not on GetObject.
		return nil, translateStorageErr(collection, err)
	}

	return body, nil
}

func translateStorageErr(collection string, err error) *LoadError {
	if resp := minio.ToErrorResponse(err); resp.StatusCode != 0 {
		return &LoadError{Resource: collection, Kind: FailureStatus, Status: resp.StatusCode, Err: err}
	}
	return &LoadError{Resource: collection, Kind: FailureTransport, Err: err}
}

// Document is one row of the gamedata_documents table, mirroring the
// bucket layout for deployments that ship catalogs inside the database.
type Document struct {
	Name string `gorm:"primaryKey;column:name"`
	Body []byte `gorm:"column:body"`
}

// TableName sets the documents table name.
func (Document) TableName() string { return "gamedata_documents" }

// DocumentColumns are the columns the database source requires.
var DocumentColumns = []string{"name", "body"}

// DatabaseSource reads the documents from the gamedata_documents table.
type DatabaseSource struct {
	db *gorm.DB
}

// NewDatabaseSource creates a Source backed by the game database.
func NewDatabaseSource(db *gorm.DB) *DatabaseSource {
	return &DatabaseSource{db: db}
}

// Fetch retrieves one collection document row by name.
func (s *DatabaseSource) Fetch(ctx context.Context, collection string) ([]byte, error) {
	if _, ok := Collections[collection]; !ok {
		return nil, &LoadError{Resource: collection, Kind: FailureTransport, Err: fmt.Errorf("unknown collection")}
	}

	var doc Document
	err := s.db.WithContext(ctx).First(&doc, "name = ?", collection).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, &LoadError{Resource: collection, Kind: FailureStatus, Status: http.StatusNotFound, Err: err}
	}
	if err != nil {
		return nil, &LoadError{Resource: collection, Kind: FailureTransport, Err: err}
	}

	return doc.Body, nil
}
