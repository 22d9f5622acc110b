package catalog

import (
	"context"
	"encoding/json"
	"sync"

	"gamedata-manager/feature/catalog/models"
)

// fetchCollection retrieves one document and decodes it as an array of T.
// A body that is not a JSON array of the expected record shape is a
// FailureParse for that resource.
func fetchCollection[T any](ctx context.Context, src Source, collection string) ([]T, error) {
	body, err := src.Fetch(ctx, collection)
	if err != nil {
		return nil, err
	}

	var records []T
	if err := json.Unmarshal(body, &records); err != nil {
		return nil, &LoadError{Resource: collection, Kind: FailureParse, Err: err}
	}

	// Empty documents are valid; callers always get a non-nil slice.
	if records == nil {
		records = []T{}
	}

	return records, nil
}

// Load fetches all five collections concurrently and returns the parsed
// snapshot, or the failure of the first collection (in fixed collection
// order) that could not be loaded. A partial snapshot is never returned.
func Load(ctx context.Context, src Source) (*models.RawData, error) {
	var (
		items        []models.Item
		buildings    []models.Building
		recipes      []models.Recipe
		rails        []models.Rail
		corporations []models.Corporation

		itemsErr        error
		buildingsErr    error
		recipesErr      error
		railsErr        error
		corporationsErr error

		wg sync.WaitGroup
	)

	wg.Add(5)

	go func() {
		defer wg.Done()
		items, itemsErr = fetchCollection[models.Item](ctx, src, CollectionItems)
	}()

	go func() {
		defer wg.Done()
		buildings, buildingsErr = fetchCollection[models.Building](ctx, src, CollectionBuildings)
	}()

	go func() {
		defer wg.Done()
		recipes, recipesErr = fetchCollection[models.Recipe](ctx, src, CollectionRecipes)
	}()

	go func() {
		defer wg.Done()
		rails, railsErr = fetchCollection[models.Rail](ctx, src, CollectionRails)
	}()

	go func() {
		defer wg.Done()
		corporations, corporationsErr = fetchCollection[models.Corporation](ctx, src, CollectionCorporations)
	}()

	wg.Wait()

	for _, err := range []error{itemsErr, buildingsErr, recipesErr, railsErr, corporationsErr} {
		if err != nil {
			return nil, err
		}
	}

	return &models.RawData{
		Items:        items,
		Buildings:    buildings,
		Recipes:      recipes,
		Rails:        rails,
		Corporations: corporations,
	}, nil
}
