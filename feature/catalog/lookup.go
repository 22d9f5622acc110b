package catalog

import (
	"sort"

	"gamedata-manager/feature/catalog/models"
)

// Lookup is the stateless read facade over the store's compiled dataset.
// Every method fails with ErrNotLoaded until a load has succeeded. By-id
// methods return nil (and no error) for an unknown id; grouped methods
// return an empty, non-nil slice for an absent key. Returned slices are
// fresh copies, so callers can never corrupt the shared indices by
// mutating a result.
type Lookup struct {
	store *Store
}

// NewLookup creates a lookup facade over the given store.
func NewLookup(store *Store) *Lookup {
	return &Lookup{store: store}
}

// Item returns the item with the given id, or nil when unknown.
func (l *Lookup) Item(id string) (*models.Item, error) {
	ds, err := l.store.Dataset()
	if err != nil {
		return nil, err
	}
	if item, ok := ds.Items[id]; ok {
		return &item, nil
	}
	return nil, nil
}

// Items returns all items in catalog order.
func (l *Lookup) Items() ([]models.Item, error) {
	ds, err := l.store.Dataset()
	if err != nil {
		return nil, err
	}
	items := make([]models.Item, 0, len(ds.itemOrder))
	for _, id := range ds.itemOrder {
		items = append(items, ds.Items[id])
	}
	return items, nil
}

// ItemsByCategory returns the items of one category in catalog order.
func (l *Lookup) ItemsByCategory(category models.ItemCategory) ([]models.Item, error) {
	ds, err := l.store.Dataset()
	if err != nil {
		return nil, err
	}
	return copyItems(ds.ItemsByCategory[category]), nil
}

// ItemsByTier returns the items of one tier in catalog order.
func (l *Lookup) ItemsByTier(tier int) ([]models.Item, error) {
	ds, err := l.store.Dataset()
	if err != nil {
		return nil, err
	}
	return copyItems(ds.ItemsByTier[tier]), nil
}

// Building returns the building with the given id, or nil when unknown.
func (l *Lookup) Building(id string) (*models.Building, error) {
	ds, err := l.store.Dataset()
	if err != nil {
		return nil, err
	}
	if building, ok := ds.Buildings[id]; ok {
		return &building, nil
	}
	return nil, nil
}

// Buildings returns all buildings in catalog order.
func (l *Lookup) Buildings() ([]models.Building, error) {
	ds, err := l.store.Dataset()
	if err != nil {
		return nil, err
	}
	buildings := make([]models.Building, 0, len(ds.buildingOrder))
	for _, id := range ds.buildingOrder {
		buildings = append(buildings, ds.Buildings[id])
	}
	return buildings, nil
}

// BuildingsByCategory returns the buildings of one category in catalog order.
func (l *Lookup) BuildingsByCategory(category models.BuildingCategory) ([]models.Building, error) {
	ds, err := l.store.Dataset()
	if err != nil {
		return nil, err
	}
	return copyBuildings(ds.BuildingsByCategory[category]), nil
}

// BuildingsByCorporation returns the buildings whose unlock requirement
// names the given corporation. Buildings without an unlock requirement
// never appear here.
func (l *Lookup) BuildingsByCorporation(corporationID string) ([]models.Building, error) {
	ds, err := l.store.Dataset()
	if err != nil {
		return nil, err
	}
	return copyBuildings(ds.BuildingsByCorporation[corporationID]), nil
}

// Recipe returns the recipe with the given id, or nil when unknown.
func (l *Lookup) Recipe(id string) (*models.Recipe, error) {
	ds, err := l.store.Dataset()
	if err != nil {
		return nil, err
	}
	if recipe, ok := ds.Recipes[id]; ok {
		return &recipe, nil
	}
	return nil, nil
}

// Recipes returns all recipes in catalog order.
func (l *Lookup) Recipes() ([]models.Recipe, error) {
	ds, err := l.store.Dataset()
	if err != nil {
		return nil, err
	}
	recipes := make([]models.Recipe, 0, len(ds.recipeOrder))
	for _, id := range ds.recipeOrder {
		recipes = append(recipes, ds.Recipes[id])
	}
	return recipes, nil
}

// RecipesByBuilding returns the recipes run by one building in catalog order.
func (l *Lookup) RecipesByBuilding(buildingID string) ([]models.Recipe, error) {
	ds, err := l.store.Dataset()
	if err != nil {
		return nil, err
	}
	return copyRecipes(ds.RecipesByBuilding[buildingID]), nil
}

// RecipesByOutput returns the recipes producing one item in catalog order.
func (l *Lookup) RecipesByOutput(itemID string) ([]models.Recipe, error) {
	ds, err := l.store.Dataset()
	if err != nil {
		return nil, err
	}
	return copyRecipes(ds.RecipesByOutput[itemID]), nil
}

// RecipesByInput returns the recipes consuming one item in catalog order.
func (l *Lookup) RecipesByInput(itemID string) ([]models.Recipe, error) {
	ds, err := l.store.Dataset()
	if err != nil {
		return nil, err
	}
	return copyRecipes(ds.RecipesByInput[itemID]), nil
}

// Rail returns the rail with the given id, or nil when unknown.
func (l *Lookup) Rail(id string) (*models.Rail, error) {
	ds, err := l.store.Dataset()
	if err != nil {
		return nil, err
	}
	if rail, ok := ds.Rails[id]; ok {
		return &rail, nil
	}
	return nil, nil
}

// Rails returns all rails sorted ascending by capacity.
func (l *Lookup) Rails() ([]models.Rail, error) {
	ds, err := l.store.Dataset()
	if err != nil {
		return nil, err
	}
	return copyRails(ds.RailsByCapacity), nil
}

// RailsByMinCapacity returns the rails whose capacity is at least the
// given threshold, sorted ascending by capacity. An exact threshold match
// is served from the precomputed index; any other value falls back to
// filtering the sorted sequence.
func (l *Lookup) RailsByMinCapacity(threshold int) ([]models.Rail, error) {
	ds, err := l.store.Dataset()
	if err != nil {
		return nil, err
	}

	if rails, ok := ds.RailsAtLeast[threshold]; ok {
		return copyRails(rails), nil
	}

	idx := sort.Search(len(ds.RailsByCapacity), func(i int) bool {
		return ds.RailsByCapacity[i].Capacity >= threshold
	})
	return copyRails(ds.RailsByCapacity[idx:]), nil
}

// Corporation returns the corporation with the given id, or nil when unknown.
func (l *Lookup) Corporation(id string) (*models.Corporation, error) {
	ds, err := l.store.Dataset()
	if err != nil {
		return nil, err
	}
	if corp, ok := ds.Corporations[id]; ok {
		return &corp, nil
	}
	return nil, nil
}

// Corporations returns all corporations in catalog order.
func (l *Lookup) Corporations() ([]models.Corporation, error) {
	ds, err := l.store.Dataset()
	if err != nil {
		return nil, err
	}
	corps := make([]models.Corporation, 0, len(ds.corporationOrder))
	for _, id := range ds.corporationOrder {
		corps = append(corps, ds.Corporations[id])
	}
	return corps, nil
}

// RewardsAt returns the rewards declared at exactly the given corporation
// level. An unknown corporation or level yields an empty slice.
func (l *Lookup) RewardsAt(corporationID string, level int) ([]models.Reward, error) {
	ds, err := l.store.Dataset()
	if err != nil {
		return nil, err
	}

	rewards := ds.RewardsByLevel[corporationID][level]
	out := make([]models.Reward, len(rewards))
	copy(out, rewards)
	return out, nil
}

// RewardsOfType returns the rewards of one type at the given corporation level.
func (l *Lookup) RewardsOfType(corporationID string, level int, rewardType models.RewardType) ([]models.Reward, error) {
	rewards, err := l.RewardsAt(corporationID, level)
	if err != nil {
		return nil, err
	}

	out := []models.Reward{}
	for _, reward := range rewards {
		if reward.Type == rewardType {
			out = append(out, reward)
		}
	}
	return out, nil
}

// BuildingsUnlockedAt resolves the building rewards of one corporation
// level against the primary table. Rewards whose id does not resolve are
// dropped silently; that can only happen when validation was bypassed.
func (l *Lookup) BuildingsUnlockedAt(corporationID string, level int) ([]models.Building, error) {
	rewards, err := l.RewardsOfType(corporationID, level, models.RewardBuilding)
	if err != nil {
		return nil, err
	}

	ds, err := l.store.Dataset()
	if err != nil {
		return nil, err
	}

	buildings := []models.Building{}
	for _, reward := range rewards {
		if building, ok := ds.Buildings[reward.ID]; ok {
			buildings = append(buildings, building)
		}
	}
	return buildings, nil
}

// RailsUnlockedAt resolves the rail rewards of one corporation level
// against the primary table, dropping unresolved ids.
func (l *Lookup) RailsUnlockedAt(corporationID string, level int) ([]models.Rail, error) {
	rewards, err := l.RewardsOfType(corporationID, level, models.RewardRail)
	if err != nil {
		return nil, err
	}

	ds, err := l.store.Dataset()
	if err != nil {
		return nil, err
	}

	rails := []models.Rail{}
	for _, reward := range rewards {
		if rail, ok := ds.Rails[reward.ID]; ok {
			rails = append(rails, rail)
		}
	}
	return rails, nil
}

func copyItems(src []models.Item) []models.Item {
	out := make([]models.Item, len(src))
	copy(out, src)
	return out
}

func copyBuildings(src []models.Building) []models.Building {
	out := make([]models.Building, len(src))
	copy(out, src)
	return out
}

func copyRecipes(src []models.Recipe) []models.Recipe {
	out := make([]models.Recipe, len(src))
	copy(out, src)
	return out
}

func copyRails(src []models.Rail) []models.Rail {
	out := make([]models.Rail, len(src))
	copy(out, src)
	return out
}
