package catalog

import (
	"sort"

	"gamedata-manager/feature/catalog/models"
)

// Dataset is the compiled, read-only form of one validated snapshot:
// primary id-keyed tables plus the derived indices every lookup pattern
// needs. All indices are built eagerly by Compile; nothing is computed
// lazily. Callers must treat every contained slice and map as immutable.
type Dataset struct {
	Items        map[string]models.Item
	Buildings    map[string]models.Building
	Recipes      map[string]models.Recipe
	Rails        map[string]models.Rail
	Corporations map[string]models.Corporation

	// Grouping indices preserve first-seen input order.
	RecipesByBuilding      map[string][]models.Recipe
	RecipesByOutput        map[string][]models.Recipe
	RecipesByInput         map[string][]models.Recipe
	BuildingsByCategory    map[models.BuildingCategory][]models.Building
	BuildingsByCorporation map[string][]models.Building
	ItemsByCategory        map[models.ItemCategory][]models.Item
	ItemsByTier            map[int][]models.Item

	// RailsByCapacity is the full rail sequence, stably sorted ascending
	// by capacity (ties keep input order).
	RailsByCapacity []models.Rail
	// RailsAtLeast maps every distinct capacity value to the rails whose
	// capacity is greater than or equal to it, sorted ascending.
	RailsAtLeast map[int][]models.Rail

	// RewardsByLevel is a two-level lookup: corporation id, then level
	// number, to the reward list declared at exactly that level.
	RewardsByLevel map[string]map[int][]models.Reward

	// inputOrder keeps the original array orders for "all records" queries.
	itemOrder        []string
	buildingOrder    []string
	recipeOrder      []string
	railOrder        []string
	corporationOrder []string
}

// Compile builds the primary tables and every derived index from a
// validated snapshot. Requiring ValidatedData makes it impossible to
// compile a snapshot with duplicate ids, which would otherwise silently
// resolve last-write-wins in the primary tables.
func Compile(data ValidatedData) *Dataset {
	raw := data.raw

	ds := &Dataset{
		Items:        make(map[string]models.Item, len(raw.Items)),
		Buildings:    make(map[string]models.Building, len(raw.Buildings)),
		Recipes:      make(map[string]models.Recipe, len(raw.Recipes)),
		Rails:        make(map[string]models.Rail, len(raw.Rails)),
		Corporations: make(map[string]models.Corporation, len(raw.Corporations)),

		RecipesByBuilding:      make(map[string][]models.Recipe),
		RecipesByOutput:        make(map[string][]models.Recipe),
		RecipesByInput:         make(map[string][]models.Recipe),
		BuildingsByCategory:    make(map[models.BuildingCategory][]models.Building),
		BuildingsByCorporation: make(map[string][]models.Building),
		ItemsByCategory:        make(map[models.ItemCategory][]models.Item),
		ItemsByTier:            make(map[int][]models.Item),
		RailsAtLeast:           make(map[int][]models.Rail),
		RewardsByLevel:         make(map[string]map[int][]models.Reward),
	}

	// Primary tables.
	for _, item := range raw.Items {
		ds.Items[item.ID] = item
		ds.itemOrder = append(ds.itemOrder, item.ID)
	}
	for _, building := range raw.Buildings {
		ds.Buildings[building.ID] = building
		ds.buildingOrder = append(ds.buildingOrder, building.ID)
	}
	for _, recipe := range raw.Recipes {
		ds.Recipes[recipe.ID] = recipe
		ds.recipeOrder = append(ds.recipeOrder, recipe.ID)
	}
	for _, rail := range raw.Rails {
		ds.Rails[rail.ID] = rail
		ds.railOrder = append(ds.railOrder, rail.ID)
	}
	for _, corp := range raw.Corporations {
		ds.Corporations[corp.ID] = corp
		ds.corporationOrder = append(ds.corporationOrder, corp.ID)
	}

	// Recipe groupings.
	for _, recipe := range raw.Recipes {
		ds.RecipesByBuilding[recipe.Building] = append(ds.RecipesByBuilding[recipe.Building], recipe)
		ds.RecipesByOutput[recipe.Output.Item] = append(ds.RecipesByOutput[recipe.Output.Item], recipe)

		// A recipe with N distinct input items appears under all N keys;
		// repeated input items must not duplicate the recipe under one key.
		seen := make(map[string]struct{}, len(recipe.Inputs))
		for _, input := range recipe.Inputs {
			if _, dup := seen[input.Item]; dup {
				continue
			}
			seen[input.Item] = struct{}{}
			ds.RecipesByInput[input.Item] = append(ds.RecipesByInput[input.Item], recipe)
		}
	}

	// Building groupings. Buildings without an unlock requirement are
	// excluded from the corporation index entirely.
	for _, building := range raw.Buildings {
		ds.BuildingsByCategory[building.Category] = append(ds.BuildingsByCategory[building.Category], building)
		if building.UnlockedBy != nil {
			corp := building.UnlockedBy.Corporation
			ds.BuildingsByCorporation[corp] = append(ds.BuildingsByCorporation[corp], building)
		}
	}

	// Item groupings.
	for _, item := range raw.Items {
		ds.ItemsByCategory[item.Category] = append(ds.ItemsByCategory[item.Category], item)
		ds.ItemsByTier[item.Tier] = append(ds.ItemsByTier[item.Tier], item)
	}

	// Rails sorted ascending by capacity; the sort must be stable so
	// equal capacities keep input order.
	ds.RailsByCapacity = append(ds.RailsByCapacity, raw.Rails...)
	sort.SliceStable(ds.RailsByCapacity, func(i, j int) bool {
		return ds.RailsByCapacity[i].Capacity < ds.RailsByCapacity[j].Capacity
	})

	// Threshold index: one entry per distinct capacity value actually
	// present. Suffixes of the sorted sequence are copied so that index
	// entries never alias each other.
	for i, rail := range ds.RailsByCapacity {
		if _, done := ds.RailsAtLeast[rail.Capacity]; done {
			continue
		}
		suffix := make([]models.Rail, len(ds.RailsByCapacity)-i)
		copy(suffix, ds.RailsByCapacity[i:])
		ds.RailsAtLeast[rail.Capacity] = suffix
	}

	// Reward lookup by corporation and level.
	for _, corp := range raw.Corporations {
		levels := make(map[int][]models.Reward, len(corp.Levels))
		for _, level := range corp.Levels {
			levels[level.Level] = level.Rewards
		}
		ds.RewardsByLevel[corp.ID] = levels
	}

	return ds
}
