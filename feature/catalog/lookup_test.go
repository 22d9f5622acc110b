package catalog

import (
	"context"
	"testing"

	"gamedata-manager/feature/catalog/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

// loadedLookup builds a lookup over a store loaded with the given snapshot.
func loadedLookup(t *testing.T, raw *models.RawData) *Lookup {
	t.Helper()
	store := NewStore(newFakeSource(raw), zap.NewNop())
	require.NoError(t, store.Load(context.Background()))
	return NewLookup(store)
}

func TestLookup_FailsBeforeLoad(t *testing.T) {
	lookup := NewLookup(NewStore(newFakeSource(testRawData()), zap.NewNop()))

	_, err := lookup.Item("iron-ore")
	assert.ErrorIs(t, err, ErrNotLoaded)
	_, err = lookup.Buildings()
	assert.ErrorIs(t, err, ErrNotLoaded)
	_, err = lookup.RailsByMinCapacity(60)
	assert.ErrorIs(t, err, ErrNotLoaded)
	_, err = lookup.RewardsAt("ferron", 1)
	assert.ErrorIs(t, err, ErrNotLoaded)
}

func TestLookup_ByID(t *testing.T) {
	lookup := loadedLookup(t, testRawData())

	item, err := lookup.Item("iron-ore")
	require.NoError(t, err)
	require.NotNil(t, item)
	assert.Equal(t, "Iron Ore", item.Name)

	building, err := lookup.Building("smelter")
	require.NoError(t, err)
	require.NotNil(t, building)
	assert.Equal(t, models.BuildingProcessing, building.Category)

	recipe, err := lookup.Recipe("smelt-iron")
	require.NoError(t, err)
	require.NotNil(t, recipe)
	assert.Equal(t, "iron-ingot", recipe.Output.Item)

	rail, err := lookup.Rail("rail-mk2")
	require.NoError(t, err)
	require.NotNil(t, rail)
	assert.Equal(t, 120, rail.Capacity)

	corp, err := lookup.Corporation("ferron")
	require.NoError(t, err)
	require.NotNil(t, corp)
	assert.Len(t, corp.Levels, 2)
}

func TestLookup_UnknownID(t *testing.T) {
	lookup := loadedLookup(t, testRawData())

	item, err := lookup.Item("no-such-item")
	assert.NoError(t, err)
	assert.Nil(t, item)

	building, err := lookup.Building("no-such-building")
	assert.NoError(t, err)
	assert.Nil(t, building)
}

func TestLookup_EmptyGroupsAreNonNil(t *testing.T) {
	lookup := loadedLookup(t, testRawData())

	recipes, err := lookup.RecipesByBuilding("no-such-building")
	require.NoError(t, err)
	assert.NotNil(t, recipes)
	assert.Empty(t, recipes)

	items, err := lookup.ItemsByTier(99)
	require.NoError(t, err)
	assert.NotNil(t, items)
	assert.Empty(t, items)

	rewards, err := lookup.RewardsAt("no-such-corp", 1)
	require.NoError(t, err)
	assert.NotNil(t, rewards)
	assert.Empty(t, rewards)
}

func TestLookup_CatalogOrder(t *testing.T) {
	lookup := loadedLookup(t, testRawData())

	items, err := lookup.Items()
	require.NoError(t, err)
	require.Len(t, items, 3)
	assert.Equal(t, "iron-ore", items[0].ID)
	assert.Equal(t, "iron-ingot", items[1].ID)
	assert.Equal(t, "iron-plate", items[2].ID)

	recipes, err := lookup.RecipesByOutput("iron-plate")
	require.NoError(t, err)
	require.Len(t, recipes, 1)
	assert.Equal(t, "press-plate", recipes[0].ID)
}

func TestLookup_RailsByMinCapacity(t *testing.T) {
	raw := testRawData()
	// rail-mk2 stays in the set because the fixture corporation rewards it.
	raw.Rails = []models.Rail{
		{ID: "rail-a", Capacity: 60},
		{ID: "rail-mk2", Capacity: 120},
		{ID: "rail-c", Capacity: 240},
		{ID: "rail-d", Capacity: 480},
		{ID: "rail-e", Capacity: 720},
	}
	lookup := loadedLookup(t, raw)

	t.Run("Exact Capacity", func(t *testing.T) {
		rails, err := lookup.RailsByMinCapacity(120)
		require.NoError(t, err)
		require.Len(t, rails, 4)
		assert.Equal(t, "rail-mk2", rails[0].ID)
		assert.Equal(t, "rail-e", rails[3].ID)
	})

	t.Run("Between Capacities", func(t *testing.T) {
		rails, err := lookup.RailsByMinCapacity(90)
		require.NoError(t, err)
		require.Len(t, rails, 4)
		assert.Equal(t, "rail-mk2", rails[0].ID)
	})

	t.Run("Above Maximum", func(t *testing.T) {
		rails, err := lookup.RailsByMinCapacity(1000)
		require.NoError(t, err)
		assert.NotNil(t, rails)
		assert.Empty(t, rails)
	})

	t.Run("Zero Returns Everything Sorted", func(t *testing.T) {
		rails, err := lookup.RailsByMinCapacity(0)
		require.NoError(t, err)
		require.Len(t, rails, 5)
		assert.Equal(t, "rail-a", rails[0].ID)
	})
}

func TestLookup_Rewards(t *testing.T) {
	lookup := loadedLookup(t, testRawData())

	rewards, err := lookup.RewardsAt("ferron", 2)
	require.NoError(t, err)
	require.Len(t, rewards, 3)

	rails, err := lookup.RewardsOfType("ferron", 2, models.RewardRail)
	require.NoError(t, err)
	require.Len(t, rails, 1)
	assert.Equal(t, "rail-mk2", rails[0].ID)

	buildings, err := lookup.BuildingsUnlockedAt("ferron", 1)
	require.NoError(t, err)
	require.Len(t, buildings, 1)
	assert.Equal(t, "smelter", buildings[0].ID)

	unlockedRails, err := lookup.RailsUnlockedAt("ferron", 2)
	require.NoError(t, err)
	require.Len(t, unlockedRails, 1)
	assert.Equal(t, "rail-mk2", unlockedRails[0].ID)

	// Level 1 rewards no rails at all.
	none, err := lookup.RailsUnlockedAt("ferron", 1)
	require.NoError(t, err)
	assert.NotNil(t, none)
	assert.Empty(t, none)
}

func TestLookup_ResultsAreCopies(t *testing.T) {
	lookup := loadedLookup(t, testRawData())

	recipes, err := lookup.RecipesByBuilding("smelter")
	require.NoError(t, err)
	require.Len(t, recipes, 1)
	recipes[0].ID = "mangled"

	again, err := lookup.RecipesByBuilding("smelter")
	require.NoError(t, err)
	require.Len(t, again, 1)
	assert.Equal(t, "smelt-iron", again[0].ID)

	rails, err := lookup.RailsByMinCapacity(60)
	require.NoError(t, err)
	require.NotEmpty(t, rails)
	rails[0].Capacity = -1

	again2, err := lookup.RailsByMinCapacity(60)
	require.NoError(t, err)
	assert.Equal(t, 60, again2[0].Capacity)
}

func TestLookup_EndToEndChain(t *testing.T) {
	// Minimal production chain: one raw item mined by one building, moved
	// on one rail.
	raw := &models.RawData{
		Items: []models.Item{
			{ID: "bauxite", Name: "Bauxite", Category: models.ItemRaw, Tier: 0},
		},
		Buildings: []models.Building{
			{ID: "quarry", Name: "Quarry", Category: models.BuildingExtraction, Outputs: 1},
		},
		Recipes: []models.Recipe{
			{ID: "dig-bauxite", Building: "quarry", Output: models.Stack{Item: "bauxite", Amount: 1}},
		},
		Rails: []models.Rail{
			{ID: "haul-line", Capacity: 120},
		},
	}
	lookup := loadedLookup(t, raw)

	recipes, err := lookup.RecipesByBuilding("quarry")
	require.NoError(t, err)
	require.Len(t, recipes, 1)
	assert.Equal(t, "dig-bauxite", recipes[0].ID)

	items, err := lookup.ItemsByTier(0)
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, "bauxite", items[0].ID)

	rails, err := lookup.RailsByMinCapacity(120)
	require.NoError(t, err)
	require.Len(t, rails, 1)

	rails, err = lookup.RailsByMinCapacity(121)
	require.NoError(t, err)
	assert.Empty(t, rails)
}
