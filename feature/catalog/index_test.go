package catalog

import (
	"testing"

	"gamedata-manager/feature/catalog/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCompile_PrimaryTables(t *testing.T) {
	raw := testRawData()
	ds := Compile(validatedFixture())

	assert.Len(t, ds.Items, len(raw.Items))
	assert.Len(t, ds.Buildings, len(raw.Buildings))
	assert.Len(t, ds.Recipes, len(raw.Recipes))
	assert.Len(t, ds.Rails, len(raw.Rails))
	assert.Len(t, ds.Corporations, len(raw.Corporations))

	for _, item := range raw.Items {
		assert.Equal(t, item, ds.Items[item.ID])
	}
	for _, recipe := range raw.Recipes {
		assert.Equal(t, recipe, ds.Recipes[recipe.ID])
	}
}

func TestCompile_Idempotent(t *testing.T) {
	first := Compile(validatedFixture())
	second := Compile(validatedFixture())

	assert.Equal(t, first, second)
}

func TestCompile_RecipeIndices(t *testing.T) {
	ds := Compile(validatedFixture())

	require.Len(t, ds.RecipesByBuilding["smelter"], 1)
	assert.Equal(t, "smelt-iron", ds.RecipesByBuilding["smelter"][0].ID)

	require.Len(t, ds.RecipesByOutput["iron-ingot"], 1)
	assert.Equal(t, "smelt-iron", ds.RecipesByOutput["iron-ingot"][0].ID)

	// iron-ore is produced by mine-iron and consumed by smelt-iron.
	require.Len(t, ds.RecipesByOutput["iron-ore"], 1)
	require.Len(t, ds.RecipesByInput["iron-ore"], 1)
	assert.Equal(t, "mine-iron", ds.RecipesByOutput["iron-ore"][0].ID)
	assert.Equal(t, "smelt-iron", ds.RecipesByInput["iron-ore"][0].ID)

	// mine-iron has no inputs and must not appear in the input index.
	for item, recipes := range ds.RecipesByInput {
		for _, r := range recipes {
			assert.NotEqual(t, "mine-iron", r.ID, "input index keyed by %s", item)
		}
	}
}

func TestCompile_RepeatedInputItemIndexedOnce(t *testing.T) {
	raw := testRawData()
	raw.Recipes[2].Inputs = []models.Stack{
		{Item: "iron-ingot", Amount: 2},
		{Item: "iron-ingot", Amount: 1},
	}
	report := Validate(raw)
	snap, err := report.Snapshot()
	require.NoError(t, err)

	ds := Compile(snap)
	require.Len(t, ds.RecipesByInput["iron-ingot"], 2)
	assert.Equal(t, "smelt-iron", ds.RecipesByInput["iron-ingot"][0].ID)
	assert.Equal(t, "press-plate", ds.RecipesByInput["iron-ingot"][1].ID)
}

func TestCompile_BuildingIndices(t *testing.T) {
	ds := Compile(validatedFixture())

	require.Len(t, ds.BuildingsByCategory[models.BuildingExtraction], 1)
	assert.Equal(t, "miner-mk1", ds.BuildingsByCategory[models.BuildingExtraction][0].ID)

	// miner-mk1 has no unlock requirement and is absent from the
	// corporation index; the two unlockable buildings keep input order.
	corpBuildings := ds.BuildingsByCorporation["ferron"]
	require.Len(t, corpBuildings, 2)
	assert.Equal(t, "smelter", corpBuildings[0].ID)
	assert.Equal(t, "press", corpBuildings[1].ID)
}

func TestCompile_ItemIndices(t *testing.T) {
	ds := Compile(validatedFixture())

	require.Len(t, ds.ItemsByCategory[models.ItemRaw], 1)
	assert.Equal(t, "iron-ore", ds.ItemsByCategory[models.ItemRaw][0].ID)

	require.Len(t, ds.ItemsByTier[1], 2)
	assert.Equal(t, "iron-ingot", ds.ItemsByTier[1][0].ID)
	assert.Equal(t, "iron-plate", ds.ItemsByTier[1][1].ID)
}

func TestCompile_RailCapacityIndex(t *testing.T) {
	raw := testRawData()
	// rail-mk2 stays in the set because the fixture corporation rewards it.
	raw.Rails = []models.Rail{
		{ID: "rail-e", Capacity: 720},
		{ID: "rail-b", Capacity: 120},
		{ID: "rail-a", Capacity: 60},
		{ID: "rail-mk2", Capacity: 120},
		{ID: "rail-c", Capacity: 240},
		{ID: "rail-d", Capacity: 480},
	}
	report := Validate(raw)
	snap, err := report.Snapshot()
	require.NoError(t, err)

	ds := Compile(snap)

	got := make([]string, 0, len(ds.RailsByCapacity))
	for _, rail := range ds.RailsByCapacity {
		got = append(got, rail.ID)
	}
	// Ascending by capacity; the two 120s keep their input order.
	assert.Equal(t, []string{"rail-a", "rail-b", "rail-mk2", "rail-c", "rail-d", "rail-e"}, got)

	require.Len(t, ds.RailsAtLeast, 5)
	assert.Len(t, ds.RailsAtLeast[60], 6)
	assert.Len(t, ds.RailsAtLeast[120], 5)
	assert.Len(t, ds.RailsAtLeast[240], 3)
	assert.Len(t, ds.RailsAtLeast[480], 2)
	assert.Len(t, ds.RailsAtLeast[720], 1)
	assert.Equal(t, "rail-b", ds.RailsAtLeast[120][0].ID)
}

func TestCompile_RewardsByLevel(t *testing.T) {
	ds := Compile(validatedFixture())

	levels := ds.RewardsByLevel["ferron"]
	require.NotNil(t, levels)
	require.Len(t, levels[1], 2)
	require.Len(t, levels[2], 3)

	assert.Equal(t, models.RewardBuilding, levels[1][0].Type)
	assert.Equal(t, "smelter", levels[1][0].ID)
	assert.Equal(t, models.RewardRail, levels[2][1].Type)
	assert.Equal(t, "rail-mk2", levels[2][1].ID)

	// Level 3 was never declared.
	assert.Nil(t, levels[3])
}
