package catalog

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"

	"gamedata-manager/feature/catalog/models"
)

// testRawData builds a small self-consistent snapshot covering every
// cross-reference kind: a mining chain (ore -> ingot -> plate), unlockable
// buildings and rails, and a corporation rewarding both.
func testRawData() *models.RawData {
	return &models.RawData{
		Items: []models.Item{
			{ID: "iron-ore", Name: "Iron Ore", Category: models.ItemRaw, Tier: 0},
			{ID: "iron-ingot", Name: "Iron Ingot", Category: models.ItemProcessed, Tier: 1},
			{ID: "iron-plate", Name: "Iron Plate", Category: models.ItemComponent, Tier: 1},
		},
		Buildings: []models.Building{
			{
				ID:       "miner-mk1",
				Name:     "Miner Mk1",
				Category: models.BuildingExtraction,
				Size:     models.Size{Width: 2, Height: 2},
				Power:    5,
				Outputs:  1,
			},
			{
				ID:        "smelter",
				Name:      "Smelter",
				Category:  models.BuildingProcessing,
				Size:      models.Size{Width: 3, Height: 3},
				Power:     12,
				Heat:      4,
				Inputs:    1,
				Outputs:   1,
				Cost:      map[string]int{"iron-ore": 20},
				RecipeIDs: []string{"smelt-iron"},
				UnlockedBy: &models.Unlock{
					Corporation: "ferron",
					Level:       1,
				},
			},
			{
				ID:        "press",
				Name:      "Plate Press",
				Category:  models.BuildingCrafting,
				Size:      models.Size{Width: 2, Height: 3},
				Power:     8,
				Inputs:    1,
				Outputs:   1,
				RecipeIDs: []string{"press-plate"},
				UnlockedBy: &models.Unlock{
					Corporation: "ferron",
					Level:       2,
				},
			},
		},
		Recipes: []models.Recipe{
			{
				ID:       "mine-iron",
				Building: "miner-mk1",
				Output:   models.Stack{Item: "iron-ore", Amount: 1},
				Duration: 2,
				Rate:     30,
			},
			{
				ID:       "smelt-iron",
				Building: "smelter",
				Output:   models.Stack{Item: "iron-ingot", Amount: 1},
				Inputs:   []models.Stack{{Item: "iron-ore", Amount: 2}},
				Duration: 4,
				Rate:     15,
			},
			{
				ID:       "press-plate",
				Building: "press",
				Output:   models.Stack{Item: "iron-plate", Amount: 2},
				Inputs:   []models.Stack{{Item: "iron-ingot", Amount: 3}},
				Duration: 6,
				Rate:     20,
			},
		},
		Rails: []models.Rail{
			{ID: "rail-mk1", Name: "Cargo Rail Mk1", Size: models.Size{Width: 1, Height: 1}, Capacity: 60, Power: 1},
			{ID: "rail-mk2", Name: "Cargo Rail Mk2", Size: models.Size{Width: 1, Height: 1}, Capacity: 120, Power: 2,
				UnlockedBy: &models.Unlock{Corporation: "ferron", Level: 2}},
		},
		Corporations: []models.Corporation{
			{
				ID:          "ferron",
				Name:        "Ferron Industries",
				Description: "Heavy extraction and smelting conglomerate.",
				Levels: []models.CorporationLevel{
					{
						Level:   1,
						XP:      100,
						Scoring: []models.ScoreComponent{{Metric: "ore_mined", Weight: 1}},
						Rewards: []models.Reward{
							{Type: models.RewardBuilding, ID: "smelter"},
							{Type: models.RewardCurrency, Name: "500 credits"},
						},
					},
					{
						Level:   2,
						XP:      400,
						Scoring: []models.ScoreComponent{{Metric: "ingots_smelted", Weight: 2}},
						Rewards: []models.Reward{
							{Type: models.RewardBuilding, ID: "press"},
							{Type: models.RewardRail, ID: "rail-mk2"},
							{Type: models.RewardLem, Name: "LEM boost"},
						},
					},
				},
			},
		},
	}
}

// fakeSource serves in-memory JSON documents and counts fetches. Individual
// collections can be poisoned with errors or raw bodies.
type fakeSource struct {
	mu      sync.Mutex
	data    *models.RawData
	errs    map[string]error
	bodies  map[string][]byte
	fetches int
	// block, when non-nil, is closed by the test to release all fetches.
	block chan struct{}
}

func newFakeSource(data *models.RawData) *fakeSource {
	return &fakeSource{
		data:   data,
		errs:   make(map[string]error),
		bodies: make(map[string][]byte),
	}
}

func (s *fakeSource) Fetch(ctx context.Context, collection string) ([]byte, error) {
	s.mu.Lock()
	s.fetches++
	blocked := s.block
	err := s.errs[collection]
	body, hasBody := s.bodies[collection]
	data := s.data
	s.mu.Unlock()

	if blocked != nil {
		<-blocked
	}
	if err != nil {
		return nil, err
	}
	if hasBody {
		return body, nil
	}

	switch collection {
	case CollectionItems:
		return json.Marshal(data.Items)
	case CollectionBuildings:
		return json.Marshal(data.Buildings)
	case CollectionRecipes:
		return json.Marshal(data.Recipes)
	case CollectionRails:
		return json.Marshal(data.Rails)
	case CollectionCorporations:
		return json.Marshal(data.Corporations)
	}
	return nil, fmt.Errorf("unknown collection %s", collection)
}

func (s *fakeSource) fetchCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.fetches
}

// validatedFixture runs the fixture through validation, failing the test
// indirectly via panic if the fixture itself regresses.
func validatedFixture() ValidatedData {
	report := Validate(testRawData())
	snap, err := report.Snapshot()
	if err != nil {
		panic("test fixture is invalid: " + report.Summary())
	}
	return snap
}
