package models

// ItemCategory classifies an item in the five-way catalog taxonomy.
type ItemCategory string

const (
	ItemRaw       ItemCategory = "raw"
	ItemProcessed ItemCategory = "processed"
	ItemComponent ItemCategory = "component"
	ItemMaterial  ItemCategory = "material"
	ItemAmmo      ItemCategory = "ammo"
)

// Item is a single entry of the items catalog.
type Item struct {
	ID       string       `json:"id"`
	Name     string       `json:"name"`
	Category ItemCategory `json:"category"`
	// Tier is a non-negative ordering used for progression grouping.
	Tier int `json:"tier"`
}

// BuildingCategory classifies a building by its role in the factory.
type BuildingCategory string

const (
	BuildingExtraction   BuildingCategory = "extraction"
	BuildingProcessing   BuildingCategory = "processing"
	BuildingCrafting     BuildingCategory = "crafting"
	BuildingGenerator    BuildingCategory = "generator"
	BuildingTransport    BuildingCategory = "transport"
	BuildingStorage      BuildingCategory = "storage"
	BuildingTemperature  BuildingCategory = "temperature"
	BuildingHabitat      BuildingCategory = "habitat"
	BuildingDefense      BuildingCategory = "defense"
	BuildingRailSupport  BuildingCategory = "rail-support"
	BuildingRailJunction BuildingCategory = "rail-junction"
)

// Size is a footprint in grid cells.
type Size struct {
	Width  int `json:"width"`
	Height int `json:"height"`
}

// Unlock names the corporation level at which something becomes available.
// The level value is informational; it is not checked against the
// corporation's actual level list.
type Unlock struct {
	Corporation string `json:"corporation"`
	Level       int    `json:"level"`
}

// Building is a single entry of the buildings catalog.
type Building struct {
	ID       string           `json:"id"`
	Name     string           `json:"name"`
	Category BuildingCategory `json:"category"`
	Size     Size             `json:"size"`
	Power    float64          `json:"power"`
	Heat     float64          `json:"heat"`
	Inputs   int              `json:"inputs"`
	Outputs  int              `json:"outputs"`
	// Cost maps item id to quantity required to build.
	Cost map[string]int `json:"cost,omitempty"`
	// UnlockedBy is nil for buildings available from the start.
	UnlockedBy *Unlock  `json:"unlockedBy,omitempty"`
	RecipeIDs  []string `json:"recipeIds,omitempty"`

	// Category-dependent attributes.
	Capacity        int     `json:"capacity,omitempty"`
	Cooling         float64 `json:"cooling,omitempty"`
	RailConnections int     `json:"railConnections,omitempty"`
}

// Stack is an item quantity flowing through a recipe.
type Stack struct {
	Item   string  `json:"item"`
	Amount float64 `json:"amount"`
}

// Recipe is a single entry of the recipes catalog.
type Recipe struct {
	ID string `json:"id"`
	// Building is the id of the building that runs this recipe.
	Building string  `json:"building"`
	Output   Stack   `json:"output"`
	Inputs   []Stack `json:"inputs,omitempty"`
	// Duration is the cycle time in seconds.
	Duration float64 `json:"duration"`
	// Rate is the nominal throughput in outputs per minute.
	Rate   float64 `json:"rate"`
	Purity string  `json:"purity,omitempty"`
}

// Rail is a single entry of the transport-rail catalog.
type Rail struct {
	ID         string         `json:"id"`
	Name       string         `json:"name"`
	Size       Size           `json:"size"`
	Capacity   int            `json:"capacity"`
	Power      float64        `json:"power"`
	Heat       float64        `json:"heat"`
	Cost       map[string]int `json:"cost,omitempty"`
	UnlockedBy *Unlock        `json:"unlockedBy,omitempty"`
}

// RewardType tags a corporation level reward. Only RewardBuilding and
// RewardRail carry a cross-referenced id; all other types are display-only.
type RewardType string

const (
	RewardBuilding   RewardType = "building"
	RewardRail       RewardType = "rail"
	RewardUtility    RewardType = "utility"
	RewardCurrency   RewardType = "currency"
	RewardLem        RewardType = "lem"
	RewardItem       RewardType = "item"
	RewardWeapon     RewardType = "weapon"
	RewardModulePack RewardType = "module_pack"
	RewardMeta       RewardType = "meta"
)

// Reward is an entry granted at a corporation progression level.
type Reward struct {
	Type RewardType `json:"type"`
	// ID references a building or rail when Type is building/rail.
	ID string `json:"id,omitempty"`
	// Name is the display name for rewards that reference nothing.
	Name string `json:"name,omitempty"`
}

// ScoreComponent describes one metric contributing XP toward a level.
type ScoreComponent struct {
	Metric string  `json:"metric"`
	Weight float64 `json:"weight"`
}

// CorporationLevel is one step of a corporation's progression ladder.
type CorporationLevel struct {
	Level   int              `json:"level"`
	XP      int              `json:"xp"`
	Scoring []ScoreComponent `json:"scoring,omitempty"`
	Rewards []Reward         `json:"rewards,omitempty"`
}

// Corporation is a single entry of the corporations catalog.
type Corporation struct {
	ID          string             `json:"id"`
	Name        string             `json:"name"`
	Description string             `json:"description"`
	Levels      []CorporationLevel `json:"levels"`
}

// RawData is one load attempt's snapshot of all five collections,
// parsed but not yet validated.
type RawData struct {
	Items        []Item        `json:"items"`
	Buildings    []Building    `json:"buildings"`
	Recipes      []Recipe      `json:"recipes"`
	Rails        []Rail        `json:"rails"`
	Corporations []Corporation `json:"corporations"`
}
