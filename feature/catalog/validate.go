package catalog

import (
	"errors"
	"fmt"
	"strings"

	"gamedata-manager/feature/catalog/models"
)

// Code is one of the closed set of integrity violation categories.
type Code string

const (
	CodeDuplicateID           Code = "DUPLICATE_ID"
	CodeMissingBuildingRef    Code = "MISSING_BUILDING_REF"
	CodeMissingItemRef        Code = "MISSING_ITEM_REF"
	CodeMissingRecipeRef      Code = "MISSING_RECIPE_REF"
	CodeMissingCorporationRef Code = "MISSING_CORPORATION_REF"
	CodeMissingRailRef        Code = "MISSING_RAIL_REF"
)

// Violation is one integrity failure found in a raw snapshot.
type Violation struct {
	Code Code `json:"code"`
	// Message names the offending id(s) in human-readable form.
	Message string `json:"message"`
	// Collection is the logical source collection of the violating record.
	Collection string `json:"collection"`
	// RecordID is the id of the record containing the violation, where applicable.
	RecordID string `json:"record_id,omitempty"`
}

// Report is the complete, non-fail-fast validation result of one snapshot.
// Violations is empty if and only if Valid is true.
type Report struct {
	Valid      bool        `json:"valid"`
	Violations []Violation `json:"violations"`

	raw *models.RawData
}

// ErrNotValidated is returned when a compiled dataset is requested from a
// snapshot that failed validation.
var ErrNotValidated = errors.New("catalog: snapshot did not pass validation")

// ValidatedData marks a raw snapshot that passed all integrity checks.
// It is the only accepted input of Compile, which makes "validate before
// indexing" a compile-time requirement rather than caller discipline.
type ValidatedData struct {
	raw *models.RawData
}

// Snapshot returns the validated snapshot, or ErrNotValidated when the
// report carries violations.
func (r *Report) Snapshot() (ValidatedData, error) {
	if !r.Valid {
		return ValidatedData{}, ErrNotValidated
	}
	return ValidatedData{raw: r.raw}, nil
}

// Summary formats the full violation list as one multi-line report.
func (r *Report) Summary() string {
	if r.Valid {
		return "catalog valid: no violations"
	}

	var b strings.Builder
	fmt.Fprintf(&b, "catalog invalid: %d violation(s)\n", len(r.Violations))
	for _, v := range r.Violations {
		fmt.Fprintf(&b, "  [%s] %s: %s\n", v.Code, v.Collection, v.Message)
	}
	return strings.TrimRight(b.String(), "\n")
}

// Validate checks the snapshot's uniqueness and cross-referential integrity.
// Every check runs unconditionally; the report lists every violation found,
// in input order per check, never just the first. Validate performs no I/O
// and does not mutate its input.
func Validate(raw *models.RawData) *Report {
	violations := []Violation{}

	itemIDs := collectIDs(len(raw.Items), func(i int) string { return raw.Items[i].ID })
	buildingIDs := collectIDs(len(raw.Buildings), func(i int) string { return raw.Buildings[i].ID })
	recipeIDs := collectIDs(len(raw.Recipes), func(i int) string { return raw.Recipes[i].ID })
	railIDs := collectIDs(len(raw.Rails), func(i int) string { return raw.Rails[i].ID })
	corpIDs := collectIDs(len(raw.Corporations), func(i int) string { return raw.Corporations[i].ID })

	// Step 1: per-collection id uniqueness. Only repeats are flagged,
	// never the first occurrence.
	violations = append(violations, checkDuplicates(CollectionItems, len(raw.Items), func(i int) string { return raw.Items[i].ID })...)
	violations = append(violations, checkDuplicates(CollectionBuildings, len(raw.Buildings), func(i int) string { return raw.Buildings[i].ID })...)
	violations = append(violations, checkDuplicates(CollectionRecipes, len(raw.Recipes), func(i int) string { return raw.Recipes[i].ID })...)
	violations = append(violations, checkDuplicates(CollectionRails, len(raw.Rails), func(i int) string { return raw.Rails[i].ID })...)
	violations = append(violations, checkDuplicates(CollectionCorporations, len(raw.Corporations), func(i int) string { return raw.Corporations[i].ID })...)

	// Step 2: recipe references.
	for _, recipe := range raw.Recipes {
		if _, ok := buildingIDs[recipe.Building]; !ok {
			violations = append(violations, Violation{
				Code:       CodeMissingBuildingRef,
				Message:    fmt.Sprintf("recipe %s references unknown building %s", recipe.ID, recipe.Building),
				Collection: CollectionRecipes,
				RecordID:   recipe.ID,
			})
		}
		if _, ok := itemIDs[recipe.Output.Item]; !ok {
			violations = append(violations, Violation{
				Code:       CodeMissingItemRef,
				Message:    fmt.Sprintf("recipe %s output references unknown item %s", recipe.ID, recipe.Output.Item),
				Collection: CollectionRecipes,
				RecordID:   recipe.ID,
			})
		}
		// One violation per unresolved input, not one per recipe.
		for _, input := range recipe.Inputs {
			if _, ok := itemIDs[input.Item]; !ok {
				violations = append(violations, Violation{
					Code:       CodeMissingItemRef,
					Message:    fmt.Sprintf("recipe %s input references unknown item %s", recipe.ID, input.Item),
					Collection: CollectionRecipes,
					RecordID:   recipe.ID,
				})
			}
		}
	}

	// Step 3: building references.
	for _, building := range raw.Buildings {
		for _, id := range building.RecipeIDs {
			if _, ok := recipeIDs[id]; !ok {
				violations = append(violations, Violation{
					Code:       CodeMissingRecipeRef,
					Message:    fmt.Sprintf("building %s references unknown recipe %s", building.ID, id),
					Collection: CollectionBuildings,
					RecordID:   building.ID,
				})
			}
		}
		if building.UnlockedBy != nil {
			if _, ok := corpIDs[building.UnlockedBy.Corporation]; !ok {
				violations = append(violations, Violation{
					Code:       CodeMissingCorporationRef,
					Message:    fmt.Sprintf("building %s references unknown corporation %s", building.ID, building.UnlockedBy.Corporation),
					Collection: CollectionBuildings,
					RecordID:   building.ID,
				})
			}
		}
	}

	// Step 4: rail references.
	for _, rail := range raw.Rails {
		if rail.UnlockedBy != nil {
			if _, ok := corpIDs[rail.UnlockedBy.Corporation]; !ok {
				violations = append(violations, Violation{
					Code:       CodeMissingCorporationRef,
					Message:    fmt.Sprintf("rail %s references unknown corporation %s", rail.ID, rail.UnlockedBy.Corporation),
					Collection: CollectionRails,
					RecordID:   rail.ID,
				})
			}
		}
	}

	// Step 5: corporation level rewards. The switch is total over all
	// nine reward types so that a future checked type cannot be skipped
	// silently by an "if id present" heuristic.
	for _, corp := range raw.Corporations {
		for _, level := range corp.Levels {
			for _, reward := range level.Rewards {
				switch reward.Type {
				case models.RewardBuilding:
					if reward.ID == "" {
						continue
					}
					if _, ok := buildingIDs[reward.ID]; !ok {
						violations = append(violations, Violation{
							Code:       CodeMissingBuildingRef,
							Message:    fmt.Sprintf("corporation %s level %d rewards unknown building %s", corp.ID, level.Level, reward.ID),
							Collection: CollectionCorporations,
							RecordID:   corp.ID,
						})
					}
				case models.RewardRail:
					if reward.ID == "" {
						continue
					}
					if _, ok := railIDs[reward.ID]; !ok {
						violations = append(violations, Violation{
							Code:       CodeMissingRailRef,
							Message:    fmt.Sprintf("corporation %s level %d rewards unknown rail %s", corp.ID, level.Level, reward.ID),
							Collection: CollectionCorporations,
							RecordID:   corp.ID,
						})
					}
				case models.RewardUtility, models.RewardCurrency, models.RewardLem,
					models.RewardItem, models.RewardWeapon, models.RewardModulePack,
					models.RewardMeta:
					// Display-only reward types carry no reference.
				}
			}
		}
	}

	return &Report{
		Valid:      len(violations) == 0,
		Violations: violations,
		raw:        raw,
	}
}

// collectIDs builds the id set of one collection.
func collectIDs(n int, id func(int) string) map[string]struct{} {
	set := make(map[string]struct{}, n)
	for i := 0; i < n; i++ {
		set[id(i)] = struct{}{}
	}
	return set
}

// checkDuplicates scans one collection in input order and flags every
// record whose id was already seen earlier in the same collection.
func checkDuplicates(collection string, n int, id func(int) string) []Violation {
	seen := make(map[string]struct{}, n)
	var violations []Violation

	for i := 0; i < n; i++ {
		recordID := id(i)
		if _, dup := seen[recordID]; dup {
			violations = append(violations, Violation{
				Code:       CodeDuplicateID,
				Message:    fmt.Sprintf("duplicate id %s", recordID),
				Collection: collection,
				RecordID:   recordID,
			})
			continue
		}
		seen[recordID] = struct{}{}
	}

	return violations
}
