// Package catalog implements the game data pipeline: load, validate,
// index, lookup.
//
// Five interrelated collections (items, buildings, recipes, rails,
// corporations) are fetched concurrently from a document Source, checked
// for uniqueness and cross-referential integrity, and compiled into an
// immutable set of primary tables and derived indices. A process-wide
// Store coordinates the lifecycle (idle -> loading -> ready/error) and
// always serves the last successfully committed snapshot; the Lookup
// facade is the only way the rest of the application reads the data.
//
// # Pipeline
//
//	raw, err := catalog.Load(ctx, source)       // fetch + parse
//	report  := catalog.Validate(raw)            // exhaustive integrity report
//	snap, _ := report.Snapshot()                // validated marker
//	dataset := catalog.Compile(snap)            // tables + indices
//
// The Store runs these steps for you and publishes the result atomically.
// Validation never stops at the first violation; the report lists every
// problem found so a data author can fix a whole batch at once.
package catalog
