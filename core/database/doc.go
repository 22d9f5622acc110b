// Package database handles database connections and schema inspection.
//
// It provides a wrapper around GORM (Go Object Relational Mapping) to properly configure
// MySQL connections based on the application's configuration.
//
// # Connect
//
// The generic Connect function establishes a connection to the database.
// The connection is used by the catalog feature when the game data documents
// are served out of a database table instead of object storage.
//
// # Schema Inspection
//
// The package includes tools to inspect the database schema. VerifyTable
// checks that the documents table carries the columns the catalog source
// expects before any load is attempted.
//
// # Usage
//
//	db, err := database.Connect(cfg.Database)
//	if err != nil {
//	    log.Fatal("Database connection failed", err)
//	}
//
//	missing, err := database.VerifyTable(db, "gamedata_documents", []string{"name", "body"})
package database
