// Package database handles the ledger database connection and schema inspection.
//
// It wraps GORM to configure MySQL (production) or SQLite (local runs and tests)
// connections from the application configuration. The handle returned by
// Connect is constructed once and injected into its consumers; nothing here
// keeps a package-level connection.
//
// # Schema Inspection
//
// GetTableColumns lists a table's columns (SHOW COLUMNS / PRAGMA table_info).
// The integrity feature uses it to verify the ledger table layout before
// reconciliation relies on it.
//
// # Usage
//
//	db, err := database.Connect(cfg.Database)
//	if err != nil {
//	    return err
//	}
//	columns, err := database.GetTableColumns(db, cfg.Database.LedgerTable)
package database
