// Package db provides database connection management.
//
// This package is responsible for:
//   - PostgreSQL connection pool initialization
//   - Connection health checks
//
// Schema migrations live in the top-level migrations directory and are
// applied with the cmd/migrate utility.
//
// Example usage:
//
//	db, err := db.New(ctx, cfg.Database, log)
//	if err != nil {
//	    return err
//	}
//	defer db.Close()
package db
