// Package database handles the optional MySQL connection backing the database dataset source.
//
// It wraps GORM to configure connections from the application's configuration and
// offers a small schema inspector so a misconfigured dataset table is reported
// clearly at startup instead of surfacing as a scan error.
//
// # Usage
//
//	db, err := database.Connect(cfg.Database)
//	if err != nil {
//	    logg.Warn("Optional database connection failed", zap.Error(err))
//	}
//
//	err = database.RequireColumns(ctx, db, "countries", "id", "document")
package database
