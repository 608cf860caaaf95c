// Package database opens gorm connections for the relational inventory store.
//
// Connect picks the dialector from Config.Driver (mysql, postgres or sqlite),
// applies pool settings and pings the server before returning. SQLite is used
// for local single-file deployments and tests.
//
// GetTableColumns and MissingColumns inspect a live table so the integrity scan
// can report schema drift before the store starts writing to it.
//
//	db, err := database.Connect(cfg.Database)
//	missing, err := database.MissingColumns(db, "inventory_items", []string{"item_key", "qty"})
package database
