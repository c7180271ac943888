// Package schemas provides embedded SQL migration files.
package schemas

import "embed"

// Migrations contains the MySQL tables backing the mysql storage driver,
// applied in file name order by database.Migrate.
//
//go:embed migrations/*.sql
var Migrations embed.FS
