package database

import (
	"context"
	"fmt"
	"io/fs"
	"path"
	"slices"
	"strings"

	"github.com/jmoiron/sqlx"
)

const migrationsPattern = "migrations/*.up.sql"

// Migrate applies the migrations not yet recorded in schema_migrations, in
// file name order, and returns the versions it applied.
func Migrate(ctx context.Context, db *sqlx.DB, migrations fs.FS) ([]string, error) {
	if _, err := db.ExecContext(ctx, `CREATE TABLE IF NOT EXISTS schema_migrations (
		version VARCHAR(191) NOT NULL PRIMARY KEY,
		applied_at DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP
	)`); err != nil {
		return nil, fmt.Errorf("db.ExecContext(create schema_migrations) > %w", err)
	}

	var applied []string
	if err := db.SelectContext(ctx, &applied, "SELECT version FROM schema_migrations"); err != nil {
		return nil, fmt.Errorf("db.SelectContext(schema_migrations) > %w", err)
	}

	files, err := fs.Glob(migrations, migrationsPattern)
	if err != nil {
		return nil, fmt.Errorf("fs.Glob(%s) > %w", migrationsPattern, err)
	}
	slices.Sort(files)

	var versions []string
	for _, file := range files {
		version := strings.TrimSuffix(path.Base(file), ".up.sql")
		if slices.Contains(applied, version) {
			continue
		}

		statements, err := fs.ReadFile(migrations, file)
		if err != nil {
			return versions, fmt.Errorf("fs.ReadFile(%s) > %w", file, err)
		}
		if _, err := db.ExecContext(ctx, string(statements)); err != nil {
			return versions, fmt.Errorf("db.ExecContext(%s) > %w", version, err)
		}
		if _, err := db.ExecContext(ctx, "INSERT INTO schema_migrations (version) VALUES (?)", version); err != nil {
			return versions, fmt.Errorf("db.ExecContext(record %s) > %w", version, err)
		}
		versions = append(versions, version)
	}
	return versions, nil
}
