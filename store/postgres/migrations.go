package postgres

import (
	"context"
	"database/sql"
	"embed"
	"fmt"
	"io/fs"
	"sort"
)

//go:embed migrations/*.sql
var migrations embed.FS

func migrationFiles() []string {
	names, err := fs.Glob(migrations, "migrations/*.sql")
	if err != nil {
		return nil
	}
	sort.Strings(names)
	return names
}

// Apply executes every embedded migration in lexical order. Each migration must be
// idempotent, they run on every start.
func Apply(ctx context.Context, db *sql.DB) error {
	for _, name := range migrationFiles() {
		query, err := migrations.ReadFile(name)
		if err != nil {
			return fmt.Errorf("unable to read migration %s: %w", name, err)
		}
		if _, err := db.ExecContext(ctx, string(query)); err != nil {
			return fmt.Errorf("unable to apply migration %s: %w", name, err)
		}
	}
	return nil
}
