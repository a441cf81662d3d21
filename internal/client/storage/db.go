package storage

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	"github.com/moonui/moonui/internal/client/storage/migrations"
	"github.com/moonui/moonui/internal/filex"
	"github.com/pressly/goose/v3"

	_ "modernc.org/sqlite"
)

// InitDatabase opens the local SQLite database at dsn and brings the schema
// up to date with the embedded migrations. For plain file paths the parent
// directory is created first.
func InitDatabase(ctx context.Context, dsn string) (*sql.DB, error) {
	if !strings.Contains(dsn, "mode=memory") && !strings.HasPrefix(dsn, "file:") {
		if _, err := filex.EnsureParentDir(dsn); err != nil {
			return nil, err
		}
	}

	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	if err := runMigrations(ctx, db); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("failed to run migrations: %w", err)
	}

	return db, nil
}

func runMigrations(ctx context.Context, db *sql.DB) error {
	goose.SetBaseFS(migrations.Migrations)

	if err := goose.SetDialect("sqlite3"); err != nil {
		return err
	}

	return goose.UpContext(ctx, db, ".")
}
