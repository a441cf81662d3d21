package storage

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/moonui/moonui/internal/dbx"
)

// kvRepository is a plain key-value table access layer. It reports raw
// database errors; interpretation (degrade vs. propagate) is the Store's job.
type kvRepository struct {
	db dbx.DBTX
}

func newKVRepository(db dbx.DBTX) *kvRepository {
	return &kvRepository{db: db}
}

// get returns the stored value or nil when the key is absent.
func (r *kvRepository) get(ctx context.Context, key string) ([]byte, error) {
	var value []byte
	err := r.db.QueryRowContext(ctx, `SELECT value FROM kv WHERE key = ?`, key).Scan(&value)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get kv[%s]: %w", key, err)
	}
	return value, nil
}

func (r *kvRepository) set(ctx context.Context, key string, value []byte) error {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO kv (key, value) VALUES (?, ?)
		ON CONFLICT(key) DO UPDATE SET value = excluded.value
	`, key, value)
	if err != nil {
		return fmt.Errorf("failed to set kv[%s]: %w", key, err)
	}
	return nil
}

func (r *kvRepository) delete(ctx context.Context, key string) error {
	_, err := r.db.ExecContext(ctx, `DELETE FROM kv WHERE key = ?`, key)
	if err != nil {
		return fmt.Errorf("failed to delete kv[%s]: %w", key, err)
	}
	return nil
}
