package store

import (
	"context"
	"fmt"
)

// WithinTx runs fn inside a transaction on the managed handle. The callback
// receives a DBTX backed by a *sql.Tx; a returned error rolls everything back.
func (m *Manager) WithinTx(ctx context.Context, fn func(ctx context.Context, tx DBTX) error) error {
	db, err := m.Init(ctx)
	if err != nil {
		return err
	}

	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("beginning transaction: %w", err)
	}

	defer func() {
		if p := recover(); p != nil {
			_ = tx.Rollback()
			panic(p)
		}
	}()

	if err := fn(ctx, tx); err != nil {
		if rbErr := tx.Rollback(); rbErr != nil {
			return fmt.Errorf("rollback failed: %v (original error: %w)", rbErr, err)
		}
		return err
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("committing transaction: %w", err)
	}
	return nil
}
