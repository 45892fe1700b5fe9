// Package migrations owns the database schema and the optional seed data.
package migrations

import (
	"context"
	_ "embed"
	"fmt"

	"github.com/jmoiron/sqlx"
	"github.com/sbilibin2017/gw-blog/internal/logger"
)

//go:embed schema.sql
var schema string

const dropSchema = `DROP TABLE IF EXISTS posts, users, roles CASCADE`

// Apply creates the tables that do not exist yet.
func Apply(ctx context.Context, db *sqlx.DB) error {
	if _, err := db.ExecContext(ctx, schema); err != nil {
		return fmt.Errorf("apply schema: %w", err)
	}
	logger.Log.Info("database schema applied")
	return nil
}

// Reset drops every table and recreates the schema.
func Reset(ctx context.Context, db *sqlx.DB) error {
	if _, err := db.ExecContext(ctx, dropSchema); err != nil {
		return fmt.Errorf("drop schema: %w", err)
	}
	logger.Log.Warn("database tables dropped")
	return Apply(ctx, db)
}
