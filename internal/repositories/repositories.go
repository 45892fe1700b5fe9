package repositories

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jmoiron/sqlx"
	"github.com/sbilibin2017/gw-blog/internal/logger"
	"github.com/sbilibin2017/gw-blog/internal/models"
)

// PostgreSQL error codes translated into model errors.
const (
	pgUniqueViolation     = "23505"
	pgForeignKeyViolation = "23503"
)

// TxGetter returns the transaction bound to ctx, or nil.
type TxGetter func(ctx context.Context) *sqlx.Tx

// executor picks the request transaction when there is one.
func executor(ctx context.Context, db *sqlx.DB, txGetter TxGetter) sqlx.ExtContext {
	if txGetter != nil {
		if tx := txGetter(ctx); tx != nil {
			return tx
		}
	}
	return db
}

// translateError maps driver errors onto models errors.
func translateError(err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, sql.ErrNoRows) {
		return models.ErrNotFound
	}
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case pgUniqueViolation:
			return fmt.Errorf("%w: %s", models.ErrUniqueViolation, pgErr.ConstraintName)
		case pgForeignKeyViolation:
			return fmt.Errorf("%w: %s", models.ErrForeignKeyViolation, pgErr.ConstraintName)
		}
	}
	return err
}

// logQuery logs query on a single line together with its args, result and error.
func logQuery(query string, args []any, result any, err error) {
	logger.Log.Infow("query",
		"sql", strings.Join(strings.Fields(query), " "),
		"args", args,
		"result", result,
		"error", err,
	)
}

// buildUpdate builds an UPDATE of the allowed columns present in fields.
// ok is false when no allowed column is present.
func buildUpdate(table string, allowed []string, fields map[string]any, id int64, returning string) (query string, args []any, ok bool) {
	sets := make([]string, 0, len(allowed))
	for _, col := range allowed {
		v, present := fields[col]
		if !present {
			continue
		}
		args = append(args, v)
		sets = append(sets, fmt.Sprintf("%s = $%d", col, len(args)))
	}
	if len(sets) == 0 {
		return "", nil, false
	}
	args = append(args, id)
	query = fmt.Sprintf("UPDATE %s SET %s WHERE id = $%d RETURNING %s",
		table, strings.Join(sets, ", "), len(args), returning)
	return query, args, true
}
