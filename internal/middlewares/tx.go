package middlewares

import (
	"bytes"
	"context"
	"net/http"

	"github.com/jmoiron/sqlx"
	"github.com/sbilibin2017/gw-blog/internal/commit"
	"github.com/sbilibin2017/gw-blog/internal/httperror"
	"github.com/sbilibin2017/gw-blog/internal/logger"
)

// TxMiddleware runs every request inside a database transaction. The
// response is held back until the transaction ends: statuses below 400
// commit, everything else rolls back. A failed commit turns the response
// into a 500. Hooks registered through commit.AfterCommit run only after a
// successful commit.
func TxMiddleware(db *sqlx.DB) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			tx, err := db.BeginTxx(r.Context(), nil)
			if err != nil {
				logger.Log.Errorw("failed to begin transaction", "error", err)
				httperror.Write(w, http.StatusInternalServerError, "")
				return
			}

			defer func() {
				if rec := recover(); rec != nil {
					tx.Rollback()
					panic(rec)
				}
			}()

			bw := &bufferedWriter{header: http.Header{}, statusCode: http.StatusOK}
			ctx, hooks := commit.WithHooks(setTxToContext(r.Context(), tx))
			next.ServeHTTP(bw, r.WithContext(ctx))

			if bw.statusCode >= http.StatusBadRequest {
				if err := tx.Rollback(); err != nil {
					logger.Log.Errorw("failed to rollback transaction", "error", err)
				}
				bw.flush(w)
				return
			}

			if err := tx.Commit(); err != nil {
				logger.Log.Errorw("failed to commit transaction", "error", err)
				httperror.Write(w, http.StatusInternalServerError, "")
				return
			}
			hooks.Run(r.Context())
			bw.flush(w)
		})
	}
}

// bufferedWriter collects a response so it can be discarded.
type bufferedWriter struct {
	header     http.Header
	statusCode int
	body       bytes.Buffer
}

func (bw *bufferedWriter) Header() http.Header {
	return bw.header
}

func (bw *bufferedWriter) WriteHeader(code int) {
	bw.statusCode = code
}

func (bw *bufferedWriter) Write(b []byte) (int, error) {
	return bw.body.Write(b)
}

func (bw *bufferedWriter) flush(w http.ResponseWriter) {
	for k, v := range bw.header {
		w.Header()[k] = v
	}
	w.WriteHeader(bw.statusCode)
	w.Write(bw.body.Bytes())
}

// contextKey is an unexported type for keys in context
type contextKey struct{}

var txKey = contextKey{}

// setTxToContext stores a transaction in the context
func setTxToContext(ctx context.Context, tx *sqlx.Tx) context.Context {
	return context.WithValue(ctx, txKey, tx)
}

// GetTxFromContext retrieves the transaction from the context. Returns nil if not present.
func GetTxFromContext(ctx context.Context) *sqlx.Tx {
	tx, _ := ctx.Value(txKey).(*sqlx.Tx)
	return tx
}
