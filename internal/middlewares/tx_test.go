package middlewares

import (
	"context"
	"database/sql"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jmoiron/sqlx"
	"github.com/sbilibin2017/gw-blog/internal/commit"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newMockDB(t *testing.T) (*sqlx.DB, sqlmock.Sqlmock) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	return sqlx.NewDb(db, "sqlmock"), mock
}

func TestTxMiddleware_Success(t *testing.T) {
	sqlxDB, mock := newMockDB(t)

	mock.ExpectBegin()
	mock.ExpectCommit()

	nextCalled := false
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		nextCalled = true
		tx := GetTxFromContext(r.Context())
		assert.NotNil(t, tx)
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusCreated)
		w.Write([]byte(`{"message":"ok"}`))
	})

	handler := TxMiddleware(sqlxDB)(next)
	req := httptest.NewRequest(http.MethodPost, "/", nil)
	rr := httptest.NewRecorder()

	handler.ServeHTTP(rr, req)

	assert.True(t, nextCalled)
	assert.Equal(t, http.StatusCreated, rr.Code)
	assert.Equal(t, "application/json", rr.Header().Get("Content-Type"))
	assert.JSONEq(t, `{"message":"ok"}`, rr.Body.String())
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestTxMiddleware_RollbackOnErrorStatus(t *testing.T) {
	sqlxDB, mock := newMockDB(t)

	mock.ExpectBegin()
	mock.ExpectRollback()

	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusConflict)
		w.Write([]byte("conflict"))
	})

	handler := TxMiddleware(sqlxDB)(next)
	req := httptest.NewRequest(http.MethodPost, "/", nil)
	rr := httptest.NewRecorder()

	handler.ServeHTTP(rr, req)

	assert.Equal(t, http.StatusConflict, rr.Code)
	assert.Equal(t, "conflict", rr.Body.String())
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestTxMiddleware_BeginError(t *testing.T) {
	db, _, err := sqlmock.New()
	require.NoError(t, err)
	sqlxDB := sqlx.NewDb(db, "sqlmock")

	nextCalled := false
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		nextCalled = true
	})

	// Close db so Begin fails
	db.Close()

	handler := TxMiddleware(sqlxDB)(next)
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rr := httptest.NewRecorder()

	handler.ServeHTTP(rr, req)

	assert.False(t, nextCalled)
	assert.Equal(t, http.StatusInternalServerError, rr.Code)
}

func TestTxMiddleware_CommitError(t *testing.T) {
	sqlxDB, mock := newMockDB(t)

	mock.ExpectBegin()
	mock.ExpectCommit().WillReturnError(sql.ErrConnDone)

	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusCreated)
		w.Write([]byte(`{"message":"created"}`))
	})

	handler := TxMiddleware(sqlxDB)(next)
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rr := httptest.NewRecorder()

	handler.ServeHTTP(rr, req)

	assert.Equal(t, http.StatusInternalServerError, rr.Code)
	assert.NotContains(t, rr.Body.String(), "created")
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestTxMiddleware_Panic(t *testing.T) {
	sqlxDB, mock := newMockDB(t)

	mock.ExpectBegin()
	mock.ExpectRollback()

	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		panic("test panic")
	})

	handler := TxMiddleware(sqlxDB)(next)
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rr := httptest.NewRecorder()

	assert.Panics(t, func() {
		handler.ServeHTTP(rr, req)
	})

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestTxMiddleware_AfterCommitHooks(t *testing.T) {
	tests := []struct {
		name      string
		status    int
		commitErr error
		wantRun   bool
	}{
		{name: "run after commit", status: http.StatusOK, wantRun: true},
		{name: "dropped on rollback", status: http.StatusNotFound},
		{name: "dropped on commit error", status: http.StatusOK, commitErr: sql.ErrConnDone},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sqlxDB, mock := newMockDB(t)

			mock.ExpectBegin()
			if tt.status >= http.StatusBadRequest {
				mock.ExpectRollback()
			} else {
				mock.ExpectCommit().WillReturnError(tt.commitErr)
			}

			ran := false
			next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				commit.AfterCommit(r.Context(), func(context.Context) {
					// the transaction has already ended when hooks run
					assert.NoError(t, mock.ExpectationsWereMet())
					ran = true
				})
				assert.False(t, ran)
				w.WriteHeader(tt.status)
			})

			handler := TxMiddleware(sqlxDB)(next)
			rr := httptest.NewRecorder()
			handler.ServeHTTP(rr, httptest.NewRequest(http.MethodPatch, "/", nil))

			assert.Equal(t, tt.wantRun, ran)
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}
