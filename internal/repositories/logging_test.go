package repositories

import (
	"context"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/sbilibin2017/gw-blog/internal/logger"
	"github.com/sbilibin2017/gw-blog/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

// observeLogs swaps the global logger for an in-memory one until the test ends.
func observeLogs(t *testing.T) *observer.ObservedLogs {
	t.Helper()
	core, logs := observer.New(zapcore.DebugLevel)
	old := logger.Log
	logger.Log = zap.New(core).Sugar()
	t.Cleanup(func() { logger.Log = old })
	return logs
}

func TestLogQuery_Fields(t *testing.T) {
	db, mock := newMockDB(t)
	logs := observeLogs(t)

	mock.ExpectQuery(regexp.QuoteMeta(`SELECT id, username, password, role_id FROM users WHERE id = $1`)).
		WithArgs(int64(1)).
		WillReturnRows(userRows().AddRow(1, "alice", "hash", 1))

	_, err := NewUserReadRepository(db, nil).GetByID(context.Background(), 1)
	require.NoError(t, err)

	entries := logs.All()
	require.Len(t, entries, 1)
	assert.Equal(t, zapcore.InfoLevel, entries[0].Level)
	assert.Equal(t, "query", entries[0].Message)

	fields := entries[0].ContextMap()
	assert.Equal(t, "SELECT id, username, password, role_id FROM users WHERE id = $1", fields["sql"])
	assert.Equal(t, []any{int64(1)}, fields["args"])
	assert.Equal(t, "alice", fields["result"])
	assert.Contains(t, fields, "error")
}

func TestLogQuery_KeepsError(t *testing.T) {
	db, mock := newMockDB(t)
	logs := observeLogs(t)

	mock.ExpectExec(regexp.QuoteMeta(`DELETE FROM users WHERE id = $1`)).
		WithArgs(int64(3)).
		WillReturnError(errors.New("connection reset"))

	err := NewUserWriteRepository(db, nil).Delete(context.Background(), 3)
	require.Error(t, err)

	entries := logs.All()
	require.Len(t, entries, 1)
	assert.Equal(t, "connection reset", entries[0].ContextMap()["error"])
	assert.Empty(t, logs.FilterLevelExact(zapcore.ErrorLevel).All())
}

func TestRoleCacheRepository_LogFields(t *testing.T) {
	logs := observeLogs(t)

	client := redis.NewClient(&redis.Options{
		Addr:        "127.0.0.1:1",
		DialTimeout: 100 * time.Millisecond,
		MaxRetries:  -1,
	})
	defer client.Close()
	repo := NewRoleCacheRepository(client, time.Minute)

	_, err := repo.GetRoleName(context.Background(), 7)
	require.Error(t, err)
	assert.NotErrorIs(t, err, models.ErrCacheMiss)

	entries := logs.FilterMessage("role cache get").All()
	require.Len(t, entries, 1)
	fields := entries[0].ContextMap()
	assert.Equal(t, "user_role:7", fields["key"])
	assert.NotEmpty(t, fields["error"])
	assert.Empty(t, logs.FilterLevelExact(zapcore.ErrorLevel).All())
}
