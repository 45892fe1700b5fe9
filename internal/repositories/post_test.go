package repositories

import (
	"context"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/sbilibin2017/gw-blog/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func postRows() *sqlmock.Rows {
	return sqlmock.NewRows([]string{"id", "title", "body", "created", "author_id"})
}

func TestPostWriteRepository_Create(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewPostWriteRepository(db, nil)
	created := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)

	mock.ExpectQuery(regexp.QuoteMeta("INSERT INTO posts (title, body, author_id)")).
		WithArgs("Hello", "World", int64(3)).
		WillReturnRows(postRows().AddRow(1, "Hello", "World", created, 3))

	post, err := repo.Create(context.Background(), 3, "Hello", "World")
	require.NoError(t, err)
	assert.Equal(t, &models.Post{ID: 1, Title: "Hello", Body: "World", Created: created, AuthorID: 3}, post)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPostReadRepository(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewPostReadRepository(db, nil)
	ctx := context.Background()
	created := time.Now().UTC()

	mock.ExpectQuery(regexp.QuoteMeta("FROM posts WHERE id = $1")).
		WithArgs(int64(1)).
		WillReturnRows(postRows().AddRow(1, "t", "b", created, 3))
	mock.ExpectQuery(regexp.QuoteMeta("FROM posts WHERE id = $1")).
		WithArgs(int64(2)).
		WillReturnRows(postRows())
	mock.ExpectQuery(regexp.QuoteMeta("FROM posts ORDER BY created DESC")).
		WillReturnRows(postRows().AddRow(2, "t2", "b2", created, 3).AddRow(1, "t", "b", created, 3))
	mock.ExpectQuery(regexp.QuoteMeta("JOIN users u ON u.id = p.author_id")).
		WithArgs(int64(3)).
		WillReturnRows(postRows().AddRow(1, "t", "b", created, 3))

	post, err := repo.GetByID(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, int64(3), post.AuthorID)

	_, err = repo.GetByID(ctx, 2)
	assert.ErrorIs(t, err, models.ErrNotFound)

	posts, err := repo.List(ctx)
	require.NoError(t, err)
	assert.Len(t, posts, 2)

	posts, err = repo.ListByAuthor(ctx, 3)
	require.NoError(t, err)
	assert.Len(t, posts, 1)

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPostWriteRepository_UpdateAndDelete(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewPostWriteRepository(db, nil)
	ctx := context.Background()
	created := time.Now().UTC()

	mock.ExpectQuery(regexp.QuoteMeta("UPDATE posts SET title = $1, body = $2 WHERE id = $3")).
		WithArgs("new", "text", int64(1)).
		WillReturnRows(postRows().AddRow(1, "new", "text", created, 3))
	mock.ExpectExec(regexp.QuoteMeta("DELETE FROM posts WHERE id = $1")).
		WithArgs(int64(1)).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec(regexp.QuoteMeta("DELETE FROM posts WHERE id = $1")).
		WithArgs(int64(1)).
		WillReturnResult(sqlmock.NewResult(0, 0))

	post, err := repo.Update(ctx, 1, map[string]any{"body": "text", "title": "new", "author_id": int64(9)})
	require.NoError(t, err)
	assert.Equal(t, "new", post.Title)
	assert.Equal(t, int64(3), post.AuthorID)

	assert.NoError(t, repo.Delete(ctx, 1))
	assert.ErrorIs(t, repo.Delete(ctx, 1), models.ErrNotFound)

	assert.NoError(t, mock.ExpectationsWereMet())
}
