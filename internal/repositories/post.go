package repositories

import (
	"context"

	"github.com/jmoiron/sqlx"
	"github.com/sbilibin2017/gw-blog/internal/models"
)

const postColumns = "id, title, body, created, author_id"

// PostReadRepository handles post read operations
type PostReadRepository struct {
	db       *sqlx.DB
	txGetter TxGetter
}

func NewPostReadRepository(db *sqlx.DB, txGetter TxGetter) *PostReadRepository {
	return &PostReadRepository{db: db, txGetter: txGetter}
}

// GetByID returns models.ErrNotFound when no post has the id.
func (r *PostReadRepository) GetByID(ctx context.Context, id int64) (*models.Post, error) {
	const query = `SELECT ` + postColumns + ` FROM posts WHERE id = $1`

	var post models.Post
	err := sqlx.GetContext(ctx, executor(ctx, r.db, r.txGetter), &post, query, id)
	logQuery(query, []any{id}, post.ID, err)
	if err != nil {
		return nil, translateError(err)
	}
	return &post, nil
}

// List returns every post, newest first.
func (r *PostReadRepository) List(ctx context.Context) ([]models.Post, error) {
	const query = `SELECT ` + postColumns + ` FROM posts ORDER BY created DESC, id DESC`

	posts := []models.Post{}
	err := sqlx.SelectContext(ctx, executor(ctx, r.db, r.txGetter), &posts, query)
	logQuery(query, nil, len(posts), err)
	if err != nil {
		return nil, translateError(err)
	}
	return posts, nil
}

// ListByAuthor returns the posts written by authorID, newest first.
func (r *PostReadRepository) ListByAuthor(ctx context.Context, authorID int64) ([]models.Post, error) {
	const query = `
		SELECT p.id, p.title, p.body, p.created, p.author_id
		FROM posts p
		JOIN users u ON u.id = p.author_id
		WHERE u.id = $1
		ORDER BY p.created DESC, p.id DESC
	`

	posts := []models.Post{}
	err := sqlx.SelectContext(ctx, executor(ctx, r.db, r.txGetter), &posts, query, authorID)
	logQuery(query, []any{authorID}, len(posts), err)
	if err != nil {
		return nil, translateError(err)
	}
	return posts, nil
}

// PostWriteRepository handles post write operations
type PostWriteRepository struct {
	db       *sqlx.DB
	txGetter TxGetter
}

func NewPostWriteRepository(db *sqlx.DB, txGetter TxGetter) *PostWriteRepository {
	return &PostWriteRepository{db: db, txGetter: txGetter}
}

// Create inserts a post; created is filled in by the database.
func (r *PostWriteRepository) Create(ctx context.Context, authorID int64, title, body string) (*models.Post, error) {
	const query = `
		INSERT INTO posts (title, body, author_id)
		VALUES ($1, $2, $3)
		RETURNING ` + postColumns

	var post models.Post
	err := sqlx.GetContext(ctx, executor(ctx, r.db, r.txGetter), &post, query, title, body, authorID)
	logQuery(query, []any{title, authorID}, post.ID, err)
	if err != nil {
		return nil, translateError(err)
	}
	return &post, nil
}

// Update writes the post columns present in fields. Keys outside
// models.PostColumns are ignored.
func (r *PostWriteRepository) Update(ctx context.Context, id int64, fields map[string]any) (*models.Post, error) {
	query, args, ok := buildUpdate("posts", models.PostColumns, fields, id, postColumns)
	if !ok {
		query = `SELECT ` + postColumns + ` FROM posts WHERE id = $1`
		args = []any{id}
	}

	var post models.Post
	err := sqlx.GetContext(ctx, executor(ctx, r.db, r.txGetter), &post, query, args...)
	logQuery(query, args, post.ID, err)
	if err != nil {
		return nil, translateError(err)
	}
	return &post, nil
}

// Delete removes the post. It returns models.ErrNotFound when nothing was deleted.
func (r *PostWriteRepository) Delete(ctx context.Context, id int64) error {
	const query = `DELETE FROM posts WHERE id = $1`

	res, err := executor(ctx, r.db, r.txGetter).ExecContext(ctx, query, id)
	var rowsAffected int64
	if res != nil {
		rowsAffected, _ = res.RowsAffected()
	}
	logQuery(query, []any{id}, rowsAffected, err)

	if err != nil {
		return translateError(err)
	}
	if rowsAffected == 0 {
		return models.ErrNotFound
	}
	return nil
}
