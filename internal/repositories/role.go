package repositories

import (
	"context"

	"github.com/jmoiron/sqlx"
	"github.com/sbilibin2017/gw-blog/internal/models"
)

// RoleReadRepository handles role read operations
type RoleReadRepository struct {
	db       *sqlx.DB
	txGetter TxGetter
}

func NewRoleReadRepository(db *sqlx.DB, txGetter TxGetter) *RoleReadRepository {
	return &RoleReadRepository{db: db, txGetter: txGetter}
}

// GetByID returns models.ErrNotFound when no role has the id.
func (r *RoleReadRepository) GetByID(ctx context.Context, id int64) (*models.Role, error) {
	const query = `SELECT id, name FROM roles WHERE id = $1`

	var role models.Role
	err := sqlx.GetContext(ctx, executor(ctx, r.db, r.txGetter), &role, query, id)
	logQuery(query, []any{id}, role.Name, err)
	if err != nil {
		return nil, translateError(err)
	}
	return &role, nil
}

// List returns every role ordered by id.
func (r *RoleReadRepository) List(ctx context.Context) ([]models.Role, error) {
	const query = `SELECT id, name FROM roles ORDER BY id`

	roles := []models.Role{}
	err := sqlx.SelectContext(ctx, executor(ctx, r.db, r.txGetter), &roles, query)
	logQuery(query, nil, len(roles), err)
	if err != nil {
		return nil, translateError(err)
	}
	return roles, nil
}

// RoleWriteRepository handles role write operations
type RoleWriteRepository struct {
	db       *sqlx.DB
	txGetter TxGetter
}

func NewRoleWriteRepository(db *sqlx.DB, txGetter TxGetter) *RoleWriteRepository {
	return &RoleWriteRepository{db: db, txGetter: txGetter}
}

// Create inserts a role and returns its id.
func (r *RoleWriteRepository) Create(ctx context.Context, name string) (int64, error) {
	const query = `INSERT INTO roles (name) VALUES ($1) RETURNING id`

	var id int64
	err := sqlx.GetContext(ctx, executor(ctx, r.db, r.txGetter), &id, query, name)
	logQuery(query, []any{name}, id, err)
	if err != nil {
		return 0, translateError(err)
	}
	return id, nil
}
