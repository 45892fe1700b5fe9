package repositories

import (
	"context"

	"github.com/jmoiron/sqlx"
	"github.com/sbilibin2017/gw-blog/internal/models"
)

const userColumns = "id, username, password, role_id"

// UserReadRepository handles user read operations
type UserReadRepository struct {
	db       *sqlx.DB
	txGetter TxGetter
}

func NewUserReadRepository(db *sqlx.DB, txGetter TxGetter) *UserReadRepository {
	return &UserReadRepository{db: db, txGetter: txGetter}
}

// GetByID returns models.ErrNotFound when no user has the id.
func (r *UserReadRepository) GetByID(ctx context.Context, id int64) (*models.User, error) {
	const query = `SELECT ` + userColumns + ` FROM users WHERE id = $1`

	var user models.User
	err := sqlx.GetContext(ctx, executor(ctx, r.db, r.txGetter), &user, query, id)
	logQuery(query, []any{id}, user.Username, err)
	if err != nil {
		return nil, translateError(err)
	}
	return &user, nil
}

// GetByUsername returns models.ErrNotFound when no user has the username.
func (r *UserReadRepository) GetByUsername(ctx context.Context, username string) (*models.User, error) {
	const query = `SELECT ` + userColumns + ` FROM users WHERE username = $1`

	var user models.User
	err := sqlx.GetContext(ctx, executor(ctx, r.db, r.txGetter), &user, query, username)
	logQuery(query, []any{username}, user.ID, err)
	if err != nil {
		return nil, translateError(err)
	}
	return &user, nil
}

// GetRoleName joins the user with its role and returns the role name.
func (r *UserReadRepository) GetRoleName(ctx context.Context, userID int64) (string, error) {
	const query = `
		SELECT r.name
		FROM users u
		JOIN roles r ON r.id = u.role_id
		WHERE u.id = $1
	`

	var name string
	err := sqlx.GetContext(ctx, executor(ctx, r.db, r.txGetter), &name, query, userID)
	logQuery(query, []any{userID}, name, err)
	if err != nil {
		return "", translateError(err)
	}
	return name, nil
}

// List returns every user ordered by id.
func (r *UserReadRepository) List(ctx context.Context) ([]models.User, error) {
	const query = `SELECT ` + userColumns + ` FROM users ORDER BY id`

	users := []models.User{}
	err := sqlx.SelectContext(ctx, executor(ctx, r.db, r.txGetter), &users, query)
	logQuery(query, nil, len(users), err)
	if err != nil {
		return nil, translateError(err)
	}
	return users, nil
}

// UserWriteRepository handles user write operations
type UserWriteRepository struct {
	db       *sqlx.DB
	txGetter TxGetter
}

func NewUserWriteRepository(db *sqlx.DB, txGetter TxGetter) *UserWriteRepository {
	return &UserWriteRepository{db: db, txGetter: txGetter}
}

// Create inserts a user and returns its id. A taken username yields
// models.ErrUniqueViolation, an unknown role models.ErrForeignKeyViolation.
func (r *UserWriteRepository) Create(ctx context.Context, username, passwordHash string, roleID int64) (int64, error) {
	const query = `
		INSERT INTO users (username, password, role_id)
		VALUES ($1, $2, $3)
		RETURNING id
	`

	var id int64
	err := sqlx.GetContext(ctx, executor(ctx, r.db, r.txGetter), &id, query, username, passwordHash, roleID)
	logQuery(query, []any{username, "***", roleID}, id, err)
	if err != nil {
		return 0, translateError(err)
	}
	return id, nil
}

// Update writes the user columns present in fields. Keys outside
// models.UserColumns are ignored.
func (r *UserWriteRepository) Update(ctx context.Context, id int64, fields map[string]any) (*models.User, error) {
	exec := executor(ctx, r.db, r.txGetter)

	query, args, ok := buildUpdate("users", models.UserColumns, fields, id, userColumns)
	if !ok {
		query = `SELECT ` + userColumns + ` FROM users WHERE id = $1`
		args = []any{id}
	}

	var user models.User
	err := sqlx.GetContext(ctx, exec, &user, query, args...)
	logQuery(query, args, user.ID, err)
	if err != nil {
		return nil, translateError(err)
	}
	return &user, nil
}

// Delete removes the user. It returns models.ErrNotFound when nothing was
// deleted and models.ErrForeignKeyViolation when posts still reference it.
func (r *UserWriteRepository) Delete(ctx context.Context, id int64) error {
	const query = `DELETE FROM users WHERE id = $1`

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
