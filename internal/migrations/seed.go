package migrations

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"

	"github.com/jmoiron/sqlx"
	"github.com/sbilibin2017/gw-blog/internal/logger"
	"golang.org/x/crypto/bcrypt"
	"gopkg.in/yaml.v3"
)

// SeedFile is the layout of a seed YAML file.
type SeedFile struct {
	Roles []string `yaml:"roles"`
	Users []struct {
		Username string `yaml:"username"`
		Password string `yaml:"password"`
		Role     string `yaml:"role"`
	} `yaml:"users"`
}

// SeedFromFile inserts the roles and users listed in path. Existing roles and
// usernames are left untouched.
func SeedFromFile(ctx context.Context, db *sqlx.DB, path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read seed file: %w", err)
	}
	var sf SeedFile
	if err := yaml.Unmarshal(data, &sf); err != nil {
		return fmt.Errorf("parse seed file: %w", err)
	}
	return Seed(ctx, db, sf)
}

// Seed inserts sf in a single transaction.
func Seed(ctx context.Context, db *sqlx.DB, sf SeedFile) error {
	tx, err := db.BeginTxx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	roleIDs := make(map[string]int64, len(sf.Roles))
	for _, name := range sf.Roles {
		id, err := ensureRole(ctx, tx, name)
		if err != nil {
			return err
		}
		roleIDs[name] = id
	}

	for _, u := range sf.Users {
		if u.Username == "" || u.Password == "" {
			continue
		}
		roleID, ok := roleIDs[u.Role]
		if !ok {
			if roleID, err = ensureRole(ctx, tx, u.Role); err != nil {
				return err
			}
			roleIDs[u.Role] = roleID
		}

		var exists bool
		if err := tx.GetContext(ctx, &exists, `SELECT EXISTS (SELECT 1 FROM users WHERE username = $1)`, u.Username); err != nil {
			return err
		}
		if exists {
			continue
		}

		hash, err := bcrypt.GenerateFromPassword([]byte(u.Password), bcrypt.DefaultCost)
		if err != nil {
			if errors.Is(err, bcrypt.ErrPasswordTooLong) {
				return fmt.Errorf("seed user %q: password is longer than 72 bytes", u.Username)
			}
			return fmt.Errorf("seed user %q: hash password: %w", u.Username, err)
		}
		if _, err := tx.ExecContext(ctx,
			`INSERT INTO users (username, password, role_id) VALUES ($1, $2, $3)`,
			u.Username, string(hash), roleID,
		); err != nil {
			return err
		}
		logger.Log.Infow("seeded user", "username", u.Username, "role", u.Role)
	}

	return tx.Commit()
}

func ensureRole(ctx context.Context, tx *sqlx.Tx, name string) (int64, error) {
	var id int64
	err := tx.GetContext(ctx, &id, `SELECT id FROM roles WHERE name = $1 ORDER BY id LIMIT 1`, name)
	if err == nil {
		return id, nil
	}
	if !errors.Is(err, sql.ErrNoRows) {
		return 0, err
	}
	if err := tx.GetContext(ctx, &id, `INSERT INTO roles (name) VALUES ($1) RETURNING id`, name); err != nil {
		return 0, err
	}
	logger.Log.Infow("seeded role", "name", name, "id", id)
	return id, nil
}
