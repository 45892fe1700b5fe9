package services

import (
	"context"
	"errors"

	"github.com/sbilibin2017/gw-blog/internal/commit"
	"github.com/sbilibin2017/gw-blog/internal/logger"
	"github.com/sbilibin2017/gw-blog/internal/models"
	"golang.org/x/crypto/bcrypt"
)

// UserReader defines read-only operations for users.
type UserReader interface {
	GetByID(ctx context.Context, id int64) (*models.User, error)
	GetRoleName(ctx context.Context, userID int64) (string, error)
	List(ctx context.Context) ([]models.User, error)
}

// UserWriter defines write operations for users.
type UserWriter interface {
	Create(ctx context.Context, username, passwordHash string, roleID int64) (int64, error)
	Update(ctx context.Context, id int64, fields map[string]any) (*models.User, error)
	Delete(ctx context.Context, id int64) error
}

// RoleNameCache caches the role name of users.
type RoleNameCache interface {
	GetRoleName(ctx context.Context, userID int64) (string, error)
	SetRoleName(ctx context.Context, userID int64, roleName string) error
	DeleteRoleName(ctx context.Context, userID int64) error
}

// UserService handles user CRUD and role lookups.
type UserService struct {
	reader UserReader
	writer UserWriter
	cache  RoleNameCache
	events Publisher
}

// NewUserService creates a new UserService. cache and events may be nil.
func NewUserService(reader UserReader, writer UserWriter, cache RoleNameCache, events Publisher) *UserService {
	return &UserService{
		reader: reader,
		writer: writer,
		cache:  cache,
		events: events,
	}
}

// Create hashes the password and stores a new user.
func (svc *UserService) Create(ctx context.Context, username, password string, roleID int64) (int64, error) {
	hashedPassword, err := hashPassword(password)
	if err != nil {
		return 0, err
	}

	id, err := svc.writer.Create(ctx, username, hashedPassword, roleID)
	if err != nil {
		switch {
		case errors.Is(err, models.ErrUniqueViolation):
			logger.Log.Warnw("user already exists", "username", username)
			return 0, ErrUserAlreadyExists
		case errors.Is(err, models.ErrForeignKeyViolation):
			logger.Log.Warnw("role does not exist", "role_id", roleID)
			return 0, ErrRoleDoesNotExist
		}
		logger.Log.Errorw("failed to save user", "err", err)
		return 0, err
	}

	svc.publish(ctx, models.EventUserCreated, id)
	return id, nil
}

// List returns every user.
func (svc *UserService) List(ctx context.Context) ([]models.User, error) {
	users, err := svc.reader.List(ctx)
	if err != nil {
		logger.Log.Errorw("failed to list users", "err", err)
		return nil, err
	}
	return users, nil
}

// Get returns ErrUserNotFound when the id does not exist.
func (svc *UserService) Get(ctx context.Context, id int64) (*models.User, error) {
	user, err := svc.reader.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, models.ErrNotFound) {
			return nil, ErrUserNotFound
		}
		logger.Log.Errorw("failed to get user", "id", id, "err", err)
		return nil, err
	}
	return user, nil
}

// Update overwrites the user columns present in fields. Unknown keys are
// ignored; a new password is hashed before it is stored.
func (svc *UserService) Update(ctx context.Context, id int64, fields map[string]any) (*models.User, error) {
	changes := make(map[string]any, len(models.UserColumns))
	for _, col := range models.UserColumns {
		if v, ok := fields[col]; ok {
			changes[col] = v
		}
	}

	if raw, ok := changes["password"]; ok {
		password, isString := raw.(string)
		if !isString {
			return nil, ErrInvalidPassword
		}
		hashed, err := hashPassword(password)
		if err != nil {
			return nil, err
		}
		changes["password"] = hashed
	}

	user, err := svc.writer.Update(ctx, id, changes)
	if err != nil {
		switch {
		case errors.Is(err, models.ErrNotFound):
			return nil, ErrUserNotFound
		case errors.Is(err, models.ErrUniqueViolation):
			return nil, ErrUserAlreadyExists
		case errors.Is(err, models.ErrForeignKeyViolation):
			return nil, ErrRoleDoesNotExist
		}
		logger.Log.Errorw("failed to update user", "id", id, "err", err)
		return nil, err
	}

	if _, ok := changes["role_id"]; ok {
		svc.forgetRole(ctx, id)
	}
	if len(changes) > 0 {
		svc.publish(ctx, models.EventUserUpdated, id)
	}
	return user, nil
}

// Delete removes the user. Users that still author posts are kept and
// ErrUserHasPosts is returned.
func (svc *UserService) Delete(ctx context.Context, id int64) error {
	if err := svc.writer.Delete(ctx, id); err != nil {
		switch {
		case errors.Is(err, models.ErrNotFound):
			return ErrUserNotFound
		case errors.Is(err, models.ErrForeignKeyViolation):
			return ErrUserHasPosts
		}
		logger.Log.Errorw("failed to delete user", "id", id, "err", err)
		return err
	}

	svc.forgetRole(ctx, id)
	svc.publish(ctx, models.EventUserDeleted, id)
	return nil
}

// RoleName returns the role name of userID, consulting the cache first.
func (svc *UserService) RoleName(ctx context.Context, userID int64) (string, error) {
	if svc.cache != nil {
		name, err := svc.cache.GetRoleName(ctx, userID)
		if err == nil {
			return name, nil
		}
		if !errors.Is(err, models.ErrCacheMiss) {
			logger.Log.Errorw("failed to read role cache", "user_id", userID, "err", err)
		}
	}

	name, err := svc.reader.GetRoleName(ctx, userID)
	if err != nil {
		if errors.Is(err, models.ErrNotFound) {
			return "", ErrUserNotFound
		}
		logger.Log.Errorw("failed to get role name", "user_id", userID, "err", err)
		return "", err
	}

	if svc.cache != nil {
		if err := svc.cache.SetRoleName(ctx, userID, name); err != nil {
			logger.Log.Errorw("failed to cache role name", "user_id", userID, "err", err)
		}
	}
	return name, nil
}

// forgetRole drops the cached role name now and once more after commit,
// since a concurrent request may re-cache the old role before then.
func (svc *UserService) forgetRole(ctx context.Context, userID int64) {
	if svc.cache == nil {
		return
	}
	forget := func(ctx context.Context) {
		if err := svc.cache.DeleteRoleName(ctx, userID); err != nil {
			logger.Log.Errorw("failed to invalidate role cache", "user_id", userID, "err", err)
		}
	}
	forget(ctx)
	commit.Defer(ctx, forget)
}

func (svc *UserService) publish(ctx context.Context, eventType string, userID int64) {
	if svc.events == nil {
		return
	}
	commit.AfterCommit(ctx, func(ctx context.Context) {
		svc.events.Publish(ctx, eventType, userID, 0)
	})
}

// hashPassword returns ErrPasswordTooLong for passwords bcrypt cannot hash.
func hashPassword(password string) (string, error) {
	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		if errors.Is(err, bcrypt.ErrPasswordTooLong) {
			return "", ErrPasswordTooLong
		}
		logger.Log.Errorw("failed to hash password", "err", err)
		return "", err
	}
	return string(hashed), nil
}
