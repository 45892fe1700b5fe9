package services_test

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/sbilibin2017/gw-blog/internal/commit"
	"github.com/sbilibin2017/gw-blog/internal/models"
	"github.com/sbilibin2017/gw-blog/internal/services"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

type userMocks struct {
	reader *services.MockUserReader
	writer *services.MockUserWriter
	cache  *services.MockRoleNameCache
	events *services.MockPublisher
}

func newUserService(t *testing.T) (*services.UserService, userMocks) {
	ctrl := gomock.NewController(t)
	m := userMocks{
		reader: services.NewMockUserReader(ctrl),
		writer: services.NewMockUserWriter(ctrl),
		cache:  services.NewMockRoleNameCache(ctrl),
		events: services.NewMockPublisher(ctrl),
	}
	return services.NewUserService(m.reader, m.writer, m.cache, m.events), m
}

func TestUserService_Create(t *testing.T) {
	tests := []struct {
		name      string
		writerErr error
		wantErr   error
	}{
		{name: "success"},
		{name: "duplicate username", writerErr: fmt.Errorf("%w: users_username_key", models.ErrUniqueViolation), wantErr: services.ErrUserAlreadyExists},
		{name: "unknown role", writerErr: models.ErrForeignKeyViolation, wantErr: services.ErrRoleDoesNotExist},
		{name: "db failure", writerErr: errors.New("db down"), wantErr: errors.New("db down")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, m := newUserService(t)

			var id int64
			if tt.writerErr == nil {
				id = 7
				m.events.EXPECT().Publish(gomock.Any(), models.EventUserCreated, int64(7), int64(0))
			}
			m.writer.EXPECT().
				Create(gomock.Any(), "alice", gomock.Any(), int64(1)).
				DoAndReturn(func(_ context.Context, _ string, hash string, _ int64) (int64, error) {
					assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(hash), []byte("secret")))
					return id, tt.writerErr
				})

			got, err := svc.Create(context.Background(), "alice", "secret", 1)
			if tt.wantErr != nil {
				assert.EqualError(t, err, tt.wantErr.Error())
				return
			}
			require.NoError(t, err)
			assert.Equal(t, int64(7), got)
		})
	}
}

func TestUserService_Get(t *testing.T) {
	svc, m := newUserService(t)
	ctx := context.Background()

	m.reader.EXPECT().GetByID(gomock.Any(), int64(1)).Return(&models.User{ID: 1, Username: "alice"}, nil)
	m.reader.EXPECT().GetByID(gomock.Any(), int64(2)).Return(nil, models.ErrNotFound)

	user, err := svc.Get(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, "alice", user.Username)

	_, err = svc.Get(ctx, 2)
	assert.ErrorIs(t, err, services.ErrUserNotFound)
}

func TestUserService_List(t *testing.T) {
	svc, m := newUserService(t)

	m.reader.EXPECT().List(gomock.Any()).Return([]models.User{{ID: 1}, {ID: 2}}, nil)

	users, err := svc.List(context.Background())
	require.NoError(t, err)
	assert.Len(t, users, 2)
}

func TestUserService_Update(t *testing.T) {
	ctx := context.Background()

	t.Run("unknown keys are ignored", func(t *testing.T) {
		svc, m := newUserService(t)

		m.writer.EXPECT().
			Update(gomock.Any(), int64(1), map[string]any{"username": "bob"}).
			Return(&models.User{ID: 1, Username: "bob", RoleID: 2}, nil)
		m.events.EXPECT().Publish(gomock.Any(), models.EventUserUpdated, int64(1), int64(0))

		user, err := svc.Update(ctx, 1, map[string]any{"username": "bob", "email": "bob@example.com", "id": int64(5)})
		require.NoError(t, err)
		assert.Equal(t, "bob", user.Username)
		assert.Equal(t, int64(2), user.RoleID)
	})

	t.Run("only unknown keys", func(t *testing.T) {
		svc, m := newUserService(t)

		m.writer.EXPECT().
			Update(gomock.Any(), int64(1), map[string]any{}).
			Return(&models.User{ID: 1, Username: "alice"}, nil)

		user, err := svc.Update(ctx, 1, map[string]any{"nickname": "al"})
		require.NoError(t, err)
		assert.Equal(t, "alice", user.Username)
	})

	t.Run("password is hashed", func(t *testing.T) {
		svc, m := newUserService(t)

		m.writer.EXPECT().
			Update(gomock.Any(), int64(1), gomock.Any()).
			DoAndReturn(func(_ context.Context, _ int64, fields map[string]any) (*models.User, error) {
				hash, ok := fields["password"].(string)
				require.True(t, ok)
				assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(hash), []byte("new-secret")))
				return &models.User{ID: 1, Username: "alice"}, nil
			})
		m.events.EXPECT().Publish(gomock.Any(), models.EventUserUpdated, int64(1), int64(0))

		_, err := svc.Update(ctx, 1, map[string]any{"password": "new-secret"})
		require.NoError(t, err)
	})

	t.Run("non string password", func(t *testing.T) {
		svc, _ := newUserService(t)

		_, err := svc.Update(ctx, 1, map[string]any{"password": int64(1234)})
		assert.ErrorIs(t, err, services.ErrInvalidPassword)
	})

	t.Run("role change invalidates cache", func(t *testing.T) {
		svc, m := newUserService(t)

		m.writer.EXPECT().
			Update(gomock.Any(), int64(1), map[string]any{"role_id": int64(2)}).
			Return(&models.User{ID: 1, RoleID: 2}, nil)
		m.cache.EXPECT().DeleteRoleName(gomock.Any(), int64(1)).Return(nil)
		m.events.EXPECT().Publish(gomock.Any(), models.EventUserUpdated, int64(1), int64(0))

		_, err := svc.Update(ctx, 1, map[string]any{"role_id": int64(2)})
		require.NoError(t, err)
	})

	t.Run("errors", func(t *testing.T) {
		cases := map[error]error{
			models.ErrNotFound:            services.ErrUserNotFound,
			models.ErrUniqueViolation:     services.ErrUserAlreadyExists,
			models.ErrForeignKeyViolation: services.ErrRoleDoesNotExist,
		}
		for repoErr, wantErr := range cases {
			svc, m := newUserService(t)
			m.writer.EXPECT().Update(gomock.Any(), int64(9), gomock.Any()).Return(nil, repoErr)

			_, err := svc.Update(ctx, 9, map[string]any{"username": "x"})
			assert.ErrorIs(t, err, wantErr)
		}
	})
}

func TestUserService_Delete(t *testing.T) {
	ctx := context.Background()
	svc, m := newUserService(t)

	gomock.InOrder(
		m.writer.EXPECT().Delete(gomock.Any(), int64(1)).Return(nil),
		m.writer.EXPECT().Delete(gomock.Any(), int64(1)).Return(models.ErrNotFound),
		m.writer.EXPECT().Delete(gomock.Any(), int64(2)).Return(models.ErrForeignKeyViolation),
	)
	m.cache.EXPECT().DeleteRoleName(gomock.Any(), int64(1)).Return(nil)
	m.events.EXPECT().Publish(gomock.Any(), models.EventUserDeleted, int64(1), int64(0))

	assert.NoError(t, svc.Delete(ctx, 1))
	assert.ErrorIs(t, svc.Delete(ctx, 1), services.ErrUserNotFound)
	assert.ErrorIs(t, svc.Delete(ctx, 2), services.ErrUserHasPosts)
}

func TestUserService_RoleName(t *testing.T) {
	ctx := context.Background()

	t.Run("cache hit skips the database", func(t *testing.T) {
		svc, m := newUserService(t)
		m.cache.EXPECT().GetRoleName(gomock.Any(), int64(1)).Return("admin", nil)

		name, err := svc.RoleName(ctx, 1)
		require.NoError(t, err)
		assert.Equal(t, "admin", name)
	})

	t.Run("cache miss loads and stores", func(t *testing.T) {
		svc, m := newUserService(t)
		m.cache.EXPECT().GetRoleName(gomock.Any(), int64(1)).Return("", models.ErrCacheMiss)
		m.reader.EXPECT().GetRoleName(gomock.Any(), int64(1)).Return("normal", nil)
		m.cache.EXPECT().SetRoleName(gomock.Any(), int64(1), "normal").Return(nil)

		name, err := svc.RoleName(ctx, 1)
		require.NoError(t, err)
		assert.Equal(t, "normal", name)
	})

	t.Run("cache failure falls back to the database", func(t *testing.T) {
		svc, m := newUserService(t)
		m.cache.EXPECT().GetRoleName(gomock.Any(), int64(1)).Return("", errors.New("redis down"))
		m.reader.EXPECT().GetRoleName(gomock.Any(), int64(1)).Return("admin", nil)
		m.cache.EXPECT().SetRoleName(gomock.Any(), int64(1), "admin").Return(errors.New("redis down"))

		name, err := svc.RoleName(ctx, 1)
		require.NoError(t, err)
		assert.Equal(t, "admin", name)
	})

	t.Run("unknown user", func(t *testing.T) {
		svc, m := newUserService(t)
		m.cache.EXPECT().GetRoleName(gomock.Any(), int64(5)).Return("", models.ErrCacheMiss)
		m.reader.EXPECT().GetRoleName(gomock.Any(), int64(5)).Return("", models.ErrNotFound)

		_, err := svc.RoleName(ctx, 5)
		assert.ErrorIs(t, err, services.ErrUserNotFound)
	})

	t.Run("without cache", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		reader := services.NewMockUserReader(ctrl)
		svc := services.NewUserService(reader, services.NewMockUserWriter(ctrl), nil, nil)
		reader.EXPECT().GetRoleName(gomock.Any(), int64(1)).Return("admin", nil)

		name, err := svc.RoleName(ctx, 1)
		require.NoError(t, err)
		assert.Equal(t, "admin", name)
	})
}

func TestUserService_PasswordTooLong(t *testing.T) {
	ctx := context.Background()
	svc, _ := newUserService(t)
	long := strings.Repeat("a", 73)

	_, err := svc.Create(ctx, "alice", long, 1)
	assert.ErrorIs(t, err, services.ErrPasswordTooLong)

	_, err = svc.Update(ctx, 1, map[string]any{"password": long})
	assert.ErrorIs(t, err, services.ErrPasswordTooLong)
}

func TestUserService_AfterCommit(t *testing.T) {
	t.Run("delete", func(t *testing.T) {
		svc, m := newUserService(t)
		ctx, hooks := commit.WithHooks(context.Background())

		m.writer.EXPECT().Delete(gomock.Any(), int64(1)).Return(nil)
		m.cache.EXPECT().DeleteRoleName(gomock.Any(), int64(1)).Return(nil)

		require.NoError(t, svc.Delete(ctx, 1))

		m.cache.EXPECT().DeleteRoleName(gomock.Any(), int64(1)).Return(nil)
		m.events.EXPECT().Publish(gomock.Any(), models.EventUserDeleted, int64(1), int64(0))
		hooks.Run(ctx)
	})

	t.Run("rolled back update publishes nothing", func(t *testing.T) {
		svc, m := newUserService(t)
		ctx, _ := commit.WithHooks(context.Background())

		m.writer.EXPECT().
			Update(gomock.Any(), int64(1), map[string]any{"role_id": int64(2)}).
			Return(&models.User{ID: 1, RoleID: 2}, nil)
		m.cache.EXPECT().DeleteRoleName(gomock.Any(), int64(1)).Return(nil)

		_, err := svc.Update(ctx, 1, map[string]any{"role_id": int64(2)})
		require.NoError(t, err)
	})
}
