package services

import (
	"context"

	"github.com/sbilibin2017/gw-blog/internal/commit"
	"github.com/sbilibin2017/gw-blog/internal/logger"
	"github.com/sbilibin2017/gw-blog/internal/models"
)

// RoleReader defines read-only operations for roles.
type RoleReader interface {
	List(ctx context.Context) ([]models.Role, error)
}

// RoleWriter defines write operations for roles.
type RoleWriter interface {
	Create(ctx context.Context, name string) (int64, error)
}

// RoleService handles roles.
type RoleService struct {
	reader RoleReader
	writer RoleWriter
	events Publisher
}

// NewRoleService creates a new RoleService. events may be nil.
func NewRoleService(reader RoleReader, writer RoleWriter, events Publisher) *RoleService {
	return &RoleService{reader: reader, writer: writer, events: events}
}

// Create stores a new role.
func (svc *RoleService) Create(ctx context.Context, name string) (int64, error) {
	id, err := svc.writer.Create(ctx, name)
	if err != nil {
		logger.Log.Errorw("failed to save role", "name", name, "err", err)
		return 0, err
	}
	if svc.events != nil {
		commit.AfterCommit(ctx, func(ctx context.Context) {
			svc.events.Publish(ctx, models.EventRoleCreated, id, 0)
		})
	}
	return id, nil
}

// List returns every role.
func (svc *RoleService) List(ctx context.Context) ([]models.Role, error) {
	roles, err := svc.reader.List(ctx)
	if err != nil {
		logger.Log.Errorw("failed to list roles", "err", err)
		return nil, err
	}
	return roles, nil
}
