package services

import (
	"context"
	"errors"

	"github.com/sbilibin2017/gw-blog/internal/commit"
	"github.com/sbilibin2017/gw-blog/internal/logger"
	"github.com/sbilibin2017/gw-blog/internal/models"
)

// PostReader defines read-only operations for posts.
type PostReader interface {
	GetByID(ctx context.Context, id int64) (*models.Post, error)
	List(ctx context.Context) ([]models.Post, error)
	ListByAuthor(ctx context.Context, authorID int64) ([]models.Post, error)
}

// PostWriter defines write operations for posts.
type PostWriter interface {
	Create(ctx context.Context, authorID int64, title, body string) (*models.Post, error)
	Update(ctx context.Context, id int64, fields map[string]any) (*models.Post, error)
	Delete(ctx context.Context, id int64) error
}

// AuthorReader loads the author of posts.
type AuthorReader interface {
	GetByID(ctx context.Context, id int64) (*models.User, error)
}

// PostService handles posts. Only the author may change or delete a post.
type PostService struct {
	reader  PostReader
	writer  PostWriter
	authors AuthorReader
	events  Publisher
}

// NewPostService creates a new PostService. events may be nil.
func NewPostService(reader PostReader, writer PostWriter, authors AuthorReader, events Publisher) *PostService {
	return &PostService{
		reader:  reader,
		writer:  writer,
		authors: authors,
		events:  events,
	}
}

// Create stores a post written by authorID.
func (svc *PostService) Create(ctx context.Context, authorID int64, title, body string) (*models.Post, error) {
	post, err := svc.writer.Create(ctx, authorID, title, body)
	if err != nil {
		if errors.Is(err, models.ErrForeignKeyViolation) {
			return nil, ErrUserNotFound
		}
		logger.Log.Errorw("failed to save post", "author_id", authorID, "err", err)
		return nil, err
	}
	svc.publish(ctx, models.EventPostCreated, post.ID, authorID)
	return post, nil
}

// List returns every post.
func (svc *PostService) List(ctx context.Context) ([]models.Post, error) {
	posts, err := svc.reader.List(ctx)
	if err != nil {
		logger.Log.Errorw("failed to list posts", "err", err)
		return nil, err
	}
	return posts, nil
}

// ListByAuthor returns ErrUserNotFound when the author does not exist.
func (svc *PostService) ListByAuthor(ctx context.Context, authorID int64) ([]models.Post, error) {
	if _, err := svc.authors.GetByID(ctx, authorID); err != nil {
		if errors.Is(err, models.ErrNotFound) {
			return nil, ErrUserNotFound
		}
		logger.Log.Errorw("failed to get author", "author_id", authorID, "err", err)
		return nil, err
	}

	posts, err := svc.reader.ListByAuthor(ctx, authorID)
	if err != nil {
		logger.Log.Errorw("failed to list posts of author", "author_id", authorID, "err", err)
		return nil, err
	}
	return posts, nil
}

// Get returns ErrPostNotFound when the id does not exist.
func (svc *PostService) Get(ctx context.Context, id int64) (*models.Post, error) {
	post, err := svc.reader.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, models.ErrNotFound) {
			return nil, ErrPostNotFound
		}
		logger.Log.Errorw("failed to get post", "id", id, "err", err)
		return nil, err
	}
	return post, nil
}

// Update overwrites the post columns present in fields on behalf of callerID.
func (svc *PostService) Update(ctx context.Context, callerID, id int64, fields map[string]any) (*models.Post, error) {
	if _, err := svc.authorized(ctx, callerID, id); err != nil {
		return nil, err
	}

	changes := make(map[string]any, len(models.PostColumns))
	for _, col := range models.PostColumns {
		if v, ok := fields[col]; ok {
			changes[col] = v
		}
	}

	post, err := svc.writer.Update(ctx, id, changes)
	if err != nil {
		if errors.Is(err, models.ErrNotFound) {
			return nil, ErrPostNotFound
		}
		logger.Log.Errorw("failed to update post", "id", id, "err", err)
		return nil, err
	}
	if len(changes) > 0 {
		svc.publish(ctx, models.EventPostUpdated, id, callerID)
	}
	return post, nil
}

// Delete removes the post on behalf of callerID.
func (svc *PostService) Delete(ctx context.Context, callerID, id int64) error {
	if _, err := svc.authorized(ctx, callerID, id); err != nil {
		return err
	}

	if err := svc.writer.Delete(ctx, id); err != nil {
		if errors.Is(err, models.ErrNotFound) {
			return ErrPostNotFound
		}
		logger.Log.Errorw("failed to delete post", "id", id, "err", err)
		return err
	}
	svc.publish(ctx, models.EventPostDeleted, id, callerID)
	return nil
}

func (svc *PostService) authorized(ctx context.Context, callerID, id int64) (*models.Post, error) {
	post, err := svc.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if post.AuthorID != callerID {
		logger.Log.Warnw("caller is not the author", "post_id", id, "caller_id", callerID)
		return nil, ErrNotPostAuthor
	}
	return post, nil
}

func (svc *PostService) publish(ctx context.Context, eventType string, postID, actorID int64) {
	if svc.events == nil {
		return
	}
	commit.AfterCommit(ctx, func(ctx context.Context) {
		svc.events.Publish(ctx, eventType, postID, actorID)
	})
}
