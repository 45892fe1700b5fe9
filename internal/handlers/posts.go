package handlers

import (
	"context"
	"errors"
	"net/http"

	"github.com/sbilibin2017/gw-blog/internal/httperror"
	"github.com/sbilibin2017/gw-blog/internal/middlewares"
	"github.com/sbilibin2017/gw-blog/internal/models"
	"github.com/sbilibin2017/gw-blog/internal/schemas"
	"github.com/sbilibin2017/gw-blog/internal/services"
)

// PostCreator defines the interface for creating posts.
type PostCreator interface {
	Create(ctx context.Context, authorID int64, title, body string) (*models.Post, error)
}

// PostLister defines the interface for listing posts.
type PostLister interface {
	List(ctx context.Context) ([]models.Post, error)
}

// AuthorPostLister defines the interface for listing the posts of one user.
type AuthorPostLister interface {
	ListByAuthor(ctx context.Context, authorID int64) ([]models.Post, error)
}

// PostGetter defines the interface for loading a single post.
type PostGetter interface {
	Get(ctx context.Context, id int64) (*models.Post, error)
}

// PostUpdater defines the interface for partial post updates.
type PostUpdater interface {
	Update(ctx context.Context, callerID, id int64, fields map[string]any) (*models.Post, error)
}

// PostDeleter defines the interface for deleting posts.
type PostDeleter interface {
	Delete(ctx context.Context, callerID, id int64) error
}

// CreatePostRequest represents the JSON body for post creation
// swagger:model CreatePostRequest
type CreatePostRequest struct {
	// Title
	// required: true
	// default: Hello
	Title string `json:"title"`

	// Body
	// required: true
	// default: First post
	Body string `json:"body"`
}

// UpdatePostRequest represents the JSON body for a partial post update
// swagger:model UpdatePostRequest
type UpdatePostRequest struct {
	Title string `json:"title,omitempty"`
	Body  string `json:"body,omitempty"`
}

// CreatePostResponse is returned after a post is stored.
// swagger:model CreatePostResponse
type CreatePostResponse struct {
	// default: Post created!
	Message string `json:"message"`
	ID      int64  `json:"id"`
}

// PostsResponse wraps a post list.
// swagger:model PostsResponse
type PostsResponse struct {
	Posts []models.Post `json:"posts"`
}

// NewCreatePostHandler returns an HTTP handler for post creation.
// @Summary Create a post
// @Description Stores a post authored by the caller.
// @Tags posts
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param createPostRequest body handlers.CreatePostRequest true "Post creation request"
// @Success 201 {object} handlers.CreatePostResponse
// @Failure 401 {object} httperror.Response "Missing or invalid token"
// @Failure 422 {object} handlers.ValidationErrorResponse "Validation errors"
// @Router /posts/ [post]
func NewCreatePostHandler(svc PostCreator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		callerID, ok := middlewares.UserIDFromContext(r.Context())
		if !ok {
			httperror.Write(w, http.StatusUnauthorized, "")
			return
		}

		body, ok := readBody(w, r)
		if !ok {
			return
		}

		req, err := schemas.Load[schemas.CreatePost](body)
		if err != nil {
			writeSchemaError(w, err)
			return
		}

		post, err := svc.Create(r.Context(), callerID, *req.Title, *req.Body)
		if err != nil {
			if errors.Is(err, services.ErrUserNotFound) {
				httperror.Write(w, http.StatusNotFound, "Token subject not found.")
				return
			}
			writeInternalError(w, err)
			return
		}

		writeJSON(w, http.StatusCreated, CreatePostResponse{Message: "Post created!", ID: post.ID})
	}
}

// NewListPostsHandler returns an HTTP handler listing every post.
// @Summary List posts
// @Tags posts
// @Produce json
// @Success 200 {object} handlers.PostsResponse
// @Router /posts/ [get]
func NewListPostsHandler(svc PostLister) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		posts, err := svc.List(r.Context())
		if err != nil {
			writeInternalError(w, err)
			return
		}
		writePosts(w, posts)
	}
}

// NewListUserPostsHandler returns an HTTP handler listing the posts of one user.
// @Summary List the posts of a user
// @Tags users
// @Produce json
// @Param id path int true "User id"
// @Success 200 {object} handlers.PostsResponse
// @Failure 404 {object} httperror.Response "User not found"
// @Router /users/{id}/posts [get]
func NewListUserPostsHandler(svc AuthorPostLister) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := pathID(r, "id")
		if !ok {
			httperror.Write(w, http.StatusNotFound, "")
			return
		}

		posts, err := svc.ListByAuthor(r.Context(), id)
		if err != nil {
			if errors.Is(err, services.ErrUserNotFound) {
				httperror.Write(w, http.StatusNotFound, "")
				return
			}
			writeInternalError(w, err)
			return
		}
		writePosts(w, posts)
	}
}

// NewGetPostHandler returns an HTTP handler loading one post.
// @Summary Get a post
// @Tags posts
// @Produce json
// @Param id path int true "Post id"
// @Success 200 {object} models.Post
// @Failure 404 {object} httperror.Response "Post not found"
// @Router /posts/{id} [get]
func NewGetPostHandler(svc PostGetter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := pathID(r, "id")
		if !ok {
			httperror.Write(w, http.StatusNotFound, "")
			return
		}

		post, err := svc.Get(r.Context(), id)
		if err != nil {
			writePostError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, post)
	}
}

// NewUpdatePostHandler returns an HTTP handler for partial post updates.
// @Summary Update a post
// @Description Only the author may update a post. Unknown keys are ignored.
// @Tags posts
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Post id"
// @Param updatePostRequest body handlers.UpdatePostRequest true "Fields to update"
// @Success 200 {object} models.Post
// @Failure 401 {object} httperror.Response "Missing or invalid token"
// @Failure 403 {object} httperror.Response "Caller is not the author"
// @Failure 404 {object} httperror.Response "Post not found"
// @Failure 422 {object} handlers.ValidationErrorResponse "Validation errors"
// @Router /posts/{id} [patch]
func NewUpdatePostHandler(svc PostUpdater) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		callerID, ok := middlewares.UserIDFromContext(r.Context())
		if !ok {
			httperror.Write(w, http.StatusUnauthorized, "")
			return
		}

		id, ok := pathID(r, "id")
		if !ok {
			httperror.Write(w, http.StatusNotFound, "")
			return
		}

		body, ok := readBody(w, r)
		if !ok {
			return
		}

		fields, err := schemas.LoadPartial[schemas.CreatePost](body)
		if err != nil {
			writeSchemaError(w, err)
			return
		}

		post, err := svc.Update(r.Context(), callerID, id, fields)
		if err != nil {
			writePostError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, post)
	}
}

// NewDeletePostHandler returns an HTTP handler deleting a post.
// @Summary Delete a post
// @Description Only the author may delete a post.
// @Tags posts
// @Security BearerAuth
// @Param id path int true "Post id"
// @Success 204 "No Content"
// @Failure 401 {object} httperror.Response "Missing or invalid token"
// @Failure 403 {object} httperror.Response "Caller is not the author"
// @Failure 404 {object} httperror.Response "Post not found"
// @Router /posts/{id} [delete]
func NewDeletePostHandler(svc PostDeleter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		callerID, ok := middlewares.UserIDFromContext(r.Context())
		if !ok {
			httperror.Write(w, http.StatusUnauthorized, "")
			return
		}

		id, ok := pathID(r, "id")
		if !ok {
			httperror.Write(w, http.StatusNotFound, "")
			return
		}

		if err := svc.Delete(r.Context(), callerID, id); err != nil {
			writePostError(w, err)
			return
		}
		w.WriteHeader(http.StatusNoContent)
	}
}

func writePosts(w http.ResponseWriter, posts []models.Post) {
	if posts == nil {
		posts = []models.Post{}
	}
	writeJSON(w, http.StatusOK, PostsResponse{Posts: posts})
}

func writePostError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, services.ErrPostNotFound):
		httperror.Write(w, http.StatusNotFound, "")
	case errors.Is(err, services.ErrNotPostAuthor):
		httperror.Write(w, http.StatusForbidden, "Only the author may change this post.")
	default:
		writeInternalError(w, err)
	}
}
