package handlers

import (
	"bytes"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/golang/mock/gomock"
	"github.com/sbilibin2017/gw-blog/internal/middlewares"
	"github.com/sbilibin2017/gw-blog/internal/models"
	"github.com/sbilibin2017/gw-blog/internal/services"
	"github.com/stretchr/testify/assert"
)

// serveAs runs the handler with callerID stored in the request context. A zero
// callerID leaves the request anonymous.
func serveAs(callerID int64, method, pattern, target, body string, h http.HandlerFunc) *httptest.ResponseRecorder {
	r := chi.NewRouter()
	r.Method(method, pattern, h)
	req := httptest.NewRequest(method, target, bytes.NewBufferString(body))
	if callerID != 0 {
		req = req.WithContext(middlewares.WithUserID(req.Context(), callerID))
	}
	rr := httptest.NewRecorder()
	r.ServeHTTP(rr, req)
	return rr
}

var samplePost = models.Post{
	ID:       10,
	Title:    "Hello",
	Body:     "First post",
	Created:  time.Date(2024, 1, 2, 3, 4, 5, 0, time.UTC),
	AuthorID: 1,
}

const samplePostJSON = `{"id":10,"title":"Hello","body":"First post","created":"2024-01-02T03:04:05Z","author_id":1}`

func TestCreatePostHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	tests := []struct {
		name         string
		callerID     int64
		body         string
		mockSetup    func(m *MockPostCreator)
		expectedCode int
		expectedBody string
	}{
		{
			name:     "success",
			callerID: 1,
			body:     `{"title":"Hello","body":"First post"}`,
			mockSetup: func(m *MockPostCreator) {
				m.EXPECT().Create(gomock.Any(), int64(1), "Hello", "First post").Return(&samplePost, nil)
			},
			expectedCode: http.StatusCreated,
			expectedBody: `{"message":"Post created!","id":10}`,
		},
		{
			name:         "anonymous",
			body:         `{"title":"Hello","body":"First post"}`,
			expectedCode: http.StatusUnauthorized,
		},
		{
			name:         "missing body",
			callerID:     1,
			body:         `{"title":"Hello"}`,
			expectedCode: http.StatusUnprocessableEntity,
			expectedBody: `{"body":["Missing data for required field."]}`,
		},
		{
			name:     "author vanished",
			callerID: 1,
			body:     `{"title":"Hello","body":"First post"}`,
			mockSetup: func(m *MockPostCreator) {
				m.EXPECT().Create(gomock.Any(), int64(1), "Hello", "First post").Return(nil, services.ErrUserNotFound)
			},
			expectedCode: http.StatusNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockSvc := NewMockPostCreator(ctrl)
			if tt.mockSetup != nil {
				tt.mockSetup(mockSvc)
			}

			rr := serveAs(tt.callerID, http.MethodPost, "/posts/", "/posts/", tt.body, NewCreatePostHandler(mockSvc))

			assert.Equal(t, tt.expectedCode, rr.Code)
			if tt.expectedBody != "" {
				assert.JSONEq(t, tt.expectedBody, rr.Body.String())
			}
		})
	}
}

func TestListPostsHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockSvc := NewMockPostLister(ctrl)
	mockSvc.EXPECT().List(gomock.Any()).Return([]models.Post{samplePost}, nil)

	rr := serve(http.MethodGet, "/posts/", "/posts/", "", NewListPostsHandler(mockSvc))

	assert.Equal(t, http.StatusOK, rr.Code)
	assert.JSONEq(t, `{"posts":[`+samplePostJSON+`]}`, rr.Body.String())
}

func TestListUserPostsHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	t.Run("success", func(t *testing.T) {
		mockSvc := NewMockAuthorPostLister(ctrl)
		mockSvc.EXPECT().ListByAuthor(gomock.Any(), int64(1)).Return(nil, nil)

		rr := serve(http.MethodGet, "/users/{id}/posts", "/users/1/posts", "", NewListUserPostsHandler(mockSvc))

		assert.Equal(t, http.StatusOK, rr.Code)
		assert.JSONEq(t, `{"posts":[]}`, rr.Body.String())
	})

	t.Run("unknown user", func(t *testing.T) {
		mockSvc := NewMockAuthorPostLister(ctrl)
		mockSvc.EXPECT().ListByAuthor(gomock.Any(), int64(8)).Return(nil, services.ErrUserNotFound)

		rr := serve(http.MethodGet, "/users/{id}/posts", "/users/8/posts", "", NewListUserPostsHandler(mockSvc))

		assert.Equal(t, http.StatusNotFound, rr.Code)
	})
}

func TestGetPostHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	t.Run("found", func(t *testing.T) {
		mockSvc := NewMockPostGetter(ctrl)
		mockSvc.EXPECT().Get(gomock.Any(), int64(10)).Return(&samplePost, nil)

		rr := serve(http.MethodGet, "/posts/{id}", "/posts/10", "", NewGetPostHandler(mockSvc))

		assert.Equal(t, http.StatusOK, rr.Code)
		assert.JSONEq(t, samplePostJSON, rr.Body.String())
	})

	t.Run("not found", func(t *testing.T) {
		mockSvc := NewMockPostGetter(ctrl)
		mockSvc.EXPECT().Get(gomock.Any(), int64(11)).Return(nil, services.ErrPostNotFound)

		rr := serve(http.MethodGet, "/posts/{id}", "/posts/11", "", NewGetPostHandler(mockSvc))

		assert.Equal(t, http.StatusNotFound, rr.Code)
	})
}

func TestUpdatePostHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	tests := []struct {
		name         string
		callerID     int64
		target       string
		body         string
		mockSetup    func(m *MockPostUpdater)
		expectedCode int
		expectedBody string
	}{
		{
			name:     "author updates",
			callerID: 1,
			target:   "/posts/10",
			body:     `{"title":"Hello","author_id":5}`,
			mockSetup: func(m *MockPostUpdater) {
				m.EXPECT().Update(gomock.Any(), int64(1), int64(10), map[string]any{"title": "Hello"}).Return(&samplePost, nil)
			},
			expectedCode: http.StatusOK,
			expectedBody: samplePostJSON,
		},
		{
			name:     "someone else",
			callerID: 2,
			target:   "/posts/10",
			body:     `{"title":"Mine"}`,
			mockSetup: func(m *MockPostUpdater) {
				m.EXPECT().Update(gomock.Any(), int64(2), int64(10), gomock.Any()).Return(nil, services.ErrNotPostAuthor)
			},
			expectedCode: http.StatusForbidden,
		},
		{
			name:         "anonymous",
			target:       "/posts/10",
			body:         `{"title":"Mine"}`,
			expectedCode: http.StatusUnauthorized,
		},
		{
			name:         "wrong type",
			callerID:     1,
			target:       "/posts/10",
			body:         `{"title":5}`,
			expectedCode: http.StatusUnprocessableEntity,
			expectedBody: `{"title":["Not a valid string."]}`,
		},
		{
			name:     "internal error",
			callerID: 1,
			target:   "/posts/10",
			body:     `{"body":"x"}`,
			mockSetup: func(m *MockPostUpdater) {
				m.EXPECT().Update(gomock.Any(), int64(1), int64(10), gomock.Any()).Return(nil, errors.New("db down"))
			},
			expectedCode: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockSvc := NewMockPostUpdater(ctrl)
			if tt.mockSetup != nil {
				tt.mockSetup(mockSvc)
			}

			rr := serveAs(tt.callerID, http.MethodPatch, "/posts/{id}", tt.target, tt.body, NewUpdatePostHandler(mockSvc))

			assert.Equal(t, tt.expectedCode, rr.Code)
			if tt.expectedBody != "" {
				assert.JSONEq(t, tt.expectedBody, rr.Body.String())
			}
		})
	}
}

func TestDeletePostHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	t.Run("author deletes", func(t *testing.T) {
		mockSvc := NewMockPostDeleter(ctrl)
		mockSvc.EXPECT().Delete(gomock.Any(), int64(1), int64(10)).Return(nil)

		rr := serveAs(1, http.MethodDelete, "/posts/{id}", "/posts/10", "", NewDeletePostHandler(mockSvc))

		assert.Equal(t, http.StatusNoContent, rr.Code)
		assert.Empty(t, rr.Body.String())
	})

	t.Run("missing post", func(t *testing.T) {
		mockSvc := NewMockPostDeleter(ctrl)
		mockSvc.EXPECT().Delete(gomock.Any(), int64(1), int64(99)).Return(services.ErrPostNotFound)

		rr := serveAs(1, http.MethodDelete, "/posts/{id}", "/posts/99", "", NewDeletePostHandler(mockSvc))

		assert.Equal(t, http.StatusNotFound, rr.Code)
	})

	t.Run("someone else", func(t *testing.T) {
		mockSvc := NewMockPostDeleter(ctrl)
		mockSvc.EXPECT().Delete(gomock.Any(), int64(2), int64(10)).Return(services.ErrNotPostAuthor)

		rr := serveAs(2, http.MethodDelete, "/posts/{id}", "/posts/10", "", NewDeletePostHandler(mockSvc))

		assert.Equal(t, http.StatusForbidden, rr.Code)
	})
}
