package handlers

import (
	"errors"
	"net/http"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/sbilibin2017/gw-blog/internal/services"
	"github.com/stretchr/testify/assert"
)

func TestLoginHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	tests := []struct {
		name         string
		body         string
		mockSetup    func(m *MockLoginer)
		expectedCode int
		expectedBody string
	}{
		{
			name: "success",
			body: `{"username":"john","password":"secret"}`,
			mockSetup: func(m *MockLoginer) {
				m.EXPECT().Login(gomock.Any(), "john", "secret").Return("token123", nil)
			},
			expectedCode: http.StatusOK,
			expectedBody: `{"access_token":"token123"}`,
		},
		{
			name: "bad credentials",
			body: `{"username":"john","password":"wrong"}`,
			mockSetup: func(m *MockLoginer) {
				m.EXPECT().Login(gomock.Any(), "john", "wrong").Return("", services.ErrInvalidCredentials)
			},
			expectedCode: http.StatusUnauthorized,
		},
		{
			name:         "missing password",
			body:         `{"username":"john"}`,
			expectedCode: http.StatusUnprocessableEntity,
			expectedBody: `{"password":["Missing data for required field."]}`,
		},
		{
			name: "internal error",
			body: `{"username":"john","password":"secret"}`,
			mockSetup: func(m *MockLoginer) {
				m.EXPECT().Login(gomock.Any(), "john", "secret").Return("", errors.New("db down"))
			},
			expectedCode: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockSvc := NewMockLoginer(ctrl)
			if tt.mockSetup != nil {
				tt.mockSetup(mockSvc)
			}

			rr := serve(http.MethodPost, "/auth/login", "/auth/login", tt.body, NewLoginHandler(mockSvc))

			assert.Equal(t, tt.expectedCode, rr.Code)
			if tt.expectedBody != "" {
				assert.JSONEq(t, tt.expectedBody, rr.Body.String())
			}
		})
	}
}
