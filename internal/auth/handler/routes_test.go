package handler_test

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/triquetrx/auth-microservice-sbm/config"
	"github.com/triquetrx/auth-microservice-sbm/internal/auth/handler"
	"github.com/triquetrx/auth-microservice-sbm/internal/auth/service"
	"github.com/triquetrx/auth-microservice-sbm/internal/mocks"

	"github.com/gofiber/fiber/v2"
	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestRegisterRoutes verifies that every boundary operation is mounted.
func TestRegisterRoutes(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockUserRepository(ctrl)
	tokens := service.NewTokenService("test-secret", 300)
	cfg := &config.Config{}
	userService := service.NewUserService(mockRepo, tokens, cfg, nil)
	sessionService := service.NewSessionService(mockRepo, tokens, nil)
	authHandler := handler.NewAuthHandler(userService, sessionService, nil)

	app := fiber.New()
	handler.RegisterRoutes(app, authHandler)

	testCases := []struct {
		method string
		path   string
	}{
		{http.MethodPost, "/authenticate"},
		{http.MethodGet, "/validate"},
		{http.MethodPost, "/register"},
		{http.MethodPost, "/change-password"},
		{http.MethodPost, "/check-password"},
		{http.MethodPut, "/forgot-password"},
		{http.MethodPut, "/update-user"},
	}

	for _, tc := range testCases {
		t.Run(fmt.Sprintf("%s_%s_exists", tc.method, tc.path), func(t *testing.T) {
			req := httptest.NewRequest(tc.method, tc.path, nil)
			resp, err := app.Test(req)
			require.NoError(t, err)

			// We only care that the route exists. A 404 means it doesn't.
			// The actual handlers will return other codes (e.g., 400 Bad Request
			// for missing body), which is fine for this existence check.
			assert.NotEqual(t, http.StatusNotFound, resp.StatusCode)
		})
	}
}
