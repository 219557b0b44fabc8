package handlers_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/require"

	"github.com/PEREIRAD01/backend-Pitstoppro/handlers"
	"github.com/PEREIRAD01/backend-Pitstoppro/repositories"
	"github.com/PEREIRAD01/backend-Pitstoppro/routes"
)

const testSecret = "test-secret"

func newTestApp() (*fiber.App, *repositories.InMemoryUserStore, *repositories.InMemoryVehicleStore) {
	users := repositories.NewInMemoryUserStore()
	vehicles := repositories.NewInMemoryVehicleStore()

	app := fiber.New(fiber.Config{ErrorHandler: handlers.ErrorHandler})
	auth := handlers.NewAuthHandler(users, testSecret, time.Hour)
	routes.SetupRoutes(app, auth, handlers.NewVehicleHandler(vehicles), testSecret)
	return app, users, vehicles
}

func doJSON(t *testing.T, app *fiber.App, method, target, token string, body interface{}) *http.Response {
	t.Helper()

	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, target, &buf)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	return resp
}

func decodeBody(t *testing.T, resp *http.Response, out interface{}) {
	t.Helper()
	require.NoError(t, json.NewDecoder(resp.Body).Decode(out))
}

// registerUser registers a fresh account and returns its bearer token.
func registerUser(t *testing.T, app *fiber.App, email string) string {
	t.Helper()

	resp := doJSON(t, app, http.MethodPost, "/auth/register", "", map[string]string{
		"email":       email,
		"password":    "correct-horse",
		"displayName": "Test User",
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	var body struct {
		Token string `json:"token"`
	}
	decodeBody(t, resp, &body)
	require.NotEmpty(t, body.Token)
	return body.Token
}
