package handlers_test

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v4"
	"github.com/google/uuid"
	"github.com/instructormatch/instructor_match/handlers"
	"github.com/instructormatch/instructor_match/models"
	"github.com/instructormatch/instructor_match/routes"
	"github.com/instructormatch/instructor_match/storage"
)

const testSecret = "handler-test-secret"

// newTestApp wires the full route surface against an in-memory store, the
// same way main does against postgres.
func newTestApp(t *testing.T) (*fiber.App, *storage.MemoryStorage) {
	t.Helper()
	t.Setenv("JWT_SECRET", testSecret)

	store := storage.NewMemoryStorage()
	h := handlers.New(store)

	app := fiber.New()
	routes.AuthRoutes(app, h)
	routes.ProfileRoutes(app, h)
	routes.MarketplaceRoutes(app, h)
	routes.ReviewRoutes(app, h)
	routes.NotificationRoutes(app, h)
	return app, store
}

func tokenFor(t *testing.T, userID uuid.UUID) string {
	t.Helper()
	claims := jwt.MapClaims{
		"user_id": userID.String(),
		"exp":     time.Now().Add(time.Hour).Unix(),
	}
	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(testSecret))
	if err != nil {
		t.Fatalf("sign token: %v", err)
	}
	return signed
}

// seedUser inserts a user directly; auth flow tests go through the API
// instead.
func seedUser(t *testing.T, store *storage.MemoryStorage, email string) models.User {
	t.Helper()
	user := models.User{
		Email:     email,
		Password:  "irrelevant",
		FirstName: "Test",
		LastName:  "User",
	}
	if err := store.CreateUser(&user); err != nil {
		t.Fatalf("CreateUser: %v", err)
	}
	return user
}

func doJSON(t *testing.T, app *fiber.App, method, path, token string, body interface{}) *http.Response {
	t.Helper()
	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			t.Fatalf("marshal body: %v", err)
		}
		reader = bytes.NewReader(payload)
	}
	req := httptest.NewRequest(method, path, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	resp, err := app.Test(req, -1)
	if err != nil {
		t.Fatalf("%s %s: %v", method, path, err)
	}
	return resp
}

func decodeBody(t *testing.T, resp *http.Response, out interface{}) {
	t.Helper()
	defer resp.Body.Close()
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		t.Fatalf("decode response: %v", err)
	}
}

func wantStatus(t *testing.T, resp *http.Response, want int) {
	t.Helper()
	if resp.StatusCode != want {
		raw, _ := io.ReadAll(resp.Body)
		t.Fatalf("status = %d, want %d (body: %s)", resp.StatusCode, want, raw)
	}
}
