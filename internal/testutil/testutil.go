// Package testutil wires the API against an in-memory SQLite database so
// handler and store tests exercise the real migrations and routing.
package testutil

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"time"

	"github.com/jmoiron/sqlx"
	_ "modernc.org/sqlite"

	"github.com/biasbuster/api/internal/auth"
	"github.com/biasbuster/api/internal/db"
	"github.com/biasbuster/api/internal/handlers"
	"github.com/biasbuster/api/internal/middleware"
	"github.com/biasbuster/api/internal/store"
)

// TokenSecret signs test tokens; TokenTTL mirrors the production default.
const (
	TokenSecret = "test-secret"
	TokenTTL    = 30 * time.Minute
)

// OpenTestDB opens a fresh in-memory SQLite database with the schema
// applied through the regular migrations.
func OpenTestDB(t *testing.T) *sqlx.DB {
	t.Helper()

	conn, err := sqlx.Open("sqlite", ":memory:")
	if err != nil {
		t.Fatalf("open test database: %v", err)
	}
	// A :memory: database lives inside its connection; a second
	// connection would see an empty schema.
	conn.SetMaxOpenConns(1)
	conn.SetMaxIdleConns(1)
	t.Cleanup(func() { conn.Close() })

	if err := db.Migrate(context.Background(), conn, db.DialectSQLite); err != nil {
		t.Fatalf("migrate test database: %v", err)
	}

	return conn
}

// NewAPI assembles the full HTTP surface against a fresh database.
func NewAPI(t *testing.T) http.Handler {
	t.Helper()

	conn := OpenTestDB(t)
	tokens := auth.NewTokenService(TokenSecret, TokenTTL)
	users := store.NewUserStore(conn)
	analyses := store.NewAnalysisStore(conn)

	h := handlers.NewHandler(users, analyses, tokens)
	return handlers.Routes(h, middleware.NewAuthenticator(tokens, users))
}

// DoJSON performs a JSON request against the handler. An empty token
// leaves the Authorization header unset.
func DoJSON(t *testing.T, h http.Handler, method, path string, body any, token string) *httptest.ResponseRecorder {
	t.Helper()

	var payload []byte
	if body != nil {
		raw, err := json.Marshal(body)
		if err != nil {
			t.Fatalf("marshal request body: %v", err)
		}
		payload = raw
	}

	req := httptest.NewRequest(method, path, bytes.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	w := httptest.NewRecorder()
	h.ServeHTTP(w, req)
	return w
}

// DoForm posts form-encoded values, as the login endpoint expects.
func DoForm(t *testing.T, h http.Handler, path string, form url.Values) *httptest.ResponseRecorder {
	t.Helper()

	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	w := httptest.NewRecorder()
	h.ServeHTTP(w, req)
	return w
}

// Register creates a user through the public endpoint.
func Register(t *testing.T, h http.Handler, email, password string) {
	t.Helper()

	w := DoJSON(t, h, http.MethodPost, "/auth/register", map[string]string{
		"email":    email,
		"password": password,
	}, "")
	if w.Code != http.StatusOK {
		t.Fatalf("register %s: status %d, body %s", email, w.Code, w.Body.String())
	}
}

// Login returns a bearer token for the given credentials.
func Login(t *testing.T, h http.Handler, email, password string) string {
	t.Helper()

	w := DoForm(t, h, "/auth/login", url.Values{
		"username": {email},
		"password": {password},
	})
	if w.Code != http.StatusOK {
		t.Fatalf("login %s: status %d, body %s", email, w.Code, w.Body.String())
	}

	var resp struct {
		AccessToken string `json:"access_token"`
	}
	Decode(t, w, &resp)
	return resp.AccessToken
}

// Decode unmarshals the recorded response body into v.
func Decode(t *testing.T, w *httptest.ResponseRecorder, v any) {
	t.Helper()
	if err := json.NewDecoder(w.Body).Decode(v); err != nil {
		t.Fatalf("decode response: %v", err)
	}
}
