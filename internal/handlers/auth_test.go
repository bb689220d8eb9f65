package handlers_test

import (
	"net/http"
	"net/url"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/biasbuster/api/internal/testutil"
)

func TestRegister(t *testing.T) {
	api := testutil.NewAPI(t)

	w := testutil.DoJSON(t, api, http.MethodPost, "/auth/register", map[string]string{
		"email":    "test@example.com",
		"password": "testpass123",
	}, "")
	require.Equal(t, http.StatusOK, w.Code)

	var body map[string]any
	testutil.Decode(t, w, &body)
	require.Equal(t, "test@example.com", body["email"])
	require.NotEmpty(t, body["id"])
	require.Contains(t, body, "created_at")
	require.Equal(t, "user", body["role"])
	require.Equal(t, true, body["is_active"])
	require.NotContains(t, body, "password_hash")
}

func TestRegister_DuplicateEmail(t *testing.T) {
	api := testutil.NewAPI(t)

	testutil.Register(t, api, "duplicate@example.com", "testpass123")

	w := testutil.DoJSON(t, api, http.MethodPost, "/auth/register", map[string]string{
		"email":    "duplicate@example.com",
		"password": "testpass123",
	}, "")
	require.Equal(t, http.StatusBadRequest, w.Code)

	var body map[string]string
	testutil.Decode(t, w, &body)
	require.Equal(t, "Email already registered", body["detail"])
}

func TestRegister_MissingFields(t *testing.T) {
	api := testutil.NewAPI(t)

	w := testutil.DoJSON(t, api, http.MethodPost, "/auth/register", map[string]string{
		"email": "incomplete@example.com",
	}, "")
	require.Equal(t, http.StatusUnprocessableEntity, w.Code)
}

func TestLogin(t *testing.T) {
	api := testutil.NewAPI(t)

	testutil.Register(t, api, "login@example.com", "testpass123")

	w := testutil.DoForm(t, api, "/auth/login", url.Values{
		"username": {"login@example.com"},
		"password": {"testpass123"},
	})
	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		AccessToken string `json:"access_token"`
		TokenType   string `json:"token_type"`
	}
	testutil.Decode(t, w, &resp)
	require.NotEmpty(t, resp.AccessToken)
	require.Equal(t, "bearer", resp.TokenType)
}

func TestLogin_UniformFailureMessage(t *testing.T) {
	api := testutil.NewAPI(t)

	testutil.Register(t, api, "wrongpass@example.com", "correctpass")

	wrongPassword := testutil.DoForm(t, api, "/auth/login", url.Values{
		"username": {"wrongpass@example.com"},
		"password": {"wrongpass"},
	})
	require.Equal(t, http.StatusUnauthorized, wrongPassword.Code)

	unknownEmail := testutil.DoForm(t, api, "/auth/login", url.Values{
		"username": {"nonexistent@example.com"},
		"password": {"testpass"},
	})
	require.Equal(t, http.StatusUnauthorized, unknownEmail.Code)

	// Both causes must be observably identical to block user enumeration.
	require.Equal(t, wrongPassword.Body.String(), unknownEmail.Body.String())

	var body map[string]string
	testutil.Decode(t, wrongPassword, &body)
	require.Equal(t, "Incorrect email or password", body["detail"])
}
