package auth

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/markbates/goth"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"lumensite/internal/config"
	"lumensite/internal/routes"
)

func newTestHandler() *Handler {
	return New(config.Config{SessionSecret: "test-secret"}, zap.NewNop())
}

func TestBeginWithoutCredentials(t *testing.T) {
	h := newTestHandler()

	rec := httptest.NewRecorder()
	h.Begin(rec, httptest.NewRequest(http.MethodGet, routes.AuthGoogle, nil))

	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
}

func TestCallbackWithoutCredentials(t *testing.T) {
	h := newTestHandler()

	rec := httptest.NewRecorder()
	h.Callback(rec, httptest.NewRequest(http.MethodGet, routes.AuthGoogleCallback, nil))

	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
}

func TestCurrentUserWithoutSession(t *testing.T) {
	h := newTestHandler()

	assert.Nil(t, h.CurrentUser(httptest.NewRequest(http.MethodGet, routes.Login, nil)))
}

func TestSessionRoundTrip(t *testing.T) {
	h := newTestHandler()

	user := goth.User{Name: "Ada Lovelace", Email: "ada@example.com", AvatarURL: "https://cdn.example.com/a.png"}

	rec := httptest.NewRecorder()
	require.NoError(t, h.storeSession(rec, httptest.NewRequest(http.MethodGet, routes.AuthGoogleCallback, nil), user))

	req := httptest.NewRequest(http.MethodGet, routes.Login, nil)
	for _, c := range rec.Result().Cookies() {
		req.AddCookie(c)
	}

	got := h.CurrentUser(req)
	require.NotNil(t, got)
	assert.Equal(t, user.Name, got.Name)
	assert.Equal(t, user.Email, got.Email)
	assert.Equal(t, user.AvatarURL, got.AvatarURL)
	assert.Equal(t, "google", got.Provider)
}

func TestLogoutClearsSessionAndRedirects(t *testing.T) {
	h := newTestHandler()

	// Establish a session first.
	rec := httptest.NewRecorder()
	require.NoError(t, h.storeSession(rec, httptest.NewRequest(http.MethodGet, routes.AuthGoogleCallback, nil), goth.User{Email: "ada@example.com"}))

	req := httptest.NewRequest(http.MethodGet, routes.LogoutGoogle, nil)
	for _, c := range rec.Result().Cookies() {
		req.AddCookie(c)
	}

	out := httptest.NewRecorder()
	h.Logout(out, req)

	assert.Equal(t, http.StatusTemporaryRedirect, out.Code)
	assert.Equal(t, routes.Home, out.Header().Get("Location"))

	// The session cookie must be expired in the response.
	expired := false
	for _, c := range out.Result().Cookies() {
		if c.Name == sessionName && c.MaxAge < 0 {
			expired = true
		}
	}
	assert.True(t, expired, "session cookie was not expired")
}
