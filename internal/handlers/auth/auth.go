// Package auth implements Google sign-in for the Login page and the cookie
// session carrying the signed-in profile.
package auth

import (
	"context"
	"net/http"

	"github.com/gorilla/sessions"
	"github.com/markbates/goth"
	"github.com/markbates/goth/gothic"
	"github.com/markbates/goth/providers/google"
	"go.uber.org/zap"

	"lumensite/internal/config"
	"lumensite/internal/routes"
)

const (
	sessionName  = "lumen_user"
	providerName = "google"
)

type Handler struct {
	log     *zap.Logger
	store   *sessions.CookieStore
	enabled bool
}

// New wires the Google provider when credentials are configured. Without
// credentials the auth endpoints answer 503 and the rest of the site is
// unaffected.
func New(cfg config.Config, log *zap.Logger) *Handler {
	store := sessions.NewCookieStore([]byte(cfg.SessionSecret))
	store.Options.HttpOnly = true
	store.Options.SameSite = http.SameSiteLaxMode
	gothic.Store = store

	enabled := cfg.GoogleClientID != "" && cfg.GoogleClientSecret != ""
	if enabled {
		goth.UseProviders(
			google.New(cfg.GoogleClientID, cfg.GoogleClientSecret, cfg.GoogleCallbackURL, "email", "profile"),
		)
	}

	return &Handler{log: log, store: store, enabled: enabled}
}

// withProvider pins the provider name for gothic, which otherwise expects it
// as a URL parameter.
func withProvider(r *http.Request) *http.Request {
	return r.WithContext(context.WithValue(r.Context(), gothic.ProviderParamKey, providerName))
}

func (h *Handler) Begin(w http.ResponseWriter, r *http.Request) {
	if !h.enabled {
		http.Error(w, "sign-in is not configured", http.StatusServiceUnavailable)
		return
	}
	gothic.BeginAuthHandler(w, withProvider(r))
}

func (h *Handler) Callback(w http.ResponseWriter, r *http.Request) {
	if !h.enabled {
		http.Error(w, "sign-in is not configured", http.StatusServiceUnavailable)
		return
	}

	user, err := gothic.CompleteUserAuth(w, withProvider(r))
	if err != nil {
		h.log.Warn("authentication failed", zap.Error(err))
		http.Error(w, "Authentication failed", http.StatusInternalServerError)
		return
	}

	if err := h.storeSession(w, r, user); err != nil {
		h.log.Error("session creation failed", zap.Error(err))
		http.Error(w, "Session creation failed", http.StatusInternalServerError)
		return
	}

	http.Redirect(w, r, routes.Login, http.StatusSeeOther)
}

func (h *Handler) Logout(w http.ResponseWriter, r *http.Request) {
	if err := gothic.Logout(w, withProvider(r)); err != nil {
		h.log.Warn("provider logout failed", zap.Error(err))
	}
	h.clearSession(w, r)
	http.Redirect(w, r, routes.Home, http.StatusTemporaryRedirect)
}

// CurrentUser returns the signed-in user from the session cookie, or nil.
func (h *Handler) CurrentUser(r *http.Request) *goth.User {
	session, err := h.store.Get(r, sessionName)
	if err != nil {
		return nil
	}
	email, ok := session.Values["email"].(string)
	if !ok || email == "" {
		return nil
	}
	name, _ := session.Values["name"].(string)
	avatar, _ := session.Values["avatar_url"].(string)
	return &goth.User{
		Provider:  providerName,
		Name:      name,
		Email:     email,
		AvatarURL: avatar,
	}
}

func (h *Handler) storeSession(w http.ResponseWriter, r *http.Request, user goth.User) error {
	session, err := h.store.Get(r, sessionName)
	if err != nil {
		// A stale or tampered cookie still yields a fresh session.
		session, err = h.store.New(r, sessionName)
		if err != nil {
			return err
		}
	}
	session.Values["name"] = user.Name
	session.Values["email"] = user.Email
	session.Values["avatar_url"] = user.AvatarURL
	return session.Save(r, w)
}

func (h *Handler) clearSession(w http.ResponseWriter, r *http.Request) {
	session, err := h.store.Get(r, sessionName)
	if err != nil {
		return
	}
	session.Options.MaxAge = -1
	if err := session.Save(r, w); err != nil {
		h.log.Warn("session clear failed", zap.Error(err))
	}
}
