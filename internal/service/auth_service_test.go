package service

import (
	"context"
	"encoding/json"
	"movie_vault/model"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/oauth2"
)

func newFakeGithub(t *testing.T, publicEmail string) *httptest.Server {
	t.Helper()
	mux := http.NewServeMux()
	mux.HandleFunc("/login/oauth/access_token", func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, r.ParseForm())
		w.Header().Set("Content-Type", "application/json")
		if r.Form.Get("code") != "good-code" {
			w.WriteHeader(http.StatusBadRequest)
			_ = json.NewEncoder(w).Encode(map[string]string{"error": "bad_verification_code"})
			return
		}
		_ = json.NewEncoder(w).Encode(map[string]string{
			"access_token": "gho_token",
			"token_type":   "bearer",
		})
	})
	mux.HandleFunc("/user", func(w http.ResponseWriter, r *http.Request) {
		if r.Header.Get("Authorization") != "Bearer gho_token" {
			w.WriteHeader(http.StatusUnauthorized)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(map[string]interface{}{
			"id":         12345,
			"login":      "lbanks",
			"name":       "Louise Banks",
			"email":      publicEmail,
			"avatar_url": "https://avatars.githubusercontent.com/u/12345",
		})
	})
	mux.HandleFunc("/user/emails", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode([]map[string]interface{}{
			{"email": "old@banks.dev", "primary": false, "verified": true},
			{"email": "Louise@Banks.dev", "primary": true, "verified": true},
		})
	})

	server := httptest.NewServer(mux)
	t.Cleanup(server.Close)
	return server
}

func newTestAuthService(server *httptest.Server, users IUserService) *AuthService {
	return NewAuthService(AuthConfig{
		ClientId:     "client-id",
		ClientSecret: "client-secret",
		RedirectUrl:  "http://localhost:3000/auth/github/callback",
		StateSecret:  "state-secret",
		Endpoint: &oauth2.Endpoint{
			AuthURL:   server.URL + "/login/oauth/authorize",
			TokenURL:  server.URL + "/login/oauth/access_token",
			AuthStyle: oauth2.AuthStyleInParams,
		},
		ApiUrl:     server.URL,
		HttpClient: server.Client(),
	}, users)
}

func stateFromLoginUrl(t *testing.T, loginUrl string) string {
	t.Helper()
	u, err := url.Parse(loginUrl)
	require.NoError(t, err)
	return u.Query().Get("state")
}

func TestAuthService_GetLoginUrl(t *testing.T) {
	server := newFakeGithub(t, "")
	svc := newTestAuthService(server, newServices().users)

	loginUrl, stateId, err := svc.GetLoginUrl("")
	require.NoError(t, err)
	assert.NotEmpty(t, stateId)

	u, err := url.Parse(loginUrl)
	require.NoError(t, err)
	assert.Equal(t, "/login/oauth/authorize", u.Path)
	assert.Equal(t, "client-id", u.Query().Get("client_id"))
	assert.Contains(t, u.Query().Get("scope"), "user:email")
	assert.NotEmpty(t, u.Query().Get("state"))
}

func TestAuthService_Callback(t *testing.T) {
	s := newServices()
	server := newFakeGithub(t, "")
	svc := newTestAuthService(server, s.users)

	loginUrl, stateId, err := svc.GetLoginUrl("/users/me/movies")
	require.NoError(t, err)

	user, redirectTo, err := svc.HandleGithubCallback(context.Background(), "good-code", stateFromLoginUrl(t, loginUrl), stateId)
	require.NoError(t, err)
	assert.Equal(t, "/users/me/movies", redirectTo)
	assert.Equal(t, "12345", user.GithubId)
	assert.Equal(t, "Louise Banks", user.Name)
	assert.Equal(t, "lbanks", user.GithubUsername)
	assert.Equal(t, "louise@banks.dev", user.Email)

	users, _, _, _ := s.store.Counts()
	assert.Equal(t, 1, users)
}

func TestAuthService_CallbackRejects(t *testing.T) {
	server := newFakeGithub(t, "")
	svc := newTestAuthService(server, newServices().users)

	_, _, err := svc.HandleGithubCallback(context.Background(), "good-code", "forged", "forged")
	assert.ErrorIs(t, err, model.ErrInvalidState)

	loginUrl, stateId, err := svc.GetLoginUrl("")
	require.NoError(t, err)
	_, _, err = svc.HandleGithubCallback(context.Background(), "bad-code", stateFromLoginUrl(t, loginUrl), stateId)
	assert.ErrorIs(t, err, model.ErrUnauthorized)
}

func TestAuthService_CallbackRequiresIssuedStateId(t *testing.T) {
	s := newServices()
	server := newFakeGithub(t, "")
	svc := newTestAuthService(server, s.users)

	issuedUrl, _, err := svc.GetLoginUrl("")
	require.NoError(t, err)
	_, otherStateId, err := svc.GetLoginUrl("")
	require.NoError(t, err)
	state := stateFromLoginUrl(t, issuedUrl)

	_, _, err = svc.HandleGithubCallback(context.Background(), "good-code", state, "")
	assert.ErrorIs(t, err, model.ErrInvalidState)
	_, _, err = svc.HandleGithubCallback(context.Background(), "good-code", state, otherStateId)
	assert.ErrorIs(t, err, model.ErrInvalidState)

	users, _, _, _ := s.store.Counts()
	assert.Zero(t, users)
}

func TestPrimaryEmail(t *testing.T) {
	assert.Equal(t, "b", primaryEmail([]githubEmailRes{
		{Email: "a", Verified: true},
		{Email: "b", Verified: true, Primary: true},
	}))
	assert.Equal(t, "a", primaryEmail([]githubEmailRes{
		{Email: "x", Primary: true},
		{Email: "a", Verified: true},
	}))
	assert.Empty(t, primaryEmail(nil))
}
