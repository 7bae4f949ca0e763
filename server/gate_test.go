package server_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/jobmatch/webclient/api"
	"github.com/jobmatch/webclient/internal/config"
	"github.com/jobmatch/webclient/server"
	"github.com/jobmatch/webclient/session"
	"github.com/jobmatch/webclient/toast"
	"github.com/jobmatch/webclient/token"
	"github.com/jobmatch/webclient/token/storefake"
	"github.com/stretchr/testify/require"
)

// newTestServer wires a Server against the given backend base URL.
func newTestServer(t *testing.T, backendURL string) (*server.Server, *api.Client) {
	t.Helper()
	cfg := &config.Config{
		ListenAddr: ":0",
		APIBaseURL: backendURL,
		CookieName: "auth_token",
	}
	gateway := api.New(backendURL, token.NewHolder(storefake.NewFakeStore()), nil)
	machine := session.New(gateway)
	return server.New(cfg, gateway, machine, toast.NewStore()), gateway
}

func TestClassify(t *testing.T) {
	tests := []struct {
		path string
		want server.RouteClass
	}{
		{"/dashboard", server.RouteProtected},
		{"/dashboard/settings", server.RouteProtected},
		{"/jobs", server.RouteProtected},
		{"/jobs/j1", server.RouteProtected},
		{"/resumes", server.RouteProtected},
		{"/profile", server.RouteProtected},
		{"/login", server.RoutePublic},
		{"/register", server.RoutePublic},
		{"/login/reset", server.RouteNeutral}, // public routes match exactly
		{"/", server.RouteNeutral},
		{"/healthz", server.RouteNeutral},
		{"/logout", server.RouteNeutral},
		{"/metrics", server.RouteNeutral},
	}
	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			require.Equal(t, tt.want, server.Classify(tt.path))
		})
	}
}

func TestGateRedirectMatrix(t *testing.T) {
	// The backend is unreachable on purpose: the gate must decide from the
	// cookie and path alone, with no network I/O.
	backend := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	backend.Close()

	srv, _ := newTestServer(t, backend.URL)

	tests := []struct {
		name         string
		path         string
		withToken    bool
		wantStatus   int
		wantLocation string
	}{
		{"protected without token", "/dashboard", false, http.StatusTemporaryRedirect, "/login"},
		{"protected subpath without token", "/jobs/j1", false, http.StatusTemporaryRedirect, "/login"},
		{"public with token", "/login", true, http.StatusTemporaryRedirect, "/dashboard"},
		{"register with token", "/register", true, http.StatusTemporaryRedirect, "/dashboard"},
		{"public without token", "/login", false, http.StatusOK, ""},
		{"neutral without token", "/healthz", false, http.StatusOK, ""},
		{"neutral with token", "/healthz", true, http.StatusOK, ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, tt.path, nil)
			if tt.withToken {
				req.AddCookie(&http.Cookie{Name: "auth_token", Value: "some-token"})
			}
			rec := httptest.NewRecorder()
			srv.ServeHTTP(rec, req)

			require.Equal(t, tt.wantStatus, rec.Code)
			if tt.wantLocation != "" {
				require.Equal(t, tt.wantLocation, rec.Header().Get("Location"))
			}
		})
	}
}

func TestGateIgnoresEmptyCookie(t *testing.T) {
	backend := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	backend.Close()

	srv, _ := newTestServer(t, backend.URL)

	req := httptest.NewRequest(http.MethodGet, "/dashboard", nil)
	req.AddCookie(&http.Cookie{Name: "auth_token", Value: ""})
	rec := httptest.NewRecorder()
	srv.ServeHTTP(rec, req)

	require.Equal(t, http.StatusTemporaryRedirect, rec.Code)
	require.Equal(t, "/login", rec.Header().Get("Location"))
}

func TestIndexRedirectsToDashboard(t *testing.T) {
	backend := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	backend.Close()

	srv, _ := newTestServer(t, backend.URL)

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	srv.ServeHTTP(rec, req)

	require.Equal(t, http.StatusTemporaryRedirect, rec.Code)
	require.Equal(t, "/dashboard", rec.Header().Get("Location"))
}
