package server

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"github.com/jobmatch/webclient/api"
	"github.com/jobmatch/webclient/internal/errors"
	"github.com/jobmatch/webclient/internal/format"
)

// logoutTimeout bounds the advisory server notification; the local sign-out
// has already happened when it starts.
const logoutTimeout = 3 * time.Second

func (s *Server) handleLoginPage(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"page": "login"})
}

func (s *Server) handleRegisterPage(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"page": "register"})
}

func (s *Server) handleLogin(w http.ResponseWriter, r *http.Request) {
	var req api.LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.writeError(w, errors.Wrapf(errors.ErrInvalidInput, "decode login request"))
		return
	}
	if !format.ValidEmail(req.Email) || req.Password == "" {
		s.writeError(w, errors.Wrapf(errors.ErrInvalidInput, "email and password are required"))
		return
	}

	resp, err := s.gateway.Login(r.Context(), req)
	if err != nil {
		s.notifyError(err)
		s.writeError(w, err)
		return
	}

	// Login stored the token in the holder; mirror it into the cookie so the
	// request gate sees the same credential on the next request.
	s.setAuthCookie(w, resp.AccessToken)
	s.session.SetUser(&resp.User)

	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) handleRegister(w http.ResponseWriter, r *http.Request) {
	var req api.RegisterRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.writeError(w, errors.Wrapf(errors.ErrInvalidInput, "decode register request"))
		return
	}
	switch {
	case !format.ValidEmail(req.Email):
		s.writeError(w, errors.Wrapf(errors.ErrInvalidInput, "invalid email address"))
		return
	case !format.ValidPassword(req.Password):
		s.writeError(w, errors.Wrapf(errors.ErrInvalidInput, "password must be at least 8 characters"))
		return
	case req.FullName == "":
		s.writeError(w, errors.Wrapf(errors.ErrInvalidInput, "full name is required"))
		return
	}

	resp, err := s.gateway.Register(r.Context(), req)
	if err != nil {
		s.notifyError(err)
		s.writeError(w, err)
		return
	}

	// Registering signs the new user in. The gateway does not store the
	// register token itself, so the handler does, then mirrors the cookie.
	s.gateway.SetToken(resp.AccessToken)
	s.setAuthCookie(w, resp.AccessToken)
	s.session.SetUser(&resp.User)
	s.toasts.Success("Welcome, " + resp.User.Email)

	writeJSON(w, http.StatusCreated, resp)
}

func (s *Server) handleLogout(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), logoutTimeout)
	defer cancel()

	s.session.Logout(ctx)
	s.clearAuthCookie(w)

	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) setAuthCookie(w http.ResponseWriter, value string) {
	http.SetCookie(w, &http.Cookie{
		Name:     s.cfg.CookieName,
		Value:    value,
		Path:     "/",
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
}

func (s *Server) clearAuthCookie(w http.ResponseWriter) {
	http.SetCookie(w, &http.Cookie{
		Name:     s.cfg.CookieName,
		Value:    "",
		Path:     "/",
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
		MaxAge:   -1,
	})
}

// notifyError surfaces a gateway failure to the notification queue with the
// server's detail verbatim.
func (s *Server) notifyError(err error) {
	var nerr *api.NormalizedError
	if errors.As(err, &nerr) {
		s.toasts.Error(nerr.Detail)
		return
	}
	s.toasts.Error(err.Error())
}
