package server

import (
	"net/http"
	"strings"
)

// Route targets used by the gate's redirects.
const (
	routeLogin     = "/login"
	routeDashboard = "/dashboard"
)

// RouteClass is the access policy of a request path.
type RouteClass int

const (
	// RouteNeutral paths are reachable with or without a credential.
	RouteNeutral RouteClass = iota
	// RouteProtected paths require a credential to be present.
	RouteProtected
	// RoutePublic paths are the auth forms; a signed-in user is bounced away.
	RoutePublic
)

// protectedPrefixes are the signed-in areas of the app.
var protectedPrefixes = []string{"/dashboard", "/jobs", "/resumes", "/profile"}

// publicPaths match exactly; /login/foo is not an auth form.
var publicPaths = []string{"/login", "/register"}

// Classify maps a request path to its access policy. Pure function of the
// path: no I/O, so the gate stays cheap enough to run on every request.
func Classify(path string) RouteClass {
	for _, p := range publicPaths {
		if path == p {
			return RoutePublic
		}
	}
	for _, prefix := range protectedPrefixes {
		if strings.HasPrefix(path, prefix) {
			return RouteProtected
		}
	}
	return RouteNeutral
}

// accessGate enforces route policy at the edge, before any handler runs. It
// checks only that the credential cookie is present, not that it is valid: a
// forged cookie passes the gate but fails identity resolution against the
// API afterwards, leaving the session anonymous.
func (s *Server) accessGate(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hasToken := false
		if cookie, err := r.Cookie(s.cfg.CookieName); err == nil && cookie.Value != "" {
			hasToken = true
		}

		switch Classify(r.URL.Path) {
		case RoutePublic:
			if hasToken {
				gateRedirects.WithLabelValues(routeDashboard).Inc()
				http.Redirect(w, r, routeDashboard, http.StatusTemporaryRedirect)
				return
			}
		case RouteProtected:
			if !hasToken {
				gateRedirects.WithLabelValues(routeLogin).Inc()
				http.Redirect(w, r, routeLogin, http.StatusTemporaryRedirect)
				return
			}
		}

		next.ServeHTTP(w, r)
	})
}
