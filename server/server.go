// Package server is the browser-facing edge of the web client: it gates
// every incoming request by credential presence, loads route data through the
// API gateway, and keeps the credential cookie in sync with the token holder.
package server

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/jobmatch/webclient/api"
	"github.com/jobmatch/webclient/internal/config"
	"github.com/jobmatch/webclient/session"
	"github.com/jobmatch/webclient/toast"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

type Server struct {
	cfg     *config.Config
	gateway *api.Client
	session *session.Machine
	toasts  *toast.Store
	router  chi.Router
}

// New wires the route table. All dependencies are injected; the server owns
// none of them.
func New(cfg *config.Config, gateway *api.Client, machine *session.Machine, toasts *toast.Store) *Server {
	s := &Server{
		cfg:     cfg,
		gateway: gateway,
		session: machine,
		toasts:  toasts,
	}
	s.router = s.routes()
	return s
}

func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.router.ServeHTTP(w, r)
}

func (s *Server) routes() chi.Router {
	r := chi.NewRouter()

	r.Use(chimw.RequestID)
	r.Use(s.logRequests)
	r.Use(s.recoverPanics)
	r.Use(measureRequests)
	r.Use(s.accessGate)

	r.Get("/healthz", s.handleHealthz)
	r.Method(http.MethodGet, "/metrics", promhttp.Handler())

	r.Get("/", s.handleIndex)
	r.Get("/login", s.handleLoginPage)
	r.Get("/register", s.handleRegisterPage)
	r.Post("/login", s.handleLogin)
	r.Post("/register", s.handleRegister)
	r.Post("/logout", s.handleLogout)

	r.Get("/dashboard", s.handleDashboard)
	r.Get("/profile", s.handleProfile)

	r.Route("/jobs", func(r chi.Router) {
		r.Get("/", s.handleJobs)
		r.Get("/saved", s.handleSavedJobs)
		r.Get("/applied", s.handleAppliedJobs)
		r.Get("/{id}", s.handleJob)
		r.Post("/{id}/interact", s.handleJobInteract)
	})

	r.Route("/resumes", func(r chi.Router) {
		r.Get("/", s.handleResumes)
		r.Post("/upload", s.handleResumeUpload)
		r.Get("/{id}", s.handleResume)
		r.Put("/{id}/skills", s.handleResumeSkills)
		r.Delete("/{id}", s.handleResumeDelete)
	})

	return r
}

func (s *Server) handleHealthz(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// handleIndex sends the browser to the dashboard; the access gate bounces
// anonymous visitors to the login page from there.
func (s *Server) handleIndex(w http.ResponseWriter, r *http.Request) {
	http.Redirect(w, r, routeDashboard, http.StatusTemporaryRedirect)
}
