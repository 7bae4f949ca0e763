package server

import (
	"encoding/json"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/jobmatch/webclient/api"
	"github.com/jobmatch/webclient/internal/errors"
	"github.com/jobmatch/webclient/internal/format"
)

// jobMatchView is a JobMatch shaped for rendering: the raw scores plus their
// display forms, so the frontend stays dumb.
type jobMatchView struct {
	api.JobMatch
	ScoreLabel string `json:"score_label"`
	ScoreLevel string `json:"score_level"`
	Salary     string `json:"salary"`
	Posted     string `json:"posted,omitempty"`
}

func newJobMatchView(m api.JobMatch, now time.Time) jobMatchView {
	view := jobMatchView{
		JobMatch:   m,
		ScoreLabel: format.MatchScore(m.MatchScore),
		ScoreLevel: format.MatchScoreLevel(m.MatchScore),
		Salary:     format.Salary(m.Job.SalaryMin, m.Job.SalaryMax, m.Job.SalaryCurrency),
	}
	if m.Job.PostedDate != nil {
		view.Posted = format.RelativeTime(*m.Job.PostedDate, now)
	}
	return view
}

// currentUser returns the session identity, resolving it through the gateway
// on the first protected page hit after a restart.
func (s *Server) currentUser(r *http.Request) (*api.User, error) {
	if user := s.session.User(); user != nil {
		return user, nil
	}
	// A stale browser cookie can pass the gate while the holder is empty;
	// there is no point asking the API without a credential.
	if s.gateway.Token() == "" {
		return nil, errors.ErrNotAuthenticated
	}
	user, err := s.gateway.CurrentUser(r.Context())
	if err != nil {
		return nil, err
	}
	s.session.SetUser(user)
	return user, nil
}

func (s *Server) handleDashboard(w http.ResponseWriter, r *http.Request) {
	user, err := s.currentUser(r)
	if err != nil {
		s.writeError(w, err)
		return
	}
	stats, err := s.gateway.Stats(r.Context())
	if err != nil {
		s.writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"user":      user,
		"stats":     stats,
		"member_of": format.Date(user.CreatedAt),
	})
}

func (s *Server) handleProfile(w http.ResponseWriter, r *http.Request) {
	user, err := s.gateway.Profile(r.Context())
	if err != nil {
		s.writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, user)
}

func (s *Server) handleJobs(w http.ResponseWriter, r *http.Request) {
	query, err := parseJobQuery(r)
	if err != nil {
		s.writeError(w, err)
		return
	}

	matches, err := s.gateway.JobMatches(r.Context(), query)
	if err != nil {
		s.writeError(w, err)
		return
	}

	now := time.Now()
	views := make([]jobMatchView, 0, len(matches))
	for _, m := range matches {
		views = append(views, newJobMatchView(m, now))
	}
	writeJSON(w, http.StatusOK, views)
}

func parseJobQuery(r *http.Request) (api.JobQuery, error) {
	values := r.URL.Query()
	query := api.JobQuery{
		Location:       values.Get("location"),
		RemoteType:     values.Get("remote_type"),
		EmploymentType: values.Get("employment_type"),
		SortBy:         values.Get("sort_by"),
	}

	var err error
	if raw := values.Get("skip"); raw != "" {
		if query.Skip, err = strconv.Atoi(raw); err != nil || query.Skip < 0 {
			return query, errors.Wrapf(errors.ErrInvalidInput, "parse skip %q", raw)
		}
	}
	if raw := values.Get("limit"); raw != "" {
		if query.Limit, err = strconv.Atoi(raw); err != nil || query.Limit < 0 {
			return query, errors.Wrapf(errors.ErrInvalidInput, "parse limit %q", raw)
		}
	}
	if raw := values.Get("min_salary"); raw != "" {
		if query.MinSalary, err = strconv.ParseInt(raw, 10, 64); err != nil || query.MinSalary < 0 {
			return query, errors.Wrapf(errors.ErrInvalidInput, "parse min_salary %q", raw)
		}
	}
	return query, nil
}

func (s *Server) handleJob(w http.ResponseWriter, r *http.Request) {
	job, err := s.gateway.Job(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		s.writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{
		"job":    job,
		"salary": format.Salary(job.SalaryMin, job.SalaryMax, job.SalaryCurrency),
	})
}

func (s *Server) handleJobInteract(w http.ResponseWriter, r *http.Request) {
	var body struct {
		InteractionType api.InteractionType `json:"interaction_type"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		s.writeError(w, errors.Wrapf(errors.ErrInvalidInput, "decode interaction"))
		return
	}
	if !api.ValidInteraction(body.InteractionType) {
		s.writeError(w, errors.Wrapf(errors.ErrInvalidInput, "unknown interaction type %q", body.InteractionType))
		return
	}

	if err := s.gateway.InteractWithJob(r.Context(), chi.URLParam(r, "id"), body.InteractionType); err != nil {
		s.notifyError(err)
		s.writeError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) handleSavedJobs(w http.ResponseWriter, r *http.Request) {
	jobs, err := s.gateway.SavedJobs(r.Context())
	if err != nil {
		s.writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, jobs)
}

func (s *Server) handleAppliedJobs(w http.ResponseWriter, r *http.Request) {
	jobs, err := s.gateway.AppliedJobs(r.Context())
	if err != nil {
		s.writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, jobs)
}

func (s *Server) handleResumes(w http.ResponseWriter, r *http.Request) {
	resumes, err := s.gateway.Resumes(r.Context())
	if err != nil {
		s.writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, resumes)
}

func (s *Server) handleResume(w http.ResponseWriter, r *http.Request) {
	resume, err := s.gateway.Resume(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		s.writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, resume)
}

func (s *Server) handleResumeUpload(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseMultipartForm(format.MaxResumeSize); err != nil {
		s.writeError(w, errors.Wrapf(errors.ErrInvalidInput, "parse upload"))
		return
	}
	file, header, err := r.FormFile("file")
	if err != nil {
		s.writeError(w, errors.Wrapf(errors.ErrInvalidInput, "missing file field"))
		return
	}
	defer file.Close()

	if !format.ValidResumeFile(header.Filename, header.Size) {
		s.writeError(w, errors.Wrapf(errors.ErrInvalidInput, "unsupported resume file %q", header.Filename))
		return
	}

	resume, err := s.gateway.UploadResume(r.Context(), header.Filename, file)
	if err != nil {
		s.notifyError(err)
		s.writeError(w, err)
		return
	}

	s.toasts.Success("Resume uploaded")
	writeJSON(w, http.StatusCreated, resume)
}

func (s *Server) handleResumeSkills(w http.ResponseWriter, r *http.Request) {
	var body struct {
		Skills []string `json:"skills"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		s.writeError(w, errors.Wrapf(errors.ErrInvalidInput, "decode skills"))
		return
	}

	resume, err := s.gateway.UpdateResumeSkills(r.Context(), chi.URLParam(r, "id"), body.Skills)
	if err != nil {
		s.writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, resume)
}

func (s *Server) handleResumeDelete(w http.ResponseWriter, r *http.Request) {
	if err := s.gateway.DeleteResume(r.Context(), chi.URLParam(r, "id")); err != nil {
		s.notifyError(err)
		s.writeError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
