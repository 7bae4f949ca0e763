package api

import (
	"context"
	"net/http"
	"net/url"
	"strconv"
)

// JobQuery filters and pages the ranked job list. Zero values are omitted
// from the query string.
type JobQuery struct {
	Skip           int
	Limit          int
	Location       string
	RemoteType     string
	EmploymentType string
	MinSalary      int64
	SortBy         string
}

// Values encodes the query as URL parameters.
func (q JobQuery) Values() url.Values {
	values := url.Values{}
	if q.Skip > 0 {
		values.Set("skip", strconv.Itoa(q.Skip))
	}
	if q.Limit > 0 {
		values.Set("limit", strconv.Itoa(q.Limit))
	}
	if q.Location != "" {
		values.Set("location", q.Location)
	}
	if q.RemoteType != "" {
		values.Set("remote_type", q.RemoteType)
	}
	if q.EmploymentType != "" {
		values.Set("employment_type", q.EmploymentType)
	}
	if q.MinSalary > 0 {
		values.Set("min_salary", strconv.FormatInt(q.MinSalary, 10))
	}
	if q.SortBy != "" {
		values.Set("sort_by", q.SortBy)
	}
	return values
}

// JobMatches fetches the ranked job list for the current user.
func (c *Client) JobMatches(ctx context.Context, query JobQuery) ([]JobMatch, error) {
	path := "/api/jobs/"
	if encoded := query.Values().Encode(); encoded != "" {
		path += "?" + encoded
	}
	var matches []JobMatch
	if err := c.do(ctx, http.MethodGet, path, nil, &matches); err != nil {
		return nil, err
	}
	return matches, nil
}

// Job fetches one job posting by ID.
func (c *Client) Job(ctx context.Context, id string) (*Job, error) {
	var job Job
	if err := c.do(ctx, http.MethodGet, "/api/jobs/"+url.PathEscape(id), nil, &job); err != nil {
		return nil, err
	}
	return &job, nil
}

// InteractWithJob records a user action (save, apply, dismiss, ...) on a job.
func (c *Client) InteractWithJob(ctx context.Context, id string, interaction InteractionType) error {
	body := struct {
		InteractionType InteractionType `json:"interaction_type"`
	}{InteractionType: interaction}
	return c.do(ctx, http.MethodPost, "/api/jobs/"+url.PathEscape(id)+"/interact", body, nil)
}

// SavedJobs lists the jobs the user saved.
func (c *Client) SavedJobs(ctx context.Context) ([]Job, error) {
	var jobs []Job
	if err := c.do(ctx, http.MethodGet, "/api/jobs/saved/list", nil, &jobs); err != nil {
		return nil, err
	}
	return jobs, nil
}

// AppliedJobs lists the jobs the user applied to.
func (c *Client) AppliedJobs(ctx context.Context) ([]Job, error) {
	var jobs []Job
	if err := c.do(ctx, http.MethodGet, "/api/jobs/applied/list", nil, &jobs); err != nil {
		return nil, err
	}
	return jobs, nil
}
