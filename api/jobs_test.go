package api_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/jobmatch/webclient/api"
	"github.com/stretchr/testify/require"
)

func TestJobQueryValues(t *testing.T) {
	tests := []struct {
		name  string
		query api.JobQuery
		want  string
	}{
		{"empty", api.JobQuery{}, ""},
		{
			"paging only",
			api.JobQuery{Skip: 20, Limit: 10},
			"limit=10&skip=20",
		},
		{
			"all filters",
			api.JobQuery{Skip: 5, Limit: 50, Location: "Berlin", RemoteType: "remote", EmploymentType: "full_time", MinSalary: 60000, SortBy: "match_score"},
			"employment_type=full_time&limit=50&location=Berlin&min_salary=60000&remote_type=remote&skip=5&sort_by=match_score",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.want, tt.query.Values().Encode())
		})
	}
}

func TestJobMatches(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/api/jobs/", r.URL.Path)
		require.Equal(t, "remote", r.URL.Query().Get("remote_type"))
		json.NewEncoder(w).Encode([]api.JobMatch{
			{
				Job:          api.Job{ID: "j1", Title: "Backend Engineer", Company: "Acme"},
				MatchScore:   0.82,
				MatchReasons: []string{"skills overlap"},
			},
		})
	}))
	defer srv.Close()

	client, _ := newClient(t, srv.URL)
	matches, err := client.JobMatches(context.Background(), api.JobQuery{RemoteType: "remote"})
	require.NoError(t, err)
	require.Len(t, matches, 1)
	require.Equal(t, "j1", matches[0].Job.ID)
	require.InDelta(t, 0.82, matches[0].MatchScore, 1e-9)
}

func TestInteractWithJob(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPost, r.Method)
		require.Equal(t, "/api/jobs/j42/interact", r.URL.Path)

		var body struct {
			InteractionType string `json:"interaction_type"`
		}
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		require.Equal(t, "save", body.InteractionType)
		w.WriteHeader(http.StatusNoContent)
	}))
	defer srv.Close()

	client, _ := newClient(t, srv.URL)
	require.NoError(t, client.InteractWithJob(context.Background(), "j42", api.InteractionSave))
}

func TestValidInteraction(t *testing.T) {
	require.True(t, api.ValidInteraction(api.InteractionApply))
	require.True(t, api.ValidInteraction(api.InteractionDismiss))
	require.False(t, api.ValidInteraction("poke"))
}

func TestUpdateResumeSkills(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPut, r.Method)
		require.Equal(t, "/api/resumes/r7/skills", r.URL.Path)

		var body struct {
			Skills []string `json:"skills"`
		}
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		require.Equal(t, []string{"go", "sql"}, body.Skills)

		json.NewEncoder(w).Encode(api.Resume{ID: "r7", ParsedData: api.ParsedResumeData{Skills: body.Skills}})
	}))
	defer srv.Close()

	client, _ := newClient(t, srv.URL)
	resume, err := client.UpdateResumeSkills(context.Background(), "r7", []string{"go", "sql"})
	require.NoError(t, err)
	require.Equal(t, []string{"go", "sql"}, resume.ParsedData.Skills)
}
