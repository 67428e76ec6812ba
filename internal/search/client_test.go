package search

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"

	"github.com/inovacc/cvehunt/internal/model"
)

const searchBody = `{
  "total_count": 2,
  "incomplete_results": false,
  "items": [
    {"name": "CVE-2021-44228-poc", "html_url": "https://github.com/a/CVE-2021-44228-poc", "description": "log4shell", "created_at": "2021-12-10T08:00:00Z"},
    {"name": "scanner", "html_url": "https://github.com/b/scanner", "description": null, "created_at": "2021-12-11T09:30:00Z"}
  ]
}`

func newTestClient(t *testing.T, handler http.HandlerFunc) *Client {
	t.Helper()

	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	c, err := NewClient(context.Background(), "abc123", WithBaseURL(srv.URL))
	require.NoError(t, err)

	return c
}

func TestClient_Fetch(t *testing.T) {
	var (
		gotPath  string
		gotQuery map[string]string
		gotAuth  string
	)

	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotAuth = r.Header.Get("Authorization")
		gotQuery = map[string]string{
			"q":        r.URL.Query().Get("q"),
			"page":     r.URL.Query().Get("page"),
			"per_page": r.URL.Query().Get("per_page"),
		}

		w.Header().Set("Content-Type", "application/json")
		_, _ = fmt.Fprint(w, searchBody)
	})

	repos, err := c.Fetch(context.Background(), "CVE created:>2024-01-01T00:00:00Z", Page{Number: 3, Size: 10})
	require.NoError(t, err)

	require.Equal(t, "/search/repositories", gotPath)
	require.Equal(t, "token abc123", gotAuth)
	require.Equal(t, map[string]string{
		"q":        "CVE created:>2024-01-01T00:00:00Z",
		"page":     "3",
		"per_page": "10",
	}, gotQuery)

	want := []model.Repository{
		{
			Name:        "CVE-2021-44228-poc",
			URL:         "https://github.com/a/CVE-2021-44228-poc",
			Description: "log4shell",
			CreatedAt:   time.Date(2021, 12, 10, 8, 0, 0, 0, time.UTC),
		},
		{
			Name:      "scanner",
			URL:       "https://github.com/b/scanner",
			CreatedAt: time.Date(2021, 12, 11, 9, 30, 0, 0, time.UTC),
		},
	}

	if diff := cmp.Diff(want, repos); diff != "" {
		t.Errorf("Fetch() mismatch (-want +got):\n%s", diff)
	}
}

func TestClient_FetchOmitsZeroPage(t *testing.T) {
	var raw string

	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		raw = r.URL.RawQuery
		_, _ = fmt.Fprint(w, `{"items": []}`)
	})

	repos, err := c.Fetch(context.Background(), "CVE-2024-3094", Page{})
	require.NoError(t, err)
	require.Empty(t, repos)
	require.Equal(t, "q=CVE-2024-3094", raw)
}

func TestClient_FetchStatusError(t *testing.T) {
	tests := []struct {
		name   string
		status int
	}{
		{name: "unprocessable", status: http.StatusUnprocessableEntity},
		{name: "not found", status: http.StatusNotFound},
		{name: "server error", status: http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := newTestClient(t, func(w http.ResponseWriter, _ *http.Request) {
				w.Header().Set("Content-Type", "application/json")
				w.WriteHeader(tt.status)
				_, _ = fmt.Fprint(w, `{"message": "boom"}`)
			})

			repos, err := c.Fetch(context.Background(), "x", Page{})
			require.Nil(t, repos)

			var statusErr *StatusError
			require.True(t, errors.As(err, &statusErr), "got %T: %v", err, err)
			require.Equal(t, tt.status, statusErr.StatusCode)
			require.Equal(t, "boom", statusErr.Message)
			require.Equal(t, fmt.Sprintf("Failed to fetch data from GitHub API. Status code: %d", tt.status), Describe(err))
		})
	}
}

func TestClient_FetchTransportError(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	srv.Close()

	c, err := NewClient(context.Background(), "t", WithBaseURL(srv.URL))
	require.NoError(t, err)

	_, err = c.Fetch(context.Background(), "x", Page{})
	require.Error(t, err)

	var statusErr *StatusError
	require.False(t, errors.As(err, &statusErr))
	require.Contains(t, Describe(err), "An error occurred:")
}

func TestNewClient_InvalidBaseURL(t *testing.T) {
	_, err := NewClient(context.Background(), "t", WithBaseURL("ftp://example.com"))
	require.Error(t, err)
}

func TestParseBaseURL(t *testing.T) {
	u, err := parseBaseURL("https://ghe.example.com/api/v3")
	require.NoError(t, err)
	require.Equal(t, "https://ghe.example.com/api/v3/", u.String())
}
