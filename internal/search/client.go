package search

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"net/url"
	"strings"

	"github.com/google/go-github/v82/github"
	"github.com/hashicorp/go-cleanhttp"
	"golang.org/x/oauth2"

	"github.com/inovacc/cvehunt/internal/model"
)

// tokenType makes oauth2 send "Authorization: token <TOKEN>"
const tokenType = "token"

// Page selects one slice of a search result. Zero values are omitted from
// the request and the API defaults apply.
type Page struct {
	Number int
	Size   int
}

// Searcher fetches one page of repository search results
type Searcher interface {
	Fetch(ctx context.Context, query string, page Page) ([]model.Repository, error)
}

// StatusError is returned when the API answers with a non-success status
type StatusError struct {
	StatusCode int
	Message    string
	Err        error
}

func (e *StatusError) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("search request failed with status %d", e.StatusCode)
	}

	return fmt.Sprintf("search request failed with status %d: %s", e.StatusCode, e.Message)
}

func (e *StatusError) Unwrap() error {
	return e.Err
}

// Client is a GitHub repository search client
type Client struct {
	gh     *github.Client
	logger *slog.Logger
}

type options struct {
	baseURL    string
	httpClient *http.Client
	logger     *slog.Logger
}

// Option configures a Client
type Option func(*options)

// WithBaseURL points the client at another API root (GitHub Enterprise or a test server)
func WithBaseURL(raw string) Option {
	return func(o *options) {
		o.baseURL = raw
	}
}

// WithHTTPClient sets the client whose transport carries the requests
func WithHTTPClient(c *http.Client) Option {
	return func(o *options) {
		o.httpClient = c
	}
}

// WithLogger sets the logger
func WithLogger(logger *slog.Logger) Option {
	return func(o *options) {
		o.logger = logger
	}
}

// NewClient creates a search client authenticated with token
func NewClient(ctx context.Context, token string, opts ...Option) (*Client, error) {
	o := options{
		httpClient: cleanhttp.DefaultPooledClient(),
		logger:     slog.Default(),
	}

	for _, opt := range opts {
		opt(&o)
	}

	ctx = context.WithValue(ctx, oauth2.HTTPClient, o.httpClient)
	ts := oauth2.StaticTokenSource(&oauth2.Token{AccessToken: token, TokenType: tokenType})
	gh := github.NewClient(oauth2.NewClient(ctx, ts))

	if o.baseURL != "" {
		base, err := parseBaseURL(o.baseURL)
		if err != nil {
			return nil, err
		}

		gh.BaseURL = base
	}

	return &Client{gh: gh, logger: o.logger}, nil
}

// Fetch runs one search request and converts the items into records
func (c *Client) Fetch(ctx context.Context, query string, page Page) ([]model.Repository, error) {
	opts := &github.SearchOptions{
		ListOptions: github.ListOptions{Page: page.Number, PerPage: page.Size},
	}

	c.logger.Debug("searching repositories",
		slog.String("query", query),
		slog.Int("page", page.Number),
		slog.Int("per_page", page.Size))

	result, _, err := c.gh.Search.Repositories(ctx, query, opts)
	if err != nil {
		return nil, classify(err)
	}

	repos := make([]model.Repository, 0, len(result.Repositories))
	for _, r := range result.Repositories {
		repos = append(repos, toModel(r))
	}

	return repos, nil
}

func toModel(r *github.Repository) model.Repository {
	return model.Repository{
		Name:        r.GetName(),
		URL:         r.GetHTMLURL(),
		Description: r.GetDescription(),
		CreatedAt:   r.GetCreatedAt().Time,
	}
}

// classify turns go-github response errors into a StatusError
func classify(err error) error {
	var (
		errResp  *github.ErrorResponse
		rateErr  *github.RateLimitError
		abuseErr *github.AbuseRateLimitError
	)

	switch {
	case errors.As(err, &rateErr) && rateErr.Response != nil:
		return &StatusError{StatusCode: rateErr.Response.StatusCode, Message: rateErr.Message, Err: err}
	case errors.As(err, &abuseErr) && abuseErr.Response != nil:
		return &StatusError{StatusCode: abuseErr.Response.StatusCode, Message: abuseErr.Message, Err: err}
	case errors.As(err, &errResp) && errResp.Response != nil:
		return &StatusError{StatusCode: errResp.Response.StatusCode, Message: errResp.Message, Err: err}
	}

	return fmt.Errorf("search request failed: %w", err)
}

func parseBaseURL(raw string) (*url.URL, error) {
	if !strings.HasSuffix(raw, "/") {
		raw += "/"
	}

	u, err := url.Parse(raw)
	if err != nil {
		return nil, fmt.Errorf("invalid API URL %q: %w", raw, err)
	}

	if u.Scheme != "http" && u.Scheme != "https" {
		return nil, fmt.Errorf("invalid API URL %q: scheme must be http or https", raw)
	}

	return u, nil
}

// Describe returns the operator-facing message for a failed fetch
func Describe(err error) string {
	var statusErr *StatusError
	if errors.As(err, &statusErr) {
		return fmt.Sprintf("Failed to fetch data from GitHub API. Status code: %d", statusErr.StatusCode)
	}

	return fmt.Sprintf("An error occurred: %v", err)
}
