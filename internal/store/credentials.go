package store

import (
	"errors"
	"fmt"
	"log/slog"

	"github.com/cli/go-gh/v2/pkg/auth"
	"github.com/spf13/afero"

	"github.com/inovacc/cvehunt/internal/encoding"
	"github.com/inovacc/cvehunt/internal/ui"
)

// TokenKey is the settings key holding the GitHub token
const TokenKey = "GITHUB_TOKEN"

const tokenPrompt = "Enter your GitHub token"

// ErrEmptyToken is returned when the operator enters no token
var ErrEmptyToken = errors.New("no GitHub token entered")

// Settings maps option names to arbitrary JSON values
type Settings map[string]any

// Credentials persists the GitHub token in the settings file
type Credentials struct {
	fs       afero.Fs
	path     string
	prompter ui.Prompter
	suggest  func() string
	logger   *slog.Logger
}

// CredentialsOption configures Credentials
type CredentialsOption func(*Credentials)

// WithSuggester sets a function whose result is offered as the default
// answer when prompting for a token
func WithSuggester(fn func() string) CredentialsOption {
	return func(c *Credentials) {
		c.suggest = fn
	}
}

// WithCredentialsLogger sets the logger
func WithCredentialsLogger(logger *slog.Logger) CredentialsOption {
	return func(c *Credentials) {
		c.logger = logger
	}
}

// NewCredentials creates a credential store backed by the settings file at path
func NewCredentials(fs afero.Fs, path string, prompter ui.Prompter, opts ...CredentialsOption) *Credentials {
	c := &Credentials{
		fs:       fs,
		path:     path,
		prompter: prompter,
		logger:   slog.Default(),
	}

	for _, opt := range opts {
		opt(c)
	}

	return c
}

// Path returns the settings file location
func (c *Credentials) Path() string {
	return c.path
}

// LoadSettings reads the settings file. A missing file yields empty settings.
func (c *Credentials) LoadSettings() (Settings, error) {
	settings, err := encoding.LoadJSON[Settings](c.fs, c.path)
	if err != nil {
		return nil, err
	}

	if settings == nil || *settings == nil {
		return Settings{}, nil
	}

	return *settings, nil
}

// SaveSettings overwrites the settings file
func (c *Credentials) SaveSettings(settings Settings) error {
	return encoding.SaveJSON(c.fs, c.path, settings, 0600)
}

// Token returns the stored token, prompting for and saving one when absent
func (c *Credentials) Token() (string, error) {
	settings, err := c.LoadSettings()
	if err != nil {
		return "", err
	}

	if token, ok := settings[TokenKey].(string); ok && token != "" {
		return token, nil
	}

	var suggestion string
	if c.suggest != nil {
		suggestion = c.suggest()
	}

	token, err := c.prompter.Ask(tokenPrompt, suggestion)
	if err != nil {
		return "", fmt.Errorf("failed to read token: %w", err)
	}

	if token == "" {
		return "", ErrEmptyToken
	}

	settings[TokenKey] = token

	if err := c.SaveSettings(settings); err != nil {
		return "", err
	}

	c.logger.Debug("token saved", slog.String("path", c.path))

	return token, nil
}

// DiscoverToken looks for a token in GH_TOKEN, GITHUB_TOKEN and the gh CLI
// configuration, in that order. Returns an empty string when none is found.
func DiscoverToken() string {
	token, _ := auth.TokenForHost("github.com")
	return token
}
