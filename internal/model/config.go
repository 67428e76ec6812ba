package model

// Config holds the application configuration
type Config struct {
	// APIURL is the base URL of the GitHub REST API
	APIURL string `mapstructure:"api-url"`

	// Token overrides the stored token for one run; never persisted
	Token string `mapstructure:"token"`

	// Pages is the number of pages fetched concurrently by multi-page searches
	Pages int `mapstructure:"pages"`

	// PerPage is the page size requested from the search API
	PerPage int `mapstructure:"per-page"`

	// CloneDir is the directory repositories are cloned into
	CloneDir string `mapstructure:"clone-dir"`

	// CloneArgs are extra arguments passed to git clone, shell-quoted
	CloneArgs string `mapstructure:"clone-args"`

	// CloneLayout is "flat" (<clone-dir>/<name>) or "owner" (<clone-dir>/<owner>/<name>)
	CloneLayout string `mapstructure:"clone-layout"`

	// SettingsFile is the JSON file holding the GitHub token
	SettingsFile string `mapstructure:"settings-file"`

	// StateFile is the JSON file holding the last search time
	StateFile string `mapstructure:"state-file"`

	// HistoryFile is the bbolt database of cloned repositories
	HistoryFile string `mapstructure:"history-file"`

	// NoTUI disables the bubbletea menu and spinner
	NoTUI bool `mapstructure:"no-tui"`

	// Verbose enables debug logging
	Verbose bool `mapstructure:"verbose"`
}

const (
	// DefaultAPIURL is the public GitHub API
	DefaultAPIURL = "https://api.github.com/"

	// DefaultPages is the number of pages fetched by multi-page searches
	DefaultPages = 5

	// DefaultPerPage is the page size for searches
	DefaultPerPage = 10
)

// DefaultConfig returns a Config with sensible defaults. File locations are
// left empty and resolved by the application package.
func DefaultConfig() Config {
	return Config{
		APIURL:      DefaultAPIURL,
		Pages:       DefaultPages,
		PerPage:     DefaultPerPage,
		CloneDir:    ".",
		CloneLayout: "flat",
	}
}

// Normalize replaces non-positive page settings with defaults
func (c *Config) Normalize() {
	if c.Pages <= 0 {
		c.Pages = DefaultPages
	}

	if c.PerPage <= 0 {
		c.PerPage = DefaultPerPage
	}

	if c.APIURL == "" {
		c.APIURL = DefaultAPIURL
	}

	if c.CloneDir == "" {
		c.CloneDir = "."
	}

	if c.CloneLayout == "" {
		c.CloneLayout = "flat"
	}
}
