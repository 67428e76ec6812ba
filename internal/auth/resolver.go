// Package auth resolves the GitHub token from an ordered list of sources.
package auth

import (
	"errors"
	"fmt"
	"log/slog"
	"strings"
)

// ErrNoToken is returned when no source provides a token
var ErrNoToken = errors.New("no token available")

// Source indicates where a token was found
type Source string

const (
	SourceFlag   Source = "flag"
	SourceConfig Source = "config"
	SourceNone   Source = "none"
)

// Result contains the resolved token and its source
type Result struct {
	Token  string
	Source Source
	Name   string // The specific source name (e.g., "flag", "settings.json")
}

// TokenProvider is a function that attempts to provide a token.
// Returns the token and source name if found, or empty string if not available.
// Returns an error only for unexpected failures (not for missing token).
type TokenProvider func() (token string, sourceName string, err error)

// Resolver resolves tokens from multiple sources in priority order
type Resolver struct {
	providers   []TokenProvider
	serviceName string
	logger      *slog.Logger
}

// NewResolver creates a new token resolver for a service
func NewResolver(serviceName string, logger *slog.Logger) *Resolver {
	if logger == nil {
		logger = slog.Default()
	}

	return &Resolver{
		serviceName: serviceName,
		providers:   make([]TokenProvider, 0),
		logger:      logger,
	}
}

// WithFlagValue adds a flag value directly (for when value is already known)
func (r *Resolver) WithFlagValue(value string) *Resolver {
	r.providers = append(r.providers, func() (string, string, error) {
		if value != "" {
			return value, "flag", nil
		}

		return "", "", nil
	})

	return r
}

// WithProvider adds a custom token provider
func (r *Resolver) WithProvider(provider TokenProvider) *Resolver {
	r.providers = append(r.providers, provider)
	return r
}

// Resolve attempts to find a token from all configured sources in order.
// Returns the first successful token found, or an error if no token is available.
func (r *Resolver) Resolve() (*Result, error) {
	for _, provider := range r.providers {
		token, sourceName, err := provider()
		if err != nil {
			return nil, fmt.Errorf("%s token: %w", r.serviceName, err)
		}

		if token != "" {
			result := &Result{
				Token:  token,
				Source: categorizeSource(sourceName),
				Name:   sourceName,
			}

			r.logger.Debug("token resolved",
				slog.String("service", r.serviceName),
				slog.String("source", string(result.Source)),
				slog.String("name", result.Name))

			return result, nil
		}
	}

	return nil, fmt.Errorf("%s token: %w", r.serviceName, ErrNoToken)
}

// Token returns the resolved token
func (r *Resolver) Token() (string, error) {
	result, err := r.Resolve()
	if err != nil {
		return "", err
	}

	return result.Token, nil
}

// categorizeSource determines the Source category from a source name
func categorizeSource(name string) Source {
	switch {
	case name == "flag":
		return SourceFlag
	case name == "config" || strings.HasSuffix(name, ".json"):
		return SourceConfig
	default:
		return SourceNone
	}
}
