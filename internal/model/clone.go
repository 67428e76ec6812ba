package model

import "time"

// Clone is a repository cloned from a search result
type Clone struct {
	// UID is the unique identifier for the clone record
	UID string `json:"uid"`

	// Name is the repository name
	Name string `json:"name"`

	// URL is the URL the clone was made from
	URL string `json:"url"`

	// Origin is the remote origin URL read back from .git/config
	Origin string `json:"origin,omitempty"`

	// Path is the local path of the clone
	Path string `json:"path"`

	// Query is the search expression that surfaced the repository
	Query string `json:"query,omitempty"`

	// ClonedAt is when the clone finished
	ClonedAt time.Time `json:"cloned_at"`
}
