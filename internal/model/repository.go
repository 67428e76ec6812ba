package model

import "time"

// NoDescription is shown for repositories without a description
const NoDescription = "No description"

// Repository is a single repository search hit
type Repository struct {
	// Name is the repository name (without owner)
	Name string `json:"name"`

	// URL is the canonical web URL of the repository
	URL string `json:"html_url"`

	// Description is optional and empty when missing
	Description string `json:"description,omitempty"`

	// CreatedAt is when the repository was created on the host
	CreatedAt time.Time `json:"created_at"`
}

// DisplayDescription returns the description or a placeholder
func (r Repository) DisplayDescription() string {
	if r.Description == "" {
		return NoDescription
	}

	return r.Description
}
