// Package model defines the data structures used throughout cvehunt.
//
// # Repository
//
// The [Repository] struct is one search hit. It only lives for a single
// search-and-select cycle and is never persisted:
//
//	type Repository struct {
//	    Name        string    // Repository name, used as clone directory
//	    URL         string    // Canonical html_url
//	    Description string    // Empty when GitHub returns null
//	    CreatedAt   time.Time // Repository creation time
//	}
//
// # Clone
//
// The [Clone] struct records a repository cloned from a search result. It is
// stored in the history database.
//
// # Config
//
// The [Config] struct holds the options bound from flags and environment.
package model
