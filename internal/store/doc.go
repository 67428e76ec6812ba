// Package store persists the two small records cvehunt keeps between runs.
//
// # Credentials
//
// [Credentials] reads and writes the settings file, a flat JSON object whose
// GITHUB_TOKEN key holds the token used for search requests. A missing token
// is prompted for once and saved.
//
// # Search state
//
// [SearchState] reads and writes the time of the last "new CVE" search:
//
//	{"last_search_time": "2024-01-01T00:00:00Z"}
//
// Both files are replaced wholesale on every save. All file access goes
// through an [afero.Fs] so tests can run against memory.
package store
