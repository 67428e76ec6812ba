// Package core provides the session logic for cvehunt.
//
// A [Session] runs the four search operations (CVE identifier, new CVEs,
// creation date, keyword), the help text and the menu loop. It owns no I/O of
// its own: operator output goes through a ui.Console, answers come from a
// ui.Prompter, files are reached through the store package and searches
// through a search.Searcher built from the resolved token.
//
// # Design Principles
//
//   - Search, token and clone failures are reported on the console and the
//     session carries on
//   - Only settings, state and history I/O errors are returned to the caller
//   - UI-specific logic belongs in the ui and cli packages, not here
//
// # Menu
//
// The menu is abstracted by [Chooser]. [LineMenu] prints a numbered menu and
// reads the choice through the prompter; the cli package provides a
// bubbletea implementation for interactive terminals.
package core
