// Package cli provides the terminal user interface components for cvehunt.
//
// The package uses [Bubbletea] for building interactive terminal UIs and
// [Lipgloss] for styling. All UI components follow the standard Bubbletea
// Model-View-Update (MVU) architecture.
//
// # Components
//
//   - Menu: the main menu, usable as a core.Chooser through [Menu]
//   - Clone: spinner shown while a repository is cloned, usable as a
//     git.Cloner through [SpinnerCloner]
//
// Both are only used when stdin and stdout are terminals; otherwise the
// line-oriented equivalents in the core package are used.
//
// [Bubbletea]: https://github.com/charmbracelet/bubbletea
// [Lipgloss]: https://github.com/charmbracelet/lipgloss
package cli
