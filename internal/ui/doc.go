// Package ui holds the console-facing pieces of cvehunt that do not need a
// full-screen terminal program: the styled output sink, line prompts, the
// results table and the selection loop.
//
// Every type takes its reader and writer explicitly so tests can drive them
// with in-memory buffers.
package ui
