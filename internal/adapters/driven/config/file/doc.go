// Package file keeps settings in ~/.syllabus/config.toml.
//
// ConfigStore flattens TOML tables to dot-notation keys and writes the file
// back on every Set. Watcher reloads the store when another process edits
// the file, so a running TUI follows `syllabus theme dark`.
package file
