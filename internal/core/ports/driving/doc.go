// Package driving declares what the TUI, CLI and MCP adapters may ask of the
// core: the three stores, settings and export. Services in
// internal/core/services implement them; the view coordinator consumes them.
package driving
