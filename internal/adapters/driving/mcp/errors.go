// Package mcp provides an MCP (Model Context Protocol) server adapter for syllabus.
// It lets AI assistants browse the curriculum and read or write subject notes.
package mcp

import "errors"

// ErrMissingSyllabusStore is returned when the syllabus store is not provided.
var ErrMissingSyllabusStore = errors.New("mcp: syllabus store is required")

// ErrMissingNotesStore is returned when the notes store is not provided.
var ErrMissingNotesStore = errors.New("mcp: notes store is required")

// ErrMissingPDFStore is returned when the PDF store is not provided.
var ErrMissingPDFStore = errors.New("mcp: pdf store is required")
