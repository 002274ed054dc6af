// Package sqlite provides a SQLite-based implementation of the repository ports.
//
// This adapter uses modernc.org/sqlite, a pure Go SQLite implementation that requires
// no CGO, enabling easy cross-compilation. One database connection backs three
// repositories:
//
//   - SyllabusRepository: semesters, subjects and ordered units
//   - NoteRepository: notes in creation order
//   - PDFRepository: PDF references in creation order
//
// Each Save replaces the whole collection inside one transaction, so a failed
// save leaves the previous contents in place.
//
// # Schema
//
// The database schema is managed through versioned migrations stored in the
// migrations/ directory. Each migration is a pair of .up.sql and .down.sql files.
//
// # Data Location
//
// By default, the database is stored at ~/.syllabus/data/syllabus.db
package sqlite
