// Package driven defines the interfaces that core calls OUT to infrastructure.
//
// These are the "driven" or "secondary" ports in hexagonal architecture.
// Core services depend on these interfaces, and infrastructure adapters
// implement them.
//
// # Required Interfaces
//
//   - SyllabusRepository: Semester/subject/unit persistence
//   - NoteRepository: Note persistence
//   - PDFRepository: PDF reference persistence
//   - ConfigStore: Application configuration
//
// # Optional Interfaces
//
//   - ReportRenderer: Writes a printable syllabus. Export is disabled without it.
//
// Repositories follow a load-all / save-all contract: services load the
// collection once and hand the whole collection back after each mutation.
// The medium (SQLite, memory) can be swapped without touching the services.
//
// # Import Rules
//
//   - Can Import: domain package only
//   - Cannot Import: Any adapter or driving package
package driven
