// Package domain defines the core business entities for the syllabus browser.
//
// This package is part of the hexagonal architecture's innermost layer.
// It has NO external dependencies and defines the fundamental types:
//
//   - Semester: An ordered group of subjects with a credit total
//   - Subject: A course within a semester, made of ordered units
//   - Note: Free text attached to a subject
//   - PDFResource: A reference to a PDF file or URL attached to a subject
//
// # Architectural Position
//
// Domain is at the centre of the hexagon. It may only import
// the Go standard library. All other packages depend on domain,
// never the reverse.
//
// # Import Rules
//
//   - Can Import: Standard library only
//   - Cannot Import: Any internal/ package, any external dependency
package domain
