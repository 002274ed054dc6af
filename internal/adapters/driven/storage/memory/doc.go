// Package memory provides in-process implementations of the driven ports.
//
// The repositories keep deep copies of whatever they are given, so callers
// can never alias stored state. They are used by tests and by the
// "memory" storage backend.
package memory
