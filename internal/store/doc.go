// Package store reads and writes design-case files.
//
// Cases are YAML documents (JSON works too; YAML subsumes it) with one
// optional section per calculator. Parsing is strict: a misspelled
// parameter fails the load rather than silently falling back to a default.
// Writes go through a temp file and a rename so a crash never leaves a
// half-written case behind.
package store
