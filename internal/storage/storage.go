// Package storage abstracts where the serialized booking database blob
// lives. The repository layer only ever reads and rewrites the whole
// blob, so the port is deliberately small.
package storage

// Store is the persistence port for a single text blob.
type Store interface {
	// Read returns the current blob. Implementations return an error
	// only for real I/O failures, not for a missing blob.
	Read() (string, error)
	// Write replaces the blob wholesale.
	Write(content string) error
	// Exists reports whether a blob has ever been written.
	Exists() bool
}
