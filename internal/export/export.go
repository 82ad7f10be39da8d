// Package export offers the two report export operations: copying the
// raw markdown to the system clipboard and writing a paginated PDF.
// Neither touches the submission state machine.
package export

import "fmt"

// Error indicates an export operation was denied or failed by the host
// environment (clipboard access, file system, PDF rendering).
type Error struct {
	Op  string // "copy" or "pdf"
	Err error
}

func (e *Error) Error() string {
	return fmt.Sprintf("export %s: %v", e.Op, e.Err)
}

func (e *Error) Unwrap() error { return e.Err }
