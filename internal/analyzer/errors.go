package analyzer

import "fmt"

// InputError represents a boundary rejection of the raw input, before the
// pipeline runs. Content-level problems never produce errors; only inputs
// the pipeline refuses to touch do.
type InputError struct {
	Reason string
	Size   int
	Limit  int
}

func (e *InputError) Error() string {
	if e.Limit > 0 {
		return fmt.Sprintf("invalid input: %s (%d bytes, limit %d)", e.Reason, e.Size, e.Limit)
	}
	return fmt.Sprintf("invalid input: %s", e.Reason)
}
