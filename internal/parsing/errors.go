package parsing

import "fmt"

// DecodeError is the one fatal failure mode of a parse: the text source
// could not decode the input file. Heuristic misses never produce errors.
type DecodeError struct {
	Path  string
	Cause error
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("failed to decode %s: %v", e.Path, e.Cause)
}

func (e *DecodeError) Unwrap() error {
	return e.Cause
}
