package minidown

import (
	"errors"
	"fmt"
)

// DiagnosticPrefix starts every failure message handed to a Renderer.
const DiagnosticPrefix = "System Error: "

var (
	// ErrUnexpectedFailure matches every failure raised while formatting blocks.
	ErrUnexpectedFailure = errors.New("unexpected processing failure")
	// ErrNilSession is returned when a fetcher is given a nil session.
	ErrNilSession = errors.New("nil session")
	// ErrNotLink is returned when a selection does not carry a link target.
	ErrNotLink = errors.New("element is not a link")
	// ErrEmptyContent is returned when the fetched content is empty.
	ErrEmptyContent = errors.New("content is empty")
)

// ProcessingError reports the block whose formatting aborted a conversion.
type ProcessingError struct {
	Block int
	Cause error
}

func (e *ProcessingError) Error() string {
	return fmt.Sprintf("block %d: %v", e.Block, e.Cause)
}

func (e *ProcessingError) Unwrap() []error {
	return []error{ErrUnexpectedFailure, e.Cause}
}

// panicError converts a recovered panic value into an error.
func panicError(v any) error {
	if err, ok := v.(error); ok {
		return fmt.Errorf("panic: %w", err)
	}
	return fmt.Errorf("panic: %v", v)
}
