package docfmt

import (
	"errors"
	"fmt"
)

// Sentinel errors for programmatic error handling.
var (
	// ErrUnsupportedFormat reports a format selector outside the
	// supported set.
	ErrUnsupportedFormat = errors.New("unsupported format")
	// ErrRowShape reports a CSV or table rendering request on a
	// canonical value that is not a sequence of mappings.
	ErrRowShape = errors.New("requires a sequence of mappings")
)

// FileOperationError wraps an I/O failure at the destination writer
// with the path involved and the underlying cause.
type FileOperationError struct {
	Path string
	Err  error
}

func (e *FileOperationError) Error() string {
	return fmt.Sprintf("writing output to %s: %v", e.Path, e.Err)
}

func (e *FileOperationError) Unwrap() error { return e.Err }
