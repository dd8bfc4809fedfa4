package docfmt

import (
	"io"
	"os"

	"github.com/rs/zerolog"
	"github.com/spf13/afero"
)

// Writer delivers rendered text to a file path or a default output
// stream. The zero value is not usable; construct with [NewWriter] and
// override fields as needed.
type Writer struct {
	// Fs is the destination filesystem.
	Fs afero.Fs
	// Stdout is the default output stream used when no path is given.
	Stdout io.Writer
	// Logger receives non-fatal diagnostics. Defaults to a no-op.
	Logger zerolog.Logger
}

// NewWriter returns a writer backed by the OS filesystem and standard
// output.
func NewWriter() *Writer {
	return &Writer{Fs: afero.NewOsFs(), Stdout: os.Stdout, Logger: zerolog.Nop()}
}

// Write delivers text to path, or to the default stream when path is
// empty. Files receive exactly the rendered text, byte for byte; the
// stream gets one trailing newline so interactive output stays
// readable. Failures, including partial writes, return a
// *FileOperationError carrying the path and cause.
func (w *Writer) Write(text, path string) error {
	if path == "" {
		if _, err := io.WriteString(w.Stdout, text+"\n"); err != nil {
			return &FileOperationError{Path: "<stdout>", Err: err}
		}
		return nil
	}

	f, err := w.Fs.Create(path)
	if err != nil {
		return &FileOperationError{Path: path, Err: err}
	}
	n, werr := f.Write([]byte(text))
	if werr == nil && n < len(text) {
		werr = io.ErrShortWrite
	}
	cerr := f.Close()
	if werr != nil {
		return &FileOperationError{Path: path, Err: werr}
	}
	if cerr != nil {
		return &FileOperationError{Path: path, Err: cerr}
	}
	w.Logger.Info().Str("path", path).Msg("output written")
	return nil
}
