package report

import (
	"fmt"
	"io"
	"os"

	"github.com/hashicorp/go-multierror"
	"github.com/spf13/afero"
)

// Write writes doc to path on fs, creating the file or truncating an existing
// one. Each line is followed by a single newline. The file is always closed
// before Write returns.
func Write(fs afero.Fs, path string, doc Document) (err error) {
	f, err := fs.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0644)
	if err != nil {
		return fmt.Errorf("%w: error opening %s: %w", ErrIO, path, err)
	}
	defer func() {
		if cerr := f.Close(); cerr != nil {
			cerr = fmt.Errorf("%w: error closing %s: %w", ErrIO, path, cerr)
			if err == nil {
				err = cerr
			} else {
				err = multierror.Append(err, cerr)
			}
		}
	}()

	for i, line := range doc {
		if _, err := io.WriteString(f, line+"\n"); err != nil {
			return fmt.Errorf("%w: error writing line %d of %s: %w",
				ErrIO, i+1, path, err)
		}
	}

	return nil
}
