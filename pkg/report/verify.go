package report

import (
	"fmt"
	"strings"

	"github.com/hashicorp/go-multierror"
	"github.com/spf13/afero"
)

// Read reads the report at path and returns its lines. A trailing newline does
// not produce an extra empty line.
func Read(fs afero.Fs, path string) (Document, error) {
	data, err := afero.ReadFile(fs, path)
	if err != nil {
		return nil, fmt.Errorf("%w: error reading %s: %w", ErrIO, path, err)
	}

	return splitLines(string(data)), nil
}

func splitLines(content string) Document {
	if content == "" {
		return Document{}
	}
	content = strings.TrimSuffix(content, "\n")
	return Document(strings.Split(content, "\n"))
}

// Verify checks that the report at path matches want line for line and that
// its frontmatter decodes. Every discrepancy found is returned in a
// multierror.
func Verify(fs afero.Fs, path string, want Document) error {
	data, err := afero.ReadFile(fs, path)
	if err != nil {
		return fmt.Errorf("%w: error reading %s: %w", ErrIO, path, err)
	}

	var result *multierror.Error

	content := string(data)
	if !strings.HasSuffix(content, "\n") {
		result = multierror.Append(result,
			fmt.Errorf("%s does not end with a newline", path))
	}

	got := splitLines(content)

	// Compare line count.
	if len(got) != len(want) {
		result = multierror.Append(result,
			fmt.Errorf("line count not equal, file=%d, want=%d", len(got), len(want)))
	}

	// Compare lines.
	n := min(len(got), len(want))
	for i := 0; i < n; i++ {
		if got[i] != want[i] {
			result = multierror.Append(result,
				fmt.Errorf("line %d not equal, file=%q, want=%q", i+1, got[i], want[i]))
		}
	}

	// Frontmatter must still decode.
	if _, _, err := ParseFrontmatter(got); err != nil {
		result = multierror.Append(result, err)
	}

	return result.ErrorOrNil()
}
