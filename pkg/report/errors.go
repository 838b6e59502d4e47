package report

import "errors"

var (
	// ErrIO is returned when the report file cannot be opened, written, closed
	// or read.
	ErrIO = errors.New("report I/O failure")

	// ErrMalformed is returned when a report's frontmatter block is missing or
	// is not valid YAML.
	ErrMalformed = errors.New("malformed report")
)
