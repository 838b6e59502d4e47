// Package report writes and checks phase verification reports: markdown
// files that open with a YAML frontmatter block followed by a title.
package report

import "strings"

const (
	// FileName is the verification report written for phase 8.
	FileName = "08-VERIFICATION.md"

	// FrontmatterDelimiter opens and closes the frontmatter block.
	FrontmatterDelimiter = "---"

	// WrittenMessage is printed once the report has been written.
	WrittenMessage = "Frontmatter written"

	// VerifiedMessage is printed once an existing report has been checked.
	VerifiedMessage = "Report verified"
)

// Document is an ordered sequence of lines. The order is the order in which
// the lines are written.
type Document []string

// Lines returns a copy of the document lines.
func (d Document) Lines() []string {
	lines := make([]string, len(d))
	copy(lines, d)
	return lines
}

// String renders the document as it appears on disk: every line followed by a
// single newline.
func (d Document) String() string {
	var b strings.Builder
	for _, line := range d {
		b.WriteString(line)
		b.WriteString("\n")
	}
	return b.String()
}

// Bytes is like String but returns bytes.
func (d Document) Bytes() []byte {
	return []byte(d.String())
}

// VerificationReport returns the phase 8 (registration foundation)
// verification report.
func VerificationReport() Document {
	return Document{
		FrontmatterDelimiter,
		"phase: 08-registration-foundation",
		"verified: 2026-01-26T08:17:29Z",
		"status: human_needed",
		"score: 4/4 must-haves verified",
		"human_verification:",
		`  - test: "Register first user and verify admin role assignment"`,
		`    expected: "First registered user can access admin features"`,
		`    why_human: "Requires running app and verifying role-based UI behavior"`,
		`  - test: "Register second user and verify Player role assignment"`,
		`    expected: "Second registered user does NOT have admin access"`,
		`    why_human: "Requires running app and verifying role-based UI behavior"`,
		`  - test: "Attempt duplicate username registration"`,
		`    expected: "Clear error message displayed on registration page"`,
		`    why_human: "Requires running app to test UI error display"`,
		`  - test: "Verify validation errors display correctly"`,
		`    expected: "Short password/username shows validation messages inline"`,
		`    why_human: "Requires running app to verify UI validation behavior"`,
		FrontmatterDelimiter,
		"",
		"# Phase 8: Registration Foundation Verification Report",
	}
}
