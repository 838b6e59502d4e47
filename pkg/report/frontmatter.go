package report

import (
	"fmt"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

// Frontmatter is the decoded frontmatter block of a verification report.
//
// Example:
//
//	---
//	phase: 08-registration-foundation
//	verified: 2026-01-26T08:17:29Z
//	status: human_needed
//	score: 4/4 must-haves verified
//	human_verification:
//	  - test: "Register first user and verify admin role assignment"
//	    expected: "First registered user can access admin features"
//	    why_human: "Requires running app and verifying role-based UI behavior"
//	---
type Frontmatter struct {
	Phase             string       `yaml:"phase"`
	Verified          time.Time    `yaml:"verified"`
	Status            string       `yaml:"status"`
	Score             string       `yaml:"score"`
	HumanVerification []HumanCheck `yaml:"human_verification"`
}

// HumanCheck is a check that could not be verified automatically.
type HumanCheck struct {
	Test     string `yaml:"test"`
	Expected string `yaml:"expected"`
	WhyHuman string `yaml:"why_human"`
}

// ParseFrontmatter decodes the frontmatter block at the top of doc and returns
// it along with the remaining body lines.
//
// Format: ---\n<yaml>\n---\n<body>
func ParseFrontmatter(doc Document) (*Frontmatter, Document, error) {
	if len(doc) == 0 || doc[0] != FrontmatterDelimiter {
		return nil, nil, fmt.Errorf(
			"%w: missing frontmatter opening %q", ErrMalformed, FrontmatterDelimiter)
	}

	end := -1
	for i := 1; i < len(doc); i++ {
		if doc[i] == FrontmatterDelimiter {
			end = i
			break
		}
	}
	if end == -1 {
		return nil, nil, fmt.Errorf(
			"%w: missing frontmatter closing %q", ErrMalformed, FrontmatterDelimiter)
	}

	var fm Frontmatter
	block := strings.Join(doc[1:end], "\n")
	if err := yaml.Unmarshal([]byte(block), &fm); err != nil {
		return nil, nil, fmt.Errorf("%w: error decoding frontmatter: %w", ErrMalformed, err)
	}

	body := Document(doc[end+1:]).Lines()
	return &fm, body, nil
}

// Title returns the first markdown heading in the body, without the leading
// "# ".
func Title(body Document) string {
	for _, line := range body {
		if strings.HasPrefix(line, "# ") {
			return strings.TrimPrefix(line, "# ")
		}
	}
	return ""
}
