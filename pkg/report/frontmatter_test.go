package report

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseFrontmatter_VerificationReport(t *testing.T) {
	fm, body, err := ParseFrontmatter(VerificationReport())
	require.NoError(t, err)

	assert.Equal(t, "08-registration-foundation", fm.Phase)
	assert.Equal(t, time.Date(2026, time.January, 26, 8, 17, 29, 0, time.UTC), fm.Verified.UTC())
	assert.Equal(t, "human_needed", fm.Status)
	assert.Equal(t, "4/4 must-haves verified", fm.Score)

	require.Len(t, fm.HumanVerification, 4)
	assert.Equal(t, HumanCheck{
		Test:     "Register first user and verify admin role assignment",
		Expected: "First registered user can access admin features",
		WhyHuman: "Requires running app and verifying role-based UI behavior",
	}, fm.HumanVerification[0])
	assert.Equal(t, "Verify validation errors display correctly", fm.HumanVerification[3].Test)
	assert.Equal(t,
		"Requires running app to verify UI validation behavior",
		fm.HumanVerification[3].WhyHuman)

	assert.Equal(t, Document{"", "# Phase 8: Registration Foundation Verification Report"}, body)
	assert.Equal(t, "Phase 8: Registration Foundation Verification Report", Title(body))
}

func TestParseFrontmatter_Errors(t *testing.T) {
	tests := []struct {
		name    string
		doc     Document
		wantErr string
	}{
		{
			name:    "empty document",
			doc:     Document{},
			wantErr: "missing frontmatter opening",
		},
		{
			name:    "no opening delimiter",
			doc:     Document{"phase: 08", "---", "# Title"},
			wantErr: "missing frontmatter opening",
		},
		{
			name:    "no closing delimiter",
			doc:     Document{"---", "phase: 08", "# Title"},
			wantErr: "missing frontmatter closing",
		},
		{
			name:    "invalid yaml",
			doc:     Document{"---", "phase: [08", "---"},
			wantErr: "error decoding frontmatter",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fm, body, err := ParseFrontmatter(tt.doc)
			require.Error(t, err)
			assert.Nil(t, fm)
			assert.Nil(t, body)
			assert.True(t, errors.Is(err, ErrMalformed))
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestParseFrontmatter_EmptyBlock(t *testing.T) {
	fm, body, err := ParseFrontmatter(Document{"---", "---"})
	require.NoError(t, err)
	assert.Empty(t, fm.Phase)
	assert.Empty(t, fm.HumanVerification)
	assert.Empty(t, body)
	assert.Equal(t, "", Title(body))
}
