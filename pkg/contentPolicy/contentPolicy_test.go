package contentPolicy

import (
	"strings"
	"testing"

	"github.com/xmiraclez/Pastebin-AVS-Proto/pkg/types"
	"github.com/stretchr/testify/assert"
)

func TestContentPolicy_Validate(t *testing.T) {
	policy := NewDefaultContentPolicy()

	tests := []struct {
		name     string
		content  string
		expected types.ValidationVerdict
	}{
		{
			name:     "valid content",
			content:  "hello world",
			expected: types.ValidationVerdict{IsValid: true, Reason: "Content is valid"},
		},
		{
			name:     "exactly at the size limit",
			content:  strings.Repeat("a", 10000),
			expected: types.ValidationVerdict{IsValid: true, Reason: "Content is valid"},
		},
		{
			name:     "too large wins over everything",
			content:  strings.Repeat("spam ", 2001),
			expected: types.ValidationVerdict{IsValid: false, Reason: "Content too large"},
		},
		{
			name:     "too large whitespace only",
			content:  strings.Repeat(" ", 10001),
			expected: types.ValidationVerdict{IsValid: false, Reason: "Content too large"},
		},
		{
			name:     "empty",
			content:  "",
			expected: types.ValidationVerdict{IsValid: false, Reason: "Content is empty"},
		},
		{
			name:     "whitespace only",
			content:  " \t\n  ",
			expected: types.ValidationVerdict{IsValid: false, Reason: "Content is empty"},
		},
		{
			name:     "forbidden word",
			content:  "this is a scam",
			expected: types.ValidationVerdict{IsValid: false, Reason: "Content contains forbidden word: scam"},
		},
		{
			name:     "forbidden word any case",
			content:  "HaCkInG tutorial",
			expected: types.ValidationVerdict{IsValid: false, Reason: "Content contains forbidden word: hack"},
		},
		{
			name:     "forbidden word as substring",
			content:  "my spammer friend",
			expected: types.ValidationVerdict{IsValid: false, Reason: "Content contains forbidden word: spam"},
		},
		{
			name:     "denylist order decides between multiple words",
			content:  "hack the scam and spam",
			expected: types.ValidationVerdict{IsValid: false, Reason: "Content contains forbidden word: spam"},
		},
		{
			name:     "scam before hack",
			content:  "HACK SCAM",
			expected: types.ValidationVerdict{IsValid: false, Reason: "Content contains forbidden word: scam"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, policy.Validate(tt.content))
		})
	}
}

func TestContentPolicy_Deterministic(t *testing.T) {
	policy := NewDefaultContentPolicy()
	for i := 0; i < 10; i++ {
		assert.Equal(t, policy.Validate("hack and scam"), policy.Validate("hack and scam"))
	}
}

func TestContentPolicy_LengthCountsBytes(t *testing.T) {
	policy := NewContentPolicy(&ContentPolicyConfig{MaxContentBytes: 4})

	// "é" is two bytes in UTF-8
	assert.Equal(t, ReasonValid, policy.Validate("éé").Reason)
	assert.Equal(t, ReasonTooLarge, policy.Validate("ééé").Reason)
}

func TestContentPolicy_ConfiguredDenylist(t *testing.T) {
	policy := NewContentPolicy(&ContentPolicyConfig{
		Denylist: []string{" Phish ", "", "RUG"},
	})
	assert.Equal(t, []string{"phish", "rug"}, policy.Denylist())

	assert.Equal(t, "Content contains forbidden word: rug", policy.Validate("a rug pull").Reason)
	assert.Equal(t, "Content contains forbidden word: phish", policy.Validate("RUG phishing").Reason)
	// default words no longer apply
	assert.True(t, policy.Validate("spam").IsValid)
}

func TestContentPolicy_EmptyDenylistDisablesWordCheck(t *testing.T) {
	policy := NewContentPolicy(&ContentPolicyConfig{Denylist: []string{}})
	verdict := policy.Validate("this is a scam")
	assert.True(t, verdict.IsValid)
	assert.Equal(t, ReasonValid, verdict.Reason)
}
