// Package contentPolicy decides whether a paste's content is acceptable.
//
// It is a plain content filter applied inside the response pipeline and not a
// security boundary.
package contentPolicy

import (
	"fmt"
	"strings"

	"github.com/xmiraclez/Pastebin-AVS-Proto/pkg/types"
)

const (
	DefaultMaxContentBytes = 10000

	ReasonTooLarge = "Content too large"
	ReasonEmpty    = "Content is empty"
	ReasonValid    = "Content is valid"
)

var DefaultDenylist = []string{"spam", "scam", "hack"}

type ContentPolicyConfig struct {
	MaxContentBytes int
	Denylist        []string
}

type ContentPolicy struct {
	maxContentBytes int
	denylist        []string
}

func NewDefaultContentPolicy() *ContentPolicy {
	return NewContentPolicy(&ContentPolicyConfig{})
}

// NewContentPolicy builds a policy. A zero size limit or a nil denylist falls back to the
// defaults. Denylist entries are lowercased and blanks dropped, keeping declaration order.
func NewContentPolicy(cfg *ContentPolicyConfig) *ContentPolicy {
	maxBytes := DefaultMaxContentBytes
	denylist := DefaultDenylist
	if cfg != nil {
		if cfg.MaxContentBytes > 0 {
			maxBytes = cfg.MaxContentBytes
		}
		if cfg.Denylist != nil {
			denylist = cfg.Denylist
		}
	}

	words := make([]string, 0, len(denylist))
	for _, w := range denylist {
		w = strings.ToLower(strings.TrimSpace(w))
		if w == "" {
			continue
		}
		words = append(words, w)
	}

	return &ContentPolicy{
		maxContentBytes: maxBytes,
		denylist:        words,
	}
}

// Validate applies the rules in order; the first failing rule decides the verdict.
func (cp *ContentPolicy) Validate(content string) types.ValidationVerdict {
	if len(content) > cp.maxContentBytes {
		return types.ValidationVerdict{IsValid: false, Reason: ReasonTooLarge}
	}

	if strings.TrimSpace(content) == "" {
		return types.ValidationVerdict{IsValid: false, Reason: ReasonEmpty}
	}

	lowered := strings.ToLower(content)
	for _, word := range cp.denylist {
		if strings.Contains(lowered, word) {
			return types.ValidationVerdict{
				IsValid: false,
				Reason:  fmt.Sprintf("Content contains forbidden word: %s", word),
			}
		}
	}

	return types.ValidationVerdict{IsValid: true, Reason: ReasonValid}
}

func (cp *ContentPolicy) Denylist() []string {
	out := make([]string, len(cp.denylist))
	copy(out, cp.denylist)
	return out
}
