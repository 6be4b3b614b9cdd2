package contractCaller

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsRetryable(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want bool
	}{
		{name: "nil", err: nil, want: false},
		{name: "transport", err: fmt.Errorf("%w: dial tcp: connection refused", ErrTransport), want: true},
		{name: "revert", err: fmt.Errorf("%w: execution reverted", ErrReverted), want: false},
		{name: "both tags", err: fmt.Errorf("%w: %w", ErrTransport, ErrReverted), want: false},
		{name: "unclassified", err: errors.New("boom"), want: false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, IsRetryable(tt.err))
		})
	}
}
