package repository

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestResolveStatusTransition(t *testing.T) {
	tests := []struct {
		name    string
		current string
		to      string
		wantErr error
	}{
		{"already at target", "approved", "approved", nil},
		{"decided the other way", "rejected", "approved", ErrStatusConflict},
		{"moved to an unexpected state", "pending", "rejected", ErrStatusConflict},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ResolveStatusTransition(tt.current, tt.to)
			if tt.wantErr == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}
