package postgres

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestClampLimit(t *testing.T) {
	tests := []struct {
		name  string
		limit int
		want  int
	}{
		{"zero falls back to the default", 0, 100},
		{"negative falls back to the default", -5, 100},
		{"in range passes through", 25, 25},
		{"over the cap is clamped", 500, 100},
		{"at the cap passes through", 100, 100},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, clampLimit(tc.limit))
		})
	}
}
