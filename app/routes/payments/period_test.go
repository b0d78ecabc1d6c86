package payments

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSplitPeriod(t *testing.T) {
	tests := []struct {
		period string
		month  string
		year   string
		ok     bool
	}{
		{"January 2025", "January", "2025", true},
		{"December 2024", "December", "2024", true},
		{"January", "", "", false},
		{"", "", "", false},
		{" 2025", "", "", false},
		{"January ", "", "", false},
	}

	for _, tt := range tests {
		month, year, ok := splitPeriod(tt.period)
		assert.Equal(t, tt.ok, ok, "period %q", tt.period)
		assert.Equal(t, tt.month, month, "period %q", tt.period)
		assert.Equal(t, tt.year, year, "period %q", tt.period)
	}
}
