package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestISODate(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  *string
	}{
		{"display format", "25/12/2024", strPtr("2024-12-25")},
		{"single digit day and month", "05/03/2024", strPtr("2024-03-05")},
		{"already ISO passes through", "2024-12-25", strPtr("2024-12-25")},
		{"garbage", "bad-date", nil},
		{"impossible calendar date", "31/02/2024", nil},
		{"empty", "", nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ISODate(tt.input)

			if tt.want == nil {
				assert.Nil(t, got)
				return
			}

			require.NotNil(t, got)
			assert.Equal(t, *tt.want, *got)
		})
	}
}

func TestValidDisplayDate(t *testing.T) {
	assert.True(t, ValidDisplayDate("25/12/2024"))
	assert.False(t, ValidDisplayDate("2024-12-25"))
	assert.False(t, ValidDisplayDate("31/02/2024"))
	assert.False(t, ValidDisplayDate("soon"))
}

func strPtr(s string) *string {
	return &s
}
