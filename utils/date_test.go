package utils

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestMustParseDate(t *testing.T) {
	got := MustParseDate("2026-03-02")
	assert.Equal(t, time.Date(2026, 3, 2, 0, 0, 0, 0, time.UTC), got)
}

func TestParseISOTime(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  time.Time
	}{
		{
			name:  "RFC3339",
			input: "2026-03-02T07:58:12Z",
			want:  time.Date(2026, 3, 2, 7, 58, 12, 0, time.UTC),
		},
		{
			name:  "space separated",
			input: "2026-03-02 07:58:12",
			want:  time.Date(2026, 3, 2, 7, 58, 12, 0, time.UTC),
		},
		{
			name:  "date only",
			input: "2026-03-02",
			want:  time.Date(2026, 3, 2, 0, 0, 0, 0, time.UTC),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseISOTime(tt.input)
			assert.NoError(t, err)
			assert.True(t, tt.want.Equal(*got))
		})
	}

	_, err := ParseISOTime("yesterday")
	assert.Error(t, err)

	_, err = ParseISOTime("")
	assert.Error(t, err)
}
