package utils

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseDate(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  time.Time
	}{
		{name: "date only", input: "2013-01-01", want: time.Date(2013, 1, 1, 0, 0, 0, 0, time.UTC)},
		{name: "date time", input: "2013-01-01 12:30:00", want: time.Date(2013, 1, 1, 12, 30, 0, 0, time.UTC)},
		{name: "rfc3339", input: "2013-01-01T00:00:00Z", want: time.Date(2013, 1, 1, 0, 0, 0, 0, time.UTC)},
		{name: "trims spaces", input: " 2017-08-15 ", want: time.Date(2017, 8, 15, 0, 0, 0, 0, time.UTC)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseDate(tt.input)
			require.NoError(t, err)
			assert.True(t, tt.want.Equal(got))
		})
	}
}

func TestParseDate_Invalid(t *testing.T) {
	_, err := ParseDate("01/13/2013")
	assert.Error(t, err)
}

func TestGenerateID(t *testing.T) {
	id, err := GenerateID()
	require.NoError(t, err)
	assert.Len(t, id, 12)
}
