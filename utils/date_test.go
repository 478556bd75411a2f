package utils

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestParseISOTime(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantErr bool
	}{
		{name: "RFC3339", input: "2025-10-13T09:30:00Z"},
		{name: "RFC3339 with nanos", input: "2025-10-13T09:30:00.123Z"},
		{name: "Space separated", input: "2025-10-13 09:30:00"},
		{name: "No zone", input: "2025-10-13T09:30:00"},
		{name: "Date only", input: "2025-10-13"},
		{name: "Empty", input: "", wantErr: true},
		{name: "Garbage", input: "not-a-time", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res, err := ParseISOTime(tt.input)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, 2025, res.Year())
			assert.Equal(t, time.October, res.Month())
		})
	}
}

func TestValidarHora(t *testing.T) {
	assert.True(t, ValidarHora("08:00"))
	assert.True(t, ValidarHora("23:59"))
	assert.False(t, ValidarHora("8:00"))
	assert.False(t, ValidarHora("24:00"))
	assert.False(t, ValidarHora("08:00:00"))
	assert.False(t, ValidarHora(""))
}

func TestFormatHora(t *testing.T) {
	at := time.Date(2025, 10, 13, 8, 5, 33, 0, BrasiliaTZ)
	assert.Equal(t, "08:05", FormatHora(at))
	assert.Equal(t, "2025-10-13", FormatDate(at))
}
