package pgsql

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseCharacters(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want []string
	}{
		{name: "empty column", raw: "", want: []string{}},
		{name: "empty list", raw: "[]", want: []string{}},
		{name: "single character", raw: `["Max"]`, want: []string{"Max"}},
		{name: "multiple characters", raw: `["Batman","Bruce Wayne"]`, want: []string{"Batman", "Bruce Wayne"}},
		{name: "embedded apostrophe", raw: `["Mia's Mother"]`, want: []string{"Mia's Mother"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, parseCharacters(tt.raw))
		})
	}
}
