package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSlugify(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"Nova Writer", "nova-writer"},
		{"GPT-4o Mini", "gpt-4o-mini"},
		{"  Spaced   Out!  ", "spaced-out"},
		{"Émile's Assistant", "émile-s-assistant"},
		{"___", ""},
		{"already-a-slug", "already-a-slug"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, Slugify(tt.in), "Slugify(%q)", tt.in)
	}
}
