package storage

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSplitAndTrim(t *testing.T) {
	tests := []struct {
		in   string
		want []string
	}{
		{"", nil},
		{"React", []string{"React"}},
		{"React,TypeScript", []string{"React", "TypeScript"}},
		{" React , TypeScript ,", []string{"React", "TypeScript"}},
		{",,", []string{}},
	}
	for _, tt := range tests {
		got := splitAndTrim(tt.in)
		if tt.want == nil {
			assert.Nil(t, got, "splitAndTrim(%q)", tt.in)
			continue
		}
		assert.Equal(t, tt.want, got, "splitAndTrim(%q)", tt.in)
	}
}
