package shared_test

import (
	"testing"

	"canteen/shared"

	"github.com/stretchr/testify/assert"
)

func TestBuildCacheKey(t *testing.T) {
	tests := []struct {
		name     string
		parts    []string
		expected string
	}{
		{
			name:     "single part",
			parts:    []string{"session"},
			expected: "session",
		},
		{
			name:     "multiple parts",
			parts:    []string{"session", "abc-123"},
			expected: "session:abc-123",
		},
		{
			name:     "no parts",
			parts:    nil,
			expected: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, shared.BuildCacheKey(tt.parts...))
		})
	}
}

func TestCalculateTotalPage(t *testing.T) {
	tests := []struct {
		name     string
		total    int
		limit    int
		expected int
	}{
		{name: "zero total defaults to one page", total: 0, limit: 10, expected: 1},
		{name: "exact division", total: 20, limit: 10, expected: 2},
		{name: "remainder adds a page", total: 21, limit: 10, expected: 3},
		{name: "zero limit defaults to one page", total: 20, limit: 0, expected: 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, shared.CalculateTotalPage(tt.total, tt.limit))
		})
	}
}

func TestRound2(t *testing.T) {
	tests := []struct {
		name     string
		input    float64
		expected float64
	}{
		{name: "already two decimals", input: 12.34, expected: 12.34},
		{name: "rounds up", input: 12.346, expected: 12.35},
		{name: "rounds down", input: 12.3449, expected: 12.34},
		{name: "float artifacts collapse", input: 0.1 + 0.2, expected: 0.3},
		{name: "zero", input: 0, expected: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, shared.Round2(tt.input))
		})
	}
}
