package handlers

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSanitizeNext(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"", ""},
		{"/checkout", "/checkout"},
		{"/order/abc?status=success", "/order/abc?status=success"},
		{"https://evil.example.com", ""},
		{"//evil.example.com", ""},
		{"checkout", ""},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, sanitizeNext(tc.in), "input %q", tc.in)
	}
}
