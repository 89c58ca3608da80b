package auth

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestResolveRedirect(t *testing.T) {
	const origin = "https://app.example.com"

	tests := []struct {
		name   string
		target string
		want   string
	}{
		{"relative path resolves against origin", "/dashboard", origin + "/dashboard"},
		{"same-origin absolute allowed as-is", origin + "/movie/27205", origin + "/movie/27205"},
		{"cross-origin falls back", "https://evil.example.com/x", origin},
		{"unparseable falls back", "not a url", origin},
		{"empty falls back", "", origin},
		{"protocol-relative falls back", "//evil.example.com/x", origin},
		{"scheme mismatch falls back", "http://app.example.com/x", origin},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ResolveRedirect(tt.target, origin))
		})
	}
}
