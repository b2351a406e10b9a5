package cmd

import (
	"testing"
	"unicode/utf8"
)

func TestTruncate(t *testing.T) {
	tests := []struct {
		name string
		in   string
		max  int
		want string
	}{
		{"short passes through", "gpt-4o-mini", 28, "gpt-4o-mini"},
		{"exact length passes through", "abcd", 4, "abcd"},
		{"ascii cut", "claude-haiku-4-5-20251001", 12, "claude-haiku"},
		{"multi-byte cut on rune boundary", "modèle-génératif-très-long", 8, "modèle-g"},
		{"cjk cut", "モデル名が長い場合", 4, "モデル名"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := truncate(tt.in, tt.max)
			if got != tt.want {
				t.Fatalf("truncate(%q, %d) = %q, want %q", tt.in, tt.max, got, tt.want)
			}
			if !utf8.ValidString(got) {
				t.Fatalf("truncate(%q, %d) produced invalid UTF-8: %q", tt.in, tt.max, got)
			}
		})
	}
}

func TestFormatCost(t *testing.T) {
	if got := formatCost(0.0042); got != "$0.0042" {
		t.Fatalf("unexpected sub-cent format: %q", got)
	}
	if got := formatCost(1.5); got != "$1.50" {
		t.Fatalf("unexpected format: %q", got)
	}
}
