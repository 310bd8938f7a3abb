package ui

import (
	"strings"
	"testing"
)

func TestHighlighter_HighlightLine(t *testing.T) {
	h := NewHighlighter()

	tests := []struct {
		line     string
		filename string
	}{
		{"[Desktop Entry]", "archive.desktop"},
		{"Name=Compress here", "archive.desktop"},
		{"name: Share", "shareplugin.yaml"},
		{"ShowDeleteCommand=false", "kdeglobals"},
		{"", "empty.desktop"},
		{"plain text", "unknown.xyz"},
	}

	for _, tt := range tests {
		// Highlighting must never panic or drop the text
		result := h.HighlightLine(tt.line, tt.filename)
		if tt.line != "" && result == "" {
			t.Errorf("HighlightLine(%q, %s) returned empty", tt.line, tt.filename)
		}
	}
}

func TestHighlighter_UnknownFilePassthrough(t *testing.T) {
	h := NewHighlighter()

	line := "some plain content"
	if got := h.HighlightLine(line, "unknown.xyz"); got != line {
		t.Errorf("Unknown file types should pass through unchanged, got %q", got)
	}
}

func TestHighlighter_HighlightLines(t *testing.T) {
	h := NewHighlighter()

	lines := []string{"[Desktop Entry]", "Name=Test", "Icon=edit-copy"}
	result := h.HighlightLines(lines, "test.desktop")

	if len(result) != len(lines) {
		t.Fatalf("Expected %d lines, got %d", len(lines), len(result))
	}
}

func TestGetLexerForFile(t *testing.T) {
	tests := []struct {
		filename string
		wantNil  bool
	}{
		{"menu.desktop", false},
		{"plugin.yaml", false},
		{"plugin.yml", false},
		{"meta.json", false},
		{"kservicemenurc", false},
		{"unknown.xyz", true},
	}

	for _, tt := range tests {
		lexer := getLexerForFile(tt.filename)
		if (lexer == nil) != tt.wantNil {
			t.Errorf("getLexerForFile(%s): nil=%v, want nil=%v", tt.filename, lexer == nil, tt.wantNil)
		}
	}
}

func TestHighlightPreservesText(t *testing.T) {
	h := NewHighlighter()

	line := "Name=Extract here"
	highlighted := h.HighlightLine(line, "archive.desktop")

	stripped := stripAnsiCodes(highlighted)
	if stripped != line {
		t.Errorf("Highlighting changed the text: %q -> %q", line, stripped)
	}
}

func stripAnsiCodes(s string) string {
	var b strings.Builder
	inEscape := false
	for _, r := range s {
		switch {
		case inEscape:
			if r == 'm' {
				inEscape = false
			}
		case r == '\x1b':
			inEscape = true
		default:
			b.WriteRune(r)
		}
	}
	return b.String()
}
