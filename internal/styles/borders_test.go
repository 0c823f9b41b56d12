package styles

import (
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
)

func TestColorChar(t *testing.T) {
	result := colorChar("X", RGB{255, 0, 0})

	if !strings.HasPrefix(result, "\x1b[38;2;255;0;0m") {
		t.Error("colorChar should start with ANSI color code")
	}
	if !strings.HasSuffix(result, "X"+ANSIReset) {
		t.Error("colorChar should end with the character and a reset")
	}
}

func TestRenderGradientBorder_MinimumSize(t *testing.T) {
	g := NewGradient([]string{"#FF0000", "#0000FF"}, 30)

	if got := RenderGradientBorder("test", 2, 2, g, 0); got != "test" {
		t.Errorf("expected content returned for small dimensions, got %q", got)
	}
	if got := RenderGradientBorder("test", 1, 5, g, 0); got != "test" {
		t.Errorf("expected content returned for narrow width, got %q", got)
	}
}

func TestRenderGradientBorder_Shape(t *testing.T) {
	g := NewGradient([]string{"#FF0000", "#0000FF"}, 30)
	result := RenderGradientBorder("hello", 20, 5, g, 1)

	for _, ch := range []string{"╭", "╮", "╰", "╯", "─", "│"} {
		if !strings.Contains(result, ch) {
			t.Errorf("result should contain %q", ch)
		}
	}

	lines := strings.Split(result, "\n")
	if len(lines) != 5 {
		t.Fatalf("got %d lines, want 5", len(lines))
	}
	for i, line := range lines {
		if w := lipgloss.Width(line); w != 20 {
			t.Errorf("line %d width = %d, want 20", i, w)
		}
	}
}

func TestRenderGradientBorder_MultilineContent(t *testing.T) {
	g := NewGradient([]string{"#FF0000", "#0000FF"}, 30)
	result := RenderGradientBorder("line1\nline2\nline3", 20, 6, g, 1)

	for _, want := range []string{"line1", "line2", "line3"} {
		if !strings.Contains(result, want) {
			t.Errorf("result should contain %s", want)
		}
	}
}

func TestRenderGradientBorder_TruncatesStyledContent(t *testing.T) {
	g := NewGradient([]string{"#FF0000", "#0000FF"}, 30)
	styled := lipgloss.NewStyle().Bold(true).Render("a very long styled label that overflows")
	result := RenderGradientBorder(styled, 12, 3, g, 1)

	lines := strings.Split(result, "\n")
	if w := lipgloss.Width(lines[1]); w != 12 {
		t.Errorf("content line width = %d, want 12", w)
	}
	if !strings.Contains(ansi.Strip(lines[1]), "a very l") {
		t.Errorf("truncated line lost its prefix: %q", ansi.Strip(lines[1]))
	}
}

func TestGetActiveGradient(t *testing.T) {
	g := GetActiveGradient()
	if !g.IsValid() {
		t.Error("active gradient should be valid (have at least 2 stops)")
	}
	if g.Angle == 0 {
		t.Error("active gradient should have non-zero angle")
	}
}

func TestGetMutedGradient(t *testing.T) {
	g := GetMutedGradient()
	if !g.IsValid() {
		t.Error("muted gradient should be valid")
	}
}

func TestRenderPanelWithGradient(t *testing.T) {
	customGradient := NewGradient([]string{"#00FF00", "#FF00FF"}, 45)
	result := RenderPanelWithGradient("test", 15, 4, customGradient)

	if !strings.Contains(result, "test") {
		t.Error("custom gradient panel should contain content")
	}
	if !strings.Contains(result, "╭") {
		t.Error("custom gradient panel should have border")
	}
}
