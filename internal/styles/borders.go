package styles

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
)

// Border characters for rounded borders (matching lipgloss.RoundedBorder)
const (
	borderCornerTL   = "╭"
	borderCornerTR   = "╮"
	borderCornerBL   = "╰"
	borderCornerBR   = "╯"
	borderHorizontal = "─"
	borderVertical   = "│"
)

// colorChar wraps a character with ANSI foreground color.
func colorChar(char string, color RGB) string {
	return color.ToANSI() + char + ANSIReset
}

// RenderGradientBorder renders content inside a box with gradient-colored borders.
// width and height are the outer dimensions including borders.
func RenderGradientBorder(content string, width, height int, gradient Gradient, padding int) string {
	if width < 3 || height < 3 {
		return content
	}

	innerWidth := width - 2
	innerHeight := height - 2

	lines := strings.Split(content, "\n")

	paddedLines := make([]string, innerHeight)
	paddingStr := strings.Repeat(" ", padding)
	contentWidth := max(innerWidth-(padding*2), 0)

	for i := 0; i < innerHeight; i++ {
		var line string
		if i < len(lines) {
			line = lines[i]
		}

		lineWidth := lipgloss.Width(line)
		if lineWidth > contentWidth {
			line = ansi.Truncate(line, contentWidth, "")
			lineWidth = lipgloss.Width(line)
		}

		rightPad := max(contentWidth-lineWidth, 0)
		paddedLines[i] = paddingStr + line + strings.Repeat(" ", rightPad) + paddingStr
	}

	var result strings.Builder

	result.WriteString(renderGradientBorderEdge(0, width, height, gradient, borderCornerTL, borderCornerTR))
	result.WriteString("\n")

	for y, line := range paddedLines {
		leftPos := gradient.PositionAt(0, y+1, width, height)
		result.WriteString(colorChar(borderVertical, gradient.ColorAt(leftPos)))

		result.WriteString(line)

		rightPos := gradient.PositionAt(width-1, y+1, width, height)
		result.WriteString(colorChar(borderVertical, gradient.ColorAt(rightPos)))
		result.WriteString("\n")
	}

	result.WriteString(renderGradientBorderEdge(height-1, width, height, gradient, borderCornerBL, borderCornerBR))

	return result.String()
}

// renderGradientBorderEdge renders the top or bottom border line at row y.
func renderGradientBorderEdge(y, width, height int, g Gradient, left, right string) string {
	var sb strings.Builder

	sb.WriteString(colorChar(left, g.ColorAt(g.PositionAt(0, y, width, height))))
	for x := 1; x < width-1; x++ {
		sb.WriteString(colorChar(borderHorizontal, g.ColorAt(g.PositionAt(x, y, width, height))))
	}
	sb.WriteString(colorChar(right, g.ColorAt(g.PositionAt(width-1, y, width, height))))

	return sb.String()
}

// GetActiveGradient returns the gradient for focused panels from the current theme.
func GetActiveGradient() Gradient {
	theme := GetCurrentTheme()
	colors := theme.Colors.GradientBorderActive
	angle := theme.Colors.GradientBorderAngle

	if len(colors) < 2 {
		return NewGradient([]string{theme.Colors.BorderActive, theme.Colors.BorderActive}, angle)
	}
	if angle == 0 {
		angle = DefaultGradientAngle
	}
	return NewGradient(colors, angle)
}

// GetMutedGradient returns the grey gradient used for inactive tiles.
func GetMutedGradient() Gradient {
	theme := GetCurrentTheme()
	return NewGradient([]string{theme.Colors.TextMuted, theme.Colors.BorderNormal}, DefaultGradientAngle)
}

// RenderPanelWithGradient renders content in a panel with a custom gradient.
func RenderPanelWithGradient(content string, width, height int, gradient Gradient) string {
	return RenderGradientBorder(content, width, height, gradient, 1)
}
