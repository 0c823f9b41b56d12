package styles

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// ANSIReset resets all terminal attributes.
const ANSIReset = "\x1b[0m"

// DefaultGradientAngle is used when a theme leaves the angle unset.
const DefaultGradientAngle = 30.0

// RGB is a color with float channels so interpolation stays exact until output.
type RGB struct {
	R, G, B float64
}

var fallbackGray = RGB{128, 128, 128}

// HexToRGB parses "#rrggbb" or "rrggbb". Invalid input yields mid gray.
func HexToRGB(hex string) RGB {
	hex = strings.TrimPrefix(hex, "#")
	if len(hex) != 6 {
		return fallbackGray
	}
	v, err := strconv.ParseUint(hex, 16, 32)
	if err != nil {
		return fallbackGray
	}
	return RGB{
		R: float64((v >> 16) & 0xff),
		G: float64((v >> 8) & 0xff),
		B: float64(v & 0xff),
	}
}

func clampChannel(v float64) int {
	if v < 0 {
		return 0
	}
	if v > 255 {
		return 255
	}
	return int(math.Round(v))
}

// RGBToHex formats c as lowercase "#rrggbb", clamping each channel.
func RGBToHex(c RGB) string {
	return fmt.Sprintf("#%02x%02x%02x", clampChannel(c.R), clampChannel(c.G), clampChannel(c.B))
}

// ToANSI returns the 24-bit foreground escape for c.
func (c RGB) ToANSI() string {
	return fmt.Sprintf("\x1b[38;2;%d;%d;%dm", clampChannel(c.R), clampChannel(c.G), clampChannel(c.B))
}

// Color converts c for use in lipgloss styles.
func (c RGB) Color() lipgloss.Color {
	return lipgloss.Color(RGBToHex(c))
}

// Dim blends c toward gray by amount in [0,1].
func (c RGB) Dim(amount float64) RGB {
	gray := (c.R + c.G + c.B) / 3
	return LerpRGB(c, RGB{gray, gray, gray}, amount)
}

// LerpRGB interpolates linearly between c1 (t=0) and c2 (t=1).
func LerpRGB(c1, c2 RGB, t float64) RGB {
	return RGB{
		R: c1.R + (c2.R-c1.R)*t,
		G: c1.G + (c2.G-c1.G)*t,
		B: c1.B + (c2.B-c1.B)*t,
	}
}

// GradientStop is a color at a position in [0,1].
type GradientStop struct {
	Color    RGB
	Position float64
}

// Gradient is a multi-stop linear gradient drawn at Angle degrees.
type Gradient struct {
	Stops []GradientStop
	Angle float64
}

// NewGradient spreads colors evenly across [0,1]. A single color sits at 0.5.
func NewGradient(colors []string, angle float64) Gradient {
	g := Gradient{Angle: angle}
	switch len(colors) {
	case 0:
		return g
	case 1:
		g.Stops = []GradientStop{{Color: HexToRGB(colors[0]), Position: 0.5}}
		return g
	}
	g.Stops = make([]GradientStop, len(colors))
	last := float64(len(colors) - 1)
	for i, c := range colors {
		g.Stops[i] = GradientStop{Color: HexToRGB(c), Position: float64(i) / last}
	}
	return g
}

// IsValid reports whether the gradient has at least two stops.
func (g Gradient) IsValid() bool {
	return len(g.Stops) >= 2
}

// ColorAt returns the color at position t, clamped to [0,1].
func (g Gradient) ColorAt(t float64) RGB {
	switch len(g.Stops) {
	case 0:
		return fallbackGray
	case 1:
		return g.Stops[0].Color
	}
	if t <= g.Stops[0].Position {
		return g.Stops[0].Color
	}
	lastStop := g.Stops[len(g.Stops)-1]
	if t >= lastStop.Position {
		return lastStop.Color
	}
	for i := 1; i < len(g.Stops); i++ {
		prev, next := g.Stops[i-1], g.Stops[i]
		if t <= next.Position {
			span := next.Position - prev.Position
			if span <= 0 {
				return next.Color
			}
			return LerpRGB(prev.Color, next.Color, (t-prev.Position)/span)
		}
	}
	return lastStop.Color
}

// Start returns the first color.
func (g Gradient) Start() RGB { return g.ColorAt(0) }

// End returns the last color.
func (g Gradient) End() RGB { return g.ColorAt(1) }

// PositionAt projects cell (x,y) of a width×height box onto the gradient axis.
func (g Gradient) PositionAt(x, y, width, height int) float64 {
	nx, ny := 0.5, 0.5
	if width > 1 {
		nx = float64(x) / float64(width-1)
	}
	if height > 1 {
		ny = float64(y) / float64(height-1)
	}

	rad := g.Angle * math.Pi / 180
	dx, dy := math.Cos(rad), math.Sin(rad)
	extent := 0.5 * (math.Abs(dx) + math.Abs(dy))
	if extent == 0 {
		return 0.5
	}
	t := 0.5 + ((nx-0.5)*dx+(ny-0.5)*dy)/(2*extent)
	return math.Max(0, math.Min(1, t))
}

// Dim returns a copy with every stop dimmed.
func (g Gradient) Dim(amount float64) Gradient {
	out := Gradient{Angle: g.Angle, Stops: make([]GradientStop, len(g.Stops))}
	for i, s := range g.Stops {
		out.Stops[i] = GradientStop{Color: s.Color.Dim(amount), Position: s.Position}
	}
	return out
}

// GradientText colors each rune of s along the gradient.
func GradientText(s string, g Gradient) string {
	runes := []rune(s)
	if len(runes) == 0 {
		return ""
	}
	var sb strings.Builder
	for i, r := range runes {
		t := 0.5
		if len(runes) > 1 {
			t = float64(i) / float64(len(runes)-1)
		}
		sb.WriteString(colorChar(string(r), g.ColorAt(t)))
	}
	return sb.String()
}
