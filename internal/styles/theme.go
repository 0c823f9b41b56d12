// Package styles holds the color theme, the shared lipgloss styles, and the
// gradient helpers used to draw project tiles.
package styles

import (
	"sort"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// ColorPalette is the set of hex colors a theme defines.
type ColorPalette struct {
	Primary   string
	Secondary string
	Success   string
	Warning   string
	Error     string

	TextPrimary string
	TextMuted   string
	TextSubtle  string

	BgPrimary   string
	BgSecondary string

	BorderNormal string
	BorderActive string

	GradientBorderActive []string
	GradientBorderAngle  float64
}

// Theme is a named palette.
type Theme struct {
	Name   string
	Colors ColorPalette
}

var themes = map[string]Theme{
	"default": {
		Name: "default",
		Colors: ColorPalette{
			Primary:              "#7C3AED",
			Secondary:            "#3B82F6",
			Success:              "#4ADE80",
			Warning:              "#F59E0B",
			Error:                "#EF4444",
			TextPrimary:          "#F9FAFB",
			TextMuted:            "#6B7280",
			TextSubtle:           "#4B5563",
			BgPrimary:            "#111827",
			BgSecondary:          "#1F2937",
			BorderNormal:         "#374151",
			BorderActive:         "#7C3AED",
			GradientBorderActive: []string{"#60A5FA", "#9333EA"},
			GradientBorderAngle:  DefaultGradientAngle,
		},
	},
	"dracula": {
		Name: "dracula",
		Colors: ColorPalette{
			Primary:              "#BD93F9",
			Secondary:            "#8BE9FD",
			Success:              "#50FA7B",
			Warning:              "#FFB86C",
			Error:                "#FF5555",
			TextPrimary:          "#F8F8F2",
			TextMuted:            "#6272A4",
			TextSubtle:           "#44475A",
			BgPrimary:            "#282A36",
			BgSecondary:          "#343746",
			BorderNormal:         "#44475A",
			BorderActive:         "#BD93F9",
			GradientBorderActive: []string{"#FF79C6", "#BD93F9"},
			GradientBorderAngle:  DefaultGradientAngle,
		},
	},
}

var currentTheme = themes["default"]

// Color values, refreshed by ApplyTheme.
var (
	Primary     lipgloss.Color
	Secondary   lipgloss.Color
	Success     lipgloss.Color
	Warning     lipgloss.Color
	Error       lipgloss.Color
	TextPrimary lipgloss.Color
	TextMuted   lipgloss.Color
	TextSubtle  lipgloss.Color
	BgSecondary lipgloss.Color
	BorderColor lipgloss.Color
)

// Shared styles, refreshed by ApplyTheme.
var (
	Title            lipgloss.Style
	Subtitle         lipgloss.Style
	Muted            lipgloss.Style
	Subtle           lipgloss.Style
	Header           lipgloss.Style
	Footer           lipgloss.Style
	KeyHint          lipgloss.Style
	ModalBox         lipgloss.Style
	ModalTitle       lipgloss.Style
	ListItemSelected lipgloss.Style
	StatusCompleted  lipgloss.Style
	StatusModified   lipgloss.Style
	StatusBlocked    lipgloss.Style
	Badge            lipgloss.Style
	ToggleActive     lipgloss.Style
	ToggleInactive   lipgloss.Style
)

func init() {
	applyPalette(currentTheme)
}

// ThemeNames returns the registered theme names, sorted.
func ThemeNames() []string {
	names := make([]string, 0, len(themes))
	for name := range themes {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// GetCurrentTheme returns the theme in effect.
func GetCurrentTheme() Theme {
	return currentTheme
}

// ApplyTheme switches to a named theme. Unknown names fall back to "default"
// and report false.
func ApplyTheme(name string) bool {
	return ApplyThemeWithOverrides(name, nil)
}

// ApplyThemeWithOverrides switches theme and then replaces individual colors.
// Override keys are palette field names in camelCase ("primary", "textMuted").
func ApplyThemeWithOverrides(name string, overrides map[string]string) bool {
	theme, ok := themes[name]
	if !ok {
		theme = themes["default"]
	}
	theme.Colors.GradientBorderActive = append([]string(nil), theme.Colors.GradientBorderActive...)
	for key, hex := range overrides {
		setPaletteColor(&theme.Colors, key, hex)
	}
	currentTheme = theme
	applyPalette(theme)
	return ok
}

func setPaletteColor(p *ColorPalette, key, hex string) {
	switch strings.ToLower(key) {
	case "primary":
		p.Primary = hex
	case "secondary":
		p.Secondary = hex
	case "success":
		p.Success = hex
	case "warning":
		p.Warning = hex
	case "error":
		p.Error = hex
	case "textprimary":
		p.TextPrimary = hex
	case "textmuted":
		p.TextMuted = hex
	case "textsubtle":
		p.TextSubtle = hex
	case "bgprimary":
		p.BgPrimary = hex
	case "bgsecondary":
		p.BgSecondary = hex
	case "bordernormal":
		p.BorderNormal = hex
	case "borderactive":
		p.BorderActive = hex
	}
}

func applyPalette(t Theme) {
	c := t.Colors
	Primary = lipgloss.Color(c.Primary)
	Secondary = lipgloss.Color(c.Secondary)
	Success = lipgloss.Color(c.Success)
	Warning = lipgloss.Color(c.Warning)
	Error = lipgloss.Color(c.Error)
	TextPrimary = lipgloss.Color(c.TextPrimary)
	TextMuted = lipgloss.Color(c.TextMuted)
	TextSubtle = lipgloss.Color(c.TextSubtle)
	BgSecondary = lipgloss.Color(c.BgSecondary)
	BorderColor = lipgloss.Color(c.BorderNormal)

	Title = lipgloss.NewStyle().Bold(true).Foreground(TextPrimary)
	Subtitle = lipgloss.NewStyle().Foreground(TextMuted).Italic(true)
	Muted = lipgloss.NewStyle().Foreground(TextMuted)
	Subtle = lipgloss.NewStyle().Foreground(TextSubtle)
	Header = lipgloss.NewStyle().Background(BgSecondary).Foreground(TextPrimary)
	Footer = lipgloss.NewStyle().Background(BgSecondary).Foreground(TextMuted)
	KeyHint = lipgloss.NewStyle().Foreground(TextMuted)
	ModalBox = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(c.BorderActive)).
		Padding(0, 1)
	ModalTitle = lipgloss.NewStyle().Bold(true).Foreground(Primary)
	ListItemSelected = lipgloss.NewStyle().Bold(true).Foreground(TextPrimary).Background(BgSecondary)
	StatusCompleted = lipgloss.NewStyle().Foreground(Success)
	StatusModified = lipgloss.NewStyle().Foreground(Warning)
	StatusBlocked = lipgloss.NewStyle().Foreground(Error)
	Badge = lipgloss.NewStyle().Foreground(TextPrimary).Background(lipgloss.Color(c.BorderNormal)).Padding(0, 1)
	ToggleActive = lipgloss.NewStyle().Bold(true).Foreground(TextPrimary).Background(Secondary).Padding(0, 1)
	ToggleInactive = lipgloss.NewStyle().Foreground(TextMuted).Padding(0, 1)
}
