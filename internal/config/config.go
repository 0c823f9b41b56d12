// Package config loads folio's settings: the portfolio seed data, the
// background catalog, UI options and logging.
package config

// Config is the root configuration structure.
type Config struct {
	Portfolio PortfolioConfig `json:"portfolio" yaml:"portfolio"`
	UI        UIConfig        `json:"ui" yaml:"ui"`
	Log       LogConfig       `json:"log" yaml:"log"`
}

// PortfolioConfig is the page heading, the initial projects and the picker
// catalog.
type PortfolioConfig struct {
	Title     string          `json:"title" yaml:"title"`
	Subtitle  string          `json:"subtitle" yaml:"subtitle"`
	Projects  []ProjectConfig `json:"projects" yaml:"projects"`
	Gradients []string        `json:"gradients" yaml:"gradients"`
	Images    []string        `json:"images" yaml:"images"`
}

// ProjectConfig seeds one project. ID 0 means "assign the next free ID".
type ProjectConfig struct {
	ID         int              `json:"id" yaml:"id"`
	Name       string           `json:"name" yaml:"name"`
	Active     bool             `json:"active" yaml:"active"`
	Background BackgroundConfig `json:"background" yaml:"background"`
}

// BackgroundConfig is a tile background as written in the config file.
type BackgroundConfig struct {
	Type  string `json:"type" yaml:"type"` // "gradient" or "image"
	Value string `json:"value" yaml:"value"`
}

// UIConfig configures UI appearance.
type UIConfig struct {
	ShowFooter  bool        `json:"showFooter" yaml:"showFooter"`
	ShowClock   bool        `json:"showClock" yaml:"showClock"`
	DefaultView string      `json:"defaultView" yaml:"defaultView"`
	Mouse       bool        `json:"mouse" yaml:"mouse"`
	Theme       ThemeConfig `json:"theme" yaml:"theme"`
}

// ThemeConfig configures the color theme.
type ThemeConfig struct {
	Name      string            `json:"name" yaml:"name"`
	Overrides map[string]string `json:"overrides" yaml:"overrides"`
}

// LogConfig configures the log file.
type LogConfig struct {
	Level string `json:"level" yaml:"level"` // debug, info, warn, error
	File  string `json:"file" yaml:"file"`
}

// DefaultGradients is the gradient catalog used when none is configured.
var DefaultGradients = []string{
	"from-blue-500 to-purple-600",
	"from-green-500 to-teal-600",
	"from-orange-500 to-red-600",
	"from-pink-500 to-rose-600",
	"from-indigo-500 to-blue-600",
	"from-yellow-500 to-orange-600",
	"from-purple-500 to-pink-600",
	"from-gray-700 to-gray-900",
	"from-cyan-500 to-blue-600",
	"from-red-500 to-yellow-600",
}

// DefaultImages is the image catalog used when none is configured.
var DefaultImages = []string{
	"https://images.unsplash.com/photo-1618005182384-a83a8bd57fbe?w=400&h=300&fit=crop",
	"https://images.unsplash.com/photo-1557683316-973673baf926?w=400&h=300&fit=crop",
	"https://images.unsplash.com/photo-1569163139394-de4798907684?w=400&h=300&fit=crop",
	"https://images.unsplash.com/photo-1579546929518-9e396f3cc809?w=400&h=300&fit=crop",
	"https://images.unsplash.com/photo-1557682250-33bd709cbe85?w=400&h=300&fit=crop",
}

func defaultProjects() []ProjectConfig {
	gradient := func(token string) BackgroundConfig {
		return BackgroundConfig{Type: "gradient", Value: token}
	}
	return []ProjectConfig{
		{ID: 1, Name: "Project Alpha", Active: true, Background: gradient("from-blue-500 to-purple-600")},
		{ID: 2, Name: "Beta Dashboard", Background: gradient("from-green-500 to-teal-600")},
		{ID: 3, Name: "Gamma Analytics", Background: gradient("from-orange-500 to-red-600")},
		{ID: 4, Name: "Delta Commerce", Background: gradient("from-pink-500 to-rose-600")},
		{ID: 5, Name: "Epsilon Tools", Background: gradient("from-indigo-500 to-blue-600")},
	}
}

// Default returns the default configuration.
func Default() *Config {
	return &Config{
		Portfolio: PortfolioConfig{
			Title:     "AI-Crafted Web Portfolio",
			Subtitle:  "A dynamic showcase of web applications built through AI-powered development collaborations.",
			Projects:  defaultProjects(),
			Gradients: append([]string(nil), DefaultGradients...),
			Images:    append([]string(nil), DefaultImages...),
		},
		UI: UIConfig{
			ShowFooter:  true,
			ShowClock:   true,
			DefaultView: "grid",
			Mouse:       true,
			Theme: ThemeConfig{
				Name:      "default",
				Overrides: map[string]string{},
			},
		},
		Log: LogConfig{
			Level: "info",
			File:  "~/.local/state/folio/folio.log",
		},
	}
}
