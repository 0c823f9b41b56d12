package config

import (
	"fmt"
	"log/slog"
	"strings"

	"github.com/marcus/folio/internal/portfolio"
)

// ValidationError reports a config value that cannot be used.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("config: %s: %s", e.Field, e.Reason)
}

// Validate checks the config and fills gaps. Projects without an ID get the
// next free ID, and an empty catalog falls back to the default one. Duplicate
// IDs, unknown background types and unknown views are errors.
func (c *Config) Validate() error {
	seen := make(map[int]bool, len(c.Portfolio.Projects))
	next := 1
	for _, p := range c.Portfolio.Projects {
		if p.ID == 0 {
			continue
		}
		if seen[p.ID] {
			return &ValidationError{Field: "portfolio.projects", Reason: fmt.Sprintf("duplicate id %d", p.ID)}
		}
		seen[p.ID] = true
		next = max(next, p.ID+1)
	}

	for i := range c.Portfolio.Projects {
		p := &c.Portfolio.Projects[i]
		if p.ID == 0 {
			p.ID = next
			next++
		}
		if p.Background.Type == "" {
			p.Background.Type = string(portfolio.BackgroundGradient)
		}
		if _, err := portfolio.ParseBackgroundKind(p.Background.Type); err != nil {
			return &ValidationError{Field: fmt.Sprintf("portfolio.projects[%d].background.type", i), Reason: err.Error()}
		}
	}

	if len(c.Portfolio.Gradients) == 0 {
		c.Portfolio.Gradients = append([]string(nil), DefaultGradients...)
	}
	if len(c.Portfolio.Images) == 0 {
		c.Portfolio.Images = append([]string(nil), DefaultImages...)
	}

	c.UI.DefaultView = strings.ToLower(strings.TrimSpace(c.UI.DefaultView))
	if c.UI.DefaultView == "" {
		c.UI.DefaultView = portfolio.ViewGrid.String()
	}
	if _, err := portfolio.ParseViewMode(c.UI.DefaultView); err != nil {
		return &ValidationError{Field: "ui.defaultView", Reason: err.Error()}
	}

	if c.Log.Level == "" {
		c.Log.Level = "info"
	}
	if _, err := c.Log.SlogLevel(); err != nil {
		return &ValidationError{Field: "log.level", Reason: err.Error()}
	}
	return nil
}

// SlogLevel parses Level.
func (l LogConfig) SlogLevel() (slog.Level, error) {
	var level slog.Level
	if err := level.UnmarshalText([]byte(l.Level)); err != nil {
		return slog.LevelInfo, err
	}
	return level, nil
}

// Projects converts the configured seed into portfolio projects. Call after
// Validate.
func (c *Config) Projects() []portfolio.Project {
	out := make([]portfolio.Project, 0, len(c.Portfolio.Projects))
	for _, p := range c.Portfolio.Projects {
		kind, _ := portfolio.ParseBackgroundKind(p.Background.Type)
		out = append(out, portfolio.Project{
			ID:         p.ID,
			Name:       p.Name,
			Active:     p.Active,
			Background: portfolio.Background{Kind: kind, Value: p.Background.Value},
		})
	}
	return out
}

// Catalog returns the picker catalog.
func (c *Config) Catalog() portfolio.Catalog {
	return portfolio.Catalog{
		Gradients: append([]string(nil), c.Portfolio.Gradients...),
		Images:    append([]string(nil), c.Portfolio.Images...),
	}
}

// ViewMode returns the configured initial layout, defaulting to grid.
func (c *Config) ViewMode() portfolio.ViewMode {
	mode, err := portfolio.ParseViewMode(c.UI.DefaultView)
	if err != nil {
		return portfolio.ViewGrid
	}
	return mode
}
