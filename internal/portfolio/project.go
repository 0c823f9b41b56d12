// Package portfolio holds the view state of the project portfolio: the
// project store, the search filter, the layout mode, and the two editing
// state machines (rename and background picker). Nothing in this package
// knows about terminals; the UI drives it through Session.
package portfolio

import "fmt"

// BackgroundKind selects how a Background value is interpreted.
type BackgroundKind string

const (
	BackgroundGradient BackgroundKind = "gradient"
	BackgroundImage    BackgroundKind = "image"
)

// ParseBackgroundKind parses a kind name as written in configuration.
func ParseBackgroundKind(s string) (BackgroundKind, error) {
	switch BackgroundKind(s) {
	case BackgroundGradient, BackgroundImage:
		return BackgroundKind(s), nil
	}
	return "", fmt.Errorf("unknown background kind %q", s)
}

// Background is a tile background. Value is a gradient token for
// BackgroundGradient and an image URL for BackgroundImage.
type Background struct {
	Kind  BackgroundKind
	Value string
}

// Gradient returns a gradient background.
func Gradient(token string) Background {
	return Background{Kind: BackgroundGradient, Value: token}
}

// Image returns an image background.
func Image(url string) Background {
	return Background{Kind: BackgroundImage, Value: url}
}

// Project is one tile of the portfolio.
type Project struct {
	ID         int
	Name       string
	Active     bool
	Background Background
}

// Patch describes a partial update of a Project. Nil fields are left as-is.
type Patch struct {
	Name       *string
	Background *Background
}

// RenamePatch returns a patch that only sets the name.
func RenamePatch(name string) Patch {
	return Patch{Name: &name}
}

// BackgroundPatch returns a patch that only sets the background.
func BackgroundPatch(bg Background) Patch {
	return Patch{Background: &bg}
}

// apply returns a merged copy of p.
func (pt Patch) apply(p Project) Project {
	if pt.Name != nil {
		p.Name = *pt.Name
	}
	if pt.Background != nil {
		p.Background = *pt.Background
	}
	return p
}
