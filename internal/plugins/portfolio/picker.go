package portfolio

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/marcus/folio/internal/modal"
	"github.com/marcus/folio/internal/portfolio"
	"github.com/marcus/folio/internal/styles"
)

const (
	pickerWidth   = 60
	pickerColumns = 5
)

func swatchID(kind portfolio.BackgroundKind, index int) string {
	return fmt.Sprintf("%s-%d", kind, index)
}

// parseSwatchID is the inverse of swatchID.
func parseSwatchID(id string) (portfolio.BackgroundKind, int, bool) {
	name, num, found := strings.Cut(id, "-")
	if !found {
		return "", 0, false
	}
	kind, err := portfolio.ParseBackgroundKind(name)
	if err != nil {
		return "", 0, false
	}
	index, err := strconv.Atoi(num)
	if err != nil || index < 0 {
		return "", 0, false
	}
	return kind, index, true
}

// currentSwatchID finds the catalog entry matching the project's background.
func currentSwatchID(p portfolio.Project, cat portfolio.Catalog) string {
	for i := 0; i < cat.Len(p.Background.Kind); i++ {
		if bg, _ := cat.Option(p.Background.Kind, i); bg == p.Background {
			return swatchID(bg.Kind, i)
		}
	}
	return ""
}

// gradientLabel shortens "from-blue-500 to-purple-600" to "blue/purple".
func gradientLabel(token string) string {
	var names []string
	for _, field := range strings.Fields(token) {
		for _, prefix := range []string{"from-", "via-", "to-"} {
			if rest, ok := strings.CutPrefix(field, prefix); ok {
				if i := strings.LastIndex(rest, "-"); i > 0 {
					rest = rest[:i]
				}
				names = append(names, rest)
			}
		}
	}
	if len(names) == 0 {
		return token
	}
	return strings.Join(names, "/")
}

func (p *Plugin) buildPicker(proj portfolio.Project) *modal.Modal {
	cat := p.session.Catalog()

	mark := func(kind portfolio.BackgroundKind, value, label string) string {
		if proj.Background == (portfolio.Background{Kind: kind, Value: value}) {
			return "• " + label
		}
		return label
	}

	gradients := make([]modal.Swatch, 0, len(cat.Gradients))
	for i, token := range cat.Gradients {
		g := styles.TileGradient(token)
		gradients = append(gradients, modal.Swatch{
			ID:    swatchID(portfolio.BackgroundGradient, i),
			Label: mark(portfolio.BackgroundGradient, token, gradientLabel(token)),
			Paint: func(w int) string { return styles.GradientText(strings.Repeat("█", w), g) },
		})
	}

	images := make([]modal.Swatch, 0, len(cat.Images))
	for i, url := range cat.Images {
		swatch := lipgloss.NewStyle().Foreground(styles.ImageSwatch(url).Color())
		images = append(images, modal.Swatch{
			ID:    swatchID(portfolio.BackgroundImage, i),
			Label: mark(portfolio.BackgroundImage, url, fmt.Sprintf("Image %d", i+1)),
			Paint: func(w int) string { return swatch.Render(strings.Repeat("▓", w)) },
		})
	}

	return modal.New("Background · "+proj.Name, modal.WithWidth(pickerWidth)).
		AddSection(modal.Text(styles.Subtitle.Render("Gradients"))).
		AddSection(modal.Swatches(gradients, pickerColumns)).
		AddSection(modal.Spacer()).
		AddSection(modal.Text(styles.Subtitle.Render("Images"))).
		AddSection(modal.Swatches(images, pickerColumns))
}
