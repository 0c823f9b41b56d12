package styles

import (
	"strings"

	"github.com/cespare/xxhash/v2"
)

// tileGradientAngle matches the bottom-right sweep of the tile backgrounds.
const tileGradientAngle = 35.0

// tailwindColors covers the color names and shades used by gradient tokens.
var tailwindColors = map[string]string{
	"gray-400": "#9ca3af", "gray-500": "#6b7280", "gray-600": "#4b5563", "gray-700": "#374151", "gray-800": "#1f2937", "gray-900": "#111827",
	"red-400": "#f87171", "red-500": "#ef4444", "red-600": "#dc2626", "red-700": "#b91c1c", "red-800": "#991b1b", "red-900": "#7f1d1d",
	"orange-400": "#fb923c", "orange-500": "#f97316", "orange-600": "#ea580c", "orange-700": "#c2410c", "orange-800": "#9a3412", "orange-900": "#7c2d12",
	"yellow-400": "#facc15", "yellow-500": "#eab308", "yellow-600": "#ca8a04", "yellow-700": "#a16207", "yellow-800": "#854d0e", "yellow-900": "#713f12",
	"green-400": "#4ade80", "green-500": "#22c55e", "green-600": "#16a34a", "green-700": "#15803d", "green-800": "#166534", "green-900": "#14532d",
	"teal-400": "#2dd4bf", "teal-500": "#14b8a6", "teal-600": "#0d9488", "teal-700": "#0f766e", "teal-800": "#115e59", "teal-900": "#134e4a",
	"cyan-400": "#22d3ee", "cyan-500": "#06b6d4", "cyan-600": "#0891b2", "cyan-700": "#0e7490", "cyan-800": "#155e75", "cyan-900": "#164e63",
	"blue-400": "#60a5fa", "blue-500": "#3b82f6", "blue-600": "#2563eb", "blue-700": "#1d4ed8", "blue-800": "#1e40af", "blue-900": "#1e3a8a",
	"indigo-400": "#818cf8", "indigo-500": "#6366f1", "indigo-600": "#4f46e5", "indigo-700": "#4338ca", "indigo-800": "#3730a3", "indigo-900": "#312e81",
	"purple-400": "#c084fc", "purple-500": "#a855f7", "purple-600": "#9333ea", "purple-700": "#7e22ce", "purple-800": "#6b21a8", "purple-900": "#581c87",
	"pink-400": "#f472b6", "pink-500": "#ec4899", "pink-600": "#db2777", "pink-700": "#be185d", "pink-800": "#9d174d", "pink-900": "#831843",
	"rose-400": "#fb7185", "rose-500": "#f43f5e", "rose-600": "#e11d48", "rose-700": "#be123c", "rose-800": "#9f1239", "rose-900": "#881337",
}

// ParseGradientToken resolves a token such as "from-blue-500 to-purple-600"
// (optionally with "via-*" or literal "#rrggbb" stops) into hex stops in
// from, via, to order. ok is false when no stop could be resolved.
func ParseGradientToken(token string) (stops []string, ok bool) {
	var from, via, to []string
	for _, field := range strings.Fields(token) {
		switch {
		case strings.HasPrefix(field, "#"):
			via = append(via, field)
		case strings.HasPrefix(field, "from-"):
			if hex, found := tailwindColors[strings.TrimPrefix(field, "from-")]; found {
				from = append(from, hex)
			}
		case strings.HasPrefix(field, "via-"):
			if hex, found := tailwindColors[strings.TrimPrefix(field, "via-")]; found {
				via = append(via, hex)
			}
		case strings.HasPrefix(field, "to-"):
			if hex, found := tailwindColors[strings.TrimPrefix(field, "to-")]; found {
				to = append(to, hex)
			}
		}
	}
	stops = append(append(append(stops, from...), via...), to...)
	switch len(stops) {
	case 0:
		return nil, false
	case 1:
		stops = append(stops, stops[0])
	}
	return stops, true
}

// TileGradient returns the gradient for a gradient token, or a neutral
// gradient when the token is not recognized.
func TileGradient(token string) Gradient {
	stops, ok := ParseGradientToken(token)
	if !ok {
		theme := GetCurrentTheme()
		stops = []string{theme.Colors.BorderNormal, theme.Colors.TextMuted}
	}
	return NewGradient(stops, tileGradientAngle)
}

// ImageSwatch derives a stable color for an image URL. Terminals cannot show
// the image itself, so tiles and picker swatches use this color instead.
func ImageSwatch(url string) RGB {
	h := xxhash.Sum64String(url)
	c := RGB{
		R: float64(h & 0xff),
		G: float64((h >> 8) & 0xff),
		B: float64((h >> 16) & 0xff),
	}
	// Keep swatches out of the near-black range so borders stay visible.
	return LerpRGB(c, RGB{255, 255, 255}, 0.25)
}

// ImageGradient is a two-tone gradient around the image swatch color.
func ImageGradient(url string) Gradient {
	base := ImageSwatch(url)
	shade := LerpRGB(base, RGB{0, 0, 0}, 0.45)
	return NewGradient([]string{RGBToHex(base), RGBToHex(shade)}, tileGradientAngle)
}
