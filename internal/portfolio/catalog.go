package portfolio

// Catalog is the fixed set of backgrounds offered by the picker.
type Catalog struct {
	Gradients []string
	Images    []string
}

// Option returns the catalog entry of the given kind at index.
func (c Catalog) Option(kind BackgroundKind, index int) (Background, bool) {
	var list []string
	switch kind {
	case BackgroundGradient:
		list = c.Gradients
	case BackgroundImage:
		list = c.Images
	default:
		return Background{}, false
	}
	if index < 0 || index >= len(list) {
		return Background{}, false
	}
	return Background{Kind: kind, Value: list[index]}, true
}

// Len returns the number of entries of the given kind.
func (c Catalog) Len(kind BackgroundKind) int {
	switch kind {
	case BackgroundGradient:
		return len(c.Gradients)
	case BackgroundImage:
		return len(c.Images)
	}
	return 0
}
