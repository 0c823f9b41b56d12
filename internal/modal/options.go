package modal

// DefaultWidth is the modal width when WithWidth is not given.
const DefaultWidth = 56

// Variant selects the border treatment.
type Variant int

const (
	VariantDefault Variant = iota
	VariantDanger
)

// Option configures a Modal.
type Option func(*Modal)

// WithWidth sets the outer width. Render clamps it to the screen.
func WithWidth(w int) Option {
	return func(m *Modal) { m.width = w }
}

// WithVariant sets the border variant.
func WithVariant(v Variant) Option {
	return func(m *Modal) { m.variant = v }
}

// WithHints toggles the key hint line under the sections.
func WithHints(show bool) Option {
	return func(m *Modal) { m.showHints = show }
}

// WithPrimaryAction makes Enter return id regardless of focus.
func WithPrimaryAction(id string) Option {
	return func(m *Modal) { m.primaryAction = id }
}

// WithCloseOnBackdrop controls whether a click outside the box cancels.
func WithCloseOnBackdrop(close bool) Option {
	return func(m *Modal) { m.closeOnBackdrop = close }
}
