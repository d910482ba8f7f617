package domain

// Palette is the fixed day colour rotation.
type Palette []string

// DefaultPalette is the six-colour rotation used for day cards and map markers.
var DefaultPalette = Palette{"#2b5cff", "#2ecc71", "#f39c12", "#e74c3c", "#9b59b6", "#16a085"}

// ForTag returns p[(tag-1) mod len(p)]. The modulus is kept non-negative so
// the synthetic tag 0 of a single-idea map gets the last colour.
func (p Palette) ForTag(tag int) string {
	if len(p) == 0 {
		return ""
	}
	i := (tag - 1) % len(p)
	if i < 0 {
		i += len(p)
	}
	return p[i]
}
