package core

// Color is an index into a Screen's palette.
// Index 0 is always the terminal's default foreground.
type Color uint8

// ColorDefault leaves the cell in the terminal's default colour.
const ColorDefault Color = 0

// Palette maps colour indices to "#rrggbb" strings.
// Entry 0 is ignored and rendered with the default style.
type Palette []string

// Hex returns the hex string for a colour, or "" for the default colour and
// out-of-range indices.
func (p Palette) Hex(c Color) string {
	if c == ColorDefault || int(c) >= len(p) {
		return ""
	}
	return p[c]
}

// Add appends a colour and returns its index. Palettes are capped at 255
// entries; overflow maps to ColorDefault.
func (p *Palette) Add(hex string) Color {
	if len(*p) == 0 {
		*p = append(*p, "")
	}
	if len(*p) >= 256 {
		return ColorDefault
	}
	*p = append(*p, hex)
	return Color(len(*p) - 1)
}
