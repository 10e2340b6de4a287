package markup

// NoteColor is one registered map-annotation color: the single-character
// code players write in notes, the markup color it renders with, and its
// display name.
type NoteColor struct {
	Code  string
	Color string
	Name  string
}

// Palette is the ordered registry of note colors. Registration order is
// canonical and drives every enumeration of the palette.
type Palette struct {
	colors []NoteColor
}

// DefaultPalette returns the note colors recognized in map annotations.
func DefaultPalette() *Palette {
	p := &Palette{}
	p.Register("r", "light_red", "red")
	p.Register("R", "red", "dark red")
	p.Register("g", "light_green", "green")
	p.Register("G", "green", "dark green")
	p.Register("b", "light_blue", "blue")
	p.Register("B", "blue", "dark blue")
	p.Register("y", "yellow", "yellow")
	p.Register("c", "cyan", "cyan")
	p.Register("m", "magenta", "magenta")
	p.Register("p", "pink", "pink")
	p.Register("w", "white", "white")
	return p
}

// Register appends a note color to the palette.
func (p *Palette) Register(code, color, name string) {
	p.colors = append(p.colors, NoteColor{Code: code, Color: color, Name: name})
}

// NoteColors returns the registered colors in registration order.
func (p *Palette) NoteColors() []NoteColor {
	out := make([]NoteColor, len(p.colors))
	copy(out, p.colors)
	return out
}

// Sample returns the colorized code glyph for a note color as markup text.
func (p *Palette) Sample(nc NoteColor) string {
	return Tag(nc.Color, nc.Code)
}

// Len returns the number of registered colors.
func (p *Palette) Len() int {
	return len(p.colors)
}
