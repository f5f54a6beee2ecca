package entities

type Ghost struct {
	Pos   Point
	Glyph string

	// Palette selects the ghost's color in renderers that cannot draw Glyph.
	Palette int
}
