package tilemap

import (
	"gridpac/internal/entities"

	"github.com/zyedidia/generic/mapset"
)

type Tile int

const (
	TileEmpty Tile = iota
	TileWall
	TileDot
)

// WallSet holds the impassable cells of a layout.
type WallSet = mapset.Set[entities.Point]

type TileMap struct {
	Width  int
	Height int
	Tiles  [][]Tile
	dots   int
}

// New builds a size x size grid with the given walls. Walls outside the grid are ignored.
func New(size int, walls WallSet) *TileMap {
	grid := make([][]Tile, size)
	for y := range grid {
		grid[y] = make([]Tile, size)
	}
	walls.Each(func(p entities.Point) {
		if p.X >= 0 && p.X < size && p.Y >= 0 && p.Y < size {
			grid[p.Y][p.X] = TileWall
		}
	})
	return &TileMap{Width: size, Height: size, Tiles: grid}
}

func (m *TileMap) InBounds(x, y int) bool {
	return x >= 0 && x < m.Width && y >= 0 && y < m.Height
}

// IsWall reports whether a cell blocks movement. Out-of-bounds cells count as walls.
func (m *TileMap) IsWall(x, y int) bool {
	if !m.InBounds(x, y) {
		return true
	}
	return m.Tiles[y][x] == TileWall
}

func (m *TileMap) At(x, y int) Tile {
	if !m.InBounds(x, y) {
		return TileWall
	}
	return m.Tiles[y][x]
}

func (m *TileMap) HasDot(x, y int) bool {
	return m.InBounds(x, y) && m.Tiles[y][x] == TileDot
}

// PutDot places a dot on an empty cell and reports whether it did.
func (m *TileMap) PutDot(x, y int) bool {
	if !m.InBounds(x, y) || m.Tiles[y][x] != TileEmpty {
		return false
	}
	m.Tiles[y][x] = TileDot
	m.dots++
	return true
}

// EatDotAt removes a dot at grid cell and reports whether one was there.
func (m *TileMap) EatDotAt(x, y int) bool {
	if !m.HasDot(x, y) {
		return false
	}
	m.Tiles[y][x] = TileEmpty
	m.dots--
	return true
}

func (m *TileMap) DotCount() int {
	return m.dots
}

// ClearDots empties every dot cell. Walls are untouched.
func (m *TileMap) ClearDots() {
	for y := 0; y < m.Height; y++ {
		for x := 0; x < m.Width; x++ {
			if m.Tiles[y][x] == TileDot {
				m.Tiles[y][x] = TileEmpty
			}
		}
	}
	m.dots = 0
}

// NearestOpen returns the nearest non-wall cell to (x, y), searching rings of
// growing radius. It falls back to the original cell when nothing is open.
func (m *TileMap) NearestOpen(x, y int) (int, int) {
	if !m.IsWall(x, y) {
		return x, y
	}
	maxR := 6
	for r := 1; r <= maxR; r++ {
		for dy := -r; dy <= r; dy++ {
			for dx := -r; dx <= r; dx++ {
				nx, ny := x+dx, y+dy
				if !m.InBounds(nx, ny) {
					continue
				}
				if !m.IsWall(nx, ny) {
					return nx, ny
				}
			}
		}
	}
	return x, y
}
