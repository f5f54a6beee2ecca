package tilemap

import (
	"errors"
	"fmt"

	"gridpac/internal/entities"

	"github.com/zyedidia/generic/mapset"
)

var ErrUnknownLayout = errors.New("unknown layout")

// Spawn is a ghost's starting cell and display identity.
type Spawn struct {
	At    entities.Point
	Glyph string
}

type Layout struct {
	Name        string
	Size        int
	Walls       WallSet
	PlayerStart entities.Point
	Ghosts      []Spawn
}

// Classic25 is the bordered 25x25 maze.
func Classic25() Layout {
	return Layout{
		Name:        "classic25",
		Size:        25,
		Walls:       ParseWalls(classicMaze),
		PlayerStart: entities.Point{X: 12, Y: 12},
		Ghosts: []Spawn{
			{At: entities.Point{X: 5, Y: 5}, Glyph: "👻"},
			{At: entities.Point{X: 20, Y: 5}, Glyph: "👾"},
			{At: entities.Point{X: 5, Y: 20}, Glyph: "💀"},
			{At: entities.Point{X: 20, Y: 20}, Glyph: "👹"},
		},
	}
}

// Open20 is the 20x20 field with no border; the grid edge stops movement.
func Open20() Layout {
	return Layout{
		Name:        "open20",
		Size:        20,
		Walls:       ParseWalls(openMaze),
		PlayerStart: entities.Point{X: 9, Y: 9},
		Ghosts: []Spawn{
			{At: entities.Point{X: 2, Y: 2}, Glyph: "👻"},
			{At: entities.Point{X: 17, Y: 2}, Glyph: "👾"},
			{At: entities.Point{X: 2, Y: 17}, Glyph: "💀"},
			{At: entities.Point{X: 17, Y: 17}, Glyph: "👹"},
		},
	}
}

// LayoutByName resolves a layout by name or by its grid size ("20", "25").
func LayoutByName(name string) (Layout, error) {
	switch name {
	case "classic25", "classic", "25":
		return Classic25(), nil
	case "open20", "open", "20":
		return Open20(), nil
	}
	return Layout{}, fmt.Errorf("%w: %q", ErrUnknownLayout, name)
}

// ParseWalls reads '#' cells from ASCII rows into a wall set.
func ParseWalls(lines []string) WallSet {
	walls := mapset.New[entities.Point]()
	for y, line := range lines {
		for x := 0; x < len(line); x++ {
			if line[x] == '#' {
				walls.Put(entities.Point{X: x, Y: y})
			}
		}
	}
	return walls
}

var classicMaze = []string{
	"#########################",
	"#.......................#",
	"#.......................#",
	"#.......................#",
	"#.......................#",
	"#....#..............#...#",
	"#....#..............#...#",
	"#....#..............#...#",
	"#.......................#",
	"#.......................#",
	"#.........#.............#",
	"#.........#.............#",
	"#.........#.............#",
	"#.......................#",
	"#.......................#",
	"#..............#........#",
	"#..............#........#",
	"#..............#........#",
	"#.......................#",
	"#.......................#",
	"#.......................#",
	"#.......................#",
	"#.......................#",
	"#.......................#",
	"#########################",
}

var openMaze = []string{
	"....................",
	"....................",
	"....................",
	"....................",
	"....#..........#....",
	"....#..........#....",
	"....#..........#....",
	"....................",
	"....................",
	"......##....##......",
	"....................",
	"....................",
	"....................",
	"....#..........#....",
	"....#..........#....",
	"....#..........#....",
	"....................",
	"....................",
	"....................",
	"....................",
}
