package starfield

import "math"

// Brightness levels used when drawing; opacity in [0,1) is bucketed into
// Levels steps so the renderer can cache one style per level.
const Levels = 5

// Cell is one drawn grid position. A zero Glyph means empty space.
type Cell struct {
	Glyph rune
	Level int
}

// Frame draws the field onto a fresh rows×cols grid. Later stars paint over
// earlier ones in the same cell. Stars parked exactly on the bottom edge after
// a wrap are off-canvas until their next tick.
func (f *Field) Frame() [][]Cell {
	cols := int(f.width)
	rows := int(f.height)
	if cols <= 0 || rows <= 0 {
		return nil
	}
	grid := make([][]Cell, rows)
	for r := range grid {
		grid[r] = make([]Cell, cols)
	}
	for _, s := range f.stars {
		col := int(math.Floor(s.X))
		row := int(math.Floor(s.Y))
		if col < 0 || col >= cols || row < 0 || row >= rows {
			continue
		}
		grid[row][col] = Cell{Glyph: glyphFor(s.Radius), Level: levelFor(s.Opacity)}
	}
	return grid
}

func glyphFor(radius float64) rune {
	switch {
	case radius < 0.7:
		return '·'
	case radius < 1.4:
		return '+'
	default:
		return '*'
	}
}

func levelFor(opacity float64) int {
	level := int(opacity * Levels)
	if level < 0 {
		return 0
	}
	if level >= Levels {
		return Levels - 1
	}
	return level
}
