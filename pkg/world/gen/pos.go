package gen

import "fmt"

// BlockPos is an absolute block position in the world.
type BlockPos struct {
	X, Y, Z int
}

// Add returns p offset by (dx, dy, dz).
func (p BlockPos) Add(dx, dy, dz int) BlockPos {
	return BlockPos{X: p.X + dx, Y: p.Y + dy, Z: p.Z + dz}
}

func (p BlockPos) Up() BlockPos   { return p.Add(0, 1, 0) }
func (p BlockPos) Down() BlockPos { return p.Add(0, -1, 0) }

// Side returns the neighbouring position in direction d.
func (p BlockPos) Side(d Direction) BlockPos {
	dx, dy, dz := d.Offset()
	return p.Add(dx, dy, dz)
}

func (p BlockPos) String() string {
	return fmt.Sprintf("(%d,%d,%d)", p.X, p.Y, p.Z)
}

// Direction is one of the six axis-aligned block faces.
type Direction uint8

const (
	Down Direction = iota
	Up
	North // -Z
	South // +Z
	West  // -X
	East  // +X
)

// Horizontals lists the four horizontal directions in a fixed order.
var Horizontals = [4]Direction{North, South, West, East}

// Offset returns the unit step of the direction.
func (d Direction) Offset() (dx, dy, dz int) {
	switch d {
	case Down:
		return 0, -1, 0
	case Up:
		return 0, 1, 0
	case North:
		return 0, 0, -1
	case South:
		return 0, 0, 1
	case West:
		return -1, 0, 0
	case East:
		return 1, 0, 0
	}
	return 0, 0, 0
}

// Opposite returns the direction facing the other way.
func (d Direction) Opposite() Direction {
	switch d {
	case Down:
		return Up
	case Up:
		return Down
	case North:
		return South
	case South:
		return North
	case West:
		return East
	default:
		return West
	}
}

func (d Direction) String() string {
	switch d {
	case Down:
		return "down"
	case Up:
		return "up"
	case North:
		return "north"
	case South:
		return "south"
	case West:
		return "west"
	case East:
		return "east"
	}
	return fmt.Sprintf("Direction(%d)", uint8(d))
}
