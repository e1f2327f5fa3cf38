package aliases

import "github.com/alexhholmes/fixedwire/example/geo"

// Position is a record from another package under a local name.
type Position = geo.Point

type Bearing = geo.Heading

const (
	laneWidth = 2
	Lanes     = laneWidth * 2
	Samples   = Lanes << 1
)

// @wire
type Track struct {
	Where   Position
	Facing  Bearing
	Speeds  [Lanes]uint8
	History [Samples]int16
}
