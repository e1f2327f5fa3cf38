package testdata

import (
	"time"

	geo "example.com/geo/v2"
)

const Slots = 4

type Mode uint16

// @wire
type Pair struct {
	A uint16
	B uint8
}

// Header exercises every field form.
//
// @wire atomic
type Header struct {
	Pair
	Version, Flags uint8
	Mode           Mode `wire:"validate=checkMode"`
	Slots          [Slots]uint16
	seen           time.Time `wire:"-"`
	Origin         geo.Point
}

type (
	// @wire atomic=false
	Grouped struct{ X int32 }

	// Not annotated.
	Plain struct{ Y uint8 }
)

type Alias = Pair
