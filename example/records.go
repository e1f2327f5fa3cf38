package example

import "github.com/alexhholmes/fixedwire/example/geo"

// @wire
type Pair struct {
	A uint16
	B uint8
}

// Sample is one sensor reading.
//
// @wire
type Sample struct {
	ID       uint32
	Readings [4]uint8
	Valid    bool
	Level    float32
}

// @wire
type Unit struct{}

// Fix places a track in space; geo.Point is a hand-written record.
//
// @wire
type Fix struct {
	Where   geo.Point
	Heading geo.Heading
	Trail   [2]geo.Point
}
