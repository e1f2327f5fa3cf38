// Package geo holds records written by hand against the wire protocol,
// the way a type outside wiregen joins it.
package geo

import "github.com/alexhholmes/fixedwire/wire"

// Heading is a compass bearing in tenths of a degree.
type Heading uint16

// Point is a position in microdegrees.
type Point struct {
	Lat, Lon int32
}

func (p Point) WireSize() int { return 2 * wire.Width32 }

func (p Point) MarshalWire(buf []byte) (int, error) {
	n, err := wire.EncodeInt32(buf, p.Lat)
	if err != nil {
		return 0, err
	}
	m, err := wire.EncodeInt32(buf[n:], p.Lon)
	if err != nil {
		return 0, err
	}
	return n + m, nil
}

func (p *Point) UnmarshalWire(buf []byte) error {
	lat, err := wire.DecodeInt32[int32](buf)
	if err != nil {
		return err
	}
	lon, err := wire.DecodeInt32[int32](wire.Tail(buf, wire.Width32))
	if err != nil {
		return err
	}
	p.Lat, p.Lon = lat, lon
	return nil
}
