package example

import "errors"

//go:generate go run github.com/alexhholmes/fixedwire/cmd/wiregen

// LeafSlots is the number of elements a leaf node holds.
const LeafSlots = 4

// PageFlags describes the state of a page.
type PageFlags uint16

const (
	FlagLeaf PageFlags = 1 << iota
	FlagDirty
)

// ErrUnknownFlags is returned when a header carries flag bits outside the known set.
var ErrUnknownFlags = errors.New("example: unknown page flags")

func checkFlags(f PageFlags) error {
	if f&^(FlagLeaf|FlagDirty) != 0 {
		return ErrUnknownFlags
	}
	return nil
}

// @wire
type LeafElement struct {
	Key    uint32
	Offset uint32
}

// @wire
type LeafHeader struct {
	NumKeys  uint16
	Flags    PageFlags `wire:"validate=checkFlags"`
	NextPage uint32
	PrevPage uint32
	Reserved uint32
}

// LeafNode is written whole or not at all.
//
// @wire atomic
type LeafNode struct {
	LeafHeader
	Elements [LeafSlots]LeafElement
	Footer   uint64

	dirty bool `wire:"-"`
}
