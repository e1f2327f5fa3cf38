package testdata

// @wire
type Message interface{ isMessage() }

// @wire
type Flags uint16

// @wire
type Block [16]byte

// @wire
type Bytes []byte

// @wire
type Index map[string]uint32

// @wire
type Ref *Flags

// @wire
type Hook func()

// @wire
type Queue chan uint8

// @wire
type Box[T any] struct{ V T }
