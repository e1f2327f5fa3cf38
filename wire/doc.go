// Package wire implements a fixed-width binary encoding for constrained
// targets.
//
// Values are written to and read from a caller-owned byte slice. Nothing in
// this package allocates, logs, or retains the buffer past a call.
//
// # Format
//
//	Type              Width  Encoding
//	──────────────────────────────────────────
//	uint8/int8        1      raw byte
//	uint16/int16      2      big-endian
//	uint32/int32      4      big-endian
//	uint64/int64      8      big-endian
//	float32           4      IEEE-754 bits, big-endian
//	float64           8      IEEE-754 bits, big-endian
//	bool              1      0x00 or 0x01
//	[N]T              N*T    elements in order
//	record            sum    fields in declaration order
//
// There is no framing, no length prefix and no padding. A record's wire
// length is the static sum of its field widths.
//
// # Records
//
// Records are Go structs with generated methods:
//
//	func (p T) WireSize() int
//	func (p T) MarshalWire(buf []byte) (int, error)
//	func (p *T) UnmarshalWire(buf []byte) error
//
// Annotate the struct with a "@wire" doc comment and run wiregen through
// go generate:
//
//	//go:generate go run github.com/alexhholmes/fixedwire/cmd/wiregen
//
//	// @wire
//	type Header struct {
//		Version uint16
//		Flags   uint8
//	}
//
// # Static width
//
// Decoding a sequence or a record advances the cursor by the declared width
// of each element or field, not by what its decoder consumed. This holds
// only while every type's encoded width equals its declared width; wiregen
// refuses field types that have no fixed width.
//
// # Errors
//
// Encoders return *EncodeError and decoders return *DecodeError. Both carry
// a Kind, which is itself an error, so callers can test with errors.Is:
//
//	if errors.Is(err, wire.KindBufferTooSmall) { ... }
//
// A failed composite encode leaves earlier fields written into the buffer.
// A failed decode never returns a partial value.
package wire
