package wire

// Marshaler is implemented by values that can write their fixed-width form.
// MarshalWire writes starting at buf[0], never past len(buf), and returns
// the number of bytes written.
type Marshaler interface {
	MarshalWire(buf []byte) (int, error)
}

// Unmarshaler is implemented by pointers to values that can be read back.
// UnmarshalWire checks len(buf) before reading and leaves the receiver
// untouched when it fails.
type Unmarshaler interface {
	UnmarshalWire(buf []byte) error
}

// Sizer reports the static encoded width of a type. The result must not
// depend on the receiver's value.
type Sizer interface {
	WireSize() int
}

// Record is a value type with a fixed-width encoding.
type Record interface {
	Marshaler
	Sizer
}

// EncodeFunc and DecodeFunc are the functional forms of the two
// capabilities, used to compose sequences.
type (
	EncodeFunc[T any] func(buf []byte, v T) (int, error)
	DecodeFunc[T any] func(buf []byte) (T, error)
)

// EncodeRecord adapts a record's MarshalWire to an EncodeFunc.
func EncodeRecord[T Marshaler](buf []byte, v T) (int, error) {
	return v.MarshalWire(buf)
}

// DecodeRecord adapts a record's UnmarshalWire to a DecodeFunc.
func DecodeRecord[T any, PT interface {
	*T
	Unmarshaler
}](buf []byte) (T, error) {
	var v T
	if err := PT(&v).UnmarshalWire(buf); err != nil {
		var zero T
		return zero, err
	}
	return v, nil
}

// WidthOf returns the static encoded width of T.
func WidthOf[T Sizer]() int {
	var v T
	return v.WireSize()
}

// Tail returns buf[off:], or an empty slice when off is past the end, so a
// decoder advancing by a static width hands the next step a short buffer
// instead of panicking.
func Tail(buf []byte, off int) []byte {
	if off >= len(buf) {
		return buf[len(buf):]
	}
	return buf[off:]
}
