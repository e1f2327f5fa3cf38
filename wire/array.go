package wire

// EncodeArray writes elems in order, advancing by the byte count each
// element reports. A failure stops the walk; elements before it stay
// written in buf.
func EncodeArray[T any](buf []byte, elems []T, enc EncodeFunc[T]) (int, error) {
	var off int
	for i := range elems {
		n, err := enc(buf[off:], elems[i])
		if err != nil {
			return 0, err
		}
		off += n
	}
	return off, nil
}

// DecodeArray fills slots in order from buf, advancing by width per slot.
//
// width is the static encoded width of T. The advance does not look at
// what the element decoder consumed, so T must satisfy the fixed-width
// invariant.
//
// slots is scratch storage: on failure its contents are unspecified. Decode
// into a local array and publish it once DecodeArray returns nil.
func DecodeArray[T any](slots []T, buf []byte, width int, dec DecodeFunc[T]) error {
	var off int
	for i := range slots {
		v, err := dec(Tail(buf, off))
		if err != nil {
			return err
		}
		slots[i] = v
		off += width
	}
	return nil
}
