package wire

import (
	"encoding/binary"
	"math"
)

// Encoded widths of the primitive types.
const (
	Width8    = 1
	Width16   = 2
	Width32   = 4
	Width64   = 8
	WidthBool = 1
)

// EncodeUint8 writes v as one byte.
func EncodeUint8[T ~uint8](buf []byte, v T) (int, error) {
	if len(buf) < Width8 {
		return 0, ErrEncodeBufferTooSmall
	}
	buf[0] = byte(v)
	return Width8, nil
}

// DecodeUint8 reads one byte.
func DecodeUint8[T ~uint8](buf []byte) (T, error) {
	if len(buf) < Width8 {
		return 0, ErrDecodeBufferTooSmall
	}
	return T(buf[0]), nil
}

// EncodeUint16 writes v big-endian.
func EncodeUint16[T ~uint16](buf []byte, v T) (int, error) {
	if len(buf) < Width16 {
		return 0, ErrEncodeBufferTooSmall
	}
	binary.BigEndian.PutUint16(buf, uint16(v))
	return Width16, nil
}

// DecodeUint16 reads a big-endian 16-bit value.
func DecodeUint16[T ~uint16](buf []byte) (T, error) {
	if len(buf) < Width16 {
		return 0, ErrDecodeBufferTooSmall
	}
	return T(binary.BigEndian.Uint16(buf)), nil
}

// EncodeUint32 writes v big-endian.
func EncodeUint32[T ~uint32](buf []byte, v T) (int, error) {
	if len(buf) < Width32 {
		return 0, ErrEncodeBufferTooSmall
	}
	binary.BigEndian.PutUint32(buf, uint32(v))
	return Width32, nil
}

// DecodeUint32 reads a big-endian 32-bit value.
func DecodeUint32[T ~uint32](buf []byte) (T, error) {
	if len(buf) < Width32 {
		return 0, ErrDecodeBufferTooSmall
	}
	return T(binary.BigEndian.Uint32(buf)), nil
}

// EncodeUint64 writes v big-endian.
func EncodeUint64[T ~uint64](buf []byte, v T) (int, error) {
	if len(buf) < Width64 {
		return 0, ErrEncodeBufferTooSmall
	}
	binary.BigEndian.PutUint64(buf, uint64(v))
	return Width64, nil
}

// DecodeUint64 reads a big-endian 64-bit value.
func DecodeUint64[T ~uint64](buf []byte) (T, error) {
	if len(buf) < Width64 {
		return 0, ErrDecodeBufferTooSmall
	}
	return T(binary.BigEndian.Uint64(buf)), nil
}

// Signed integers share the unsigned codec of the same width; the
// two's-complement bit pattern survives the conversion unchanged.

// EncodeInt8 writes v as one two's-complement byte.
func EncodeInt8[T ~int8](buf []byte, v T) (int, error) {
	return EncodeUint8(buf, uint8(v))
}

// DecodeInt8 reads one two's-complement byte.
func DecodeInt8[T ~int8](buf []byte) (T, error) {
	u, err := DecodeUint8[uint8](buf)
	return T(u), err
}

// EncodeInt16 writes v big-endian in two bytes.
func EncodeInt16[T ~int16](buf []byte, v T) (int, error) {
	return EncodeUint16(buf, uint16(v))
}

// DecodeInt16 reads two big-endian bytes.
func DecodeInt16[T ~int16](buf []byte) (T, error) {
	u, err := DecodeUint16[uint16](buf)
	return T(u), err
}

// EncodeInt32 writes v big-endian in four bytes.
func EncodeInt32[T ~int32](buf []byte, v T) (int, error) {
	return EncodeUint32(buf, uint32(v))
}

// DecodeInt32 reads four big-endian bytes.
func DecodeInt32[T ~int32](buf []byte) (T, error) {
	u, err := DecodeUint32[uint32](buf)
	return T(u), err
}

// EncodeInt64 writes v big-endian in eight bytes.
func EncodeInt64[T ~int64](buf []byte, v T) (int, error) {
	return EncodeUint64(buf, uint64(v))
}

// DecodeInt64 reads eight big-endian bytes.
func DecodeInt64[T ~int64](buf []byte) (T, error) {
	u, err := DecodeUint64[uint64](buf)
	return T(u), err
}

// EncodeFloat32 writes the IEEE-754 bits of v big-endian.
func EncodeFloat32[T ~float32](buf []byte, v T) (int, error) {
	return EncodeUint32(buf, math.Float32bits(float32(v)))
}

// DecodeFloat32 reads four big-endian bytes as IEEE-754 bits.
func DecodeFloat32[T ~float32](buf []byte) (T, error) {
	u, err := DecodeUint32[uint32](buf)
	return T(math.Float32frombits(u)), err
}

// EncodeFloat64 writes the IEEE-754 bits of v big-endian.
func EncodeFloat64[T ~float64](buf []byte, v T) (int, error) {
	return EncodeUint64(buf, math.Float64bits(float64(v)))
}

// DecodeFloat64 reads eight big-endian bytes as IEEE-754 bits.
func DecodeFloat64[T ~float64](buf []byte) (T, error) {
	u, err := DecodeUint64[uint64](buf)
	return T(math.Float64frombits(u)), err
}

// EncodeBool writes 0x01 for true and 0x00 for false.
func EncodeBool[T ~bool](buf []byte, v T) (int, error) {
	if len(buf) < WidthBool {
		return 0, ErrEncodeBufferTooSmall
	}
	if v {
		buf[0] = 1
	} else {
		buf[0] = 0
	}
	return WidthBool, nil
}

// DecodeBool accepts only 0x00 and 0x01; any other byte is ErrInvalidData.
func DecodeBool[T ~bool](buf []byte) (T, error) {
	if len(buf) < WidthBool {
		return false, ErrDecodeBufferTooSmall
	}
	switch buf[0] {
	case 0:
		return false, nil
	case 1:
		return true, nil
	default:
		return false, ErrInvalidData
	}
}
