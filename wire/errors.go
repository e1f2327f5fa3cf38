package wire

// Kind categorizes an encode or decode failure.
type Kind uint8

const (
	// KindBufferTooSmall: the buffer has fewer bytes than the value needs.
	KindBufferTooSmall Kind = iota + 1
	// KindInvalidData: the bytes are outside the target type's domain.
	KindInvalidData
	// KindCustom: a caller-defined failure.
	KindCustom
)

func (k Kind) String() string {
	switch k {
	case KindBufferTooSmall:
		return "buffer too small"
	case KindInvalidData:
		return "invalid data"
	case KindCustom:
		return "custom"
	default:
		return "unknown"
	}
}

// Error makes a Kind usable as an errors.Is target.
func (k Kind) Error() string {
	return "wire: " + k.String()
}

// EncodeError is returned by encoders.
type EncodeError struct {
	Kind Kind
	Msg  string
}

func (e *EncodeError) Error() string {
	if e.Msg == "" {
		return "wire: encode: " + e.Kind.String()
	}
	return "wire: encode: " + e.Msg
}

// Is reports whether target is e's Kind, or an *EncodeError of the same
// Kind and, when target carries one, the same message.
func (e *EncodeError) Is(target error) bool {
	switch t := target.(type) {
	case Kind:
		return e.Kind == t
	case *EncodeError:
		return e.Kind == t.Kind && (t.Msg == "" || t.Msg == e.Msg)
	}
	return false
}

// DecodeError is returned by decoders.
type DecodeError struct {
	Kind Kind
	Msg  string
}

func (e *DecodeError) Error() string {
	if e.Msg == "" {
		return "wire: decode: " + e.Kind.String()
	}
	return "wire: decode: " + e.Msg
}

// Is reports whether target is e's Kind, or a *DecodeError of the same
// Kind and, when target carries one, the same message.
func (e *DecodeError) Is(target error) bool {
	switch t := target.(type) {
	case Kind:
		return e.Kind == t
	case *DecodeError:
		return e.Kind == t.Kind && (t.Msg == "" || t.Msg == e.Msg)
	}
	return false
}

// Preallocated so the encode and decode paths never allocate. They are
// shared by every caller and must be treated as read-only: compare with
// errors.Is, never assign to their fields. Use NewEncodeError or
// NewDecodeError for an error with a message of its own.
var (
	ErrEncodeBufferTooSmall = &EncodeError{Kind: KindBufferTooSmall}
	ErrDecodeBufferTooSmall = &DecodeError{Kind: KindBufferTooSmall}
	ErrInvalidData          = &DecodeError{Kind: KindInvalidData}
)

// NewEncodeError returns a custom encode failure. Store the result in a
// package-level variable to keep the hot path allocation free.
func NewEncodeError(msg string) *EncodeError {
	return &EncodeError{Kind: KindCustom, Msg: msg}
}

// NewDecodeError returns a custom decode failure.
func NewDecodeError(msg string) *DecodeError {
	return &DecodeError{Kind: KindCustom, Msg: msg}
}
