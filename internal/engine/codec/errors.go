package codec

import "go.trai.ch/zerr"

var (
	// ErrNoCodec is returned when no registered codec matches a value.
	ErrNoCodec = zerr.New("no codec for value")

	// ErrUnknownTag is returned when a decoded tag has no registered codec.
	ErrUnknownTag = zerr.New("unknown codec tag")

	// ErrDuplicateTag is returned when two bindings declare the same tag.
	ErrDuplicateTag = zerr.New("duplicate codec tag")

	// ErrInvalidReference is returned when a back-reference points outside the scope tables.
	ErrInvalidReference = zerr.New("invalid back-reference")

	// ErrInvalidLength is returned when a collection length exceeds the unread input.
	ErrInvalidLength = zerr.New("collection length exceeds input")
)
