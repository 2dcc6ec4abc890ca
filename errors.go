package toon

import (
	"fmt"

	"github.com/bnomei/toon-go/internal/decode"
)

// Kind classifies what stage of the codec an Error came from.
type Kind int

const (
	// KindEncode marks a failure while rendering a value tree to text.
	KindEncode Kind = iota
	// KindDecode marks a failure while parsing text into a value tree.
	KindDecode
	// KindSerialize marks a failure converting a user Go type into the
	// value tree (the bridge's to-value direction).
	KindSerialize
	// KindDeserialize marks a failure converting the value tree into a
	// user Go type (the bridge's from-value direction).
	KindDeserialize
	// KindNotImplemented marks a code path not exercised by this package.
	KindNotImplemented
	// KindValidate marks a failure in the canonical validator.
	KindValidate
)

func (k Kind) String() string {
	switch k {
	case KindEncode:
		return "encode"
	case KindDecode:
		return "decode"
	case KindSerialize:
		return "serialize"
	case KindDeserialize:
		return "deserialize"
	case KindNotImplemented:
		return "not_implemented"
	case KindValidate:
		return "validate"
	default:
		return "unknown"
	}
}

// Error is the error type returned by every public function in this
// package. Line is set when the failure can be pinned to a line of
// decoder input and is zero otherwise; no current code path sets Column.
type Error struct {
	Kind    Kind
	Message string
	Line    int
	Column  int
	Cause   error
}

func (e *Error) Error() string {
	if e.Line > 0 {
		return fmt.Sprintf("toon: %s: %s (line %d)", e.Kind, e.Message, e.Line)
	}
	return fmt.Sprintf("toon: %s: %s", e.Kind, e.Message)
}

func (e *Error) Unwrap() error { return e.Cause }

func newError(kind Kind, err error) *Error {
	if err == nil {
		return nil
	}
	if te, ok := err.(*Error); ok {
		return te
	}
	if de, ok := err.(*decode.Error); ok {
		return &Error{Kind: kind, Message: de.Message, Line: de.Line, Cause: err}
	}
	return &Error{Kind: kind, Message: err.Error(), Cause: err}
}
