package toon

import (
	"io"

	"github.com/bnomei/toon-go/internal/bridge"
	"github.com/bnomei/toon-go/internal/canonical"
	"github.com/bnomei/toon-go/internal/encode"
)

// Marshal encodes v, any JSON-compatible Go value (nil, bool, numbers,
// string, slice, map, struct, or pointer to one of those), to TOON text
// and writes it to w. This is the to_writer_with_options operation.
func Marshal(v interface{}, w io.Writer, opts ...EncodeOption) error {
	s, err := MarshalToString(v, opts...)
	if err != nil {
		return err
	}
	_, werr := io.WriteString(w, s)
	if werr != nil {
		return newError(KindEncode, werr)
	}
	return nil
}

// MarshalToString is Marshal, returning the result as a string instead of
// writing to an io.Writer. This is to_string_with_options.
func MarshalToString(v interface{}, opts ...EncodeOption) (string, error) {
	eo, err := applyEncodeOptions(opts).toInternal()
	if err != nil {
		return "", err
	}
	val, err := bridge.ToValue(v)
	if err != nil {
		return "", newError(KindSerialize, err)
	}
	out, err := encode.Encode(val, eo)
	if err != nil {
		return "", newError(KindEncode, err)
	}
	return out, nil
}

// MarshalToBytes is MarshalToString, returning []byte. This is to_vec_with_options.
func MarshalToBytes(v interface{}, opts ...EncodeOption) ([]byte, error) {
	s, err := MarshalToString(v, opts...)
	if err != nil {
		return nil, err
	}
	return []byte(s), nil
}

// MarshalCanonical encodes v under the fixed canonical profile (spec
// §4.7, §6.1): two-space indent, comma delimiter, sorted object keys,
// independent of any EncodeOptions the caller might otherwise choose.
func MarshalCanonical(v interface{}) (string, error) {
	val, err := bridge.ToValue(v)
	if err != nil {
		return "", newError(KindSerialize, err)
	}
	out, err := encode.Encode(canonical.SortKeys(val), canonicalEncode())
	if err != nil {
		return "", newError(KindEncode, err)
	}
	return out, nil
}
