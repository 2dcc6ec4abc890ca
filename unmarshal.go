package toon

import (
	"io"

	"github.com/bnomei/toon-go/internal/bridge"
	"github.com/bnomei/toon-go/internal/canonical"
	"github.com/bnomei/toon-go/internal/decode"
)

// Unmarshal reads all of r and decodes it into v, which must be a
// non-nil pointer. This is from_reader combined with the bridge.
func Unmarshal(r io.Reader, v interface{}, opts ...DecodeOption) error {
	data, err := io.ReadAll(r)
	if err != nil {
		return newError(KindDecode, err)
	}
	return UnmarshalFromString(string(data), v, opts...)
}

// UnmarshalFromString decodes s into v, which must be a non-nil pointer.
// This is from_str_with_options combined with the bridge.
func UnmarshalFromString(s string, v interface{}, opts ...DecodeOption) error {
	val, err := DecodeToValue(s, opts...)
	if err != nil {
		return err
	}
	if err := bridge.FromValue(val, v); err != nil {
		return newError(KindDeserialize, err)
	}
	return nil
}

// DecodeToValue parses s into the value tree without binding it to a Go
// type. This is decode_to_value.
func DecodeToValue(s string, opts ...DecodeOption) (Value, error) {
	do, err := applyDecodeOptions(opts).toInternal()
	if err != nil {
		return nil, err
	}
	val, err := decode.Decode(s, do)
	if err != nil {
		return nil, newError(KindDecode, err)
	}
	return val, nil
}

// Validate reports whether s is already in canonical TOON form (spec
// §4.7): strict decoding, no trailing newline or whitespace, sorted
// keys, minimal quoting, canonical number formatting, and canonical
// array-form selection. This is validate.
func Validate(s string) error {
	if err := canonical.Validate(s); err != nil {
		return newError(KindValidate, err)
	}
	return nil
}
