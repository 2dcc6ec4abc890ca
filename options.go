package toon

import (
	"github.com/bnomei/toon-go/internal/canonical"
	"github.com/bnomei/toon-go/internal/lex"
	"github.com/bnomei/toon-go/internal/opt"
)

// EncodeOptions configures Marshal/MarshalToString/MarshalToBytes.
type EncodeOptions struct {
	Indent       int
	Delimiter    string // "," | "\t" | "|"
	KeyFolding   string // "off" | "safe"
	FlattenDepth int
}

// DefaultEncodeOptions returns the library defaults: 2-space indent,
// comma delimiter, key folding off.
func DefaultEncodeOptions() EncodeOptions {
	d := opt.DefaultEncode()
	return EncodeOptions{Indent: d.Indent, Delimiter: string(d.Delimiter), KeyFolding: string(d.KeyFolding)}
}

// EncodeOption mutates an EncodeOptions in place. Apply via Marshal's
// variadic opts parameter.
type EncodeOption func(*EncodeOptions)

// WithIndent sets the number of spaces per indentation level.
func WithIndent(n int) EncodeOption {
	return func(o *EncodeOptions) { o.Indent = n }
}

// WithDelimiter sets the array cell/field delimiter: "," "\t" or "|".
func WithDelimiter(d string) EncodeOption {
	return func(o *EncodeOptions) { o.Delimiter = d }
}

// WithKeyFolding enables ("safe") or disables ("off") dotted-key folding
// of single-entry nested objects.
func WithKeyFolding(mode string) EncodeOption {
	return func(o *EncodeOptions) { o.KeyFolding = mode }
}

// WithFlattenDepth bounds how many segments WithKeyFolding("safe") may
// fold into one dotted key. 0 means unlimited.
func WithFlattenDepth(depth int) EncodeOption {
	return func(o *EncodeOptions) { o.FlattenDepth = depth }
}

func (o EncodeOptions) toInternal() (opt.Encode, error) {
	e := opt.DefaultEncode()
	if o.Indent != 0 {
		e.Indent = o.Indent
	}
	if o.Delimiter != "" {
		d, ok := lex.ParseDelimiterName(o.Delimiter)
		if !ok {
			d, ok = lex.ParseDelimiter(o.Delimiter[0])
		}
		if !ok {
			return e, &Error{Kind: KindEncode, Message: "invalid delimiter " + o.Delimiter}
		}
		e.Delimiter = d
	}
	if o.KeyFolding != "" {
		e.KeyFolding = opt.KeyFolding(o.KeyFolding)
	}
	e.FlattenDepth = o.FlattenDepth
	if err := e.Validate(); err != nil {
		return e, newError(KindEncode, err)
	}
	return e, nil
}

func applyEncodeOptions(opts []EncodeOption) EncodeOptions {
	o := DefaultEncodeOptions()
	for _, f := range opts {
		f(&o)
	}
	return o
}

// DecodeOptions configures Unmarshal/UnmarshalFromString/DecodeToValue.
type DecodeOptions struct {
	Indent      int
	Strict      bool
	ExpandPaths string // "off" | "safe"
}

// DefaultDecodeOptions returns the library defaults: strict, 2-space
// indent, no path expansion.
func DefaultDecodeOptions() DecodeOptions {
	d := opt.DefaultDecode()
	return DecodeOptions{Indent: d.Indent, Strict: d.Strict, ExpandPaths: string(d.ExpandPaths)}
}

// DecodeOption mutates a DecodeOptions in place.
type DecodeOption func(*DecodeOptions)

// WithIndentSize sets the expected indentation width used for strict
// alignment checks.
func WithIndentSize(n int) DecodeOption {
	return func(o *DecodeOptions) { o.Indent = n }
}

// WithStrict toggles strict-mode validation.
func WithStrict(strict bool) DecodeOption {
	return func(o *DecodeOptions) { o.Strict = strict }
}

// WithExpandPaths enables ("safe") or disables ("off") dotted-key
// expansion into nested objects.
func WithExpandPaths(mode string) DecodeOption {
	return func(o *DecodeOptions) { o.ExpandPaths = mode }
}

func (o DecodeOptions) toInternal() (opt.Decode, error) {
	d := opt.DefaultDecode()
	if o.Indent != 0 {
		d.Indent = o.Indent
	}
	d.Strict = o.Strict
	if o.ExpandPaths != "" {
		d.ExpandPaths = opt.PathExpansion(o.ExpandPaths)
	}
	if err := d.Validate(); err != nil {
		return d, newError(KindDecode, err)
	}
	return d, nil
}

func applyDecodeOptions(opts []DecodeOption) DecodeOptions {
	o := DefaultDecodeOptions()
	for _, f := range opts {
		f(&o)
	}
	return o
}

// canonicalEncode and canonicalDecode expose the fixed canonical profile
// (spec §4.7, §6.1's "callers can opt into a canonical profile") for
// callers that want deterministic output regardless of EncodeOptions.
func canonicalEncode() opt.Encode { return canonical.EncodeOptions() }
func canonicalDecode() opt.Decode { return canonical.DecodeOptions() }
