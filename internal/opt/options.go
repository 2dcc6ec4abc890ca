// Package opt holds the encode/decode configuration records (spec §4.1).
package opt

import (
	"fmt"

	"github.com/bnomei/toon-go/internal/lex"
)

// KeyFolding selects the encoder's object-key-folding behavior.
type KeyFolding string

const (
	KeyFoldingOff  KeyFolding = "off"
	KeyFoldingSafe KeyFolding = "safe"
)

// PathExpansion selects the decoder's dotted-key-expansion behavior.
type PathExpansion string

const (
	PathExpansionOff  PathExpansion = "off"
	PathExpansionSafe PathExpansion = "safe"
)

// Encode is the encode-time configuration.
type Encode struct {
	Indent       int
	Delimiter    lex.Delimiter
	KeyFolding   KeyFolding
	FlattenDepth int // 0 means unlimited when KeyFolding == Safe
}

// DefaultEncode returns the default encode options.
func DefaultEncode() Encode {
	return Encode{Indent: 2, Delimiter: lex.Comma, KeyFolding: KeyFoldingOff}
}

// Validate checks that e's fields are in range.
func (e Encode) Validate() error {
	if e.Indent < 1 {
		return fmt.Errorf("indent must be a positive integer, got %d", e.Indent)
	}
	switch e.Delimiter {
	case lex.Comma, lex.Tab, lex.Pipe:
	default:
		return fmt.Errorf("invalid delimiter %q", e.Delimiter)
	}
	switch e.KeyFolding {
	case KeyFoldingOff, KeyFoldingSafe, "":
	default:
		return fmt.Errorf("invalid key_folding %q", e.KeyFolding)
	}
	if e.FlattenDepth < 0 {
		return fmt.Errorf("flatten_depth must be non-negative, got %d", e.FlattenDepth)
	}
	return nil
}

// Decode is the decode-time configuration.
type Decode struct {
	Indent      int
	Strict      bool
	ExpandPaths PathExpansion
}

// DefaultDecode returns the default decode options: strict, indent 2, no
// path expansion.
func DefaultDecode() Decode {
	return Decode{Indent: 2, Strict: true, ExpandPaths: PathExpansionOff}
}

// Validate checks that d's fields are in range.
func (d Decode) Validate() error {
	if d.Indent < 1 {
		return fmt.Errorf("indent must be a positive integer, got %d", d.Indent)
	}
	switch d.ExpandPaths {
	case PathExpansionOff, PathExpansionSafe, "":
	default:
		return fmt.Errorf("invalid expand_paths %q", d.ExpandPaths)
	}
	return nil
}
