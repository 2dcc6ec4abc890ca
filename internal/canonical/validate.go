package canonical

import (
	"github.com/bnomei/toon-go/internal/decode"
	"github.com/bnomei/toon-go/internal/encode"
)

// Validate reports whether input is already in canonical TOON form: it
// must decode under canonical (strict, no trailing newline, no
// unnecessary quoting) rules, and re-encoding the resulting value tree
// with sorted keys must reproduce input byte-for-byte. The second check
// subsumes sorted-key order, canonical number formatting, minimal
// quoting, and array-form selection in one pass, rather than re-deriving
// each rule independently (spec §4.7's definition of canonical form is
// itself "what the encoder would produce").
func Validate(input string) error {
	v, err := decode.DecodeCanonical(input, DecodeOptions())
	if err != nil {
		return err
	}
	sorted := SortKeys(v)
	rendered, err := encode.Encode(sorted, EncodeOptions())
	if err != nil {
		return err
	}
	if rendered != input {
		return &decode.Error{Message: "input is not in canonical form"}
	}
	return nil
}
