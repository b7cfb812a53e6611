package numeral

import (
	"strconv"
	"strings"

	"github.com/reoring/numeral/i18n"
)

// Reader side of the transformers: the grammar guarantees shape, so semantic
// conversion only reassembles groups and converts base-10 digits. No
// re-validation of formatting happens here.

func noMatch() error {
	return Issues{{Code: CodeNoMatch, Message: i18n.T(CodeNoMatch, nil)}}
}

func overflow(cause error) error {
	return Issues{{Code: CodeOverflow, Message: i18n.T(CodeOverflow, nil), Cause: cause}}
}

func (t *floatTransformer) Read(input string) (float64, string, error) {
	m, rest, ok := t.g.matchPrefix(input)
	if !ok {
		return 0, "", noMatch()
	}
	// Canonical base-10 form: [sign]int[.frac][e exp], separators stripped.
	var b strings.Builder
	b.Grow(len(input))
	b.WriteString(m.sign)
	b.WriteString(m.intDigits)
	if m.fracDigits != "" {
		b.WriteByte('.')
		b.WriteString(m.fracDigits)
	}
	if m.exponent != "" {
		b.WriteByte('e')
		b.WriteString(m.exponent)
	}
	v, err := strconv.ParseFloat(b.String(), 64)
	if err != nil {
		// The grammar rules out syntax errors; only range remains.
		return 0, "", overflow(err)
	}
	return v, rest, nil
}

func (t *intTransformer) Read(input string) (int64, string, error) {
	m, rest, ok := t.g.matchPrefix(input)
	if !ok {
		return 0, "", noMatch()
	}
	v, err := strconv.ParseInt(m.sign+m.intDigits, 10, 64)
	if err != nil {
		return 0, "", overflow(err)
	}
	return v, rest, nil
}

func (t *uintTransformer) Read(input string) (uint64, string, error) {
	m, rest, ok := t.g.matchPrefix(input)
	if !ok {
		return 0, "", noMatch()
	}
	v, err := strconv.ParseUint(m.intDigits, 10, 64)
	if err != nil {
		return 0, "", overflow(err)
	}
	return v, rest, nil
}
