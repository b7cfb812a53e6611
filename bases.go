package numeral

import (
	"strconv"

	"github.com/reoring/numeral/i18n"
)

// Base returns the unsigned integer transformer for radix 2, 8, or 16. The
// reader greedily consumes the maximal valid digit run (case-insensitive for
// hex); the writer emits the minimal-width representation with lowercase hex
// digits. There is no configuration surface.
func Base(radix int) (Transformer[uint64], error) {
	switch radix {
	case 2, 8, 16:
		return baseTransformer{radix: radix}, nil
	default:
		return nil, Issues{{
			Code:    CodeInvalidConfig,
			Message: i18n.T(CodeInvalidConfig, nil) + ": radix must be 2, 8, or 16",
			Params:  map[string]any{"field": "radix", "got": radix},
		}}
	}
}

type baseTransformer struct {
	radix int
}

func (t baseTransformer) Read(input string) (uint64, string, error) {
	n := 0
	for n < len(input) && digitValue(input[n]) < t.radix {
		n++
	}
	if n == 0 {
		return 0, "", noMatch()
	}
	v, err := strconv.ParseUint(input[:n], t.radix, 64)
	if err != nil {
		return 0, "", overflow(err)
	}
	return v, input[n:], nil
}

func (t baseTransformer) Write(v uint64) (string, error) {
	return strconv.FormatUint(v, t.radix), nil
}

// digitValue maps an ASCII byte to its digit value, or 16+ when it is no
// digit in any supported radix.
func digitValue(c byte) int {
	switch {
	case c >= '0' && c <= '9':
		return int(c - '0')
	case c >= 'a' && c <= 'f':
		return int(c-'a') + 10
	case c >= 'A' && c <= 'F':
		return int(c-'A') + 10
	default:
		return 99
	}
}
