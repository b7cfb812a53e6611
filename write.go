package numeral

import (
	"math"
	"strconv"
	"strings"

	"github.com/reoring/numeral/i18n"
	"github.com/reoring/numeral/internal/dectext"
)

// Writer side of the transformers: split into sign and digit magnitudes,
// round half away from zero to the configured precision, pad, group, sign.
// Values the options cannot render fail with CodeNotRepresentable.

func notRepresentable(detail string) error {
	return Issues{{
		Code:    CodeNotRepresentable,
		Message: i18n.T(CodeNotRepresentable, nil) + ": " + detail,
	}}
}

func (t *floatTransformer) Write(v float64) (string, error) {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return "", notRepresentable("non-finite value")
	}
	if t.scientific {
		return t.writeScientific(v)
	}
	neg := math.Signbit(v) && v != 0
	s := strconv.FormatFloat(math.Abs(v), 'f', -1, 64)
	intD, fracD, _ := strings.Cut(s, ".")
	if t.o.MaxFractionalDigits != Unbounded {
		intD, fracD = dectext.RoundAt(intD, fracD, t.o.MaxFractionalDigits)
	}
	fracD = dectext.Fit(fracD, t.o.MinFractionalDigits)
	return writeParts(t.o, neg, intD, fracD)
}

func (t *floatTransformer) writeScientific(v float64) (string, error) {
	if v == 0 {
		return "", notRepresentable("zero has no mantissa in [1,10)")
	}
	neg := math.Signbit(v)
	s := strconv.FormatFloat(math.Abs(v), 'e', -1, 64)
	mant, expStr, _ := strings.Cut(s, "e")
	intD, fracD, _ := strings.Cut(mant, ".")
	exp, err := strconv.Atoi(expStr)
	if err != nil {
		return "", notRepresentable("unparseable exponent: " + expStr)
	}
	if t.o.MaxFractionalDigits != Unbounded {
		intD, fracD = dectext.RoundAt(intD, fracD, t.o.MaxFractionalDigits)
		if len(intD) > 1 {
			// Rounding carried the mantissa to 10; renormalize. The kept
			// digits are necessarily all zero after such a carry.
			intD = "1"
			exp++
		}
	}
	fracD = dectext.Fit(fracD, t.o.MinFractionalDigits)
	mantOut, err := writeParts(t.o, neg, intD, fracD)
	if err != nil {
		return "", err
	}
	return mantOut + string(t.o.ENotationPolicy.letter()) + strconv.Itoa(exp), nil
}

func (t *intTransformer) Write(v int64) (string, error) {
	digits := strconv.FormatInt(v, 10)
	neg := v < 0
	if neg {
		digits = digits[1:]
	}
	return writeParts(t.o, neg, digits, "")
}

func (t *uintTransformer) Write(v uint64) (string, error) {
	return writeParts(t.o, false, strconv.FormatUint(v, 10), "")
}

// writeParts assembles sign + integer + fraction under the options. intD is
// the bare magnitude digit run, fracD the already rounded and padded
// fractional run (empty for none).
func writeParts(o NumberFormatOptions, neg bool, intD, fracD string) (string, error) {
	if !o.grouped() && intD != "0" {
		if len(intD) < o.MinIntegerDigits {
			return "", notRepresentable("integer part shorter than minIntegerPartDigits")
		}
		if o.MaxIntegerDigits != Unbounded && len(intD) > o.MaxIntegerDigits {
			return "", notRepresentable("integer part exceeds maxIntegerPartDigits")
		}
	}
	sign, err := renderSign(o.SignPolicy, neg)
	if err != nil {
		return "", err
	}
	if o.grouped() {
		intD = dectext.Group(intD, o.ThousandSeparator)
	}
	var b strings.Builder
	b.WriteString(sign)
	b.WriteString(intD)
	if fracD != "" {
		b.WriteRune(o.FractionalSeparator)
		b.WriteString(fracD)
	}
	return b.String(), nil
}

func renderSign(p SignPolicy, neg bool) (string, error) {
	if neg {
		if p == SignForbidden {
			return "", notRepresentable("negative value under forbidden sign")
		}
		return "-", nil
	}
	if p == SignMandatory {
		return "+", nil
	}
	return "", nil
}
