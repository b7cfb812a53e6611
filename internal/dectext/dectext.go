// Package dectext implements exact arithmetic over decimal digit strings.
// Working in the string domain keeps rounding free of binary floating-point
// re-rounding artifacts: a magnitude is an integer digit run plus a
// fractional digit run, sign handled by the caller.
package dectext

import "strings"

// RoundAt rounds the magnitude intDigits.fracDigits to at most p fractional
// digits, half away from zero. intDigits must be a canonical run (no leading
// zeros except a lone "0"); the result holds the same invariant.
func RoundAt(intDigits, fracDigits string, p int) (string, string) {
	if p < 0 || len(fracDigits) <= p {
		return intDigits, fracDigits
	}
	keep := fracDigits[:p]
	if fracDigits[p] < '5' {
		return intDigits, keep
	}
	all := Increment(intDigits + keep)
	cut := len(all) - p
	return canonical(all[:cut]), all[cut:]
}

// Increment adds one to a decimal digit run, growing it on carry ("999" -> "1000").
func Increment(digits string) string {
	b := []byte(digits)
	for i := len(b) - 1; i >= 0; i-- {
		if b[i] < '9' {
			b[i]++
			return string(b)
		}
		b[i] = '0'
	}
	return "1" + string(b)
}

// Fit trims trailing zeros from a fractional run, but never below min digits,
// then right-pads with zeros up to min.
func Fit(fracDigits string, min int) string {
	n := len(fracDigits)
	for n > min && fracDigits[n-1] == '0' {
		n--
	}
	fracDigits = fracDigits[:n]
	if len(fracDigits) < min {
		fracDigits += strings.Repeat("0", min-len(fracDigits))
	}
	return fracDigits
}

// Group inserts sep between digit groups of three, counted from the right.
func Group(intDigits string, sep rune) string {
	n := len(intDigits)
	if n <= 3 {
		return intDigits
	}
	var b strings.Builder
	head := n % 3
	if head == 0 {
		head = 3
	}
	b.WriteString(intDigits[:head])
	for i := head; i < n; i += 3 {
		b.WriteRune(sep)
		b.WriteString(intDigits[i : i+3])
	}
	return b.String()
}

// Ungroup strips every occurrence of sep from a grouped digit run.
func Ungroup(s string, sep rune) string {
	if sep == 0 {
		return s
	}
	return strings.ReplaceAll(s, string(sep), "")
}

// canonical strips leading zeros down to a lone "0".
func canonical(digits string) string {
	i := 0
	for i < len(digits)-1 && digits[i] == '0' {
		i++
	}
	return digits[i:]
}
