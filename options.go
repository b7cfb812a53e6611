package numeral

import (
	"fmt"
	"unicode"

	"github.com/reoring/numeral/i18n"
)

// Unbounded marks a digit-count maximum with no upper limit.
const Unbounded = -1

// NumberFormatOptions is the immutable configuration record for a numeral
// codec. Build it through NewOptions; a zero value is not a valid
// configuration.
type NumberFormatOptions struct {
	SignPolicy      SignPolicy
	ENotationPolicy ENotationPolicy
	// ThousandSeparator groups integer digits in runs of three from the
	// right. Zero means no grouping.
	ThousandSeparator   rune
	FractionalSeparator rune
	MinFractionalDigits int
	// MaxFractionalDigits bounds the fractional digit run; zero forbids a
	// fractional part entirely, Unbounded lifts the limit.
	MaxFractionalDigits int
	MinIntegerDigits    int
	// MaxIntegerDigits bounds the bare integer digit run. Ignored while
	// grouping is active (grouped runs are unbounded by construction).
	MaxIntegerDigits int
}

// Option mutates a NumberFormatOptions under construction.
type Option func(*NumberFormatOptions)

// WithSignPolicy sets the sign rendering/matching rule.
func WithSignPolicy(p SignPolicy) Option {
	return func(o *NumberFormatOptions) { o.SignPolicy = p }
}

// WithENotation permits a scientific exponent suffix with the given letter case.
func WithENotation(p ENotationPolicy) Option {
	return func(o *NumberFormatOptions) { o.ENotationPolicy = p }
}

// WithThousandSeparator groups integer digits with sep every three digits.
func WithThousandSeparator(sep rune) Option {
	return func(o *NumberFormatOptions) { o.ThousandSeparator = sep }
}

// WithFractionalSeparator replaces the default '.' separator.
func WithFractionalSeparator(sep rune) Option {
	return func(o *NumberFormatOptions) { o.FractionalSeparator = sep }
}

// WithFractionalDigits bounds the fractional digit run to [min, max].
// Pass Unbounded as max to lift the upper limit.
func WithFractionalDigits(min, max int) Option {
	return func(o *NumberFormatOptions) {
		o.MinFractionalDigits = min
		o.MaxFractionalDigits = max
	}
}

// WithExactFractionalDigits requires exactly n fractional digits.
func WithExactFractionalDigits(n int) Option { return WithFractionalDigits(n, n) }

// WithIntegerDigits bounds the bare integer digit run to [min, max].
// Pass Unbounded as max to lift the upper limit.
func WithIntegerDigits(min, max int) Option {
	return func(o *NumberFormatOptions) {
		o.MinIntegerDigits = min
		o.MaxIntegerDigits = max
	}
}

// NewOptions fills canonical defaults (optional minus, no exponent, no
// grouping, '.' separator, unbounded fraction, single unbounded integer run),
// layers the explicit options on top, and validates the combination. It is
// total: an invalid combination returns a CodeInvalidConfig error, never a
// degenerate configuration.
func NewOptions(opts ...Option) (NumberFormatOptions, error) {
	o := NumberFormatOptions{
		SignPolicy:          SignMinusOptional,
		ENotationPolicy:     ENotationForbidden,
		ThousandSeparator:   0,
		FractionalSeparator: '.',
		MinFractionalDigits: 0,
		MaxFractionalDigits: Unbounded,
		MinIntegerDigits:    1,
		MaxIntegerDigits:    Unbounded,
	}
	for _, opt := range opts {
		opt(&o)
	}
	if err := o.validate(); err != nil {
		return NumberFormatOptions{}, err
	}
	return o, nil
}

// grouped reports whether integer digits are grouped.
func (o NumberFormatOptions) grouped() bool { return o.ThousandSeparator != 0 }

func (o NumberFormatOptions) validate() error {
	var iss Issues
	bad := func(field string, got any, detail string) {
		iss = AppendIssues(iss, Issue{
			Code:    CodeInvalidConfig,
			Message: i18n.T(CodeInvalidConfig, map[string]string{"field": field, "got": fmt.Sprint(got)}) + ": " + detail,
			Params:  map[string]any{"field": field, "got": got},
		})
	}

	if o.MinFractionalDigits < 0 {
		bad("minFractionalDigits", o.MinFractionalDigits, "must be non-negative")
	}
	if o.MaxFractionalDigits != Unbounded && o.MaxFractionalDigits < 0 {
		bad("maxFractionalDigits", o.MaxFractionalDigits, "must be non-negative or Unbounded")
	}
	if o.MaxFractionalDigits != Unbounded && o.MaxFractionalDigits < o.MinFractionalDigits {
		bad("maxFractionalDigits", o.MaxFractionalDigits, "must not be below minFractionalDigits")
	}
	if o.MinIntegerDigits < 1 {
		bad("minIntegerPartDigits", o.MinIntegerDigits, "must be positive")
	}
	if o.MaxIntegerDigits != Unbounded && o.MaxIntegerDigits < o.MinIntegerDigits {
		bad("maxIntegerPartDigits", o.MaxIntegerDigits, "must not be below minIntegerPartDigits")
	}

	letter := o.ENotationPolicy.letter()
	if o.MaxFractionalDigits != 0 {
		if !validSeparator(o.FractionalSeparator, letter) {
			bad("fractionalSeparator", string(o.FractionalSeparator), "must be a printable non-digit, non-sign rune distinct from the exponent letter")
		}
	}
	if o.grouped() {
		if !validSeparator(o.ThousandSeparator, letter) {
			bad("thousandSeparator", string(o.ThousandSeparator), "must be a printable non-digit, non-sign rune distinct from the exponent letter")
		}
		if o.ThousandSeparator == o.FractionalSeparator && o.MaxFractionalDigits != 0 {
			bad("thousandSeparator", string(o.ThousandSeparator), "must differ from fractionalSeparator")
		}
	}

	if len(iss) > 0 {
		return iss
	}
	return nil
}

// validSeparator rejects runes that would make the grammar ambiguous: digits,
// sign tokens, and the active exponent letter.
func validSeparator(r rune, exponentLetter rune) bool {
	if r == 0 || unicode.IsDigit(r) || r == '+' || r == '-' {
		return false
	}
	if exponentLetter != 0 && r == exponentLetter {
		return false
	}
	return unicode.IsPrint(r)
}
