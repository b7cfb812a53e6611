package numeral

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/reoring/numeral/i18n"
	"github.com/reoring/numeral/internal/dectext"
)

// grammar is the compiled prefix-matching form of a NumberFormatOptions.
// It is immutable after construction and safe to share across goroutines.
type grammar struct {
	re          *regexp.Regexp
	thousandSep rune
}

// groups holds the semantic capture of one prefix match. Integer digits come
// back with grouping separators already stripped; exponent keeps its optional
// sign ("+7", "-7", "7") and is empty when absent.
type groups struct {
	sign       string
	intDigits  string
	fracDigits string
	exponent   string
}

// buildGrammar translates options into an anchored regular expression
// recognizing the longest valid numeral at the start of a string. Capture
// order is fixed: sign, integer part, fractional digits, exponent.
func buildGrammar(o NumberFormatOptions) (*grammar, error) {
	var b strings.Builder
	b.WriteString(`^`)
	b.WriteString(signExpr(o.SignPolicy))
	b.WriteString(integerExpr(o))
	b.WriteString(fractionExpr(o))
	b.WriteString(exponentExpr(o.ENotationPolicy))

	re, err := regexp.Compile(b.String())
	if err != nil {
		return nil, Issues{{
			Code:    CodeInvalidConfig,
			Message: i18n.T(CodeInvalidConfig, nil) + ": grammar does not compile",
			Cause:   err,
		}}
	}
	return &grammar{re: re, thousandSep: o.ThousandSeparator}, nil
}

func signExpr(p SignPolicy) string {
	switch p {
	case SignForbidden:
		return `()`
	case SignMandatory:
		return `([+-])`
	case SignPlusMinusOptional:
		return `([+-]?)`
	default:
		return `(-?)`
	}
}

// integerExpr recognizes "0" alone, or a multi-digit run with no leading
// zero. Grouped runs use blocks of exactly three; bare runs honor the
// configured digit bounds.
func integerExpr(o NumberFormatOptions) string {
	if o.grouped() {
		sep := regexp.QuoteMeta(string(o.ThousandSeparator))
		return `(0|[1-9]\d{0,2}(?:` + sep + `\d{3})*)`
	}
	return `(0|[1-9]` + runExpr(o.MinIntegerDigits, o.MaxIntegerDigits) + `)`
}

func fractionExpr(o NumberFormatOptions) string {
	if o.MaxFractionalDigits == 0 {
		return `()`
	}
	sep := regexp.QuoteMeta(string(o.FractionalSeparator))
	if o.MinFractionalDigits == 0 {
		// Separator without at least one digit is not a fraction.
		return `(?:` + sep + `(\d` + runExpr(1, o.MaxFractionalDigits) + `))?`
	}
	return sep + `(\d` + runExpr(o.MinFractionalDigits, o.MaxFractionalDigits) + `)`
}

func exponentExpr(p ENotationPolicy) string {
	letter := p.letter()
	if letter == 0 {
		return `()`
	}
	return `(?:` + string(letter) + `([+-]?\d+))?`
}

// runExpr renders the repetition for the digits following the first one of a
// run. min and max are total run lengths including that first digit, with
// min >= 1 and max either Unbounded or >= min.
func runExpr(min, max int) string {
	switch {
	case min <= 1 && max == Unbounded:
		return `\d*`
	case max == Unbounded:
		return fmt.Sprintf(`\d{%d,}`, min-1)
	default:
		return fmt.Sprintf(`\d{%d,%d}`, min-1, max-1)
	}
}

// matchPrefix applies the grammar at index 0. On success it returns the
// semantic capture groups and the unconsumed remainder of the input.
func (g *grammar) matchPrefix(input string) (groups, string, bool) {
	m := g.re.FindStringSubmatch(input)
	if m == nil {
		return groups{}, "", false
	}
	return groups{
		sign:       m[1],
		intDigits:  dectext.Ungroup(m[2], g.thousandSep),
		fracDigits: m[3],
		exponent:   m[4],
	}, input[len(m[0]):], true
}
