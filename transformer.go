package numeral

import "github.com/reoring/numeral/i18n"

// Transformer pairs a prefix reader and a writer built from one
// configuration. Everything Write produces is re-parsed identically by Read:
// for every accepted value x, Read(Write(x)) yields (x, "").
//
// Transformers are immutable and safe for concurrent use.
type Transformer[A any] interface {
	// Read parses the longest valid numeral prefix of input and returns the
	// value together with the unconsumed remainder. A CodeNoMatch error means
	// no valid prefix exists; the caller decides the fallback.
	Read(input string) (value A, rest string, err error)
	// Write renders value under the transformer's options. A
	// CodeNotRepresentable error means the value cannot be rendered; it is
	// never silently coerced.
	Write(value A) (string, error)
}

// Float builds a real-number transformer from the given options.
func Float(opts ...Option) (Transformer[float64], error) {
	o, err := NewOptions(opts...)
	if err != nil {
		return nil, err
	}
	g, err := buildGrammar(o)
	if err != nil {
		return nil, err
	}
	return &floatTransformer{o: o, g: g}, nil
}

// Scientific builds a real-number transformer rendering mantissa×10^exponent
// with the mantissa normalized into [1,10). The integer part is pinned to a
// single digit at composition time; the exponent letter defaults to
// lowercase and may be overridden via WithENotation. Zero has no mantissa in
// [1,10) and is therefore not representable.
func Scientific(opts ...Option) (Transformer[float64], error) {
	pinned := make([]Option, 0, len(opts)+2)
	pinned = append(pinned, WithENotation(ENotationLowercase))
	pinned = append(pinned, opts...)
	pinned = append(pinned, WithIntegerDigits(1, 1))
	o, err := NewOptions(pinned...)
	if err != nil {
		return nil, err
	}
	if o.ENotationPolicy == ENotationForbidden {
		return nil, Issues{{
			Code:    CodeInvalidConfig,
			Message: i18n.T(CodeInvalidConfig, nil) + ": scientific notation requires an exponent letter",
			Params:  map[string]any{"field": "eNotationPolicy"},
		}}
	}
	g, err := buildGrammar(o)
	if err != nil {
		return nil, err
	}
	return &floatTransformer{o: o, g: g, scientific: true}, nil
}

// Int builds a signed integer transformer. Fractional and exponent syntax is
// pinned off; all sign policies apply.
func Int(opts ...Option) (Transformer[int64], error) {
	o, g, err := integerConfig(opts)
	if err != nil {
		return nil, err
	}
	return &intTransformer{o: o, g: g}, nil
}

// Uint builds an unsigned integer transformer. Fractional and exponent
// syntax is pinned off and the sign policy is pinned to SignForbidden.
func Uint(opts ...Option) (Transformer[uint64], error) {
	opts = append(append([]Option{}, opts...), WithSignPolicy(SignForbidden))
	o, g, err := integerConfig(opts)
	if err != nil {
		return nil, err
	}
	return &uintTransformer{o: o, g: g}, nil
}

func integerConfig(opts []Option) (NumberFormatOptions, *grammar, error) {
	pinned := make([]Option, 0, len(opts)+2)
	pinned = append(pinned, opts...)
	pinned = append(pinned, WithFractionalDigits(0, 0), WithENotation(ENotationForbidden))
	o, err := NewOptions(pinned...)
	if err != nil {
		return NumberFormatOptions{}, nil, err
	}
	g, err := buildGrammar(o)
	if err != nil {
		return NumberFormatOptions{}, nil, err
	}
	return o, g, nil
}

// String returns the identity transformer: Read consumes the whole input and
// Write renders the value verbatim. It backs the catalog's plain-string
// entry, letting template callers treat text and numerals uniformly.
func String() Transformer[string] { return stringTransformer{} }

// Configured is implemented by transformers built from NumberFormatOptions
// (Float, Scientific, Int, Uint). Obtain the originating configuration via a
// type assertion; the radix and string transformers have no configuration
// surface and do not implement it.
type Configured interface {
	Options() NumberFormatOptions
}

type stringTransformer struct{}

func (stringTransformer) Read(input string) (string, string, error) { return input, "", nil }
func (stringTransformer) Write(value string) (string, error)       { return value, nil }

type floatTransformer struct {
	o          NumberFormatOptions
	g          *grammar
	scientific bool
}

// Options returns the originating configuration.
func (t *floatTransformer) Options() NumberFormatOptions { return t.o }

type intTransformer struct {
	o NumberFormatOptions
	g *grammar
}

func (t *intTransformer) Options() NumberFormatOptions { return t.o }

type uintTransformer struct {
	o NumberFormatOptions
	g *grammar
}

func (t *uintTransformer) Options() NumberFormatOptions { return t.o }
