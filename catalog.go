package numeral

import "sort"

// The catalog is a process-wide immutable registry of named presets,
// initialized once at package load and read-only afterwards. Preset
// correctness rests entirely on the option/grammar/reader/writer layers;
// this file only composes them.

func mustFloat(opts ...Option) Transformer[float64] {
	t, err := Float(opts...)
	if err != nil {
		panic(err)
	}
	return t
}

func mustScientific(opts ...Option) Transformer[float64] {
	t, err := Scientific(opts...)
	if err != nil {
		panic(err)
	}
	return t
}

func mustInt(opts ...Option) Transformer[int64] {
	t, err := Int(opts...)
	if err != nil {
		panic(err)
	}
	return t
}

func mustUint(opts ...Option) Transformer[uint64] {
	t, err := Uint(opts...)
	if err != nil {
		panic(err)
	}
	return t
}

func mustBase(radix int) Transformer[uint64] {
	t, err := Base(radix)
	if err != nil {
		panic(err)
	}
	return t
}

// Locale conventions used by the presets: UK groups with ',' over '.', French
// groups with a space over ',', German groups with '.' over ','.
var (
	uk     = []Option{WithThousandSeparator(',')}
	french = []Option{WithThousandSeparator(' '), WithFractionalSeparator(',')}
	german = []Option{WithThousandSeparator('.'), WithFractionalSeparator(',')}
)

func with(locale []Option, opts ...Option) []Option {
	return append(append([]Option{}, locale...), opts...)
}

var floatCatalog = map[string]Transformer[float64]{
	"floatingPoint":            mustFloat(),
	"floatingPoint2":           mustFloat(WithExactFractionalDigits(2)),
	"ukFloatingPoint":          mustFloat(uk...),
	"ukFloatingPoint2":         mustFloat(with(uk, WithExactFractionalDigits(2))...),
	"frenchFloatingPoint":      mustFloat(french...),
	"germanFloatingPoint":      mustFloat(german...),
	"signedFloatingPoint":      mustFloat(WithSignPolicy(SignMandatory)),
	"plussedFloatingPoint":     mustFloat(WithSignPolicy(SignPlusMinusOptional)),
	"scientificNotation":       mustScientific(WithFractionalDigits(0, 4)),
	"upperScientificNotation":  mustScientific(WithENotation(ENotationUppercase), WithFractionalDigits(0, 4)),
	"frenchScientificNotation": mustScientific(WithFractionalSeparator(','), WithFractionalDigits(0, 4)),
	"germanScientificNotation": mustScientific(WithFractionalSeparator(','), WithFractionalDigits(0, 4)),
}

var intCatalog = map[string]Transformer[int64]{
	"int":          mustInt(),
	"ukInt":        mustInt(uk...),
	"frenchInt":    mustInt(WithThousandSeparator(' ')),
	"germanInt":    mustInt(WithThousandSeparator('.')),
	"signedInt":    mustInt(WithSignPolicy(SignMandatory)),
	"signedUkInt":  mustInt(with(uk, WithSignPolicy(SignMandatory))...),
	"plussedInt":   mustInt(WithSignPolicy(SignPlusMinusOptional)),
	"plussedUkInt": mustInt(with(uk, WithSignPolicy(SignPlusMinusOptional))...),
}

var uintCatalog = map[string]Transformer[uint64]{
	"unsignedInt":       mustUint(),
	"unsignedUkInt":     mustUint(uk...),
	"unsignedFrenchInt": mustUint(WithThousandSeparator(' ')),
	"binary":            mustBase(2),
	"octal":             mustBase(8),
	"hexadecimal":       mustBase(16),
}

var stringCatalog = map[string]Transformer[string]{
	"string": String(),
}

// LookupFloat returns the named real-number preset.
func LookupFloat(name string) (Transformer[float64], bool) {
	t, ok := floatCatalog[name]
	return t, ok
}

// LookupInt returns the named signed integer preset.
func LookupInt(name string) (Transformer[int64], bool) {
	t, ok := intCatalog[name]
	return t, ok
}

// LookupUint returns the named unsigned integer preset (locale formats and
// the radix codecs).
func LookupUint(name string) (Transformer[uint64], bool) {
	t, ok := uintCatalog[name]
	return t, ok
}

// LookupString returns the named plain-text preset.
func LookupString(name string) (Transformer[string], bool) {
	t, ok := stringCatalog[name]
	return t, ok
}

// Names lists every preset in the catalog, sorted.
func Names() []string {
	names := make([]string, 0, len(floatCatalog)+len(intCatalog)+len(uintCatalog)+len(stringCatalog))
	for n := range floatCatalog {
		names = append(names, n)
	}
	for n := range intCatalog {
		names = append(names, n)
	}
	for n := range uintCatalog {
		names = append(names, n)
	}
	for n := range stringCatalog {
		names = append(names, n)
	}
	sort.Strings(names)
	return names
}
