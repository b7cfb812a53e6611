package numeral

import (
	gojson "github.com/goccy/go-json"
	"gopkg.in/yaml.v3"

	"github.com/reoring/numeral/i18n"
)

// optionsWire is the partial configuration form accepted from JSON and YAML.
// Pointer fields distinguish "unset, default applies" from an explicit zero.
// Separators travel as one-rune strings; maxima use -1 for Unbounded.
type optionsWire struct {
	SignPolicy           *string `json:"signPolicy,omitempty" yaml:"signPolicy,omitempty"`
	ENotationPolicy      *string `json:"eNotationPolicy,omitempty" yaml:"eNotationPolicy,omitempty"`
	ThousandSeparator    *string `json:"thousandSeparator,omitempty" yaml:"thousandSeparator,omitempty"`
	FractionalSeparator  *string `json:"fractionalSeparator,omitempty" yaml:"fractionalSeparator,omitempty"`
	MinFractionalDigits  *int    `json:"minFractionalDigits,omitempty" yaml:"minFractionalDigits,omitempty"`
	MaxFractionalDigits  *int    `json:"maxFractionalDigits,omitempty" yaml:"maxFractionalDigits,omitempty"`
	MinIntegerPartDigits *int    `json:"minIntegerPartDigits,omitempty" yaml:"minIntegerPartDigits,omitempty"`
	MaxIntegerPartDigits *int    `json:"maxIntegerPartDigits,omitempty" yaml:"maxIntegerPartDigits,omitempty"`
}

func configIssue(field, detail string) error {
	return Issues{{
		Code:    CodeInvalidConfig,
		Message: i18n.T(CodeInvalidConfig, map[string]string{"field": field}) + ": " + detail,
		Params:  map[string]any{"field": field},
	}}
}

func wireRune(field, s string) (rune, error) {
	r := []rune(s)
	if len(r) != 1 {
		return 0, configIssue(field, "separator must be a single character")
	}
	return r[0], nil
}

// options lowers the wire form into construction options for NewOptions.
func (w optionsWire) options() ([]Option, error) {
	var opts []Option
	if w.SignPolicy != nil {
		p, err := ParseSignPolicy(*w.SignPolicy)
		if err != nil {
			return nil, err
		}
		opts = append(opts, WithSignPolicy(p))
	}
	if w.ENotationPolicy != nil {
		p, err := ParseENotationPolicy(*w.ENotationPolicy)
		if err != nil {
			return nil, err
		}
		opts = append(opts, WithENotation(p))
	}
	if w.ThousandSeparator != nil {
		r, err := wireRune("thousandSeparator", *w.ThousandSeparator)
		if err != nil {
			return nil, err
		}
		opts = append(opts, WithThousandSeparator(r))
	}
	if w.FractionalSeparator != nil {
		r, err := wireRune("fractionalSeparator", *w.FractionalSeparator)
		if err != nil {
			return nil, err
		}
		opts = append(opts, WithFractionalSeparator(r))
	}
	if w.MinFractionalDigits != nil {
		n := *w.MinFractionalDigits
		opts = append(opts, func(o *NumberFormatOptions) { o.MinFractionalDigits = n })
	}
	if w.MaxFractionalDigits != nil {
		n := *w.MaxFractionalDigits
		opts = append(opts, func(o *NumberFormatOptions) { o.MaxFractionalDigits = n })
	}
	if w.MinIntegerPartDigits != nil {
		n := *w.MinIntegerPartDigits
		opts = append(opts, func(o *NumberFormatOptions) { o.MinIntegerDigits = n })
	}
	if w.MaxIntegerPartDigits != nil {
		n := *w.MaxIntegerPartDigits
		opts = append(opts, func(o *NumberFormatOptions) { o.MaxIntegerDigits = n })
	}
	return opts, nil
}

// ParseOptionsJSON decodes a partial configuration from JSON and validates it
// through NewOptions.
func ParseOptionsJSON(data []byte) (NumberFormatOptions, error) {
	var w optionsWire
	if err := gojson.Unmarshal(data, &w); err != nil {
		return NumberFormatOptions{}, Issues{{Code: CodeInvalidConfig, Message: i18n.T(CodeInvalidConfig, nil) + ": bad JSON", Cause: err}}
	}
	return wireOptions(w)
}

// ParseOptionsYAML decodes a partial configuration from YAML and validates it
// through NewOptions.
func ParseOptionsYAML(data []byte) (NumberFormatOptions, error) {
	var w optionsWire
	if err := yaml.Unmarshal(data, &w); err != nil {
		return NumberFormatOptions{}, Issues{{Code: CodeInvalidConfig, Message: i18n.T(CodeInvalidConfig, nil) + ": bad YAML", Cause: err}}
	}
	return wireOptions(w)
}

func wireOptions(w optionsWire) (NumberFormatOptions, error) {
	opts, err := w.options()
	if err != nil {
		return NumberFormatOptions{}, err
	}
	return NewOptions(opts...)
}

// catalogEntryWire declares one named transformer in a catalog document.
type catalogEntryWire struct {
	// Kind selects the value domain: float, scientific, int, uint, base, string.
	Kind    string      `json:"kind" yaml:"kind"`
	Radix   int         `json:"radix,omitempty" yaml:"radix,omitempty"`
	Options optionsWire `json:"options,omitempty" yaml:"options,omitempty"`
}

// Catalog is a set of constructed transformers decoded from a catalog
// document, split by value domain since Go maps cannot hold heterogeneous
// generic instantiations.
type Catalog struct {
	Floats  map[string]Transformer[float64]
	Ints    map[string]Transformer[int64]
	Uints   map[string]Transformer[uint64]
	Strings map[string]Transformer[string]
}

// ParseCatalogJSON decodes {name: {kind, radix?, options?}} from JSON and
// constructs every declared transformer.
func ParseCatalogJSON(data []byte) (*Catalog, error) {
	var entries map[string]catalogEntryWire
	if err := gojson.Unmarshal(data, &entries); err != nil {
		return nil, Issues{{Code: CodeInvalidConfig, Message: i18n.T(CodeInvalidConfig, nil) + ": bad JSON", Cause: err}}
	}
	return buildCatalog(entries)
}

// ParseCatalogYAML decodes {name: {kind, radix?, options?}} from YAML and
// constructs every declared transformer.
func ParseCatalogYAML(data []byte) (*Catalog, error) {
	var entries map[string]catalogEntryWire
	if err := yaml.Unmarshal(data, &entries); err != nil {
		return nil, Issues{{Code: CodeInvalidConfig, Message: i18n.T(CodeInvalidConfig, nil) + ": bad YAML", Cause: err}}
	}
	return buildCatalog(entries)
}

func buildCatalog(entries map[string]catalogEntryWire) (*Catalog, error) {
	c := &Catalog{
		Floats:  map[string]Transformer[float64]{},
		Ints:    map[string]Transformer[int64]{},
		Uints:   map[string]Transformer[uint64]{},
		Strings: map[string]Transformer[string]{},
	}
	for name, e := range entries {
		opts, err := e.Options.options()
		if err != nil {
			return nil, err
		}
		switch e.Kind {
		case "float":
			t, err := Float(opts...)
			if err != nil {
				return nil, err
			}
			c.Floats[name] = t
		case "scientific":
			t, err := Scientific(opts...)
			if err != nil {
				return nil, err
			}
			c.Floats[name] = t
		case "int":
			t, err := Int(opts...)
			if err != nil {
				return nil, err
			}
			c.Ints[name] = t
		case "uint":
			t, err := Uint(opts...)
			if err != nil {
				return nil, err
			}
			c.Uints[name] = t
		case "base":
			t, err := Base(e.Radix)
			if err != nil {
				return nil, err
			}
			c.Uints[name] = t
		case "string":
			c.Strings[name] = String()
		default:
			return nil, configIssue("kind", "unknown transformer kind "+e.Kind+" for "+name)
		}
	}
	return c, nil
}
