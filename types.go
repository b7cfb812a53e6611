package numeral

import (
	"github.com/reoring/numeral/i18n"
)

// SignPolicy controls whether and how a sign token may prefix a numeral.
type SignPolicy int

const (
	SignMinusOptional     SignPolicy = iota // Optional leading '-' (default).
	SignForbidden                           // No sign token at all.
	SignMandatory                           // Exactly one of '+' or '-', always present.
	SignPlusMinusOptional                   // Optional '+' or '-'.
)

// String returns the wire name of the policy ("minusOptional", ...).
func (p SignPolicy) String() string {
	switch p {
	case SignForbidden:
		return "forbidden"
	case SignMandatory:
		return "mandatory"
	case SignPlusMinusOptional:
		return "plusMinusOptional"
	default:
		return "minusOptional"
	}
}

// ParseSignPolicy resolves a wire name back to a SignPolicy.
func ParseSignPolicy(name string) (SignPolicy, error) {
	switch name {
	case "forbidden":
		return SignForbidden, nil
	case "minusOptional":
		return SignMinusOptional, nil
	case "mandatory":
		return SignMandatory, nil
	case "plusMinusOptional":
		return SignPlusMinusOptional, nil
	default:
		return SignMinusOptional, Issues{{
			Code:    CodeInvalidConfig,
			Message: i18n.T(CodeInvalidConfig, map[string]string{"field": "signPolicy", "got": name}),
			Params:  map[string]any{"field": "signPolicy", "got": name},
		}}
	}
}

// ENotationPolicy controls whether a scientific exponent suffix is permitted
// and which letter introduces it.
type ENotationPolicy int

const (
	ENotationForbidden ENotationPolicy = iota // No exponent suffix (default).
	ENotationLowercase                        // Exponent introduced by 'e'.
	ENotationUppercase                        // Exponent introduced by 'E'.
)

// String returns the wire name of the policy ("forbidden", "lowercase", "uppercase").
func (p ENotationPolicy) String() string {
	switch p {
	case ENotationLowercase:
		return "lowercase"
	case ENotationUppercase:
		return "uppercase"
	default:
		return "forbidden"
	}
}

// ParseENotationPolicy resolves a wire name back to an ENotationPolicy.
func ParseENotationPolicy(name string) (ENotationPolicy, error) {
	switch name {
	case "forbidden":
		return ENotationForbidden, nil
	case "lowercase":
		return ENotationLowercase, nil
	case "uppercase":
		return ENotationUppercase, nil
	default:
		return ENotationForbidden, Issues{{
			Code:    CodeInvalidConfig,
			Message: i18n.T(CodeInvalidConfig, map[string]string{"field": "eNotationPolicy", "got": name}),
			Params:  map[string]any{"field": "eNotationPolicy", "got": name},
		}}
	}
}

// letter returns the exponent rune for the policy, or 0 when forbidden.
func (p ENotationPolicy) letter() rune {
	switch p {
	case ENotationLowercase:
		return 'e'
	case ENotationUppercase:
		return 'E'
	default:
		return 0
	}
}
