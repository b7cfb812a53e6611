package numeral

import "testing"

func mustOptions(t *testing.T, opts ...Option) NumberFormatOptions {
	t.Helper()
	o, err := NewOptions(opts...)
	if err != nil {
		t.Fatalf("options: %v", err)
	}
	return o
}

func mustGrammar(t *testing.T, opts ...Option) *grammar {
	t.Helper()
	g, err := buildGrammar(mustOptions(t, opts...))
	if err != nil {
		t.Fatalf("grammar: %v", err)
	}
	return g
}

func TestGrammar_PlainInteger(t *testing.T) {
	g := mustGrammar(t, WithFractionalDigits(0, 0))

	m, rest, ok := g.matchPrefix("1048kg")
	if !ok || m.intDigits != "1048" || rest != "kg" {
		t.Fatalf("unexpected match: %+v rest=%q ok=%v", m, rest, ok)
	}

	// Lone zero matches; a longer run may not start with zero.
	m, rest, ok = g.matchPrefix("0123")
	if !ok || m.intDigits != "0" || rest != "123" {
		t.Fatalf("leading zero mishandled: %+v rest=%q ok=%v", m, rest, ok)
	}

	if _, _, ok := g.matchPrefix("abc"); ok {
		t.Fatalf("expected no match on non-numeral input")
	}
	if _, _, ok := g.matchPrefix(""); ok {
		t.Fatalf("expected no match on empty input")
	}
}

func TestGrammar_GroupedInteger(t *testing.T) {
	g := mustGrammar(t, WithThousandSeparator(','), WithFractionalDigits(0, 0))

	m, rest, ok := g.matchPrefix("1,234,567 left")
	if !ok || m.intDigits != "1234567" || rest != " left" {
		t.Fatalf("unexpected match: %+v rest=%q ok=%v", m, rest, ok)
	}

	// A broken group stops the match at the last complete group.
	m, rest, ok = g.matchPrefix("1,23")
	if !ok || m.intDigits != "1" || rest != ",23" {
		t.Fatalf("unexpected match: %+v rest=%q ok=%v", m, rest, ok)
	}

	// Four digits after a separator leave the trailing digit unconsumed.
	m, rest, ok = g.matchPrefix("1,0484")
	if !ok || m.intDigits != "1048" || rest != "4" {
		t.Fatalf("unexpected match: %+v rest=%q ok=%v", m, rest, ok)
	}
}

func TestGrammar_FractionOptionalVsMandatory(t *testing.T) {
	optional := mustGrammar(t)
	m, rest, ok := optional.matchPrefix("10.3foo")
	if !ok || m.intDigits != "10" || m.fracDigits != "3" || rest != "foo" {
		t.Fatalf("unexpected match: %+v rest=%q ok=%v", m, rest, ok)
	}

	// A separator with no digit behind it is not a fraction.
	m, rest, ok = optional.matchPrefix("10.foo")
	if !ok || m.fracDigits != "" || rest != ".foo" {
		t.Fatalf("unexpected match: %+v rest=%q ok=%v", m, rest, ok)
	}

	exact := mustGrammar(t, WithExactFractionalDigits(2))
	if _, _, ok := exact.matchPrefix("10.3foo"); ok {
		t.Fatalf("expected no match with one fractional digit")
	}
	m, rest, ok = exact.matchPrefix("10.30foo")
	if !ok || m.fracDigits != "30" || rest != "foo" {
		t.Fatalf("unexpected match: %+v rest=%q ok=%v", m, rest, ok)
	}
	if _, _, ok := exact.matchPrefix("10"); ok {
		t.Fatalf("expected no match without mandatory fraction")
	}
}

func TestGrammar_SignPolicies(t *testing.T) {
	mandatory := mustGrammar(t, WithSignPolicy(SignMandatory), WithFractionalDigits(0, 0))
	if _, _, ok := mandatory.matchPrefix("10foo"); ok {
		t.Fatalf("expected no match without mandatory sign")
	}
	m, rest, ok := mandatory.matchPrefix("+10foo")
	if !ok || m.sign != "+" || m.intDigits != "10" || rest != "foo" {
		t.Fatalf("unexpected match: %+v rest=%q ok=%v", m, rest, ok)
	}

	forbidden := mustGrammar(t, WithSignPolicy(SignForbidden), WithFractionalDigits(0, 0))
	if _, _, ok := forbidden.matchPrefix("-10"); ok {
		t.Fatalf("expected no match on signed input")
	}

	minus := mustGrammar(t, WithFractionalDigits(0, 0))
	if _, _, ok := minus.matchPrefix("+10"); ok {
		t.Fatalf("optional minus must not admit plus")
	}
	m, _, ok = minus.matchPrefix("-10")
	if !ok || m.sign != "-" {
		t.Fatalf("unexpected match: %+v ok=%v", m, ok)
	}
}

func TestGrammar_Exponent(t *testing.T) {
	g := mustGrammar(t, WithENotation(ENotationLowercase))

	m, rest, ok := g.matchPrefix("1.5e-3rest")
	if !ok || m.fracDigits != "5" || m.exponent != "-3" || rest != "rest" {
		t.Fatalf("unexpected match: %+v rest=%q ok=%v", m, rest, ok)
	}

	// The exponent is optional on read; a bare letter stays unconsumed.
	m, rest, ok = g.matchPrefix("12e")
	if !ok || m.exponent != "" || rest != "e" {
		t.Fatalf("unexpected match: %+v rest=%q ok=%v", m, rest, ok)
	}

	// Wrong letter case is not an exponent.
	m, rest, ok = g.matchPrefix("2E5")
	if !ok || m.exponent != "" || rest != "E5" {
		t.Fatalf("unexpected match: %+v rest=%q ok=%v", m, rest, ok)
	}

	upper := mustGrammar(t, WithENotation(ENotationUppercase))
	m, rest, ok = upper.matchPrefix("2E5")
	if !ok || m.exponent != "5" || rest != "" {
		t.Fatalf("unexpected match: %+v rest=%q ok=%v", m, rest, ok)
	}
}

func TestGrammar_GermanComposite(t *testing.T) {
	g := mustGrammar(t, WithThousandSeparator('.'), WithFractionalSeparator(','))

	m, rest, ok := g.matchPrefix("1.048,30 EUR")
	if !ok || m.intDigits != "1048" || m.fracDigits != "30" || rest != " EUR" {
		t.Fatalf("unexpected match: %+v rest=%q ok=%v", m, rest, ok)
	}
}

func TestGrammar_IntegerDigitBounds(t *testing.T) {
	g := mustGrammar(t, WithIntegerDigits(1, 3), WithFractionalDigits(0, 0))
	m, rest, ok := g.matchPrefix("1234")
	if !ok || m.intDigits != "123" || rest != "4" {
		t.Fatalf("unexpected match: %+v rest=%q ok=%v", m, rest, ok)
	}

	g = mustGrammar(t, WithIntegerDigits(2, Unbounded), WithFractionalDigits(0, 0))
	if _, _, ok := g.matchPrefix("5"); ok {
		t.Fatalf("expected no match below minimum digit count")
	}
	m, _, ok = g.matchPrefix("0")
	if !ok || m.intDigits != "0" {
		t.Fatalf("lone zero must always match: %+v ok=%v", m, ok)
	}
}
