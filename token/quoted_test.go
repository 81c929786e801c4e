package token

import "testing"

func TestQuoted(t *testing.T) {
	for _, s := range []string{
		`"`,
		`'`,
		"\t\n\r\b",
		"∞∞",
		`"""''`,
		`''"∞∞""''`,
		`a\b`,
		`f[0]`,
		"",
	} {
		for _, auto := range []bool{false, true} {
			q := Quote(s, auto)
			uq, err := Unquote(q)
			if err != nil {
				t.Errorf("error unquoting %q (from %q): %v", q, s, err)
				continue
			}
			if uq != s {
				t.Errorf("unquote(quote(%q)) = %q via %q", s, uq, q)
			}
		}
	}
}

func TestKPathQuoteField(t *testing.T) {
	for v, want := range map[string]bool{
		"a":      false,
		"a_b-c":  false,
		"":       true,
		"a.b":    true,
		"x[0]":   true,
		"0abc":   true,
		"has sp": true,
		"*":      true,
	} {
		if got := KPathQuoteField(v); got != want {
			t.Errorf("KPathQuoteField(%q) = %v, want %v", v, got, want)
		}
	}
}
