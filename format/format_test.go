package format

import (
	"errors"
	"testing"
)

func TestParseFormat(t *testing.T) {
	for _, f := range AllFormats() {
		got, err := ParseFormat(f.String())
		if err != nil {
			t.Fatal(err)
		}
		if got != f {
			t.Errorf("ParseFormat(%q) = %v", f, got)
		}
	}
	if _, err := ParseFormat("toml"); !errors.Is(err, ErrBadFormat) {
		t.Errorf("expected ErrBadFormat, got %v", err)
	}
}

func TestFromPath(t *testing.T) {
	tests := map[string]Format{
		"a.json":     JSONFormat,
		"dir/b.yaml": YAMLFormat,
		"c.yml":      YAMLFormat,
		"noext":      JSONFormat,
	}
	for p, want := range tests {
		if got := FromPath(p); got != want {
			t.Errorf("FromPath(%q) = %v, want %v", p, got, want)
		}
	}
}
