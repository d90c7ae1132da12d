package format

import (
	"errors"
	"testing"
)

func TestParseFormat(t *testing.T) {
	for _, f := range AllFormats() {
		got, err := ParseFormat(f.String())
		if err != nil {
			t.Fatalf("ParseFormat(%q): %v", f, err)
		}
		if got != f {
			t.Errorf("ParseFormat(%q) = %v", f, got)
		}
	}
	short := map[string]Format{"s": SexpFormat, "j": JSONFormat, "y": YAMLFormat}
	for s, want := range short {
		got, err := ParseFormat(s)
		if err != nil || got != want {
			t.Errorf("ParseFormat(%q) = %v, %v", s, got, err)
		}
	}
	if _, err := ParseFormat("toml"); !errors.Is(err, ErrBadFormat) {
		t.Errorf("expected ErrBadFormat, got %v", err)
	}
}

func TestFormatText(t *testing.T) {
	var f Format
	if err := f.UnmarshalText([]byte("json")); err != nil {
		t.Fatal(err)
	}
	if !f.IsJSON() || f.Suffix() != ".json" {
		t.Errorf("got %v %q", f, f.Suffix())
	}
	if _, err := Format(42).MarshalText(); err == nil {
		t.Error("expected error for unknown format")
	}
}
