package validate

import (
	"encoding/json"
	"testing"
)

func TestEnsureArray(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{`[1,2,3]`, `[1,2,3]`},
		{`"not-an-array"`, `[]`},
		{`{"a":1}`, `[]`},
		{`null`, `[]`},
		{``, `[]`},
		{`[ ]`, `[ ]`},
	}
	for _, c := range cases {
		got := EnsureArray(json.RawMessage(c.in))
		if string(got) != c.want {
			t.Fatalf("EnsureArray(%q) = %q, want %q", c.in, got, c.want)
		}
	}
	if got := EnsureArray(nil); string(got) != `[]` {
		t.Fatalf("EnsureArray(nil) = %q", got)
	}
}

func TestEnsureObject(t *testing.T) {
	if got := EnsureObject(json.RawMessage(`{"a":1}`)); string(got) != `{"a":1}` {
		t.Fatalf("object passthrough failed: %q", got)
	}
	for _, in := range []string{`[1]`, `"x"`, `null`, `42`, ``} {
		if got := EnsureObject(json.RawMessage(in)); string(got) != `{}` {
			t.Fatalf("EnsureObject(%q) = %q, want {}", in, got)
		}
	}
}

func TestEnsureString(t *testing.T) {
	if got := EnsureString(json.RawMessage(`"dark"`), "light"); got != "dark" {
		t.Fatalf("got %q", got)
	}
	if got := EnsureString(json.RawMessage(`42`), "light"); got != "light" {
		t.Fatalf("fallback failed: %q", got)
	}
}

func TestSanitizeText(t *testing.T) {
	got := SanitizeText(`<script>alert("x")</script>`)
	if got == `<script>alert("x")</script>` {
		t.Fatalf("text was not escaped: %q", got)
	}
	if SanitizeText("plain") != "plain" {
		t.Fatalf("plain text should be untouched")
	}
}

func TestIsISODateTime(t *testing.T) {
	if !IsISODateTime("2025-01-02T15:04:05Z") {
		t.Fatalf("expected valid date-time")
	}
	if IsISODateTime("yesterday") {
		t.Fatalf("expected invalid date-time")
	}
}
