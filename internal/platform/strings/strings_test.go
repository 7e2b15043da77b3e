package strings_test

import (
	"testing"

	str "joblens/internal/platform/strings"
	"joblens/internal/platform/testkit"
)

func TestIfEmpty(t *testing.T) {
	def := []int{1, 2}
	if got := str.IfEmpty(nil, def); len(got) != 2 {
		t.Fatalf("expected default got %v", got)
	}
	if got := str.IfEmpty([]int{9}, def); len(got) != 1 || got[0] != 9 {
		t.Fatalf("expected input got %v", got)
	}
}

func TestMustString(t *testing.T) {
	if got := str.MustString("ok", "name"); got != "ok" {
		t.Fatalf("expected passthrough got %q", got)
	}
	testkit.MustPanic(t, func() { str.MustString("  ", "name") })
}

func TestMustPrefix(t *testing.T) {
	cases := map[string]string{
		"search":    "/search",
		"/search":   "/search",
		" /search/": "/search",
		"//meta":    "/meta",
	}
	for in, want := range cases {
		if got := str.MustPrefix(in); got != want {
			t.Fatalf("MustPrefix(%q) = %q want %q", in, got, want)
		}
	}
	testkit.MustPanic(t, func() { str.MustPrefix("  ") })
	testkit.MustPanic(t, func() { str.MustPrefix("/") })
}

func TestPtrAndDeref(t *testing.T) {
	if str.Ptr("") != nil {
		t.Fatalf("expected nil for empty string")
	}
	p := str.Ptr("x")
	if p == nil || *p != "x" {
		t.Fatalf("expected pointer to x")
	}
	if str.Deref(nil) != "" || str.Deref(p) != "x" {
		t.Fatalf("Deref mismatch")
	}
}

func TestSQLNull(t *testing.T) {
	if str.SQLNull("  ") != nil {
		t.Fatalf("expected nil for blanks")
	}
	if str.SQLNull("v") != "v" {
		t.Fatalf("expected passthrough")
	}
}
