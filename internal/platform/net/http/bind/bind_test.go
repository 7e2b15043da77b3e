package bind_test

import (
	"net/http/httptest"
	"strings"
	"testing"

	"joblens/internal/platform/net/http/bind"

	perr "joblens/internal/platform/errors"
)

type FilterIn struct {
	Q       string   `query:"q" validate:"omitempty,max=200"`
	Country string   `query:"country" validate:"omitempty,alpha,len=2"`
	Modes   []string `query:"mode" validate:"omitempty,dive,oneof=remote hybrid onsite"`
	Remote  bool     `query:"remote_only"`
}

type SearchIn struct {
	FilterIn
	Page *int `query:"page" validate:"omitempty,min=1"`
	Size *int `query:"size" validate:"omitempty,min=1,max=100"`
}

func parse[T any](t *testing.T, rawQuery string) (T, error) {
	t.Helper()
	req := httptest.NewRequest("GET", "/?"+rawQuery, nil)
	return bind.ParseQuery[T](req)
}

func TestParseQuery_Defaults(t *testing.T) {
	in, err := parse[SearchIn](t, "")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if in.Page != nil || in.Size != nil {
		t.Fatalf("expected absent paging to stay nil got %+v", in)
	}
}

func TestParseQuery_DecodesEmbeddedStruct(t *testing.T) {
	in, err := parse[SearchIn](t, "q=backend&country=CH&page=2")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if in.Q != "backend" || in.Country != "CH" {
		t.Fatalf("embedded fields not decoded: %+v", in)
	}
	if in.Page == nil || *in.Page != 2 {
		t.Fatalf("expected page 2 got %+v", in.Page)
	}
}

func TestParseQuery_BoolCoercion(t *testing.T) {
	for raw, want := range map[string]bool{
		"remote_only=true": true,
		"remote_only=1":    true,
		"remote_only=yes":  false,
		"remote_only=0":    false,
		"remote_only=":     false,
	} {
		in, err := parse[SearchIn](t, raw)
		if err != nil {
			t.Fatalf("%s: unexpected error %v", raw, err)
		}
		if in.Remote != want {
			t.Fatalf("%s: expected %v got %v", raw, want, in.Remote)
		}
	}
}

func TestParseQuery_SliceFromRepeatsAndCommas(t *testing.T) {
	in, err := parse[SearchIn](t, "mode=remote,hybrid&mode=onsite")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(in.Modes) != 3 {
		t.Fatalf("expected 3 modes got %v", in.Modes)
	}
}

func TestParseQuery_PresentButEmptySliceIsInvalid(t *testing.T) {
	_, err := parse[SearchIn](t, "mode=")
	if err == nil {
		t.Fatalf("expected error for empty set param")
	}
	var e *perr.Error
	if !bind.As(err, &e) || e.Code() != perr.ErrorCodeValidation {
		t.Fatalf("expected validation error got %v", err)
	}
}

func TestParseQuery_RejectsPageZeroAndOversize(t *testing.T) {
	_, err := parse[SearchIn](t, "page=0")
	if err == nil || !strings.Contains(err.Error(), "page must be at least 1") {
		t.Fatalf("expected page rejection got %v", err)
	}

	_, err = parse[SearchIn](t, "size=101")
	if err == nil || !strings.Contains(err.Error(), "size must be at most 100") {
		t.Fatalf("expected size rejection got %v", err)
	}
}

func TestParseQuery_NonIntegerIsInvalid(t *testing.T) {
	_, err := parse[SearchIn](t, "page=abc")
	if err == nil || !strings.Contains(err.Error(), "page must be an integer") {
		t.Fatalf("expected integer error got %v", err)
	}
}

func TestParseQuery_AggregatesEveryInvalidField(t *testing.T) {
	_, err := parse[SearchIn](t, "page=0&size=101&country=XYZ&mode=martian")
	if err == nil {
		t.Fatalf("expected aggregated validation error")
	}
	msg := err.Error()
	for _, frag := range []string{"page", "size", "country", "mode"} {
		if !strings.Contains(msg, frag) {
			t.Fatalf("expected %q mentioned in %q", frag, msg)
		}
	}
	if !strings.Contains(msg, ";") {
		t.Fatalf("expected multiple messages joined got %q", msg)
	}
}

func TestParseQuery_AggregatesEveryDecodeFailure(t *testing.T) {
	_, err := parse[SearchIn](t, "page=abc&size=xyz")
	if err == nil {
		t.Fatalf("expected aggregated decode error")
	}
	msg := err.Error()
	for _, frag := range []string{"page must be an integer", "size must be an integer"} {
		if !strings.Contains(msg, frag) {
			t.Fatalf("expected %q mentioned in %q", frag, msg)
		}
	}

	// a decode failure and a bounds violation report together
	_, err = parse[SearchIn](t, "page=abc&size=101")
	if err == nil {
		t.Fatalf("expected aggregated error")
	}
	msg = err.Error()
	for _, frag := range []string{"page must be an integer", "size must be at most 100"} {
		if !strings.Contains(msg, frag) {
			t.Fatalf("expected %q mentioned in %q", frag, msg)
		}
	}
}

func TestParseQuery_TrimsStrings(t *testing.T) {
	in, err := parse[SearchIn](t, "q=%20backend%20")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if in.Q != "backend" {
		t.Fatalf("expected trimmed value got %q", in.Q)
	}
}
