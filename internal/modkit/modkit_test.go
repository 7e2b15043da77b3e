package modkit_test

import (
	"net/http"
	"testing"

	modkit "joblens/internal/modkit"
	"joblens/internal/modkit/httpkit"
)

func TestBuild_AppliesOptions(t *testing.T) {
	mw := func(next http.Handler) http.Handler { return next }

	b := modkit.Build(
		modkit.WithName("search"),
		modkit.WithPrefix("/search"),
		modkit.WithMiddlewares(mw),
		modkit.WithSwagger(true),
	)

	if b.Name != "search" || b.Prefix != "/search" {
		t.Fatalf("unexpected name/prefix %q %q", b.Name, b.Prefix)
	}
	if len(b.Mw) != 1 {
		t.Fatalf("expected 1 middleware got %d", len(b.Mw))
	}
	if !b.SwaggerOn {
		t.Fatalf("expected swagger on")
	}
}

func TestBuild_DefaultsHooksToNoOps(t *testing.T) {
	b := modkit.Build()
	if b.Subrouter == nil || b.Register == nil {
		t.Fatalf("expected non nil hook defaults")
	}
	// the default subrouter is identity
	var r httpkit.Router
	if got := b.Subrouter(r); got != r {
		t.Fatalf("expected identity subrouter")
	}
}

func TestBuild_LaterOptionsWin(t *testing.T) {
	b := modkit.Build(modkit.WithName("a"), modkit.WithName("b"))
	if b.Name != "b" {
		t.Fatalf("expected last name to win got %q", b.Name)
	}
}

type fakePorts struct{ V int }

func TestWithPorts(t *testing.T) {
	b := modkit.Build(modkit.WithPorts(fakePorts{V: 9}))
	p, ok := b.Ports.(fakePorts)
	if !ok || p.V != 9 {
		t.Fatalf("ports not carried through: %#v", b.Ports)
	}
}
