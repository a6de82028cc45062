package domain

import (
	"errors"
	"strings"
	"testing"
	"time"
)

func testRuntime(t *testing.T, vars Vars) *RuntimeResolver {
	t.Helper()
	vr := NewVarResolver(WithNow(func() time.Time {
		return time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)
	}))
	return vr.NewRuntime(vars)
}

func TestResolveString_NoPlaceholders(t *testing.T) {
	rt := testRuntime(t, Vars{})
	got, err := rt.ResolveString("hello world")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != "hello world" {
		t.Fatalf("expected %q, got %q", "hello world", got)
	}
}

func TestResolveString_SimpleVar(t *testing.T) {
	rt := testRuntime(t, Vars{"version": "1.4.2"})
	got, err := rt.ResolveString("npm v{{version}}")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != "npm v1.4.2" {
		t.Fatalf("expected %q, got %q", "npm v1.4.2", got)
	}
}

func TestResolveString_YearBuiltin(t *testing.T) {
	rt := testRuntime(t, Vars{})
	got, err := rt.ResolveString("© {{$year}} MCP Aegis")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != "© 2026 MCP Aegis" {
		t.Fatalf("expected year builtin, got %q", got)
	}
}

func TestResolveString_MissingVar(t *testing.T) {
	rt := testRuntime(t, Vars{})
	_, err := rt.ResolveString("{{nope}}")
	if err == nil {
		t.Fatalf("expected error")
	}
	if !IsKind(err, KindMissingVar) {
		t.Fatalf("expected KindMissingVar, got: %v", err)
	}
	if !strings.Contains(err.Error(), "missing variable: nope") {
		t.Fatalf("expected message to name the variable, got: %v", err)
	}
	if !errors.Is(err, ErrMissingVar) {
		t.Fatalf("expected err to wrap ErrMissingVar, got: %v", err)
	}
}

func TestResolveString_UnclosedPlaceholder(t *testing.T) {
	rt := testRuntime(t, Vars{})
	_, err := rt.ResolveString("{{broken")
	if err == nil {
		t.Fatalf("expected error")
	}
	if !IsKind(err, KindInvalidConfig) {
		t.Fatalf("expected KindInvalidConfig, got: %v", err)
	}
	if !errors.Is(err, ErrInvalidConfig) {
		t.Fatalf("expected err to wrap ErrInvalidConfig, got: %v", err)
	}
}

func TestResolveString_EmptyPlaceholder(t *testing.T) {
	rt := testRuntime(t, Vars{})
	_, err := rt.ResolveString("{{  }}")
	if err == nil {
		t.Fatalf("expected error")
	}
	if !IsKind(err, KindInvalidConfig) {
		t.Fatalf("expected KindInvalidConfig, got: %v", err)
	}
	if !errors.Is(err, ErrInvalidConfig) {
		t.Fatalf("expected err to wrap ErrInvalidConfig, got: %v", err)
	}
}

func TestResolveNode_CopiesAndResolves(t *testing.T) {
	rt := testRuntime(t, Vars{"repo_url": "https://github.com/taurgis/mcp-aegis"})

	in := El("p",
		El("a", Text("v{{$year}}")).With("href", "{{repo_url}}"),
	)

	out, err := rt.ResolveNode(in)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	href, _ := out.Kids[0].Attr("href")
	if href != "https://github.com/taurgis/mcp-aegis" {
		t.Fatalf("expected resolved href, got %q", href)
	}
	if got := TextContent(out); got != "v2026" {
		t.Fatalf("expected resolved text, got %q", got)
	}

	// Input tree must be untouched.
	origHref, _ := in.Kids[0].Attr("href")
	if origHref != "{{repo_url}}" {
		t.Fatalf("expected input tree unchanged, got %q", origHref)
	}
}

func TestResolveNode_MissingVarNamesAttr(t *testing.T) {
	rt := testRuntime(t, Vars{})
	in := El("a", Text("x")).With("href", "{{gone}}")

	_, err := rt.ResolveNode(in)
	if err == nil {
		t.Fatalf("expected error")
	}
	if !IsKind(err, KindMissingVar) {
		t.Fatalf("expected KindMissingVar, got %v", err)
	}
	if !strings.Contains(err.Error(), "href") {
		t.Fatalf("expected error to name the attribute, got %v", err)
	}
}
