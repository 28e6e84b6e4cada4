package logging

import (
	"context"
	"testing"
)

func TestScope_Layering(t *testing.T) {
	ctx := WithCommand(context.Background(), "view")
	ctx = WithDataset(ctx, "projects")

	got := ScopeFrom(ctx)
	want := Scope{Command: "view", Dataset: "projects"}
	if got != want {
		t.Errorf("ScopeFrom() = %+v, want %+v", got, want)
	}
}

func TestScope_OverrideKeepsParent(t *testing.T) {
	parent := WithDataset(context.Background(), "projects")
	child := WithDataset(parent, "releases")

	if got := ScopeFrom(parent).Dataset; got != "projects" {
		t.Errorf("parent dataset = %q, want %q", got, "projects")
	}
	if got := ScopeFrom(child).Dataset; got != "releases" {
		t.Errorf("child dataset = %q, want %q", got, "releases")
	}
}

func TestScopeFrom_NotPresent(t *testing.T) {
	if got := ScopeFrom(context.Background()); got != (Scope{}) {
		t.Errorf("ScopeFrom() = %+v, want zero scope", got)
	}
}
