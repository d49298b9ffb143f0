package repository

import "testing"

func TestContainsExprByDialectSQLite(t *testing.T) {
	got := containsExprByDialect("sqlite", "posts.title")
	want := "instr(posts.title, ?) > 0"
	if got != want {
		t.Fatalf("sqlite contains expr mismatch, want %s got %s", want, got)
	}
}

func TestContainsExprByDialectPostgres(t *testing.T) {
	got := containsExprByDialect("postgres", "posts.title")
	want := "strpos(posts.title, ?) > 0"
	if got != want {
		t.Fatalf("postgres contains expr mismatch, want %s got %s", want, got)
	}
}

func TestBuildContainsCondition(t *testing.T) {
	condition, argCount := buildContainsCondition(nil, []string{"posts.title", " ", "posts.content"})
	if argCount != 2 {
		t.Fatalf("arg count want 2 got %d", argCount)
	}
	want := "(instr(posts.title, ?) > 0 OR instr(posts.content, ?) > 0)"
	if condition != want {
		t.Fatalf("condition want %s got %s", want, condition)
	}
}

func TestBuildContainsConditionEmpty(t *testing.T) {
	condition, argCount := buildContainsCondition(nil, nil)
	if condition != "" || argCount != 0 {
		t.Fatalf("expected empty condition, got %q/%d", condition, argCount)
	}
}

func TestRepeatArgs(t *testing.T) {
	args := repeatArgs("Go", 3)
	if len(args) != 3 {
		t.Fatalf("args len want 3 got %d", len(args))
	}
	for idx, arg := range args {
		if arg != "Go" {
			t.Fatalf("args[%d] want Go got %v", idx, arg)
		}
	}
}
