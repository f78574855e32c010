package debug

import (
	"bytes"
	"testing"
)

func TestReload(t *testing.T) {
	t.Setenv("NEST_DEBUG_CALLS", "true")
	t.Setenv("NEST_DEBUG_STACK", "nope")
	Reload()
	defer func() {
		t.Setenv("NEST_DEBUG_CALLS", "")
		t.Setenv("NEST_DEBUG_STACK", "")
		Reload()
	}()
	if !Calls() {
		t.Error("expected Calls enabled")
	}
	if Stack() {
		t.Error("expected Stack disabled for unparsable value")
	}
}

func TestLogf(t *testing.T) {
	var buf bytes.Buffer
	prev := SetOutput(&buf)
	defer SetOutput(prev)

	Logf("open %s %v\n", "a", map[string]any{"k": 1})
	want := "open a {\n   |  \"k\": 1\n   |}\n"
	if buf.String() != want {
		t.Errorf("expected %q, got %q", want, buf.String())
	}
}
