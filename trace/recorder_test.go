package trace

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/signadot/nest"
)

func TestRecorderRecords(t *testing.T) {
	r := NewRecorder(nil)
	if err := r.OpenTag("a", []nest.Attr{nest.A("k", "v")}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := r.OpenTag("b", nil); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := r.Text("hi"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := r.CloseTag(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := r.CloseTag(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := []Call{
		Open("a", nest.A("k", "v")),
		Open("b"),
		{Op: OpText, Text: "hi"},
		Close("b"),
		Close("a"),
	}
	if diff := cmp.Diff(want, r.Calls()); diff != "" {
		t.Errorf("calls mismatch (-want +got):\n%s", diff)
	}
	if err := r.Check(); err != nil {
		t.Errorf("unexpected check error: %v", err)
	}
}

func TestRecorderCloseEmpty(t *testing.T) {
	r := NewRecorder(nil)
	if err := r.CloseTag(); !errors.Is(err, ErrNoOpenTag) {
		t.Errorf("expected ErrNoOpenTag, got %v", err)
	}
}

func TestRecorderFaults(t *testing.T) {
	boom := errors.New("boom")
	r := NewRecorder(nil)
	r.FailOpen("bad", boom)
	r.FailCloseAt(2, boom)

	if err := r.OpenTag("bad", nil); !errors.Is(err, boom) {
		t.Errorf("expected boom, got %v", err)
	}
	r.OpenTag("a", nil)
	r.OpenTag("b", nil)
	if err := r.CloseTag(); err != nil {
		t.Errorf("unexpected error: %v", err)
	}
	if err := r.CloseTag(); !errors.Is(err, boom) {
		t.Errorf("expected boom on second close, got %v", err)
	}
	if r.Depth() != 0 {
		t.Errorf("expected depth 0, got %d", r.Depth())
	}
	r.Reset()
	if len(r.Calls()) != 0 || r.Depth() != 0 {
		t.Error("expected empty recorder after reset")
	}
}

func TestRecorderForwards(t *testing.T) {
	next := NewRecorder(nil)
	r := NewRecorder(next)
	r.OpenTag("a", nil)
	r.Text("x")
	r.CloseTag()
	if diff := cmp.Diff(r.Calls(), next.Calls()); diff != "" {
		t.Errorf("forwarded calls mismatch (-outer +inner):\n%s", diff)
	}
}

func TestCheck(t *testing.T) {
	tests := []struct {
		name  string
		calls []Call
		ok    bool
	}{
		{name: "empty", ok: true},
		{name: "balanced", calls: []Call{Open("a"), Open("b"), Close("b"), Close("a")}, ok: true},
		{name: "anonymous close", calls: []Call{Open("a"), {Op: OpClose}}, ok: true},
		{name: "crossed", calls: []Call{Open("a"), Open("b"), Close("a"), Close("b")}},
		{name: "unopened", calls: []Call{Close("a")}},
		{name: "left open", calls: []Call{Open("a")}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := Check(tt.calls)
			if tt.ok && err != nil {
				t.Errorf("unexpected error: %v", err)
			}
			if !tt.ok && err == nil {
				t.Error("expected error")
			}
		})
	}
}
