package main

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/scott-cotton/cli"
	"github.com/signadot/nest/doc"
)

func TestEnvFunc(t *testing.T) {
	env := doc.Env{}
	for _, a := range []string{"n=3", "b=true", "s=hello", "empty=", "eq=a=b"} {
		if err := envFunc(env, a); err != nil {
			t.Fatalf("%s: unexpected error: %v", a, err)
		}
	}
	if n := fmt.Sprint(env["n"]); n != "3" || reflect.TypeOf(env["n"]).Kind() == reflect.String {
		t.Errorf("expected numeric 3, got %T %v", env["n"], env["n"])
	}
	delete(env, "n")
	want := doc.Env{"b": true, "s": "hello", "empty": "", "eq": "a=b"}
	if diff := cmp.Diff(want, env); diff != "" {
		t.Errorf("env mismatch (-want +got):\n%s", diff)
	}
	if err := envFunc(env, "novalue"); !errors.Is(err, cli.ErrUsage) {
		t.Errorf("expected usage error, got %v", err)
	}
}

func TestDiffText(t *testing.T) {
	if _, same := diffText("<a></a>\n", "<a></a>\n"); !same {
		t.Error("expected equal")
	}
	d, same := diffText("<a x=\"1\"></a>\n", "<a x=\"2\"></a>\n")
	if same {
		t.Fatal("expected difference")
	}
	if !strings.Contains(d, "1") || !strings.Contains(d, "2") {
		t.Errorf("diff does not mention both values: %q", d)
	}
}

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	p := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(p, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}
	return p
}

func TestRenderFile(t *testing.T) {
	src := writeFile(t, "doc.yaml", `
tag: page
attrs: [title, "$[title]"]
children:
  - tag: item
    when: n > 1
  - tag: other
`)
	patch := writeFile(t, "patch.yaml", `
- op: add
  path: /children/-
  value: {tag: extra}
`)
	cfg := &MainConfig{Env: doc.Env{"title": "T", "n": 1}, Wire: true, Patch: patch}
	var buf bytes.Buffer
	if err := renderFile(cfg, &buf, src); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := `<page title="T"><other></other><extra></extra></page>`
	if buf.String() != want {
		t.Errorf("expected %q, got %q", want, buf.String())
	}
}

func TestRenderFileMissing(t *testing.T) {
	cfg := &MainConfig{Env: doc.Env{}}
	err := renderFile(cfg, &bytes.Buffer{}, filepath.Join(t.TempDir(), "nope.yaml"))
	if !errors.Is(err, os.ErrNotExist) {
		t.Errorf("expected not exist error, got %v", err)
	}
}

func TestLoggerLevels(t *testing.T) {
	var buf bytes.Buffer
	newLogger(&buf, false).Info("hidden")
	if buf.Len() != 0 {
		t.Errorf("expected info dropped, got %q", buf.String())
	}
	newLogger(&buf, true).Info("shown", "file", "a.yaml")
	if got := buf.String(); got != "level=INFO msg=shown file=a.yaml\n" {
		t.Errorf("unexpected log line %q", got)
	}
}
