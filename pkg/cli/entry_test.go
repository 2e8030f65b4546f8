package cli

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func run(t *testing.T, args ...string) (int, string, string) {
	t.Helper()
	var stdout, stderr bytes.Buffer
	code := Run(args, &stdout, &stderr)
	return code, stdout.String(), stderr.String()
}

func TestRunEval(t *testing.T) {
	code, out, _ := run(t, "eval", "Union[Int, Int | Float]")
	if code != 0 {
		t.Fatalf("exit code = %d", code)
	}
	if strings.TrimSpace(out) != "Int | Float" {
		t.Errorf("output = %q", out)
	}
}

func TestRunEvalError(t *testing.T) {
	code, _, errOut := run(t, "eval", "Nosuch")
	if code != 1 {
		t.Errorf("exit code = %d, want 1", code)
	}
	if !strings.Contains(errOut, "unknown type") {
		t.Errorf("stderr = %q", errOut)
	}
}

func TestRunVersion(t *testing.T) {
	code, out, _ := run(t, "version")
	if code != 0 || !strings.HasPrefix(out, "anno ") {
		t.Errorf("code = %d, output = %q", code, out)
	}
}

func TestRunUnknownCommand(t *testing.T) {
	code, _, errOut := run(t, "frobnicate")
	if code != 2 {
		t.Errorf("exit code = %d, want 2", code)
	}
	if !strings.Contains(errOut, "Unknown command") {
		t.Errorf("stderr = %q", errOut)
	}
}

func TestRunNoArgs(t *testing.T) {
	code, _, errOut := run(t)
	if code != 2 || !strings.Contains(errOut, "Usage:") {
		t.Errorf("code = %d, stderr = %q", code, errOut)
	}
}

func TestRunCheck(t *testing.T) {
	dir := t.TempDir()
	good := filepath.Join(dir, "good.yaml")
	if err := os.WriteFile(good, []byte(`
suite: basics
checks:
  - issubclass:
      a: Int
      b: Int | Float
      want: true
`), 0o644); err != nil {
		t.Fatal(err)
	}

	code, out, _ := run(t, "check", good)
	if code != 0 {
		t.Fatalf("exit code = %d, output:\n%s", code, out)
	}
	if !strings.Contains(out, "PASS") || !strings.Contains(out, "basics") {
		t.Errorf("output = %q", out)
	}
}

func TestRunCheckFailure(t *testing.T) {
	dir := t.TempDir()
	bad := filepath.Join(dir, "bad.yaml")
	if err := os.WriteFile(bad, []byte(`
suite: failing
checks:
  - equal:
      a: Int
      b: Float
      want: true
`), 0o644); err != nil {
		t.Fatal(err)
	}

	code, out, _ := run(t, "check", bad)
	if code != 1 {
		t.Errorf("exit code = %d, want 1", code)
	}
	if !strings.Contains(out, "FAIL") {
		t.Errorf("output = %q", out)
	}
}
