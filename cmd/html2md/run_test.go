package main

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestRunStdinToStdout(t *testing.T) {
	var stdout, stderr strings.Builder
	stdin := strings.NewReader("<h1>Hi</h1>")

	if err := run(nil, stdin, &stdout, &stderr); err != nil {
		t.Fatalf("run() error: %v", err)
	}
	if got := stdout.String(); got != "\n# Hi\n" {
		t.Errorf("stdout = %q, want %q", got, "\n# Hi\n")
	}
}

func TestRunDashReadsStdin(t *testing.T) {
	var stdout, stderr strings.Builder
	stdin := strings.NewReader("<p>text</p>")

	if err := run([]string{"-"}, stdin, &stdout, &stderr); err != nil {
		t.Fatalf("run() error: %v", err)
	}
	if !strings.Contains(stdout.String(), "text") {
		t.Errorf("stdout = %q, want converted paragraph", stdout.String())
	}
}

func TestRunFileToFile(t *testing.T) {
	dir := t.TempDir()
	input := writeFile(t, dir, "page.html", "<ul><li>a</li><li>b</li></ul>")
	output := filepath.Join(dir, "out", "page.md")

	var stdout, stderr strings.Builder
	if err := run([]string{"-o", output, input}, strings.NewReader(""), &stdout, &stderr); err != nil {
		t.Fatalf("run() error: %v", err)
	}

	data, err := os.ReadFile(output)
	if err != nil {
		t.Fatalf("reading output: %v", err)
	}
	if got := string(data); got != "\n- a\n- b\n\n" {
		t.Errorf("output file = %q, want %q", got, "\n- a\n- b\n\n")
	}
	if stdout.Len() != 0 {
		t.Errorf("stdout should be empty when writing to a file, got %q", stdout.String())
	}
}

func TestRunWarnsOnMalformedInput(t *testing.T) {
	var stdout, stderr strings.Builder
	stdin := strings.NewReader("<div><p>unclosed")

	if err := run(nil, stdin, &stdout, &stderr); err != nil {
		t.Fatalf("run() error: %v", err)
	}
	if !strings.Contains(stderr.String(), "unclosed tags") {
		t.Errorf("stderr = %q, want unclosed tag warning", stderr.String())
	}
}

func TestRunQuietSuppressesWarning(t *testing.T) {
	var stdout, stderr strings.Builder
	stdin := strings.NewReader("<div><p>unclosed")

	if err := run([]string{"-q"}, stdin, &stdout, &stderr); err != nil {
		t.Fatalf("run() error: %v", err)
	}
	if stderr.Len() != 0 {
		t.Errorf("stderr should be empty with -q, got %q", stderr.String())
	}
}

func TestRunVersion(t *testing.T) {
	var stdout, stderr strings.Builder

	if err := run([]string{"--version"}, strings.NewReader(""), &stdout, &stderr); err != nil {
		t.Fatalf("run() error: %v", err)
	}
	if !strings.Contains(stdout.String(), Version) {
		t.Errorf("stdout = %q, want version string", stdout.String())
	}
}

func TestRunHelp(t *testing.T) {
	var stdout, stderr strings.Builder

	if err := run([]string{"--help"}, strings.NewReader(""), &stdout, &stderr); err != nil {
		t.Fatalf("run() error: %v", err)
	}
	if !strings.Contains(stdout.String(), "Usage:") {
		t.Errorf("stdout = %q, want usage text", stdout.String())
	}
}

func TestRunTooManyArgs(t *testing.T) {
	var stdout, stderr strings.Builder

	err := run([]string{"a.html", "b.html"}, strings.NewReader(""), &stdout, &stderr)
	if !errors.Is(err, ErrTooManyArgs) {
		t.Errorf("run() = %v, want ErrTooManyArgs", err)
	}
}

func TestRunMissingInput(t *testing.T) {
	var stdout, stderr strings.Builder

	err := run([]string{filepath.Join(t.TempDir(), "nope.html")}, strings.NewReader(""), &stdout, &stderr)
	if !errors.Is(err, ErrInputNotFound) {
		t.Errorf("run() = %v, want ErrInputNotFound", err)
	}
}

func TestRunWritesPreview(t *testing.T) {
	dir := t.TempDir()
	previewPath := filepath.Join(dir, "preview.html")

	var stdout, stderr strings.Builder
	stdin := strings.NewReader("<h1>Hi</h1>")
	if err := run([]string{"--preview", previewPath}, stdin, &stdout, &stderr); err != nil {
		t.Fatalf("run() error: %v", err)
	}

	data, err := os.ReadFile(previewPath)
	if err != nil {
		t.Fatalf("reading preview: %v", err)
	}
	if !strings.Contains(string(data), "<h1") {
		t.Errorf("preview = %q, want rendered heading", string(data))
	}
}

func TestRunWithConfig(t *testing.T) {
	dir := t.TempDir()
	input := writeFile(t, dir, "page.html", "<p>hello</p>")
	outDir := filepath.Join(dir, "md")
	cfgPath := writeFile(t, dir, "config.yaml",
		"output:\n  dir: "+outDir+"\n  extension: markdown\n")

	var stdout, stderr strings.Builder
	if err := run([]string{"--config", cfgPath, input}, strings.NewReader(""), &stdout, &stderr); err != nil {
		t.Fatalf("run() error: %v", err)
	}

	data, err := os.ReadFile(filepath.Join(outDir, "page.markdown"))
	if err != nil {
		t.Fatalf("reading configured output: %v", err)
	}
	if !strings.Contains(string(data), "hello") {
		t.Errorf("output = %q, want converted paragraph", string(data))
	}
}

func TestRunConfigInputDefaultDir(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "page.html", "<p>from default dir</p>")
	cfgPath := writeFile(t, dir, "config.yaml", "input:\n  defaultDir: "+dir+"\n")

	var stdout, stderr strings.Builder
	if err := run([]string{"--config", cfgPath, "page.html"}, strings.NewReader(""), &stdout, &stderr); err != nil {
		t.Fatalf("run() error: %v", err)
	}
	if !strings.Contains(stdout.String(), "from default dir") {
		t.Errorf("stdout = %q, want content resolved via defaultDir", stdout.String())
	}
}
