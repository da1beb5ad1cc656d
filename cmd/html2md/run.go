package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	html2md "github.com/alnah/go-html2md"
	"github.com/alnah/go-html2md/internal/config"
	"github.com/alnah/go-html2md/internal/fileutil"
	"github.com/alnah/go-html2md/internal/preview"
)

// Sentinel errors for CLI operations.
var (
	ErrInputNotFound = errors.New("input file not found")
	ErrReadInput     = errors.New("failed to read HTML input")
	ErrWriteOutput   = errors.New("failed to write markdown output")
	ErrWritePreview  = errors.New("failed to write preview")
	ErrTooManyArgs   = errors.New("expected at most one input file")
)

// File permission constants.
const (
	dirPermissions  = 0o750 // rwxr-x---: owner full, group read+execute
	filePermissions = 0o644 // rw-r--r--: owner read+write, others read
)

// run executes one CLI invocation. Conversion itself cannot fail; every
// error here is an IO or configuration problem.
func run(args []string, stdin io.Reader, stdout, stderr io.Writer) error {
	flags, positional, err := parseFlags(args)
	if err != nil {
		return err
	}
	if flags.help {
		printUsage(stdout)
		return nil
	}
	if flags.version {
		fmt.Fprintln(stdout, "html2md "+Version)
		return nil
	}
	if len(positional) > 1 {
		return fmt.Errorf("%w, got %d", ErrTooManyArgs, len(positional))
	}

	// Load configuration; CLI flags win over config values.
	cfg := config.Default()
	if flags.config != "" {
		cfg, err = config.Load(flags.config)
		if err != nil {
			return fmt.Errorf("loading config: %w", err)
		}
	}
	mergeFlags(flags, cfg)

	htmlContent, inputName, err := readInput(positional, cfg, stdin)
	if err != nil {
		return err
	}
	if flags.verbose {
		fmt.Fprintf(stderr, "Converting %s (%d bytes)\n", inputName, len(htmlContent))
	}

	conv := html2md.NewConverter(htmlContent)
	md := conv.ToMarkdown()
	if !conv.IsWellFormed() && !flags.quiet {
		fmt.Fprintf(stderr, "warning: %s: unclosed tags in input, output is best effort\n", inputName)
	}

	outputPath := resolveOutputPath(flags.output, inputName, cfg)
	if err := writeOutput(outputPath, md, stdout); err != nil {
		return err
	}
	if flags.verbose && outputPath != "" {
		fmt.Fprintf(stderr, "Wrote %s\n", outputPath)
	}

	if flags.preview != "" {
		if err := writePreview(flags.preview, md); err != nil {
			return err
		}
		if flags.verbose {
			fmt.Fprintf(stderr, "Wrote preview %s\n", flags.preview)
		}
	}

	return nil
}

// mergeFlags applies config defaults to flags the user didn't set.
func mergeFlags(flags *cliFlags, cfg *config.Config) {
	if flags.preview == "" && cfg.Preview.Enabled && cfg.Preview.Dir != "" {
		flags.preview = filepath.Join(cfg.Preview.Dir, "preview.html")
	}
}

// readInput returns the HTML content and a display name for it. A
// missing or "-" argument means stdin.
func readInput(positional []string, cfg *config.Config, stdin io.Reader) (string, string, error) {
	if len(positional) == 0 || positional[0] == "-" {
		data, err := io.ReadAll(stdin)
		if err != nil {
			return "", "", fmt.Errorf("%w: %v", ErrReadInput, err)
		}
		return string(data), "stdin", nil
	}

	path := positional[0]
	if !fileutil.FileExists(path) && cfg.Input.DefaultDir != "" {
		// Bare names resolve against the configured input directory.
		candidate := filepath.Join(cfg.Input.DefaultDir, path)
		if fileutil.FileExists(candidate) {
			path = candidate
		}
	}
	if !fileutil.FileExists(path) {
		return "", "", fmt.Errorf("%w: %s", ErrInputNotFound, path)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return "", "", fmt.Errorf("%w: %v", ErrReadInput, err)
	}
	return string(data), path, nil
}

// resolveOutputPath decides where the Markdown goes. Empty means
// stdout. An explicit -o wins; otherwise a configured output directory
// derives a file name from the input.
func resolveOutputPath(flagOutput, inputName string, cfg *config.Config) string {
	if flagOutput != "" && flagOutput != "-" {
		return flagOutput
	}
	if flagOutput == "-" || cfg.Output.Dir == "" || inputName == "stdin" {
		return ""
	}
	base := strings.TrimSuffix(filepath.Base(inputName), filepath.Ext(inputName))
	return filepath.Join(cfg.Output.Dir, base+"."+cfg.Output.Extension)
}

func writeOutput(path, md string, stdout io.Writer) error {
	if path == "" {
		if _, err := io.WriteString(stdout, md); err != nil {
			return fmt.Errorf("%w: %v", ErrWriteOutput, err)
		}
		return nil
	}
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, dirPermissions); err != nil {
			return fmt.Errorf("%w: %v", ErrWriteOutput, err)
		}
	}
	if err := os.WriteFile(path, []byte(md), filePermissions); err != nil {
		return fmt.Errorf("%w: %v", ErrWriteOutput, err)
	}
	return nil
}

func writePreview(path, md string) error {
	doc, err := preview.New().Render(md)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrWritePreview, err)
	}
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, dirPermissions); err != nil {
			return fmt.Errorf("%w: %v", ErrWritePreview, err)
		}
	}
	if err := os.WriteFile(path, []byte(doc), filePermissions); err != nil {
		return fmt.Errorf("%w: %v", ErrWritePreview, err)
	}
	return nil
}
