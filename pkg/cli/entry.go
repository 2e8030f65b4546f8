// Package cli implements the anno command: evaluating type expressions
// and running YAML check suites.
package cli

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/funvibe/anno/internal/checker"
	"github.com/funvibe/anno/internal/config"
	"github.com/funvibe/anno/internal/typeexpr"
)

// Version is stamped at build time with -ldflags.
var Version = "dev"

const usage = `Usage:
  anno eval EXPR        evaluate a type expression and print its canonical form
  anno check [FILE...]  run YAML check suites (defaults to configured suite dirs)
  anno version          print the version
`

// Run executes the command line and returns the process exit code.
func Run(args []string, stdout, stderr io.Writer) int {
	if len(args) == 0 {
		fmt.Fprint(stderr, usage)
		return 2
	}

	cwd, err := os.Getwd()
	if err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return 1
	}
	cfg, _, err := config.FindAndLoad(cwd)
	if err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return 1
	}

	switch args[0] {
	case "eval":
		if len(args) != 2 {
			fmt.Fprintln(stderr, "Usage: anno eval EXPR")
			return 2
		}
		return runEval(args[1], stdout, stderr)
	case "check":
		return runCheck(args[1:], cfg, stdout, stderr)
	case "version":
		fmt.Fprintln(stdout, "anno "+Version)
		return 0
	case "help", "-h", "--help":
		fmt.Fprint(stdout, usage)
		return 0
	default:
		fmt.Fprintf(stderr, "Unknown command: %s\n", args[0])
		fmt.Fprint(stderr, usage)
		return 2
	}
}

func runEval(expr string, stdout, stderr io.Writer) int {
	t, err := typeexpr.Parse(expr, typeexpr.NewScope())
	if err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return 1
	}
	fmt.Fprintln(stdout, t.String())
	return 0
}

func runCheck(paths []string, cfg *config.Config, stdout, stderr io.Writer) int {
	paint := painter{on: colorMode(cfg.Project.Color).enabled()}
	if len(paths) == 0 {
		paths = findSuites(cfg)
		if len(paths) == 0 {
			fmt.Fprintln(stderr, "Error: no check suites found (or pass files explicitly)")
			return 1
		}
	}

	failed := 0
	for _, path := range paths {
		suite, err := checker.LoadSuite(path)
		if err != nil {
			fmt.Fprintf(stderr, "Error: %s: %v\n", path, err)
			return 1
		}
		name := suite.Name
		if name == "" {
			name = filepath.Base(path)
		}
		results, err := suite.Run()
		if err != nil {
			fmt.Fprintf(stderr, "Error: %s: %v\n", name, err)
			return 1
		}
		fmt.Fprintf(stdout, "%s\n", name)
		for _, r := range results {
			switch {
			case r.Err != nil:
				failed++
				fmt.Fprintf(stdout, "  %s %s %s\n",
					paint.red("ERR "), r.Desc, paint.dim(r.Err.Error()))
			case r.Pass:
				fmt.Fprintf(stdout, "  %s %s\n", paint.green("PASS"), r.Desc)
			default:
				failed++
				fmt.Fprintf(stdout, "  %s %s %s\n",
					paint.red("FAIL"), r.Desc, paint.dim("got "+r.Got))
			}
		}
	}
	if failed > 0 {
		fmt.Fprintf(stdout, "%s\n", paint.red(fmt.Sprintf("%d check(s) failed", failed)))
		return 1
	}
	return 0
}

// findSuites collects suite files from the configured suite directories.
func findSuites(cfg *config.Config) []string {
	var paths []string
	for _, dir := range cfg.Project.Suites {
		entries, err := os.ReadDir(dir)
		if err != nil {
			continue
		}
		for _, e := range entries {
			if e.IsDir() {
				continue
			}
			for _, ext := range config.SuiteFileExtensions {
				if strings.HasSuffix(e.Name(), ext) {
					paths = append(paths, filepath.Join(dir, e.Name()))
					break
				}
			}
		}
	}
	return paths
}
