package cli

import (
	"os"
	"strings"

	"github.com/mattn/go-isatty"
)

// colorMode is set from anno.toml: "auto", "always", "never".
type colorMode string

const (
	colorAuto   colorMode = "auto"
	colorAlways colorMode = "always"
	colorNever  colorMode = "never"
)

func (m colorMode) enabled() bool {
	switch m {
	case colorAlways:
		return true
	case colorNever:
		return false
	}
	// NO_COLOR convention: https://no-color.org/
	if _, ok := os.LookupEnv("NO_COLOR"); ok {
		return false
	}
	if !isatty.IsTerminal(os.Stdout.Fd()) && !isatty.IsCygwinTerminal(os.Stdout.Fd()) {
		return false
	}
	return os.Getenv("TERM") != "dumb"
}

const (
	ansiReset = "\x1b[0m"
	ansiGreen = "\x1b[32m"
	ansiRed   = "\x1b[31m"
	ansiDim   = "\x1b[2m"
)

type painter struct {
	on bool
}

func (p painter) green(s string) string { return p.wrap(ansiGreen, s) }
func (p painter) red(s string) string   { return p.wrap(ansiRed, s) }
func (p painter) dim(s string) string   { return p.wrap(ansiDim, s) }

func (p painter) wrap(code, s string) string {
	if !p.on || strings.TrimSpace(s) == "" {
		return s
	}
	return code + s + ansiReset
}
