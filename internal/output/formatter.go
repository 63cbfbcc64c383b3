// Package output turns a file's ordered diagnostics into one of the four
// emitter formats a reporting tool supports, following the same
// Formatter-interface-plus-factory shape the teacher uses for its own
// text/json/junit formatters.
package output

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-isatty"

	"github.com/yamllint-go/yamllint/internal/config"
	"github.com/yamllint-go/yamllint/internal/lint"
)

// Formatter renders one file's diagnostics (and the path they came from).
// Formats with footer syntax (github's ::endgroup::) write the footer at
// the end of the same FormatFile result.
type Formatter interface {
	FormatFile(path string, diags []lint.Diagnostic) string
}

// Resolve picks a Formatter by name, resolving "auto" against the
// environment the same way §4.8 describes: GitHub Actions context wins,
// then NO_COLOR, then a TTY (or FORCE_COLOR) for color, else plain
// standard output.
func Resolve(format string, env Env) (Formatter, error) {
	switch format {
	case "", "auto":
		return resolveAuto(env), nil
	case "standard":
		return standardFormatter{}, nil
	case "colored":
		return coloredFormatter{}, nil
	case "parsable":
		return parsableFormatter{}, nil
	case "github":
		return githubFormatter{}, nil
	default:
		return nil, fmt.Errorf("unknown format: %s (supported: standard, colored, parsable, github, auto)", format)
	}
}

// Env abstracts the environment-variable and TTY checks Resolve needs, so
// format auto-detection is testable without real env vars or a terminal.
type Env interface {
	Getenv(key string) string
	StdoutIsTTY() bool
}

// OSEnv implements Env against the real process environment and stdout.
type OSEnv struct{}

func (OSEnv) Getenv(key string) string { return os.Getenv(key) }
func (OSEnv) StdoutIsTTY() bool        { return isatty.IsTerminal(os.Stdout.Fd()) }

func resolveAuto(env Env) Formatter {
	if env.Getenv("GITHUB_ACTIONS") != "" && env.Getenv("GITHUB_WORKFLOW") != "" {
		return githubFormatter{}
	}
	if env.Getenv("NO_COLOR") != "" {
		return standardFormatter{}
	}
	if env.Getenv("FORCE_COLOR") != "" || env.StdoutIsTTY() {
		return coloredFormatter{}
	}
	return standardFormatter{}
}

func levelWord(level config.RuleLevel) string {
	if level == config.LevelError {
		return "error"
	}
	return "warning"
}

type standardFormatter struct{}

func (standardFormatter) FormatFile(path string, diags []lint.Diagnostic) string {
	if len(diags) == 0 {
		return ""
	}
	var sb strings.Builder
	sb.WriteString(path + "\n")
	for _, d := range diags {
		pos := strconv.Itoa(d.Line) + ":" + strconv.Itoa(d.Column)
		sb.WriteString("  " + padRight(pos, 12) + padRight(levelWord(d.Level), 9) + padRight(d.Message, 19))
		if d.Rule != "" {
			sb.WriteString("(" + d.Rule + ")")
		}
		sb.WriteString("\n")
	}
	sb.WriteString("\n")
	return sb.String()
}

func padRight(s string, width int) string {
	if len(s) >= width {
		return s + " "
	}
	return s + strings.Repeat(" ", width-len(s))
}

// padVisual pads s (which may contain ANSI escape sequences) to width
// visual columns, matching padRight's plain-text behavior.
func padVisual(s string, width int) string {
	w := lipgloss.Width(s)
	if w >= width {
		return s + " "
	}
	return s + strings.Repeat(" ", width-w)
}

type parsableFormatter struct{}

func (parsableFormatter) FormatFile(path string, diags []lint.Diagnostic) string {
	var sb strings.Builder
	for _, d := range diags {
		sb.WriteString(path + ":" + strconv.Itoa(d.Line) + ":" + strconv.Itoa(d.Column) + ": [" + levelWord(d.Level) + "] " + d.Message)
		if d.Rule != "" {
			sb.WriteString(" (" + d.Rule + ")")
		}
		sb.WriteString("\n")
	}
	return sb.String()
}

var (
	underlineStyle = lipgloss.NewStyle().Underline(true)
	errorStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("1"))
	warningStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("3"))
	dimStyle       = lipgloss.NewStyle().Faint(true)
)

type coloredFormatter struct{}

func (coloredFormatter) FormatFile(path string, diags []lint.Diagnostic) string {
	if len(diags) == 0 {
		return ""
	}
	var sb strings.Builder
	sb.WriteString("\x1b[4m" + path + "\x1b[0m\n")
	for _, d := range diags {
		pos := strconv.Itoa(d.Line) + ":" + strconv.Itoa(d.Column)
		level := "\x1b[31merror\x1b[0m"
		if d.Level == config.LevelWarning {
			level = "\x1b[33mwarning\x1b[0m"
		}
		sb.WriteString("  " + padRight(pos, 12) + padVisual(level, 9) + padRight(d.Message, 19))
		if d.Rule != "" {
			sb.WriteString("\x1b[2m(" + d.Rule + ")\x1b[0m")
		}
		sb.WriteString("\n")
	}
	sb.WriteString("\n")
	return sb.String()
}

type githubFormatter struct{}

func (githubFormatter) FormatFile(path string, diags []lint.Diagnostic) string {
	if len(diags) == 0 {
		return ""
	}
	var sb strings.Builder
	sb.WriteString("::group::" + path + "\n")
	for _, d := range diags {
		sb.WriteString("::" + levelWord(d.Level) + " file=" + path + ",line=" + strconv.Itoa(d.Line) + ",col=" + strconv.Itoa(d.Column) + "::")
		sb.WriteString(strconv.Itoa(d.Line) + ":" + strconv.Itoa(d.Column) + " [" + d.Rule + "] " + d.Message + "\n")
	}
	sb.WriteString("::endgroup::\n")
	return sb.String()
}
