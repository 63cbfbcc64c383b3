// Command yamllint lints YAML files against a resolved LintConfig,
// reporting diagnostics in one of four formats.
package main

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/yamllint-go/yamllint/internal/config"
	"github.com/yamllint-go/yamllint/internal/lint"
	"github.com/yamllint-go/yamllint/internal/output"
	"github.com/yamllint-go/yamllint/internal/tui"
	"github.com/yamllint-go/yamllint/internal/walker"

	tea "github.com/charmbracelet/bubbletea"
)

// Version is set during build via ldflags.
var Version = "dev"

func main() {
	code, err := run()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		if code == 0 {
			code = 2
		}
	}
	os.Exit(code)
}

func run() (int, error) {
	fs := flag.NewFlagSet("yamllint", flag.ContinueOnError)
	configFile := fs.String("c", "", "use FILE as global config")
	fs.StringVar(configFile, "config-file", "", "use FILE as global config")
	configData := fs.String("d", "", "use the given YAML as inline config")
	fs.StringVar(configData, "config-data", "", "use the given YAML as inline config")
	format := fs.String("f", "auto", "output format: standard, colored, parsable, github, auto")
	fs.StringVar(format, "format", "auto", "output format: standard, colored, parsable, github, auto")
	strict := fs.Bool("s", false, "warnings also cause a non-zero exit code")
	fs.BoolVar(strict, "strict", false, "warnings also cause a non-zero exit code")
	noWarnings := fs.Bool("no-warnings", false, "suppress warning diagnostics from output")
	listFiles := fs.Bool("list-files", false, "print candidate paths and exit, without linting")
	interactive := fs.Bool("interactive", false, "browse diagnostics in a terminal UI instead of printing them")
	versionFlag := fs.Bool("version", false, "show version information")

	if err := fs.Parse(os.Args[1:]); err != nil {
		return 2, nil
	}

	if *versionFlag {
		fmt.Printf("yamllint-go version %s\n", Version)
		return 0, nil
	}

	paths := fs.Args()
	if len(paths) == 0 {
		paths = []string{"."}
	}

	env := config.OSEnv{}
	req := config.Request{InputDirs: paths}
	if *configFile != "" {
		req.ConfigFilePath = *configFile
	}
	if *configData != "" {
		data := *configData
		if !strings.Contains(data, ":") {
			data = "extends: " + data
		}
		req.InlineConfigData = data
		req.HasInlineData = true
	}

	cfg, err := config.Resolve(req, env)
	if err != nil {
		return 2, err
	}

	candidates, err := walker.Discover(paths, cfg)
	if err != nil {
		return 2, err
	}

	if *listFiles {
		for _, c := range candidates {
			fmt.Println(c.Path)
		}
		return 0, nil
	}

	var findings []tui.Finding
	hasError, hasWarning := false, false
	formatter, err := output.Resolve(*format, output.OSEnv{})
	if err != nil {
		return 2, err
	}

	for _, c := range candidates {
		fileCfg := cfg
		if *configFile == "" && !req.HasInlineData {
			if perFile, perFileErr := config.ResolvePerFile(filepath.Dir(c.Path), env); perFileErr == nil {
				fileCfg = perFile
			}
		}
		buf, readErr := os.ReadFile(c.Path)
		if readErr != nil {
			return 2, readErr
		}
		diags := lint.File(fileCfg, c.RelPath, buf)
		if *noWarnings {
			diags = dropWarnings(diags)
		}
		for _, d := range diags {
			if d.Level == config.LevelError {
				hasError = true
			} else {
				hasWarning = true
			}
			findings = append(findings, tui.Finding{Path: c.Path, Diagnostic: d})
		}
		if !*interactive {
			fmt.Print(formatter.FormatFile(c.Path, diags))
		}
	}

	if *interactive {
		p := tea.NewProgram(tui.NewModel(findings))
		if _, runErr := p.Run(); runErr != nil {
			return 2, runErr
		}
	}

	exit := 0
	if hasError || (*strict && hasWarning) {
		exit = 1
	}
	return exit, nil
}

func dropWarnings(diags []lint.Diagnostic) []lint.Diagnostic {
	out := diags[:0]
	for _, d := range diags {
		if d.Level != config.LevelWarning {
			out = append(out, d)
		}
	}
	return out
}
