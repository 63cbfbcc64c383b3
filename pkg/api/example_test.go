package api_test

import (
	"fmt"

	"github.com/yamllint-go/yamllint/pkg/api"
)

// Example: basic programmatic linting over a directory.
func ExampleLinter_basic() {
	linter := api.NewLinter()

	violations, err := linter.Lint(".")
	if err != nil {
		fmt.Printf("Error: %v\n", err)
		return
	}

	for _, v := range violations {
		fmt.Printf("[%s] %s:%d:%d %s\n", v.Rule, v.Path, v.Line, v.Column, v.Message)
	}
}

// Example: linting with a programmatically-built config.
func ExampleLinter_withConfig() {
	cfg := api.NewConfig().
		Extends("default").
		EnableRule("line-length", map[string]interface{}{"max": 100}).
		DisableRule("document-start").
		Ignore("vendor/**", "testdata/**")

	linter := api.NewLinter().WithConfig(cfg)

	violations, err := linter.Lint("./config")
	if err != nil {
		fmt.Printf("Error: %v\n", err)
		return
	}

	fmt.Printf("Found %d violation(s)\n", len(violations))
}

// Example: rendering violations back through one of the reporting formats.
func ExampleFormat() {
	linter := api.NewLinter()
	violations, err := linter.Lint(".")
	if err != nil {
		fmt.Printf("Error: %v\n", err)
		return
	}

	text, err := api.Format("parsable", violations)
	if err != nil {
		fmt.Printf("Error: %v\n", err)
		return
	}
	fmt.Print(text)
}
