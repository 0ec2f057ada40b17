// Package lint implements the "vize lint" subcommand: run the template and
// style linters (lint.Run, lint.LintCSS) over one or more .vize files and
// report diagnostics, following cmd/vuego/commands/render/render.go's
// flag/positional shape.
package lint

import (
	"flag"
	"fmt"
	"os"

	yamlv2 "gopkg.in/yaml.v2"
	yamlv3 "gopkg.in/yaml.v3"

	"github.com/vizehq/vize/arena"
	"github.com/vizehq/vize/croquis"
	"github.com/vizehq/vize/lint"
	"github.com/vizehq/vize/script"
	"github.com/vizehq/vize/sfc"
	"github.com/vizehq/vize/template"
)

// RuleConfig disables named rules by id, loaded from either a current
// (yaml.v3) or legacy (yaml.v2) config file — server/api.go already
// decodes request bodies with yaml.v3; cmd/vuego-playground decodes its
// flags file with yaml.v2, the precedent this subcommand's -legacy-config
// flag follows.
type RuleConfig struct {
	Disabled []string `yaml:"disabled"`
}

// Run executes the lint command with the given arguments.
func Run(args []string) error {
	fs := flag.NewFlagSet("lint", flag.ContinueOnError)
	fs.Usage = func() {
		fmt.Fprint(os.Stderr, Usage()+"\n")
	}

	config := fs.String("config", "", "path to a YAML rule config (yaml.v3)")
	legacyConfig := fs.String("legacy-config", "", "path to a legacy YAML rule config (yaml.v2)")

	// Flags may appear before or after the file arguments.
	var positional []string
	for {
		if err := fs.Parse(args); err != nil {
			return err
		}
		args = fs.Args()
		if len(args) == 0 {
			break
		}
		positional = append(positional, args[0])
		args = args[1:]
	}
	if len(positional) == 0 {
		fs.Usage()
		return fmt.Errorf("lint: requires at least 1 file argument")
	}

	disabled, err := loadDisabled(*config, *legacyConfig)
	if err != nil {
		return err
	}

	var failed bool
	for _, file := range positional {
		diags, err := lintFile(file)
		if err != nil {
			fmt.Fprintf(os.Stderr, "%s: %v\n", file, err)
			failed = true
			continue
		}
		for _, d := range diags {
			if disabled[d.Rule] {
				continue
			}
			fmt.Printf("%s:%d-%d: %s [%s] %s\n", file, d.Start, d.End, d.Severity, d.Rule, d.Message)
			if d.Severity == lint.Error {
				failed = true
			}
		}
	}

	if failed {
		return fmt.Errorf("lint: diagnostics found")
	}
	return nil
}

func loadDisabled(configPath, legacyPath string) (map[string]bool, error) {
	out := make(map[string]bool)
	if configPath != "" {
		data, err := os.ReadFile(configPath)
		if err != nil {
			return nil, fmt.Errorf("reading %s: %w", configPath, err)
		}
		var cfg RuleConfig
		if err := yamlv3.Unmarshal(data, &cfg); err != nil {
			return nil, fmt.Errorf("parsing %s: %w", configPath, err)
		}
		for _, rule := range cfg.Disabled {
			out[rule] = true
		}
	}
	if legacyPath != "" {
		data, err := os.ReadFile(legacyPath)
		if err != nil {
			return nil, fmt.Errorf("reading %s: %w", legacyPath, err)
		}
		var cfg RuleConfig
		if err := yamlv2.Unmarshal(data, &cfg); err != nil {
			return nil, fmt.Errorf("parsing %s: %w", legacyPath, err)
		}
		for _, rule := range cfg.Disabled {
			out[rule] = true
		}
	}
	return out, nil
}

func lintFile(file string) ([]lint.Diagnostic, error) {
	source, err := os.ReadFile(file)
	if err != nil {
		return nil, fmt.Errorf("reading file: %w", err)
	}

	desc, err := sfc.Split(arena.New(len(source)), file, string(source))
	if err != nil {
		return nil, fmt.Errorf("splitting SFC: %w", err)
	}

	m := croquis.NewModel()
	if desc.ScriptBlock != nil {
		if err := script.Analyze(m, desc.ScriptBlock.Content, desc.ScriptBlock.Lang, false); err != nil {
			return nil, fmt.Errorf("analyzing <script>: %w", err)
		}
	}
	if desc.ScriptSetupBlock != nil {
		if err := script.Analyze(m, desc.ScriptSetupBlock.Content, desc.ScriptSetupBlock.Lang, true); err != nil {
			return nil, fmt.Errorf("analyzing <script setup>: %w", err)
		}
	}

	var diags []lint.Diagnostic
	if desc.TemplateBlock != nil {
		root := template.Parse(arena.New(len(desc.TemplateBlock.Content)), desc.TemplateBlock.Content)
		disables := lint.BuildDisableMap(root)
		diags = append(diags, lint.Run(root, m, disables)...)
	}
	for _, style := range desc.StyleBlocks {
		diags = append(diags, lint.LintCSS(style.Content)...)
	}
	return diags, nil
}

// Usage returns the usage string for the lint command.
func Usage() string {
	return `vize lint <file.vize> [file.vize ...] [options]

Run the template and style linters over one or more SFCs.

Options:
  -config string         path to a YAML rule config (yaml.v3)
  -legacy-config string  path to a legacy YAML rule config (yaml.v2)

Exit status is non-zero if any file has an error-severity diagnostic.

Examples:
  vize lint Counter.vize
  vize lint src/*.vize -config .vizelint.yml`
}
