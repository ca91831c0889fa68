// Package main provides the CLI entrypoint for control-generator.
//
// control-generator is a codegen tool that:
//   - Reads declarative category event lists and the known-variable table
//   - Groups raw events into logical controls and infers control types
//   - Emits YourControls-style definition YAML (merged or split per category)
//   - Cross-checks checklists against generated output for coverage
package main

import (
	"flag"
	"fmt"
	"os"

	"control-generator/internal/config"
)

func main() {
	var (
		configPath = flag.String("config", "", "path to a config file (default: $"+config.EnvConfigPath+")")
		outputPath = flag.String("output-path", "", "override the aircraft file output directory")
		split      = flag.Bool("split", false, "generate separate per-category module files")
	)

	flag.Usage = usage
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		fatalf("loading config: %v", err)
	}

	if *outputPath != "" {
		cfg.OutputPath = *outputPath
	}

	if *split {
		cfg.Split = true
	}

	args := flag.Args()

	if len(args) > 0 && args[0] == "check" {
		category := ""
		if len(args) > 1 {
			category = args[1]
		}

		if err := runCheck(cfg, category); err != nil {
			fatalf("check: %v", err)
		}

		return
	}

	category := ""
	if len(args) > 0 {
		category = args[0]
	}

	if err := runGenerate(cfg, category); err != nil {
		fatalf("generate: %v", err)
	}
}

func usage() {
	fmt.Fprintln(os.Stderr, "Usage: control-generator [flags] [category]")
	fmt.Fprintln(os.Stderr, "       control-generator [flags] check [category]")
	fmt.Fprintln(os.Stderr)
	fmt.Fprintln(os.Stderr, "Without a category, all categories are regenerated.")
	fmt.Fprintln(os.Stderr)
	flag.PrintDefaults()
}

func fatalf(format string, args ...any) {
	fmt.Fprintf(os.Stderr, "control-generator: "+format+"\n", args...)
	os.Exit(1)
}
