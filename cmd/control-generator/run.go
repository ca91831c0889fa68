package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"control-generator/internal/category"
	"control-generator/internal/config"
	"control-generator/internal/coverage"
	"control-generator/internal/diagnostic"
	"control-generator/internal/gen"
	"control-generator/internal/plan"
	"control-generator/internal/vartable"
)

// Extensions tried when resolving a named input file.
var inputExts = []string{".yaml", ".yml", ".json"}

// runGenerate regenerates definitions for one category, or for all of them
// when name is empty.
func runGenerate(cfg *config.Config, name string) error {
	table, err := loadVariables(cfg.DataDir)
	if err != nil {
		return err
	}

	fmt.Printf("Loaded %d variables\n", table.Len())

	paths, err := categoryPaths(cfg.DataDir, name)
	if err != nil {
		return err
	}

	opts := plan.ResolveOptions{
		VarPrefix:    cfg.VarPrefix,
		VarRefPrefix: cfg.VarRefPrefix,
	}

	var (
		allDefs  []plan.Definition
		diags    diagnostic.Diagnostics
		modules  []gen.GeneratedFile
		includes []string
	)

	for _, path := range paths {
		cat, err := category.LoadFile(path)
		if err != nil {
			return err
		}

		// Full regeneration: stale markers would exclude events.
		cat.ClearPresent()

		groups := plan.BuildGroups(cat.Events)

		opts.Category = cat.Name
		defs, catDiags := plan.Resolve(groups, table, opts)
		diags.Merge(*catDiags)

		fmt.Printf("  %s: %d events, %d groups, %d definitions\n",
			cat.Name, plan.CountEvents(groups), len(groups), len(defs))

		if cfg.Split {
			content, err := gen.RenderModule("TFDI MD-11 "+cat.Description, defs)
			if err != nil {
				return fmt.Errorf("rendering module %s: %w", cat.Name, err)
			}

			filename := cfg.ModulePrefix + cat.Name + ".yaml"
			modules = append(modules, gen.GeneratedFile{Filename: filename, Content: content})
			includes = append(includes, filepath.ToSlash(filepath.Join(cfg.ModulesDir, filename)))
		} else {
			allDefs = append(allDefs, defs...)
		}

		cat.MarkPresent(definedEvents(defs))

		if err := category.WriteFile(cat, path); err != nil {
			return err
		}
	}

	if cfg.Split {
		if err := gen.WriteFiles(modules, cfg.ModulesDir); err != nil {
			return err
		}

		fmt.Printf("Generated %d module files in %s\n", len(modules), cfg.ModulesDir)
	}

	if err := writeAircraft(cfg, allDefs, includes); err != nil {
		return err
	}

	printDiagnostics(diags)

	return nil
}

// writeAircraft rewrites the aircraft file: generated definitions merged in,
// manual entries and the master section preserved, split-mode includes added.
func writeAircraft(cfg *config.Config, defs []plan.Definition, includes []string) error {
	path := filepath.Join(cfg.OutputPath, cfg.AircraftFile)
	markers := gen.GeneratedMarkers(cfg.VarRefPrefix + cfg.VarPrefix)

	aircraft, err := gen.LoadAircraft(path, markers)
	if err != nil {
		return err
	}

	for _, inc := range includes {
		if !contains(aircraft.Includes, inc) {
			aircraft.Includes = append(aircraft.Includes, inc)
		}
	}

	content, err := aircraft.Render(defs)
	if err != nil {
		return err
	}

	if err := gen.WriteFiles([]gen.GeneratedFile{{Filename: cfg.AircraftFile, Content: content}}, cfg.OutputPath); err != nil {
		return err
	}

	fmt.Printf("Wrote %s\n", path)

	return nil
}

// runCheck verifies checklist coverage against the generated output files
// and rewrites the checklists with present markers.
func runCheck(cfg *config.Config, name string) error {
	corpus, err := loadCorpus(cfg)
	if err != nil {
		return err
	}

	paths, err := checklistPaths(cfg.ChecklistDir, name)
	if err != nil {
		return err
	}

	totalFound, total := 0, 0

	for _, path := range paths {
		cl, err := category.LoadChecklist(path)
		if err != nil {
			return err
		}

		result := coverage.CheckKeyed(cl.Names(), corpus)
		cl.SetPresent(result.FoundSet())

		if err := category.WriteChecklist(cl, path); err != nil {
			return err
		}

		fmt.Printf("  %s: %d/%d present (%.1f%%)\n",
			cl.Category, result.Found, result.Total, result.Percent())

		totalFound += result.Found
		total += result.Total
	}

	summary := coverage.Result{Found: totalFound, Total: total}
	fmt.Printf("Summary: %d/%d events present, coverage %.1f%%\n",
		totalFound, total, summary.Percent())

	return nil
}

// loadCorpus concatenates the aircraft file and any module files into the
// text the coverage checker searches. A missing aircraft file is fatal:
// there is nothing to check against.
func loadCorpus(cfg *config.Config) (string, error) {
	aircraftPath := filepath.Join(cfg.OutputPath, cfg.AircraftFile)

	data, err := os.ReadFile(aircraftPath)
	if err != nil {
		return "", fmt.Errorf("reading aircraft file: %w", err)
	}

	parts := [][]byte{data}

	moduleFiles, _ := filepath.Glob(filepath.Join(cfg.ModulesDir, cfg.ModulePrefix+"*.yaml"))
	for _, path := range moduleFiles {
		content, err := os.ReadFile(path)
		if err != nil {
			return "", fmt.Errorf("reading module file: %w", err)
		}

		parts = append(parts, content)
	}

	return gen.Corpus(parts...), nil
}

// loadVariables finds and loads the variables file in the data directory.
func loadVariables(dataDir string) (*vartable.Table, error) {
	for _, ext := range inputExts {
		path := filepath.Join(dataDir, "variables"+ext)
		if _, err := os.Stat(path); err == nil {
			return vartable.LoadFile(path)
		}
	}

	return nil, fmt.Errorf("no variables file found in %s", dataDir)
}

// categoryPaths resolves the category files to process.
func categoryPaths(dataDir, name string) ([]string, error) {
	if name == "" {
		return category.ListFiles(dataDir)
	}

	return namedFile(dataDir, name)
}

// checklistPaths resolves the checklist files to process.
func checklistPaths(dir, name string) ([]string, error) {
	if name == "" {
		return category.ListFiles(dir)
	}

	return namedFile(dir, name)
}

// namedFile resolves a single named input file by trying known extensions.
func namedFile(dir, name string) ([]string, error) {
	for _, ext := range inputExts {
		path := filepath.Join(dir, name+ext)
		if _, err := os.Stat(path); err == nil {
			return []string{path}, nil
		}
	}

	return nil, fmt.Errorf("no file for %q in %s", name, dir)
}

// definedEvents collects every event name referenced by the definitions.
func definedEvents(defs []plan.Definition) map[string]bool {
	found := map[string]bool{}

	for _, def := range defs {
		for _, name := range []string{def.EventName, def.OffEventName, def.UpEventName, def.DownEventName} {
			if name != "" {
				found[name] = true
			}
		}
	}

	return found
}

// printDiagnostics reports collected findings, warnings before infos.
func printDiagnostics(diags diagnostic.Diagnostics) {
	for _, d := range diags.Warnings {
		fmt.Fprintln(os.Stderr, "warning: "+d.String())
	}

	for _, d := range diags.Infos {
		fmt.Println("note: " + d.String())
	}
}

func contains(list []string, s string) bool {
	for _, v := range list {
		if strings.EqualFold(v, s) {
			return true
		}
	}

	return false
}
