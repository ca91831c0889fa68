// Package config defines generator configuration and its loading order:
// defaults, then an optional YAML config file, then CONTROLGEN_* environment
// variables. Paths and prefixes live here so the core stays free of ambient
// state.
package config

// Config contains one generation run's settings.
type Config struct {
	// DataDir holds the category files and the variables file.
	DataDir string `koanf:"data_dir"`

	// ChecklistDir holds the coverage checklist files.
	ChecklistDir string `koanf:"checklist_dir"`

	// OutputPath is the directory of the aircraft definition file.
	OutputPath string `koanf:"output_path"`

	// AircraftFile is the aircraft definition file name.
	AircraftFile string `koanf:"aircraft_file"`

	// ModulesDir receives per-category module files in split mode.
	ModulesDir string `koanf:"modules_dir"`

	// ModulePrefix prefixes generated module file names.
	ModulePrefix string `koanf:"module_prefix"`

	// VarPrefix is prepended to base identifiers to form candidate
	// variable identifiers.
	VarPrefix string `koanf:"var_prefix"`

	// VarRefPrefix is the variable reference prefix in emitted output.
	VarRefPrefix string `koanf:"var_ref_prefix"`

	// Split generates separate per-category module files instead of
	// merging everything into the aircraft file.
	Split bool `koanf:"split"`
}

// New returns a Config with the conventional defaults.
func New() *Config {
	return &Config{
		DataDir:      "tfdi-md11-data",
		ChecklistDir: "checklist",
		OutputPath:   "definitions/aircraft",
		AircraftFile: "TFDi Design - MD-11.yaml",
		ModulesDir:   "definitions/modules/tfdi-md11",
		ModulePrefix: "TFDi_MD11_",
		VarPrefix:    "MD11_",
		VarRefPrefix: "L:",
	}
}
