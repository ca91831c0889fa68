package category

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"
)

// File permission for rewritten category files.
const filePerm = 0o644

// LoadFile loads and parses a category file from the given path.
// The category name defaults to the file stem when the file omits it.
func LoadFile(path string) (*Category, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read category file %s: %w", path, err)
	}

	cat, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("category file %s: %w", path, err)
	}

	if cat.Name == "" {
		cat.Name = fileStem(path)
	}

	if cat.Description == "" {
		cat.Description = defaultDescription(cat.Name)
	}

	return cat, nil
}

// Parse parses YAML (or JSON) data into a Category.
func Parse(data []byte) (*Category, error) {
	var cat Category

	err := yaml.Unmarshal(data, &cat)
	if err != nil {
		return nil, fmt.Errorf("failed to parse category: %w", err)
	}

	if cat.Description == "" {
		cat.Description = defaultDescription(cat.Name)
	}

	return &cat, nil
}

// WriteFile writes a Category back to the given path,
// preserving string vs object entry forms, present markers, and the file's
// serialization format.
func WriteFile(cat *Category, path string) error {
	data, err := marshalFor(path, cat)
	if err != nil {
		return fmt.Errorf("failed to marshal category %s: %w", cat.Name, err)
	}

	if err := os.WriteFile(path, data, filePerm); err != nil {
		return fmt.Errorf("failed to write category file %s: %w", path, err)
	}

	return nil
}

// ListFiles returns the category files in dir in sorted order,
// skipping the variables file.
func ListFiles(dir string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("failed to read category dir %s: %w", dir, err)
	}

	var files []string

	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}

		name := entry.Name()
		switch filepath.Ext(name) {
		case ".yaml", ".yml", ".json":
		default:
			continue
		}

		if fileStem(name) == "variables" {
			continue
		}

		files = append(files, filepath.Join(dir, name))
	}

	sort.Strings(files)

	return files, nil
}

// MarkPresent sets the present flag on every entry whose event name is in
// found, updates the bookkeeping counts, and returns the number marked.
func (c *Category) MarkPresent(found map[string]bool) int {
	present := 0

	for i := range c.Events {
		if found[c.Events[i].Event] {
			c.Events[i].Present = true
		}

		if c.Events[i].Present {
			present++
		}
	}

	c.PresentCount = present
	c.TotalCount = len(c.Events)

	return present
}

// ClearPresent removes all present markers, for full regeneration runs.
func (c *Category) ClearPresent() {
	for i := range c.Events {
		c.Events[i].Present = false
	}

	c.PresentCount = 0
}

// marshalFor serializes v in the format implied by the target path, so a
// category maintained as JSON is rewritten as JSON.
func marshalFor(path string, v any) ([]byte, error) {
	if strings.EqualFold(filepath.Ext(path), ".json") {
		data, err := json.MarshalIndent(v, "", "  ")
		if err != nil {
			return nil, err
		}

		return append(data, '\n'), nil
	}

	return yaml.Marshal(v)
}

// fileStem returns the file name without directory or extension.
func fileStem(path string) string {
	base := filepath.Base(path)
	return strings.TrimSuffix(base, filepath.Ext(base))
}

// defaultDescription derives a human-readable description from a category
// name, e.g. "center_panel" becomes "Center Panel".
func defaultDescription(name string) string {
	if name == "" {
		return ""
	}

	words := strings.Split(name, "_")
	for i, w := range words {
		if w == "" {
			continue
		}

		words[i] = strings.ToUpper(w[:1]) + w[1:]
	}

	return strings.Join(words, " ")
}
