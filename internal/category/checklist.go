package category

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Checklist is an ordered list of expected event names for one category,
// verified against the generated output by the coverage checker. Entries use
// the same string form and present-marker convention as category events.
type Checklist struct {
	Category string       `yaml:"category" json:"category"`
	Events   []EventEntry `yaml:"events" json:"events"`

	// EventCount is bookkeeping rewritten after each check.
	EventCount int `yaml:"event_count,omitempty" json:"event_count,omitempty"`
}

// LoadChecklist loads and parses a checklist file from the given path.
func LoadChecklist(path string) (*Checklist, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read checklist file %s: %w", path, err)
	}

	var cl Checklist

	err = yaml.Unmarshal(data, &cl)
	if err != nil {
		return nil, fmt.Errorf("failed to parse checklist %s: %w", path, err)
	}

	if cl.Category == "" {
		cl.Category = fileStem(path)
	}

	return &cl, nil
}

// WriteChecklist writes a checklist back to the given path, keeping the
// file's serialization format.
func WriteChecklist(cl *Checklist, path string) error {
	cl.EventCount = len(cl.Events)

	data, err := marshalFor(path, cl)
	if err != nil {
		return fmt.Errorf("failed to marshal checklist %s: %w", cl.Category, err)
	}

	if err := os.WriteFile(path, data, filePerm); err != nil {
		return fmt.Errorf("failed to write checklist file %s: %w", path, err)
	}

	return nil
}

// Names returns the bare event names in input order, markers stripped.
func (c *Checklist) Names() []string {
	names := make([]string, len(c.Events))
	for i, e := range c.Events {
		names[i] = e.Event
	}

	return names
}

// SetPresent replaces the present flags from per-name results.
func (c *Checklist) SetPresent(found map[string]bool) int {
	present := 0

	for i := range c.Events {
		c.Events[i].Present = found[c.Events[i].Event]
		if c.Events[i].Present {
			present++
		}
	}

	return present
}
