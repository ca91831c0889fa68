package gen

import (
	"bytes"
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"control-generator/internal/plan"
)

// Default sections for a fresh aircraft file.
var (
	defaultHeader = []string{
		"# Version 1.0.0",
		"# TFDi Design MD-11 Configuration File",
		"# Events reference: " + EventsReferenceURL,
		"# Variables reference: " + VariablesReferenceURL,
	}

	defaultIncludes = []string{
		"definitions/modules/navigation.yaml",
		"definitions/modules/physics_rad.yaml",
		"definitions/modules/radios.yaml",
		"definitions/modules/transponder.yaml",
	}
)

// Aircraft models the main aircraft definition file as four sections:
// a comment header, an include list, the shared definition list, and an
// opaque master tail. Regeneration replaces the generated shared entries and
// preserves everything added by hand.
type Aircraft struct {
	Header   []string
	Includes []string

	// Manual holds shared entries that were added by hand: entries whose
	// content matches none of the generated markers.
	Manual []*yaml.Node

	// Master is the raw text of the master section, kept verbatim.
	Master string
}

// GeneratedMarkers returns the substrings identifying generator-produced
// shared entries, given the variable reference prefix in use (e.g. "L:MD11_").
func GeneratedMarkers(varRef string) []string {
	return []string{
		varRef,
		"_BT_LEFT_BUTTON",
		"_KB_WHEEL",
		"_SW_LEFT_BUTTON",
		"_GRD_LEFT_BUTTON",
	}
}

// LoadAircraft reads and splits an existing aircraft file. A missing file is
// not an error: it yields the default header and include list with no manual
// entries.
func LoadAircraft(path string, markers []string) (*Aircraft, error) {
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return &Aircraft{Header: defaultHeader, Includes: defaultIncludes}, nil
	}

	if err != nil {
		return nil, fmt.Errorf("failed to read aircraft file %s: %w", path, err)
	}

	return ParseAircraft(data, markers)
}

// ParseAircraft splits aircraft file content into its sections and filters
// manually-added shared entries from generated ones.
func ParseAircraft(data []byte, markers []string) (*Aircraft, error) {
	lines := strings.Split(string(data), "\n")

	a := &Aircraft{}

	i := 0
	for ; i < len(lines); i++ {
		if strings.TrimSpace(lines[i]) == "include:" {
			break
		}

		if line := strings.TrimRight(lines[i], " \t"); line != "" {
			a.Header = append(a.Header, line)
		}
	}

	if i == len(lines) {
		return nil, fmt.Errorf("aircraft file has no include section")
	}

	for i++; i < len(lines); i++ {
		line := strings.TrimSpace(lines[i])
		if line == "shared:" {
			break
		}

		if inc, ok := strings.CutPrefix(line, "- "); ok {
			a.Includes = append(a.Includes, strings.TrimSpace(inc))
		}
	}

	if i == len(lines) {
		return nil, fmt.Errorf("aircraft file has no shared section")
	}

	var sharedLines []string

	for ; i < len(lines); i++ {
		if strings.TrimSpace(lines[i]) == "master:" {
			a.Master = strings.TrimRight(strings.Join(lines[i:], "\n"), "\n")
			break
		}

		sharedLines = append(sharedLines, lines[i])
	}

	var doc struct {
		Shared []yaml.Node `yaml:"shared"`
	}

	err := yaml.Unmarshal([]byte(strings.Join(sharedLines, "\n")), &doc)
	if err != nil {
		return nil, fmt.Errorf("failed to parse shared section: %w", err)
	}

	for idx := range doc.Shared {
		node := &doc.Shared[idx]
		if !nodeMatchesAny(node, markers) {
			a.Manual = append(a.Manual, node)
		}
	}

	return a, nil
}

// Render reassembles the aircraft file with the given generated definitions
// appended after the preserved manual entries.
func (a *Aircraft) Render(defs []plan.Definition) ([]byte, error) {
	var buf bytes.Buffer

	for _, line := range a.Header {
		buf.WriteString(line + "\n")
	}

	buf.WriteString("\ninclude:\n")

	for _, inc := range a.Includes {
		buf.WriteString("  - " + inc + "\n")
	}

	buf.WriteString("\n")

	shared, err := SharedNode(defs)
	if err != nil {
		return nil, err
	}

	shared.Content = append(append([]*yaml.Node{}, a.Manual...), shared.Content...)

	root := &yaml.Node{Kind: yaml.MappingNode}
	root.Content = append(root.Content,
		&yaml.Node{Kind: yaml.ScalarNode, Value: "shared"},
		shared,
	)

	if err := encodeNode(&buf, root); err != nil {
		return nil, err
	}

	if a.Master != "" {
		buf.WriteString("\n" + a.Master + "\n")
	}

	return buf.Bytes(), nil
}

// nodeMatchesAny reports whether any scalar inside the node contains one of
// the marker substrings.
func nodeMatchesAny(node *yaml.Node, markers []string) bool {
	if node == nil {
		return false
	}

	for _, m := range markers {
		if strings.Contains(node.Value, m) {
			return true
		}
	}

	for _, child := range node.Content {
		if nodeMatchesAny(child, markers) {
			return true
		}
	}

	return false
}
