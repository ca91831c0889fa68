package gen

import (
	"bytes"
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"

	"control-generator/internal/common"
	"control-generator/internal/plan"
)

// Reference links emitted in every generated file header.
const (
	EventsReferenceURL    = "https://docs.tfdidesign.com/md11/integration-guide/events"
	VariablesReferenceURL = "https://docs.tfdidesign.com/md11/integration-guide/variables"
)

// Indentation for emitted YAML.
const yamlIndent = 2

// EntryNode renders one definition as an ordered YAML mapping node.
// Key order is fixed so repeated runs produce byte-identical output:
// type, variable fields, event name fields, step, then the remaining
// overrides in a documented order with open-ended extras sorted last.
func EntryNode(def plan.Definition) (*yaml.Node, error) {
	entry := &yaml.Node{Kind: yaml.MappingNode}

	label := CommentName(firstEventName(def))
	if label != "" {
		entry.HeadComment = label
	}

	err := appendKV(entry, "type", def.Type)
	if err != nil {
		return nil, err
	}

	pairs := []struct {
		key string
		val string
	}{
		{"var_name", def.VarName},
		{"var_units", def.VarUnits},
		{"var_type", def.VarType},
		{"event_name", def.EventName},
		{"off_event_name", def.OffEventName},
		{"up_event_name", def.UpEventName},
		{"down_event_name", def.DownEventName},
	}

	for _, p := range pairs {
		if p.val == "" {
			continue
		}

		if err := appendKV(entry, p.key, p.val); err != nil {
			return nil, err
		}
	}

	if def.IncrementBy != nil {
		if err := appendKV(entry, "increment_by", *def.IncrementBy); err != nil {
			return nil, err
		}
	}

	if err := appendOverrides(entry, def); err != nil {
		return nil, err
	}

	return entry, nil
}

// appendOverrides emits the remaining override values after the built-in keys.
func appendOverrides(entry *yaml.Node, def plan.Definition) error {
	o := def.Overrides

	if o.AddBy != nil {
		if err := appendKV(entry, "add_by", *o.AddBy); err != nil {
			return err
		}
	}

	if o.CancelHEvents != nil {
		if err := appendKV(entry, "cancel_h_events", *o.CancelHEvents); err != nil {
			return err
		}
	}

	if o.UseCalculator != nil {
		if err := appendKV(entry, "use_calculator", *o.UseCalculator); err != nil {
			return err
		}
	}

	if o.Unreliable != nil {
		if err := appendKV(entry, "unreliable", *o.Unreliable); err != nil {
			return err
		}
	}

	// Open-ended extras, sorted for deterministic output.
	rest := map[string]any{}
	for k, v := range o.Extra {
		rest[k] = v
	}

	if o.MultiplyBy != nil {
		rest["multiply_by"] = *o.MultiplyBy
	}

	for _, k := range common.SortedKeys(rest) {
		if err := appendKV(entry, k, rest[k]); err != nil {
			return err
		}
	}

	return nil
}

// SharedNode renders a definition sequence as the value of a "shared:" key.
func SharedNode(defs []plan.Definition) (*yaml.Node, error) {
	seq := &yaml.Node{Kind: yaml.SequenceNode}

	for _, def := range defs {
		entry, err := EntryNode(def)
		if err != nil {
			return nil, fmt.Errorf("rendering entry for %s: %w", firstEventName(def), err)
		}

		seq.Content = append(seq.Content, entry)
	}

	return seq, nil
}

// RenderModule renders a standalone module file for one category:
// a commented header followed by the shared definition list.
func RenderModule(title string, defs []plan.Definition) ([]byte, error) {
	var buf bytes.Buffer

	buf.WriteString("# " + title + "\n")
	buf.WriteString("# Events reference: " + EventsReferenceURL + "\n")
	buf.WriteString("# Variables reference: " + VariablesReferenceURL + "\n")
	buf.WriteString("\n")

	shared, err := SharedNode(defs)
	if err != nil {
		return nil, err
	}

	root := &yaml.Node{Kind: yaml.MappingNode}
	root.Content = append(root.Content,
		&yaml.Node{Kind: yaml.ScalarNode, Value: "shared"},
		shared,
	)

	if err := encodeNode(&buf, root); err != nil {
		return nil, err
	}

	return buf.Bytes(), nil
}

// encodeNode marshals a node with the project indentation.
func encodeNode(buf *bytes.Buffer, node *yaml.Node) error {
	enc := yaml.NewEncoder(buf)
	enc.SetIndent(yamlIndent)

	if err := enc.Encode(node); err != nil {
		return fmt.Errorf("encoding YAML: %w", err)
	}

	return enc.Close()
}

// firstEventName picks the representative event name of a definition, used
// for comment labels and error context.
func firstEventName(def plan.Definition) string {
	for _, name := range []string{def.EventName, def.DownEventName, def.UpEventName, def.OffEventName} {
		if name != "" {
			return name
		}
	}

	return ""
}

// appendKV appends one key/value pair to a mapping node.
func appendKV(entry *yaml.Node, key string, val any) error {
	keyNode := &yaml.Node{Kind: yaml.ScalarNode, Value: key}

	valNode := &yaml.Node{}
	if err := valNode.Encode(val); err != nil {
		return fmt.Errorf("encoding %s: %w", key, err)
	}

	entry.Content = append(entry.Content, keyNode, valNode)

	return nil
}

// Corpus flattens rendered output to text for the coverage checker.
func Corpus(files ...[]byte) string {
	parts := make([]string, len(files))
	for i, f := range files {
		parts[i] = string(f)
	}

	return strings.Join(parts, "\n")
}
