package declaration

import (
	"errors"
	"fmt"
	"io"

	"gopkg.in/yaml.v3"
)

// document is the YAML form of a Declaration. Entries is kept as a node so
// the order of the mapping survives decoding.
type document struct {
	Type     string            `yaml:"type"`
	Element  string            `yaml:"element"`
	Receiver string            `yaml:"receiver,omitempty"`
	Imports  map[string]string `yaml:"imports,omitempty"`
	Entries  yaml.Node         `yaml:"entries"`
}

// ReadYAML reads a declaration file:
//
//	type: Color
//	element: color.RGBA
//	imports:
//	  color: image/color
//	entries:
//	  Red: "color.RGBA{R: 0xff, A: 0xff}"
//	  Green: "color.RGBA{G: 0xff, A: 0xff}"
//	  Transparent:
//
// An entry without a value holds the zero value of the element type.
// The returned Declaration has not been validated.
func ReadYAML(r io.Reader) (*Declaration, error) {
	var doc document
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&doc); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, errors.New("empty declaration file")
		}
		return nil, err
	}

	d := &Declaration{TypeName: doc.Type, Receiver: doc.Receiver}

	var err error
	if doc.Element != "" {
		d.Element, err = ParseExpr(doc.Element, doc.Imports)
		if err != nil {
			return nil, fmt.Errorf("element: %w", err)
		}
	}

	switch doc.Entries.Kind {
	case 0:
		// no entries key; Validate reports it
	case yaml.MappingNode:
		for i := 0; i+1 < len(doc.Entries.Content); i += 2 {
			k, v := doc.Entries.Content[i], doc.Entries.Content[i+1]
			if k.Kind != yaml.ScalarNode || v.Kind != yaml.ScalarNode {
				return nil, fmt.Errorf("line %d: entries must map names to expressions", k.Line)
			}

			e := Entry{Name: k.Value}
			if v.ShortTag() == "!!null" {
				// "Name:" or "Name: null" stands for the zero value
				e.Value = ZeroValue(d.Element)
				d.Entries = append(d.Entries, e)
				continue
			}

			e.Value, err = ParseExpr(v.Value, doc.Imports)
			if err != nil {
				return nil, fmt.Errorf("line %d: entry %q: %w", v.Line, k.Value, err)
			}
			d.Entries = append(d.Entries, e)
		}
	default:
		return nil, fmt.Errorf("line %d: entries must be a mapping", doc.Entries.Line)
	}

	return d, nil
}

// WriteYAML writes d in the format ReadYAML reads.
func WriteYAML(w io.Writer, d *Declaration) error {
	entries := yaml.Node{Kind: yaml.MappingNode}
	for _, e := range d.Entries {
		entries.Content = append(entries.Content,
			&yaml.Node{Kind: yaml.ScalarNode, Value: e.Name},
			&yaml.Node{Kind: yaml.ScalarNode, Value: e.Value.Text, Style: yaml.DoubleQuotedStyle},
		)
	}

	doc := document{
		Type:     d.TypeName,
		Element:  d.Element.Text,
		Receiver: d.Receiver,
		Entries:  entries,
	}
	if imports := d.Imports(); len(imports) > 0 {
		doc.Imports = imports
	}

	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(&doc); err != nil {
		return err
	}
	return enc.Close()
}
