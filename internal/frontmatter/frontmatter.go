// Package frontmatter reads and writes the `---` delimited YAML header of MDX pages.
package frontmatter

import (
	"bytes"
	"errors"

	"gopkg.in/yaml.v3"
)

const delimiter = "---\n"

// ErrMissingClosingDelimiter indicates the document started with a front-matter
// delimiter but did not contain a closing one.
var ErrMissingClosingDelimiter = errors.New("front-matter start delimiter found but closing delimiter is missing")

// Field is one key of a front-matter header. Fields are emitted in order.
type Field struct {
	Key   string
	Value string
}

// Split separates the front-matter (without delimiters) from the body.
// If the content does not start with a delimiter, had is false and body is the
// full input.
func Split(content []byte) (header []byte, body []byte, had bool, err error) {
	content = bytes.ReplaceAll(content, []byte("\r\n"), []byte("\n"))

	if !bytes.HasPrefix(content, []byte(delimiter)) {
		return nil, content, false, nil
	}

	start := len(delimiter)
	if bytes.HasPrefix(content[start:], []byte(delimiter)) {
		return []byte{}, content[start+len(delimiter):], true, nil
	}

	closing := []byte("\n" + delimiter)
	idx := bytes.Index(content[start:], closing)
	if idx < 0 {
		return nil, nil, false, ErrMissingClosingDelimiter
	}

	end := start + idx + 1
	return content[start:end], content[end+len(delimiter):], true, nil
}

// Join reassembles a document from a serialized header and a body.
func Join(header []byte, body []byte) []byte {
	out := make([]byte, 0, 2*len(delimiter)+len(header)+len(body))
	out = append(out, delimiter...)
	out = append(out, header...)
	out = append(out, delimiter...)
	out = append(out, body...)
	return out
}

// Parse decodes a raw header into a map.
func Parse(header []byte) (map[string]any, error) {
	if len(header) == 0 {
		return map[string]any{}, nil
	}

	var fields map[string]any
	if err := yaml.Unmarshal(header, &fields); err != nil {
		return nil, err
	}
	if fields == nil {
		fields = map[string]any{}
	}
	return fields, nil
}

// Serialize encodes the fields as YAML with double-quoted values, keeping their
// order (e.g. `title: "Mobile Money"`).
func Serialize(fields []Field) ([]byte, error) {
	if len(fields) == 0 {
		return []byte{}, nil
	}

	n := &yaml.Node{Kind: yaml.MappingNode}
	for _, f := range fields {
		n.Content = append(n.Content,
			&yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: f.Key},
			&yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: f.Value, Style: yaml.DoubleQuotedStyle},
		)
	}

	var buf bytes.Buffer
	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(2)
	if err := enc.Encode(n); err != nil {
		_ = enc.Close()
		return nil, err
	}
	if err := enc.Close(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// Render builds a complete document from the header fields and body.
func Render(fields []Field, body []byte) ([]byte, error) {
	header, err := Serialize(fields)
	if err != nil {
		return nil, err
	}
	return Join(header, body), nil
}
