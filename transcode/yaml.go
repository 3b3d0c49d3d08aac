package transcode

import (
	"bytes"
	"context"
	"errors"
	"io"
	"strconv"

	"gopkg.in/yaml.v3"

	"github.com/reoring/roman"
	"github.com/reoring/roman/i18n"
)

// YAML converts the selected values of every document in a YAML stream.
// Conversion works on node trees, so key order, comments and anchors survive.
// Aliases follow their anchor; an alias named by an explicit path is reported
// as invalid_type.
func YAML(ctx context.Context, data []byte, opt Options) ([]byte, error) {
	if err := checkSize(data, opt); err != nil {
		return nil, err
	}
	sel, err := compile(opt)
	if err != nil {
		return nil, err
	}
	dec := yaml.NewDecoder(bytes.NewReader(data))
	var docs []*yaml.Node
	for {
		var n yaml.Node
		if err := dec.Decode(&n); err != nil {
			if errors.Is(err, io.EOF) {
				break
			}
			return nil, parseIssue(err)
		}
		docs = append(docs, &n)
	}

	w := &walker{ctx: ctx, opt: opt, sel: sel}
	for _, d := range docs {
		w.yamlNode(roman.RootPath(), d)
	}
	if err := w.result(); err != nil {
		return nil, err
	}

	var buf bytes.Buffer
	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(2)
	for _, d := range docs {
		if err := enc.Encode(d); err != nil {
			return nil, err
		}
	}
	if err := enc.Close(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func (w *walker) yamlNode(p roman.PathRef, n *yaml.Node) {
	if w.stop() {
		return
	}
	switch n.Kind {
	case yaml.DocumentNode:
		for _, c := range n.Content {
			w.yamlNode(p, c)
		}
	case yaml.MappingNode:
		if w.sel.explicit(p.Segments()) {
			w.visit(p, map[string]any{})
		}
		for i := 0; i+1 < len(n.Content); i += 2 {
			w.yamlNode(p.Field(n.Content[i].Value), n.Content[i+1])
		}
	case yaml.SequenceNode:
		if w.sel.explicit(p.Segments()) {
			w.visit(p, []any{})
		}
		for i, c := range n.Content {
			w.yamlNode(p.Index(i), c)
		}
	case yaml.AliasNode:
		// The anchor is converted where it is defined; an alias cannot be
		// rewritten on its own.
		if w.sel.explicit(p.Segments()) {
			w.fail(p, aliasIssue(n))
		}
	case yaml.ScalarNode:
		var v any
		if err := n.Decode(&v); err != nil {
			v = n.Value
		}
		out, ok := w.visit(p, v)
		if !ok {
			return
		}
		switch t := out.(type) {
		case int:
			n.Value, n.Tag = strconv.Itoa(t), "!!int"
		case string:
			n.Value, n.Tag = t, "!!str"
		}
		n.Style = 0
	}
}

func aliasIssue(n *yaml.Node) roman.Issues {
	name := "*" + n.Value
	return roman.Issues{{
		Code:    roman.CodeInvalidType,
		Message: i18n.T(roman.CodeInvalidType, "alias "+name),
		Hint:    "select the anchored value instead",
		Input:   name,
		Params:  map[string]any{"type": "alias"},
	}}
}
