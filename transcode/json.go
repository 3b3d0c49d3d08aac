package transcode

import (
	"bytes"
	"context"
	"errors"
	"io"
	"sort"
	"strconv"

	json "github.com/goccy/go-json"

	"github.com/reoring/roman"
)

// JSON converts the selected values of a single JSON document. Numbers are
// carried as json.Number so untouched values keep their spelling; object
// keys are emitted sorted.
func JSON(ctx context.Context, data []byte, opt Options) ([]byte, error) {
	if err := checkSize(data, opt); err != nil {
		return nil, err
	}
	sel, err := compile(opt)
	if err != nil {
		return nil, err
	}
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()
	var doc any
	if err := dec.Decode(&doc); err != nil {
		return nil, parseIssue(err)
	}
	var extra any
	if err := dec.Decode(&extra); !errors.Is(err, io.EOF) {
		if err == nil {
			err = errors.New("unexpected data after top-level value")
		}
		return nil, parseIssue(err)
	}

	w := &walker{ctx: ctx, opt: opt, sel: sel}
	doc = w.jsonValue(roman.RootPath(), doc)
	if err := w.result(); err != nil {
		return nil, err
	}
	if opt.Indent != "" {
		return json.MarshalIndent(doc, "", opt.Indent)
	}
	return json.Marshal(doc)
}

func (w *walker) jsonValue(p roman.PathRef, v any) any {
	if w.stop() {
		return v
	}
	switch t := v.(type) {
	case map[string]any:
		if w.sel.explicit(p.Segments()) {
			w.visit(p, t)
		}
		keys := make([]string, 0, len(t))
		for k := range t {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		for _, k := range keys {
			t[k] = w.jsonValue(p.Field(k), t[k])
		}
		return t
	case []any:
		if w.sel.explicit(p.Segments()) {
			w.visit(p, t)
		}
		for i := range t {
			t[i] = w.jsonValue(p.Index(i), t[i])
		}
		return t
	}
	out, ok := w.visit(p, v)
	if !ok {
		return v
	}
	if n, isInt := out.(int); isInt {
		return json.Number(strconv.Itoa(n))
	}
	return out
}
