// Package transcode rewrites values inside JSON and YAML documents between
// Roman numerals and integers.
//
// Values are selected by JSON Pointer paths, where a "*" segment matches any
// object key or array index. Explicitly selected values that cannot be
// converted are reported as roman.Issues carrying their pointer. With All
// set, every convertible scalar is rewritten and the rest are left alone.
package transcode

import (
	"context"
	"strconv"
	"strings"

	"github.com/reoring/roman"
	"github.com/reoring/roman/i18n"
)

// Direction selects the conversion applied to selected values.
type Direction int

const (
	ToInteger Direction = iota // numeral strings -> integers
	ToRoman                    // integers -> numeral strings
)

func (d Direction) String() string {
	switch d {
	case ToInteger:
		return "int"
	case ToRoman:
		return "roman"
	}
	return "Direction(" + strconv.Itoa(int(d)) + ")"
}

// ParseDirection maps "int"/"integer" and "roman" to a Direction.
func ParseDirection(s string) (Direction, bool) {
	switch s {
	case "int", "integer":
		return ToInteger, true
	case "roman":
		return ToRoman, true
	}
	return 0, false
}

// Options configures a conversion.
type Options struct {
	Direction Direction
	// Paths are JSON Pointers of the values to convert.
	Paths []string
	// All converts every eligible scalar in addition to Paths.
	All bool
	// Lowercase emits lowercase numerals when converting ToRoman.
	Lowercase bool
	// FailFast stops at the first issue instead of collecting them all.
	FailFast bool
	// MaxBytes rejects larger inputs when positive.
	MaxBytes int64
	// Indent is used for JSON output; empty means compact.
	Indent string
}

// selector matches document paths against the compiled Paths.
type selector struct {
	patterns [][]string
	all      bool
}

func compile(opt Options) (selector, error) {
	sel := selector{all: opt.All}
	var iss roman.Issues
	for _, p := range opt.Paths {
		segs, err := roman.SplitPointer(p)
		if err != nil {
			if more, ok := roman.AsIssues(err); ok {
				iss = roman.AppendIssues(iss, more...)
				if opt.FailFast {
					break
				}
				continue
			}
			return selector{}, err
		}
		sel.patterns = append(sel.patterns, segs)
	}
	if len(iss) > 0 {
		return selector{}, iss
	}
	return sel, nil
}

// explicit reports whether path is named by one of the patterns.
func (s selector) explicit(path []string) bool {
	for _, p := range s.patterns {
		if len(p) != len(path) {
			continue
		}
		ok := true
		for i := range p {
			if p[i] != "*" && p[i] != path[i] {
				ok = false
				break
			}
		}
		if ok {
			return true
		}
	}
	return false
}

// walker carries the state shared by the JSON and YAML traversals.
type walker struct {
	ctx    context.Context
	opt    Options
	sel    selector
	issues roman.Issues
}

// stop reports whether traversal should end: on cancellation, or on the
// first issue in fail-fast mode.
func (w *walker) stop() bool {
	if w.ctx.Err() != nil {
		return true
	}
	return w.opt.FailFast && len(w.issues) > 0
}

func (w *walker) fail(p roman.PathRef, err error) {
	iss, ok := roman.AsIssues(err)
	if !ok {
		iss = roman.Issues{{Code: roman.CodeParseError, Message: i18n.T(roman.CodeParseError, err), Cause: err}}
	}
	for _, it := range iss {
		it.Path = p.Pointer()
		w.issues = roman.AppendIssues(w.issues, it)
	}
}

// result returns the error to report once traversal is over.
func (w *walker) result() error {
	if err := w.ctx.Err(); err != nil {
		return err
	}
	if len(w.issues) > 0 {
		return w.issues
	}
	return nil
}

func (w *walker) numeral(n int) (string, error) {
	s, err := roman.Encode(n)
	if err != nil {
		return "", err
	}
	if w.opt.Lowercase {
		return strings.ToLower(s), nil
	}
	return s, nil
}

// convert applies the configured direction to a decoded scalar. Containers
// and scalars of the wrong type fail with invalid_type.
func (w *walker) convert(v any) (any, error) {
	switch w.opt.Direction {
	case ToRoman:
		n, err := roman.IntegerSchema().Parse(w.ctx, v)
		if err != nil {
			return nil, err
		}
		return w.numeral(n)
	default:
		if err := roman.NumeralSchema().TypeCheck(w.ctx, v); err != nil {
			return nil, err
		}
		return roman.Decode(v.(string))
	}
}

// visit decides what happens to the value at p: explicit selections report
// failures, All selections skip them silently.
func (w *walker) visit(p roman.PathRef, v any) (any, bool) {
	explicit := w.sel.explicit(p.Segments())
	if !explicit && !w.sel.all {
		return nil, false
	}
	out, err := w.convert(v)
	if err != nil {
		if explicit {
			w.fail(p, err)
		}
		return nil, false
	}
	return out, true
}

func checkSize(data []byte, opt Options) error {
	if opt.MaxBytes > 0 && int64(len(data)) > opt.MaxBytes {
		msg := "input exceeds " + strconv.FormatInt(opt.MaxBytes, 10) + " bytes"
		return roman.Issues{{
			Path:    "/",
			Code:    roman.CodeParseError,
			Message: i18n.T(roman.CodeParseError, msg),
			Params:  map[string]any{"max": opt.MaxBytes, "got": len(data)},
		}}
	}
	return nil
}

func parseIssue(err error) roman.Issues {
	return roman.Issues{{Path: "/", Code: roman.CodeParseError, Message: i18n.T(roman.CodeParseError, err), Cause: err}}
}
