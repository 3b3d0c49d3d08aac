package roman

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/reoring/roman/i18n"
)

// PathRef builds JSON Pointer paths in a chain-safe way and creates Issues.
type PathRef interface {
	Field(name string) PathRef
	Index(i int) PathRef
	Segments() []string
	Pointer() string
	Issue(code, msg string, kv ...any) Issue
}

// RootPath returns the PathRef of a document root ("/").
func RootPath() PathRef { return &pathRef{parts: nil} }

type pathRef struct {
	parts []string // unescaped segments
}

func (p *pathRef) Field(name string) PathRef {
	return &pathRef{parts: append(append([]string{}, p.parts...), name)}
}

func (p *pathRef) Index(i int) PathRef {
	return &pathRef{parts: append(append([]string{}, p.parts...), strconv.Itoa(i))}
}

func (p *pathRef) Segments() []string { return p.parts }

func (p *pathRef) Pointer() string {
	if len(p.parts) == 0 {
		return "/"
	}
	b := &strings.Builder{}
	for _, s := range p.parts {
		b.WriteByte('/')
		// escape '~' -> '~0', '/' -> '~1' per RFC6901
		b.WriteString(strings.ReplaceAll(strings.ReplaceAll(s, "~", "~0"), "/", "~1"))
	}
	return b.String()
}

func (p *pathRef) Issue(code, msg string, kv ...any) Issue {
	m := map[string]any{}
	for i := 0; i+1 < len(kv); i += 2 {
		m[fmt.Sprint(kv[i])] = kv[i+1]
	}
	return Issue{Path: p.Pointer(), Code: code, Message: msg, Params: m}
}

// SplitPointer parses an RFC 6901 JSON Pointer into unescaped segments.
// Both "" and "/" denote the root.
func SplitPointer(ptr string) ([]string, error) {
	if ptr == "" || ptr == "/" {
		return nil, nil
	}
	if ptr[0] != '/' {
		return nil, pointerIssue(ptr)
	}
	raw := strings.Split(ptr[1:], "/")
	out := make([]string, 0, len(raw))
	for _, s := range raw {
		if strings.Contains(strings.ReplaceAll(strings.ReplaceAll(s, "~0", ""), "~1", ""), "~") {
			return nil, pointerIssue(ptr)
		}
		out = append(out, strings.ReplaceAll(strings.ReplaceAll(s, "~1", "/"), "~0", "~"))
	}
	return out, nil
}

func pointerIssue(ptr string) Issues {
	return Issues{{Path: "/", Code: CodeInvalidPointer, Message: i18n.T(CodeInvalidPointer, ptr), Input: ptr}}
}
