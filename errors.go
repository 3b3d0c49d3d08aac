package roman

import (
	"errors"
	"fmt"
	"strings"
)

// Issue codes
const (
	CodeInvalidType    = "invalid_type"
	CodeOutOfRange     = "out_of_range"
	CodeInvalidFormat  = "invalid_format"
	CodeParseError     = "parse_error"
	CodeInvalidPointer = "invalid_pointer"
)

// Sentinel errors matched by errors.Is against Issues carrying the
// corresponding code.
var (
	ErrType   = errors.New("roman: value cannot be interpreted as an integer")
	ErrRange  = errors.New("roman: number out of range (must be 1..3999)")
	ErrFormat = errors.New("roman: invalid Roman numeral")
)

// Issue represents a single failure.
type Issue struct {
	Path    string // JSON Pointer (for example: /items/2/year); "/" for scalars.
	Code    string // One of the codes listed above.
	Message string
	Hint    string // Optional: remediation hints.
	Cause   error  // Optional: underlying error.
	// Input is the offending input rendered as text, when there is one.
	Input string
	// Params carries structured parameters (e.g., {"min":1, "max":3999, "got":4000})
	// for i18n and observability.
	Params map[string]any
}

// Issues is a collection of failures that implements error.
type Issues []Issue

// Error summarizes the first few issues.
func (iss Issues) Error() string {
	if len(iss) == 0 {
		return ""
	}
	const maxShown = 3
	b := &strings.Builder{}
	n := len(iss)
	lim := n
	if lim > maxShown {
		lim = maxShown
	}
	for i := 0; i < lim; i++ {
		if i > 0 {
			b.WriteString("; ")
		}
		it := iss[i]
		// e.g. invalid_format at /year: invalid Roman numeral "IIII"
		fmt.Fprintf(b, "%s at %s", it.Code, it.Path)
		if it.Message != "" {
			b.WriteString(": ")
			b.WriteString(it.Message)
		}
	}
	if n > lim {
		fmt.Fprintf(b, "; ... (total %d)", n)
	}
	return b.String()
}

// Is reports whether any issue maps to target, so that
// errors.Is(err, ErrRange) holds for range failures.
func (iss Issues) Is(target error) bool {
	for _, it := range iss {
		if s := sentinel(it.Code); s != nil && s == target {
			return true
		}
	}
	return false
}

func sentinel(code string) error {
	switch code {
	case CodeInvalidType:
		return ErrType
	case CodeOutOfRange:
		return ErrRange
	case CodeInvalidFormat:
		return ErrFormat
	}
	return nil
}

// AppendIssues appends issues to the destination, initializing the slice when
// needed.
func AppendIssues(dst Issues, more ...Issue) Issues {
	if dst == nil {
		dst = Issues{}
	}
	dst = append(dst, more...)
	return dst
}

// AsIssues extracts Issues from an error using errors.As internally.
func AsIssues(err error) (Issues, bool) {
	if err == nil {
		return nil, false
	}
	var iss Issues
	if errors.As(err, &iss) {
		return iss, true
	}
	return nil, false
}

// KindOf returns the code of the first issue carried by err, or "" when err
// does not carry Issues.
func KindOf(err error) string {
	iss, ok := AsIssues(err)
	if !ok || len(iss) == 0 {
		return ""
	}
	return iss[0].Code
}
