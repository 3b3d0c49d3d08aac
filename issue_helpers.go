package roman

import (
	"fmt"
	"strconv"

	"github.com/reoring/roman/i18n"
)

// IssueAt creates an Issue at the given path with provided code, message and params map.
// This is a convenience helper to improve readability at call sites with many parameters.
func IssueAt(p PathRef, code, msg string, params map[string]any) Issue {
	return Issue{Path: p.Pointer(), Code: code, Message: msg, Params: params}
}

func typeIssue(v any) Issues {
	name := fmt.Sprintf("%T", v)
	if v == nil {
		name = "nil"
	}
	return Issues{{
		Path:    "/",
		Code:    CodeInvalidType,
		Message: i18n.T(CodeInvalidType, name),
		Input:   fmt.Sprint(v),
		Params:  map[string]any{"type": name},
	}}
}

func rangeIssue(got any) Issues {
	return Issues{{
		Path:    "/",
		Code:    CodeOutOfRange,
		Message: i18n.T(CodeOutOfRange, fmt.Sprint(got), strconv.Itoa(MinValue), strconv.Itoa(MaxValue)),
		Input:   fmt.Sprint(got),
		Params:  map[string]any{"min": MinValue, "max": MaxValue, "got": got},
	}}
}

func formatIssue(s string) Issues {
	return Issues{{
		Path:    "/",
		Code:    CodeInvalidFormat,
		Message: i18n.T(CodeInvalidFormat, s),
		Hint:    "expected a canonical numeral between I and MMMCMXCIX",
		Input:   s,
	}}
}
