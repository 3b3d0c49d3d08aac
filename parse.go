package roman

import (
	"context"
	"fmt"

	"github.com/reoring/roman/i18n"
)

// ParseFrom decodes one document from src and delegates validation to s.
// Decoding failures are reported as parse_error Issues.
func ParseFrom[T any](ctx context.Context, s Schema[T], src Source) (T, error) {
	var zero T
	if s == nil {
		return zero, singleIssue(CodeParseError, "nil schema")
	}
	v, err := src.Decode()
	if err != nil {
		return zero, toIssues(err)
	}
	return s.Parse(ctx, v)
}

// ParseFromWithMeta is like ParseFrom and also records the scalar as it
// was written, for use with Codec.EncodePreserving.
func ParseFromWithMeta[T any](ctx context.Context, s Schema[T], src Source) (Decoded[T], error) {
	var zero Decoded[T]
	if s == nil {
		return zero, singleIssue(CodeParseError, "nil schema")
	}
	v, err := src.Decode()
	if err != nil {
		return zero, toIssues(err)
	}
	out, err := s.Parse(ctx, v)
	if err != nil {
		return zero, err
	}
	return Decoded[T]{Value: out, Raw: rawText(v)}, nil
}

func rawText(v any) string {
	switch t := v.(type) {
	case nil:
		return ""
	case string:
		return t
	}
	return fmt.Sprint(v)
}

func toIssues(err error) Issues {
	if err == nil {
		return nil
	}
	if ii, ok := AsIssues(err); ok {
		return ii
	}
	return AppendIssues(nil, Issue{Path: "/", Code: CodeParseError, Message: i18n.T(CodeParseError, err), Cause: err})
}

func singleIssue(code, msg string) Issues {
	return AppendIssues(nil, Issue{Path: "/", Code: code, Message: msg})
}
