package goshape

import (
	"context"
	"errors"
	"io"

	eng "github.com/reoring/goshape/internal/engine"
	"github.com/reoring/goshape/i18n"
)

// ParseFrom is the primary entry point. It consumes tokens from the Source,
// builds a generic JSON value, and delegates validation to the Schema.
func ParseFrom(ctx context.Context, s Schema, src Source, opts ...ParseOpt) (any, error) {
	if s == nil {
		return nil, singleIssue(CodeParseError, "nil schema")
	}

	var opt ParseOpt
	if len(opts) > 0 {
		opt = opts[len(opts)-1]
	}
	v, err := decodeAnyFromSource(src, opt)
	if err != nil {
		return nil, toIssues(err)
	}
	return s.ParseValue(ctx, v)
}

// StreamParse validates input by streaming tokens from an io.Reader.
// When MaxBytes is set it enforces the size cap up front, otherwise it
// delegates directly to ParseFrom via the Source driver.
func StreamParse(ctx context.Context, s Schema, r io.Reader, opts ...ParseOpt) (any, error) {
	if len(opts) > 0 && opts[len(opts)-1].MaxBytes > 0 {
		lr := io.LimitReader(r, opts[len(opts)-1].MaxBytes+1)
		data, err := io.ReadAll(lr)
		if err != nil {
			return nil, singleIssue(CodeParseError, err.Error())
		}
		if int64(len(data)) > opts[len(opts)-1].MaxBytes {
			return nil, singleIssue(CodeTruncated, "max bytes exceeded")
		}
		return ParseFrom(ctx, s, JSONBytes(data), opts...)
	}
	return ParseFrom(ctx, s, JSONReader(r), opts...)
}

// ---- helpers (decode, error mapping) ----

func decodeAnyFromSource(src Source, opt ParseOpt) (any, error) {
	engSrc := EngineTokenSource(src)
	enforced := eng.WrapWithEnforcement(engSrc, eng.EnforceOptions{
		RejectDuplicates: opt.OnDuplicateKey == Error,
		MaxDepth:         opt.MaxDepth,
		MaxBytes:         opt.MaxBytes,
	})
	return eng.DecodeAnyFromSource(enforced)
}

func toIssues(err error) Issues {
	if err == nil {
		return nil
	}
	if ii, ok := AsIssues(err); ok {
		return ii
	}
	var ie eng.IssueError
	if errors.As(err, &ie) {
		return AppendIssues(nil, Issue{Code: ie.Code, Path: ie.Path, Message: ie.Message})
	}
	// Anything else out of the decode path is malformed input text.
	return AppendIssues(nil, Issue{Path: "/", Code: CodeInvalidJSON, Message: i18n.T(CodeInvalidJSON, nil) + ": " + err.Error(), Cause: err})
}

func singleIssue(code, msg string) Issues { return AppendIssues(nil, Issue{Code: code, Message: msg}) }
