package parser

import (
	"g5/internal/ast"
	"g5/internal/diag"
	"g5/internal/source"
)

type listKind uint8

const (
	listParams listKind = iota
	listResults
	listRecv
)

// paramEntry is a parameter list entry as written. named entries carry an
// explicit type after the name; bare is set when the entry was a lone
// identifier, which may later turn out to be a name rather than a type.
type paramEntry struct {
	name     source.StringID
	typ      ast.TypeID
	named    bool
	variadic bool
	bare     source.StringID
	span     source.Span
}

type paramIssue struct {
	code diag.Code
	span source.Span
	msg  string
}

// resolveParams applies name back-propagation: in `a, b int` the bare
// entries before a named one become names sharing its type. A list is
// either all named or all unnamed; `...` may only mark the last entry of a
// parameter list.
func resolveParams(entries []paramEntry, kind listKind) ([]ast.Param, *paramIssue) {
	named := false
	for _, e := range entries {
		if e.named {
			named = true
			break
		}
	}

	params := make([]ast.Param, 0, len(entries))
	if !named {
		for _, e := range entries {
			params = append(params, ast.Param{Type: e.typ, Variadic: e.variadic, Span: e.span})
		}
		return params, checkVariadic(params, kind)
	}

	var pending []paramEntry
	for _, e := range entries {
		if !e.named {
			pending = append(pending, e)
			continue
		}
		for _, u := range pending {
			if u.bare == source.NoStringID || u.variadic {
				return nil, &paramIssue{diag.SynMixedParams, u.span, "mixed named and unnamed parameters"}
			}
			params = append(params, ast.Param{Name: u.bare, Type: e.typ, Variadic: e.variadic, Span: u.span})
		}
		pending = pending[:0]
		params = append(params, ast.Param{Name: e.name, Type: e.typ, Variadic: e.variadic, Span: e.span})
	}
	if len(pending) > 0 {
		return nil, &paramIssue{diag.SynMixedParams, pending[0].span, "mixed named and unnamed parameters"}
	}
	return params, checkVariadic(params, kind)
}

func checkVariadic(params []ast.Param, kind listKind) *paramIssue {
	for i, prm := range params {
		if !prm.Variadic {
			continue
		}
		if kind != listParams {
			return &paramIssue{diag.SynVariadicNotLast, prm.Span, "cannot use ... outside a parameter list"}
		}
		if i != len(params)-1 {
			return &paramIssue{diag.SynVariadicNotLast, prm.Span, "can only use ... with final parameter in list"}
		}
	}
	return nil
}
