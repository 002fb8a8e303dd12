// Package keypath implements dotted keypath expressions and a small
// observable data context that resolves them.
//
// A keypath expression names a value inside a nested data context and may
// pipe it through named filters:
//
//	order.number
//	order.customer.name | upper
//	items | count
//
// The [Store] type is a reference implementation of the observation
// contract the view layer consumes: hosts with their own data layer can
// supply any implementation of the same Resolve/Observe pair.
package keypath

import (
	"fmt"
	"strings"
)

// Expr is a parsed keypath expression: a dotted path plus an ordered
// list of filter names applied to the resolved value.
type Expr struct {
	Path    []string
	Filters []string
}

// Parse parses a keypath expression of the form
// "seg.seg.seg | filter | filter".
func Parse(s string) (Expr, error) {
	parts := strings.Split(s, "|")
	raw := strings.TrimSpace(parts[0])
	if raw == "" {
		return Expr{}, fmt.Errorf("empty keypath in %q", s)
	}

	var expr Expr
	for _, seg := range strings.Split(raw, ".") {
		seg = strings.TrimSpace(seg)
		if !isIdent(seg) {
			return Expr{}, fmt.Errorf("invalid keypath segment %q in %q", seg, s)
		}
		expr.Path = append(expr.Path, seg)
	}

	for _, f := range parts[1:] {
		f = strings.TrimSpace(f)
		if !isIdent(f) {
			return Expr{}, fmt.Errorf("invalid filter name %q in %q", f, s)
		}
		expr.Filters = append(expr.Filters, f)
	}
	return expr, nil
}

// Valid reports whether s parses as a keypath expression.
func Valid(s string) bool {
	_, err := Parse(s)
	return err == nil
}

// String reassembles the expression in canonical form.
func (e Expr) String() string {
	var sb strings.Builder
	sb.WriteString(strings.Join(e.Path, "."))
	for _, f := range e.Filters {
		sb.WriteString(" | ")
		sb.WriteString(f)
	}
	return sb.String()
}

// isIdent reports whether s is a plain identifier: a letter or underscore
// followed by letters, digits, or underscores.
func isIdent(s string) bool {
	if s == "" {
		return false
	}
	for i, r := range s {
		switch {
		case r == '_', r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z':
		case r >= '0' && r <= '9':
			if i == 0 {
				return false
			}
		default:
			return false
		}
	}
	return true
}

// overlaps reports whether a change at path p affects an observer of path o:
// either path is a prefix of the other. Setting "order" re-resolves
// "order.number", and setting "order.number" re-resolves "order".
func overlaps(p, o []string) bool {
	n := len(p)
	if len(o) < n {
		n = len(o)
	}
	for i := 0; i < n; i++ {
		if p[i] != o[i] {
			return false
		}
	}
	return true
}
