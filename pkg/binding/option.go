// Package binding implements view option binding: named options whose
// values come either from literals or from live keypath projections.
//
// Each option moves through a small state machine:
//
//	Unbound ──► BoundStatic              (literal value, set once)
//	Unbound ──► BoundDynamic ──► Unbound (keypath projection, released
//	                                      when the owning view is destroyed)
//
// Dynamic bindings subscribe to an external [Context] and push
// re-evaluated values into the owning view's option slot until released.
package binding

import (
	"strconv"
	"strings"

	"github.com/go-vista/vista/pkg/keypath"
)

// Option declares a named option a view accepts.
type Option struct {
	// Name is the option name as it appears in markup attributes.
	Name string
	// Required makes construction fail when the option has no value
	// and no default.
	Required bool
	// Default is used when no source supplies a value. A nil Default
	// means the option has no default.
	Default any
}

// SourceKind distinguishes literal sources from keypath sources.
type SourceKind int

const (
	// SourceLiteral is a fixed value known at parse time.
	SourceLiteral SourceKind = iota
	// SourceKeypath is a live projection of a keypath expression.
	SourceKeypath
)

// Source is a parsed option value source: either a literal or a
// keypath expression.
type Source struct {
	Kind    SourceKind
	Literal any
	Expr    keypath.Expr
	Raw     string
}

// Literal wraps a fixed value as a static source.
func Literal(v any) Source {
	return Source{Kind: SourceLiteral, Literal: v}
}

// Keypath parses a keypath expression as a dynamic source.
func Keypath(expr string) (Source, error) {
	e, err := keypath.Parse(expr)
	if err != nil {
		return Source{}, err
	}
	return Source{Kind: SourceKeypath, Expr: e, Raw: expr}, nil
}

// ParseSource interprets a raw markup attribute value.
//
// Quoted strings, numbers, and booleans bind statically; anything that
// parses as a keypath expression binds dynamically. Values that are
// neither fall back to literal strings.
func ParseSource(raw string) Source {
	s := strings.TrimSpace(raw)

	if len(s) >= 2 {
		if (s[0] == '\'' && s[len(s)-1] == '\'') || (s[0] == '"' && s[len(s)-1] == '"') {
			return Source{Kind: SourceLiteral, Literal: s[1 : len(s)-1], Raw: raw}
		}
	}
	switch s {
	case "true":
		return Source{Kind: SourceLiteral, Literal: true, Raw: raw}
	case "false":
		return Source{Kind: SourceLiteral, Literal: false, Raw: raw}
	}
	if n, err := strconv.Atoi(s); err == nil {
		return Source{Kind: SourceLiteral, Literal: n, Raw: raw}
	}
	if f, err := strconv.ParseFloat(s, 64); err == nil {
		return Source{Kind: SourceLiteral, Literal: f, Raw: raw}
	}
	if expr, err := keypath.Parse(s); err == nil {
		return Source{Kind: SourceKeypath, Expr: expr, Raw: raw}
	}
	return Source{Kind: SourceLiteral, Literal: s, Raw: raw}
}
