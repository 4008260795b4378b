package template

import (
	"fmt"
	"strings"
	"unicode"

	"github.com/arthur-debert/tplgen/pkg/errors"
)

// Engine renders templates using a fixed pair of delimiters
type Engine struct {
	start           rune
	end             rune
	allowUnresolved bool
}

// Option configures an Engine
type Option func(*Engine)

// WithAllowUnresolved keeps placeholders without a matching attribute in the
// output instead of failing
func WithAllowUnresolved(allow bool) Option {
	return func(e *Engine) {
		e.allowUnresolved = allow
	}
}

// New creates an engine for the given delimiters. Delimiters that could be
// part of an identifier, or whitespace, are rejected.
func New(start, end rune, opts ...Option) (*Engine, error) {
	for _, d := range []struct {
		name string
		r    rune
	}{{"start", start}, {"end", end}} {
		if err := validateDelimiter(d.name, d.r); err != nil {
			return nil, err
		}
	}

	e := &Engine{start: start, end: end}
	for _, opt := range opts {
		opt(e)
	}
	return e, nil
}

// Render is a convenience wrapper that builds a strict engine and renders
// text with it
func Render(text string, start, end rune, attributes map[string]string) (string, error) {
	e, err := New(start, end)
	if err != nil {
		return "", err
	}
	return e.Render(text, attributes)
}

// Delimiters returns the start and end delimiters
func (e *Engine) Delimiters() (rune, rune) {
	return e.start, e.end
}

// Render expands every placeholder in text using attributes
func (e *Engine) Render(text string, attributes map[string]string) (string, error) {
	runes := []rune(text)
	n := len(runes)

	var out strings.Builder
	out.Grow(len(text))

	for i := 0; i < n; {
		r := runes[i]
		switch {
		case r == e.start:
			if i+1 < n && runes[i+1] == e.start {
				out.WriteRune(e.start)
				i += 2
				continue
			}

			j := i + 1
			for j < n && runes[j] != e.end {
				j++
			}
			if j >= n {
				return "", e.malformed(runes, i, "unterminated placeholder")
			}

			name := string(runes[i+1 : j])
			if name == "" {
				return "", e.malformed(runes, i, "empty placeholder")
			}
			if !IsIdentifier(name) {
				return "", e.malformed(runes, i, fmt.Sprintf("invalid placeholder name %q", name))
			}

			value, ok := attributes[name]
			if !ok {
				if !e.allowUnresolved {
					line, col := position(runes, i)
					return "", errors.Newf(errors.ErrUnresolvedAttribute,
						"unresolved attribute %q at line %d, column %d", name, line, col).
						WithDetail(errors.DetailAttribute, name).
						WithDetail(errors.DetailLine, line).
						WithDetail(errors.DetailColumn, col)
				}
				value = string(runes[i : j+1])
			}
			out.WriteString(value)
			i = j + 1

		case r == e.end && e.end != e.start:
			out.WriteRune(r)
			if i+1 < n && runes[i+1] == e.end {
				i += 2
			} else {
				i++
			}

		default:
			out.WriteRune(r)
			i++
		}
	}

	return out.String(), nil
}

// IsIdentifier reports whether name is a valid placeholder identifier
func IsIdentifier(name string) bool {
	if name == "" {
		return false
	}
	for _, r := range name {
		if !isIdentRune(r) {
			return false
		}
	}
	return true
}

func isIdentRune(r rune) bool {
	return r == '_' || unicode.IsLetter(r) || unicode.IsDigit(r)
}

func validateDelimiter(which string, r rune) error {
	switch {
	case r == 0 || r == unicode.ReplacementChar:
		return errors.Newf(errors.ErrConfigValid, "%s delimiter is not set", which)
	case unicode.IsSpace(r):
		return errors.Newf(errors.ErrConfigValid, "%s delimiter cannot be whitespace", which)
	case isIdentRune(r):
		return errors.Newf(errors.ErrConfigValid, "%s delimiter %q cannot be a letter, digit or underscore", which, r)
	}
	return nil
}

func (e *Engine) malformed(runes []rune, at int, reason string) error {
	line, col := position(runes, at)
	return errors.Newf(errors.ErrMalformedTemplate, "%s at line %d, column %d", reason, line, col).
		WithDetail(errors.DetailLine, line).
		WithDetail(errors.DetailColumn, col)
}

// position returns the 1-based line and column of runes[at]
func position(runes []rune, at int) (int, int) {
	line, col := 1, 1
	for _, r := range runes[:at] {
		if r == '\n' {
			line++
			col = 1
			continue
		}
		col++
	}
	return line, col
}
