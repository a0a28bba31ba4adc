// Package shellargs splits shell like argument templates into single arguments.
//
// It understands single and double quotes, backslash escapes and
// "$name" / "${name}" variable references.
package shellargs

import (
	"errors"
	"fmt"
	"strings"
	"unicode"
)

// ErrTemplateParse is matched by every error returned while tokenizing
var ErrTemplateParse = errors.New("invalid argument template")

// ParseError is returned for unterminated quotes, escapes and variable references
type ParseError struct {
	// Offset is the rune offset of the construct that was not terminated
	Offset int
	Reason string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("%s at offset %d", e.Reason, e.Offset)
}

// Is makes ParseError match ErrTemplateParse
func (e *ParseError) Is(target error) bool {
	return target == ErrTemplateParse
}

// Tokenizer returns the tokens of one input string one by one
type Tokenizer struct {
	chars    []rune
	pos      int
	strategy Strategy
	err      error
}

// New returns a tokenizer positioned at the start of input
func New(input string, s Strategy) *Tokenizer {
	return &Tokenizer{chars: []rune(input), strategy: s}
}

// Next returns the next token. ok is false once only whitespace is left.
// After an error every following call returns the same error.
func (t *Tokenizer) Next() (token string, ok bool, err error) {
	if t.err != nil {
		return "", false, t.err
	}

	for t.pos < len(t.chars) && unicode.IsSpace(t.chars[t.pos]) {
		t.pos++
	}
	if t.pos >= len(t.chars) {
		return "", false, nil
	}

	var b strings.Builder
	for t.pos < len(t.chars) && !unicode.IsSpace(t.chars[t.pos]) {
		var err error
		switch c := t.chars[t.pos]; c {
		case '$':
			err = t.dollar(&b)
		case '\'':
			err = t.singleQuote(&b)
		case '"':
			err = t.doubleQuote(&b)
		case '\\':
			err = t.escape(&b)
		default:
			b.WriteRune(c)
			t.pos++
		}
		if err != nil {
			t.err = err
			return "", false, err
		}
	}
	return b.String(), true, nil
}

// keep reports if decoration (quotes, escaping backslashes) ends up in the output
func (t *Tokenizer) keep() bool {
	return !t.strategy.expand
}

func (t *Tokenizer) escape(b *strings.Builder) error {
	at := t.pos
	t.pos++
	if t.pos >= len(t.chars) {
		return &ParseError{at, "backslash at end of input"}
	}
	c := t.chars[t.pos]
	t.pos++

	// line continuation
	if c == '\n' || c == '\r' {
		if t.keep() {
			b.WriteRune('\\')
			b.WriteRune(c)
		}
		return nil
	}
	if t.keep() {
		b.WriteRune('\\')
	}
	b.WriteRune(c)
	return nil
}

func (t *Tokenizer) singleQuote(b *strings.Builder) error {
	at := t.pos
	if t.keep() {
		b.WriteRune('\'')
	}
	t.pos++
	for t.pos < len(t.chars) {
		c := t.chars[t.pos]
		t.pos++
		if c == '\'' {
			if t.keep() {
				b.WriteRune('\'')
			}
			return nil
		}
		b.WriteRune(c)
	}
	return &ParseError{at, "unterminated single quote"}
}

func (t *Tokenizer) doubleQuote(b *strings.Builder) error {
	at := t.pos
	unterminated := &ParseError{at, "unterminated double quote"}
	if t.keep() {
		b.WriteRune('"')
	}
	t.pos++
	for t.pos < len(t.chars) {
		switch c := t.chars[t.pos]; c {
		case '\\':
			t.pos++
			if t.pos >= len(t.chars) {
				return unterminated
			}
			switch n := t.chars[t.pos]; n {
			case '"', '$':
				if t.keep() {
					b.WriteRune('\\')
				}
				b.WriteRune(n)
				t.pos++
			case '\n', '\r':
				if t.keep() {
					b.WriteRune('\\')
					b.WriteRune(n)
				}
				t.pos++
			default:
				// not an escape, the backslash is literal and n is read normally
				b.WriteRune('\\')
			}
		case '"':
			if t.keep() {
				b.WriteRune('"')
			}
			t.pos++
			return nil
		case '$':
			if err := t.dollar(b); err != nil {
				return err
			}
		default:
			b.WriteRune(c)
			t.pos++
		}
	}
	return unterminated
}

func (t *Tokenizer) dollar(b *strings.Builder) error {
	at := t.pos
	if !t.strategy.expand {
		b.WriteRune('$')
		t.pos++
		return nil
	}

	start := at + 1
	if start < len(t.chars) && t.chars[start] == '{' {
		for i := start + 1; i < len(t.chars); i++ {
			if t.chars[i] == '}' {
				b.WriteString(t.strategy.lookup(string(t.chars[start+1 : i])))
				t.pos = i + 1
				return nil
			}
		}
		return &ParseError{at, "unterminated variable reference"}
	}

	end := start
	for end < len(t.chars) && isIdentifier(t.chars[end]) {
		end++
	}
	if end == start {
		// a lonely "$", the following rune is read normally
		b.WriteRune('$')
		t.pos = start
		return nil
	}
	b.WriteString(t.strategy.lookup(string(t.chars[start:end])))
	t.pos = end
	return nil
}

func isIdentifier(c rune) bool {
	return c == '_' ||
		(c >= 'a' && c <= 'z') ||
		(c >= 'A' && c <= 'Z') ||
		(c >= '0' && c <= '9')
}

// Split returns all tokens of input
func Split(input string, s Strategy) ([]string, error) {
	t := New(input, s)
	tokens := make([]string, 0)
	for {
		token, ok, err := t.Next()
		if err != nil {
			return nil, err
		}
		if !ok {
			return tokens, nil
		}
		tokens = append(tokens, token)
	}
}

// First returns the first token of input. If input has no tokens it is returned unchanged.
func First(input string, s Strategy) (string, error) {
	token, ok, err := New(input, s).Next()
	if err != nil {
		return "", err
	}
	if !ok {
		return input, nil
	}
	return token, nil
}
