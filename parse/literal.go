package parse

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/gosoy/sauce/data"
)

var unescapes = map[rune]rune{
	'\\': '\\',
	'\'': '\'',
	'n':  '\n',
	'r':  '\r',
	't':  '\t',
	'b':  '\b',
	'f':  '\f',
}

var escapes = make(map[rune]rune)

func init() {
	for k, v := range unescapes {
		escapes[v] = k
	}
}

// ParseLiteral parses a primitive literal: null, a boolean, an integer
// (decimal or 0x hex), a float, or a single-quoted string.
func ParseLiteral(s string) (data.Value, error) {
	switch {
	case s == "null":
		return data.Null{}, nil
	case s == "true", s == "false":
		return data.Bool(s == "true"), nil
	case strings.HasPrefix(s, "'"):
		var str, err = unquoteString(s)
		if err != nil {
			return nil, err
		}
		return data.String(str), nil
	case strings.HasPrefix(s, "0x"):
		var n, err = strconv.ParseInt(s[2:], 16, 64)
		if err != nil {
			return nil, fmt.Errorf("not a primitive literal: %q", s)
		}
		return data.Int(n), nil
	}
	if n, err := strconv.ParseInt(s, 10, 64); err == nil {
		return data.Int(n), nil
	}
	if strings.ContainsAny(s, ".eE") {
		if f, err := strconv.ParseFloat(s, 64); err == nil {
			return data.Float(f), nil
		}
	}
	return nil, fmt.Errorf("not a primitive literal: %q", s)
}

// FormatLiteral is the inverse of ParseLiteral.  The value must be one of
// the primitive types that ParseLiteral produces.
func FormatLiteral(v data.Value) string {
	if str, ok := v.(data.String); ok {
		return quoteString(string(str))
	}
	return v.String()
}

// quoteString single-quotes the given string, escaping what the literal
// syntax requires.
func quoteString(s string) string {
	var q = make([]rune, 1, len(s)+10)
	q[0] = '\''
	for _, ch := range s {
		if seq, ok := escapes[ch]; ok {
			q = append(q, '\\', seq)
			continue
		}
		q = append(q, ch)
	}
	return string(append(q, '\''))
}

// unquoteString strips the surrounding single quotes from a string literal
// and expands the escape sequences inside.
func unquoteString(s string) (string, error) {
	if len(s) < 2 || s[0] != '\'' || s[len(s)-1] != '\'' {
		return "", errors.New("string not surrounded by single quotes")
	}
	s = s[1 : len(s)-1]
	if strings.IndexByte(s, '\\') == -1 && strings.IndexByte(s, '\'') == -1 {
		return s, nil
	}

	var result = make([]rune, 0, len(s))
	var escaping = false
	for i := 0; i < len(s); {
		r, size := utf8.DecodeRuneInString(s[i:])
		i += size

		if escaping {
			if r == 'u' {
				if i+4 > len(s) {
					return "", errors.New("error scanning unicode escape, expected \\uNNNN")
				}
				num, err := strconv.ParseInt(s[i:i+4], 16, 0)
				if err != nil {
					return "", err
				}
				r = rune(num)
				i += 4
			} else {
				repl, ok := unescapes[r]
				if !ok {
					return "", fmt.Errorf("unrecognized escape sequence: \\%c", r)
				}
				r = repl
			}
		}

		escaping = r == '\\' && !escaping
		if !escaping {
			result = append(result, r)
		}
	}
	return string(result), nil
}
