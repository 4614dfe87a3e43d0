// Package soytype models the type expressions that appear in template
// parameter declarations, e.g. "string" or "map<string, list<int>>".
package soytype

import (
	"errors"
	"fmt"
)

// Kind identifies a type constructor.
type Kind int

const (
	Any Kind = iota
	Unknown
	Null
	Bool
	Int
	Float
	Number
	String
	HTML
	JS
	CSS
	URI
	TrustedResourceURI
	Attributes
	List
	Map
)

var kindNames = [...]string{
	Any:                "any",
	Unknown:            "?",
	Null:               "null",
	Bool:               "bool",
	Int:                "int",
	Float:              "float",
	Number:             "number",
	String:             "string",
	HTML:               "html",
	JS:                 "js",
	CSS:                "css",
	URI:                "uri",
	TrustedResourceURI: "trusted_resource_uri",
	Attributes:         "attributes",
	List:               "list",
	Map:                "map",
}

func (k Kind) String() string {
	if int(k) < len(kindNames) {
		return kindNames[k]
	}
	return fmt.Sprintf("kind(%d)", int(k))
}

// Type is a parsed type expression.  Args holds the element type of a list
// and the key and value types of a map; it is empty for every other kind.
type Type struct {
	Kind Kind
	Args []Type
}

// ListOf returns the type list<elem>.
func ListOf(elem Type) Type { return Type{Kind: List, Args: []Type{elem}} }

// MapOf returns the type map<key, value>.
func MapOf(key, value Type) Type { return Type{Kind: Map, Args: []Type{key, value}} }

// String returns the canonical form of the type expression.
func (t Type) String() string {
	switch t.Kind {
	case List:
		return "list<" + t.Args[0].String() + ">"
	case Map:
		return "map<" + t.Args[0].String() + ", " + t.Args[1].String() + ">"
	}
	return t.Kind.String()
}

// Equal reports whether two type expressions are structurally identical.
func (t Type) Equal(other Type) bool {
	if t.Kind != other.Kind || len(t.Args) != len(other.Args) {
		return false
	}
	for i := range t.Args {
		if !t.Args[i].Equal(other.Args[i]) {
			return false
		}
	}
	return true
}

var simpleKinds = map[string]Kind{
	"any":                  Any,
	"null":                 Null,
	"bool":                 Bool,
	"int":                  Int,
	"float":                Float,
	"number":               Number,
	"string":               String,
	"html":                 HTML,
	"js":                   JS,
	"css":                  CSS,
	"uri":                  URI,
	"trusted_resource_uri": TrustedResourceURI,
	"attributes":           Attributes,
}

// Parse parses a type expression.  Errors carry no source position; callers
// that know one attach it.
func Parse(input string) (Type, error) {
	var p = parser{input: input}
	t, err := p.parseType()
	if err != nil {
		return Type{}, err
	}
	p.skipSpace()
	if p.pos < len(p.input) {
		return Type{}, fmt.Errorf("unexpected %q after type", p.input[p.pos:])
	}
	return t, nil
}

type parser struct {
	input string
	pos   int
}

func (p *parser) parseType() (Type, error) {
	p.skipSpace()
	if p.pos == len(p.input) {
		return Type{}, errors.New("missing type")
	}
	if p.input[p.pos] == '?' {
		p.pos++
		return Type{Kind: Unknown}, nil
	}

	var name = p.ident()
	if name == "" {
		return Type{}, fmt.Errorf("expected a type name, found %q", p.input[p.pos:])
	}
	switch name {
	case "list":
		if err := p.expect('<'); err != nil {
			return Type{}, err
		}
		elem, err := p.parseType()
		if err != nil {
			return Type{}, err
		}
		if err := p.expect('>'); err != nil {
			return Type{}, err
		}
		return ListOf(elem), nil
	case "map":
		if err := p.expect('<'); err != nil {
			return Type{}, err
		}
		key, err := p.parseType()
		if err != nil {
			return Type{}, err
		}
		if err := p.expect(','); err != nil {
			return Type{}, err
		}
		value, err := p.parseType()
		if err != nil {
			return Type{}, err
		}
		if err := p.expect('>'); err != nil {
			return Type{}, err
		}
		return MapOf(key, value), nil
	}
	if kind, ok := simpleKinds[name]; ok {
		return Type{Kind: kind}, nil
	}
	return Type{}, fmt.Errorf("unknown type %q", name)
}

func (p *parser) ident() string {
	var start = p.pos
	for p.pos < len(p.input) && isIdentChar(p.input[p.pos]) {
		p.pos++
	}
	return p.input[start:p.pos]
}

func (p *parser) expect(c byte) error {
	p.skipSpace()
	if p.pos == len(p.input) || p.input[p.pos] != c {
		return fmt.Errorf("expected %q at %q", string(c), p.input[p.pos:])
	}
	p.pos++
	return nil
}

func (p *parser) skipSpace() {
	for p.pos < len(p.input) && (p.input[p.pos] == ' ' || p.input[p.pos] == '\t') {
		p.pos++
	}
}

func isIdentChar(c byte) bool {
	return 'a' <= c && c <= 'z' || 'A' <= c && c <= 'Z' || '0' <= c && c <= '9' || c == '_'
}
