// Package soytree holds the declarations parsed from template signature
// files: identifiers, command tag attributes and their typed accessors, and
// the template and parameter declaration types.
package soytree

import (
	"strings"

	"github.com/gosoy/sauce/errortypes"
)

// IdentifierType distinguishes single identifiers from dotted ones.
type IdentifierType int

const (
	SingleIdent IdentifierType = iota
	DottedIdent
)

// Identifier is a name together with where it appeared.
type Identifier struct {
	Name string
	Loc  errortypes.Location
	Type IdentifierType
}

func (id Identifier) String() string { return id.Name }

// IsIdentifier reports whether s is a single identifier: a letter or
// underscore followed by letters, digits, or underscores.
func IsIdentifier(s string) bool {
	if s == "" {
		return false
	}
	for i := 0; i < len(s); i++ {
		var c = s[i]
		if c == '_' || 'a' <= c && c <= 'z' || 'A' <= c && c <= 'Z' {
			continue
		}
		if i > 0 && '0' <= c && c <= '9' {
			continue
		}
		return false
	}
	return true
}

// IsDottedIdentifier reports whether s is one or more identifiers joined
// with dots, e.g. "acme.ui.buttons".
func IsDottedIdentifier(s string) bool {
	for _, part := range strings.Split(s, ".") {
		if !IsIdentifier(part) {
			return false
		}
	}
	return true
}
