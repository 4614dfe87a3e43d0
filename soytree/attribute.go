package soytree

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/gosoy/sauce/errortypes"
)

var (
	errDuplicateAttribute   = errortypes.Kindf("attribute %q was already specified")
	errInvalidAttribute     = errortypes.Kindf("invalid value for attribute %q, expected %s")
	errInvalidAttributeList = errortypes.Kindf("invalid value for attribute %q, expected one of [%s]")
	errInvalidCSSBase       = errortypes.Kindf("invalid CSS base namespace name %q")
	errInvalidRequireCSS    = errortypes.Kindf("invalid required CSS namespace name %q, expected an identifier")
	errUnsupportedAttribute = errortypes.Kindf("unsupported attribute %q for {%s} tag, expected one of [%s]")
)

// A CommandTagAttribute is a name="value" pair parsed from a command tag,
// e.g. kind="text" in {template .foo kind="text"}.
//
// The typed accessors interpret the raw value, reporting malformed values to
// the given Reporter and falling back to a default, so a caller can finish
// interpreting a whole tag and surface every problem at once.
type CommandTagAttribute struct {
	Key      Identifier
	Value    string
	ValueLoc errortypes.Location
}

func (a CommandTagAttribute) String() string {
	return fmt.Sprintf("%s=%q", a.Key.Name, a.Value)
}

// RemoveDuplicates reports each attribute whose key appeared earlier in the
// list and returns the attributes with those duplicates removed.
func RemoveDuplicates(attrs []CommandTagAttribute, r errortypes.Reporter) []CommandTagAttribute {
	var seen = make(map[string]bool)
	var kept []CommandTagAttribute
	for _, attr := range attrs {
		if seen[attr.Key.Name] {
			r.Report(attr.Key.Loc, errDuplicateAttribute, attr.Key.Name)
			continue
		}
		seen[attr.Key.Name] = true
		kept = append(kept, attr)
	}
	return kept
}

// CheckSupportedKeys reports each attribute whose key is not in supported
// and returns the attributes with those removed.
func CheckSupportedKeys(attrs []CommandTagAttribute, tag string, supported []string, r errortypes.Reporter) []CommandTagAttribute {
	var kept []CommandTagAttribute
	for _, attr := range attrs {
		var ok = false
		for _, key := range supported {
			if attr.Key.Name == key {
				ok = true
				break
			}
		}
		if !ok {
			r.Report(attr.Key.Loc, errUnsupportedAttribute, attr.Key.Name, tag, strings.Join(supported, ", "))
			continue
		}
		kept = append(kept, attr)
	}
	return kept
}

// ValueAsBool interprets the value as a boolean, reporting and returning
// def when it is neither "true" nor "false".
func (a CommandTagAttribute) ValueAsBool(r errortypes.Reporter, def bool) bool {
	switch a.Value {
	case "true":
		return true
	case "false":
		return false
	}
	a.reportOneOf(r, "true", "false")
	return def
}

// ValueAsInt interprets the value as an integer, reporting and returning
// def when it is not one.
func (a CommandTagAttribute) ValueAsInt(r errortypes.Reporter, def int) int {
	var n, err = strconv.Atoi(a.Value)
	if err != nil {
		r.Report(a.ValueLoc, errInvalidAttribute, a.Key.Name, "an integer")
		return def
	}
	return n
}

// ValueAsTriState interprets the value as a boolean, reporting and
// returning Unset when it is neither "true" nor "false".
func (a CommandTagAttribute) ValueAsTriState(r errortypes.Reporter) TriState {
	switch a.Value {
	case "true":
		return Enabled
	case "false":
		return Disabled
	}
	a.reportOneOf(r, "true", "false")
	return Unset
}

// ValueAsRequireCSS splits the value on commas and validates every
// namespace as a dotted identifier.  Invalid entries are each reported, and
// any makes the result nil.
func (a CommandTagAttribute) ValueAsRequireCSS(r errortypes.Reporter) []string {
	var namespaces = strings.Split(a.Value, ",")
	var valid = true
	for i, ns := range namespaces {
		ns = strings.TrimSpace(ns)
		namespaces[i] = ns
		if !IsDottedIdentifier(ns) {
			r.Report(a.ValueLoc, errInvalidRequireCSS, ns)
			valid = false
		}
	}
	if !valid {
		return nil
	}
	return namespaces
}

// ValueAsContentKind interprets the value as a content kind attribute.  An
// unknown kind is reported and returns ok=false.
func (a CommandTagAttribute) ValueAsContentKind(r errortypes.Reporter) (kind ContentKind, ok bool) {
	for k, name := range contentKindNames {
		if a.Value == name {
			return ContentKind(k), true
		}
	}
	a.reportOneOf(r, contentKindNames[:]...)
	return 0, false
}

// ValueAsVisibility interprets the value as a visibility attribute.  An
// unknown visibility is reported and returns ok=false.
func (a CommandTagAttribute) ValueAsVisibility(r errortypes.Reporter) (v Visibility, ok bool) {
	for k, name := range visibilityNames {
		if a.Value == name {
			return Visibility(k), true
		}
	}
	a.reportOneOf(r, visibilityNames[:]...)
	return 0, false
}

// ValueAsCSSBase validates the value as a dotted identifier and returns it.
func (a CommandTagAttribute) ValueAsCSSBase(r errortypes.Reporter) string {
	if !IsDottedIdentifier(a.Value) {
		r.Report(a.ValueLoc, errInvalidCSSBase, a.Value)
	}
	return a.Value
}

func (a CommandTagAttribute) reportOneOf(r errortypes.Reporter, allowed ...string) {
	r.Report(a.ValueLoc, errInvalidAttributeList, a.Key.Name, strings.Join(allowed, ", "))
}
