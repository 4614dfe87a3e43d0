package soytree

import (
	"github.com/gosoy/sauce/data"
	"github.com/gosoy/sauce/errortypes"
	"github.com/gosoy/sauce/soytype"
)

// TriState is a boolean attribute value that distinguishes "not specified"
// from explicitly disabled.
type TriState int

const (
	Unset TriState = iota
	Disabled
	Enabled
)

func (t TriState) String() string {
	switch t {
	case Disabled:
		return "disabled"
	case Enabled:
		return "enabled"
	}
	return "unset"
}

// ContentKind identifies the kind of content a template produces.
type ContentKind int

const (
	ContentHTML ContentKind = iota
	ContentAttributes
	ContentText
	ContentJS
	ContentCSS
	ContentURI
	ContentTrustedResourceURI
)

var contentKindNames = [...]string{
	ContentHTML:               "html",
	ContentAttributes:         "attributes",
	ContentText:               "text",
	ContentJS:                 "js",
	ContentCSS:                "css",
	ContentURI:                "uri",
	ContentTrustedResourceURI: "trusted_resource_uri",
}

func (k ContentKind) String() string { return contentKindNames[k] }

// Visibility says who may call a template.
type Visibility int

const (
	VisibilityPublic Visibility = iota
	VisibilityPrivate
)

var visibilityNames = [...]string{
	VisibilityPublic:  "public",
	VisibilityPrivate: "private",
}

func (v Visibility) String() string { return visibilityNames[v] }

// FileHeader is the parsed signature of one template file: the namespace
// plus every template declared in it.
type FileHeader struct {
	Name      string // file name, for error messages
	Namespace string
	Templates []TemplateDecl
}

// TemplateDecl is one template signature.  Name holds the local name; the
// fully-qualified name is the file's namespace joined with it.
type TemplateDecl struct {
	Name       Identifier
	Visibility Visibility
	Kind       ContentKind
	StrictHTML TriState
	RequireCSS []string
	CSSBase    string
	Params     []ParamDecl
	Loc        errortypes.Location
}

// ParamDecl declares one template parameter.  Default is nil unless the
// declaration carried a default value, which also makes the parameter
// optional.
//
// A default may also be written as a reference to a global.  Those parse
// into DefaultGlobal and stay unresolved until template.SetGlobals fills in
// Default from a globals map.
type ParamDecl struct {
	Name          Identifier
	Type          soytype.Type
	Required      bool
	Default       data.Value
	DefaultGlobal string
	Loc           errortypes.Location
}
