/*
Package parse reads template signature files.

A signature file (*.soyh) declares a namespace and the templates callable
under it, without template bodies:

	{namespace acme.ui}

	// A clickable button.
	{template .button kind="html" requirecss="acme.ui"}
	  {@param label: string}
	  {@param? width: int}
	  {@param style: string = 'primary'}
	{/template}

The parser collects as many problems as it can rather than stopping at the
first, so one run reports everything wrong with a file.
*/
package parse

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/gosoy/sauce/errortypes"
	"github.com/gosoy/sauce/soytree"
	"github.com/gosoy/sauce/soytype"
)

var (
	errMissingNamespace   = errortypes.Kindf("{template} requires a {namespace} declaration first")
	errDuplicateNamespace = errortypes.Kindf("namespace was already declared")
	errBadNamespace       = errortypes.Kindf("invalid namespace %q, expected a dotted identifier")
	errUnclosedTemplate   = errortypes.Kindf("missing {/template}")
	errBadTemplateName    = errortypes.Kindf("invalid template name %q, expected a name of the form .foo")
	errStrayCloseTag      = errortypes.Kindf("{/template} without a matching {template}")
	errParamOutsideTmpl   = errortypes.Kindf("parameter declared outside of a template")
	errDuplicateParam     = errortypes.Kindf("parameter %q was already declared")
	errBadParam           = errortypes.Kindf("malformed parameter declaration: %s")
	errBadParamType       = errortypes.Kindf("parameter %q has an invalid type: %s")
	errBadParamDefault    = errortypes.Kindf("parameter %q has an invalid default value: %s")
	errBadAttribute       = errortypes.Kindf("malformed attribute near %q")
	errBadTag             = errortypes.Kindf("malformed command tag %q")
	errBodyLine           = errortypes.Kindf("template bodies are not part of signature files")
	errUnknownLine        = errortypes.Kindf("unrecognized line %q")
)

// Attributes accepted on a {template} tag.
var templateAttrKeys = []string{"cssbase", "kind", "requirecss", "stricthtml", "visibility"}

// ParseHeader parses a single signature file.  The returned header holds
// everything that did parse even when the error is non-nil, so callers can
// surface all problems and still inspect the result.
func ParseHeader(name string, input io.Reader) (*soytree.FileHeader, error) {
	var p = headerParser{header: &soytree.FileHeader{Name: name}}
	var scanner = bufio.NewScanner(input)
	for scanner.Scan() {
		p.line++
		p.parseLine(scanner.Text())
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("reading %s: %w", name, err)
	}
	if p.open != nil {
		p.errs.Report(p.open.Loc, errUnclosedTemplate)
		p.closeTemplate()
	}
	return p.header, p.errs.ToError()
}

type headerParser struct {
	header *soytree.FileHeader
	line   int
	open   *soytree.TemplateDecl // template whose body we are in, if any
	seen   map[string]bool       // param names declared by the open template
	errs   errortypes.Collector
}

func (p *headerParser) loc(col int) errortypes.Location {
	return errortypes.Location{File: p.header.Name, Line: p.line, Col: col}
}

func (p *headerParser) parseLine(text string) {
	var trimmed = strings.TrimSpace(text)
	var col = len(text) - len(strings.TrimLeft(text, " \t")) + 1
	switch {
	case trimmed == "" || strings.HasPrefix(trimmed, "//"):
	case strings.HasPrefix(trimmed, "{namespace"):
		p.parseNamespace(trimmed, col)
	case strings.HasPrefix(trimmed, "{template"):
		p.parseTemplate(trimmed, col)
	case strings.HasPrefix(trimmed, "{@param"):
		p.parseParam(trimmed, col)
	case trimmed == "{/template}":
		if p.open == nil {
			p.errs.Report(p.loc(col), errStrayCloseTag)
			return
		}
		p.closeTemplate()
	default:
		if p.open != nil {
			p.errs.Report(p.loc(col), errBodyLine)
			return
		}
		p.errs.Report(p.loc(col), errUnknownLine, trimmed)
	}
}

func (p *headerParser) closeTemplate() {
	p.header.Templates = append(p.header.Templates, *p.open)
	p.open = nil
	p.seen = nil
}

func (p *headerParser) parseNamespace(tag string, col int) {
	var inner, ok = tagBody(tag, "namespace")
	if !ok {
		p.errs.Report(p.loc(col), errBadTag, tag)
		return
	}
	var name = strings.TrimSpace(inner)
	switch {
	case p.header.Namespace != "":
		p.errs.Report(p.loc(col), errDuplicateNamespace)
	case !soytree.IsDottedIdentifier(name):
		p.errs.Report(p.loc(col), errBadNamespace, name)
	default:
		p.header.Namespace = name
	}
}

func (p *headerParser) parseTemplate(tag string, col int) {
	if p.open != nil {
		p.errs.Report(p.open.Loc, errUnclosedTemplate)
		p.closeTemplate()
	}
	if p.header.Namespace == "" {
		p.errs.Report(p.loc(col), errMissingNamespace)
	}
	var inner, ok = tagBody(tag, "template")
	if !ok {
		p.errs.Report(p.loc(col), errBadTag, tag)
		return
	}

	var sc = tagScanner{file: p.header.Name, line: p.line, text: inner, base: col + len("{template")}
	sc.skipSpace()
	var nameLoc = sc.loc()
	var name = sc.word()
	if !strings.HasPrefix(name, ".") || !soytree.IsIdentifier(name[1:]) {
		p.errs.Report(nameLoc, errBadTemplateName, name)
	}

	var attrs []soytree.CommandTagAttribute
	for {
		sc.skipSpace()
		if sc.eof() {
			break
		}
		var attrLoc, attrText = sc.loc(), sc.rest()
		var attr, ok = sc.attribute()
		if !ok {
			p.errs.Report(attrLoc, errBadAttribute, attrText)
			break
		}
		attrs = append(attrs, attr)
	}
	attrs = soytree.RemoveDuplicates(attrs, &p.errs)
	attrs = soytree.CheckSupportedKeys(attrs, "template", templateAttrKeys, &p.errs)

	var decl = &soytree.TemplateDecl{
		Name: soytree.Identifier{Name: strings.TrimPrefix(name, "."), Loc: nameLoc, Type: soytree.SingleIdent},
		Kind: soytree.ContentHTML,
		Loc:  p.loc(col),
	}
	for _, attr := range attrs {
		switch attr.Key.Name {
		case "cssbase":
			decl.CSSBase = attr.ValueAsCSSBase(&p.errs)
		case "kind":
			if kind, ok := attr.ValueAsContentKind(&p.errs); ok {
				decl.Kind = kind
			}
		case "requirecss":
			decl.RequireCSS = attr.ValueAsRequireCSS(&p.errs)
		case "stricthtml":
			decl.StrictHTML = attr.ValueAsTriState(&p.errs)
		case "visibility":
			if v, ok := attr.ValueAsVisibility(&p.errs); ok {
				decl.Visibility = v
			}
		}
	}
	p.open = decl
	p.seen = make(map[string]bool)
}

func (p *headerParser) parseParam(tag string, col int) {
	if p.open == nil {
		p.errs.Report(p.loc(col), errParamOutsideTmpl)
		return
	}
	var optional = false
	var inner, ok = tagBody(tag, "@param")
	if !ok {
		if inner, ok = tagBody(tag, "@param?"); !ok {
			p.errs.Report(p.loc(col), errBadTag, tag)
			return
		}
		optional = true
	}

	var colon = strings.IndexByte(inner, ':')
	if colon == -1 {
		p.errs.Report(p.loc(col), errBadParam, "expected a : after the parameter name")
		return
	}
	var name = strings.TrimSpace(inner[:colon])
	if !soytree.IsIdentifier(name) {
		p.errs.Report(p.loc(col), errBadParam, fmt.Sprintf("invalid parameter name %q", name))
		return
	}
	if p.seen[name] {
		p.errs.Report(p.loc(col), errDuplicateParam, name)
		return
	}
	p.seen[name] = true

	var typeStr, defStr = inner[colon+1:], ""
	var hasDefault = false
	if eq := strings.IndexByte(typeStr, '='); eq != -1 {
		hasDefault = true
		typeStr, defStr = typeStr[:eq], strings.TrimSpace(typeStr[eq+1:])
	}

	var decl = soytree.ParamDecl{
		Name:     soytree.Identifier{Name: name, Loc: p.loc(col), Type: soytree.SingleIdent},
		Required: !optional,
		Loc:      p.loc(col),
	}
	var err error
	decl.Type, err = soytype.Parse(strings.TrimSpace(typeStr))
	if err != nil {
		p.errs.Report(p.loc(col), errBadParamType, name, err)
	}
	if hasDefault {
		p.parseDefault(&decl, defStr, col)
	}
	p.open.Params = append(p.open.Params, decl)
}

// parseDefault interprets the text after = in a parameter declaration.  A
// default may be a primitive literal or a reference to a global, left for
// template.SetGlobals to resolve.  Either form makes the parameter optional.
func (p *headerParser) parseDefault(decl *soytree.ParamDecl, def string, col int) {
	if def == "" {
		p.errs.Report(p.loc(col), errBadParamDefault, decl.Name.Name, "missing value after =")
		return
	}
	var val, err = ParseLiteral(def)
	switch {
	case err == nil:
		decl.Default = val
	case soytree.IsDottedIdentifier(def):
		decl.DefaultGlobal = def
	default:
		p.errs.Report(p.loc(col), errBadParamDefault, decl.Name.Name, err)
		return
	}
	decl.Required = false
}

// tagBody returns the text between "{cmd" and "}", and whether the tag has
// that shape.
func tagBody(tag, cmd string) (string, bool) {
	var prefix = "{" + cmd
	if !strings.HasPrefix(tag, prefix) || !strings.HasSuffix(tag, "}") {
		return "", false
	}
	var body = tag[len(prefix) : len(tag)-1]
	if body != "" && body[0] != ' ' && body[0] != '\t' {
		return "", false
	}
	return body, true
}

// tagScanner walks the interior of a command tag, tracking source columns
// for error locations.
type tagScanner struct {
	file string
	line int
	text string
	base int // 1-based column of text[0] in the original line
	pos  int
}

func (s *tagScanner) loc() errortypes.Location {
	return errortypes.Location{File: s.file, Line: s.line, Col: s.base + s.pos}
}

func (s *tagScanner) eof() bool    { return s.pos >= len(s.text) }
func (s *tagScanner) rest() string { return s.text[s.pos:] }

func (s *tagScanner) skipSpace() {
	for !s.eof() && (s.text[s.pos] == ' ' || s.text[s.pos] == '\t') {
		s.pos++
	}
}

// word reads up to the next space.
func (s *tagScanner) word() string {
	var start = s.pos
	for !s.eof() && s.text[s.pos] != ' ' && s.text[s.pos] != '\t' {
		s.pos++
	}
	return s.text[start:s.pos]
}

// attribute reads one key="value" pair.
func (s *tagScanner) attribute() (soytree.CommandTagAttribute, bool) {
	var keyLoc = s.loc()
	var start = s.pos
	for !s.eof() && isIdentByte(s.text[s.pos]) {
		s.pos++
	}
	var key = s.text[start:s.pos]
	if key == "" || s.eof() || s.text[s.pos] != '=' {
		return soytree.CommandTagAttribute{}, false
	}
	s.pos++
	if s.eof() || s.text[s.pos] != '"' {
		return soytree.CommandTagAttribute{}, false
	}
	s.pos++
	var valLoc = s.loc()
	var end = strings.IndexByte(s.text[s.pos:], '"')
	if end == -1 {
		return soytree.CommandTagAttribute{}, false
	}
	var value = s.text[s.pos : s.pos+end]
	s.pos += end + 1
	return soytree.CommandTagAttribute{
		Key:      soytree.Identifier{Name: key, Loc: keyLoc, Type: soytree.SingleIdent},
		Value:    value,
		ValueLoc: valLoc,
	}, true
}

func isIdentByte(c byte) bool {
	return c == '_' || 'a' <= c && c <= 'z' || 'A' <= c && c <= 'Z' || '0' <= c && c <= '9'
}
