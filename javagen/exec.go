package javagen

import (
	"fmt"
	"io"
	"path/filepath"
	"sort"
	"strconv"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/gosoy/sauce/data"
	"github.com/gosoy/sauce/parse"
	"github.com/gosoy/sauce/soytree"
)

// Options for Java source generation.
type Options struct {
	// JavaPackage overrides the package of the generated source.  When
	// empty, the file's namespace is used.
	JavaPackage string
}

type state struct {
	wr           io.Writer
	indentLevels int
	namespace    string
}

// Write generates the Java source corresponding to the given signature
// file: one final class holding an invocation builder per public template.
func Write(out io.Writer, file *soytree.FileHeader, opts Options) (err error) {
	defer errRecover(&err)
	var s = &state{wr: out, namespace: file.Namespace}
	s.visitFile(file, opts)
	return nil
}

// errorf formats the error and terminates processing.
func (s *state) errorf(format string, args ...interface{}) {
	panic(fmt.Sprintf(format, args...))
}

// errRecover is the handler that turns panics into returns from the top
// level of Write.
func errRecover(errp *error) {
	e := recover()
	if e != nil {
		*errp = fmt.Errorf("%v", e)
	}
}

func (s *state) visitFile(file *soytree.FileHeader, opts Options) {
	if file.Namespace == "" {
		s.errorf("file %s declares no namespace", file.Name)
	}
	var pkg = opts.JavaPackage
	if pkg == "" {
		pkg = file.Namespace
	}
	var class = ClassName(file.Name)

	s.ln("// This file was automatically generated from ", file.Name, ".")
	s.ln("// Please don't edit this file by hand.")
	s.ln("")
	s.ln("package ", pkg, ";")
	s.ln("")
	s.ln("import java.util.LinkedHashMap;")
	s.ln("import java.util.Map;")
	s.ln("")
	s.ln("public final class ", class, " {")
	s.indentLevels++
	s.ln("")
	s.ln("private ", class, "() {}")

	var sorted = append([]soytree.TemplateDecl(nil), file.Templates...)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i].Name.Name < sorted[j].Name.Name })
	for i := range sorted {
		if sorted[i].Visibility == soytree.VisibilityPrivate {
			continue
		}
		s.visitTemplate(&sorted[i])
	}

	s.visitInvocation()
	s.indentLevels--
	s.ln("}")
}

func (s *state) visitTemplate(t *soytree.TemplateDecl) {
	var fq = s.namespace + "." + t.Name.Name
	var class = upperCamel(t.Name.Name)
	s.ln("")
	s.ln("/** Invocation builder for ", fq, ". */")
	s.ln("public static final class ", class, " {")
	s.indentLevels++
	s.ln("")
	s.ln("public static final String TEMPLATE_NAME = ", strconv.Quote(fq), ";")
	s.ln("")
	s.ln("private ", class, "() {}")
	s.ln("")
	s.ln("public static Builder builder() {")
	s.indentLevels++
	s.ln("return new Builder();")
	s.indentLevels--
	s.ln("}")
	s.ln("")
	s.ln("public static final class Builder {")
	s.indentLevels++
	s.ln("")
	s.ln("private final Map<String, Object> params = new LinkedHashMap<>();")
	s.ln("")
	s.visitBuilderCtor(t)
	for i := range t.Params {
		s.visitParam(&t.Params[i])
	}
	s.visitBuild(t)
	s.indentLevels--
	s.ln("}")
	s.indentLevels--
	s.ln("}")
}

// visitBuilderCtor emits the builder constructor, pre-populating declared
// defaults so an unset optional parameter renders with its default.
func (s *state) visitBuilderCtor(t *soytree.TemplateDecl) {
	var defaulted []*soytree.ParamDecl
	for i := range t.Params {
		if t.Params[i].Default != nil {
			defaulted = append(defaulted, &t.Params[i])
		}
	}
	if len(defaulted) == 0 {
		s.ln("private Builder() {}")
		return
	}
	s.ln("private Builder() {")
	s.indentLevels++
	for _, p := range defaulted {
		s.ln("params.put(", strconv.Quote(p.Name.Name), ", ", javaLiteral(p.Default), ");")
	}
	s.indentLevels--
	s.ln("}")
}

func (s *state) visitParam(p *soytree.ParamDecl) {
	var jt = JavaTypeFor(p.Type)
	if !p.Required {
		jt = jt.AsNullable()
	}
	s.ln("")
	switch {
	case p.Required:
		s.ln("/** Required. */")
	case p.Default != nil:
		s.ln("/** Default: ", parse.FormatLiteral(p.Default), ". */")
	case p.DefaultGlobal != "":
		s.ln("/** Default: the global ", p.DefaultGlobal, ". */")
	}
	s.ln("public Builder set", upperCamel(p.Name.Name), "(", jt.TypeString, " value) {")
	s.indentLevels++
	s.ln("params.put(", strconv.Quote(p.Name.Name), ", value);")
	s.ln("return this;")
	s.indentLevels--
	s.ln("}")
}

func (s *state) visitBuild(t *soytree.TemplateDecl) {
	s.ln("")
	s.ln("public Invocation build() {")
	s.indentLevels++
	for _, p := range t.Params {
		if !p.Required {
			continue
		}
		s.ln("if (!params.containsKey(", strconv.Quote(p.Name.Name), ")) {")
		s.indentLevels++
		s.ln(`throw new IllegalStateException("Required parameter '`, p.Name.Name, `' was not set.");`)
		s.indentLevels--
		s.ln("}")
	}
	s.ln("return new Invocation(TEMPLATE_NAME, params);")
	s.indentLevels--
	s.ln("}")
}

func (s *state) visitInvocation() {
	s.ln("")
	s.ln("/** A named template together with its bound parameters. */")
	s.ln("public static final class Invocation {")
	s.indentLevels++
	s.ln("")
	s.ln("private final String name;")
	s.ln("private final Map<String, Object> params;")
	s.ln("")
	s.ln("private Invocation(String name, Map<String, Object> params) {")
	s.indentLevels++
	s.ln("this.name = name;")
	s.ln("this.params = new LinkedHashMap<>(params);")
	s.indentLevels--
	s.ln("}")
	s.ln("")
	s.ln("public String getTemplateName() {")
	s.indentLevels++
	s.ln("return name;")
	s.indentLevels--
	s.ln("}")
	s.ln("")
	s.ln("public Map<String, Object> getParams() {")
	s.indentLevels++
	s.ln("return params;")
	s.indentLevels--
	s.ln("}")
	s.indentLevels--
	s.ln("}")
}

// javaLiteral renders a declared default as the Java expression placed in
// the params map.
func javaLiteral(v data.Value) string {
	switch v := v.(type) {
	case data.Null:
		return "null"
	case data.Bool:
		return v.String()
	case data.Int:
		return v.String() + "L"
	case data.Float:
		var str = v.String()
		if !strings.ContainsAny(str, ".eE") {
			str += ".0"
		}
		return str
	case data.String:
		return strconv.Quote(string(v))
	default:
		panic(fmt.Sprintf("cannot render %T as a Java literal", v))
	}
}

func (s *state) indent() {
	for i := 0; i < s.indentLevels; i++ {
		io.WriteString(s.wr, "  ")
	}
}

// ln writes the arguments and a newline at the current indent.  A blank
// line carries no indent.
func (s *state) ln(args ...string) {
	if len(args) == 1 && args[0] == "" {
		io.WriteString(s.wr, "\n")
		return
	}
	s.indent()
	for _, arg := range args {
		io.WriteString(s.wr, arg)
	}
	io.WriteString(s.wr, "\n")
}

// upperCamel converts a parameter or file name to the UpperCamelCase form
// used in generated Java identifiers.  Camel-case humps in the input are
// preserved.
func upperCamel(name string) string {
	// A cases.Caser is not safe for concurrent use.
	var titler = cases.Title(language.English, cases.NoLower)
	var b strings.Builder
	for _, part := range strings.FieldsFunc(name, isWordSep) {
		b.WriteString(titler.String(part))
	}
	return b.String()
}

func isWordSep(r rune) bool { return r == '_' || r == '-' || r == '.' }

// ClassName derives the generated Java class name from a signature file
// name: "ui_buttons.soyh" becomes "UiButtonsTemplates".
func ClassName(filename string) string {
	var base = filepath.Base(filename)
	base = strings.TrimSuffix(base, filepath.Ext(base))
	return upperCamel(base) + "Templates"
}
