// Package template maintains a registry of parsed template signatures,
// keyed by fully qualified name.
package template

import (
	"fmt"
	"sort"

	"github.com/gosoy/sauce/data"
	"github.com/gosoy/sauce/soytree"
)

// Registry provides convenient access to a collection of parsed signature
// files.  Templates is kept sorted by fully qualified name, so iteration
// order is deterministic regardless of the order files were added.
type Registry struct {
	SoyFiles  []*soytree.FileHeader
	Templates []Template

	byName map[string]int // fully qualified name => index into Templates
}

// Template is one template signature together with the namespace it was
// declared under.  Name is the fully qualified name and shadows the
// declaration's local one.
type Template struct {
	*soytree.TemplateDecl
	Namespace string
	Name      string
}

// Add registers every template declared by the given file header, under
// names qualified with the file's namespace.  Duplicate templates and
// duplicate parameters are rejected, as are literal defaults that do not
// fit the declared parameter type.
func (r *Registry) Add(file *soytree.FileHeader) error {
	if file.Namespace == "" {
		return fmt.Errorf("file %v declares no namespace", file.Name)
	}
	if r.byName == nil {
		r.byName = make(map[string]int)
	}
	for i := range file.Templates {
		var decl = &file.Templates[i]
		var name = file.Namespace + "." + decl.Name.Name
		if prev, ok := r.byName[name]; ok {
			return fmt.Errorf("template %v redeclared; first declared in %v",
				name, r.Templates[prev].Loc.File)
		}
		var seen = make(map[string]bool)
		for _, p := range decl.Params {
			if seen[p.Name.Name] {
				return fmt.Errorf("template %v declares parameter %q twice", name, p.Name.Name)
			}
			seen[p.Name.Name] = true
			if p.Default != nil && !assignable(p.Type, p.Default) {
				return fmt.Errorf("template %v: default value %v does not fit the declared type %v of parameter %q",
					name, p.Default, p.Type, p.Name.Name)
			}
		}
		r.byName[name] = len(r.Templates)
		r.Templates = append(r.Templates, Template{decl, file.Namespace, name})
	}
	r.SoyFiles = append(r.SoyFiles, file)

	sort.Slice(r.Templates, func(i, j int) bool { return r.Templates[i].Name < r.Templates[j].Name })
	for i, t := range r.Templates {
		r.byName[t.Name] = i
	}
	return nil
}

// Template returns the template with the given fully qualified name.
func (r *Registry) Template(name string) (Template, bool) {
	var i, ok = r.byName[name]
	if !ok {
		return Template{}, false
	}
	return r.Templates[i], true
}

// Namespaces returns the distinct namespaces in sorted order.
func (r *Registry) Namespaces() []string {
	var seen = make(map[string]bool)
	var names []string
	for _, f := range r.SoyFiles {
		if !seen[f.Namespace] {
			seen[f.Namespace] = true
			names = append(names, f.Namespace)
		}
	}
	sort.Strings(names)
	return names
}

// ParamNames returns the declared parameter names in declaration order.
func (t Template) ParamNames() []string {
	var names []string
	for _, p := range t.Params {
		names = append(names, p.Name.Name)
	}
	return names
}

// Defaults returns the declared default values, keyed by parameter name.
// Defaults that are unresolved global references are not included; see
// SetGlobals.
func (t Template) Defaults() data.Map {
	var defaults = make(data.Map)
	for _, p := range t.Params {
		if p.Default != nil {
			defaults[p.Name.Name] = p.Default
		}
	}
	return defaults
}

// ApplyDefaults rebinds each defaulted parameter of record through
// data.WithDefault, so an absent or undefined call value falls back to the
// declared default.  The record is modified in place.
func (t Template) ApplyDefaults(record map[string]data.ValueProvider) {
	for _, p := range t.Params {
		if p.Default == nil {
			continue
		}
		record[p.Name.Name] = data.WithDefault(record[p.Name.Name], p.Default)
	}
}
