package template

import (
	"fmt"

	"github.com/gosoy/sauce/data"
	"github.com/gosoy/sauce/soytype"
)

// SetGlobals resolves parameter defaults that were declared as references
// to globals.  An error is returned if any reference is left undefined or
// resolves to a value the parameter type does not accept.
func SetGlobals(reg *Registry, globals data.Map) error {
	for _, t := range reg.Templates {
		for i := range t.Params {
			var p = &t.Params[i]
			if p.DefaultGlobal == "" {
				continue
			}
			var val, ok = globals[p.DefaultGlobal]
			if !ok {
				return fmt.Errorf("template %v: global %q is undefined", t.Name, p.DefaultGlobal)
			}
			if !assignable(p.Type, val) {
				return fmt.Errorf("template %v: global %v does not fit the declared type %v of parameter %q",
					t.Name, p.DefaultGlobal, p.Type, p.Name.Name)
			}
			p.Default = val
		}
	}
	return nil
}

// assignable reports whether the given default value fits a declared
// parameter type.  Defaults are primitive literals, so only primitive
// kinds can match; null is accepted for any type.
func assignable(t soytype.Type, v data.Value) bool {
	if _, isNull := v.(data.Null); isNull {
		return true
	}
	switch t.Kind {
	case soytype.Any, soytype.Unknown:
		return true
	case soytype.Bool:
		_, ok := v.(data.Bool)
		return ok
	case soytype.Int:
		_, ok := v.(data.Int)
		return ok
	case soytype.Float:
		_, ok := v.(data.Float)
		return ok
	case soytype.Number:
		switch v.(type) {
		case data.Int, data.Float:
			return true
		}
		return false
	case soytype.String, soytype.HTML, soytype.JS, soytype.CSS,
		soytype.URI, soytype.TrustedResourceURI, soytype.Attributes:
		_, ok := v.(data.String)
		return ok
	}
	return false
}
