package javagen

import (
	"github.com/gosoy/sauce/soytype"
)

// JavaType is how a template parameter type appears in generated Java
// sources: the type named by setters, whether that is a primitive, and the
// form it takes as a generics argument.
type JavaType struct {
	TypeString  string
	Primitive   bool
	GenericsArg string
}

// The simple types.  Lists and maps are composed from these by JavaTypeFor.
var (
	Boolean            = JavaType{TypeString: "boolean", Primitive: true, GenericsArg: "Boolean"}
	Double             = JavaType{TypeString: "double", Primitive: true, GenericsArg: "? extends Number"}
	Long               = JavaType{TypeString: "long", Primitive: true, GenericsArg: "? extends Number"}
	Number             = JavaType{TypeString: "Number", GenericsArg: "? extends Number"}
	HTML               = JavaType{TypeString: "SafeHtml"}
	JS                 = JavaType{TypeString: "SafeScript"}
	URL                = JavaType{TypeString: "SafeUrl"}
	TrustedResourceURL = JavaType{TypeString: "TrustedResourceUrl"}
	String             = JavaType{TypeString: "String"}
	Object             = JavaType{TypeString: "Object", GenericsArg: "?"}
)

// AsGenericsArg returns the form the type takes as a type argument inside a
// generic.
func (t JavaType) AsGenericsArg() string {
	if t.GenericsArg != "" {
		return t.GenericsArg
	}
	return t.TypeString
}

// AsNullable boxes a primitive so the declared type can hold null.
// Non-primitives are returned unchanged.
func (t JavaType) AsNullable() JavaType {
	switch t.TypeString {
	case "boolean":
		t.TypeString = "Boolean"
	case "double":
		t.TypeString = "Double"
	case "long":
		t.TypeString = "Long"
	default:
		return t
	}
	t.Primitive = false
	return t
}

// JavaTypeFor maps a declared parameter type to the Java type accepted by
// the generated setter.
func JavaTypeFor(t soytype.Type) JavaType {
	switch t.Kind {
	case soytype.Bool:
		return Boolean
	case soytype.Int:
		return Long
	case soytype.Float:
		return Double
	case soytype.Number:
		return Number
	case soytype.String:
		return String
	case soytype.HTML:
		return HTML
	case soytype.JS:
		return JS
	case soytype.URI:
		return URL
	case soytype.TrustedResourceURI:
		return TrustedResourceURL
	case soytype.List:
		var elem = JavaTypeFor(t.Args[0]).AsGenericsArg()
		return JavaType{
			TypeString:  "Iterable<" + elem + ">",
			GenericsArg: "? extends Iterable<" + elem + ">",
		}
	case soytype.Map:
		var key = JavaTypeFor(t.Args[0]).AsGenericsArg()
		var val = JavaTypeFor(t.Args[1]).AsGenericsArg()
		return JavaType{
			TypeString:  "Map<" + key + ", " + val + ">",
			GenericsArg: "? extends Map<" + key + ", " + val + ">",
		}
	}
	return Object
}
