package parse

import (
	"reflect"
	"strings"
	"testing"

	"github.com/gosoy/sauce/data"
)

func TestParseGlobals(t *testing.T) {
	const input = `// App globals.
app.NAME = 'Acme'
app.VERSION = 3
app.RATIO = 1.5
app.DEBUG = false
app.LEGACY = null
`
	var globals, err = ParseGlobals(strings.NewReader(input))
	if err != nil {
		t.Fatal(err)
	}
	var expected = data.Map{
		"app.NAME":    data.String("Acme"),
		"app.VERSION": data.Int(3),
		"app.RATIO":   data.Float(1.5),
		"app.DEBUG":   data.Bool(false),
		"app.LEGACY":  data.Null{},
	}
	if !reflect.DeepEqual(expected, globals) {
		t.Errorf("expected %v, got %v", expected, globals)
	}
}

func TestParseGlobalsErrors(t *testing.T) {
	for _, input := range []string{
		"app.NAME 'Acme'",
		"9bad = 1",
		"app.NAME = [1, 2]",
	} {
		if _, err := ParseGlobals(strings.NewReader(input)); err == nil {
			t.Errorf("%q: expected an error", input)
		}
	}
}
