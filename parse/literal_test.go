package parse

import (
	"testing"

	"github.com/gosoy/sauce/data"
)

func TestParseLiteral(t *testing.T) {
	var tests = []struct {
		input    string
		expected data.Value
	}{
		{"null", data.Null{}},
		{"true", data.Bool(true)},
		{"false", data.Bool(false)},
		{"0", data.Int(0)},
		{"42", data.Int(42)},
		{"-12", data.Int(-12)},
		{"0x1A", data.Int(26)},
		{"1.5", data.Float(1.5)},
		{"-0.5", data.Float(-0.5)},
		{"2e3", data.Float(2000)},
		{"''", data.String("")},
		{"'hello'", data.String("hello")},
		{`'a\nb'`, data.String("a\nb")},
		{`'∢'`, data.String("∢")},
	}
	for _, test := range tests {
		var value, err = ParseLiteral(test.input)
		if err != nil {
			t.Errorf("%v: %v", test.input, err)
			continue
		}
		if value != test.expected {
			t.Errorf("%v => %v, expected %v", test.input, value, test.expected)
		}
	}
}

func TestParseLiteralErrors(t *testing.T) {
	for _, input := range []string{
		"",
		"nil",
		"TRUE",
		"0x",
		"0xZZ",
		"1.2.3",
		"'unterminated",
		`'\q'`,
		"word",
		"NaN",
	} {
		if v, err := ParseLiteral(input); err == nil {
			t.Errorf("%q: expected an error, got %v", input, v)
		}
	}
}

func TestFormatLiteral(t *testing.T) {
	var tests = []struct {
		value    data.Value
		expected string
	}{
		{data.Null{}, "null"},
		{data.Bool(true), "true"},
		{data.Int(42), "42"},
		{data.Float(1.5), "1.5"},
		{data.String("hello"), "'hello'"},
		{data.String("a\nb"), `'a\nb'`},
	}
	for _, test := range tests {
		if actual := FormatLiteral(test.value); actual != test.expected {
			t.Errorf("%v => %v, expected %v", test.value, actual, test.expected)
		}
	}
}

func TestQuote(t *testing.T) {
	var tests = []struct{ input, output string }{
		{"", `''`},
		{"a", `'a'`},
		{"\n", `'\n'`},
		{"'", `'\''`},
		{"∢", "'∢'"}, // (doesn't turn it back into an escape sequence)
	}
	for _, test := range tests {
		if quoteString(test.input) != test.output {
			t.Errorf("%v => %v, expected %v", test.input, quoteString(test.input), test.output)
		}
	}
}

func TestUnquote(t *testing.T) {
	var tests = []struct{ input, output string }{
		{`''`, ""},
		{`'a'`, "a"},
		{`'\n'`, "\n"},
		{`'\\n'`, `\n`},
		{`'\''`, "'"},
		{`'∢'`, "∢"},
	}
	for _, test := range tests {
		var actual, err = unquoteString(test.input)
		if err != nil {
			t.Error(err)
			continue
		}
		if actual != test.output {
			t.Errorf("%v => %v, expected %v", test.input, actual, test.output)
		}
	}
}
