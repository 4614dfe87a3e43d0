package javagen

import (
	"bytes"
	"strings"
	"testing"

	"github.com/andreyvit/diff"

	"github.com/gosoy/sauce/data"
	"github.com/gosoy/sauce/parse"
	"github.com/gosoy/sauce/template"
)

func TestWrite(t *testing.T) {
	const input = `{namespace acme.ui}

{template .button}
  {@param label: string}
  {@param? width: int}
  {@param style: string = 'primary'}
{/template}

{template .debugPanel visibility="private"}
  {@param info: string}
{/template}
`
	const expected = `// This file was automatically generated from ui.soyh.
// Please don't edit this file by hand.

package acme.ui;

import java.util.LinkedHashMap;
import java.util.Map;

public final class UiTemplates {

  private UiTemplates() {}

  /** Invocation builder for acme.ui.button. */
  public static final class Button {

    public static final String TEMPLATE_NAME = "acme.ui.button";

    private Button() {}

    public static Builder builder() {
      return new Builder();
    }

    public static final class Builder {

      private final Map<String, Object> params = new LinkedHashMap<>();

      private Builder() {
        params.put("style", "primary");
      }

      /** Required. */
      public Builder setLabel(String value) {
        params.put("label", value);
        return this;
      }

      public Builder setWidth(Long value) {
        params.put("width", value);
        return this;
      }

      /** Default: 'primary'. */
      public Builder setStyle(String value) {
        params.put("style", value);
        return this;
      }

      public Invocation build() {
        if (!params.containsKey("label")) {
          throw new IllegalStateException("Required parameter 'label' was not set.");
        }
        return new Invocation(TEMPLATE_NAME, params);
      }
    }
  }

  /** A named template together with its bound parameters. */
  public static final class Invocation {

    private final String name;
    private final Map<String, Object> params;

    private Invocation(String name, Map<String, Object> params) {
      this.name = name;
      this.params = new LinkedHashMap<>(params);
    }

    public String getTemplateName() {
      return name;
    }

    public Map<String, Object> getParams() {
      return params;
    }
  }
}
`

	var header, err = parse.ParseHeader("ui.soyh", strings.NewReader(input))
	if err != nil {
		t.Fatal(err)
	}
	var buf bytes.Buffer
	if err := Write(&buf, header, Options{}); err != nil {
		t.Fatal(err)
	}
	if a, e := strings.TrimSpace(buf.String()), strings.TrimSpace(expected); a != e {
		t.Errorf("output differs:\n%v", diff.LineDiff(e, a))
	}
}

func TestWriteFile(t *testing.T) {
	var reg template.Registry
	var header, err = parse.ParseHeader("widgets.soyh",
		strings.NewReader("{namespace acme.widgets}\n{template .spinner}\n{/template}\n"))
	if err != nil {
		t.Fatal(err)
	}
	if err := reg.Add(header); err != nil {
		t.Fatal(err)
	}
	var gen = NewGenerator(&reg).WithOptions(Options{JavaPackage: "com.acme.widgets"})
	var buf bytes.Buffer
	if err := gen.WriteFile(&buf, "widgets.soyh"); err != nil {
		t.Fatal(err)
	}
	for _, want := range []string{
		"package com.acme.widgets;",
		"public final class WidgetsTemplates {",
		`public static final String TEMPLATE_NAME = "acme.widgets.spinner";`,
	} {
		if !strings.Contains(buf.String(), want) {
			t.Errorf("output missing %q", want)
		}
	}
	if err := gen.WriteFile(&buf, "other.soyh"); err != ErrNotFound {
		t.Errorf("expected ErrNotFound, got %v", err)
	}
}

func TestClassName(t *testing.T) {
	var tests = []struct{ input, expected string }{
		{"ui.soyh", "UiTemplates"},
		{"ui_buttons.soyh", "UiButtonsTemplates"},
		{"headers/mail.soyh", "MailTemplates"},
	}
	for _, test := range tests {
		if got := ClassName(test.input); got != test.expected {
			t.Errorf("%v => %v, expected %v", test.input, got, test.expected)
		}
	}
}

func TestUpperCamel(t *testing.T) {
	var tests = []struct{ input, expected string }{
		{"label", "Label"},
		{"maxWidth", "MaxWidth"},
		{"aria_label", "AriaLabel"},
		{"ui-buttons", "UiButtons"},
	}
	for _, test := range tests {
		if got := upperCamel(test.input); got != test.expected {
			t.Errorf("%v => %v, expected %v", test.input, got, test.expected)
		}
	}
}

func TestJavaLiteral(t *testing.T) {
	var tests = []struct {
		value    data.Value
		expected string
	}{
		{data.Null{}, "null"},
		{data.Bool(true), "true"},
		{data.Int(42), "42L"},
		{data.Float(1.5), "1.5"},
		{data.Float(2000), "2000.0"},
		{data.String(`a"b`), `"a\"b"`},
	}
	for _, test := range tests {
		if got := javaLiteral(test.value); got != test.expected {
			t.Errorf("%v => %v, expected %v", test.value, got, test.expected)
		}
	}
}
