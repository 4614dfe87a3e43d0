/*
Package javagen generates Java invocation builders from template signature
files.

For each signature file it emits one final Java class holding a nested
builder per public template.  A builder carries the template's fully
qualified name as a constant, a typed setter per declared parameter,
declared defaults pre-populated, and a build() that verifies every required
parameter was set.

Usage

	registry, err := javagen.NewBundle().
		AddHeaderDir("ui/headers").
		AddGlobalsFile("ui/globals.txt").
		Compile()
	...
	var gen = javagen.NewGenerator(registry)
	err = gen.WriteFile(out, "ui/headers/buttons.soyh")
*/
package javagen
