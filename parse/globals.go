package parse

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/gosoy/sauce/data"
	"github.com/gosoy/sauce/soytree"
)

// ParseGlobals parses the given input, expecting one definition per line:
//
//	<global_name> = <primitive_literal>
//
// Empty lines and lines beginning with '//' are ignored.  The literal must
// be a primitive accepted by ParseLiteral.
func ParseGlobals(input io.Reader) (data.Map, error) {
	var globals = make(data.Map)
	var scanner = bufio.NewScanner(input)
	for scanner.Scan() {
		var line = strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "//") {
			continue
		}
		var eq = strings.IndexByte(line, '=')
		if eq == -1 {
			return nil, fmt.Errorf("no equals on line: %q", line)
		}
		var (
			name = strings.TrimSpace(line[:eq])
			expr = strings.TrimSpace(line[eq+1:])
		)
		if !soytree.IsDottedIdentifier(name) {
			return nil, fmt.Errorf("invalid global name: %q", name)
		}
		var value, err = ParseLiteral(expr)
		if err != nil {
			return nil, fmt.Errorf("global %s: %v", name, err)
		}
		globals[name] = value
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return globals, nil
}
