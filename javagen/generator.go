package javagen

import (
	"errors"
	"io"

	"github.com/gosoy/sauce/template"
)

// Generator provides an interface to a template registry capable of
// generating Java invocation builders for the embodied templates.
type Generator struct {
	registry *template.Registry
	opts     Options
}

// NewGenerator returns a generator for the templates in the given registry.
func NewGenerator(registry *template.Registry) *Generator {
	return &Generator{registry: registry}
}

// WithOptions sets the options used by WriteFile.
func (gen *Generator) WithOptions(opts Options) *Generator {
	gen.opts = opts
	return gen
}

var ErrNotFound = errors.New("file not found")

// WriteFile generates Java corresponding to the signature file of the
// given name.
func (gen *Generator) WriteFile(out io.Writer, filename string) error {
	for _, file := range gen.registry.SoyFiles {
		if file.Name == filename {
			return Write(out, file, gen.opts)
		}
	}
	return ErrNotFound
}
