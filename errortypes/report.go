package errortypes

import (
	"errors"
	"fmt"
)

// Location identifies a position in a source file.
type Location struct {
	File string
	Line int
	Col  int
}

func (l Location) String() string { return fmt.Sprintf("%s:%d:%d", l.File, l.Line, l.Col) }

// Kind is a reusable, parameterized kind of error.  Passes declare their
// kinds as package variables so every occurrence of a problem is worded the
// same way.
type Kind struct {
	format string
}

// Kindf declares a kind from a fmt format string.
func Kindf(format string) Kind { return Kind{format} }

// Errorf instantiates the kind at a location.  The result is an ErrFilePos
// whose message leads with the location.
func (k Kind) Errorf(loc Location, args ...interface{}) error {
	return NewErrFilePosf(loc.File, loc.Line, loc.Col,
		"%s: "+k.format, append([]interface{}{loc}, args...)...)
}

// Reporter receives structured errors from passes that continue past the
// first failure.
type Reporter interface {
	Report(loc Location, kind Kind, args ...interface{})
}

// Collector is a Reporter that records every report.  The zero value is
// ready to use.
type Collector struct {
	errs []error
}

func (c *Collector) Report(loc Location, kind Kind, args ...interface{}) {
	c.errs = append(c.errs, kind.Errorf(loc, args...))
}

// HasErrors reports whether anything was reported.
func (c *Collector) HasErrors() bool { return len(c.errs) > 0 }

// Errors returns the reported errors in order.
func (c *Collector) Errors() []error { return c.errs }

// ToError joins the reported errors into one, or returns nil if there were
// none.
func (c *Collector) ToError() error { return errors.Join(c.errs...) }
