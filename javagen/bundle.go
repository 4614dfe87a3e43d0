package javagen

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/sirupsen/logrus"

	"github.com/gosoy/sauce/data"
	"github.com/gosoy/sauce/parse"
	"github.com/gosoy/sauce/template"
)

var log = logrus.WithField("subsys", "javagen")

type headerFile struct{ name, content string }

// Bundle is a collection of signature content (headers and globals).  It
// acts as input for the registry compiler.
type Bundle struct {
	files                 []headerFile
	globals               data.Map
	err                   error
	watcher               *fsnotify.Watcher
	recompilationCallback func(*template.Registry)
}

// NewBundle returns an empty bundle.
func NewBundle() *Bundle {
	return &Bundle{globals: make(data.Map)}
}

// WatchFiles tells the bundle to watch any header files added to it,
// re-compile as necessary, and propagate the updates to the registry
// returned by Compile.  It should be called once, before adding any files.
func (b *Bundle) WatchFiles(watch bool) *Bundle {
	if watch && b.err == nil && b.watcher == nil {
		b.watcher, b.err = fsnotify.NewWatcher()
	}
	return b
}

// AddHeaderDir adds all *.soyh files found within the given directory
// (including sub-directories) to the bundle.
func (b *Bundle) AddHeaderDir(root string) *Bundle {
	var err = filepath.Walk(root, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			return err
		}
		if info.IsDir() {
			return nil
		}
		if !strings.HasSuffix(path, ".soyh") {
			return nil
		}
		b.AddHeaderFile(path)
		return nil
	})
	if err != nil {
		b.err = err
	}
	return b
}

// AddHeaderFile adds the given signature file to this bundle.
// If WatchFiles is on, it will be subsequently watched for updates.
func (b *Bundle) AddHeaderFile(filename string) *Bundle {
	content, err := os.ReadFile(filename)
	if err != nil {
		b.err = err
	}
	if b.err == nil && b.watcher != nil {
		b.err = b.watcher.Add(filename)
	}
	return b.AddHeaderString(filename, string(content))
}

// AddHeaderString adds the given signature content to the bundle.  The name
// is used for error messages and to derive the generated class name - it
// does not need to be a real filename.
func (b *Bundle) AddHeaderString(filename, content string) *Bundle {
	b.files = append(b.files, headerFile{filename, content})
	return b
}

// AddGlobalsFile opens and parses the given filename for globals, and adds
// the resulting data map to the bundle.
func (b *Bundle) AddGlobalsFile(filename string) *Bundle {
	var f, err = os.Open(filename)
	if err != nil {
		b.err = err
		return b
	}
	globals, err := parse.ParseGlobals(f)
	if err != nil {
		b.err = err
	}
	f.Close()
	return b.AddGlobalsMap(globals)
}

func (b *Bundle) AddGlobalsMap(globals data.Map) *Bundle {
	for k, v := range globals {
		if existing, ok := b.globals[k]; ok {
			b.err = fmt.Errorf("global %q already defined as %q", k, existing)
			return b
		}
		b.globals[k] = v
	}
	return b
}

// SetRecompilationCallback assigns the bundle a function to call after
// recompilation.  This is called before updating the in-use registry.
func (b *Bundle) SetRecompilationCallback(c func(*template.Registry)) *Bundle {
	b.recompilationCallback = c
	return b
}

// Compile parses all of the signature files in this bundle, resolves any
// global references in parameter defaults, and returns the completed
// registry.
func (b *Bundle) Compile() (*template.Registry, error) {
	if b.err != nil {
		return nil, b.err
	}

	var registry = template.Registry{}
	for _, file := range b.files {
		var header, err = parse.ParseHeader(file.name, strings.NewReader(file.content))
		if err != nil {
			return nil, err
		}
		if err = registry.Add(header); err != nil {
			return nil, err
		}
	}
	if err := template.SetGlobals(&registry, b.globals); err != nil {
		return nil, err
	}

	if b.watcher != nil {
		go b.recompiler(&registry)
	}
	return &registry, nil
}

func (b *Bundle) recompiler(reg *template.Registry) {
	for {
		select {
		case ev := <-b.watcher.Events:
			// If the file was renamed or removed, the watch went with it.
			// Add it back, after a delay.
			if ev.Has(fsnotify.Rename) || ev.Has(fsnotify.Remove) {
				time.Sleep(10 * time.Millisecond)
				if err := b.watcher.Add(ev.Name); err != nil {
					log.WithError(err).Warn("could not re-add watch")
				}
			}

			// Recompile all the headers.
			var bundle = NewBundle().AddGlobalsMap(b.globals)
			for _, file := range b.files {
				bundle.AddHeaderFile(file.name)
			}
			var registry, err = bundle.Compile()
			if err != nil {
				log.WithError(err).Error("recompilation failed")
				continue
			}

			if b.recompilationCallback != nil {
				b.recompilationCallback(registry)
			}

			// Update the existing registry.  (This is not goroutine-safe,
			// but that seems ok for a development aid, as long as it works
			// in practice.)
			*reg = *registry
			log.WithField("event", ev).Info("update successful")

		case err := <-b.watcher.Errors:
			log.WithError(err).Warn("watcher error")
		}
	}
}
