package pattern

import (
	"fmt"
	"io"
	"maps"
	"slices"

	"github.com/BurntSushi/toml"
)

// Library is a set of named patterns, loaded from TOML of the form
//
//	[patterns]
//	adder = "(+ #?(integer) #?(integer))"
type Library struct {
	patterns map[string]*Pattern
}

type libraryFile struct {
	Patterns map[string]string `toml:"patterns"`
}

func LoadLibrary(r io.Reader) (*Library, error) {
	var f libraryFile
	md, err := toml.NewDecoder(r).Decode(&f)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrLibrary, err)
	}
	return newLibrary(md, &f)
}

func LoadLibraryFile(path string) (*Library, error) {
	var f libraryFile
	md, err := toml.DecodeFile(path, &f)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %w", ErrLibrary, path, err)
	}
	return newLibrary(md, &f)
}

func newLibrary(md toml.MetaData, f *libraryFile) (*Library, error) {
	if und := md.Undecoded(); len(und) != 0 {
		return nil, fmt.Errorf("%w: unknown key %s", ErrLibrary, und[0])
	}
	lib := &Library{patterns: make(map[string]*Pattern, len(f.Patterns))}
	for name, src := range f.Patterns {
		p, err := CompilePattern(src)
		if err != nil {
			return nil, fmt.Errorf("%w: pattern %q: %w", ErrLibrary, name, err)
		}
		lib.patterns[name] = p
	}
	return lib, nil
}

func (l *Library) Get(name string) (*Pattern, bool) {
	p, ok := l.patterns[name]
	return p, ok
}

// Names returns the pattern names in sorted order.
func (l *Library) Names() []string {
	return slices.Sorted(maps.Keys(l.patterns))
}
