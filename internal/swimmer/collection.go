package swimmer

import (
	"sort"

	"github.com/san-kum/swimz/internal/field"
)

// Collection holds one swimmer per named field configuration for a given
// particle, so callers can reuse preconfigured instances instead of
// rebuilding them per swim. Each swimmer still allows only one live call
// at a time.
type Collection struct {
	swimmers map[string]*Swimmer
}

func NewCollection(q, p float64, fields map[string]field.Field) *Collection {
	c := &Collection{swimmers: make(map[string]*Swimmer, len(fields))}
	for name, f := range fields {
		c.swimmers[name] = New(f, q, p)
	}
	return c
}

// Swimmer returns the swimmer for a field configuration, or nil.
func (c *Collection) Swimmer(name string) *Swimmer {
	return c.swimmers[name]
}

func (c *Collection) Names() []string {
	names := make([]string, 0, len(c.swimmers))
	for name := range c.swimmers {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
