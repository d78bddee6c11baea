package schema

import (
	"fmt"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"
)

// Resolver maps spreadsheet headers to schema fields and back. Matching is
// case-insensitive and whitespace-collapsed: "PAEC NO", "paec no" and
// " PAEC  No " all resolve to the same field. Resolution is total over the
// field table's labels, template labels, and synonyms; anything else is an
// unknown header and the caller decides whether to warn or fail.
type Resolver struct {
	fields     []Field
	byHeader   map[string]*Field
	byPath     map[string]*Field
	naturalKey *Field
}

// NewResolver builds the resolver from the static field table. It panics on a
// duplicate header mapping, which can only happen when the table itself is
// edited inconsistently.
func NewResolver() *Resolver {
	fields := fieldTable()
	r := &Resolver{
		fields:   fields,
		byHeader: make(map[string]*Field, len(fields)*2),
		byPath:   make(map[string]*Field, len(fields)),
	}
	for i := range fields {
		f := &fields[i]
		if _, ok := r.byPath[f.Path]; ok {
			panic("schema: duplicate field path " + f.Path)
		}
		r.byPath[f.Path] = f

		headers := append([]string{f.Label, f.TemplateLabel()}, f.Synonyms...)
		for _, h := range headers {
			key := normalizeHeader(h)
			if key == "" {
				continue
			}
			if prev, ok := r.byHeader[key]; ok && prev != f {
				panic(fmt.Sprintf("schema: header %q maps to both %s and %s", h, prev.Path, f.Path))
			}
			r.byHeader[key] = f
		}

		if f.NaturalKey {
			if r.naturalKey != nil {
				panic("schema: more than one natural key field")
			}
			r.naturalKey = f
		}
	}
	if r.naturalKey == nil {
		panic("schema: field table has no natural key")
	}
	return r
}

// Resolve maps one header cell to its field.
func (r *Resolver) Resolve(header string) (*Field, bool) {
	f, ok := r.byHeader[normalizeHeader(header)]
	return f, ok
}

// ByPath looks a field up by its dotted document path.
func (r *Resolver) ByPath(path string) (*Field, bool) {
	f, ok := r.byPath[path]
	return f, ok
}

// Fields returns the table in flatten order. Callers must not mutate it.
func (r *Resolver) Fields() []Field {
	return r.fields
}

// NaturalKey returns the field whose value identifies a record across
// import and export.
func (r *Resolver) NaturalKey() *Field {
	return r.naturalKey
}

// NaturalKeyPath is the dotted path of the natural key field.
func (r *Resolver) NaturalKeyPath() string {
	return r.naturalKey.Path
}

type mappingEntry struct {
	Path     string   `yaml:"path"`
	Label    string   `yaml:"label"`
	Template string   `yaml:"template,omitempty"`
	Synonyms []string `yaml:"synonyms,omitempty"`
	Kind     string   `yaml:"kind"`
	Bool     string   `yaml:"bool,omitempty"`
	Section  string   `yaml:"section"`
	Key      bool     `yaml:"natural_key,omitempty"`
}

// DumpYAML renders the header mapping as YAML, one entry per field in flatten
// order. The dump is what goes into version control next to schema changes so
// a column rename shows up in review as a diff, not as a silent remap.
func (r *Resolver) DumpYAML() ([]byte, error) {
	entries := make([]mappingEntry, 0, len(r.fields))
	for i := range r.fields {
		f := &r.fields[i]
		e := mappingEntry{
			Path:    f.Path,
			Label:   f.Label,
			Kind:    f.Kind.String(),
			Section: f.Section.String(),
			Key:     f.NaturalKey,
		}
		if f.Template != "" {
			e.Template = f.Template
		}
		if len(f.Synonyms) > 0 {
			e.Synonyms = append([]string(nil), f.Synonyms...)
			sort.Strings(e.Synonyms)
		}
		if f.Kind == KindBool {
			e.Bool = f.Bool.String()
		}
		entries = append(entries, e)
	}
	return yaml.Marshal(entries)
}

func normalizeHeader(h string) string {
	return strings.Join(strings.Fields(strings.ToLower(h)), " ")
}
