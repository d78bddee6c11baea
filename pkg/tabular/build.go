package tabular

import (
	"errors"
	"fmt"
	"strings"

	"github.com/paec-registry/platform/pkg/common/models"
	"github.com/paec-registry/platform/pkg/schema"
)

// ErrMissingNaturalKey rejects a row that carries data but no PAEC number.
// Without the key there is nothing to match the row against.
var ErrMissingNaturalKey = errors.New("row has no PAEC number")

// PatchEntry is one field value parsed from a row.
type PatchEntry struct {
	Field *schema.Field
	Value interface{}
}

// Patch is the typed result of parsing one data row: the natural key plus the
// field values the row actually carried. Blank and NA cells contribute
// nothing, so applying a patch never clears a stored value.
type Patch struct {
	key      string
	entries  []PatchEntry
	sections map[schema.Section]bool
}

// Key is the row's PAEC number.
func (p *Patch) Key() string { return p.key }

// Entries returns the parsed values in column order.
func (p *Patch) Entries() []PatchEntry { return p.entries }

// Len is how many field values the row carried.
func (p *Patch) Len() int { return len(p.entries) }

// Apply writes the patch onto rec and marks every touched section present.
func (p *Patch) Apply(rec *models.Record) {
	for _, e := range p.entries {
		e.Field.Set(rec, e.Value)
	}
	for section := range p.sections {
		markPresent(rec, section)
	}
}

func markPresent(rec *models.Record, section schema.Section) {
	switch section {
	case schema.SectionHistory:
		if rec.History != nil {
			rec.History.Present = true
		}
	case schema.SectionExamination:
		if rec.Examination != nil {
			rec.Examination.Present = true
		}
	case schema.SectionInvestigations:
		if rec.Investigations != nil {
			rec.Investigations.Present = true
		}
	case schema.SectionEndocrine:
		if rec.Endocrine != nil {
			rec.Endocrine.Present = true
		}
	case schema.SectionImaging:
		if rec.Imaging != nil {
			rec.Imaging.Present = true
		}
	case schema.SectionTreatment:
		if rec.Treatment != nil {
			rec.Treatment.Present = true
		}
	case schema.SectionDiagnosis:
		if rec.Diagnosis != nil {
			rec.Diagnosis.Present = true
		}
	case schema.SectionRemarks:
		if rec.Remarks != nil {
			rec.Remarks.Present = true
		}
	}
}

// Builder parses data rows against a resolved header. One Builder serves a
// whole import run; it is stateless across rows.
type Builder struct {
	res *schema.Resolver
	c   schema.Coercer
}

func NewBuilder(res *schema.Resolver) *Builder {
	return &Builder{res: res}
}

// Build parses one row. The returned warnings name unknown columns that held
// data; they do not fail the row. A coercion failure or a missing natural key
// fails the whole row: partial rows are never applied.
func (b *Builder) Build(header []string, row []string) (*Patch, []string, error) {
	p := &Patch{sections: make(map[schema.Section]bool)}
	var warnings []string

	for j, h := range header {
		cell := strings.TrimSpace(Cell(row, j))
		if cell == "" || cell == schema.NA {
			continue
		}
		f, ok := b.res.Resolve(h)
		if !ok {
			if strings.TrimSpace(h) == "" || normalizeLabel(h) == normalizeLabel(SerialColumn) {
				continue
			}
			warnings = append(warnings, fmt.Sprintf("unknown column %q ignored", h))
			continue
		}
		v, err := b.c.CoerceIn(f, cell)
		if err != nil {
			return nil, warnings, err
		}
		if f.NaturalKey {
			p.key = v.(string)
		}
		p.entries = append(p.entries, PatchEntry{Field: f, Value: v})
		p.sections[f.Section] = true
	}

	if p.key == "" {
		return nil, warnings, ErrMissingNaturalKey
	}
	return p, warnings, nil
}

// Blank reports whether the row has no usable cells at all. Fully blank rows
// are skipped by imports rather than reported as key errors.
func Blank(row []string) bool {
	for _, cell := range row {
		if strings.TrimSpace(cell) != "" {
			return false
		}
	}
	return true
}
