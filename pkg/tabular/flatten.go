package tabular

import (
	"strconv"
	"strings"

	"github.com/paec-registry/platform/pkg/common/models"
	"github.com/paec-registry/platform/pkg/schema"
)

// Format selects the header vocabulary of a flattened sheet.
type Format string

const (
	// FormatAnalysis uses the plain descriptive labels.
	FormatAnalysis Format = "analysis"
	// FormatTemplate uses the coded data-entry labels where a field has one,
	// falling back to the plain label where it does not. The cell values are
	// identical in both formats.
	FormatTemplate Format = "template"
)

// SerialColumn is the first column of every export, a 1-based running number
// over the exported rows. It is presentation only and never read on import.
const SerialColumn = "S.NO"

// Flattener turns nested records into rows. Column order follows the field
// table's flatten order, after the serial column.
type Flattener struct {
	res *schema.Resolver
	c   schema.Coercer
}

func NewFlattener(res *schema.Resolver) *Flattener {
	return &Flattener{res: res}
}

func (fl *Flattener) label(f *schema.Field, format Format) string {
	if format == FormatTemplate {
		return f.TemplateLabel()
	}
	return f.Label
}

// columns resolves the exclusion list and returns the retained fields.
// Exclusions are matched against the label of the chosen format,
// case-insensitively; an exclusion that matches nothing is ignored.
func (fl *Flattener) columns(format Format, exclude []string) []*schema.Field {
	excluded := make(map[string]bool, len(exclude))
	for _, e := range exclude {
		excluded[normalizeLabel(e)] = true
	}
	fields := fl.res.Fields()
	kept := make([]*schema.Field, 0, len(fields))
	for i := range fields {
		f := &fields[i]
		if excluded[normalizeLabel(fl.label(f, format))] {
			continue
		}
		kept = append(kept, f)
	}
	return kept
}

// Columns returns the header row for the given format and exclusion list.
func (fl *Flattener) Columns(format Format, exclude []string) []string {
	kept := fl.columns(format, exclude)
	header := make([]string, 0, len(kept)+1)
	header = append(header, SerialColumn)
	for _, f := range kept {
		header = append(header, fl.label(f, format))
	}
	return header
}

// Row flattens one record. seq is the 1-based serial number written to the
// serial column. The second return is how many array values the record holds
// beyond the fixed column expansion and therefore could not appear on the row.
func (fl *Flattener) Row(rec *models.Record, seq int, format Format, exclude []string) ([]string, int) {
	kept := fl.columns(format, exclude)
	row := make([]string, 0, len(kept)+1)
	row = append(row, strconv.Itoa(seq))
	for _, f := range kept {
		row = append(row, fl.c.CoerceOut(f, f.Get(rec)))
	}
	return row, truncatedValues(rec)
}

// Flatten renders a full sheet for the given records. The second return is
// the total count of truncated array values across all records.
func (fl *Flattener) Flatten(recs []models.Record, format Format, exclude []string) (*Sheet, int) {
	s := &Sheet{Header: fl.Columns(format, exclude)}
	truncated := 0
	for i := range recs {
		row, n := fl.Row(&recs[i], i+1, format, exclude)
		s.Rows = append(s.Rows, row)
		truncated += n
	}
	return s, truncated
}

func truncatedValues(rec *models.Record) int {
	n := 0
	if rec.History != nil {
		for i := schema.MaxSiblings; i < len(rec.History.Family.Siblings); i++ {
			s := rec.History.Family.Siblings[i]
			if s.Relation != nil || s.Age != nil || s.Height != nil || s.Weight != nil {
				n++
			}
		}
	}
	if rec.Endocrine != nil {
		n += overflow(rec.Endocrine.GHStimulation.Clonidine, len(schema.ClonidineTimepoints))
		n += overflow(rec.Endocrine.GHStimulation.Glucagon, len(schema.GlucagonTimepoints))
	}
	return n
}

func overflow(slots []*float64, limit int) int {
	n := 0
	for i := limit; i < len(slots); i++ {
		if slots[i] != nil {
			n++
		}
	}
	return n
}

func normalizeLabel(l string) string {
	return strings.Join(strings.Fields(strings.ToLower(l)), " ")
}
