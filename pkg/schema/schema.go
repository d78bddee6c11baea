package schema

import (
	"time"

	"github.com/paec-registry/platform/pkg/common/models"
)

// Kind is the typed value expected at a schema path.
type Kind int

const (
	KindText Kind = iota
	KindInt
	KindFloat
	KindDate
	KindBool
)

func (k Kind) String() string {
	switch k {
	case KindInt:
		return "int"
	case KindFloat:
		return "float"
	case KindDate:
		return "date"
	case KindBool:
		return "bool"
	default:
		return "text"
	}
}

// BoolEncoding names the sentinel pair a boolean path uses on the wire. The
// encoding is a per-path attribute, never inferred from the cell content.
type BoolEncoding int

const (
	BoolNone   BoolEncoding = iota
	BoolYesNo               // "Yes" / "No"
	BoolOneTwo              // "1" / "2"
)

func (b BoolEncoding) String() string {
	switch b {
	case BoolYesNo:
		return "yes/no"
	case BoolOneTwo:
		return "1/2"
	default:
		return ""
	}
}

// Section identifies the owning sub-document of a field. Sections are listed
// in flatten order; export column order follows this enumeration.
type Section int

const (
	SectionIdentity Section = iota
	SectionHistory
	SectionExamination
	SectionInvestigations
	SectionEndocrine
	SectionImaging
	SectionTreatment
	SectionDiagnosis
	SectionRemarks
)

func (s Section) String() string {
	switch s {
	case SectionIdentity:
		return "identity"
	case SectionHistory:
		return "history"
	case SectionExamination:
		return "examination"
	case SectionInvestigations:
		return "investigations"
	case SectionEndocrine:
		return "endocrine"
	case SectionImaging:
		return "imaging"
	case SectionTreatment:
		return "treatment"
	case SectionDiagnosis:
		return "diagnosis"
	default:
		return "remarks"
	}
}

// Field is one canonical path in the record schema together with everything
// the import/export engine needs to know about it: how headers resolve to it,
// what it is called on the way out, how its cells are typed, and how to read
// and write it on a Record.
//
// Values flowing through Get/Set are plain string, int, float64, bool, or
// time.Time; Get returns nil for an unset field.
type Field struct {
	Path     string
	Label    string   // canonical export label (analysis format)
	Template string   // round-trip template label; empty means same as Label
	Synonyms []string // additional accepted import spellings

	Kind    Kind
	Bool    BoolEncoding
	Section Section

	NaturalKey  bool
	ZeroDefault bool // ints that coerce non-numeric cells to 0 instead of failing
	Sensitive   bool // diffed as a redacted placeholder, never the real value

	Get func(r *models.Record) interface{}
	Set func(r *models.Record, v interface{})
}

// TemplateLabel returns the label the field exports under in template format.
func (f *Field) TemplateLabel() string {
	if f.Template != "" {
		return f.Template
	}
	return f.Label
}

// nil-safe pointer helpers used by the field table accessors.

func sv(p *string) interface{} {
	if p == nil {
		return nil
	}
	return *p
}

func sp(v interface{}) *string {
	s := v.(string)
	return &s
}

func iv(p *int) interface{} {
	if p == nil {
		return nil
	}
	return *p
}

func ip(v interface{}) *int {
	n := v.(int)
	return &n
}

func fv(p *float64) interface{} {
	if p == nil {
		return nil
	}
	return *p
}

func fp(v interface{}) *float64 {
	f := v.(float64)
	return &f
}

func bv(p *bool) interface{} {
	if p == nil {
		return nil
	}
	return *p
}

func bp(v interface{}) *bool {
	b := v.(bool)
	return &b
}

func dv(p *time.Time) interface{} {
	if p == nil {
		return nil
	}
	return *p
}

func dp(v interface{}) *time.Time {
	t := v.(time.Time)
	return &t
}
