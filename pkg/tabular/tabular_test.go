package tabular

import (
	"bytes"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/paec-registry/platform/pkg/common/models"
	"github.com/paec-registry/platform/pkg/schema"
)

func strp(s string) *string        { return &s }
func intp(n int) *int              { return &n }
func flp(x float64) *float64       { return &x }
func boolp(b bool) *bool           { return &b }
func datep(t time.Time) *time.Time { return &t }

func sampleRecord() *models.Record {
	dob := time.Date(2014, time.June, 15, 0, 0, 0, 0, time.UTC)
	return &models.Record{
		Identity: models.Identity{
			PaecNo: "PAEC001",
			Name:   strp("Asha Rao"),
			Age:    intp(9),
			Sex:    strp("F"),
			DOB:    datep(dob),
		},
		History: &models.History{
			Present: true,
			Birth: models.BirthHistory{
				Weight:  flp(2.75),
				Hypoxia: boolp(false),
			},
		},
		Imaging: &models.MRIStudy{
			Present:   true,
			Performed: boolp(true),
		},
	}
}

func TestReadCSVRoundTrip(t *testing.T) {
	in := "PAEC No,Patient Name,Age\nPAEC001,Asha Rao,9\nPAEC002,,\n"
	s, err := ReadCSV(strings.NewReader(in))
	if err != nil {
		t.Fatalf("ReadCSV: %v", err)
	}
	if len(s.Header) != 3 || s.Header[0] != "PAEC No" {
		t.Fatalf("header = %v", s.Header)
	}
	if len(s.Rows) != 2 {
		t.Fatalf("rows = %d", len(s.Rows))
	}

	var buf bytes.Buffer
	if err := s.WriteCSV(&buf); err != nil {
		t.Fatalf("WriteCSV: %v", err)
	}
	if buf.String() != in {
		t.Fatalf("round trip = %q", buf.String())
	}
}

func TestReadCSVEmpty(t *testing.T) {
	if _, err := ReadCSV(strings.NewReader("")); !errors.Is(err, ErrEmptySheet) {
		t.Fatalf("err = %v", err)
	}
}

func TestFlattenSerialAndNA(t *testing.T) {
	res := schema.NewResolver()
	fl := NewFlattener(res)

	sheet, truncated := fl.Flatten([]models.Record{*sampleRecord()}, FormatAnalysis, nil)
	if truncated != 0 {
		t.Fatalf("truncated = %d", truncated)
	}
	if sheet.Header[0] != SerialColumn {
		t.Fatalf("first column = %q", sheet.Header[0])
	}
	if len(sheet.Header) != len(res.Fields())+1 {
		t.Fatalf("header width = %d, fields = %d", len(sheet.Header), len(res.Fields()))
	}

	row := sheet.Rows[0]
	if row[0] != "1" {
		t.Fatalf("serial = %q", row[0])
	}
	got := cellByHeader(t, sheet, row, "PAEC No")
	if got != "PAEC001" {
		t.Fatalf("PAEC No = %q", got)
	}
	if got := cellByHeader(t, sheet, row, "Birth Weight"); got != "2.75" {
		t.Fatalf("Birth Weight = %q", got)
	}
	if got := cellByHeader(t, sheet, row, "Birth Hypoxia"); got != "No" {
		t.Fatalf("Birth Hypoxia = %q", got)
	}
	if got := cellByHeader(t, sheet, row, "DOB"); got != "15-06-2014" {
		t.Fatalf("DOB = %q", got)
	}
	// A field the record never carried is the NA sentinel, not blank.
	if got := cellByHeader(t, sheet, row, "Remarks"); got != schema.NA {
		t.Fatalf("Remarks = %q", got)
	}
}

func TestFlattenTemplateLabels(t *testing.T) {
	res := schema.NewResolver()
	fl := NewFlattener(res)

	header := fl.Columns(FormatTemplate, nil)
	want := map[string]bool{
		"PAEC":                         false,
		"AgeBL":                        false,
		"MRI Yes 1 or no 2":            false,
		"PreGH-Hypothyroidism Y 1 N 2": false,
	}
	for _, h := range header {
		if _, ok := want[h]; ok {
			want[h] = true
		}
	}
	for label, seen := range want {
		if !seen {
			t.Fatalf("template header missing %q", label)
		}
	}

	// Cell values are format-independent.
	row, _ := fl.Row(sampleRecord(), 1, FormatTemplate, nil)
	sheet := &Sheet{Header: header}
	if got := cellByHeader(t, sheet, row, "MRI Yes 1 or no 2"); got != "1" {
		t.Fatalf("MRI cell = %q", got)
	}
}

func TestFlattenExclusion(t *testing.T) {
	res := schema.NewResolver()
	fl := NewFlattener(res)

	exclude := []string{"Phone 1", "phone 2", "LANDLINE", "No Such Column"}
	header := fl.Columns(FormatAnalysis, exclude)
	for _, h := range header {
		for _, gone := range []string{"Phone 1", "Phone 2", "Landline"} {
			if h == gone {
				t.Fatalf("excluded column %q still present", h)
			}
		}
	}
	if len(header) != len(res.Fields())+1-3 {
		t.Fatalf("header width = %d", len(header))
	}

	row, _ := fl.Row(sampleRecord(), 1, FormatAnalysis, exclude)
	if len(row) != len(header) {
		t.Fatalf("row width %d != header width %d", len(row), len(header))
	}
}

func TestFlattenTruncation(t *testing.T) {
	res := schema.NewResolver()
	fl := NewFlattener(res)

	rec := sampleRecord()
	for i := 0; i < schema.MaxSiblings+2; i++ {
		rec.History.Family.Siblings = append(rec.History.Family.Siblings, models.Sibling{Age: intp(10 + i)})
	}
	rec.Endocrine = &models.EndocrineWorkup{}
	for i := 0; i <= len(schema.GlucagonTimepoints); i++ {
		v := float64(i)
		rec.Endocrine.GHStimulation.Glucagon = append(rec.Endocrine.GHStimulation.Glucagon, &v)
	}

	_, truncated := fl.Row(rec, 1, FormatAnalysis, nil)
	if truncated != 3 {
		t.Fatalf("truncated = %d, want 3", truncated)
	}
}

func TestBuildRow(t *testing.T) {
	res := schema.NewResolver()
	b := NewBuilder(res)

	header := []string{"S.NO", "PAEC No", "Patient Name", "Age", "Birth Weight", "Mystery"}
	row := []string{"1", " PAEC001 ", "Asha Rao", "9", "NA", "something"}

	p, warnings, err := b.Build(header, row)
	if err != nil {
		t.Fatalf("Build: %v", err)
	}
	if p.Key() != "PAEC001" {
		t.Fatalf("key = %q", p.Key())
	}
	if len(warnings) != 1 || !strings.Contains(warnings[0], "Mystery") {
		t.Fatalf("warnings = %v", warnings)
	}
	// NA cell contributes nothing.
	if p.Len() != 3 {
		t.Fatalf("entries = %d", p.Len())
	}

	rec := &models.Record{}
	p.Apply(rec)
	if rec.Identity.PaecNo != "PAEC001" {
		t.Fatalf("paec = %q", rec.Identity.PaecNo)
	}
	if rec.Identity.Name == nil || *rec.Identity.Name != "Asha Rao" {
		t.Fatalf("name = %v", rec.Identity.Name)
	}
	if rec.History != nil {
		t.Fatal("untouched section was created")
	}
}

func TestBuildMarksPresent(t *testing.T) {
	res := schema.NewResolver()
	b := NewBuilder(res)

	p, _, err := b.Build(
		[]string{"PAEC No", "Birth Weight", "Remarks"},
		[]string{"PAEC009", "3.1", "doing well"},
	)
	if err != nil {
		t.Fatalf("Build: %v", err)
	}

	rec := &models.Record{}
	p.Apply(rec)
	if rec.History == nil || !rec.History.Present {
		t.Fatal("history not marked present")
	}
	if rec.Remarks == nil || !rec.Remarks.Present {
		t.Fatal("remarks not marked present")
	}
}

func TestBuildMissingKey(t *testing.T) {
	res := schema.NewResolver()
	b := NewBuilder(res)

	_, _, err := b.Build([]string{"PAEC No", "Patient Name"}, []string{"", "Asha Rao"})
	if !errors.Is(err, ErrMissingNaturalKey) {
		t.Fatalf("err = %v", err)
	}
	_, _, err = b.Build([]string{"Patient Name"}, []string{"Asha Rao"})
	if !errors.Is(err, ErrMissingNaturalKey) {
		t.Fatalf("headerless key: err = %v", err)
	}
}

func TestBuildCoercionFailureFailsRow(t *testing.T) {
	res := schema.NewResolver()
	b := NewBuilder(res)

	_, _, err := b.Build(
		[]string{"PAEC No", "Birth Weight"},
		[]string{"PAEC001", "heavy"},
	)
	if err == nil {
		t.Fatal("expected coercion error")
	}
	if !strings.Contains(err.Error(), "Birth Weight") {
		t.Fatalf("err = %v", err)
	}
}

func TestBuildRaggedRow(t *testing.T) {
	res := schema.NewResolver()
	b := NewBuilder(res)

	p, _, err := b.Build(
		[]string{"PAEC No", "Patient Name", "Age"},
		[]string{"PAEC001"},
	)
	if err != nil {
		t.Fatalf("Build: %v", err)
	}
	if p.Len() != 1 {
		t.Fatalf("entries = %d", p.Len())
	}
}

func TestBlank(t *testing.T) {
	if !Blank([]string{"", "  ", ""}) {
		t.Fatal("blank row not detected")
	}
	if Blank([]string{"", "x"}) {
		t.Fatal("non-blank row reported blank")
	}
}

// TestRoundTrip flattens a record and rebuilds it from its own row. Every
// value the record carried must survive; the NA cells must leave the rebuilt
// record's untouched fields unset.
func TestRoundTrip(t *testing.T) {
	res := schema.NewResolver()
	fl := NewFlattener(res)
	b := NewBuilder(res)

	orig := sampleRecord()
	sheet, _ := fl.Flatten([]models.Record{*orig}, FormatAnalysis, nil)

	p, warnings, err := b.Build(sheet.Header, sheet.Rows[0])
	if err != nil {
		t.Fatalf("Build: %v", err)
	}
	if len(warnings) != 0 {
		t.Fatalf("warnings = %v", warnings)
	}

	rebuilt := &models.Record{}
	p.Apply(rebuilt)

	for i := range res.Fields() {
		f := &res.Fields()[i]
		want := f.Get(orig)
		got := f.Get(rebuilt)
		if want != got {
			t.Fatalf("%s: want %v, got %v", f.Path, want, got)
		}
	}
	if rebuilt.Investigations != nil {
		t.Fatal("round trip invented an investigations section")
	}
}

func cellByHeader(t *testing.T, s *Sheet, row []string, header string) string {
	t.Helper()
	for j, h := range s.Header {
		if h == header {
			return Cell(row, j)
		}
	}
	t.Fatalf("header %q not in sheet", header)
	return ""
}
