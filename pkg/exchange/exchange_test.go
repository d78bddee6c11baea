package exchange

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/paec-registry/platform/pkg/common/models"
	"github.com/paec-registry/platform/pkg/records"
	"github.com/paec-registry/platform/pkg/schema"
	"github.com/paec-registry/platform/pkg/tabular"
)

type memStore struct {
	recs map[string]*models.Record
}

func newMemStore() *memStore {
	return &memStore{recs: make(map[string]*models.Record)}
}

func (s *memStore) FindByNaturalKey(_ context.Context, paecNo string, scope models.ScopeFilter) (*models.Record, error) {
	for _, r := range s.recs {
		if r.Identity.PaecNo != strings.TrimSpace(paecNo) || r.Deleted.Status {
			continue
		}
		if !inScope(r, scope) {
			continue
		}
		cp := *r
		return &cp, nil
	}
	return nil, records.ErrNotFound
}

func (s *memStore) FindMany(_ context.Context, q models.RecordQuery, scope models.ScopeFilter) ([]models.Record, error) {
	var out []models.Record
	for _, r := range s.recs {
		if r.Deleted.Status || !inScope(r, scope) {
			continue
		}
		if q.PaecNo != "" && !strings.Contains(r.Identity.PaecNo, q.PaecNo) {
			continue
		}
		out = append(out, *r)
	}
	if len(out) == 0 {
		return nil, records.ErrNoRecords
	}
	return out, nil
}

func (s *memStore) Save(_ context.Context, rec *models.Record) error {
	cp := *rec
	s.recs[rec.ID.String()] = &cp
	return nil
}

func inScope(r *models.Record, scope models.ScopeFilter) bool {
	if scope.CreatedBy != "" && r.CreatedBy != scope.CreatedBy {
		return false
	}
	if scope.CenterID != "" && r.CenterID != scope.CenterID {
		return false
	}
	return true
}

type auditCall struct {
	action  string
	subject string
	payload map[string]interface{}
}

type memAudit struct {
	calls []auditCall
}

func (a *memAudit) Append(_ context.Context, _, action, _, subject string, payload map[string]interface{}) error {
	a.calls = append(a.calls, auditCall{action: action, subject: subject, payload: payload})
	return nil
}

type memCache struct {
	byRun map[string]*models.ImportSummary
}

func newMemCache() *memCache {
	return &memCache{byRun: make(map[string]*models.ImportSummary)}
}

func (c *memCache) Put(_ context.Context, summary *models.ImportSummary) error {
	cp := *summary
	c.byRun[summary.RunID] = &cp
	return nil
}

func (c *memCache) Get(_ context.Context, runID string) (*models.ImportSummary, error) {
	if s, ok := c.byRun[runID]; ok {
		cp := *s
		return &cp, nil
	}
	return nil, ErrRunNotFound
}

func sheetOf(header string, rows ...string) *tabular.Sheet {
	s, err := tabular.ReadCSV(strings.NewReader(header + "\n" + strings.Join(rows, "\n") + "\n"))
	if err != nil {
		panic(err)
	}
	return s
}

func TestRunImportCreates(t *testing.T) {
	store := newMemStore()
	audit := &memAudit{}
	cache := newMemCache()
	svc := NewService(store, audit, cache, Options{})
	actor := models.Actor{ID: "dr.mehta", CenterID: "aiims-delhi"}

	sheet := sheetOf(
		"S.NO,PAEC No,Patient Name,Age,Birth Weight",
		"1,PAEC001,Asha Rao,9,2.75",
	)
	summary, err := svc.RunImport(context.Background(), sheet, actor)
	if err != nil {
		t.Fatalf("RunImport: %v", err)
	}

	if summary.TotalRows != 1 || summary.Created != 1 || summary.Updated != 0 {
		t.Fatalf("summary = %+v", summary)
	}
	if len(summary.Errors) != 0 {
		t.Fatalf("errors = %v", summary.Errors)
	}
	if summary.RunID == "" {
		t.Fatal("summary has no run id")
	}

	if len(audit.calls) != 1 || audit.calls[0].action != "imported" {
		t.Fatalf("audit = %+v", audit.calls)
	}
	if audit.calls[0].payload["created"] != 1 {
		t.Fatalf("audit payload = %v", audit.calls[0].payload)
	}

	cached, err := cache.Get(context.Background(), summary.RunID)
	if err != nil || cached.Created != 1 {
		t.Fatalf("cached summary = %+v, %v", cached, err)
	}
}

func TestRunImportCreateThenUpdate(t *testing.T) {
	store := newMemStore()
	svc := NewService(store, nil, nil, Options{})
	actor := models.Actor{ID: "dr.mehta"}

	first := sheetOf("PAEC No,Patient Name", "PAEC001,Asha Rao")
	if _, err := svc.RunImport(context.Background(), first, actor); err != nil {
		t.Fatalf("first import: %v", err)
	}

	second := sheetOf("PAEC No,Patient Name", "PAEC001,Asha R Rao")
	summary, err := svc.RunImport(context.Background(), second, models.Actor{ID: "dr.iyer"})
	if err != nil {
		t.Fatalf("second import: %v", err)
	}
	if summary.Created != 0 || summary.Updated != 1 {
		t.Fatalf("summary = %+v", summary)
	}

	if len(store.recs) != 1 {
		t.Fatalf("stored records = %d", len(store.recs))
	}
	for _, rec := range store.recs {
		if rec.Identity.Name == nil || *rec.Identity.Name != "Asha R Rao" {
			t.Fatalf("name = %v", rec.Identity.Name)
		}
		if len(rec.UpdatedBy) != 1 || rec.UpdatedBy[0].Actor != "dr.iyer" {
			t.Fatalf("stamps = %+v", rec.UpdatedBy)
		}
	}
}

func TestRunImportAuditsFieldChanges(t *testing.T) {
	store := newMemStore()
	audit := &memAudit{}
	svc := NewService(store, audit, nil, Options{})
	actor := models.Actor{ID: "dr.mehta"}

	first := sheetOf("PAEC No,Patient Name", "PAEC001,Asha Rao")
	if _, err := svc.RunImport(context.Background(), first, actor); err != nil {
		t.Fatalf("first import: %v", err)
	}
	// A run that only creates has no changed fields to report.
	if _, ok := audit.calls[0].payload["field_changes"]; ok {
		t.Fatalf("create-only run payload = %v", audit.calls[0].payload)
	}

	second := sheetOf(
		"PAEC No,Patient Name,Birth Weight",
		"PAEC001,Asha R Rao,2.75",
	)
	if _, err := svc.RunImport(context.Background(), second, actor); err != nil {
		t.Fatalf("second import: %v", err)
	}

	changed, ok := audit.calls[1].payload["field_changes"].(map[string]int)
	if !ok {
		t.Fatalf("update run payload has no field changes: %v", audit.calls[1].payload)
	}
	if changed["identity.name"] != 1 || changed["history.birth.weight"] != 1 {
		t.Fatalf("field changes = %v", changed)
	}
	if _, present := changed["identity.paecNo"]; present {
		t.Fatal("unchanged key counted as a change")
	}
}

func TestRunImportRowErrorsDoNotAbort(t *testing.T) {
	store := newMemStore()
	svc := NewService(store, nil, nil, Options{})
	actor := models.Actor{ID: "dr.mehta"}

	sheet := sheetOf(
		"PAEC No,Patient Name,Birth Weight",
		",Missing Key,2.5",
		"PAEC002,Bad Weight,heavy",
		",,",
		"PAEC004,Fine,3.0",
	)
	summary, err := svc.RunImport(context.Background(), sheet, actor)
	if err != nil {
		t.Fatalf("RunImport: %v", err)
	}

	// The blank row is skipped silently; the two bad rows are reported by
	// their sheet position, counting the header as row 1.
	if summary.TotalRows != 3 {
		t.Fatalf("total rows = %d", summary.TotalRows)
	}
	if summary.Created != 1 {
		t.Fatalf("created = %d", summary.Created)
	}
	if len(summary.Errors) != 2 {
		t.Fatalf("errors = %+v", summary.Errors)
	}
	if summary.Errors[0].Row != 2 || !strings.Contains(summary.Errors[0].Message, "PAEC") {
		t.Fatalf("first error = %+v", summary.Errors[0])
	}
	if summary.Errors[1].Row != 3 || !strings.Contains(summary.Errors[1].Message, "Birth Weight") {
		t.Fatalf("second error = %+v", summary.Errors[1])
	}
}

func TestRunImportRejectsSheetWithoutKeyColumn(t *testing.T) {
	svc := NewService(newMemStore(), nil, nil, Options{})
	sheet := sheetOf("Patient Name,Age", "Asha Rao,9")
	if _, err := svc.RunImport(context.Background(), sheet, models.Actor{ID: "x"}); !errors.Is(err, ErrMissingKeyColumn) {
		t.Fatalf("err = %v", err)
	}
}

func TestRunImportRowLimit(t *testing.T) {
	svc := NewService(newMemStore(), nil, nil, Options{MaxImportRows: 1})
	sheet := sheetOf("PAEC No", "PAEC001", "PAEC002")
	if _, err := svc.RunImport(context.Background(), sheet, models.Actor{ID: "x"}); !errors.Is(err, ErrTooManyRows) {
		t.Fatalf("err = %v", err)
	}
}

func TestRunExport(t *testing.T) {
	store := newMemStore()
	audit := &memAudit{}
	svc := NewService(store, audit, nil, Options{})
	actor := models.Actor{ID: "dr.mehta", CenterID: "aiims-delhi"}

	in := sheetOf(
		"PAEC No,Patient Name,Phone 1",
		"PAEC001,Asha Rao,9811000000",
		"PAEC002,Ravi Kumar,9811111111",
	)
	if _, err := svc.RunImport(context.Background(), in, actor); err != nil {
		t.Fatalf("seed import: %v", err)
	}

	out, err := svc.RunExport(context.Background(), models.RecordQuery{PaecNo: "PAEC"}, tabular.FormatAnalysis,
		[]string{"Phone 1", "Phone 2", "Landline"}, actor)
	if err != nil {
		t.Fatalf("RunExport: %v", err)
	}

	if out.Header[0] != tabular.SerialColumn {
		t.Fatalf("first column = %q", out.Header[0])
	}
	for _, h := range out.Header {
		if h == "Phone 1" {
			t.Fatal("excluded column exported")
		}
	}
	if len(out.Rows) != 2 {
		t.Fatalf("rows = %d", len(out.Rows))
	}
	if out.Rows[0][0] != "1" || out.Rows[1][0] != "2" {
		t.Fatalf("serials = %q, %q", out.Rows[0][0], out.Rows[1][0])
	}
	// Absent values surface as the sentinel, never blank.
	for j, h := range out.Header {
		if h == "Remarks" && out.Rows[0][j] != schema.NA {
			t.Fatalf("Remarks = %q", out.Rows[0][j])
		}
	}

	if len(audit.calls) != 2 || audit.calls[1].action != "exported" {
		t.Fatalf("audit = %+v", audit.calls)
	}
	payload := audit.calls[1].payload
	if payload["format"] != "analysis" {
		t.Fatalf("export payload format = %v", payload["format"])
	}
	filters, ok := payload["filters"].(map[string]interface{})
	if !ok || filters["paec_no"] != "PAEC" {
		t.Fatalf("export payload filters = %v", payload["filters"])
	}
	excluded, ok := payload["excluded"].([]string)
	if !ok || len(excluded) != 3 {
		t.Fatalf("export payload excluded = %v", payload["excluded"])
	}
}

func TestRunExportEmptyResult(t *testing.T) {
	store := newMemStore()
	svc := NewService(store, nil, nil, Options{})
	actor := models.Actor{ID: "dr.mehta", CenterID: "aiims-delhi"}

	in := sheetOf("PAEC No", "PAEC001")
	if _, err := svc.RunImport(context.Background(), in, actor); err != nil {
		t.Fatalf("seed import: %v", err)
	}

	// No match by filter.
	_, err := svc.RunExport(context.Background(), models.RecordQuery{PaecNo: "ZZZ"},
		tabular.FormatAnalysis, nil, actor)
	if !errors.Is(err, records.ErrNoRecords) {
		t.Fatalf("filtered export: %v", err)
	}

	// No match by scope.
	outsider := models.Actor{ID: "dr.iyer", Access: models.AccessOwn}
	_, err = svc.RunExport(context.Background(), models.RecordQuery{}, tabular.FormatAnalysis, nil, outsider)
	if !errors.Is(err, records.ErrNoRecords) {
		t.Fatalf("scoped export: %v", err)
	}
}

func TestRunExportRecordLimit(t *testing.T) {
	store := newMemStore()
	svc := NewService(store, nil, nil, Options{MaxExportRecords: 1})
	actor := models.Actor{ID: "dr.mehta"}

	in := sheetOf("PAEC No", "PAEC001", "PAEC002")
	if _, err := svc.RunImport(context.Background(), in, actor); err != nil {
		t.Fatalf("seed import: %v", err)
	}
	_, err := svc.RunExport(context.Background(), models.RecordQuery{}, tabular.FormatAnalysis, nil, actor)
	if !errors.Is(err, ErrTooManyRecords) {
		t.Fatalf("err = %v", err)
	}
}

func TestRunTemplateExport(t *testing.T) {
	svc := NewService(newMemStore(), nil, nil, Options{})
	sheet, err := svc.RunTemplateExport(context.Background(), models.Actor{ID: "dr.mehta"})
	if err != nil {
		t.Fatalf("RunTemplateExport: %v", err)
	}
	if len(sheet.Rows) != 0 {
		t.Fatalf("template has %d data rows", len(sheet.Rows))
	}
	found := false
	for _, h := range sheet.Header {
		if h == "PreGH-Hypothyroidism Y 1 N 2" {
			found = true
		}
	}
	if !found {
		t.Fatal("template header lacks coded labels")
	}
}

func TestImportedSheetRoundTrips(t *testing.T) {
	store := newMemStore()
	svc := NewService(store, nil, nil, Options{})
	actor := models.Actor{ID: "dr.mehta"}

	in := sheetOf(
		"PAEC No,Patient Name,DOB,Birth Hypoxia,MRI Performed",
		"PAEC001,Asha Rao,15-06-2014,No,1",
	)
	if _, err := svc.RunImport(context.Background(), in, actor); err != nil {
		t.Fatalf("import: %v", err)
	}

	out, err := svc.RunExport(context.Background(), models.RecordQuery{}, tabular.FormatAnalysis, nil, actor)
	if err != nil {
		t.Fatalf("export: %v", err)
	}

	// Re-importing the export must change nothing.
	summary, err := svc.RunImport(context.Background(), out, actor)
	if err != nil {
		t.Fatalf("re-import: %v", err)
	}
	if summary.Created != 0 || summary.Updated != 1 || len(summary.Errors) != 0 {
		t.Fatalf("re-import summary = %+v", summary)
	}
	for _, rec := range store.recs {
		if rec.Identity.DOB == nil || rec.Identity.DOB.Format("02-01-2006") != "15-06-2014" {
			t.Fatalf("dob = %v", rec.Identity.DOB)
		}
		if rec.Imaging == nil || rec.Imaging.Performed == nil || !*rec.Imaging.Performed {
			t.Fatal("mri flag lost in round trip")
		}
	}
}

func TestGetRunSummary(t *testing.T) {
	cache := newMemCache()
	svc := NewService(newMemStore(), nil, cache, Options{})

	summary, err := svc.RunImport(context.Background(),
		sheetOf("PAEC No", "PAEC001"), models.Actor{ID: "dr.mehta"})
	if err != nil {
		t.Fatalf("import: %v", err)
	}

	got, err := svc.GetRunSummary(context.Background(), summary.RunID)
	if err != nil {
		t.Fatalf("GetRunSummary: %v", err)
	}
	if got.Created != 1 {
		t.Fatalf("cached summary = %+v", got)
	}

	if _, err := svc.GetRunSummary(context.Background(), "no-such-run"); !errors.Is(err, ErrRunNotFound) {
		t.Fatalf("err = %v", err)
	}
}

func TestExportFilename(t *testing.T) {
	at := time.Date(2026, time.August, 31, 10, 0, 0, 0, time.UTC)
	got := ExportFilename(tabular.FormatTemplate, at)
	want := "paec_export_template_1788170400.csv"
	if got != want {
		t.Fatalf("filename = %q, want %q", got, want)
	}
}
