package records

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/paec-registry/platform/pkg/common/models"
	"github.com/paec-registry/platform/pkg/schema"
	"github.com/paec-registry/platform/pkg/tabular"
)

// fakeStore keeps records in memory keyed by internal ID, mirroring the
// lookup rules of the gorm repository.
type fakeStore struct {
	recs map[string]*models.Record // by ID
}

func newFakeStore() *fakeStore {
	return &fakeStore{recs: make(map[string]*models.Record)}
}

func (s *fakeStore) FindByNaturalKey(_ context.Context, paecNo string, scope models.ScopeFilter) (*models.Record, error) {
	paecNo = strings.TrimSpace(paecNo)
	for _, r := range s.recs {
		if r.Identity.PaecNo != paecNo || r.Deleted.Status {
			continue
		}
		if !inScope(r, scope) {
			continue
		}
		cp := *r
		return &cp, nil
	}
	return nil, ErrNotFound
}

func (s *fakeStore) FindMany(_ context.Context, q models.RecordQuery, scope models.ScopeFilter) ([]models.Record, error) {
	var out []models.Record
	for _, r := range s.recs {
		if r.Deleted.Status || !inScope(r, scope) {
			continue
		}
		if q.PaecNo != "" && !strings.Contains(strings.ToLower(r.Identity.PaecNo), strings.ToLower(q.PaecNo)) {
			continue
		}
		out = append(out, *r)
	}
	if len(out) == 0 {
		return nil, ErrNoRecords
	}
	return out, nil
}

func (s *fakeStore) Save(_ context.Context, rec *models.Record) error {
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

type fakeAuditor struct {
	actions  []string
	payloads []map[string]interface{}
}

func (a *fakeAuditor) Append(_ context.Context, _, action, _, _ string, payload map[string]interface{}) error {
	a.actions = append(a.actions, action)
	a.payloads = append(a.payloads, payload)
	return nil
}

func strp(s string) *string { return &s }

func newRecord(paecNo string) *models.Record {
	return &models.Record{Identity: models.Identity{PaecNo: paecNo, Name: strp("Asha Rao")}}
}

func TestServiceCreate(t *testing.T) {
	store := newFakeStore()
	audit := &fakeAuditor{}
	svc := NewService(store, audit)
	actor := models.Actor{ID: "dr.mehta", CenterID: "aiims-delhi"}

	rec, err := svc.Create(context.Background(), newRecord("PAEC001"), actor)
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if rec.ID.String() == "00000000-0000-0000-0000-000000000000" {
		t.Fatal("create did not assign an ID")
	}
	if rec.CreatedBy != "dr.mehta" || rec.CenterID != "aiims-delhi" {
		t.Fatalf("ownership = %s/%s", rec.CreatedBy, rec.CenterID)
	}
	if len(audit.actions) != 1 || audit.actions[0] != "created" {
		t.Fatalf("audit = %v", audit.actions)
	}

	if _, err := svc.Create(context.Background(), newRecord("PAEC001"), actor); !errors.Is(err, ErrDuplicateKey) {
		t.Fatalf("duplicate create: %v", err)
	}
	if _, err := svc.Create(context.Background(), newRecord("  "), actor); !errors.Is(err, ErrMissingKey) {
		t.Fatalf("blank key create: %v", err)
	}
}

func TestServiceScope(t *testing.T) {
	store := newFakeStore()
	svc := NewService(store, nil)

	owner := models.Actor{ID: "dr.mehta", CenterID: "aiims-delhi"}
	if _, err := svc.Create(context.Background(), newRecord("PAEC001"), owner); err != nil {
		t.Fatalf("Create: %v", err)
	}

	stranger := models.Actor{ID: "dr.iyer", CenterID: "pgimer", Access: models.AccessOwn}
	if _, err := svc.Get(context.Background(), "PAEC001", stranger); !errors.Is(err, ErrNotFound) {
		t.Fatalf("out-of-scope get: %v", err)
	}

	colleague := models.Actor{ID: "dr.iyer", CenterID: "aiims-delhi", Access: models.AccessCenter}
	if _, err := svc.Get(context.Background(), "PAEC001", colleague); err != nil {
		t.Fatalf("center-scope get: %v", err)
	}

	admin := models.Actor{ID: "admin", Access: models.AccessAll}
	if _, err := svc.Get(context.Background(), "PAEC001", admin); err != nil {
		t.Fatalf("all-scope get: %v", err)
	}
}

func TestServiceSoftDelete(t *testing.T) {
	store := newFakeStore()
	audit := &fakeAuditor{}
	svc := NewService(store, audit)
	actor := models.Actor{ID: "dr.mehta"}

	if _, err := svc.Create(context.Background(), newRecord("PAEC001"), actor); err != nil {
		t.Fatalf("Create: %v", err)
	}
	if err := svc.SoftDelete(context.Background(), "PAEC001", actor); err != nil {
		t.Fatalf("SoftDelete: %v", err)
	}
	if _, err := svc.Get(context.Background(), "PAEC001", actor); !errors.Is(err, ErrNotFound) {
		t.Fatalf("deleted record still visible: %v", err)
	}

	// The row is retained, only hidden.
	var kept *models.Record
	for _, r := range store.recs {
		kept = r
	}
	if kept == nil || !kept.Deleted.Status || kept.Deleted.DeletedBy != "dr.mehta" {
		t.Fatalf("deletion marker = %+v", kept)
	}

	// The freed key can be used again.
	if _, err := svc.Create(context.Background(), newRecord("PAEC001"), actor); err != nil {
		t.Fatalf("re-create after delete: %v", err)
	}
}

func TestServiceUpdateStampsHistory(t *testing.T) {
	store := newFakeStore()
	svc := NewService(store, nil)
	actor := models.Actor{ID: "dr.mehta"}

	if _, err := svc.Create(context.Background(), newRecord("PAEC001"), actor); err != nil {
		t.Fatalf("Create: %v", err)
	}

	incoming := newRecord("ignored")
	incoming.Identity.Name = strp("Asha R Rao")
	updated, err := svc.Update(context.Background(), "PAEC001", incoming, models.Actor{ID: "dr.iyer"})
	if err != nil {
		t.Fatalf("Update: %v", err)
	}
	if updated.Identity.PaecNo != "PAEC001" {
		t.Fatalf("update changed the key to %q", updated.Identity.PaecNo)
	}
	if len(updated.UpdatedBy) != 1 || updated.UpdatedBy[0].Actor != "dr.iyer" {
		t.Fatalf("update stamps = %+v", updated.UpdatedBy)
	}
}

func TestServiceUpdateAuditsDiff(t *testing.T) {
	store := newFakeStore()
	audit := &fakeAuditor{}
	svc := NewService(store, audit)
	actor := models.Actor{ID: "dr.mehta"}

	orig := newRecord("PAEC001")
	orig.Identity.Contact.Cell1 = strp("9811000000")
	if _, err := svc.Create(context.Background(), orig, actor); err != nil {
		t.Fatalf("Create: %v", err)
	}

	incoming := newRecord("PAEC001")
	incoming.Identity.Name = strp("Asha R Rao")
	incoming.Identity.Contact.Cell1 = strp("9811999999")
	if _, err := svc.Update(context.Background(), "PAEC001", incoming, models.Actor{ID: "dr.iyer"}); err != nil {
		t.Fatalf("Update: %v", err)
	}

	if len(audit.payloads) != 2 {
		t.Fatalf("audit entries = %d", len(audit.payloads))
	}
	diff, ok := audit.payloads[1]["diff"].(models.FieldDiff)
	if !ok {
		t.Fatalf("update payload has no diff: %v", audit.payloads[1])
	}
	if got := diff["identity.name"]; got.From != "Asha Rao" || got.To != "Asha R Rao" {
		t.Fatalf("name diff = %+v", got)
	}
	// Contact values never appear in the trail, only the fact of the change.
	if got := diff["identity.contact.cell1"]; got.From != "[redacted]" || got.To != "[redacted]" {
		t.Fatalf("phone diff = %+v", got)
	}
	if _, present := diff["identity.paecNo"]; present {
		t.Fatal("unchanged key appeared in diff")
	}
}

func buildPatch(t *testing.T, header, row []string) *tabular.Patch {
	t.Helper()
	b := tabular.NewBuilder(schema.NewResolver())
	p, _, err := b.Build(header, row)
	if err != nil {
		t.Fatalf("Build: %v", err)
	}
	return p
}

func TestReconcileCreates(t *testing.T) {
	store := newFakeStore()
	rc := NewReconciler(store)
	actor := models.Actor{ID: "dr.mehta", CenterID: "aiims-delhi"}

	p := buildPatch(t,
		[]string{"PAEC No", "Patient Name", "Birth Weight"},
		[]string{"PAEC001", "Asha Rao", "2.75"},
	)
	res, err := rc.Reconcile(context.Background(), p, actor)
	if err != nil {
		t.Fatalf("Reconcile: %v", err)
	}
	if res.Outcome != OutcomeCreated {
		t.Fatalf("outcome = %s", res.Outcome)
	}
	if res.Record.CreatedBy != "dr.mehta" || res.Record.CenterID != "aiims-delhi" {
		t.Fatalf("ownership = %s/%s", res.Record.CreatedBy, res.Record.CenterID)
	}
	if res.Record.History == nil || !res.Record.History.Present {
		t.Fatal("history section not applied")
	}
	if len(res.Record.UpdatedBy) != 0 {
		t.Fatalf("create stamped history: %+v", res.Record.UpdatedBy)
	}
}

func TestReconcileUpdatesWithDiff(t *testing.T) {
	store := newFakeStore()
	rc := NewReconciler(store)
	actor := models.Actor{ID: "dr.mehta"}

	create := buildPatch(t,
		[]string{"PAEC No", "Patient Name", "Phone 1"},
		[]string{"PAEC001", "Asha Rao", "9811000000"},
	)
	if _, err := rc.Reconcile(context.Background(), create, actor); err != nil {
		t.Fatalf("create: %v", err)
	}

	update := buildPatch(t,
		[]string{"PAEC No", "Patient Name", "Phone 1", "Birth Weight"},
		[]string{"PAEC001", "Asha R Rao", "9811999999", "2.75"},
	)
	res, err := rc.Reconcile(context.Background(), update, models.Actor{ID: "dr.iyer"})
	if err != nil {
		t.Fatalf("update: %v", err)
	}
	if res.Outcome != OutcomeUpdated {
		t.Fatalf("outcome = %s", res.Outcome)
	}

	if got := res.Diff["identity.name"]; got.From != "Asha Rao" || got.To != "Asha R Rao" {
		t.Fatalf("name diff = %+v", got)
	}
	// A field the stored record never carried diffs from the NA sentinel.
	if got := res.Diff["history.birth.weight"]; got.From != schema.NA || got.To != "2.75" {
		t.Fatalf("weight diff = %+v", got)
	}
	// Contact values never appear in a diff.
	if got := res.Diff["identity.contact.cell1"]; got.From != "[redacted]" || got.To != "[redacted]" {
		t.Fatalf("phone diff = %+v", got)
	}
	// The key matched, so it produced no diff entry.
	if _, ok := res.Diff["identity.paecNo"]; ok {
		t.Fatal("unchanged key appeared in diff")
	}
	if len(res.Record.UpdatedBy) != 1 || res.Record.UpdatedBy[0].Actor != "dr.iyer" {
		t.Fatalf("update stamps = %+v", res.Record.UpdatedBy)
	}
}

func TestReconcileEmptyDiffStillStamps(t *testing.T) {
	store := newFakeStore()
	rc := NewReconciler(store)
	actor := models.Actor{ID: "dr.mehta"}

	p := buildPatch(t, []string{"PAEC No", "Patient Name"}, []string{"PAEC001", "Asha Rao"})
	if _, err := rc.Reconcile(context.Background(), p, actor); err != nil {
		t.Fatalf("create: %v", err)
	}

	again := buildPatch(t, []string{"PAEC No", "Patient Name"}, []string{"PAEC001", "Asha Rao"})
	res, err := rc.Reconcile(context.Background(), again, actor)
	if err != nil {
		t.Fatalf("re-import: %v", err)
	}
	if res.Outcome != OutcomeUpdated {
		t.Fatalf("outcome = %s", res.Outcome)
	}
	if len(res.Diff) != 0 {
		t.Fatalf("diff = %+v", res.Diff)
	}
	if len(res.Record.UpdatedBy) != 1 {
		t.Fatalf("update stamps = %+v", res.Record.UpdatedBy)
	}
}

func TestReconcileAfterSoftDeleteCreatesFresh(t *testing.T) {
	store := newFakeStore()
	svc := NewService(store, nil)
	rc := NewReconciler(store)
	actor := models.Actor{ID: "dr.mehta"}

	if _, err := svc.Create(context.Background(), newRecord("PAEC001"), actor); err != nil {
		t.Fatalf("Create: %v", err)
	}
	if err := svc.SoftDelete(context.Background(), "PAEC001", actor); err != nil {
		t.Fatalf("SoftDelete: %v", err)
	}

	p := buildPatch(t, []string{"PAEC No", "Patient Name"}, []string{"PAEC001", "Asha Rao"})
	res, err := rc.Reconcile(context.Background(), p, actor)
	if err != nil {
		t.Fatalf("Reconcile: %v", err)
	}
	if res.Outcome != OutcomeCreated {
		t.Fatalf("outcome = %s, want fresh create", res.Outcome)
	}
	if len(store.recs) != 2 {
		t.Fatalf("stored records = %d, want deleted original plus fresh one", len(store.recs))
	}
}

func TestReconcileLookupIgnoresActorScope(t *testing.T) {
	store := newFakeStore()
	svc := NewService(store, nil)
	rc := NewReconciler(store)

	owner := models.Actor{ID: "dr.mehta", CenterID: "aiims-delhi"}
	if _, err := svc.Create(context.Background(), newRecord("PAEC001"), owner); err != nil {
		t.Fatalf("Create: %v", err)
	}

	outsider := models.Actor{ID: "dr.iyer", CenterID: "pgimer", Access: models.AccessOwn}
	p := buildPatch(t, []string{"PAEC No", "Patient Name"}, []string{"PAEC001", "Asha Rao"})
	res, err := rc.Reconcile(context.Background(), p, outsider)
	if err != nil {
		t.Fatalf("Reconcile: %v", err)
	}
	if res.Outcome != OutcomeUpdated {
		t.Fatalf("outcome = %s, want update of the existing record", res.Outcome)
	}
	if len(store.recs) != 1 {
		t.Fatalf("stored records = %d, import duplicated the record", len(store.recs))
	}
}
