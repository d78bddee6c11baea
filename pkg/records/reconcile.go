package records

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/paec-registry/platform/pkg/common/models"
	"github.com/paec-registry/platform/pkg/schema"
	"github.com/paec-registry/platform/pkg/tabular"
)

// redacted replaces sensitive values in diffs. The audit trail records that a
// contact field changed, never what it changed from or to.
const redacted = "[redacted]"

// Outcome is what a reconciled row did to storage.
type Outcome string

const (
	OutcomeCreated Outcome = "created"
	OutcomeUpdated Outcome = "updated"
)

// Result is one reconciled row.
type Result struct {
	Outcome Outcome
	Record  *models.Record
	// Diff holds the display-value changes of an update, keyed by dotted
	// path. Nil for creates; empty (but non-nil) for updates that changed
	// nothing.
	Diff models.FieldDiff
}

// Reconciler matches parsed rows against stored records by PAEC number and
// applies them. The lookup is deliberately unscoped: an import must never
// create a duplicate record just because the existing one was authored by
// someone outside the caller's view.
type Reconciler struct {
	store Store
	c     schema.Coercer
	now   func() time.Time
}

func NewReconciler(store Store) *Reconciler {
	return &Reconciler{store: store, now: time.Now}
}

// Reconcile applies one patch. An unseen key creates a fresh record; a known
// key updates the stored one in place. Updates always append an UpdateStamp,
// even when every incoming value matched what was already stored.
func (rc *Reconciler) Reconcile(ctx context.Context, p *tabular.Patch, actor models.Actor) (*Result, error) {
	existing, err := rc.store.FindByNaturalKey(ctx, p.Key(), models.ScopeFilter{})
	if err != nil && !errors.Is(err, ErrNotFound) {
		return nil, fmt.Errorf("lookup %s: %w", p.Key(), err)
	}

	now := rc.now()
	if existing == nil {
		rec := &models.Record{
			ID:        uuid.New(),
			CreatedBy: actor.ID,
			CenterID:  actor.CenterID,
			CreatedAt: now,
			UpdatedAt: now,
		}
		p.Apply(rec)
		if err := rc.store.Save(ctx, rec); err != nil {
			return nil, fmt.Errorf("create %s: %w", p.Key(), err)
		}
		return &Result{Outcome: OutcomeCreated, Record: rec}, nil
	}

	diff := rc.diff(existing, p)
	p.Apply(existing)
	existing.UpdatedBy = append(existing.UpdatedBy, models.UpdateStamp{Actor: actor.ID, UpdatedAt: now})
	existing.UpdatedAt = now

	if err := rc.store.Save(ctx, existing); err != nil {
		return nil, fmt.Errorf("update %s: %w", p.Key(), err)
	}
	return &Result{Outcome: OutcomeUpdated, Record: existing, Diff: diff}, nil
}

// diff captures the display-value changes the patch is about to make. Values
// are compared and recorded in sheet form, so an absent stored value shows as
// the NA sentinel.
func (rc *Reconciler) diff(existing *models.Record, p *tabular.Patch) models.FieldDiff {
	diff := models.FieldDiff{}
	for _, e := range p.Entries() {
		before := rc.c.CoerceOut(e.Field, e.Field.Get(existing))
		after := rc.c.CoerceOut(e.Field, e.Value)
		if before == after {
			continue
		}
		diff[e.Field.Path] = fieldChange(e.Field, before, after)
	}
	return diff
}

// diffRecords compares two records across the whole field table, in the same
// display form the row diff uses. It backs the audit trail of manual edits,
// where there is no patch to diff against.
func diffRecords(res *schema.Resolver, c schema.Coercer, before, after *models.Record) models.FieldDiff {
	diff := models.FieldDiff{}
	for i := range res.Fields() {
		f := &res.Fields()[i]
		b := c.CoerceOut(f, f.Get(before))
		a := c.CoerceOut(f, f.Get(after))
		if b == a {
			continue
		}
		diff[f.Path] = fieldChange(f, b, a)
	}
	return diff
}

func fieldChange(f *schema.Field, before, after string) models.FieldChange {
	if f.Sensitive {
		return models.FieldChange{From: redacted, To: redacted}
	}
	return models.FieldChange{From: before, To: after}
}
