package records

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/paec-registry/platform/pkg/common/logger"
	"github.com/paec-registry/platform/pkg/common/models"
	"github.com/paec-registry/platform/pkg/schema"
)

// Auditor receives the record-keeping trail. Audit failures are advisory and
// never fail the operation they describe.
type Auditor interface {
	Append(ctx context.Context, actor, action, module, subject string, payload map[string]interface{}) error
}

const auditModule = "records"

// Service is the record CRUD layer. All reads honor the caller's access
// scope; soft-deleted records are invisible everywhere.
type Service struct {
	store Store
	audit Auditor
	res   *schema.Resolver
	c     schema.Coercer
	now   func() time.Time
}

func NewService(store Store, audit Auditor) *Service {
	return &Service{store: store, audit: audit, res: schema.NewResolver(), now: time.Now}
}

// Create stores a new record under its PAEC number. The number must be free
// among live records; a soft-deleted record under the same number does not
// block creation.
func (s *Service) Create(ctx context.Context, rec *models.Record, actor models.Actor) (*models.Record, error) {
	rec.Identity.PaecNo = strings.TrimSpace(rec.Identity.PaecNo)
	if rec.Identity.PaecNo == "" {
		return nil, fmt.Errorf("create record: %w", ErrMissingKey)
	}

	_, err := s.store.FindByNaturalKey(ctx, rec.Identity.PaecNo, models.ScopeFilter{})
	if err == nil {
		return nil, ErrDuplicateKey
	}
	if !errors.Is(err, ErrNotFound) {
		return nil, err
	}

	now := s.now()
	rec.ID = uuid.New()
	rec.CreatedBy = actor.ID
	rec.CenterID = actor.CenterID
	rec.Deleted = models.Deletion{}
	rec.CreatedAt = now
	rec.UpdatedAt = now

	if err := s.store.Save(ctx, rec); err != nil {
		return nil, err
	}
	s.log(ctx, actor, "created", rec.Identity.PaecNo, nil)
	return rec, nil
}

// Get returns one live record within the actor's scope.
func (s *Service) Get(ctx context.Context, paecNo string, actor models.Actor) (*models.Record, error) {
	return s.store.FindByNaturalKey(ctx, paecNo, actor.Scope())
}

// List returns live records matching the query within the actor's scope.
func (s *Service) List(ctx context.Context, q models.RecordQuery, actor models.Actor) ([]models.Record, error) {
	return s.store.FindMany(ctx, q, actor.Scope())
}

// Update replaces the stored sections with the incoming ones and stamps the
// mutation history. The PAEC number itself is immutable.
func (s *Service) Update(ctx context.Context, paecNo string, incoming *models.Record, actor models.Actor) (*models.Record, error) {
	existing, err := s.store.FindByNaturalKey(ctx, paecNo, actor.Scope())
	if err != nil {
		return nil, err
	}
	before := *existing

	existing.Identity = incoming.Identity
	existing.Identity.PaecNo = paecNo
	existing.History = incoming.History
	existing.Examination = incoming.Examination
	existing.Investigations = incoming.Investigations
	existing.Endocrine = incoming.Endocrine
	existing.Imaging = incoming.Imaging
	existing.Treatment = incoming.Treatment
	existing.Diagnosis = incoming.Diagnosis
	existing.Remarks = incoming.Remarks
	existing.VisitDate = incoming.VisitDate

	now := s.now()
	existing.UpdatedBy = append(existing.UpdatedBy, models.UpdateStamp{Actor: actor.ID, UpdatedAt: now})
	existing.UpdatedAt = now

	if err := s.store.Save(ctx, existing); err != nil {
		return nil, err
	}
	s.log(ctx, actor, "updated", paecNo, map[string]interface{}{
		"diff": diffRecords(s.res, s.c, &before, existing),
	})
	return existing, nil
}

// SoftDelete marks the record deleted. The row stays in storage with its full
// document; it simply stops being visible to lookups, exports, and imports.
func (s *Service) SoftDelete(ctx context.Context, paecNo string, actor models.Actor) error {
	rec, err := s.store.FindByNaturalKey(ctx, paecNo, actor.Scope())
	if err != nil {
		return err
	}

	now := s.now()
	rec.Deleted = models.Deletion{Status: true, DeletedBy: actor.ID, DeletedAt: &now}
	rec.UpdatedAt = now

	if err := s.store.Save(ctx, rec); err != nil {
		return err
	}
	s.log(ctx, actor, "deleted", paecNo, nil)
	return nil
}

func (s *Service) log(ctx context.Context, actor models.Actor, action, subject string, payload map[string]interface{}) {
	if s.audit == nil {
		return
	}
	if err := s.audit.Append(ctx, actor.ID, action, auditModule, subject, payload); err != nil {
		logger.WithField("action", action).Warnf("audit append failed: %v", err)
	}
}

// ErrMissingKey rejects a record without a PAEC number.
var ErrMissingKey = errors.New("record has no PAEC number")
