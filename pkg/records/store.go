package records

import (
	"context"
	"errors"

	"github.com/paec-registry/platform/pkg/common/models"
)

var (
	// ErrNotFound means no live record carries the requested key. Soft-deleted
	// records are invisible to lookups, so a deleted key reports not-found.
	ErrNotFound = errors.New("record not found")

	// ErrDuplicateKey rejects creating a record under a PAEC number that a
	// live record already holds.
	ErrDuplicateKey = errors.New("record already exists for this PAEC number")

	// ErrNoRecords means a query matched nothing. Exports treat this as a
	// refusal to produce an empty sheet.
	ErrNoRecords = errors.New("no records match the given filters")
)

// Store is the persistence boundary for patient records. The gorm-backed
// Repository is the production implementation; tests substitute an in-memory
// one.
type Store interface {
	// FindByNaturalKey returns the live record with the given PAEC number
	// within scope, or ErrNotFound.
	FindByNaturalKey(ctx context.Context, paecNo string, scope models.ScopeFilter) (*models.Record, error)

	// FindMany returns live records matching the query within scope, in PAEC
	// number order. An empty result is ErrNoRecords.
	FindMany(ctx context.Context, q models.RecordQuery, scope models.ScopeFilter) ([]models.Record, error)

	// Save upserts the record by its internal ID.
	Save(ctx context.Context, rec *models.Record) error
}
