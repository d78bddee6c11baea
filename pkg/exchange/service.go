package exchange

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/paec-registry/platform/pkg/common/logger"
	"github.com/paec-registry/platform/pkg/common/models"
	"github.com/paec-registry/platform/pkg/records"
	"github.com/paec-registry/platform/pkg/schema"
	"github.com/paec-registry/platform/pkg/tabular"
)

var (
	// ErrMissingKeyColumn rejects a sheet whose header has no PAEC number
	// column in any of its accepted spellings.
	ErrMissingKeyColumn = errors.New("sheet has no PAEC number column")

	// ErrTooManyRows rejects an oversized import outright.
	ErrTooManyRows = errors.New("sheet exceeds the import row limit")

	// ErrTooManyRecords rejects an export that would exceed the record limit.
	ErrTooManyRecords = errors.New("export exceeds the record limit")

	// ErrRunNotFound means no summary is cached under the run id, either
	// because the id is wrong or the summary expired.
	ErrRunNotFound = errors.New("import run not found")
)

// Auditor receives one aggregate entry per import or export run.
type Auditor interface {
	Append(ctx context.Context, actor, action, module, subject string, payload map[string]interface{}) error
}

// SummaryCache holds import run summaries for later status lookups. Entries
// expire; a missing entry is Get returning ErrRunNotFound.
type SummaryCache interface {
	Put(ctx context.Context, summary *models.ImportSummary) error
	Get(ctx context.Context, runID string) (*models.ImportSummary, error)
}

const auditModule = "exchange"

// Options bound the size of a single run. Zero means unlimited.
type Options struct {
	MaxImportRows    int
	MaxExportRecords int
}

// Service orchestrates sheet import and export over the record store.
type Service struct {
	res   *schema.Resolver
	fl    *tabular.Flattener
	b     *tabular.Builder
	store records.Store
	rc    *records.Reconciler
	audit Auditor
	cache SummaryCache
	opts  Options
}

func NewService(store records.Store, audit Auditor, cache SummaryCache, opts Options) *Service {
	res := schema.NewResolver()
	return &Service{
		res:   res,
		fl:    tabular.NewFlattener(res),
		b:     tabular.NewBuilder(res),
		store: store,
		rc:    records.NewReconciler(store),
		audit: audit,
		cache: cache,
		opts:  opts,
	}
}

// RunImport reconciles every data row of the sheet against storage. Rows are
// processed in order and independently: a bad row is reported by its 1-based
// sheet position and never stops the rows after it. Fully blank rows are
// skipped without comment. The whole run produces one audit entry.
func (s *Service) RunImport(ctx context.Context, sheet *tabular.Sheet, actor models.Actor) (*models.ImportSummary, error) {
	if s.opts.MaxImportRows > 0 && len(sheet.Rows) > s.opts.MaxImportRows {
		return nil, fmt.Errorf("%w (%d rows, limit %d)", ErrTooManyRows, len(sheet.Rows), s.opts.MaxImportRows)
	}
	if !s.hasKeyColumn(sheet.Header) {
		return nil, ErrMissingKeyColumn
	}

	summary := &models.ImportSummary{
		RunID:  uuid.New().String(),
		Errors: []models.RowError{},
	}
	unknown := map[string]bool{}
	changed := map[string]int{}

	for i, row := range sheet.Rows {
		if tabular.Blank(row) {
			continue
		}
		rowNum := i + 2
		summary.TotalRows++

		patch, warnings, err := s.b.Build(sheet.Header, row)
		for _, warning := range warnings {
			unknown[warning] = true
		}
		if err != nil {
			summary.Errors = append(summary.Errors, models.RowError{Row: rowNum, Message: err.Error()})
			continue
		}

		res, err := s.rc.Reconcile(ctx, patch, actor)
		if err != nil {
			summary.Errors = append(summary.Errors, models.RowError{Row: rowNum, Message: err.Error()})
			continue
		}
		switch res.Outcome {
		case records.OutcomeCreated:
			summary.Created++
		case records.OutcomeUpdated:
			summary.Updated++
			for path := range res.Diff {
				changed[path]++
			}
		}
	}

	for warning := range unknown {
		logger.WithField("run_id", summary.RunID).Warn(warning)
	}

	payload := map[string]interface{}{
		"total_rows": summary.TotalRows,
		"created":    summary.Created,
		"updated":    summary.Updated,
		"errors":     len(summary.Errors),
	}
	if len(changed) > 0 {
		// Which fields the run touched and on how many rows. The per-value
		// diffs stay out of the run entry; row diffs of manual edits carry
		// those.
		payload["field_changes"] = changed
	}
	if s.opts.MaxImportRows > 0 {
		payload["row_limit"] = s.opts.MaxImportRows
	}
	s.log(ctx, actor, "imported", summary.RunID, payload)
	if s.cache != nil {
		if err := s.cache.Put(ctx, summary); err != nil {
			logger.WithField("run_id", summary.RunID).Warnf("summary cache write failed: %v", err)
		}
	}
	return summary, nil
}

// RunExport flattens the records matching the query into a sheet. A query
// matching nothing is an error, not an empty sheet: handing a clinician a
// file of headers hides the fact that their filters were wrong.
func (s *Service) RunExport(ctx context.Context, q models.RecordQuery, format tabular.Format, exclude []string, actor models.Actor) (*tabular.Sheet, error) {
	recs, err := s.store.FindMany(ctx, q, actor.Scope())
	if err != nil {
		return nil, err
	}
	if s.opts.MaxExportRecords > 0 && len(recs) > s.opts.MaxExportRecords {
		return nil, fmt.Errorf("%w (%d records, limit %d)", ErrTooManyRecords, len(recs), s.opts.MaxExportRecords)
	}

	sheet, truncated := s.fl.Flatten(recs, format, exclude)
	if truncated > 0 {
		logger.WithField("truncated_values", truncated).
			Warn("records hold more array values than the sheet layout carries")
	}

	payload := map[string]interface{}{
		"records": len(recs),
		"format":  string(format),
	}
	if filters := queryFilters(q); len(filters) > 0 {
		payload["filters"] = filters
	}
	if len(exclude) > 0 {
		payload["excluded"] = exclude
	}
	s.log(ctx, actor, "exported", string(format), payload)
	return sheet, nil
}

// queryFilters renders the applied query criteria for the audit trail.
func queryFilters(q models.RecordQuery) map[string]interface{} {
	filters := map[string]interface{}{}
	if q.PaecNo != "" {
		filters["paec_no"] = q.PaecNo
	}
	if q.Name != "" {
		filters["name"] = q.Name
	}
	if q.UHID != "" {
		filters["uhid"] = q.UHID
	}
	if q.FromDate != nil {
		filters["from"] = q.FromDate.Format("2006-01-02")
	}
	if q.ToDate != nil {
		filters["to"] = q.ToDate.Format("2006-01-02")
	}
	if q.Limit > 0 {
		filters["limit"] = q.Limit
	}
	return filters
}

// RunTemplateExport produces the empty data-entry sheet: the template header
// row and nothing else.
func (s *Service) RunTemplateExport(ctx context.Context, actor models.Actor) (*tabular.Sheet, error) {
	sheet := &tabular.Sheet{Header: s.fl.Columns(tabular.FormatTemplate, nil)}
	s.log(ctx, actor, "exported", "template", nil)
	return sheet, nil
}

// GetRunSummary retrieves a cached import summary by run id.
func (s *Service) GetRunSummary(ctx context.Context, runID string) (*models.ImportSummary, error) {
	if s.cache == nil {
		return nil, ErrRunNotFound
	}
	return s.cache.Get(ctx, runID)
}

// MappingYAML dumps the header-to-field mapping for review tooling.
func (s *Service) MappingYAML() ([]byte, error) {
	return s.res.DumpYAML()
}

// ExportFilename names a download in a stable, sortable form.
func ExportFilename(format tabular.Format, now time.Time) string {
	return fmt.Sprintf("paec_export_%s_%d.csv", format, now.Unix())
}

func (s *Service) hasKeyColumn(header []string) bool {
	for _, h := range header {
		if f, ok := s.res.Resolve(h); ok && f.NaturalKey {
			return true
		}
	}
	return false
}

func (s *Service) log(ctx context.Context, actor models.Actor, action, subject string, payload map[string]interface{}) {
	if s.audit == nil {
		return
	}
	if err := s.audit.Append(ctx, actor.ID, action, auditModule, subject, payload); err != nil {
		logger.WithField("action", action).Warnf("audit append failed: %v", err)
	}
}
