package records

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/paec-registry/platform/pkg/common/models"
)

// recordModel is the storage row. The full nested document lives in the JSONB
// column; the remaining columns are extracted copies used for lookup and
// filtering only, and are rewritten from the document on every save.
type recordModel struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey"`
	PaecNo    string    `gorm:"column:paec_no;index"`
	Name      string    `gorm:"index"`
	UHID      string    `gorm:"column:uhid"`
	CenterID  string    `gorm:"column:center_id;index"`
	CreatedBy string    `gorm:"column:created_by;index"`
	VisitDate *time.Time
	Deleted   bool `gorm:"index"`
	DeletedBy string
	DeletedAt *time.Time
	Document  datatypes.JSON
	CreatedAt time.Time
	UpdatedAt time.Time
}

func (recordModel) TableName() string { return "records" }

type Repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

func (r *Repository) Migrate() error {
	return r.db.AutoMigrate(&recordModel{})
}

func (r *Repository) FindByNaturalKey(ctx context.Context, paecNo string, scope models.ScopeFilter) (*models.Record, error) {
	var m recordModel
	q := r.db.WithContext(ctx).
		Where("paec_no = ? AND deleted = ?", strings.TrimSpace(paecNo), false)
	q = applyScope(q, scope)
	if err := q.First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("find record %s: %w", paecNo, err)
	}
	return decodeDocument(&m)
}

func (r *Repository) FindMany(ctx context.Context, query models.RecordQuery, scope models.ScopeFilter) ([]models.Record, error) {
	q := r.db.WithContext(ctx).Where("deleted = ?", false)
	q = applyScope(q, scope)

	if query.PaecNo != "" {
		q = q.Where("paec_no ILIKE ?", contains(query.PaecNo))
	}
	if query.Name != "" {
		q = q.Where("name ILIKE ?", contains(query.Name))
	}
	if query.UHID != "" {
		q = q.Where("uhid ILIKE ?", contains(query.UHID))
	}
	if query.FromDate != nil {
		q = q.Where("visit_date >= ?", query.FromDate)
	}
	if query.ToDate != nil {
		q = q.Where("visit_date <= ?", query.ToDate)
	}
	if query.Limit > 0 {
		q = q.Limit(query.Limit)
	}

	var rows []recordModel
	if err := q.Order("paec_no").Find(&rows).Error; err != nil {
		return nil, fmt.Errorf("list records: %w", err)
	}
	if len(rows) == 0 {
		return nil, ErrNoRecords
	}

	recs := make([]models.Record, 0, len(rows))
	for i := range rows {
		rec, err := decodeDocument(&rows[i])
		if err != nil {
			return nil, err
		}
		recs = append(recs, *rec)
	}
	return recs, nil
}

func (r *Repository) Save(ctx context.Context, rec *models.Record) error {
	doc, err := json.Marshal(rec)
	if err != nil {
		return fmt.Errorf("encode record %s: %w", rec.Identity.PaecNo, err)
	}
	m := recordModel{
		ID:        rec.ID,
		PaecNo:    rec.Identity.PaecNo,
		CenterID:  rec.CenterID,
		CreatedBy: rec.CreatedBy,
		VisitDate: rec.VisitDate,
		Deleted:   rec.Deleted.Status,
		DeletedBy: rec.Deleted.DeletedBy,
		DeletedAt: rec.Deleted.DeletedAt,
		Document:  datatypes.JSON(doc),
		CreatedAt: rec.CreatedAt,
		UpdatedAt: rec.UpdatedAt,
	}
	if rec.Identity.Name != nil {
		m.Name = *rec.Identity.Name
	}
	if rec.Identity.UHID != nil {
		m.UHID = *rec.Identity.UHID
	}

	err = r.db.WithContext(ctx).
		Clauses(clause.OnConflict{UpdateAll: true}).
		Create(&m).Error
	if err != nil {
		return fmt.Errorf("save record %s: %w", rec.Identity.PaecNo, err)
	}
	return nil
}

func applyScope(q *gorm.DB, scope models.ScopeFilter) *gorm.DB {
	if scope.CreatedBy != "" {
		q = q.Where("created_by = ?", scope.CreatedBy)
	}
	if scope.CenterID != "" {
		q = q.Where("center_id = ?", scope.CenterID)
	}
	return q
}

func decodeDocument(m *recordModel) (*models.Record, error) {
	var rec models.Record
	if err := json.Unmarshal(m.Document, &rec); err != nil {
		return nil, fmt.Errorf("decode record %s: %w", m.PaecNo, err)
	}
	return &rec, nil
}

func contains(s string) string {
	return "%" + strings.TrimSpace(s) + "%"
}
