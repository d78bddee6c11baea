package audit

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"gorm.io/datatypes"
	"gorm.io/gorm"

	"github.com/paec-registry/platform/pkg/common/models"
)

// auditLogModel is append-only: rows are inserted and read, never updated or
// deleted.
type auditLogModel struct {
	ID        int64  `gorm:"primaryKey;autoIncrement"`
	Actor     string `gorm:"index"`
	Action    string `gorm:"index"`
	Module    string `gorm:"index"`
	Subject   string `gorm:"index"`
	Payload   datatypes.JSON
	CreatedAt time.Time `gorm:"index"`
}

func (auditLogModel) TableName() string { return "audit_log" }

type Repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

func (r *Repository) Migrate() error {
	return r.db.AutoMigrate(&auditLogModel{})
}

func (r *Repository) Insert(ctx context.Context, entry *models.AuditEntry) error {
	m := auditLogModel{
		Actor:     entry.Actor,
		Action:    entry.Action,
		Module:    entry.Module,
		Subject:   entry.Subject,
		CreatedAt: entry.CreatedAt,
	}
	if entry.Payload != nil {
		raw, err := json.Marshal(entry.Payload)
		if err != nil {
			return fmt.Errorf("encode audit payload: %w", err)
		}
		m.Payload = datatypes.JSON(raw)
	}
	if err := r.db.WithContext(ctx).Create(&m).Error; err != nil {
		return fmt.Errorf("insert audit entry: %w", err)
	}
	entry.ID = m.ID
	return nil
}

// List returns recent entries, newest first, optionally filtered by module
// and subject.
func (r *Repository) List(ctx context.Context, module, subject string, limit int) ([]models.AuditEntry, error) {
	q := r.db.WithContext(ctx).Order("created_at DESC")
	if module != "" {
		q = q.Where("module = ?", module)
	}
	if subject != "" {
		q = q.Where("subject = ?", subject)
	}
	if limit <= 0 {
		limit = 100
	}

	var rows []auditLogModel
	if err := q.Limit(limit).Find(&rows).Error; err != nil {
		return nil, fmt.Errorf("list audit entries: %w", err)
	}

	entries := make([]models.AuditEntry, 0, len(rows))
	for _, m := range rows {
		e := models.AuditEntry{
			ID:        m.ID,
			Actor:     m.Actor,
			Action:    m.Action,
			Module:    m.Module,
			Subject:   m.Subject,
			CreatedAt: m.CreatedAt,
		}
		if len(m.Payload) > 0 {
			if err := json.Unmarshal(m.Payload, &e.Payload); err != nil {
				return nil, fmt.Errorf("decode audit payload %d: %w", m.ID, err)
			}
		}
		entries = append(entries, e)
	}
	return entries, nil
}
