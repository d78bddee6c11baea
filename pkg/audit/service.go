package audit

import (
	"context"
	"time"

	"github.com/paec-registry/platform/pkg/common/logger"
	"github.com/paec-registry/platform/pkg/common/models"
)

// Sink stores and reads back audit entries. The gorm Repository is the
// production sink.
type Sink interface {
	Insert(ctx context.Context, entry *models.AuditEntry) error
	List(ctx context.Context, module, subject string, limit int) ([]models.AuditEntry, error)
}

// Publisher mirrors audit entries onto the event bus for downstream
// consumers. Publishing is best-effort.
type Publisher interface {
	PublishAudit(ctx context.Context, action, actor, module string, data map[string]interface{}) error
}

// Service writes the audit trail. Append never returns storage errors to the
// operations being audited; the trail is advisory, not transactional.
type Service struct {
	sink Sink
	bus  Publisher
	now  func() time.Time
}

func NewService(sink Sink, bus Publisher) *Service {
	return &Service{sink: sink, bus: bus, now: time.Now}
}

// Append records one entry and mirrors it to the bus. A nil error does not
// guarantee the bus saw it, only that the durable sink did.
func (s *Service) Append(ctx context.Context, actor, action, module, subject string, payload map[string]interface{}) error {
	entry := models.AuditEntry{
		Actor:     actor,
		Action:    action,
		Module:    module,
		Subject:   subject,
		Payload:   payload,
		CreatedAt: s.now(),
	}
	if err := s.sink.Insert(ctx, &entry); err != nil {
		return err
	}

	if s.bus != nil {
		if err := s.bus.PublishAudit(ctx, action, actor, module, payload); err != nil {
			logger.WithFields(map[string]interface{}{
				"module": module,
				"action": action,
			}).Warnf("audit publish failed: %v", err)
		}
	}
	return nil
}

// List reads back recent entries.
func (s *Service) List(ctx context.Context, module, subject string, limit int) ([]models.AuditEntry, error) {
	return s.sink.List(ctx, module, subject, limit)
}
