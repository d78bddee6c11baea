package audit

import (
	"context"
	"errors"
	"os"
	"testing"

	"github.com/paec-registry/platform/pkg/common/logger"
	"github.com/paec-registry/platform/pkg/common/models"
)

func TestMain(m *testing.M) {
	logger.Init()
	os.Exit(m.Run())
}

type memSink struct {
	entries []models.AuditEntry
	fail    bool
}

func (s *memSink) Insert(_ context.Context, entry *models.AuditEntry) error {
	if s.fail {
		return errors.New("sink down")
	}
	entry.ID = int64(len(s.entries) + 1)
	s.entries = append(s.entries, *entry)
	return nil
}

func (s *memSink) List(_ context.Context, module, subject string, limit int) ([]models.AuditEntry, error) {
	var out []models.AuditEntry
	for i := len(s.entries) - 1; i >= 0; i-- {
		e := s.entries[i]
		if module != "" && e.Module != module {
			continue
		}
		if subject != "" && e.Subject != subject {
			continue
		}
		out = append(out, e)
		if limit > 0 && len(out) == limit {
			break
		}
	}
	return out, nil
}

type memBus struct {
	published int
	fail      bool
}

func (b *memBus) PublishAudit(context.Context, string, string, string, map[string]interface{}) error {
	if b.fail {
		return errors.New("bus down")
	}
	b.published++
	return nil
}

func TestAppendStoresAndPublishes(t *testing.T) {
	sink := &memSink{}
	bus := &memBus{}
	svc := NewService(sink, bus)

	err := svc.Append(context.Background(), "dr.mehta", "created", "records", "PAEC001",
		map[string]interface{}{"rows": 3})
	if err != nil {
		t.Fatalf("Append: %v", err)
	}
	if len(sink.entries) != 1 {
		t.Fatalf("stored = %d", len(sink.entries))
	}
	if sink.entries[0].ID == 0 {
		t.Fatal("entry not assigned an id")
	}
	if bus.published != 1 {
		t.Fatalf("published = %d", bus.published)
	}
}

func TestAppendSurvivesBusFailure(t *testing.T) {
	sink := &memSink{}
	svc := NewService(sink, &memBus{fail: true})

	if err := svc.Append(context.Background(), "dr.mehta", "updated", "records", "PAEC001", nil); err != nil {
		t.Fatalf("Append should tolerate bus failure: %v", err)
	}
	if len(sink.entries) != 1 {
		t.Fatalf("stored = %d", len(sink.entries))
	}
}

func TestAppendReportsSinkFailure(t *testing.T) {
	svc := NewService(&memSink{fail: true}, &memBus{})
	if err := svc.Append(context.Background(), "dr.mehta", "updated", "records", "PAEC001", nil); err == nil {
		t.Fatal("expected sink error")
	}
}

func TestListFilters(t *testing.T) {
	sink := &memSink{}
	svc := NewService(sink, nil)

	for _, subject := range []string{"PAEC001", "PAEC002", "PAEC001"} {
		if err := svc.Append(context.Background(), "dr.mehta", "updated", "records", subject, nil); err != nil {
			t.Fatalf("Append: %v", err)
		}
	}

	entries, err := svc.List(context.Background(), "records", "PAEC001", 0)
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(entries) != 2 {
		t.Fatalf("entries = %d", len(entries))
	}
	if entries[0].ID < entries[1].ID {
		t.Fatal("entries not newest first")
	}
}
