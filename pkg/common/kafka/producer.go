package kafka

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/paec-registry/platform/pkg/common/config"
	"github.com/paec-registry/platform/pkg/common/logger"
	"github.com/segmentio/kafka-go"
)

type Producer struct {
	writer *kafka.Writer
}

func NewProducer(topic string) *Producer {
	cfg := config.Load()
	writer := &kafka.Writer{
		Addr:         kafka.TCP(cfg.KafkaBrokers...),
		Topic:        topic,
		Balancer:     &kafka.LeastBytes{},
		RequiredAcks: kafka.RequireAll,
		Async:        false,
		BatchSize:    1,
		BatchTimeout: 10 * time.Millisecond,
	}

	return &Producer{writer: writer}
}

type event struct {
	ID        string                 `json:"id"`
	Type      string                 `json:"type"`
	Actor     string                 `json:"actor"`
	Module    string                 `json:"module"`
	Data      map[string]interface{} `json:"data"`
	Timestamp time.Time              `json:"timestamp"`
}

// PublishAudit emits one audit event to the registry audit topic. Callers treat
// the result as advisory: a publish failure must never abort the operation the
// event describes.
func (p *Producer) PublishAudit(ctx context.Context, action, actor, module string, data map[string]interface{}) error {
	evt := event{
		ID:        uuid.New().String(),
		Type:      action,
		Actor:     actor,
		Module:    module,
		Data:      data,
		Timestamp: time.Now().UTC(),
	}

	eventBytes, err := json.Marshal(evt)
	if err != nil {
		return fmt.Errorf("failed to marshal audit event: %w", err)
	}

	message := kafka.Message{
		Key:   []byte(evt.ID),
		Value: eventBytes,
		Headers: []kafka.Header{
			{Key: "event-type", Value: []byte(action)},
			{Key: "module", Value: []byte(module)},
		},
	}

	if err := p.writer.WriteMessages(ctx, message); err != nil {
		logger.Log.WithError(err).WithFields(map[string]interface{}{
			"event_id":   evt.ID,
			"event_type": action,
		}).Error("Failed to publish audit event")
		return err
	}

	return nil
}

func (p *Producer) Close() error {
	return p.writer.Close()
}
