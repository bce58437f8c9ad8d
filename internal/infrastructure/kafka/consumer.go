package kafka

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"arweaveCost/internal/domain"
	"arweaveCost/internal/ports"

	"github.com/segmentio/kafka-go"
)

const (
	defaultHandleAttempts = 5
	defaultHandleBackoff  = 200 * time.Millisecond
	maxHandleBackoff      = 5 * time.Second
)

// messageReader — часть kafka.Reader, которой пользуется консьюмер.
type messageReader interface {
	FetchMessage(ctx context.Context) (kafka.Message, error)
	CommitMessages(ctx context.Context, msgs ...kafka.Message) error
	Close() error
}

// Consumer — читает события расчётов из топика и передаёт их в use case (дальше в ClickHouse).
type Consumer struct {
	r        messageReader
	uc       ports.IEstimatorUseCase
	log      *slog.Logger
	attempts int
	backoff  time.Duration
}

// NewConsumer создаёт консьюмера по конфигу, use case и логгеру. После использования вызови Close().
func NewConsumer(cfg *Config, uc ports.IEstimatorUseCase, log *slog.Logger) *Consumer {
	c := New(cfg).Consumer()
	c.uc = uc
	c.log = log
	return c
}

// Run читает сообщения до отмены ctx. Битое сообщение коммитим и пропускаем.
// Ошибку обработки повторяем на месте с растущей паузой: коммит следующего сообщения сдвинул бы оффсет
// за упавшее. Если попытки кончились, Run возвращает ошибку без коммита, и после перезапуска
// consumer group прочитает сообщение снова.
func (c *Consumer) Run(ctx context.Context) error {
	for {
		msg, err := c.r.FetchMessage(ctx)
		if err != nil {
			if ctx.Err() != nil {
				return ctx.Err()
			}
			c.log.Error("kafka consumer stopped", "error", err)
			return err
		}

		if est, ok := c.decode(msg); ok {
			if err := c.handle(ctx, msg, est); err != nil {
				return err
			}
		}

		if err := c.r.CommitMessages(ctx, msg); err != nil {
			if ctx.Err() != nil {
				return ctx.Err()
			}
			c.log.Error("kafka consumer stopped (commit)", "error", err)
			return err
		}
	}
}

// handle передаёт событие в use case, повторяя при ошибке до c.attempts раз.
func (c *Consumer) handle(ctx context.Context, msg kafka.Message, est domain.Estimate) error {
	attempts := max(c.attempts, 1)
	backoff := c.backoff
	var err error
	for attempt := 1; attempt <= attempts; attempt++ {
		if err = c.uc.HandleEstimateEvent(ctx, est); err == nil {
			return nil
		}
		c.log.Warn("kafka handle error",
			"error", err,
			"key", string(msg.Key),
			"offset", msg.Offset,
			"attempt", attempt,
		)
		if attempt == attempts {
			break
		}
		t := time.NewTimer(backoff)
		select {
		case <-ctx.Done():
			t.Stop()
			return ctx.Err()
		case <-t.C:
		}
		backoff = min(backoff*2, maxHandleBackoff)
	}
	c.log.Error("kafka consumer stopped, message left uncommitted", "key", string(msg.Key), "offset", msg.Offset)
	return fmt.Errorf("handle estimate at offset %d: %w", msg.Offset, err)
}

// decode разбирает тело сообщения. Событие без файлов считаем битым.
func (c *Consumer) decode(msg kafka.Message) (domain.Estimate, bool) {
	var est domain.Estimate
	if err := json.Unmarshal(msg.Value, &est); err != nil {
		c.log.Warn("kafka unmarshal error, skip", "error", err, "topic", msg.Topic, "partition", msg.Partition, "offset", msg.Offset)
		return domain.Estimate{}, false
	}
	if est.FileCount <= 0 {
		c.log.Warn("kafka empty estimate, skip", "key", string(msg.Key), "offset", msg.Offset)
		return domain.Estimate{}, false
	}
	return est, true
}

// Close закрывает консьюмера.
func (c *Consumer) Close() error {
	return c.r.Close()
}
