package handler

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"time"

	"github.com/SergeyBogomolovv/shop-service/internal/config"
	"github.com/SergeyBogomolovv/shop-service/internal/entities"

	"github.com/go-playground/validator/v10"
	"github.com/segmentio/kafka-go"
)

type OrderCreator interface {
	CreateOrder(ctx context.Context, order entities.Order) (string, error)
}

type MessageReader interface {
	FetchMessage(ctx context.Context) (kafka.Message, error)
	CommitMessages(ctx context.Context, msgs ...kafka.Message) error
	Close() error
}

type MessageWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error
	Close() error
}

// CheckoutConsumer turns checkout events into orders. Events that cannot be
// decoded or stored are copied to the <topic>-dlq topic and committed.
type CheckoutConsumer struct {
	dlq      MessageWriter
	reader   MessageReader
	logger   *slog.Logger
	validate *validator.Validate
	creator  OrderCreator
}

func NewCheckoutConsumer(logger *slog.Logger, cfg config.Kafka, creator OrderCreator) *CheckoutConsumer {
	reader := kafka.NewReader(kafka.ReaderConfig{
		Brokers: cfg.Brokers,
		GroupID: cfg.GroupID,
		Topic:   cfg.Topic,
		MaxWait: cfg.ReaderMaxWait,
	})
	dlq := &kafka.Writer{
		Addr:                   kafka.TCP(cfg.Brokers...),
		Balancer:               &kafka.LeastBytes{},
		BatchTimeout:           cfg.BatchTimeout,
		AllowAutoTopicCreation: true,
	}
	return newCheckoutConsumer(logger, reader, dlq, creator)
}

func newCheckoutConsumer(logger *slog.Logger, reader MessageReader, dlq MessageWriter, creator OrderCreator) *CheckoutConsumer {
	return &CheckoutConsumer{
		logger:   logger.With(slog.String("handler", "kafka")),
		reader:   reader,
		dlq:      dlq,
		validate: newValidator(),
		creator:  creator,
	}
}

func (h *CheckoutConsumer) Consume(ctx context.Context) {
	for {
		m, err := h.reader.FetchMessage(ctx)
		if err != nil {
			if errors.Is(err, io.EOF) || errors.Is(err, context.Canceled) || ctx.Err() != nil {
				return
			}
			h.logger.Error("failed to fetch message", slog.Any("error", err))
			continue
		}

		h.process(ctx, m)
	}
}

func (h *CheckoutConsumer) process(ctx context.Context, m kafka.Message) {
	start := time.Now()
	defer func() { checkoutDuration.Observe(time.Since(start).Seconds()) }()

	orderID, err := h.handleCheckout(ctx, m)
	if err != nil {
		checkoutFailed.Inc()
		h.logger.Error("failed to handle message", slog.Any("error", err), slog.Int64("offset", m.Offset))

		if err := h.writeToDLQ(ctx, m); err != nil {
			// left uncommitted so the event is redelivered
			h.logger.Error("failed to write message to DLQ", slog.Any("error", err))
			return
		}
		checkoutDLQ.Inc()
	} else {
		checkoutProcessed.Inc()
		ordersCreated.WithLabelValues("kafka").Inc()
		h.logger.Debug("checkout processed", slog.String("order_id", orderID))
	}

	if err := h.reader.CommitMessages(ctx, m); err != nil {
		commitErrors.Inc()
		h.logger.Error("failed to commit message", slog.Any("error", err))
	}
}

func (h *CheckoutConsumer) handleCheckout(ctx context.Context, m kafka.Message) (string, error) {
	var req CreateOrderRequest
	if err := json.Unmarshal(m.Value, &req); err != nil {
		return "", fmt.Errorf("failed to unmarshal checkout: %w", err)
	}

	if err := h.validate.Struct(req); err != nil {
		return "", fmt.Errorf("invalid checkout data: %w", err)
	}

	return h.creator.CreateOrder(ctx, req.ToEntity())
}

func (h *CheckoutConsumer) writeToDLQ(ctx context.Context, m kafka.Message) error {
	return h.dlq.WriteMessages(ctx, kafka.Message{
		Topic:   fmt.Sprintf("%s-dlq", m.Topic),
		Key:     m.Key,
		Value:   m.Value,
		Headers: m.Headers,
	})
}

func (h *CheckoutConsumer) Close() error {
	if err := h.reader.Close(); err != nil {
		return err
	}
	return h.dlq.Close()
}
