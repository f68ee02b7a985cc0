package invproducer

import (
	"context"
	"fmt"

	"github.com/you-humble/paybridge/internal/model"
	"github.com/you-humble/paybridge/platform/kafka"
)

type Converter interface {
	InvoicePaidToPayload(m model.InvoicePaid) ([]byte, error)
}

type service struct {
	producer kafka.Producer
	conv     Converter
}

func NewInvoiceProducer(producer kafka.Producer, conv Converter) *service {
	return &service{producer: producer, conv: conv}
}

func (s *service) SendInvoicePaid(ctx context.Context, event model.InvoicePaid) error {
	payload, err := s.conv.InvoicePaidToPayload(event)
	if err != nil {
		return fmt.Errorf("converter invoice_paid_to_payload error: %w", err)
	}

	if err := s.producer.Send(ctx, []byte(event.InvoiceID), payload); err != nil {
		return fmt.Errorf("producer to invoice.paid topic error: %w", err)
	}

	return nil
}

type nopSender struct{}

// NewNopSender is used when event publishing is disabled.
func NewNopSender() nopSender { return nopSender{} }

func (nopSender) SendInvoicePaid(context.Context, model.InvoicePaid) error { return nil }
