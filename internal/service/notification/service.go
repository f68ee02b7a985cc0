package notification

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/you-humble/paybridge/internal/model"
	"github.com/you-humble/paybridge/internal/moneta"
	"github.com/you-humble/paybridge/platform/logger"
)

type InvoiceRepository interface {
	InvoiceByID(ctx context.Context, id string) (*model.Invoice, error)
	MarkPaid(ctx context.Context, params model.MarkPaidParams) (bool, error)
}

type InvoicePaidSender interface {
	SendInvoicePaid(ctx context.Context, event model.InvoicePaid) error
}

type service struct {
	repo              InvoiceRepository
	sender            InvoicePaidSender
	merchantID        string
	integrityCode     string
	readStoreTimeout  time.Duration
	writeStoreTimeout time.Duration
	now               func() time.Time
}

func NewNotificationService(
	repository InvoiceRepository,
	sender InvoicePaidSender,
	merchantID string,
	integrityCode string,
	readStoreTimeout time.Duration,
	writeStoreTimeout time.Duration,
) *service {
	return &service{
		repo:              repository,
		sender:            sender,
		merchantID:        merchantID,
		integrityCode:     integrityCode,
		readStoreTimeout:  readStoreTimeout,
		writeStoreTimeout: writeStoreTimeout,
		now:               time.Now,
	}
}

func (svc *service) Handle(
	ctx context.Context,
	n model.PaymentNotification,
) (*model.NotificationResult, error) {
	const op string = "notification.service.Handle"
	log := logger.With(
		logger.String("transaction_id", n.TransactionID),
		logger.String("operation_id", n.OperationID),
		logger.String("status", string(n.Status())),
	)

	if n.MerchantID != svc.merchantID {
		log.Warn(ctx, "unexpected merchant id", logger.String("merchant_id", n.MerchantID))
		return nil, fmt.Errorf("%s: %w", op, model.ErrIntegrity)
	}

	expected := moneta.NotificationSignature(n.MerchantID, n, svc.integrityCode)
	if !moneta.SignatureEqual(expected, n.Signature) {
		log.Warn(ctx, "signature mismatch")
		return nil, fmt.Errorf("%s: %w", op, model.ErrIntegrity)
	}

	if n.Status() != model.NotificationSuccess {
		log.Info(ctx, "notification acknowledged without changes")
		return &model.NotificationResult{Outcome: model.OutcomeIgnored}, nil
	}

	if n.TransactionID == "" {
		log.Error(ctx, "empty transaction id")
		return nil, fmt.Errorf("%s: %w", op, model.ErrValidation)
	}

	rCtx, rCancel := context.WithTimeout(ctx, svc.readStoreTimeout)
	defer rCancel()

	inv, err := svc.repo.InvoiceByID(rCtx, n.TransactionID)
	if err != nil {
		if errors.Is(err, model.ErrInvoiceNotFound) {
			log.Warn(ctx, "invoice not found")
			return nil, fmt.Errorf("%s: %w", op, err)
		}
		log.Error(ctx, "repository invoice by id", logger.ErrorF(err))
		return nil, fmt.Errorf("%s: %w: %w", op, model.ErrBadGateway, err)
	}

	log = log.With(logger.String("invoice_status", string(inv.Status)))

	if inv.Status.IsPaid() {
		log.Info(ctx, "invoice already paid")
		return &model.NotificationResult{Outcome: model.OutcomeAlreadyPaid, Invoice: inv}, nil
	}

	status := model.StatusPaid
	if n.IsTest() {
		status = model.StatusTestPaid
	}

	wCtx, wCancel := context.WithTimeout(ctx, svc.writeStoreTimeout)
	defer wCancel()

	transitioned, err := svc.repo.MarkPaid(wCtx, model.MarkPaidParams{
		ID:     inv.ID,
		Amount: n.Amount,
		Status: status,
	})
	if err != nil {
		if errors.Is(err, model.ErrInvoiceNotFound) {
			log.Warn(ctx, "invoice disappeared before update")
			return nil, fmt.Errorf("%s: %w", op, err)
		}
		log.Error(ctx, "repository mark paid", logger.ErrorF(err))
		return nil, fmt.Errorf("%s: %w: %w", op, model.ErrBadGateway, err)
	}

	if !transitioned {
		log.Info(ctx, "invoice paid by a concurrent notification")
		return &model.NotificationResult{Outcome: model.OutcomeAlreadyPaid, Invoice: inv}, nil
	}

	inv.Amount = n.Amount
	inv.Status = status
	log.Info(ctx, "invoice marked paid", logger.String("amount", n.Amount))

	event := model.InvoicePaid{
		EventID:     uuid.NewString(),
		InvoiceID:   inv.ID,
		Owner:       inv.Owner,
		Amount:      inv.Amount,
		Status:      string(inv.Status),
		OperationID: n.OperationID,
		TestMode:    n.IsTest(),
		PaidAt:      svc.now().UTC(),
	}
	if err := svc.sender.SendInvoicePaid(ctx, event); err != nil {
		log.Error(ctx, "send invoice paid event", logger.ErrorF(err))
	}

	return &model.NotificationResult{Outcome: model.OutcomePaid, Invoice: inv}, nil
}
