package invoice

import (
	"context"
	"fmt"
	"time"

	"github.com/samber/lo"

	"github.com/you-humble/paybridge/internal/model"
	"github.com/you-humble/paybridge/platform/logger"
)

type InvoiceLister interface {
	ListByOwner(ctx context.Context, owner string) ([]model.Invoice, error)
}

type TokenVerifier interface {
	Verify(ctx context.Context, token string) (*model.Identity, error)
}

type service struct {
	repo             InvoiceLister
	verifier         TokenVerifier
	readStoreTimeout time.Duration
}

func NewInvoiceService(
	repository InvoiceLister,
	verifier TokenVerifier,
	readStoreTimeout time.Duration,
) *service {
	return &service{
		repo:             repository,
		verifier:         verifier,
		readStoreTimeout: readStoreTimeout,
	}
}

// List returns the caller's invoices in store order. The store filter is
// not trusted on its own; foreign records are dropped here as well.
func (svc *service) List(ctx context.Context, token string) (*model.Identity, []model.Invoice, error) {
	const op string = "invoice.service.List"

	if token == "" {
		return nil, nil, fmt.Errorf("%s: %w", op, model.ErrUnauthorized)
	}

	identity, err := svc.verifier.Verify(ctx, token)
	if err != nil {
		logger.Warn(ctx, "token verification failed", logger.ErrorF(err))
		return nil, nil, fmt.Errorf("%s: %w", op, err)
	}

	log := logger.With(logger.String("subject", identity.Subject))

	ctx, cancel := context.WithTimeout(ctx, svc.readStoreTimeout)
	defer cancel()

	invoices, err := svc.repo.ListByOwner(ctx, identity.Subject)
	if err != nil {
		log.Error(ctx, "repository list by owner", logger.ErrorF(err))
		return nil, nil, fmt.Errorf("%s: %w: %w", op, model.ErrBadGateway, err)
	}

	owned := lo.Filter(invoices, func(inv model.Invoice, _ int) bool {
		return inv.Owner == identity.Subject
	})
	if dropped := len(invoices) - len(owned); dropped > 0 {
		log.Warn(ctx, "dropped foreign invoices", logger.Int("count", dropped))
	}

	return identity, owned, nil
}
