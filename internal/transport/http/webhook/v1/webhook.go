package http

import (
	"context"
	"errors"
	"net/http"

	"github.com/you-humble/paybridge/internal/model"
	"github.com/you-humble/paybridge/internal/moneta"
	"github.com/you-humble/paybridge/platform/logger"
)

type NotificationService interface {
	Handle(ctx context.Context, n model.PaymentNotification) (*model.NotificationResult, error)
}

type handler struct {
	svc       NotificationService
	responder *moneta.Responder
}

func NewWebhookHandler(service NotificationService, responder *moneta.Responder) *handler {
	return &handler{svc: service, responder: responder}
}

// Notify serves the gateway Pay URL. Every answer except the empty probe is
// an MNT_RESPONSE with HTTP 200; the outcome lives in MNT_RESULT_CODE.
func (h *handler) Notify(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	params, err := moneta.ParseRequest(r)
	if err != nil {
		logger.Warn(ctx, "parse notification", logger.ErrorF(err))
		h.write(ctx, w, h.responder.Failure(""))
		return
	}

	if len(params) == 0 {
		w.Header().Set("Content-Type", "text/plain; charset=utf-8")
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("OK"))
		return
	}

	n := params.Notification()

	res, err := h.svc.Handle(ctx, n)
	if err != nil {
		h.write(ctx, w, h.mapErrorToResponse(n.TransactionID, err))
		return
	}

	h.write(ctx, w, h.success(ctx, n, res))
}

func (h *handler) success(
	ctx context.Context,
	n model.PaymentNotification,
	res *model.NotificationResult,
) moneta.Response {
	if res.Invoice == nil {
		return h.responder.Success(n.TransactionID)
	}

	attrs, err := h.responder.Receipt(n.Amount, res.Invoice.Email)
	if err != nil {
		logger.Warn(ctx, "receipt attributes skipped",
			logger.String("transaction_id", n.TransactionID),
			logger.ErrorF(err),
		)
		return h.responder.Success(n.TransactionID)
	}

	return h.responder.Success(n.TransactionID, attrs...)
}

func (h *handler) write(ctx context.Context, w http.ResponseWriter, resp moneta.Response) {
	body, err := resp.Marshal()
	if err != nil {
		logger.Error(ctx, "marshal moneta response", logger.ErrorF(err))
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/xml; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write(body); err != nil {
		logger.Error(ctx, "write moneta response", logger.ErrorF(err))
	}
}

// An unknown invoice is acknowledged so the gateway stops retrying a
// notification that can never succeed.
func (h *handler) mapErrorToResponse(transactionID string, err error) moneta.Response {
	switch {
	case errors.Is(err, model.ErrInvoiceNotFound):
		return h.responder.Success(transactionID)
	default:
		return h.responder.Failure(transactionID)
	}
}
