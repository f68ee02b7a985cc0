package http

import (
	"bytes"
	"context"
	"embed"
	"errors"
	"html/template"
	"net/http"
	"strings"

	"github.com/you-humble/paybridge/internal/model"
	"github.com/you-humble/paybridge/platform/logger"
)

//go:embed templates/*.html
var templatesFS embed.FS

var pages = template.Must(template.ParseFS(templatesFS, "templates/*.html"))

type InvoiceService interface {
	List(ctx context.Context, token string) (*model.Identity, []model.Invoice, error)
}

type handler struct {
	svc         InvoiceService
	loginURL    string
	tokenCookie string
}

func NewInvoiceHandler(service InvoiceService, loginURL, tokenCookie string) *handler {
	return &handler{
		svc:         service,
		loginURL:    loginURL,
		tokenCookie: tokenCookie,
	}
}

type invoicesPage struct {
	Subject  string
	Email    string
	Invoices []model.Invoice
}

type unauthorizedPage struct {
	LoginURL string
}

type errorPage struct {
	Code    int
	Message string
}

func (h *handler) Index(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	identity, invoices, err := h.svc.List(ctx, h.token(r))
	if err != nil {
		h.mapErrorToPage(ctx, w, err)
		return
	}

	h.render(ctx, w, http.StatusOK, "invoices", invoicesPage{
		Subject:  identity.Subject,
		Email:    identity.Email,
		Invoices: invoices,
	})
}

// token prefers the Authorization header over the cookie.
func (h *handler) token(r *http.Request) string {
	if auth := r.Header.Get("Authorization"); auth != "" {
		scheme, token, ok := strings.Cut(auth, " ")
		if ok && strings.EqualFold(scheme, "Bearer") {
			return strings.TrimSpace(token)
		}
		return ""
	}

	if c, err := r.Cookie(h.tokenCookie); err == nil {
		return c.Value
	}

	return ""
}

func (h *handler) mapErrorToPage(ctx context.Context, w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, model.ErrUnauthorized):
		h.render(ctx, w, http.StatusUnauthorized, "unauthorized", unauthorizedPage{ // 401
			LoginURL: h.loginURL,
		})
	case errors.Is(err, model.ErrBadGateway):
		h.render(ctx, w, http.StatusBadGateway, "error", errorPage{ // 502
			Code:    http.StatusBadGateway,
			Message: "Хранилище счетов временно недоступно.",
		})
	default:
		logger.Error(ctx, "invoice view", logger.ErrorF(err))
		h.render(ctx, w, http.StatusInternalServerError, "error", errorPage{ // 500
			Code:    http.StatusInternalServerError,
			Message: "Внутренняя ошибка.",
		})
	}
}

func (h *handler) render(ctx context.Context, w http.ResponseWriter, status int, name string, data any) {
	var buf bytes.Buffer
	if err := pages.ExecuteTemplate(&buf, name, data); err != nil {
		logger.Error(ctx, "render page", logger.String("page", name), logger.ErrorF(err))
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	if _, err := w.Write(buf.Bytes()); err != nil {
		logger.Error(ctx, "write page", logger.ErrorF(err))
	}
}
