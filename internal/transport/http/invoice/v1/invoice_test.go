package http

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/you-humble/paybridge/internal/model"
)

const loginURL = "https://auth.example.com/login"

type fakeService struct {
	token    string
	identity *model.Identity
	invoices []model.Invoice
	err      error
}

func (f *fakeService) List(_ context.Context, token string) (*model.Identity, []model.Invoice, error) {
	f.token = token
	if f.err != nil {
		return nil, nil, f.err
	}
	return f.identity, f.invoices, nil
}

func TestIndexRendersInvoices(t *testing.T) {
	t.Parallel()

	svc := &fakeService{
		identity: &model.Identity{Subject: "user-1", Email: "user@example.com"},
		invoices: []model.Invoice{
			{ID: "rec1", Amount: "1500.00", Status: model.StatusPaid, Email: "a@b.c"},
			{ID: "rec2", Amount: "300", Status: model.StatusPending, Email: "<script>"},
		},
	}

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Authorization", "Bearer tok-1")
	rec := httptest.NewRecorder()
	NewInvoiceHandler(svc, loginURL, "access_token").Index(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "text/html; charset=utf-8", rec.Header().Get("Content-Type"))
	assert.Equal(t, "tok-1", svc.token)

	body := rec.Body.String()
	assert.Contains(t, body, "user@example.com")
	assert.Contains(t, body, "<td>rec1</td><td>1500.00</td><td>Paid</td><td>a@b.c</td>")
	assert.Contains(t, body, "&lt;script&gt;")
	assert.NotContains(t, body, "<script>")
	assert.Less(t, strings.Index(body, "rec1"), strings.Index(body, "rec2"))
}

func TestIndexEmptyList(t *testing.T) {
	t.Parallel()

	svc := &fakeService{identity: &model.Identity{Subject: "user-1"}}

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.AddCookie(&http.Cookie{Name: "access_token", Value: "cookie-tok"})
	rec := httptest.NewRecorder()
	NewInvoiceHandler(svc, loginURL, "access_token").Index(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "cookie-tok", svc.token)
	assert.Contains(t, rec.Body.String(), "Счетов пока нет.")
}

func TestIndexTokenSources(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		header string
		cookie string
		want   string
	}{
		{name: "bearer header", header: "Bearer abc", want: "abc"},
		{name: "case-insensitive scheme", header: "bearer abc", want: "abc"},
		{name: "header wins over cookie", header: "Bearer abc", cookie: "zzz", want: "abc"},
		{name: "non-bearer header", header: "Basic dXNlcjpwYXNz", cookie: "zzz", want: ""},
		{name: "cookie", cookie: "zzz", want: "zzz"},
		{name: "nothing", want: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			req := httptest.NewRequest(http.MethodGet, "/", nil)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}
			if tt.cookie != "" {
				req.AddCookie(&http.Cookie{Name: "access_token", Value: tt.cookie})
			}

			h := NewInvoiceHandler(&fakeService{}, loginURL, "access_token")
			assert.Equal(t, tt.want, h.token(req))
		})
	}
}

func TestIndexErrors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		err      error
		status   int
		contains string
	}{
		{
			name:     "unauthorized shows login link",
			err:      fmt.Errorf("invoice.service.List: %w", model.ErrUnauthorized),
			status:   http.StatusUnauthorized,
			contains: `href="` + loginURL + `"`,
		},
		{
			name:     "upstream failure",
			err:      fmt.Errorf("op: %w: %w", model.ErrBadGateway, errors.New("timeout")),
			status:   http.StatusBadGateway,
			contains: "502",
		},
		{
			name:     "unexpected",
			err:      errors.New("boom"),
			status:   http.StatusInternalServerError,
			contains: "500",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			rec := httptest.NewRecorder()
			NewInvoiceHandler(&fakeService{err: tt.err}, loginURL, "access_token").
				Index(rec, httptest.NewRequest(http.MethodGet, "/", nil))

			assert.Equal(t, tt.status, rec.Code)
			assert.Contains(t, rec.Body.String(), tt.contains)
			assert.NotContains(t, rec.Body.String(), "boom")
		})
	}
}
