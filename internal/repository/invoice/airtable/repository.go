package airtable

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"

	"github.com/you-humble/paybridge/internal/model"
)

const (
	pageSize     = 100
	maxErrorBody = 4 << 10
)

type Config struct {
	APIURL     string
	APIKey     string
	BaseID     string
	Table      string
	OwnerField string
	EmailField string
}

type repository struct {
	client     *http.Client
	tableURL   string
	apiKey     string
	ownerField string
	emailField string
}

func NewInvoiceRepository(client *http.Client, cfg Config) *repository {
	return &repository{
		client: client,
		tableURL: strings.TrimRight(cfg.APIURL, "/") + "/" +
			url.PathEscape(cfg.BaseID) + "/" + url.PathEscape(cfg.Table),
		apiKey:     cfg.APIKey,
		ownerField: cfg.OwnerField,
		emailField: cfg.EmailField,
	}
}

func (r *repository) InvoiceByID(ctx context.Context, id string) (*model.Invoice, error) {
	if id == "" {
		return nil, model.ErrInvoiceNotFound
	}

	var rec record
	status, err := r.do(ctx, http.MethodGet, r.tableURL+"/"+url.PathEscape(id), nil, &rec)
	if err != nil {
		if status == http.StatusNotFound {
			return nil, model.ErrInvoiceNotFound
		}
		return nil, err
	}

	inv := r.recordToModel(rec)
	return &inv, nil
}

// MarkPaid always writes; Airtable has no conditional update, so the read in
// the service is the idempotence guard. Two concurrent duplicates can both
// report a transition, so invoice.paid is at-least-once with this driver.
func (r *repository) MarkPaid(ctx context.Context, params model.MarkPaidParams) (bool, error) {
	if params.ID == "" {
		return false, errors.New("empty invoice id")
	}

	body := updateRequest{
		Typecast: true,
		Fields: map[string]any{
			fieldAmount: params.Amount,
			fieldStatus: string(params.Status),
		},
	}

	status, err := r.do(ctx, http.MethodPatch, r.tableURL+"/"+url.PathEscape(params.ID), body, nil)
	if err != nil {
		if status == http.StatusNotFound {
			return false, model.ErrInvoiceNotFound
		}
		return false, err
	}

	return true, nil
}

func (r *repository) ListByOwner(ctx context.Context, owner string) ([]model.Invoice, error) {
	formula := fmt.Sprintf("{%s} = '%s'", r.ownerField, escapeFormulaString(owner))

	var (
		out    []model.Invoice
		offset string
	)
	for {
		q := url.Values{}
		q.Set("filterByFormula", formula)
		q.Set("pageSize", fmt.Sprint(pageSize))
		if offset != "" {
			q.Set("offset", offset)
		}

		var page listResponse
		if _, err := r.do(ctx, http.MethodGet, r.tableURL+"?"+q.Encode(), nil, &page); err != nil {
			return nil, err
		}

		out = append(out, r.recordsToModel(page.Records)...)

		if page.Offset == "" {
			return out, nil
		}
		offset = page.Offset
	}
}

// do returns the HTTP status alongside the error so callers can map 404s.
func (r *repository) do(ctx context.Context, method, rawURL string, in, out any) (int, error) {
	var body io.Reader
	if in != nil {
		payload, err := json.Marshal(in)
		if err != nil {
			return 0, fmt.Errorf("airtable: encode request: %w", err)
		}
		body = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, rawURL, body)
	if err != nil {
		return 0, fmt.Errorf("airtable: build request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+r.apiKey)
	if in != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := r.client.Do(req)
	if err != nil {
		return 0, fmt.Errorf("airtable: %s: %w", method, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK && resp.StatusCode != http.StatusCreated {
		raw, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
		var apiErr errorResponse
		if json.Unmarshal(raw, &apiErr) == nil && len(apiErr.Error) > 0 {
			raw = apiErr.Error
		}
		return resp.StatusCode, fmt.Errorf("airtable: %s: unexpected status %d: %s",
			method, resp.StatusCode, bytes.TrimSpace(raw))
	}

	if out == nil {
		_, _ = io.Copy(io.Discard, resp.Body)
		return resp.StatusCode, nil
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return resp.StatusCode, fmt.Errorf("airtable: decode response: %w", err)
	}

	return resp.StatusCode, nil
}

func escapeFormulaString(s string) string {
	return strings.NewReplacer(`\`, `\\`, `'`, `\'`).Replace(s)
}
