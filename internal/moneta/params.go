package moneta

import (
	"encoding/json"
	"fmt"
	"mime"
	"net/http"
	"strings"

	"github.com/you-humble/paybridge/internal/model"
)

const (
	ParamMerchantID    = "MNT_ID"
	ParamTransactionID = "MNT_TRANSACTION_ID"
	ParamOperationID   = "MNT_OPERATION_ID"
	ParamAmount        = "MNT_AMOUNT"
	ParamCurrencyCode  = "MNT_CURRENCY_CODE"
	ParamSubscriberID  = "MNT_SUBSCRIBER_ID"
	ParamTestMode      = "MNT_TEST_MODE"
	ParamCommand       = "MNT_COMMAND"
	ParamSignature     = "MNT_SIGNATURE"
)

const maxBodyBytes = 1 << 20

type Params map[string]string

// ParseRequest merges the query string with a form or JSON body. Body values
// override query values with the same key. An empty result means the call
// carried no parameters at all.
func ParseRequest(r *http.Request) (Params, error) {
	params := Params{}
	for k, v := range r.URL.Query() {
		if len(v) > 0 {
			params[k] = v[0]
		}
	}

	if r.Body == nil || r.Method == http.MethodGet {
		return params, nil
	}

	mediaType, _, _ := mime.ParseMediaType(r.Header.Get("Content-Type"))
	switch mediaType {
	case "application/x-www-form-urlencoded":
		r.Body = http.MaxBytesReader(nil, r.Body, maxBodyBytes)
		if err := r.ParseForm(); err != nil {
			return nil, fmt.Errorf("parse form: %w", err)
		}
		for k, v := range r.PostForm {
			if len(v) > 0 {
				params[k] = v[0]
			}
		}
	case "application/json":
		var body map[string]any
		dec := json.NewDecoder(http.MaxBytesReader(nil, r.Body, maxBodyBytes))
		dec.UseNumber()
		// Malformed or non-object JSON counts as no body.
		if err := dec.Decode(&body); err != nil {
			return params, nil
		}
		for k, v := range body {
			params[k] = stringify(v)
		}
	}

	return params, nil
}

func (p Params) Notification() model.PaymentNotification {
	testMode := p[ParamTestMode]
	if testMode == "" {
		testMode = "0"
	}

	return model.PaymentNotification{
		MerchantID:    p[ParamMerchantID],
		TransactionID: p[ParamTransactionID],
		OperationID:   p[ParamOperationID],
		Amount:        p[ParamAmount],
		CurrencyCode:  p[ParamCurrencyCode],
		SubscriberID:  p[ParamSubscriberID],
		TestMode:      testMode,
		Command:       p[ParamCommand],
		Signature:     strings.ToLower(p[ParamSignature]),
	}
}

func stringify(v any) string {
	switch t := v.(type) {
	case nil:
		return ""
	case string:
		return t
	case json.Number:
		return t.String()
	default:
		return fmt.Sprint(t)
	}
}
