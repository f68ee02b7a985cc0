package moneta

import (
	"crypto/md5" //nolint:gosec // the gateway protocol is defined over MD5
	"crypto/subtle"
	"encoding/hex"
	"strings"

	"github.com/you-humble/paybridge/internal/model"
)

// NotificationSignature is MNT_SIGNATURE for an incoming call:
// md5(MNT_ID + MNT_TRANSACTION_ID + MNT_OPERATION_ID + MNT_AMOUNT +
// MNT_CURRENCY_CODE + MNT_SUBSCRIBER_ID + MNT_TEST_MODE + integrity code).
// Check URL calls carry MNT_COMMAND, which then leads the hashed string.
func NotificationSignature(merchantID string, n model.PaymentNotification, integrityCode string) string {
	return md5Hex(
		n.Command,
		merchantID,
		n.TransactionID,
		n.OperationID,
		n.Amount,
		n.CurrencyCode,
		n.SubscriberID,
		n.TestMode,
		integrityCode,
	)
}

// ResponseSignature is MNT_SIGNATURE of an MNT_RESPONSE document.
func ResponseSignature(resultCode, merchantID, transactionID, integrityCode string) string {
	return md5Hex(resultCode, merchantID, transactionID, integrityCode)
}

// SignatureEqual compares hex digests case-insensitively in constant time.
func SignatureEqual(expected, got string) bool {
	e := []byte(strings.ToLower(expected))
	g := []byte(strings.ToLower(strings.TrimSpace(got)))
	return subtle.ConstantTimeCompare(e, g) == 1
}

func md5Hex(parts ...string) string {
	h := md5.New() //nolint:gosec
	for _, p := range parts {
		h.Write([]byte(p))
	}
	return hex.EncodeToString(h.Sum(nil))
}
