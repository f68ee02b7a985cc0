package model

import "strings"

type NotificationStatus string

// NotificationSuccess is the status of a Pay URL call, which carries no
// MNT_COMMAND. Every other status is derived from the lower-cased command.
const NotificationSuccess NotificationStatus = "success"

// PaymentNotification holds the Moneta fields that take part in signing.
// Amount is kept verbatim because the signature covers its exact text.
type PaymentNotification struct {
	MerchantID    string
	TransactionID string
	OperationID   string
	Amount        string
	CurrencyCode  string
	SubscriberID  string
	TestMode      string
	Command       string
	Signature     string
}

func (n PaymentNotification) Status() NotificationStatus {
	if n.Command == "" {
		return NotificationSuccess
	}
	return NotificationStatus(strings.ToLower(n.Command))
}

func (n PaymentNotification) IsTest() bool { return n.TestMode == "1" }

type NotificationOutcome string

const (
	OutcomePaid        NotificationOutcome = "paid"
	OutcomeAlreadyPaid NotificationOutcome = "already_paid"
	OutcomeIgnored     NotificationOutcome = "ignored"
)

type NotificationResult struct {
	Outcome NotificationOutcome
	// Nil for ignored notifications.
	Invoice *Invoice
}
