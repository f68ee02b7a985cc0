package moneta

import (
	"encoding/json"
	"encoding/xml"
	"fmt"
	"strconv"
)

const (
	ResultSuccess = "200"
	ResultFailure = "500"
)

const (
	AttributeInventory = "INVENTORY"
	AttributeCustomer  = "CUSTOMER"
)

type Response struct {
	XMLName       xml.Name   `xml:"MNT_RESPONSE"`
	MerchantID    string     `xml:"MNT_ID"`
	TransactionID string     `xml:"MNT_TRANSACTION_ID"`
	ResultCode    string     `xml:"MNT_RESULT_CODE"`
	Signature     string     `xml:"MNT_SIGNATURE"`
	Attributes    Attributes `xml:"MNT_ATTRIBUTES"`
}

type Attributes struct {
	Items []Attribute `xml:"ATTRIBUTE"`
}

type Attribute struct {
	Key   string `xml:"KEY"`
	Value string `xml:"VALUE"`
}

func (r Response) Marshal() ([]byte, error) {
	body, err := xml.Marshal(r)
	if err != nil {
		return nil, err
	}
	return append([]byte(xml.Header), body...), nil
}

// ReceiptItem describes the single fiscal receipt line sent back with a
// successful payment.
type ReceiptItem struct {
	Name   string
	VATTag string
}

type inventoryLine struct {
	Name     string  `json:"name"`
	Price    float64 `json:"price"`
	Quantity int     `json:"quantity"`
	VATTag   string  `json:"vatTag"`
	PM       string  `json:"pm"`
	PO       string  `json:"po"`
}

// Responder builds signed MNT_RESPONSE documents for one merchant.
type Responder struct {
	merchantID    string
	integrityCode string
	receipt       ReceiptItem
}

func NewResponder(merchantID, integrityCode string, receipt ReceiptItem) *Responder {
	return &Responder{
		merchantID:    merchantID,
		integrityCode: integrityCode,
		receipt:       receipt,
	}
}

func (r *Responder) Success(transactionID string, attrs ...Attribute) Response {
	return r.build(ResultSuccess, transactionID, attrs)
}

func (r *Responder) Failure(transactionID string) Response {
	return r.build(ResultFailure, transactionID, nil)
}

// Receipt returns the INVENTORY and CUSTOMER attributes. CUSTOMER is left out
// when email is empty.
func (r *Responder) Receipt(amount, email string) ([]Attribute, error) {
	price, err := strconv.ParseFloat(amount, 64)
	if err != nil {
		return nil, fmt.Errorf("parse amount %q: %w", amount, err)
	}

	inventory, err := json.Marshal([]inventoryLine{{
		Name:     r.receipt.Name,
		Price:    price,
		Quantity: 1,
		VATTag:   r.receipt.VATTag,
		PM:       "full_payment",
		PO:       "commodity",
	}})
	if err != nil {
		return nil, err
	}

	attrs := []Attribute{{Key: AttributeInventory, Value: string(inventory)}}
	if email != "" {
		attrs = append(attrs, Attribute{Key: AttributeCustomer, Value: email})
	}
	return attrs, nil
}

func (r *Responder) build(code, transactionID string, attrs []Attribute) Response {
	return Response{
		MerchantID:    r.merchantID,
		TransactionID: transactionID,
		ResultCode:    code,
		Signature:     ResponseSignature(code, r.merchantID, transactionID, r.integrityCode),
		Attributes:    Attributes{Items: attrs},
	}
}
