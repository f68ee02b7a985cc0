package airtable

import (
	"encoding/json"
	"strings"
)

const (
	fieldAmount = "Amount"
	fieldStatus = "Status"
)

type record struct {
	ID     string                     `json:"id"`
	Fields map[string]json.RawMessage `json:"fields"`
}

type listResponse struct {
	Records []record `json:"records"`
	Offset  string   `json:"offset"`
}

type updateRequest struct {
	Typecast bool           `json:"typecast"`
	Fields   map[string]any `json:"fields"`
}

type errorResponse struct {
	Error json.RawMessage `json:"error"`
}

// fieldString flattens the shapes Airtable uses for a cell: plain text,
// numbers and lookup arrays (first element wins).
func fieldString(raw json.RawMessage) string {
	if len(raw) == 0 {
		return ""
	}

	var s string
	if err := json.Unmarshal(raw, &s); err == nil {
		return s
	}

	var n json.Number
	if err := json.Unmarshal(raw, &n); err == nil {
		return n.String()
	}

	var list []json.RawMessage
	if err := json.Unmarshal(raw, &list); err == nil {
		if len(list) == 0 {
			return ""
		}
		return fieldString(list[0])
	}

	return strings.Trim(string(raw), `"`)
}
