package airtable

import (
	"github.com/samber/lo"

	"github.com/you-humble/paybridge/internal/model"
)

func (r *repository) recordToModel(rec record) model.Invoice {
	return model.Invoice{
		ID:     rec.ID,
		Owner:  fieldString(rec.Fields[r.ownerField]),
		Email:  fieldString(rec.Fields[r.emailField]),
		Amount: fieldString(rec.Fields[fieldAmount]),
		Status: model.InvoiceStatus(fieldString(rec.Fields[fieldStatus])),
	}
}

func (r *repository) recordsToModel(recs []record) []model.Invoice {
	return lo.Map(recs, func(rec record, _ int) model.Invoice {
		return r.recordToModel(rec)
	})
}
