//go:build integration

package postgres_test

import (
	"fmt"
	"sync"

	"github.com/brianvoe/gofakeit/v7"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"github.com/samber/lo"

	"github.com/you-humble/paybridge/internal/model"
	"github.com/you-humble/paybridge/internal/repository/invoice/postgres"
)

func insertInvoice(inv model.Invoice) {
	_, err := pgC.Pool().Exec(ctx,
		`INSERT INTO invoices (id, owner, email, amount, status) VALUES ($1, $2, $3, $4, $5)`,
		inv.ID, inv.Owner, inv.Email, inv.Amount, string(inv.Status),
	)
	Expect(err).NotTo(HaveOccurred())
}

func fakeInvoice(owner string) model.Invoice {
	return model.Invoice{
		ID:     "rec" + gofakeit.LetterN(14),
		Owner:  owner,
		Email:  gofakeit.Email(),
		Amount: fmt.Sprintf("%.2f", gofakeit.Price(100, 10000)),
		Status: model.StatusPending,
	}
}

var _ = Describe("invoice repository", func() {
	It("returns not found for an unknown id", func() {
		r := postgres.NewInvoiceRepository(pgC.Pool())

		_, err := r.InvoiceByID(ctx, "rec-missing")
		Expect(err).To(MatchError(model.ErrInvoiceNotFound))
	})

	It("reads an existing invoice", func() {
		r := postgres.NewInvoiceRepository(pgC.Pool())
		inv := fakeInvoice(gofakeit.UUID())
		insertInvoice(inv)

		got, err := r.InvoiceByID(ctx, inv.ID)
		Expect(err).NotTo(HaveOccurred())
		Expect(*got).To(Equal(inv))
	})

	It("marks an invoice paid exactly once", func() {
		r := postgres.NewInvoiceRepository(pgC.Pool())
		inv := fakeInvoice(gofakeit.UUID())
		insertInvoice(inv)

		params := model.MarkPaidParams{ID: inv.ID, Amount: "1500.00", Status: model.StatusPaid}

		ok, err := r.MarkPaid(ctx, params)
		Expect(err).NotTo(HaveOccurred())
		Expect(ok).To(BeTrue())

		ok, err = r.MarkPaid(ctx, params)
		Expect(err).NotTo(HaveOccurred())
		Expect(ok).To(BeFalse())

		got, err := r.InvoiceByID(ctx, inv.ID)
		Expect(err).NotTo(HaveOccurred())
		Expect(got.Status).To(Equal(model.StatusPaid))
		Expect(got.Amount).To(Equal("1500.00"))

		var paidAtSet bool
		Expect(pgC.Pool().QueryRow(ctx,
			`SELECT paid_at IS NOT NULL FROM invoices WHERE id = $1`, inv.ID,
		).Scan(&paidAtSet)).To(Succeed())
		Expect(paidAtSet).To(BeTrue())
	})

	It("lets only one of concurrent duplicates transition", func() {
		r := postgres.NewInvoiceRepository(pgC.Pool())
		inv := fakeInvoice(gofakeit.UUID())
		insertInvoice(inv)

		const workers = 8
		results := make([]bool, workers)

		var wg sync.WaitGroup
		for i := range workers {
			wg.Add(1)
			go func() {
				defer wg.Done()
				defer GinkgoRecover()

				ok, err := r.MarkPaid(ctx, model.MarkPaidParams{
					ID: inv.ID, Amount: inv.Amount, Status: model.StatusTestPaid,
				})
				Expect(err).NotTo(HaveOccurred())
				results[i] = ok
			}()
		}
		wg.Wait()

		Expect(lo.Count(results, true)).To(Equal(1))
	})

	It("reports not found when marking an unknown invoice", func() {
		r := postgres.NewInvoiceRepository(pgC.Pool())

		ok, err := r.MarkPaid(ctx, model.MarkPaidParams{ID: "rec-missing", Status: model.StatusPaid})
		Expect(err).To(MatchError(model.ErrInvoiceNotFound))
		Expect(ok).To(BeFalse())
	})

	It("lists only the owner's invoices", func() {
		r := postgres.NewInvoiceRepository(pgC.Pool())
		owner := gofakeit.UUID()

		mine := []model.Invoice{fakeInvoice(owner), fakeInvoice(owner)}
		for _, inv := range mine {
			insertInvoice(inv)
		}
		insertInvoice(fakeInvoice(gofakeit.UUID()))

		got, err := r.ListByOwner(ctx, owner)
		Expect(err).NotTo(HaveOccurred())
		Expect(got).To(ConsistOf(mine))
	})

	It("returns an empty list for an owner without invoices", func() {
		r := postgres.NewInvoiceRepository(pgC.Pool())

		got, err := r.ListByOwner(ctx, gofakeit.UUID())
		Expect(err).NotTo(HaveOccurred())
		Expect(got).To(BeEmpty())
	})
})
