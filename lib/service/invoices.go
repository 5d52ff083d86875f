package service

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/invoicehub/invoicehub.go/db/models"
	"github.com/shopspring/decimal"
)

// All due amounts are stored rounded to 4 decimal places.
const paymentDuePlaces = 4

// InvoiceFilter narrows an invoice listing. The zero value matches everything.
type InvoiceFilter struct {
	RecipientAddress string
	IsPending        *bool
}

func normalizeDue(amount string) (string, error) {
	due, err := decimal.NewFromString(amount)
	if err != nil {
		return "", ErrInvalidAmount
	}
	if !due.IsPositive() {
		return "", ErrInvalidAmount
	}
	return due.Round(paymentDuePlaces).StringFixed(paymentDuePlaces), nil
}

// deductPayment applies a single payment against the current due amount and
// returns the new due amount plus the recomputed pending flag. Overpayment is
// rejected outright, not capped.
func deductPayment(currentDue, amountPaid string) (newDue string, pending bool, err error) {
	due, err := decimal.NewFromString(currentDue)
	if err != nil {
		return "", false, ErrInvalidAmount
	}
	paid, err := decimal.NewFromString(amountPaid)
	if err != nil {
		return "", false, ErrInvalidAmount
	}
	// A payment must reduce the due amount: zero and negative amounts are
	// rejected so payment_due can never grow.
	if !paid.IsPositive() {
		return "", false, ErrInvalidAmount
	}
	remaining := due.Sub(paid)
	if remaining.IsNegative() {
		return "", false, ErrOverPayment
	}
	rounded := remaining.Round(paymentDuePlaces)
	return rounded.StringFixed(paymentDuePlaces), rounded.IsPositive(), nil
}

// CreateInvoice persists the invoice and then attempts the creation notice
// email. The record is committed before the send, so a failed send returns
// ErrEmailDelivery with the invoice already stored.
func (svc *InvoicehubService) CreateInvoice(ctx context.Context, invoice *models.Invoice) error {
	due, err := normalizeDue(invoice.PaymentDue)
	if err != nil {
		return err
	}
	invoice.PaymentDue = due
	invoice.IsPending = true

	if _, err := svc.DB.NewInsert().Model(invoice).Exec(ctx); err != nil {
		return err
	}

	body := fmt.Sprintf("An invoice has been created. View it here: %s/%d", svc.Config.InvoiceBaseUrl, invoice.ID)
	if err := svc.Notifier.Send(ctx, invoice.CompanyEmail, "Invoice Created", body); err != nil {
		svc.Logger.Errorf("Error sending invoice creation email: invoice_id:%v error: %v", invoice.ID, err)
		return ErrEmailDelivery
	}
	return nil
}

func (svc *InvoicehubService) Invoices(ctx context.Context, filter InvoiceFilter) ([]models.Invoice, error) {
	invoices := []models.Invoice{}

	query := svc.DB.NewSelect().Model(&invoices).Order("id ASC")
	if filter.RecipientAddress != "" {
		query.Where("recipient_address = ?", filter.RecipientAddress)
	}
	if filter.IsPending != nil {
		query.Where("is_pending = ?", *filter.IsPending)
	}
	err := query.Scan(ctx)
	return invoices, err
}

func (svc *InvoicehubService) FindInvoice(ctx context.Context, invoiceId int64) (*models.Invoice, error) {
	var invoice models.Invoice

	err := svc.DB.NewSelect().Model(&invoice).Where("id = ?", invoiceId).Limit(1).Scan(ctx)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrInvoiceNotFound
		}
		return nil, err
	}
	return &invoice, nil
}

// ApplyPayment deducts amountPaid from the invoice's remaining due amount.
// The update is a compare-and-set on the previously read payment_due, so two
// concurrent payments can never both deduct from the same stale value; the
// loser of the race re-reads and retries.
func (svc *InvoicehubService) ApplyPayment(ctx context.Context, invoiceId int64, amountPaid, walletAddress string) (*models.Invoice, error) {
	for attempt := 0; attempt < svc.Config.PaymentMaxRetries; attempt++ {
		invoice, err := svc.FindInvoice(ctx, invoiceId)
		if err != nil {
			return nil, err
		}
		if invoice.RecipientAddress != walletAddress {
			return nil, ErrWalletMismatch
		}

		priorDue := invoice.PaymentDue
		newDue, pending, err := deductPayment(priorDue, amountPaid)
		if err != nil {
			return nil, err
		}
		invoice.PaymentDue = newDue
		invoice.IsPending = pending

		res, err := svc.DB.NewUpdate().
			Model(invoice).
			Column("payment_due", "is_pending", "updated_at").
			Where("id = ? AND payment_due = ?", invoice.ID, priorDue).
			Exec(ctx)
		if err != nil {
			return nil, err
		}
		rows, err := res.RowsAffected()
		if err != nil {
			return nil, err
		}
		if rows == 1 {
			return invoice, nil
		}
		svc.Logger.Infof("Concurrent payment update detected, retrying: invoice_id:%v attempt:%d", invoiceId, attempt+1)
	}
	return nil, fmt.Errorf("payment update contention on invoice %d", invoiceId)
}
