package models

import (
	"context"
	"time"

	"github.com/uptrace/bun"
)

// Invoice : Invoice Model
type Invoice struct {
	ID               int64        `json:"id" bun:",pk,autoincrement"`
	RecipientAddress string       `json:"recipientAddress" bun:",notnull" validate:"required"`
	CompanyName      string       `json:"companyName" bun:",notnull" validate:"required"`
	CompanyEmail     string       `json:"companyEmail" bun:",notnull" validate:"required,email"`
	Cryptocurrency   string       `json:"cryptocurrency" bun:",notnull" validate:"required"`
	InvoiceCategory  string       `json:"invoiceCategory" bun:",notnull" validate:"required"`
	Description      string       `json:"description" bun:",notnull"`
	DueDate          time.Time    `json:"dueDate" bun:",notnull" validate:"required"`
	PaymentDue       string       `json:"paymentDue" bun:",notnull" validate:"required"`
	IsPending        bool         `json:"isPending" bun:",notnull,default:true"`
	CreatedAt        time.Time    `json:"createdAt" bun:",nullzero,notnull,default:current_timestamp"`
	UpdatedAt        bun.NullTime `json:"updatedAt"`
}

func (i *Invoice) BeforeAppendModel(ctx context.Context, query bun.Query) error {
	switch query.(type) {
	case *bun.UpdateQuery:
		i.UpdatedAt = bun.NullTime{Time: time.Now()}
	}
	return nil
}

var _ bun.BeforeAppendModelHook = (*Invoice)(nil)
