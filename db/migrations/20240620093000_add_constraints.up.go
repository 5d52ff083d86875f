package migrations

import (
	"context"
	"fmt"

	"github.com/uptrace/bun"
)

func init() {
	Migrations.MustRegister(func(ctx context.Context, db *bun.DB) error {

		if db.Dialect().Name().String() != "pg" {
			fmt.Printf("\033[1;31m%s\033[0m", "You are not using PostgreSQL. DB level checks can not be enabled!\n")
			return nil
		}
		sql := `
			-- the remaining due amount must stay a non-negative decimal
				alter table invoices
				ADD CONSTRAINT check_payment_due_non_negative
				CHECK (payment_due::numeric >= 0);

			-- an invoice is pending exactly while something is still owed
				alter table invoices
				ADD CONSTRAINT check_pending_matches_due
				CHECK (is_pending = (payment_due::numeric > 0));
		`
		if _, err := db.Exec(sql); err != nil {
			return err
		}
		return nil
	}, nil)
}
