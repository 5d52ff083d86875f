package service

import (
	"errors"

	"github.com/invoicehub/invoicehub.go/lib/security"
	"github.com/invoicehub/invoicehub.go/mailer"
	"github.com/uptrace/bun"
	"github.com/ziflex/lecho/v3"
)

var (
	ErrInvoiceNotFound = errors.New("invoice not found")
	ErrWalletMismatch  = errors.New("wallet address does not match the recipient address")
	ErrInvalidAmount   = errors.New("invalid payment amount")
	ErrOverPayment     = errors.New("payment exceeds the amount due")
	ErrInvalidOtp      = errors.New("invalid otp")
	ErrEmailDelivery   = errors.New("failed to send email")
)

type InvoicehubService struct {
	Config    *Config
	DB        *bun.DB
	Logger    *lecho.Logger
	Notifier  mailer.Notifier
	AdminGate security.AdminAuthenticator
}
