package service

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/invoicehub/invoicehub.go/db/models"
)

const otpLength = 6

// GenerateOtp assigns a fresh 6-digit code to the user record for email,
// creating the record on first request, then mails the code. A failed send
// returns ErrEmailDelivery with the code already persisted.
func (svc *InvoicehubService) GenerateOtp(ctx context.Context, email string) error {
	code, err := randBytesFromStr(otpLength, numericBytes)
	if err != nil {
		return err
	}
	otp := string(code)

	user := &models.User{
		Email: email,
		Otp:   sql.NullString{String: otp, Valid: true},
	}
	_, err = svc.DB.NewInsert().
		Model(user).
		On("CONFLICT (email) DO UPDATE").
		Set("otp = EXCLUDED.otp, updated_at = now()").
		Exec(ctx)
	if err != nil {
		return err
	}

	body := fmt.Sprintf("Your OTP for login is: %s", otp)
	if err := svc.Notifier.Send(ctx, email, "Your OTP for Login", body); err != nil {
		svc.Logger.Errorf("Error sending OTP email: email:%s error: %v", email, err)
		return ErrEmailDelivery
	}
	return nil
}

// VerifyOtp checks the submitted code against the stored one. On match the
// code is cleared so it can not be replayed, and the email is marked verified.
func (svc *InvoicehubService) VerifyOtp(ctx context.Context, email, otp string) error {
	var user models.User

	err := svc.DB.NewSelect().Model(&user).Where("email = ?", email).Limit(1).Scan(ctx)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return ErrInvalidOtp
		}
		return err
	}
	if !user.Otp.Valid || user.Otp.String != otp {
		return ErrInvalidOtp
	}

	user.Otp = sql.NullString{}
	user.EmailVerified = true
	_, err = svc.DB.NewUpdate().
		Model(&user).
		Column("otp", "email_verified", "updated_at").
		WherePK().
		Exec(ctx)
	return err
}
