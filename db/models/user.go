package models

import (
	"context"
	"database/sql"
	"time"

	"github.com/uptrace/bun"
)

// User : User Model
type User struct {
	ID            int64          `json:"id" bun:",pk,autoincrement"`
	Email         string         `json:"email" bun:",unique,notnull" validate:"required,email"`
	Otp           sql.NullString `json:"-" bun:"otp"`
	EmailVerified bool           `json:"emailVerified" bun:",notnull,default:false"`
	CreatedAt     time.Time      `json:"createdAt" bun:",nullzero,notnull,default:current_timestamp"`
	UpdatedAt     bun.NullTime   `json:"updatedAt"`
}

func (u *User) BeforeAppendModel(ctx context.Context, query bun.Query) error {
	switch query.(type) {
	case *bun.UpdateQuery:
		u.UpdatedAt = bun.NullTime{Time: time.Now()}
	}
	return nil
}

var _ bun.BeforeAppendModelHook = (*User)(nil)
