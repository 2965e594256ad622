package models

import (
	"time"

	"gorm.io/gorm"
)

// AdminUser represents the admin_users table. Admin accounts are created
// at sign-up and never updated or deleted afterwards.
type AdminUser struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Username  string    `gorm:"uniqueIndex;size:50;not null" json:"username"`
	Password  string    `gorm:"size:255;not null" json:"-"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}

func (AdminUser) TableName() string {
	return "admin_users"
}

// LoanRequest represents the loan_requests table. A row is written for
// every successful scoring call.
type LoanRequest struct {
	ID         uint      `gorm:"primaryKey" json:"id"`
	DNI        int64     `gorm:"column:dni;not null" json:"dni"`
	FullName   string    `gorm:"size:100;not null" json:"full_name"`
	Genre      string    `gorm:"size:20;not null" json:"genre"`
	Email      string    `gorm:"size:100;not null" json:"email"`
	LoanAmount float64   `gorm:"not null" json:"loan_amount"`
	Status     string    `gorm:"size:20;not null" json:"status"`
	CreatedAt  time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt  time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}

func (LoanRequest) TableName() string {
	return "loan_requests"
}

// LoanRequestPatch carries a partial update; only non-nil fields are
// applied to the stored record.
type LoanRequestPatch struct {
	DNI        *int64   `json:"dni"`
	FullName   *string  `json:"full_name"`
	Genre      *string  `json:"genre"`
	Email      *string  `json:"email"`
	LoanAmount *float64 `json:"loan_amount"`
	Status     *string  `json:"status"`
}

// Fields returns the column/value map of the non-nil patch fields
func (p *LoanRequestPatch) Fields() map[string]interface{} {
	fields := make(map[string]interface{})
	if p.DNI != nil {
		fields["dni"] = *p.DNI
	}
	if p.FullName != nil {
		fields["full_name"] = *p.FullName
	}
	if p.Genre != nil {
		fields["genre"] = *p.Genre
	}
	if p.Email != nil {
		fields["email"] = *p.Email
	}
	if p.LoanAmount != nil {
		fields["loan_amount"] = *p.LoanAmount
	}
	if p.Status != nil {
		fields["status"] = *p.Status
	}
	return fields
}

// AutoMigrate creates the tables if they do not exist
func AutoMigrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&AdminUser{},
		&LoanRequest{},
	)
}
