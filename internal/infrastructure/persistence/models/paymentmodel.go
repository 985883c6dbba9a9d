package models

import "time"

type PaymentModel struct {
	ID            uint    `gorm:"primaryKey"`
	OrderID       string  `gorm:"uniqueIndex;size:128;not null"`
	UserID        string  `gorm:"index;size:64;not null"`
	Amount        int64   `gorm:"not null"`
	Currency      string  `gorm:"size:10;not null;default:'IDR'"`
	Tier          string  `gorm:"size:20;not null"`
	Status        string  `gorm:"size:20;not null;index"`
	TransactionID *string `gorm:"size:128"`
	FraudStatus   *string `gorm:"size:30"`
	PaidAt        *time.Time
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

func (PaymentModel) TableName() string {
	return "payment_history"
}
