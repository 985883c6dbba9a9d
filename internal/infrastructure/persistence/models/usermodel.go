package models

import "time"

type UserModel struct {
	ID            string `gorm:"primaryKey;size:64"`
	Tier          string `gorm:"size:20;not null;default:'free'"`
	TierExpiresAt *time.Time
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

func (UserModel) TableName() string {
	return "users"
}
