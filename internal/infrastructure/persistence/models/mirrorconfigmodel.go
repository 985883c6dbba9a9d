package models

import "time"

type MirrorConfigModel struct {
	ID                uint    `gorm:"primaryKey"`
	UserID            string  `gorm:"index;size:64;not null"`
	SourcePlatform    string  `gorm:"size:20;not null"`
	SourceChatID      string  `gorm:"size:128;not null"`
	DestinationChatID *string `gorm:"size:128"`
	Active            bool    `gorm:"not null;default:false"`
	Status            string  `gorm:"size:30;not null"`
	CreatedAt         time.Time `gorm:"index"`
	UpdatedAt         time.Time
}

func (MirrorConfigModel) TableName() string {
	return "mirror_configs"
}
