package model

import "time"

type ContactMessage struct {
	Id          uint      `gorm:"primaryKey;autoIncrement"`
	Name        string    `gorm:"type:varchar(150);not null"`
	Email       string    `gorm:"type:varchar(150);not null"`
	Subject     string    `gorm:"type:varchar(255);not null"`
	Message     string    `gorm:"type:text;not null"`
	DateCreated time.Time `gorm:"autoCreateTime"`
}

func (ContactMessage) TableName() string {
	return "contact_us"
}
