package entity

import "time"

type ContactMessage struct {
	Id          uint
	Name        string
	Email       string
	Subject     string
	Message     string
	DateCreated time.Time
}
