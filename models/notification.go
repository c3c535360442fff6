package models

import "time"

// Notification is one row per notification mail attempted, kept so customers
// can see their inbox even when the mail itself bounced.
type Notification struct {
	ID             uint      `json:"id" gorm:"primaryKey"`
	RecipientEmail string    `json:"recipient_email" gorm:"index;not null"`
	Subject        string    `json:"subject" gorm:"not null"`
	Message        string    `json:"message" gorm:"not null"`
	IsRead         bool      `json:"is_read" gorm:"default:false"`
	CreatedAt      time.Time `json:"created_at"`
}
