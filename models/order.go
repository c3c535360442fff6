package models

import "time"

// OrderStatus represents all possible states of a meal order
type OrderStatus string

const (
	StatusPending   OrderStatus = "pending"
	StatusConfirmed OrderStatus = "confirmed"
	StatusCompleted OrderStatus = "completed"
	StatusCancelled OrderStatus = "cancelled"
)

// ValidStatus reports whether s is a member of the status enum.
func ValidStatus(s OrderStatus) bool {
	switch s {
	case StatusPending, StatusConfirmed, StatusCompleted, StatusCancelled:
		return true
	}
	return false
}

type Order struct {
	ID         uint     `json:"id" gorm:"primaryKey"`
	Reference  string   `json:"reference" gorm:"uniqueIndex;not null"`
	CustomerID uint     `json:"customer_id" gorm:"not null"`
	Customer   Customer `json:"customer,omitempty" gorm:"foreignKey:CustomerID"`
	VendorID   uint     `json:"vendor_id" gorm:"not null"`
	Vendor     Vendor   `json:"vendor,omitempty" gorm:"foreignKey:VendorID"`
	// HotspotID is nullable so the order survives deletion of the listing.
	HotspotID *uint    `json:"hotspot_id"`
	Hotspot   *Hotspot `json:"hotspot,omitempty" gorm:"foreignKey:HotspotID"`

	Quantity int `json:"quantity" gorm:"not null"`
	// TotalPrice is fixed at placement time: unit price x quantity. Later
	// price changes on the hotspot never touch it.
	TotalPrice float64     `json:"total_price" gorm:"not null"`
	Status     OrderStatus `json:"status" gorm:"not null;default:'pending'"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
