package models

import "time"

// Vendor is the seller profile, exactly one per user account. Shop fields
// start empty at signup and must be completed before publishing hotspots.
type Vendor struct {
	ID          uint      `json:"id" gorm:"primaryKey"`
	UserID      uint      `json:"user_id" gorm:"uniqueIndex;not null"`
	User        User      `json:"user,omitempty" gorm:"foreignKey:UserID"`
	Username    string    `json:"username" gorm:"not null"`
	PhoneNumber string    `json:"phone_number"`
	VegNonVeg   DietFlag  `json:"veg_nonveg"`
	ShopName    string    `json:"shop_name"`
	ShopAddress string    `json:"shop_address"`
	Area        string    `json:"area"`
	City        string    `json:"city"`
	State       string    `json:"state"`
	Latitude    *float64  `json:"latitude,omitempty"`
	Longitude   *float64  `json:"longitude,omitempty"`
	ShopImage   string    `json:"shop_image"`
	Verified    bool      `json:"verified" gorm:"default:false"`
	Hotspots    []Hotspot `json:"hotspots,omitempty" gorm:"foreignKey:VendorID"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}
