package models

import "time"

// Hotspot is a time-boxed surplus-meal listing. Shop fields are copied from
// the owning vendor when the listing is created, not joined live, so the
// listing keeps the shop details it was published with.
type Hotspot struct {
	ID       uint   `json:"id" gorm:"primaryKey"`
	VendorID uint   `json:"vendor_id" gorm:"not null"`
	Vendor   Vendor `json:"vendor,omitempty" gorm:"foreignKey:VendorID"`

	ShopName    string   `json:"shop_name" gorm:"not null"`
	ShopAddress string   `json:"shop_address" gorm:"not null"`
	Area        string   `json:"area" gorm:"not null"`
	City        string   `json:"city" gorm:"not null"`
	State       string   `json:"state" gorm:"not null"`
	Latitude    *float64 `json:"latitude,omitempty"`
	Longitude   *float64 `json:"longitude,omitempty"`
	ShopImage   string   `json:"shop_image"`

	VegNonVeg DietFlag `json:"veg_nonveg" gorm:"not null"`
	MealName  string   `json:"meal_name" gorm:"not null"`
	MealCount int      `json:"meal_count" gorm:"not null"`
	Price     float64  `json:"price" gorm:"not null"`
	// Duration is the listing window in minutes (60 = 1 hour).
	Duration int `json:"duration" gorm:"not null"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
