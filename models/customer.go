package models

import "time"

// Customer is the buyer profile, exactly one per user account.
type Customer struct {
	ID          uint      `json:"id" gorm:"primaryKey"`
	UserID      uint      `json:"user_id" gorm:"uniqueIndex;not null"`
	User        User      `json:"user,omitempty" gorm:"foreignKey:UserID"`
	Username    string    `json:"username" gorm:"not null"`
	PhoneNumber string    `json:"phone_number"`
	VegNonVeg   DietFlag  `json:"veg_nonveg"`
	Address     string    `json:"address"`
	Area        string    `json:"area"`
	City        string    `json:"city"`
	State       string    `json:"state"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}
