package services

import (
	"errors"
	"fmt"

	"saapaadu-api/config"
	"saapaadu-api/logger"
	"saapaadu-api/models"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

type SignupInput struct {
	Username string
	Email    string
	Password string
	Role     models.UserRole

	// common profile fields (customer/vendor)
	PhoneNumber string
	VegNonVeg   models.DietFlag
	Address     string
	Area        string
	City        string
	State       string

	// vendor-specific
	ShopName    string
	ShopAddress string
	Latitude    *float64
	Longitude   *float64
	ShopImage   string
}

// Signup registers a user and, for customer/vendor roles, its profile row in
// the same transaction. A profile must never be lost while the user row
// survives.
func Signup(in SignupInput) (*models.User, error) {
	var existing models.User
	if err := config.DB.Where("email = ?", in.Email).First(&existing).Error; err == nil {
		return nil, fmt.Errorf("%w: email already registered", ErrConflict)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	user := models.User{
		Username:     in.Username,
		Email:        in.Email,
		PasswordHash: string(hash),
		Role:         in.Role,
	}

	err = config.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&user).Error; err != nil {
			return err
		}
		switch in.Role {
		case models.RoleCustomer:
			customer := models.Customer{
				UserID:      user.ID,
				Username:    in.Username,
				PhoneNumber: in.PhoneNumber,
				VegNonVeg:   in.VegNonVeg,
				Address:     in.Address,
				Area:        in.Area,
				City:        in.City,
				State:       in.State,
			}
			return tx.Create(&customer).Error
		case models.RoleVendor:
			vendor := models.Vendor{
				UserID:      user.ID,
				Username:    in.Username,
				PhoneNumber: in.PhoneNumber,
				VegNonVeg:   in.VegNonVeg,
				ShopName:    in.ShopName,
				ShopAddress: in.ShopAddress,
				Area:        in.Area,
				City:        in.City,
				State:       in.State,
				Latitude:    in.Latitude,
				Longitude:   in.Longitude,
				ShopImage:   in.ShopImage,
				Verified:    false,
			}
			return tx.Create(&vendor).Error
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create user: %w", err)
	}

	logger.L.Info().Uint("user_id", user.ID).Str("role", string(user.Role)).Msg("user registered")
	return &user, nil
}

// ValidateUser authenticates a login attempt. The caller gets a user back
// only when the email exists, the stored role matches the requested one, and
// the password checks out.
func ValidateUser(email, password string, role models.UserRole) (*models.User, error) {
	var user models.User
	if err := config.DB.Where("email = ?", email).First(&user).Error; err != nil {
		return nil, fmt.Errorf("%w: invalid email or password", ErrUnauthorized)
	}
	if user.Role != role {
		return nil, fmt.Errorf("%w: invalid email or password", ErrUnauthorized)
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return nil, fmt.Errorf("%w: invalid email or password", ErrUnauthorized)
	}
	return &user, nil
}

// EnsureCustomer returns the customer profile for a user, creating a minimal
// one (username/email copied from the account) if none exists yet. Idempotent.
func EnsureCustomer(userID uint) (*models.Customer, error) {
	var customer models.Customer
	err := config.DB.Where("user_id = ?", userID).First(&customer).Error
	if err == nil {
		return &customer, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	var user models.User
	if err := config.DB.First(&user, userID).Error; err != nil {
		return nil, fmt.Errorf("%w: user not found", ErrNotFound)
	}

	customer = models.Customer{
		UserID:   user.ID,
		Username: user.Username,
	}
	if err := config.DB.Create(&customer).Error; err != nil {
		return nil, err
	}
	logger.L.Info().Uint("user_id", userID).Uint("customer_id", customer.ID).Msg("customer profile created")
	return &customer, nil
}

// EnsureVendor is the vendor-side counterpart of EnsureCustomer.
func EnsureVendor(userID uint) (*models.Vendor, error) {
	var vendor models.Vendor
	err := config.DB.Where("user_id = ?", userID).First(&vendor).Error
	if err == nil {
		return &vendor, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	var user models.User
	if err := config.DB.First(&user, userID).Error; err != nil {
		return nil, fmt.Errorf("%w: user not found", ErrNotFound)
	}

	vendor = models.Vendor{
		UserID:   user.ID,
		Username: user.Username,
	}
	if err := config.DB.Create(&vendor).Error; err != nil {
		return nil, err
	}
	logger.L.Info().Uint("user_id", userID).Uint("vendor_id", vendor.ID).Msg("vendor profile created")
	return &vendor, nil
}
