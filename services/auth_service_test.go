package services

import (
	"errors"
	"testing"

	"saapaadu-api/config"
	"saapaadu-api/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSignupDuplicateEmail(t *testing.T) {
	setupDB(t)

	first, err := Signup(SignupInput{
		Username: "mani", Email: "mani@example.com", Password: "secret123",
		Role: models.RoleCustomer,
	})
	require.NoError(t, err)
	assert.NotZero(t, first.ID)

	_, err = Signup(SignupInput{
		Username: "mani2", Email: "mani@example.com", Password: "other456",
		Role: models.RoleVendor,
	})
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrConflict))

	// first signup stays authenticatable
	user, err := ValidateUser("mani@example.com", "secret123", models.RoleCustomer)
	require.NoError(t, err)
	assert.Equal(t, first.ID, user.ID)
}

func TestSignupCreatesRoleProfile(t *testing.T) {
	setupDB(t)

	customerUser := signupCustomer(t, "c@example.com", "Adyar")
	var customer models.Customer
	require.NoError(t, config.DB.Where("user_id = ?", customerUser.ID).First(&customer).Error)
	assert.Equal(t, "Adyar", customer.Area)
	assert.Equal(t, models.DietVeg, customer.VegNonVeg)

	vendorUser := signupVendor(t, "v@example.com", "Adyar")
	var vendor models.Vendor
	require.NoError(t, config.DB.Where("user_id = ?", vendorUser.ID).First(&vendor).Error)
	assert.Equal(t, "X", vendor.ShopName)
	assert.False(t, vendor.Verified)

	// password hash never equals the raw password
	var stored models.User
	require.NoError(t, config.DB.First(&stored, customerUser.ID).Error)
	assert.NotEqual(t, "secret123", stored.PasswordHash)
	assert.NotEmpty(t, stored.PasswordHash)
}

func TestValidateUser(t *testing.T) {
	setupDB(t)
	signupCustomer(t, "c@example.com", "Adyar")

	cases := []struct {
		name     string
		email    string
		password string
		role     models.UserRole
		ok       bool
	}{
		{"valid", "c@example.com", "secret123", models.RoleCustomer, true},
		{"unknown email", "nobody@example.com", "secret123", models.RoleCustomer, false},
		{"wrong password", "c@example.com", "wrongpass", models.RoleCustomer, false},
		{"role mismatch", "c@example.com", "secret123", models.RoleVendor, false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			user, err := ValidateUser(tc.email, tc.password, tc.role)
			if tc.ok {
				require.NoError(t, err)
				assert.Equal(t, tc.email, user.Email)
			} else {
				require.Error(t, err)
				assert.True(t, errors.Is(err, ErrUnauthorized))
				assert.Nil(t, user)
			}
		})
	}
}

func TestEnsureCustomerIdempotent(t *testing.T) {
	setupDB(t)

	// a vendor-role user has no customer profile until ensured
	vendorUser := signupVendor(t, "v@example.com", "Adyar")

	first, err := EnsureCustomer(vendorUser.ID)
	require.NoError(t, err)
	assert.Equal(t, vendorUser.Username, first.Username)

	second, err := EnsureCustomer(vendorUser.ID)
	require.NoError(t, err)
	assert.Equal(t, first.ID, second.ID)

	var count int64
	config.DB.Model(&models.Customer{}).Where("user_id = ?", vendorUser.ID).Count(&count)
	assert.Equal(t, int64(1), count)
}

func TestEnsureCustomerUnknownUser(t *testing.T) {
	setupDB(t)
	_, err := EnsureCustomer(9999)
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrNotFound))
}
