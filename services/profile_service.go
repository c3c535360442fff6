package services

import (
	"fmt"

	"saapaadu-api/config"
	"saapaadu-api/models"
)

// Mutable profile fields. Linkage (user_id) and moderation (verified) columns
// are deliberately absent so request payloads can never reach them.
var customerFields = map[string]bool{
	"username": true, "phone_number": true, "veg_nonveg": true,
	"address": true, "area": true, "city": true, "state": true,
}

var vendorFields = map[string]bool{
	"username": true, "phone_number": true, "veg_nonveg": true,
	"shop_name": true, "shop_address": true, "area": true, "city": true,
	"state": true, "latitude": true, "longitude": true, "shop_image": true,
}

func GetCustomer(userID uint) (*models.Customer, error) {
	var customer models.Customer
	if err := config.DB.Preload("User").Where("user_id = ?", userID).First(&customer).Error; err != nil {
		return nil, fmt.Errorf("%w: customer profile not found", ErrNotFound)
	}
	return &customer, nil
}

func GetVendor(userID uint) (*models.Vendor, error) {
	var vendor models.Vendor
	if err := config.DB.Preload("User").Where("user_id = ?", userID).First(&vendor).Error; err != nil {
		return nil, fmt.Errorf("%w: vendor profile not found", ErrNotFound)
	}
	return &vendor, nil
}

// UpdateCustomer applies the allow-listed subset of req to the caller's own
// profile and returns the fresh row.
func UpdateCustomer(userID uint, req map[string]interface{}) (*models.Customer, error) {
	customer, err := GetCustomer(userID)
	if err != nil {
		return nil, err
	}
	update, err := filterFields(req, customerFields)
	if err != nil {
		return nil, err
	}
	if err := config.DB.Model(customer).Updates(update).Error; err != nil {
		return nil, err
	}
	return GetCustomer(userID)
}

// UpdateVendor is the vendor-side counterpart of UpdateCustomer.
func UpdateVendor(userID uint, req map[string]interface{}) (*models.Vendor, error) {
	vendor, err := GetVendor(userID)
	if err != nil {
		return nil, err
	}
	update, err := filterFields(req, vendorFields)
	if err != nil {
		return nil, err
	}
	if err := config.DB.Model(vendor).Updates(update).Error; err != nil {
		return nil, err
	}
	return GetVendor(userID)
}

func filterFields(req map[string]interface{}, allowed map[string]bool) (map[string]interface{}, error) {
	if len(req) == 0 {
		return nil, fmt.Errorf("%w: update payload is empty", ErrBadRequest)
	}
	update := map[string]interface{}{}
	for k, v := range req {
		if allowed[k] {
			update[k] = v
		}
	}
	if len(update) == 0 {
		return nil, fmt.Errorf("%w: no updatable fields in payload", ErrBadRequest)
	}
	if v, ok := update["veg_nonveg"]; ok {
		s, _ := v.(string)
		if flag := models.DietFlag(s); flag != models.DietVeg && flag != models.DietNonVeg {
			return nil, fmt.Errorf("%w: veg_nonveg must be 'veg' or 'nonveg'", ErrBadRequest)
		}
	}
	return update, nil
}
