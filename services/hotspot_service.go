package services

import (
	"context"
	"fmt"
	"strings"

	"saapaadu-api/config"
	"saapaadu-api/logger"
	"saapaadu-api/models"
)

type CreateHotspotInput struct {
	MealName  string
	MealCount int
	Price     float64
	// Duration is the listing window in minutes. The transport layer owns
	// any unit conversion; this layer never guesses.
	Duration  int
	VegNonVeg models.DietFlag
}

// hotspotFields are the listing attributes a vendor may change after
// publishing. Snapshot shop fields and vendor linkage are frozen.
var hotspotFields = map[string]bool{
	"meal_name": true, "meal_count": true, "price": true,
	"duration": true, "veg_nonveg": true,
}

// CreateHotspot publishes a listing for the vendor owned by actingUserID.
// The vendor's shop fields are copied onto the hotspot so the listing keeps
// the details it was published with. On success, customers in the vendor's
// area are notified; notification failures never fail the creation.
func CreateHotspot(ctx context.Context, actingUserID uint, in CreateHotspotInput) (*models.Hotspot, error) {
	var vendor models.Vendor
	if err := config.DB.Where("user_id = ?", actingUserID).First(&vendor).Error; err != nil {
		return nil, fmt.Errorf("%w: vendor profile not found", ErrNotFound)
	}

	var missing []string
	if vendor.ShopName == "" {
		missing = append(missing, "shop_name")
	}
	if vendor.ShopAddress == "" {
		missing = append(missing, "shop_address")
	}
	if vendor.Area == "" {
		missing = append(missing, "area")
	}
	if vendor.City == "" {
		missing = append(missing, "city")
	}
	if vendor.State == "" {
		missing = append(missing, "state")
	}
	if len(missing) > 0 {
		return nil, fmt.Errorf("%w: complete vendor profile before creating hotspots: missing %s",
			ErrBadRequest, strings.Join(missing, ", "))
	}

	// Respect the value coming from the request; fall back to the vendor's
	// stored preference
	vegNonVeg := in.VegNonVeg
	if vegNonVeg == "" {
		vegNonVeg = vendor.VegNonVeg
	}
	if vegNonVeg != models.DietVeg && vegNonVeg != models.DietNonVeg {
		return nil, fmt.Errorf("%w: veg_nonveg must be provided", ErrBadRequest)
	}

	if in.MealCount < 0 {
		return nil, fmt.Errorf("%w: meal_count cannot be negative", ErrBadRequest)
	}

	hotspot := models.Hotspot{
		VendorID:    vendor.ID,
		ShopName:    vendor.ShopName,
		ShopAddress: vendor.ShopAddress,
		Area:        vendor.Area,
		City:        vendor.City,
		State:       vendor.State,
		Latitude:    vendor.Latitude,
		Longitude:   vendor.Longitude,
		ShopImage:   vendor.ShopImage,
		VegNonVeg:   vegNonVeg,
		MealName:    in.MealName,
		MealCount:   in.MealCount,
		Price:       in.Price,
		Duration:    in.Duration,
	}
	if err := config.DB.Create(&hotspot).Error; err != nil {
		return nil, fmt.Errorf("failed to create hotspot: %w", err)
	}

	logger.L.Info().Uint("hotspot_id", hotspot.ID).Uint("vendor_id", vendor.ID).
		Str("meal", hotspot.MealName).Msg("hotspot created")

	NotifyAreaCustomers(ctx, &hotspot)

	return &hotspot, nil
}

// FindAllHotspots lists every hotspot with its vendor, exhausted ones
// included.
func FindAllHotspots() ([]models.Hotspot, error) {
	var hotspots []models.Hotspot
	err := config.DB.Preload("Vendor").Find(&hotspots).Error
	return hotspots, err
}

// FindHotspotsByVendor lists only the listings owned by the caller's vendor
// profile.
func FindHotspotsByVendor(actingUserID uint) ([]models.Hotspot, error) {
	var vendor models.Vendor
	if err := config.DB.Where("user_id = ?", actingUserID).First(&vendor).Error; err != nil {
		return nil, fmt.Errorf("%w: vendor profile not found", ErrNotFound)
	}
	var hotspots []models.Hotspot
	err := config.DB.Where("vendor_id = ?", vendor.ID).Find(&hotspots).Error
	return hotspots, err
}

func FindHotspot(id uint) (*models.Hotspot, error) {
	var hotspot models.Hotspot
	if err := config.DB.Preload("Vendor").First(&hotspot, id).Error; err != nil {
		return nil, fmt.Errorf("%w: hotspot not found", ErrNotFound)
	}
	return &hotspot, nil
}

// UpdateHotspot applies an allow-listed partial update to the caller's own
// hotspot.
func UpdateHotspot(actingUserID uint, id uint, req map[string]interface{}) (*models.Hotspot, error) {
	hotspot, err := ownedHotspot(actingUserID, id, "update")
	if err != nil {
		return nil, err
	}

	update, err := filterFields(req, hotspotFields)
	if err != nil {
		return nil, err
	}
	if v, ok := update["meal_count"]; ok {
		if n, ok := v.(float64); ok && n < 0 {
			return nil, fmt.Errorf("%w: meal_count cannot be negative", ErrBadRequest)
		}
	}

	if err := config.DB.Model(hotspot).Updates(update).Error; err != nil {
		return nil, err
	}
	return FindHotspot(id)
}

// RemoveHotspot deletes the caller's own hotspot.
func RemoveHotspot(actingUserID uint, id uint) error {
	hotspot, err := ownedHotspot(actingUserID, id, "delete")
	if err != nil {
		return err
	}
	if err := config.DB.Delete(hotspot).Error; err != nil {
		return err
	}
	logger.L.Info().Uint("hotspot_id", id).Msg("hotspot deleted")
	return nil
}

func ownedHotspot(actingUserID, id uint, verb string) (*models.Hotspot, error) {
	var hotspot models.Hotspot
	if err := config.DB.Preload("Vendor").First(&hotspot, id).Error; err != nil {
		return nil, fmt.Errorf("%w: hotspot not found", ErrNotFound)
	}
	if hotspot.Vendor.UserID != actingUserID {
		return nil, fmt.Errorf("%w: you cannot %s another vendor's hotspot", ErrForbidden, verb)
	}
	return &hotspot, nil
}
