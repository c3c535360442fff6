package services

import (
	"errors"
	"fmt"

	"saapaadu-api/config"
	"saapaadu-api/logger"
	"saapaadu-api/models"
	"saapaadu-api/statemachine"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// PlaceOrder books quantity meals from a hotspot for the acting user's
// customer profile (created on the spot when missing). The order insert and
// the meal-count decrement commit together; the decrement is conditional on
// enough meals remaining, so concurrent orders can never oversell a listing
// or push meal_count below zero.
func PlaceOrder(actingUserID uint, hotspotID uint, quantity int) (*models.Order, error) {
	if quantity <= 0 {
		return nil, fmt.Errorf("%w: quantity must be at least 1", ErrBadRequest)
	}

	customer, err := EnsureCustomer(actingUserID)
	if err != nil {
		return nil, err
	}

	var order models.Order
	err = config.DB.Transaction(func(tx *gorm.DB) error {
		var hotspot models.Hotspot
		if err := tx.First(&hotspot, hotspotID).Error; err != nil {
			return fmt.Errorf("%w: hotspot not found", ErrNotFound)
		}
		if quantity > hotspot.MealCount {
			return fmt.Errorf("%w: only %d meals left", ErrBadRequest, hotspot.MealCount)
		}

		res := tx.Model(&models.Hotspot{}).
			Where("id = ? AND meal_count >= ?", hotspot.ID, quantity).
			UpdateColumn("meal_count", gorm.Expr("meal_count - ?", quantity))
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			// Lost the race against a concurrent order.
			return fmt.Errorf("%w: not enough meals left", ErrBadRequest)
		}

		hid := hotspot.ID
		order = models.Order{
			Reference:  uuid.NewString(),
			CustomerID: customer.ID,
			VendorID:   hotspot.VendorID,
			HotspotID:  &hid,
			Quantity:   quantity,
			TotalPrice: hotspot.Price * float64(quantity),
			Status:     models.StatusPending,
		}
		return tx.Create(&order).Error
	})
	if err != nil {
		return nil, err
	}

	logger.L.Info().Uint("order_id", order.ID).Str("reference", order.Reference).
		Int("quantity", quantity).Float64("total", order.TotalPrice).Msg("order placed")

	config.DB.Preload("Hotspot").Preload("Vendor").Preload("Customer").First(&order, order.ID)
	return &order, nil
}

// FindOrdersByCustomer returns the caller's orders, newest first. A user
// without a customer profile simply has no orders.
func FindOrdersByCustomer(actingUserID uint) ([]models.Order, error) {
	var customer models.Customer
	if err := config.DB.Where("user_id = ?", actingUserID).First(&customer).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return []models.Order{}, nil
		}
		return nil, err
	}
	var orders []models.Order
	err := config.DB.Preload("Hotspot").Preload("Vendor").
		Where("customer_id = ?", customer.ID).
		Order("created_at desc").
		Find(&orders).Error
	return orders, err
}

// FindOrdersByVendor returns the orders placed against the caller's
// hotspots, newest first.
func FindOrdersByVendor(actingUserID uint) ([]models.Order, error) {
	var vendor models.Vendor
	if err := config.DB.Where("user_id = ?", actingUserID).First(&vendor).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return []models.Order{}, nil
		}
		return nil, err
	}
	var orders []models.Order
	err := config.DB.Preload("Hotspot").Preload("Customer").
		Where("vendor_id = ?", vendor.ID).
		Order("created_at desc").
		Find(&orders).Error
	return orders, err
}

// UpdateOrderStatus transitions an order. Only the owning customer or the
// fulfilling vendor may act, and only along the transition table; admins use
// ForceOrderStatus instead.
func UpdateOrderStatus(actingUserID uint, role models.UserRole, orderID uint, status models.OrderStatus) (*models.Order, error) {
	if !models.ValidStatus(status) {
		return nil, fmt.Errorf("%w: invalid status %q", ErrBadRequest, status)
	}

	order, err := loadOrder(orderID)
	if err != nil {
		return nil, err
	}

	switch role {
	case models.RoleCustomer:
		if order.Customer.UserID != actingUserID {
			return nil, fmt.Errorf("%w: this order does not belong to you", ErrForbidden)
		}
	case models.RoleVendor:
		if order.Vendor.UserID != actingUserID {
			return nil, fmt.Errorf("%w: this order is not for your shop", ErrForbidden)
		}
	case models.RoleAdmin:
		return ForceOrderStatus(orderID, status)
	default:
		return nil, fmt.Errorf("%w: role %q cannot update orders", ErrForbidden, role)
	}

	if err := statemachine.CanTransition(order.Status, status, string(role)); err != nil {
		return nil, fmt.Errorf("%w: %s", ErrBadRequest, err.Error())
	}

	return applyStatus(order, status, string(role))
}

// ForceOrderStatus sets any enum status regardless of the transition table.
// Admin escape hatch.
func ForceOrderStatus(orderID uint, status models.OrderStatus) (*models.Order, error) {
	if !models.ValidStatus(status) {
		return nil, fmt.Errorf("%w: invalid status %q", ErrBadRequest, status)
	}
	order, err := loadOrder(orderID)
	if err != nil {
		return nil, err
	}
	return applyStatus(order, status, "admin")
}

func loadOrder(orderID uint) (*models.Order, error) {
	var order models.Order
	if err := config.DB.Preload("Hotspot").Preload("Vendor").Preload("Customer").
		First(&order, orderID).Error; err != nil {
		return nil, fmt.Errorf("%w: order not found", ErrNotFound)
	}
	return &order, nil
}

func applyStatus(order *models.Order, status models.OrderStatus, actor string) (*models.Order, error) {
	prev := order.Status
	if err := config.DB.Model(order).Update("status", status).Error; err != nil {
		return nil, err
	}
	order.Status = status
	logger.L.Info().Uint("order_id", order.ID).Str("from", string(prev)).
		Str("to", string(status)).Str("actor", actor).Msg("order status changed")
	return order, nil
}
