package services

import (
	"context"
	"fmt"

	"saapaadu-api/config"
	"saapaadu-api/logger"
	"saapaadu-api/mailer"
	"saapaadu-api/models"
)

// Mail is the outbound transport for notifications. Package-level so tests
// can substitute a recorder.
var Mail mailer.Mailer = mailer.NewSES()

// NotifyAreaCustomers mails every customer whose area exactly matches the
// hotspot's area. Best effort: a bad recipient is logged and skipped, never
// propagated, so one dead address cannot block the rest or fail the listing.
// Each attempt is also persisted to the recipient's notification inbox.
// Returns the number of customers notified.
func NotifyAreaCustomers(ctx context.Context, hotspot *models.Hotspot) int {
	var customers []models.Customer
	if err := config.DB.Preload("User").Where("area = ?", hotspot.Area).Find(&customers).Error; err != nil {
		logger.L.Error().Err(err).Str("area", hotspot.Area).Msg("failed to load customers for fan-out")
		return 0
	}

	subject := fmt.Sprintf("New meal available near you in %s!", hotspot.Area)
	sent := 0
	for _, customer := range customers {
		if customer.User.Email == "" {
			continue
		}

		text := fmt.Sprintf(
			"Hi %s,\n\nA new meal hotspot is available near you!\n\nShop: %s\nMeal: %s\nPrice: %.2f\nArea: %s\n\nHurry before it's gone!",
			customer.Username, hotspot.ShopName, hotspot.MealName, hotspot.Price, hotspot.Area,
		)

		notification := models.Notification{
			RecipientEmail: customer.User.Email,
			Subject:        subject,
			Message:        text,
		}
		if err := config.DB.Create(&notification).Error; err != nil {
			logger.L.Warn().Err(err).Str("to", customer.User.Email).Msg("failed to persist notification")
		}

		if err := Mail.Send(ctx, customer.User.Email, subject, text); err != nil {
			logger.L.Warn().Err(err).Str("to", customer.User.Email).Uint("hotspot_id", hotspot.ID).
				Msg("notification send failed, skipping recipient")
			continue
		}
		sent++
	}

	logger.L.Info().Uint("hotspot_id", hotspot.ID).Str("area", hotspot.Area).
		Int("notified", sent).Msg("hotspot fan-out finished")
	return sent
}

// GetInbox returns a customer's notifications, newest first.
func GetInbox(email string) ([]models.Notification, error) {
	var notifications []models.Notification
	err := config.DB.Where("recipient_email = ?", email).
		Order("created_at desc").
		Find(&notifications).Error
	return notifications, err
}

// MarkNotificationRead flips is_read on one of the caller's own notifications.
func MarkNotificationRead(email string, id uint) (*models.Notification, error) {
	var notification models.Notification
	if err := config.DB.First(&notification, id).Error; err != nil {
		return nil, fmt.Errorf("%w: notification not found", ErrNotFound)
	}
	if notification.RecipientEmail != email {
		return nil, fmt.Errorf("%w: this notification does not belong to you", ErrForbidden)
	}
	if err := config.DB.Model(&notification).Update("is_read", true).Error; err != nil {
		return nil, err
	}
	notification.IsRead = true
	return &notification, nil
}
