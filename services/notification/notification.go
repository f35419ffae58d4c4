package notification

import (
	"context"
	"fmt"

	"avira/models"
	"avira/utils"

	"firebase.google.com/go/v4/messaging"
	"go.uber.org/zap"
)

// DefaultNotificationService is the production implementation. Email
// delivery is not wired to a provider yet; the rendered payload is logged.
// Push goes out through FCM when a client is configured and the user has a
// device token.
type DefaultNotificationService struct{}

func NewDefaultNotificationService() *DefaultNotificationService {
	return &DefaultNotificationService{}
}

func (s *DefaultNotificationService) SendBookingConfirmation(ctx context.Context, conf models.BookingConfirmation) error {
	logger := utils.GetLogger()

	if conf.BookingID == "" || conf.UserEmail == "" || conf.ConsultantName == "" {
		return fmt.Errorf("booking confirmation missing required fields")
	}

	formattedDate := conf.ScheduledAt.Format("Monday, January 2, 2006")
	formattedTime := conf.ScheduledAt.Format("3:04 PM")

	calendarTitle := fmt.Sprintf("Therapy Session with %s", conf.ConsultantName)
	calendarDescription := fmt.Sprintf(
		"Your scheduled therapy session with %s. Duration: %d minutes. Meeting link will be provided separately.",
		conf.ConsultantName, conf.DurationMinutes,
	)
	calendarLink := GenerateCalendarLink(calendarTitle, conf.ScheduledAt, conf.DurationMinutes, calendarDescription)

	emailHTML := buildConfirmationEmail(conf, formattedDate, formattedTime, calendarLink)

	// TODO: wire an email provider; until then the payload is only logged.
	logger.Info("booking confirmation email prepared",
		zap.String("to", conf.UserEmail),
		zap.String("subject", fmt.Sprintf("Booking Confirmation - Session with %s", conf.ConsultantName)),
		zap.String("bookingID", conf.BookingID),
		zap.Int("htmlLength", len(emailHTML)),
	)

	if utils.FCMClient != nil && conf.UserFCMToken != "" {
		msg := &messaging.Message{
			Token: conf.UserFCMToken,
			Notification: &messaging.Notification{
				Title: "Booking Confirmed 🌟",
				Body: fmt.Sprintf("Your session with %s is scheduled for %s at %s.",
					conf.ConsultantName, formattedDate, formattedTime),
			},
			Data: map[string]string{
				"type":       "booking_confirmation",
				"booking_id": conf.BookingID,
			},
		}
		if _, err := utils.FCMClient.Send(ctx, msg); err != nil {
			return fmt.Errorf("failed to send FCM message: %w", err)
		}
	}

	return nil
}
