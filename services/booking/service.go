package booking

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	bookingRepo "avira/database/repository/booking"
	consultantRepo "avira/database/repository/consultant"
	userRepo "avira/database/repository/user"
	"avira/models"
	"avira/services/notification"
	"avira/utils"

	"github.com/go-redis/redis/v8"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

const (
	slotsCachePrefix = "slots:"
	slotsCacheTTL    = 2 * time.Minute
)

// DefaultBookingService is the production booking service.
type DefaultBookingService struct {
	Repo           bookingRepo.BookingRepository
	ConsultantRepo consultantRepo.ConsultantRepository
	UserRepo       userRepo.UserRepository
	Notification   notification.NotificationService
	Cache          *redis.Client

	// Now is swappable in tests; defaults to time.Now.
	Now func() time.Time
}

func (s *DefaultBookingService) now() time.Time {
	if s.Now != nil {
		return s.Now()
	}
	return time.Now()
}

func (s *DefaultBookingService) GetSlots(ctx context.Context, consultantID, date string) (*models.DaySlots, error) {
	logger := utils.GetLogger()

	day, err := time.ParseInLocation("2006-01-02", date, time.Local)
	if err != nil {
		return nil, NewBookingError(CodeValidationError, fmt.Sprintf("invalid date %q, expected YYYY-MM-DD", date))
	}

	cacheKey := slotsCachePrefix + consultantID + ":" + date
	if s.Cache != nil {
		if cached, err := s.Cache.Get(ctx, cacheKey).Result(); err == nil {
			var view models.DaySlots
			if err := json.Unmarshal([]byte(cached), &view); err == nil {
				return &view, nil
			}
		}
	}

	rules, err := s.ConsultantRepo.GetAvailabilityRules(consultantID)
	if err != nil {
		return nil, NewBookingError(CodePersistenceError, fmt.Sprintf("failed to load availability: %v", err))
	}

	dayStart := time.Date(day.Year(), day.Month(), day.Day(), 0, 0, 0, 0, day.Location())
	active, err := s.Repo.ListActiveForDay(ctx, consultantID, dayStart)
	if err != nil {
		return nil, NewBookingError(CodePersistenceError, fmt.Sprintf("failed to load bookings: %v", err))
	}

	slots, err := SlotsForDate(rules, day, active, s.now())
	if err != nil {
		return nil, NewBookingError(CodeValidationError, err.Error())
	}

	view := &models.DaySlots{
		ConsultantID: consultantID,
		Date:         date,
		Slots:        slots,
	}

	if s.Cache != nil {
		if data, err := json.Marshal(view); err == nil {
			if err := s.Cache.Set(ctx, cacheKey, data, slotsCacheTTL).Err(); err != nil {
				logger.Warn("failed to cache slot view", zap.String("key", cacheKey), zap.Error(err))
			}
		}
	}

	return view, nil
}

func (s *DefaultBookingService) GetSelectableDates(ctx context.Context, consultantID string) ([]string, error) {
	rules, err := s.ConsultantRepo.GetAvailabilityRules(consultantID)
	if err != nil {
		return nil, NewBookingError(CodePersistenceError, fmt.Sprintf("failed to load availability: %v", err))
	}
	return SelectableDates(rules, s.now()), nil
}

func (s *DefaultBookingService) CreateBooking(ctx context.Context, userID string, req models.CreateBookingRequest) (*models.Booking, error) {
	logger := utils.GetLogger()

	if req.ConsultantID == "" || req.ScheduledAt == "" || req.PaymentAmount <= 0 {
		return nil, NewBookingError(CodeValidationError,
			"Missing required fields: consultant_id, scheduled_at, or payment_amount")
	}

	scheduledAt, err := time.Parse(time.RFC3339, req.ScheduledAt)
	if err != nil {
		return nil, NewBookingError(CodeValidationError, fmt.Sprintf("invalid scheduled_at: %v", err))
	}

	duration := req.DurationMinutes
	if duration <= 0 {
		duration = SlotMinutes
	}

	consultant, err := s.ConsultantRepo.GetByID(req.ConsultantID)
	if err != nil {
		return nil, NewBookingError(CodePersistenceError, fmt.Sprintf("failed to verify consultant: %v", err))
	}
	if consultant == nil || !consultant.IsAvailable {
		return nil, NewBookingError(CodeProviderUnavailable, "Consultant not found or not available")
	}

	// Pre-insert conflict check; the partial unique index backs it up
	// against concurrent callers.
	existing, err := s.Repo.FindActiveAt(ctx, req.ConsultantID, scheduledAt)
	if err != nil {
		return nil, NewBookingError(CodePersistenceError, fmt.Sprintf("error checking booking availability: %v", err))
	}
	if existing != nil {
		return nil, NewBookingError(CodeSlotAlreadyBooked, "This time slot is already booked")
	}

	booking := &models.Booking{
		ID:              uuid.New().String(),
		UserID:          userID,
		ConsultantID:    req.ConsultantID,
		ScheduledAt:     scheduledAt,
		DurationMinutes: duration,
		Status:          models.BookingStatusPending,
		Active:          true,
		PaymentAmount:   req.PaymentAmount,
		PaymentStatus:   models.PaymentStatusUnpaid,
		Notes:           req.Notes,
		CreatedAt:       s.now(),
	}

	if err := s.Repo.Create(ctx, booking); err != nil {
		if errors.Is(err, bookingRepo.ErrSlotTaken) {
			return nil, NewBookingError(CodeSlotAlreadyBooked, "This time slot is already booked")
		}
		return nil, NewBookingError(CodePersistenceError, fmt.Sprintf("failed to create booking: %v", err))
	}

	s.invalidateSlotCache(ctx, req.ConsultantID, scheduledAt)

	logger.Info("booking created",
		zap.String("bookingID", booking.ID),
		zap.String("consultantID", booking.ConsultantID),
		zap.Time("scheduledAt", booking.ScheduledAt),
	)

	// Confirmation is best-effort: a notification failure is logged and
	// never rolls back or fails the booking.
	go s.sendConfirmation(booking, consultant)

	return booking, nil
}

func (s *DefaultBookingService) sendConfirmation(booking *models.Booking, consultant *models.Consultant) {
	logger := utils.GetLogger()

	if s.Notification == nil {
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	conf := models.BookingConfirmation{
		BookingID:       booking.ID,
		ConsultantName:  consultant.Name,
		ScheduledAt:     booking.ScheduledAt,
		DurationMinutes: booking.DurationMinutes,
	}

	if s.UserRepo != nil {
		if user, err := s.UserRepo.GetByID(booking.UserID); err == nil && user != nil {
			conf.UserEmail = user.Email
			conf.UserFCMToken = user.FCMToken
		}
	}

	if err := s.Notification.SendBookingConfirmation(ctx, conf); err != nil {
		logger.Warn("booking confirmation failed",
			zap.String("bookingID", booking.ID), zap.Error(err))
	}
}

func (s *DefaultBookingService) invalidateSlotCache(ctx context.Context, consultantID string, at time.Time) {
	if s.Cache == nil {
		return
	}
	key := slotsCachePrefix + consultantID + ":" + at.In(time.Local).Format("2006-01-02")
	if err := s.Cache.Del(ctx, key).Err(); err != nil {
		utils.GetLogger().Warn("failed to invalidate slot cache", zap.String("key", key), zap.Error(err))
	}
}

func (s *DefaultBookingService) ListUserBookings(ctx context.Context, userID string) ([]models.Booking, error) {
	bookings, err := s.Repo.ListByUser(ctx, userID)
	if err != nil {
		return nil, NewBookingError(CodePersistenceError, fmt.Sprintf("failed to list bookings: %v", err))
	}
	return bookings, nil
}
