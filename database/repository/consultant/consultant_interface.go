package consultantRepo

import "avira/models"

// ConsultantRepository defines methods for consultant data access.
type ConsultantRepository interface {
	// GetByID retrieves a consultant by its unique ID.
	GetByID(id string) (*models.Consultant, error)
	// GetAllAvailable retrieves consultants currently accepting bookings.
	GetAllAvailable() ([]models.Consultant, error)
	// GetAvailabilityRules retrieves the weekly availability template.
	GetAvailabilityRules(consultantID string) ([]models.AvailabilityRule, error)
}
