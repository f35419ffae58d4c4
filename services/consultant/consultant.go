package consultant

import (
	"fmt"

	consultantRepo "avira/database/repository/consultant"
	"avira/models"
)

// ConsultantService exposes the anonymous consultant directory.
type ConsultantService interface {
	ListAvailable() ([]models.Consultant, error)
	GetByID(id string) (*models.Consultant, error)
}

// DefaultConsultantService is the production implementation.
type DefaultConsultantService struct {
	Repo consultantRepo.ConsultantRepository
}

func (s *DefaultConsultantService) ListAvailable() ([]models.Consultant, error) {
	consultants, err := s.Repo.GetAllAvailable()
	if err != nil {
		return nil, fmt.Errorf("failed to list consultants: %w", err)
	}
	return consultants, nil
}

func (s *DefaultConsultantService) GetByID(id string) (*models.Consultant, error) {
	consultant, err := s.Repo.GetByID(id)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch consultant: %w", err)
	}
	return consultant, nil
}
