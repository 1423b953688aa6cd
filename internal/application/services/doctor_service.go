package services

import (
	"context"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"github.com/dento-health/dento-portal/backend/internal/domain/entities"
	"github.com/dento-health/dento-portal/backend/internal/domain/repositories"
)

// DoctorService handles doctor records and keeps the search index in
// sync with the database. Index writes are best effort: the database is
// the source of truth and a dead search node must not block CRUD.
type DoctorService struct {
	repo       repositories.DoctorRepository
	clinicRepo repositories.ClinicRepository
	searchRepo repositories.DoctorSearchRepository
}

// NewDoctorService creates a new doctor service. searchRepo may be nil
// when search is not configured.
func NewDoctorService(
	repo repositories.DoctorRepository,
	clinicRepo repositories.ClinicRepository,
	searchRepo repositories.DoctorSearchRepository,
) *DoctorService {
	return &DoctorService{
		repo:       repo,
		clinicRepo: clinicRepo,
		searchRepo: searchRepo,
	}
}

// Create creates a doctor and indexes it
func (s *DoctorService) Create(ctx context.Context, doctor *entities.Doctor) error {
	if doctor.ClinicID != "" {
		if _, err := s.clinicRepo.GetByID(ctx, doctor.ClinicID); err != nil {
			return err
		}
	}

	if doctor.ID == "" {
		doctor.ID = uuid.New().String()
	}

	if err := s.repo.Create(ctx, doctor); err != nil {
		return err
	}

	s.indexDoctor(ctx, doctor)
	return nil
}

// GetByID retrieves a doctor
func (s *DoctorService) GetByID(ctx context.Context, id string) (*entities.Doctor, error) {
	return s.repo.GetByID(ctx, id)
}

// Update updates a doctor and re-indexes it
func (s *DoctorService) Update(ctx context.Context, doctor *entities.Doctor) error {
	if doctor.ClinicID != "" {
		if _, err := s.clinicRepo.GetByID(ctx, doctor.ClinicID); err != nil {
			return err
		}
	}

	if err := s.repo.Update(ctx, doctor); err != nil {
		return err
	}

	s.indexDoctor(ctx, doctor)
	return nil
}

// Delete removes a doctor from the database and the index
func (s *DoctorService) Delete(ctx context.Context, id string) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}

	if s.searchRepo != nil {
		if err := s.searchRepo.Delete(ctx, id); err != nil {
			log.Warn().Err(err).Str("doctor_id", id).Msg("failed to remove doctor from search index")
		}
	}

	return nil
}

// List retrieves doctors with filters
func (s *DoctorService) List(ctx context.Context, filter repositories.DoctorFilter) ([]*entities.Doctor, error) {
	return s.repo.List(ctx, filter)
}

// Search runs a free-text doctor search. Without a search index it
// degrades to a plain database listing.
func (s *DoctorService) Search(ctx context.Context, query string, limit int) ([]*entities.Doctor, error) {
	if s.searchRepo == nil {
		return s.repo.List(ctx, repositories.DoctorFilter{Limit: limit})
	}

	doctors, err := s.searchRepo.Search(ctx, query, limit)
	if err != nil {
		log.Warn().Err(err).Str("query", query).Msg("doctor search failed, falling back to database listing")
		return s.repo.List(ctx, repositories.DoctorFilter{Limit: limit})
	}

	return doctors, nil
}

func (s *DoctorService) indexDoctor(ctx context.Context, doctor *entities.Doctor) {
	if s.searchRepo == nil {
		return
	}

	if doctor.ClinicName == "" && doctor.ClinicID != "" {
		if clinic, err := s.clinicRepo.GetByID(ctx, doctor.ClinicID); err == nil {
			doctor.ClinicName = clinic.Name
		}
	}

	if err := s.searchRepo.Index(ctx, doctor); err != nil {
		log.Warn().Err(err).Str("doctor_id", doctor.ID).Msg("failed to index doctor")
	}
}
