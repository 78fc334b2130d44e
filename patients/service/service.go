package service

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/ps-health/patient-service/patients"
)

type service struct {
	logger *zap.SugaredLogger

	patientsRepo patients.Repository
}

var _ patients.Service = &service{}

func NewService(repo patients.Repository, logger *zap.SugaredLogger) (patients.Service, error) {
	return &service{
		logger:       logger,
		patientsRepo: repo,
	}, nil
}

func (s *service) List(ctx context.Context) ([]patients.Patient, error) {
	return s.patientsRepo.List(ctx)
}

func (s *service) Get(ctx context.Context, id uuid.UUID) (*patients.Patient, error) {
	return s.patientsRepo.Get(ctx, id)
}

func (s *service) Create(ctx context.Context, patient patients.Patient) (*patients.Patient, error) {
	// Identifiers are only ever assigned by the repository
	patient.Id = uuid.Nil
	patient.DateOfBirth = patients.CalendarDate(patient.DateOfBirth)
	if patient.RegisteredDate.IsZero() {
		patient.RegisteredDate = time.Now().UTC()
	}
	patient.RegisteredDate = patients.CalendarDate(patient.RegisteredDate)

	result, err := s.patientsRepo.Save(ctx, patient)
	if err != nil {
		return nil, err
	}

	s.logger.Infow("created patient", "patientId", result.Id)
	return result, nil
}

func (s *service) Remove(ctx context.Context, id uuid.UUID) (bool, error) {
	s.logger.Infow("deleting patient", "patientId", id)
	if err := s.patientsRepo.Remove(ctx, id); errors.Is(err, patients.ErrNotFound) {
		return false, nil
	} else if err != nil {
		return false, err
	}
	return true, nil
}

func (s *service) Exists(ctx context.Context, id uuid.UUID) (bool, error) {
	return s.patientsRepo.Exists(ctx, id)
}

func (s *service) EmailExists(ctx context.Context, email string) (bool, error) {
	return s.patientsRepo.ExistsByEmail(ctx, email)
}
