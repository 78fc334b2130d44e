package patients

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/ps-health/patient-service/errors"
)

var ErrNotFound = fmt.Errorf("patient %w", errors.NotFound)
var ErrDuplicateEmail = fmt.Errorf("%w: a patient with this email already exists", errors.Duplicate)

//go:generate mockgen --build_flags=--mod=mod -source=./patients.go -destination=./test/mock_service.go -package test MockService

type Service interface {
	List(ctx context.Context) ([]Patient, error)
	Get(ctx context.Context, id uuid.UUID) (*Patient, error)
	Create(ctx context.Context, patient Patient) (*Patient, error)
	// Remove deletes the patient and reports whether it existed.
	Remove(ctx context.Context, id uuid.UUID) (bool, error)
	Exists(ctx context.Context, id uuid.UUID) (bool, error)
	EmailExists(ctx context.Context, email string) (bool, error)
}

type Patient struct {
	Id             uuid.UUID
	Name           string
	Email          string
	Address        string
	DateOfBirth    time.Time
	RegisteredDate time.Time
}

// IsNew is true until the storage layer has assigned an id.
func (p Patient) IsNew() bool {
	return p.Id == uuid.Nil
}

// CalendarDate drops the time of day and location, keeping the day the value
// represents in its own location.
func CalendarDate(t time.Time) time.Time {
	if t.IsZero() {
		return t
	}
	year, month, day := t.Date()
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}
