package patients

import (
	"context"

	"github.com/google/uuid"
)

const (
	CollectionName = "patients"
)

//go:generate mockgen --build_flags=--mod=mod -source=./repo.go -destination=./test/mock_repository.go -package test MockRepository

type Repository interface {
	List(ctx context.Context) ([]Patient, error)
	Get(ctx context.Context, id uuid.UUID) (*Patient, error)
	// Save inserts the patient when it has no id yet and replaces the stored
	// record otherwise. Email collisions are reported as ErrDuplicateEmail.
	Save(ctx context.Context, patient Patient) (*Patient, error)
	Exists(ctx context.Context, id uuid.UUID) (bool, error)
	// Remove returns ErrNotFound when nothing was deleted.
	Remove(ctx context.Context, id uuid.UUID) error
	ExistsByEmail(ctx context.Context, email string) (bool, error)
}
