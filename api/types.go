package api

import (
	"github.com/google/uuid"
	"github.com/oapi-codegen/runtime/types"
)

// PatientId is the path parameter identifying a single patient.
type PatientId = uuid.UUID

// CreatePatientV1 is the body accepted by the create endpoint.
type CreatePatientV1 struct {
	Name           string      `json:"name" validate:"notblank"`
	Email          string      `json:"email" validate:"required,email"`
	Address        string      `json:"address" validate:"notblank"`
	DateOfBirth    *types.Date `json:"dateofBirth" validate:"required"`
	RegisteredDate *types.Date `json:"registeredDate,omitempty"`
}

// PatientV1 is the read view returned by the list and get endpoints.
type PatientV1 struct {
	Name        string     `json:"name"`
	Email       string     `json:"email"`
	Address     string     `json:"address"`
	DateOfBirth types.Date `json:"dateofBirth"`
}

// PatientEntityV1 is the full record returned after a successful create.
type PatientEntityV1 struct {
	Id             PatientId  `json:"id"`
	Name           string     `json:"name"`
	Email          string     `json:"email"`
	Address        string     `json:"address"`
	DateOfBirth    types.Date `json:"dateofBirth"`
	RegisteredDate types.Date `json:"registeredDate"`
}
