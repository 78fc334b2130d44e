package api

import (
	"time"

	"github.com/google/uuid"
	"github.com/oapi-codegen/runtime/types"

	"github.com/ps-health/patient-service/patients"
)

func NewPatientFromCreate(dto CreatePatientV1) patients.Patient {
	return patients.Patient{
		Id:             uuid.Nil,
		Name:           dto.Name,
		Email:          dto.Email,
		Address:        dto.Address,
		DateOfBirth:    dateToTime(dto.DateOfBirth),
		RegisteredDate: dateToTime(dto.RegisteredDate),
	}
}

func NewPatientDto(patient patients.Patient) PatientV1 {
	return PatientV1{
		Name:        patient.Name,
		Email:       patient.Email,
		Address:     patient.Address,
		DateOfBirth: timeToDate(patient.DateOfBirth),
	}
}

func NewPatientsDto(list []patients.Patient) []PatientV1 {
	dtos := make([]PatientV1, 0, len(list))
	for _, patient := range list {
		dtos = append(dtos, NewPatientDto(patient))
	}
	return dtos
}

func NewPatientEntityDto(patient patients.Patient) PatientEntityV1 {
	return PatientEntityV1{
		Id:             patient.Id,
		Name:           patient.Name,
		Email:          patient.Email,
		Address:        patient.Address,
		DateOfBirth:    timeToDate(patient.DateOfBirth),
		RegisteredDate: timeToDate(patient.RegisteredDate),
	}
}

func dateToTime(d *types.Date) time.Time {
	if d == nil {
		return time.Time{}
	}
	return patients.CalendarDate(d.Time)
}

func timeToDate(t time.Time) types.Date {
	return types.Date{Time: patients.CalendarDate(t)}
}
