package test

import (
	"github.com/ps-health/patient-service/patients"
	"github.com/ps-health/patient-service/test"
)

func RandomPatient() patients.Patient {
	return patients.Patient{
		Name:           test.Faker.Person().Name(),
		Email:          test.UniqueEmail(),
		Address:        test.Faker.Address().Address(),
		DateOfBirth:    test.Date(1930, 2020),
		RegisteredDate: test.Date(2021, 2025),
	}
}
