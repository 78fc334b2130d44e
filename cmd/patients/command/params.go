package command

import (
	"fmt"

	"github.com/google/uuid"

	"github.com/ps-health/patient-service/api"
)

func parsePatientId(value string) (api.PatientId, error) {
	id, err := uuid.Parse(value)
	if err != nil {
		return uuid.Nil, fmt.Errorf("invalid patient id %q: %w", value, err)
	}
	return id, nil
}
