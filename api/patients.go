package api

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

func (h *Handler) ListPatients(ec echo.Context) error {
	ctx := ec.Request().Context()
	list, err := h.patients.List(ctx)
	if err != nil {
		return err
	}

	return ec.JSON(http.StatusOK, NewPatientsDto(list))
}

func (h *Handler) GetPatient(ec echo.Context, id PatientId) error {
	ctx := ec.Request().Context()
	patient, err := h.patients.Get(ctx, id)
	if err != nil {
		return err
	}

	return ec.JSON(http.StatusOK, NewPatientDto(*patient))
}

func (h *Handler) CreatePatient(ec echo.Context) error {
	ctx := ec.Request().Context()
	dto := CreatePatientV1{}
	if err := ec.Bind(&dto); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "error parsing parameters")
	}
	if err := ec.Validate(&dto); err != nil {
		return err
	}

	result, err := h.patients.Create(ctx, NewPatientFromCreate(dto))
	if err != nil {
		return err
	}

	return ec.JSON(http.StatusCreated, NewPatientEntityDto(*result))
}

func (h *Handler) DeletePatient(ec echo.Context, id PatientId) error {
	ctx := ec.Request().Context()
	deleted, err := h.patients.Remove(ctx, id)
	if err != nil {
		return err
	}
	if !deleted {
		h.logger.Debugw("patient to delete was not found", "patientId", id)
		return ec.NoContent(http.StatusBadRequest)
	}

	return ec.String(http.StatusOK, "Success: Deleted Patient of ID: "+id.String())
}
