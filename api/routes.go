package api

import (
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/oapi-codegen/runtime"
)

// ServerInterface represents all server handlers.
type ServerInterface interface {
	// (GET /patients)
	ListPatients(ctx echo.Context) error
	// (POST /patients)
	CreatePatient(ctx echo.Context) error
	// (DELETE /patients/{id})
	DeletePatient(ctx echo.Context, id PatientId) error
	// (GET /patients/{id})
	GetPatient(ctx echo.Context, id PatientId) error
}

// ServerInterfaceWrapper converts echo contexts to parameters.
type ServerInterfaceWrapper struct {
	Handler ServerInterface
}

// ListPatients converts echo context to params.
func (w *ServerInterfaceWrapper) ListPatients(ctx echo.Context) error {
	return w.Handler.ListPatients(ctx)
}

// CreatePatient converts echo context to params.
func (w *ServerInterfaceWrapper) CreatePatient(ctx echo.Context) error {
	return w.Handler.CreatePatient(ctx)
}

// DeletePatient converts echo context to params.
func (w *ServerInterfaceWrapper) DeletePatient(ctx echo.Context) error {
	id, err := bindPatientId(ctx)
	if err != nil {
		return err
	}
	return w.Handler.DeletePatient(ctx, id)
}

// GetPatient converts echo context to params.
func (w *ServerInterfaceWrapper) GetPatient(ctx echo.Context) error {
	id, err := bindPatientId(ctx)
	if err != nil {
		return err
	}
	return w.Handler.GetPatient(ctx, id)
}

func bindPatientId(ctx echo.Context) (PatientId, error) {
	var id PatientId
	err := runtime.BindStyledParameterWithOptions("simple", "id", ctx.Param("id"), &id, runtime.BindStyledParameterOptions{
		ParamLocation: runtime.ParamLocationPath,
		Explode:       false,
		Required:      true,
	})
	if err != nil {
		return id, echo.NewHTTPError(http.StatusBadRequest, fmt.Sprintf("Invalid format for parameter id: %s", err))
	}
	return id, nil
}

// EchoRouter is the subset of echo used to register routes.
type EchoRouter interface {
	DELETE(path string, h echo.HandlerFunc, m ...echo.MiddlewareFunc) *echo.Route
	GET(path string, h echo.HandlerFunc, m ...echo.MiddlewareFunc) *echo.Route
	POST(path string, h echo.HandlerFunc, m ...echo.MiddlewareFunc) *echo.Route
}

// RegisterHandlers adds each server route to the EchoRouter.
func RegisterHandlers(router EchoRouter, si ServerInterface) {
	RegisterHandlersWithBaseURL(router, si, "")
}

// RegisterHandlersWithBaseURL registers the handlers with a base path prefix.
func RegisterHandlersWithBaseURL(router EchoRouter, si ServerInterface, baseURL string) {
	wrapper := ServerInterfaceWrapper{
		Handler: si,
	}

	router.GET(baseURL+"/patients", wrapper.ListPatients)
	router.POST(baseURL+"/patients", wrapper.CreatePatient)
	router.DELETE(baseURL+"/patients/:id", wrapper.DeletePatient)
	router.GET(baseURL+"/patients/:id", wrapper.GetPatient)
}
