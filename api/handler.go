package api

import (
	"go.uber.org/fx"
	"go.uber.org/zap"

	"github.com/ps-health/patient-service/patients"
)

type Handler struct {
	patients patients.Service
	logger   *zap.SugaredLogger
}

var _ ServerInterface = &Handler{}

type Params struct {
	fx.In

	Patients patients.Service
	Logger   *zap.SugaredLogger
}

func NewHandler(p Params) *Handler {
	return &Handler{
		patients: p.Patients,
		logger:   p.Logger,
	}
}
