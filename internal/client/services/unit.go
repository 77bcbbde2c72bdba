package services

import (
	"context"
	"net/http"

	"github.com/Fyandono/project-maintenance-system/internal/client/gateway"
	"github.com/Fyandono/project-maintenance-system/internal/client/liststate"
	"github.com/Fyandono/project-maintenance-system/internal/client/models"
	"github.com/Fyandono/project-maintenance-system/internal/logging"
)

const unitPath = "/x/unit"

type UnitInput struct {
	ID          string `json:"id,omitempty"`
	Name        string `json:"name" validate:"required"`
	Description string `json:"description"`
}

type UnitService interface {
	List(ctx context.Context, criteria map[string]string, page, pageSize int) (models.Envelope[models.Unit], error)
	Create(ctx context.Context, in UnitInput) (models.Unit, error)
	Edit(ctx context.Context, in UnitInput) (models.Unit, error)
}

type unitService struct {
	api gateway.Doer
}

func NewUnitService(api gateway.Doer) UnitService {
	return &unitService{api: api}
}

func (s *unitService) List(ctx context.Context, criteria map[string]string, page, pageSize int) (models.Envelope[models.Unit], error) {
	return fetchList[models.Unit](ctx, s.api, unitPath, criteria, page, pageSize)
}

func (s *unitService) Create(ctx context.Context, in UnitInput) (models.Unit, error) {
	return sendJSON[models.Unit](ctx, s.api, http.MethodPost, unitPath, in)
}

func (s *unitService) Edit(ctx context.Context, in UnitInput) (models.Unit, error) {
	return sendJSON[models.Unit](ctx, s.api, http.MethodPut, unitPath, in)
}

func NewUnitList(svc UnitService, pageSize int, log logging.Logger) *liststate.Machine[models.Unit] {
	return liststate.New(liststate.Config[models.Unit]{
		Name:            "unit",
		DefaultPageSize: pageSize,
		Fetch:           svc.List,
		Log:             log,
	})
}
