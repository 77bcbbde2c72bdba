package services

import (
	"context"
	"net/http"

	"github.com/Fyandono/project-maintenance-system/internal/client/gateway"
	"github.com/Fyandono/project-maintenance-system/internal/client/liststate"
	"github.com/Fyandono/project-maintenance-system/internal/client/models"
	"github.com/Fyandono/project-maintenance-system/internal/logging"
)

const rolePath = "/x/role"

type RoleInput struct {
	ID          string `json:"id,omitempty"`
	Name        string `json:"name" validate:"required"`
	Description string `json:"description"`
}

type RoleService interface {
	List(ctx context.Context, criteria map[string]string, page, pageSize int) (models.Envelope[models.Role], error)
	Create(ctx context.Context, in RoleInput) (models.Role, error)
	Edit(ctx context.Context, in RoleInput) (models.Role, error)
}

type roleService struct {
	api gateway.Doer
}

func NewRoleService(api gateway.Doer) RoleService {
	return &roleService{api: api}
}

func (s *roleService) List(ctx context.Context, criteria map[string]string, page, pageSize int) (models.Envelope[models.Role], error) {
	return fetchList[models.Role](ctx, s.api, rolePath, criteria, page, pageSize)
}

func (s *roleService) Create(ctx context.Context, in RoleInput) (models.Role, error) {
	return sendJSON[models.Role](ctx, s.api, http.MethodPost, rolePath, in)
}

func (s *roleService) Edit(ctx context.Context, in RoleInput) (models.Role, error) {
	return sendJSON[models.Role](ctx, s.api, http.MethodPut, rolePath, in)
}

func NewRoleList(svc RoleService, pageSize int, log logging.Logger) *liststate.Machine[models.Role] {
	return liststate.New(liststate.Config[models.Role]{
		Name:            "role",
		DefaultPageSize: pageSize,
		Fetch:           svc.List,
		Log:             log,
	})
}
