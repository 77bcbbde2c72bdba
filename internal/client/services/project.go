package services

import (
	"context"
	"net/http"

	"github.com/Fyandono/project-maintenance-system/internal/client/gateway"
	"github.com/Fyandono/project-maintenance-system/internal/client/liststate"
	"github.com/Fyandono/project-maintenance-system/internal/client/models"
	"github.com/Fyandono/project-maintenance-system/internal/logging"
)

const projectPath = "/x/project"

// Project list filter keys. The vendor id is the parent scope: the project
// list is never fetched without it.
const (
	FilterVendorID    = "vendor_id"
	FilterProjectName = "project_name"
)

// ProjectInput is the create/edit payload.
type ProjectInput struct {
	ID          string `json:"id,omitempty"`
	VendorID    string `json:"vendor_id" validate:"required"`
	Name        string `json:"project_name" validate:"required"`
	ProjectType string `json:"project_type"`
}

type ProjectService interface {
	List(ctx context.Context, criteria map[string]string, page, pageSize int) (models.Envelope[models.Project], error)
	Create(ctx context.Context, in ProjectInput) (models.Project, error)
	Edit(ctx context.Context, in ProjectInput) (models.Project, error)
}

type projectService struct {
	api gateway.Doer
}

func NewProjectService(api gateway.Doer) ProjectService {
	return &projectService{api: api}
}

func (s *projectService) List(ctx context.Context, criteria map[string]string, page, pageSize int) (models.Envelope[models.Project], error) {
	return fetchList[models.Project](ctx, s.api, projectPath, criteria, page, pageSize)
}

func (s *projectService) Create(ctx context.Context, in ProjectInput) (models.Project, error) {
	return sendJSON[models.Project](ctx, s.api, http.MethodPost, projectPath, in)
}

func (s *projectService) Edit(ctx context.Context, in ProjectInput) (models.Project, error) {
	return sendJSON[models.Project](ctx, s.api, http.MethodPut, projectPath, in)
}

// NewProjectList builds the vendor-scoped project list machine.
func NewProjectList(svc ProjectService, pageSize int, log logging.Logger) *liststate.Machine[models.Project] {
	return liststate.New(liststate.Config[models.Project]{
		Name:            "project",
		ScopeKey:        FilterVendorID,
		DefaultPageSize: pageSize,
		Fetch:           svc.List,
		Log:             log,
	})
}
