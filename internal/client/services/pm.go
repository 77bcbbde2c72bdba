package services

import (
	"context"
	"net/http"
	"net/url"

	"github.com/Fyandono/project-maintenance-system/internal/client/gateway"
	"github.com/Fyandono/project-maintenance-system/internal/client/liststate"
	"github.com/Fyandono/project-maintenance-system/internal/client/models"
	"github.com/Fyandono/project-maintenance-system/internal/logging"
)

const (
	pmPath       = "/x/pm"
	verifyPath   = "/x/verify"
	pmDetailPath = "/x/pm-detail"
)

// PM list filter keys. The project id is the parent scope.
const (
	FilterProjectID           = "project_id"
	FilterDescription         = "description"
	FilterProjectStartDate    = "project_start_date"
	FilterProjectEndDate      = "project_end_date"
	FilterCompletionStartDate = "completion_start_date"
	FilterCompletionEndDate   = "completion_end_date"
	FilterPMType              = "pm_type"
	FilterPMStatus            = "pm_status"
)

// PMInput is the create/edit payload.
type PMInput struct {
	ID          string `json:"id,omitempty"`
	ProjectID   string `json:"project_id" validate:"required"`
	Description string `json:"pm_description" validate:"required"`
	Solution    string `json:"pm_solution"`
	Type        string `json:"pm_type" validate:"required"`
	PICName     string `json:"pic_name" validate:"required"`
	PICEmail    string `json:"pic_email" validate:"omitempty,email"`
	PICUnit     string `json:"pic_unit"`
	ProjectDate string `json:"pm_project_date" validate:"required"`
}

// VerifyInput is the verification payload. ProjectDate is carried for the
// client-side date rules only and never serialized.
type VerifyInput struct {
	ID             string `json:"id" validate:"required"`
	CompletionDate string `json:"pm_completion_date" validate:"required"`
	IsVerified     bool   `json:"is_verified"`
	Note           string `json:"note"`
	ProjectDate    string `json:"-"`
}

type PMService interface {
	List(ctx context.Context, criteria map[string]string, page, pageSize int) (models.Envelope[models.PMRecord], error)
	Create(ctx context.Context, in PMInput) (models.PMRecord, error)
	Edit(ctx context.Context, in PMInput) (models.PMRecord, error)

	// Verify marks a record verified or sends it back for revision.
	Verify(ctx context.Context, in VerifyInput) (models.PMRecord, error)

	// Detail returns one record with its parent project summary.
	Detail(ctx context.Context, id string) (models.PMDetail, error)
}

type pmService struct {
	api gateway.Doer
}

func NewPMService(api gateway.Doer) PMService {
	return &pmService{api: api}
}

func (s *pmService) List(ctx context.Context, criteria map[string]string, page, pageSize int) (models.Envelope[models.PMRecord], error) {
	return fetchList[models.PMRecord](ctx, s.api, pmPath, criteria, page, pageSize)
}

func (s *pmService) Create(ctx context.Context, in PMInput) (models.PMRecord, error) {
	return sendJSON[models.PMRecord](ctx, s.api, http.MethodPost, pmPath, in)
}

func (s *pmService) Edit(ctx context.Context, in PMInput) (models.PMRecord, error) {
	return sendJSON[models.PMRecord](ctx, s.api, http.MethodPut, pmPath, in)
}

func (s *pmService) Verify(ctx context.Context, in VerifyInput) (models.PMRecord, error) {
	return sendJSON[models.PMRecord](ctx, s.api, http.MethodPut, verifyPath, in)
}

func (s *pmService) Detail(ctx context.Context, id string) (models.PMDetail, error) {
	query := url.Values{}
	query.Set("id", id)
	return getJSON[models.PMDetail](ctx, s.api, pmDetailPath, query)
}

// NewPMList builds the project-scoped PM list machine.
func NewPMList(svc PMService, pageSize int, log logging.Logger) *liststate.Machine[models.PMRecord] {
	return liststate.New(liststate.Config[models.PMRecord]{
		Name:            "pm",
		ScopeKey:        FilterProjectID,
		DefaultPageSize: pageSize,
		Fetch:           svc.List,
		Log:             log,
	})
}
