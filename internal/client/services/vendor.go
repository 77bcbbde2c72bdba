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

const vendorPath = "/x/vendor"

// Vendor list filter keys.
const FilterName = "name"

// VendorInput is the create/edit payload.
type VendorInput struct {
	ID          string `json:"id,omitempty"`
	Name        string `json:"name" validate:"required"`
	Description string `json:"description"`
}

// VendorService manages the vendor list and its submissions.
type VendorService interface {
	List(ctx context.Context, criteria map[string]string, page, pageSize int) (models.Envelope[models.Vendor], error)
	Create(ctx context.Context, in VendorInput) (models.Vendor, error)
	Edit(ctx context.Context, in VendorInput) (models.Vendor, error)

	// All returns every vendor, unpaginated, for scope selectors.
	All(ctx context.Context) ([]models.Vendor, error)

	// Report returns the unpaginated vendor rows of the vendor report
	// variant (is_report on the list endpoint).
	Report(ctx context.Context) ([]models.Vendor, error)
}

type vendorService struct {
	api gateway.Doer
}

func NewVendorService(api gateway.Doer) VendorService {
	return &vendorService{api: api}
}

func (s *vendorService) List(ctx context.Context, criteria map[string]string, page, pageSize int) (models.Envelope[models.Vendor], error) {
	return fetchList[models.Vendor](ctx, s.api, vendorPath, criteria, page, pageSize)
}

func (s *vendorService) Create(ctx context.Context, in VendorInput) (models.Vendor, error) {
	return sendJSON[models.Vendor](ctx, s.api, http.MethodPost, vendorPath, in)
}

func (s *vendorService) Edit(ctx context.Context, in VendorInput) (models.Vendor, error) {
	return sendJSON[models.Vendor](ctx, s.api, http.MethodPut, vendorPath, in)
}

func (s *vendorService) All(ctx context.Context) ([]models.Vendor, error) {
	env, err := getJSON[models.Envelope[models.Vendor]](ctx, s.api, "/x/all-vendor", url.Values{})
	if err != nil {
		return nil, err
	}
	return env.Data, nil
}

func (s *vendorService) Report(ctx context.Context) ([]models.Vendor, error) {
	query := url.Values{}
	query.Set("is_report", "true")
	env, err := getJSON[models.Envelope[models.Vendor]](ctx, s.api, vendorPath, query)
	if err != nil {
		return nil, err
	}
	return env.Data, nil
}

// NewVendorList builds the vendor list machine.
func NewVendorList(svc VendorService, pageSize int, log logging.Logger) *liststate.Machine[models.Vendor] {
	return liststate.New(liststate.Config[models.Vendor]{
		Name:            "vendor",
		DefaultPageSize: pageSize,
		Fetch:           svc.List,
		Log:             log,
	})
}
