package services

import (
	"context"
	"net/url"

	"github.com/Fyandono/project-maintenance-system/internal/client/gateway"
	"github.com/Fyandono/project-maintenance-system/internal/client/models"
)

const reportPath = "/x/report"

// ReportFilter narrows the cross-vendor report source. Empty fields are
// omitted from the query.
type ReportFilter struct {
	VendorIDs           string
	ProjectStartDate    string
	ProjectEndDate      string
	CompletionStartDate string
	CompletionEndDate   string
	PMType              string
	PMStatus            string
}

func (f ReportFilter) query() url.Values {
	query := url.Values{}
	set := func(key, value string) {
		if value != "" {
			query.Set(key, value)
		}
	}
	set("list_vendor_id", f.VendorIDs)
	set("project_start_date", f.ProjectStartDate)
	set("project_end_date", f.ProjectEndDate)
	set("completion_start_date", f.CompletionStartDate)
	set("completion_end_date", f.CompletionEndDate)
	set("pm_type", f.PMType)
	set("pm_status", f.PMStatus)
	return query
}

// ReportService fetches the aggregate export source data.
type ReportService interface {
	Rows(ctx context.Context, filter ReportFilter) ([]models.ReportRow, error)
}

type reportService struct {
	api gateway.Doer
}

func NewReportService(api gateway.Doer) ReportService {
	return &reportService{api: api}
}

func (s *reportService) Rows(ctx context.Context, filter ReportFilter) ([]models.ReportRow, error) {
	env, err := getJSON[models.Envelope[models.ReportRow]](ctx, s.api, reportPath, filter.query())
	if err != nil {
		return nil, err
	}
	return env.Data, nil
}
