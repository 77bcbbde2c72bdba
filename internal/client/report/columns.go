package report

import (
	"github.com/Fyandono/project-maintenance-system/internal/client/models"
)

// PMColumns is the per-project PM report layout.
func PMColumns() []Column[models.PMRecord] {
	return []Column[models.PMRecord]{
		{Header: "ID", Width: 20, Value: func(r models.PMRecord) string { return models.OrPlaceholder(r.ID) }},
		{Header: "Task / Description", Width: 35, Value: func(r models.PMRecord) string { return models.OrPlaceholder(r.Description) }},
		{Header: "Solution", Width: 35, Value: func(r models.PMRecord) string { return models.OrPlaceholder(r.Solution) }},
		{Header: "Type", Width: 15, Value: func(r models.PMRecord) string { return models.OrPlaceholder(r.Type) }},
		{Header: "PIC Name", Width: 20, Value: func(r models.PMRecord) string { return models.OrPlaceholder(r.PICName) }},
		{Header: "PIC Email", Width: 20, Value: func(r models.PMRecord) string { return models.OrPlaceholder(r.PICEmail) }},
		{Header: "PIC Unit", Width: 20, Value: func(r models.PMRecord) string { return models.OrPlaceholder(r.PICUnit) }},
		{Header: "Project Date", Width: 15, Value: func(r models.PMRecord) string { return models.OrPlaceholder(r.ProjectDate) }},
		{Header: "Completion Date", Width: 15, Value: func(r models.PMRecord) string { return models.OrPlaceholder(r.CompletionDate) }},
		{Header: "Status", Width: 15, Value: func(r models.PMRecord) string { return models.StatusText(r.IsVerified) }},
		{Header: "PM Verified By", Width: 15, Value: func(r models.PMRecord) string { return models.OrPlaceholder(r.VerifiedBy) }},
		{Header: "PM Verified At", Width: 20, Value: func(r models.PMRecord) string { return models.OrPlaceholder(r.VerifiedAt) }},
		{Header: "PM Created At", Width: 20, Value: func(r models.PMRecord) string { return models.OrPlaceholder(r.CreatedAt) }},
		{Header: "PM Created By", Width: 20, Value: func(r models.PMRecord) string { return models.OrPlaceholder(r.CreatedBy) }},
		{Header: "PM Updated At", Width: 20, Value: func(r models.PMRecord) string { return models.OrPlaceholder(r.UpdatedAt) }},
		{Header: "PM Updated By", Width: 20, Value: func(r models.PMRecord) string { return models.OrPlaceholder(r.UpdatedBy) }},
		{Header: "Note", Width: 40, Value: func(r models.PMRecord) string { return models.FlattenNote(r.Note) }},
	}
}

// CrossVendorColumns is the aggregate report layout fed by /x/report.
func CrossVendorColumns() []Column[models.ReportRow] {
	return []Column[models.ReportRow]{
		{Header: "Vendor", Width: 20, Value: func(r models.ReportRow) string { return models.OrPlaceholder(r.VendorName) }},
		{Header: "Project Name", Width: 25, Value: func(r models.ReportRow) string { return models.OrPlaceholder(r.ProjectName) }},
		{Header: "Project Type", Width: 25, Value: func(r models.ReportRow) string { return models.OrPlaceholder(r.ProjectType) }},
		{Header: "Task / Description", Width: 35, Value: func(r models.ReportRow) string { return models.OrPlaceholder(r.Task) }},
		{Header: "Solution", Width: 35, Value: func(r models.ReportRow) string { return models.OrPlaceholder(r.Solution) }},
		{Header: "Type", Width: 15, Value: func(r models.ReportRow) string { return models.OrPlaceholder(r.Type) }},
		{Header: "PIC Name", Width: 20, Value: func(r models.ReportRow) string { return models.OrPlaceholder(r.PICName) }},
		{Header: "PIC Email", Width: 20, Value: func(r models.ReportRow) string { return models.OrPlaceholder(r.PICEmail) }},
		{Header: "PIC Unit", Width: 20, Value: func(r models.ReportRow) string { return models.OrPlaceholder(r.PICUnit) }},
		{Header: "Project Date", Width: 15, Value: func(r models.ReportRow) string { return models.OrPlaceholder(r.ProjectDate) }},
		{Header: "Completion Date", Width: 15, Value: func(r models.ReportRow) string { return models.OrPlaceholder(r.CompletionDate) }},
		{Header: "Status", Width: 15, Value: func(r models.ReportRow) string { return models.StatusText(r.IsVerified) }},
		{Header: "PM Verified By", Width: 15, Value: func(r models.ReportRow) string { return models.OrPlaceholder(r.VerifiedBy) }},
		{Header: "PM Verified At", Width: 20, Value: func(r models.ReportRow) string { return models.OrPlaceholder(r.VerifiedAt) }},
		{Header: "PM Created At", Width: 20, Value: func(r models.ReportRow) string { return models.OrPlaceholder(r.CreatedAt) }},
		{Header: "PM Created By", Width: 20, Value: func(r models.ReportRow) string { return models.OrPlaceholder(r.CreatedBy) }},
		{Header: "PM Updated At", Width: 20, Value: func(r models.ReportRow) string { return models.OrPlaceholder(r.UpdatedAt) }},
		{Header: "PM Updated By", Width: 20, Value: func(r models.ReportRow) string { return models.OrPlaceholder(r.UpdatedBy) }},
		{Header: "Note", Width: 40, Value: func(r models.ReportRow) string { return models.FlattenNote(r.Note) }},
	}
}
