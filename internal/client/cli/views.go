package cli

import (
	"github.com/Fyandono/project-maintenance-system/internal/client/liststate"
	"github.com/Fyandono/project-maintenance-system/internal/client/models"
	"github.com/Fyandono/project-maintenance-system/internal/client/perm"
	"github.com/Fyandono/project-maintenance-system/internal/client/report"
	"github.com/Fyandono/project-maintenance-system/internal/client/services"
)

// buildViews assembles the six entity views. Console table columns are
// report.Column values, so anything the exporter can render the console
// can render too; the narrower views define their own shorter layouts.
func (a *App) buildViews() map[string]view {
	return map[string]view{
		"vendor": &listView[models.Vendor]{
			name:    "vendor",
			path:    "/vendor",
			search:  services.FilterName,
			filters: []string{services.FilterName},
			addCap:  perm.CapAddVendor,
			editCap: perm.CapEditVendor,
			columns: vendorColumns(),
			m:       a.vendorList,
			add:     a.vendorCreate,
			edit:    a.vendorEdit,
		},
		"project": &listView[models.Project]{
			name:    "project",
			path:    "/project",
			search:  services.FilterProjectName,
			scope:   services.FilterVendorID,
			filters: []string{services.FilterProjectName},
			addCap:  perm.CapAddProject,
			editCap: perm.CapEditProject,
			columns: projectColumns(),
			m:       a.projectList,
			add:     a.projectCreate,
			edit:    a.projectEdit,
		},
		"pm": &listView[models.PMRecord]{
			name:   "pm",
			path:   "/pm",
			search: services.FilterDescription,
			scope:  services.FilterProjectID,
			filters: []string{
				services.FilterDescription,
				services.FilterProjectStartDate,
				services.FilterProjectEndDate,
				services.FilterCompletionStartDate,
				services.FilterCompletionEndDate,
				services.FilterPMType,
				services.FilterPMStatus,
			},
			addCap:  perm.CapAddPM,
			editCap: perm.CapEditPM,
			columns: pmTableColumns(),
			m:       a.pmList,
			add:     a.pmCreate,
			edit:    a.pmEdit,
		},
		"user": &listView[models.User]{
			name:    "user",
			path:    "/user",
			search:  services.FilterName,
			filters: []string{services.FilterName, "username"},
			addCap:  perm.CapAddUser,
			editCap: perm.CapEditUser,
			columns: userColumns(),
			m:       a.userList,
			add:     a.userCreate,
			edit:    a.userEdit,
		},
		"unit": &listView[models.Unit]{
			name:    "unit",
			path:    "/unit",
			search:  services.FilterName,
			filters: []string{services.FilterName},
			addCap:  perm.CapAddUnit,
			editCap: perm.CapEditUnit,
			columns: unitColumns(),
			m:       a.unitList,
			add:     a.unitCreate,
			edit:    a.unitEdit,
		},
		"role": &listView[models.Role]{
			name:    "role",
			path:    "/role",
			search:  services.FilterName,
			filters: []string{services.FilterName},
			addCap:  perm.CapAddRole,
			editCap: perm.CapEditRole,
			columns: roleColumns(),
			m:       a.roleList,
			add:     a.roleCreate,
			edit:    a.roleEdit,
		},
	}
}

func vendorColumns() []report.Column[models.Vendor] {
	return []report.Column[models.Vendor]{
		{Header: "ID", Width: 36, Value: func(r models.Vendor) string { return r.ID }},
		{Header: "Name", Width: 30, Value: func(r models.Vendor) string { return models.OrPlaceholder(r.Name) }},
		{Header: "Description", Width: 40, Value: func(r models.Vendor) string { return models.OrPlaceholder(r.Description) }},
		{Header: "Updated", Width: 25, Value: func(r models.Vendor) string { return models.FormatDisplayDate(r.UpdatedAt) }},
	}
}

func projectColumns() []report.Column[models.Project] {
	return []report.Column[models.Project]{
		{Header: "ID", Width: 36, Value: func(r models.Project) string { return r.ID }},
		{Header: "Project Name", Width: 30, Value: func(r models.Project) string { return models.OrPlaceholder(r.Name) }},
		{Header: "Type", Width: 20, Value: func(r models.Project) string { return models.OrPlaceholder(r.ProjectType) }},
		{Header: "Updated", Width: 25, Value: func(r models.Project) string { return models.FormatDisplayDate(r.UpdatedAt) }},
	}
}

// pmTableColumns is the interactive layout, narrower than the export one.
func pmTableColumns() []report.Column[models.PMRecord] {
	return []report.Column[models.PMRecord]{
		{Header: "ID", Width: 36, Value: func(r models.PMRecord) string { return r.ID }},
		{Header: "Description", Width: 35, Value: func(r models.PMRecord) string { return models.OrPlaceholder(r.Description) }},
		{Header: "Type", Width: 12, Value: func(r models.PMRecord) string { return models.OrPlaceholder(r.Type) }},
		{Header: "PIC", Width: 20, Value: func(r models.PMRecord) string { return models.OrPlaceholder(r.PICName) }},
		{Header: "Project Date", Width: 14, Value: func(r models.PMRecord) string { return models.OrPlaceholder(r.ProjectDate) }},
		{Header: "Completion", Width: 14, Value: func(r models.PMRecord) string { return models.OrPlaceholder(r.CompletionDate) }},
		{Header: "Status", Width: 14, Value: func(r models.PMRecord) string { return models.StatusText(r.IsVerified) }},
		{Header: "Note", Width: 30, Value: func(r models.PMRecord) string { return models.FlattenNote(r.Note) }},
	}
}

func userColumns() []report.Column[models.User] {
	return []report.Column[models.User]{
		{Header: "ID", Width: 36, Value: func(r models.User) string { return r.ID }},
		{Header: "Username", Width: 20, Value: func(r models.User) string { return models.OrPlaceholder(r.Username) }},
		{Header: "Name", Width: 25, Value: func(r models.User) string { return models.OrPlaceholder(r.Name) }},
		{Header: "Email", Width: 25, Value: func(r models.User) string { return models.OrPlaceholder(r.Email) }},
	}
}

func unitColumns() []report.Column[models.Unit] {
	return []report.Column[models.Unit]{
		{Header: "ID", Width: 36, Value: func(r models.Unit) string { return r.ID }},
		{Header: "Name", Width: 30, Value: func(r models.Unit) string { return models.OrPlaceholder(r.Name) }},
		{Header: "Description", Width: 40, Value: func(r models.Unit) string { return models.OrPlaceholder(r.Description) }},
	}
}

func roleColumns() []report.Column[models.Role] {
	return []report.Column[models.Role]{
		{Header: "ID", Width: 36, Value: func(r models.Role) string { return r.ID }},
		{Header: "Name", Width: 30, Value: func(r models.Role) string { return models.OrPlaceholder(r.Name) }},
		{Header: "Description", Width: 40, Value: func(r models.Role) string { return models.OrPlaceholder(r.Description) }},
	}
}

// findOnPage looks a record up by id on the machine's current page. Forms
// edit what the user can currently see, matching how row actions work.
func findOnPage[R any](m *liststate.Machine[R], match func(R) bool) (R, bool) {
	var zero R
	for _, r := range m.Page().Records {
		if match(r) {
			return r, true
		}
	}
	return zero, false
}
