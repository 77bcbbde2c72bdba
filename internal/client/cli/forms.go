package cli

import (
	"context"
	"fmt"

	"github.com/Fyandono/project-maintenance-system/internal/client/models"
	"github.com/Fyandono/project-maintenance-system/internal/client/services"
	"github.com/Fyandono/project-maintenance-system/internal/client/submit"
)

// The interactive forms. Each prompts for the payload fields, then hands
// the submission to the controller, which owns validation, the banners,
// and the list refresh. A failed submission keeps the form marked open;
// the user re-runs the command and the prompts show their previous input
// as defaults where one exists.

func (a *App) vendorCreate(ctx context.Context) error {
	a.vendorCtl.OpenForm()
	in := services.VendorInput{}
	var err error
	if in.Name, err = GetSimpleText(a.reader, "Vendor name", a.out); err != nil {
		return err
	}
	if in.Description, err = GetSimpleText(a.reader, "Description (optional)", a.out); err != nil {
		return err
	}
	_, err = a.vendorCtl.Submit(ctx, submit.KindCreate, in)
	return err
}

func (a *App) vendorEdit(ctx context.Context, id string) error {
	record, ok := findOnPage(a.vendorList, func(r models.Vendor) bool { return r.ID == id })
	if !ok {
		return fmt.Errorf("vendor %s is not on the current page", id)
	}

	a.vendorCtl.OpenForm()
	in := services.VendorInput{ID: record.ID, Name: record.Name, Description: record.Description}
	var err error
	if in.Name, err = GetOptionalText(a.reader, "Vendor name", in.Name, a.out); err != nil {
		return err
	}
	if in.Description, err = GetOptionalText(a.reader, "Description", in.Description, a.out); err != nil {
		return err
	}
	_, err = a.vendorCtl.Submit(ctx, submit.KindEdit, in)
	return err
}

func (a *App) projectCreate(ctx context.Context) error {
	vendorID := a.projectList.Criterion(services.FilterVendorID)
	if vendorID == "" {
		return fmt.Errorf("select a vendor first: scope <vendor_id>")
	}

	a.projectCtl.OpenForm()
	in := services.ProjectInput{VendorID: vendorID}
	var err error
	if in.Name, err = GetSimpleText(a.reader, "Project name", a.out); err != nil {
		return err
	}
	if in.ProjectType, err = GetSimpleText(a.reader, "Project type (optional)", a.out); err != nil {
		return err
	}
	_, err = a.projectCtl.Submit(ctx, submit.KindCreate, in)
	return err
}

func (a *App) projectEdit(ctx context.Context, id string) error {
	record, ok := findOnPage(a.projectList, func(r models.Project) bool { return r.ID == id })
	if !ok {
		return fmt.Errorf("project %s is not on the current page", id)
	}

	a.projectCtl.OpenForm()
	in := services.ProjectInput{
		ID:          record.ID,
		VendorID:    record.VendorID,
		Name:        record.Name,
		ProjectType: record.ProjectType,
	}
	var err error
	if in.Name, err = GetOptionalText(a.reader, "Project name", in.Name, a.out); err != nil {
		return err
	}
	if in.ProjectType, err = GetOptionalText(a.reader, "Project type", in.ProjectType, a.out); err != nil {
		return err
	}
	_, err = a.projectCtl.Submit(ctx, submit.KindEdit, in)
	return err
}

func (a *App) pmCreate(ctx context.Context) error {
	projectID := a.pmList.Criterion(services.FilterProjectID)
	if projectID == "" {
		return fmt.Errorf("select a project first: scope <project_id>")
	}

	a.pmCtl.OpenForm()
	in := services.PMInput{ProjectID: projectID}
	var err error
	if in.Description, err = GetSimpleText(a.reader, "Task description", a.out); err != nil {
		return err
	}
	if in.Solution, err = GetSimpleText(a.reader, "Solution (optional)", a.out); err != nil {
		return err
	}
	if in.Type, err = GetSimpleText(a.reader, "Maintenance type", a.out); err != nil {
		return err
	}
	if in.PICName, err = GetSimpleText(a.reader, "PIC name", a.out); err != nil {
		return err
	}
	if in.PICEmail, err = GetSimpleText(a.reader, "PIC email (optional)", a.out); err != nil {
		return err
	}
	if in.PICUnit, err = GetSimpleText(a.reader, "PIC unit (optional)", a.out); err != nil {
		return err
	}
	if in.ProjectDate, err = GetSimpleText(a.reader, "Project date (YYYY-MM-DD)", a.out); err != nil {
		return err
	}
	_, err = a.pmCtl.Submit(ctx, submit.KindCreate, in)
	return err
}

func (a *App) pmEdit(ctx context.Context, id string) error {
	record, ok := findOnPage(a.pmList, func(r models.PMRecord) bool { return r.ID == id })
	if !ok {
		return fmt.Errorf("PM record %s is not on the current page", id)
	}

	a.pmCtl.OpenForm()
	in := services.PMInput{
		ID:          record.ID,
		ProjectID:   record.ProjectID,
		Description: record.Description,
		Solution:    record.Solution,
		Type:        record.Type,
		PICName:     record.PICName,
		PICEmail:    record.PICEmail,
		PICUnit:     record.PICUnit,
		ProjectDate: record.ProjectDate,
	}
	var err error
	if in.Description, err = GetOptionalText(a.reader, "Task description", in.Description, a.out); err != nil {
		return err
	}
	if in.Solution, err = GetOptionalText(a.reader, "Solution", in.Solution, a.out); err != nil {
		return err
	}
	if in.Type, err = GetOptionalText(a.reader, "Maintenance type", in.Type, a.out); err != nil {
		return err
	}
	if in.PICName, err = GetOptionalText(a.reader, "PIC name", in.PICName, a.out); err != nil {
		return err
	}
	if in.PICEmail, err = GetOptionalText(a.reader, "PIC email", in.PICEmail, a.out); err != nil {
		return err
	}
	if in.PICUnit, err = GetOptionalText(a.reader, "PIC unit", in.PICUnit, a.out); err != nil {
		return err
	}
	if in.ProjectDate, err = GetOptionalText(a.reader, "Project date (YYYY-MM-DD)", in.ProjectDate, a.out); err != nil {
		return err
	}
	_, err = a.pmCtl.Submit(ctx, submit.KindEdit, in)
	return err
}

// pmVerify drives the verification form: completion date, outcome, and a
// note that is mandatory when the record is sent back for revision. The
// date rules run client-side before any request goes out.
func (a *App) pmVerify(ctx context.Context, id string) error {
	record, ok := findOnPage(a.pmList, func(r models.PMRecord) bool { return r.ID == id })
	if !ok {
		return fmt.Errorf("PM record %s is not on the current page", id)
	}

	a.verifyCtl.OpenForm()
	in := services.VerifyInput{ID: record.ID, ProjectDate: record.ProjectDate}
	var err error
	if in.CompletionDate, err = GetOptionalText(a.reader, "Completion date (YYYY-MM-DD)", record.CompletionDate, a.out); err != nil {
		return err
	}
	if in.IsVerified, err = GetYesNo(a.reader, "Verify this record?", a.out); err != nil {
		return err
	}
	prompt := "Note (optional)"
	if !in.IsVerified {
		prompt = "Revision note (required)"
	}
	if in.Note, err = GetSimpleText(a.reader, prompt, a.out); err != nil {
		return err
	}
	_, err = a.verifyCtl.Submit(ctx, submit.KindVerify, in)
	return err
}

func (a *App) userCreate(ctx context.Context) error {
	a.userCtl.OpenForm()
	in := services.UserInput{}
	var err error
	if in.Username, err = GetSimpleText(a.reader, "Username", a.out); err != nil {
		return err
	}
	if in.Name, err = GetSimpleText(a.reader, "Full name", a.out); err != nil {
		return err
	}
	if in.Email, err = GetSimpleText(a.reader, "Email (optional)", a.out); err != nil {
		return err
	}
	if in.Password, err = GetPassword(a.out, "Initial password"); err != nil {
		return err
	}
	if in.UnitID, err = GetSimpleText(a.reader, "Unit id (optional)", a.out); err != nil {
		return err
	}
	if in.RoleID, err = GetSimpleText(a.reader, "Role id (optional)", a.out); err != nil {
		return err
	}
	_, err = a.userCtl.Submit(ctx, submit.KindCreate, in)
	return err
}

func (a *App) userEdit(ctx context.Context, id string) error {
	record, ok := findOnPage(a.userList, func(r models.User) bool { return r.ID == id })
	if !ok {
		return fmt.Errorf("user %s is not on the current page", id)
	}

	a.userCtl.OpenForm()
	in := services.UserInput{
		ID:       record.ID,
		Username: record.Username,
		Name:     record.Name,
		Email:    record.Email,
		UnitID:   record.UnitID,
		RoleID:   record.RoleID,
	}
	var err error
	if in.Name, err = GetOptionalText(a.reader, "Full name", in.Name, a.out); err != nil {
		return err
	}
	if in.Email, err = GetOptionalText(a.reader, "Email", in.Email, a.out); err != nil {
		return err
	}
	if in.UnitID, err = GetOptionalText(a.reader, "Unit id", in.UnitID, a.out); err != nil {
		return err
	}
	if in.RoleID, err = GetOptionalText(a.reader, "Role id", in.RoleID, a.out); err != nil {
		return err
	}
	_, err = a.userCtl.Submit(ctx, submit.KindEdit, in)
	return err
}

func (a *App) unitCreate(ctx context.Context) error {
	a.unitCtl.OpenForm()
	in := services.UnitInput{}
	var err error
	if in.Name, err = GetSimpleText(a.reader, "Unit name", a.out); err != nil {
		return err
	}
	if in.Description, err = GetSimpleText(a.reader, "Description (optional)", a.out); err != nil {
		return err
	}
	_, err = a.unitCtl.Submit(ctx, submit.KindCreate, in)
	return err
}

func (a *App) unitEdit(ctx context.Context, id string) error {
	record, ok := findOnPage(a.unitList, func(r models.Unit) bool { return r.ID == id })
	if !ok {
		return fmt.Errorf("unit %s is not on the current page", id)
	}

	a.unitCtl.OpenForm()
	in := services.UnitInput{ID: record.ID, Name: record.Name, Description: record.Description}
	var err error
	if in.Name, err = GetOptionalText(a.reader, "Unit name", in.Name, a.out); err != nil {
		return err
	}
	if in.Description, err = GetOptionalText(a.reader, "Description", in.Description, a.out); err != nil {
		return err
	}
	_, err = a.unitCtl.Submit(ctx, submit.KindEdit, in)
	return err
}

func (a *App) roleCreate(ctx context.Context) error {
	a.roleCtl.OpenForm()
	in := services.RoleInput{}
	var err error
	if in.Name, err = GetSimpleText(a.reader, "Role name", a.out); err != nil {
		return err
	}
	if in.Description, err = GetSimpleText(a.reader, "Description (optional)", a.out); err != nil {
		return err
	}
	_, err = a.roleCtl.Submit(ctx, submit.KindCreate, in)
	return err
}

func (a *App) roleEdit(ctx context.Context, id string) error {
	record, ok := findOnPage(a.roleList, func(r models.Role) bool { return r.ID == id })
	if !ok {
		return fmt.Errorf("role %s is not on the current page", id)
	}

	a.roleCtl.OpenForm()
	in := services.RoleInput{ID: record.ID, Name: record.Name, Description: record.Description}
	var err error
	if in.Name, err = GetOptionalText(a.reader, "Role name", in.Name, a.out); err != nil {
		return err
	}
	if in.Description, err = GetOptionalText(a.reader, "Description", in.Description, a.out); err != nil {
		return err
	}
	_, err = a.roleCtl.Submit(ctx, submit.KindEdit, in)
	return err
}

// pmDetail prints one record with its parent project summary.
func (a *App) pmDetail(ctx context.Context, id string) error {
	detail, err := a.pms.Detail(ctx, id)
	if err != nil {
		return err
	}

	pm, project := detail.PM, detail.Project
	fmt.Fprintf(a.out, "Project:     %s (%s)\n", models.OrPlaceholder(project.Name), models.OrPlaceholder(project.ProjectType))
	fmt.Fprintf(a.out, "Task:        %s\n", models.OrPlaceholder(pm.Description))
	fmt.Fprintf(a.out, "Solution:    %s\n", models.OrPlaceholder(pm.Solution))
	fmt.Fprintf(a.out, "Type:        %s\n", models.OrPlaceholder(pm.Type))
	fmt.Fprintf(a.out, "PIC:         %s <%s> %s\n",
		models.OrPlaceholder(pm.PICName), models.OrPlaceholder(pm.PICEmail), models.OrPlaceholder(pm.PICUnit))
	fmt.Fprintf(a.out, "Project on:  %s\n", models.FormatDisplayDate(pm.ProjectDate))
	fmt.Fprintf(a.out, "Completed:   %s\n", models.FormatDisplayDate(pm.CompletionDate))
	fmt.Fprintf(a.out, "Status:      %s\n", models.StatusText(pm.IsVerified))
	fmt.Fprintf(a.out, "Verified by: %s at %s\n",
		models.OrPlaceholder(pm.VerifiedBy), models.FormatDisplayDate(pm.VerifiedAt))
	fmt.Fprintln(a.out, "History:")
	events := models.ParseNoteHistory(pm.Note)
	if len(events) == 0 {
		fmt.Fprintf(a.out, "  %s\n", models.Placeholder)
	}
	for _, e := range events {
		fmt.Fprintf(a.out, "  - %s (%s, %s)\n",
			e.Note, models.OrPlaceholder(e.User), models.FormatDisplayDate(e.Timestamp))
	}
	return nil
}
