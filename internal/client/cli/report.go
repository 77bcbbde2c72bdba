package cli

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/Fyandono/project-maintenance-system/internal/client/report"
	"github.com/Fyandono/project-maintenance-system/internal/client/services"
)

// ExportReport drives the cross-vendor report: an interactive filter, the
// aggregate fetch, and a dated workbook written to the working directory.
func (a *App) ExportReport(ctx context.Context) error {
	vendors, err := a.vendors.All(ctx)
	if err != nil {
		fmt.Fprintf(a.out, "Could not load vendors: %v\n", err)
		return err
	}
	fmt.Fprintln(a.out, "Vendors:")
	for _, v := range vendors {
		fmt.Fprintf(a.out, "  %s  %s\n", v.ID, v.Name)
	}

	filter := services.ReportFilter{}
	if filter.VendorIDs, err = GetSimpleText(a.reader, "Vendor ids, comma separated (blank for all)", a.out); err != nil {
		return err
	}
	if filter.ProjectStartDate, err = GetSimpleText(a.reader, "Project date from (YYYY-MM-DD, blank to skip)", a.out); err != nil {
		return err
	}
	if filter.ProjectEndDate, err = GetSimpleText(a.reader, "Project date to (YYYY-MM-DD, blank to skip)", a.out); err != nil {
		return err
	}
	if filter.CompletionStartDate, err = GetSimpleText(a.reader, "Completion date from (YYYY-MM-DD, blank to skip)", a.out); err != nil {
		return err
	}
	if filter.CompletionEndDate, err = GetSimpleText(a.reader, "Completion date to (YYYY-MM-DD, blank to skip)", a.out); err != nil {
		return err
	}
	if filter.PMType, err = GetSimpleText(a.reader, "Maintenance type (blank for all)", a.out); err != nil {
		return err
	}
	if filter.PMStatus, err = GetSimpleText(a.reader, "Status (blank for all)", a.out); err != nil {
		return err
	}

	rows, err := a.reports.Rows(ctx, filter)
	if err != nil {
		fmt.Fprintf(a.out, "Could not build the report: %v\n", err)
		return err
	}

	buf, err := report.Build("PM Report", rows, report.CrossVendorColumns())
	if err != nil {
		return err
	}

	name := report.FileName("Report", time.Now())
	if err := os.WriteFile(name, buf.Bytes(), 0o644); err != nil {
		return fmt.Errorf("writing %s: %w", name, err)
	}

	fmt.Fprintf(a.out, "Wrote %s (%d rows).\n", name, len(rows))
	return nil
}

// ExportPMList exports the currently loaded page of the PM view, the
// per-project counterpart of the cross-vendor report.
func (a *App) ExportPMList(ctx context.Context) error {
	if err := a.pmList.Fetch(ctx); err != nil {
		return err
	}
	records := a.pmList.Page().Records
	if len(records) == 0 {
		fmt.Fprintln(a.out, "Nothing to export.")
		return nil
	}

	buf, err := report.Build("PM", records, report.PMColumns())
	if err != nil {
		return err
	}

	name := report.FileName("PM_Report", time.Now())
	if err := os.WriteFile(name, buf.Bytes(), 0o644); err != nil {
		return fmt.Errorf("writing %s: %w", name, err)
	}

	fmt.Fprintf(a.out, "Wrote %s (%d rows).\n", name, len(records))
	return nil
}

// ExportVendorList exports the vendor report variant: every vendor,
// unpaginated, regardless of the view's current filters.
func (a *App) ExportVendorList(ctx context.Context) error {
	vendors, err := a.vendors.Report(ctx)
	if err != nil {
		fmt.Fprintf(a.out, "Could not build the vendor report: %v\n", err)
		return err
	}
	if len(vendors) == 0 {
		fmt.Fprintln(a.out, "Nothing to export.")
		return nil
	}

	buf, err := report.Build("Vendors", vendors, vendorColumns())
	if err != nil {
		return err
	}

	name := report.FileName("Vendor_Report", time.Now())
	if err := os.WriteFile(name, buf.Bytes(), 0o644); err != nil {
		return fmt.Errorf("writing %s: %w", name, err)
	}

	fmt.Fprintf(a.out, "Wrote %s (%d rows).\n", name, len(vendors))
	return nil
}

// DownloadFile saves one attachment into dir ("." when blank).
func (a *App) DownloadFile(ctx context.Context, id, dir string) error {
	if dir == "" {
		dir = "."
	}
	path, err := a.files.Download(ctx, id, dir)
	if err != nil {
		fmt.Fprintf(a.out, "Download failed: %v\n", err)
		return err
	}
	fmt.Fprintf(a.out, "Saved %s.\n", path)
	return nil
}
