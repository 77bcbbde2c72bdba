package report

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"github.com/Fyandono/project-maintenance-system/internal/client/models"
)

func TestBuild_RowsInInputOrder(t *testing.T) {
	records := []models.ReportRow{
		{VendorName: "Acme", Task: "swap fans"},
		{VendorName: "Globex", Task: "replace PSU"},
	}

	buf, err := Build("PM Report", records, CrossVendorColumns())
	require.NoError(t, err)

	f, err := excelize.OpenReader(buf)
	require.NoError(t, err)
	defer f.Close()

	rows, err := f.GetRows("PM Report")
	require.NoError(t, err)
	require.Len(t, rows, 3, "header plus one row per record")

	require.Equal(t, "Vendor", rows[0][0])
	require.Equal(t, "Acme", rows[1][0])
	require.Equal(t, "Globex", rows[2][0])
	require.Equal(t, "swap fans", rows[1][3])
}

func TestBuild_MissingFieldsKeepAlignment(t *testing.T) {
	records := []models.ReportRow{{VendorName: "Acme"}}

	buf, err := Build("PM Report", records, CrossVendorColumns())
	require.NoError(t, err)

	f, err := excelize.OpenReader(buf)
	require.NoError(t, err)
	defer f.Close()

	// Every blank field renders as the placeholder, so the row keeps the
	// full column count.
	task, err := f.GetCellValue("PM Report", "D2")
	require.NoError(t, err)
	require.Equal(t, models.Placeholder, task)

	status, err := f.GetCellValue("PM Report", "L2")
	require.NoError(t, err)
	require.Equal(t, "On Progress", status)
}

func TestBuild_NoteHistoryFlattened(t *testing.T) {
	records := []models.ReportRow{{
		VendorName: "Acme",
		Note:       `[{"note":"fixed","user":"bob","timestamp":"2025-01-01"}]`,
	}}

	buf, err := Build("PM Report", records, CrossVendorColumns())
	require.NoError(t, err)

	f, err := excelize.OpenReader(buf)
	require.NoError(t, err)
	defer f.Close()

	note, err := f.GetCellValue("PM Report", "S2")
	require.NoError(t, err)
	require.Equal(t, "fixed (bob, 2025-01-01)", note)
}

func TestBuild_EmptyRecordSet(t *testing.T) {
	buf, err := Build("PM", nil, PMColumns())
	require.NoError(t, err)

	f, err := excelize.OpenReader(buf)
	require.NoError(t, err)
	defer f.Close()

	rows, err := f.GetRows("PM")
	require.NoError(t, err)
	require.Len(t, rows, 1, "header only")
}

func TestFileName(t *testing.T) {
	now, err := time.Parse("2006-01-02", "2025-01-31")
	require.NoError(t, err)
	require.Equal(t, "Report_2025-01-31.xlsx", FileName("Report", now))
}
