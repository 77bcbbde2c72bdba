// Package models defines the entity records exchanged with the maintenance
// backend, the paginated list envelope, and the per-entity filter sets.
// Field names follow the backend's JSON contract.
package models

import "encoding/json"

// Envelope is the backend's answer to a filtered list request. The echoed
// page and page_size are authoritative: the server clamps out-of-range
// pages, so callers must take pagination state from here, not from the
// request they issued.
type Envelope[R any] struct {
	Data       []R                        `json:"data"`
	TotalPages int                        `json:"total_pages"`
	Page       int                        `json:"page"`
	PageSize   int                        `json:"page_size"`
	ExtraData  map[string]json.RawMessage `json:"extra_data"`
}

// Vendor is a maintenance vendor.
type Vendor struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Audit
}

// Project belongs to exactly one vendor.
type Project struct {
	ID          string `json:"id"`
	VendorID    string `json:"vendor_id"`
	Name        string `json:"project_name"`
	ProjectType string `json:"project_type"`
	Audit
}

// PMRecord is a single project-maintenance task. IsVerified is tri-state:
// nil means still in progress, true verified, false sent back for revision.
// Note holds the JSON-encoded revision history; see NoteHistory.
type PMRecord struct {
	ID             string `json:"id"`
	ProjectID      string `json:"project_id"`
	Description    string `json:"pm_description"`
	Solution       string `json:"pm_solution"`
	Type           string `json:"pm_type"`
	PICName        string `json:"pic_name"`
	PICEmail       string `json:"pic_email"`
	PICUnit        string `json:"pic_unit"`
	ProjectDate    string `json:"pm_project_date"`
	CompletionDate string `json:"pm_completion_date"`
	IsVerified     *bool  `json:"is_verified"`
	Note           string `json:"note"`
	VerifiedBy     string `json:"verified_by"`
	VerifiedAt     string `json:"verified_at"`
	Audit
}

// PMDetail is a PM record together with its parent project summary,
// as returned by /x/pm-detail.
type PMDetail struct {
	PM      PMRecord `json:"pm"`
	Project Project  `json:"project"`
}

// User is a console account.
type User struct {
	ID       string `json:"id"`
	Username string `json:"username"`
	Name     string `json:"name"`
	Email    string `json:"email"`
	UnitID   string `json:"unit_id"`
	RoleID   string `json:"role_id"`
	Audit
}

// Unit is an organizational unit.
type Unit struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Audit
}

// Role names a permission bundle; the capability flags themselves only ever
// reach the client inside the credential token.
type Role struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Audit
}

// ReportRow is one row of the cross-vendor report source (/x/report).
// It is a denormalized join shaped by the backend for export.
type ReportRow struct {
	VendorName     string `json:"vendor_name"`
	ProjectName    string `json:"project_name"`
	ProjectType    string `json:"project_type"`
	Task           string `json:"pm_task"`
	Solution       string `json:"pm_solution"`
	Type           string `json:"pm_type"`
	PICName        string `json:"pic_name"`
	PICEmail       string `json:"pic_email"`
	PICUnit        string `json:"pic_unit"`
	ProjectDate    string `json:"pm_project_date"`
	CompletionDate string `json:"pm_completion_date"`
	IsVerified     *bool  `json:"is_verified"`
	VerifiedBy     string `json:"pm_verified_by"`
	VerifiedAt     string `json:"pm_verified_at"`
	CreatedAt      string `json:"pm_created_at"`
	CreatedBy      string `json:"pm_created_by"`
	UpdatedAt      string `json:"pm_updated_at"`
	UpdatedBy      string `json:"pm_updated_by"`
	Note           string `json:"note"`
}

// Audit carries the server-assigned audit metadata common to all records.
type Audit struct {
	CreatedAt string `json:"created_at"`
	CreatedBy string `json:"created_by"`
	UpdatedAt string `json:"updated_at"`
	UpdatedBy string `json:"updated_by"`
}

// StatusText maps the tri-state verification flag to its display string.
func StatusText(isVerified *bool) string {
	switch {
	case isVerified == nil:
		return "On Progress"
	case *isVerified:
		return "Verified"
	default:
		return "Need Revision"
	}
}
