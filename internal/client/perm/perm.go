// Package perm is the client-side permission gate: a fixed capability
// vocabulary shared with the backend contract, a pure capability check,
// and the two-stage routing decision (authentication, then capability).
package perm

import (
	"sort"
	"strings"
)

// Capability is a named boolean permission held by a principal, gating one
// class of action. The set is closed: names outside this vocabulary are
// rejected when the principal is decoded, not silently treated as false.
type Capability string

const (
	CapGetVendor  Capability = "can_get_vendor"
	CapAddVendor  Capability = "can_add_vendor"
	CapEditVendor Capability = "can_edit_vendor"

	CapGetProject  Capability = "can_get_project"
	CapAddProject  Capability = "can_add_project"
	CapEditProject Capability = "can_edit_project"

	CapGetPM    Capability = "can_get_pm"
	CapAddPM    Capability = "can_add_pm"
	CapEditPM   Capability = "can_edit_pm"
	CapVerifyPM Capability = "can_verify_pm"

	CapGetUser  Capability = "can_get_user"
	CapAddUser  Capability = "can_add_user"
	CapEditUser Capability = "can_edit_user"

	CapGetUnit  Capability = "can_get_unit"
	CapAddUnit  Capability = "can_add_unit"
	CapEditUnit Capability = "can_edit_unit"

	CapGetRole  Capability = "can_get_role"
	CapAddRole  Capability = "can_add_role"
	CapEditRole Capability = "can_edit_role"

	CapGetReport      Capability = "can_get_report"
	CapChangePassword Capability = "can_change_password"
)

var known = map[Capability]struct{}{
	CapGetVendor: {}, CapAddVendor: {}, CapEditVendor: {},
	CapGetProject: {}, CapAddProject: {}, CapEditProject: {},
	CapGetPM: {}, CapAddPM: {}, CapEditPM: {}, CapVerifyPM: {},
	CapGetUser: {}, CapAddUser: {}, CapEditUser: {},
	CapGetUnit: {}, CapAddUnit: {}, CapEditUnit: {},
	CapGetRole: {}, CapAddRole: {}, CapEditRole: {},
	CapGetReport: {}, CapChangePassword: {},
}

// Known reports whether name belongs to the capability vocabulary.
func Known(name string) bool {
	_, ok := known[Capability(name)]
	return ok
}

// Set is the capability flags of one principal. Absence denies.
type Set map[Capability]bool

// Has reports whether the capability is explicitly granted.
func (s Set) Has(c Capability) bool {
	return s[c]
}

// routeCapabilities maps a navigable path prefix to the capability gating
// it. Unmapped paths require authentication only.
var routeCapabilities = map[string]Capability{
	"/vendor":  CapGetVendor,
	"/project": CapGetProject,
	"/pm":      CapGetPM,
	"/user":    CapGetUser,
	"/unit":    CapGetUnit,
	"/role":    CapGetRole,
	"/report":  CapGetReport,
}

// RequiredCapability resolves the capability gating a path by
// longest-matching-prefix. ok is false for unmapped paths.
func RequiredCapability(path string) (Capability, bool) {
	prefixes := make([]string, 0, len(routeCapabilities))
	for p := range routeCapabilities {
		prefixes = append(prefixes, p)
	}
	sort.Slice(prefixes, func(i, j int) bool { return len(prefixes[i]) > len(prefixes[j]) })

	for _, prefix := range prefixes {
		if path == prefix || strings.HasPrefix(path, prefix+"/") {
			return routeCapabilities[prefix], true
		}
	}
	return "", false
}

// Decision is the outcome of the two-stage routing check.
type Decision int

const (
	// DecisionAllow lets the navigation proceed.
	DecisionAllow Decision = iota
	// DecisionLogin redirects to the login screen, preserving the
	// originally requested location.
	DecisionLogin
	// DecisionUnauthorized redirects to the unauthorized page: the
	// principal is known but lacks the required capability.
	DecisionUnauthorized
)

// Decide gates navigation to path. caps is nil for an unauthenticated
// principal. There are no retry semantics: the decision is final for the
// current session state.
func Decide(authenticated bool, caps Set, path string) Decision {
	if !authenticated {
		return DecisionLogin
	}
	if required, ok := RequiredCapability(path); ok && !caps.Has(required) {
		return DecisionUnauthorized
	}
	return DecisionAllow
}
