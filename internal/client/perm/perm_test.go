package perm

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestKnown(t *testing.T) {
	require.True(t, Known("can_get_vendor"))
	require.True(t, Known("can_verify_pm"))
	require.False(t, Known("can_fly"))
	require.False(t, Known(""))
}

func TestSetHas_AbsenceDenies(t *testing.T) {
	s := Set{CapGetVendor: true, CapAddVendor: false}
	require.True(t, s.Has(CapGetVendor))
	require.False(t, s.Has(CapAddVendor))
	require.False(t, s.Has(CapGetReport))

	var nilSet Set
	require.False(t, nilSet.Has(CapGetVendor))
}

func TestRequiredCapability(t *testing.T) {
	tests := []struct {
		path string
		want Capability
		ok   bool
	}{
		{"/vendor", CapGetVendor, true},
		{"/vendor/123", CapGetVendor, true},
		{"/project", CapGetProject, true},
		{"/pm", CapGetPM, true},
		{"/pm/abc/detail", CapGetPM, true},
		{"/report", CapGetReport, true},
		{"/profile", "", false},
		{"/", "", false},
		// A prefix must match on a path boundary.
		{"/pmx", "", false},
		{"/vendors", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			got, ok := RequiredCapability(tt.path)
			require.Equal(t, tt.ok, ok)
			require.Equal(t, tt.want, got)
		})
	}
}

func TestDecide(t *testing.T) {
	caps := Set{CapGetVendor: true}

	require.Equal(t, DecisionLogin, Decide(false, nil, "/vendor"))
	require.Equal(t, DecisionAllow, Decide(true, caps, "/vendor"))
	require.Equal(t, DecisionUnauthorized, Decide(true, caps, "/project"))

	// Unmapped paths require authentication only.
	require.Equal(t, DecisionAllow, Decide(true, caps, "/profile"))
	require.Equal(t, DecisionLogin, Decide(false, caps, "/profile"))
}
