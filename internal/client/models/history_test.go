package models

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestParseNoteHistory_Empty(t *testing.T) {
	require.Empty(t, ParseNoteHistory(""))
	require.Empty(t, ParseNoteHistory("   "))
}

func TestParseNoteHistory_JSONHistory(t *testing.T) {
	raw := `[{"note":"fixed","user":"bob","timestamp":"2025-01-01"},{"note":"recheck","user":"eve","timestamp":"2025-01-02"}]`
	events := ParseNoteHistory(raw)
	require.Len(t, events, 2)
	require.Equal(t, "fixed", events[0].Note)
	require.Equal(t, "bob", events[0].User)
	require.Equal(t, "2025-01-02", events[1].Timestamp)
}

func TestParseNoteHistory_FreeText(t *testing.T) {
	events := ParseNoteHistory("please redo the cabling")
	require.Len(t, events, 1)
	require.Equal(t, "please redo the cabling", events[0].Note)
	require.Empty(t, events[0].User)
}

func TestFlattenNote(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want string
	}{
		{"empty", "", "-"},
		{"free text", "loose note", "loose note"},
		{
			"full history",
			`[{"note":"fixed","user":"bob","timestamp":"2025-01-01"}]`,
			"fixed (bob, 2025-01-01)",
		},
		{
			"no timestamp",
			`[{"note":"fixed","user":"bob"}]`,
			"fixed (bob)",
		},
		{
			"joined",
			`[{"note":"a","user":"u","timestamp":"t"},{"note":"b","user":"v","timestamp":"w"}]`,
			"a (u, t); b (v, w)",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.want, FlattenNote(tt.raw))
		})
	}
}
