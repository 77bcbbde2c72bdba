package models

import (
	"encoding/json"
	"fmt"
	"strings"
)

// Placeholder renders for missing/null fields so exported columns keep
// their alignment across rows.
const Placeholder = "-"

// NoteEvent is one entry of a PM record's revision history. The backend
// stores the history as a JSON-encoded array inside the note field.
type NoteEvent struct {
	Note      string `json:"note"`
	User      string `json:"user"`
	Timestamp string `json:"timestamp"`
}

// ParseNoteHistory decodes the JSON-encoded history array. A blank field
// yields an empty history; a field that is not valid JSON is treated as a
// single free-text note with no attribution.
func ParseNoteHistory(raw string) []NoteEvent {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return nil
	}

	var events []NoteEvent
	if err := json.Unmarshal([]byte(raw), &events); err != nil {
		return []NoteEvent{{Note: raw}}
	}
	return events
}

// FlattenNote renders the history as a single display string, one segment
// per event, joined with "; ". Used by tables and the report exporter.
func FlattenNote(raw string) string {
	events := ParseNoteHistory(raw)
	if len(events) == 0 {
		return Placeholder
	}

	segments := make([]string, 0, len(events))
	for _, e := range events {
		switch {
		case e.User == "" && e.Timestamp == "":
			segments = append(segments, e.Note)
		case e.Timestamp == "":
			segments = append(segments, fmt.Sprintf("%s (%s)", e.Note, e.User))
		default:
			segments = append(segments, fmt.Sprintf("%s (%s, %s)", e.Note, e.User, e.Timestamp))
		}
	}
	return strings.Join(segments, "; ")
}
