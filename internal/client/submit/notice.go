package submit

import (
	"time"

	"github.com/google/uuid"
)

// Level is the polarity of a user-visible notice.
type Level string

const (
	LevelSuccess Level = "success"
	LevelFailure Level = "failure"
)

// Notice is a banner shown to the user after a submission resolves.
type Notice struct {
	ID    string
	Level Level
	Text  string
	At    time.Time
}

// Sink receives notices. The console prints them as status banners.
type Sink interface {
	Publish(n Notice)
}

func newNotice(level Level, text string) Notice {
	return Notice{
		ID:    uuid.NewString(),
		Level: level,
		Text:  text,
		At:    time.Now(),
	}
}
