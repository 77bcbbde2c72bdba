package config

import (
	"encoding/json"
	"os"

	"github.com/Fyandono/project-maintenance-system/internal/flagx"
	"github.com/Fyandono/project-maintenance-system/internal/timex"
)

// JsonConfig is a DTO used exclusively for JSON unmarshalling. It relies on
// timex.Duration so JSON can specify intervals either as strings like
// "300ms" or as integer nanoseconds.
type JsonConfig struct {
	BaseURL         string         `json:"base_url"`
	RequestTimeout  timex.Duration `json:"request_timeout"`
	DebounceWindow  timex.Duration `json:"debounce_window"`
	DefaultPageSize int            `json:"default_page_size"`
	SessionDBPath   string         `json:"session_db_path"`
}

// parseJson overlays Config with values loaded from the JSON file named by
// the -c/-config flags. Absent flags mean no JSON stage. Read or unmarshal
// errors panic; the process has no useful way to continue half-configured.
func parseJson(cfg *Config) {
	jsonConfigFile := flagx.JsonConfigFlags()
	if jsonConfigFile == "" {
		return
	}

	data, err := os.ReadFile(jsonConfigFile)
	if err != nil {
		panic(err)
	}

	var jc JsonConfig
	if err := json.Unmarshal(data, &jc); err != nil {
		panic(err)
	}

	if jc.BaseURL != "" {
		cfg.BaseURL = jc.BaseURL
	}
	if jc.RequestTimeout.Duration > 0 {
		cfg.RequestTimeout = jc.RequestTimeout.Duration
	}
	if jc.DebounceWindow.Duration > 0 {
		cfg.DebounceWindow = jc.DebounceWindow.Duration
	}
	if jc.DefaultPageSize > 0 {
		cfg.DefaultPageSize = jc.DefaultPageSize
	}
	if jc.SessionDBPath != "" {
		cfg.SessionDBPath = jc.SessionDBPath
	}
}
