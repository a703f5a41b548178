package config

import (
	"encoding/json"
	"os"
	"time"

	"github.com/dprasetya/storyline/internal/flagx"
)

// JsonConfig is a DTO used exclusively for JSON unmarshalling. The interval
// is given in seconds so the file stays hand-editable.
type JsonConfig struct {
	ServerBaseURL          string `json:"server_base_url"`
	DatabasePath           string `json:"database_path"`
	CredentialsPath        string `json:"credentials_path"`
	OnlineCheckIntervalSec int    `json:"online_check_interval_sec"`
	PageSize               int    `json:"page_size"`
	VapidPublicKey         string `json:"vapid_public_key"`
}

// parseJson overlays Config with values loaded from a JSON file named by the
// -c/-config flag. Absent file path means no JSON is loaded. Only fields
// present in the file override the config; zero values are left alone.
// Read or unmarshal errors panic (caller may recover).
func parseJson(cfg *Config) {
	jsonConfigFile := flagx.JsonConfigFlags()
	if jsonConfigFile == "" {
		return
	}

	var jc JsonConfig

	data, err := os.ReadFile(jsonConfigFile)
	if err != nil {
		panic(err)
	}
	if err := json.Unmarshal(data, &jc); err != nil {
		panic(err)
	}

	if jc.ServerBaseURL != "" {
		cfg.ServerBaseURL = jc.ServerBaseURL
	}
	if jc.DatabasePath != "" {
		cfg.DatabasePath = jc.DatabasePath
	}
	if jc.CredentialsPath != "" {
		cfg.CredentialsPath = jc.CredentialsPath
	}
	if jc.OnlineCheckIntervalSec > 0 {
		cfg.OnlineCheckInterval = time.Duration(jc.OnlineCheckIntervalSec) * time.Second
	}
	if jc.PageSize > 0 {
		cfg.PageSize = jc.PageSize
	}
	if jc.VapidPublicKey != "" {
		cfg.VapidPublicKey = jc.VapidPublicKey
	}
}
