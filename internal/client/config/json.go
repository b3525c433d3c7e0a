package config

import (
	"encoding/json"
	"os"
	"time"

	"github.com/vaultic-app/vaultic/internal/flagx"
	"github.com/vaultic-app/vaultic/internal/timex"
)

// JsonConfig is a DTO used exclusively for JSON unmarshalling. It relies on
// timex.Duration so JSON can specify the timeout either as a string like
// "30s" or as integer nanoseconds.
type JsonConfig struct {
	EndpointURL    string         `json:"endpoint_url"`
	RequestTimeout timex.Duration `json:"request_timeout"`
	DeviceName     string         `json:"device_name"`
}

// parseJson overlays Config with values loaded from a JSON file resolved
// via the -c/-config flags. With no file configured it returns without
// touching cfg; read or unmarshal errors panic (the caller may recover).
// Only keys present in the file override existing values.
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

	if jc.EndpointURL != "" {
		cfg.EndpointURL = jc.EndpointURL
	}
	if jc.RequestTimeout.Duration != 0 {
		cfg.RequestTimeout = time.Duration(jc.RequestTimeout.Duration)
	}
	if jc.DeviceName != "" {
		cfg.DeviceName = jc.DeviceName
	}
}
