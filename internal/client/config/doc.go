// Package config loads runtime configuration for the Vaultic CLI.
//
// Sources & precedence
//
//  1. Built-in defaults (see (*Config).LoadDefaults).
//  2. Optional JSON file selected via the -c or -config flags.
//  3. Command-line flags, which override earlier values.
//
// Supported flags
//
//	-a string   base URL of the Vaultic server endpoint
//	-t int      request timeout (seconds)
//	-n string   device display name shown in the server's session list
//
// # JSON schema
//
// Durations use timex.Duration, so values can be strings like "30s" or
// integer nanoseconds:
//
//	{
//	  "endpoint_url":    "https://vault.example.com/api",
//	  "request_timeout": "30s",
//	  "device_name":     "work laptop"
//	}
package config
