package config

import "os"

const defaultConfigFile = "records.yaml"

// ConfigPath returns the config file location: $RECORDS_CONFIG if set,
// otherwise records.yaml in the working directory.
func ConfigPath() string {
	if v := os.Getenv("RECORDS_CONFIG"); v != "" {
		return v
	}
	return defaultConfigFile
}
