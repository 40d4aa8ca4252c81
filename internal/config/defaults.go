package config

// DefaultDataDirName is the data directory created under the user's home.
const DefaultDataDirName = ".fasting_tracker"

// DefaultLogFileName is the debug log written under the user's home.
const DefaultLogFileName = ".fasting_tracker_log.txt"

// DefaultTimeFormat is the Go layout used when displaying timestamps.
const DefaultTimeFormat = "2006-01-02 15:04:05"

// GetDefaults returns the default configuration values
func GetDefaults() map[string]interface{} {
	return map[string]interface{}{
		"data_dir":     "~/" + DefaultDataDirName,
		"log_file":     "~/" + DefaultLogFileName,
		"log_level":    "debug",
		"lock_timeout": 5,
		"color":        true,
		"time_format":  DefaultTimeFormat,
	}
}
