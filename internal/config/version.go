package config

import "fmt"

// CurrentVersion is the current config schema version
const CurrentVersion = 1

// CheckVersion rejects config files written for a newer schema. Zero means
// the file predates the version key and is read as the current schema.
func CheckVersion(version int) error {
	if version < 0 {
		return fmt.Errorf("invalid config version %d", version)
	}
	if version > CurrentVersion {
		return fmt.Errorf("config version %d is newer than supported version %d", version, CurrentVersion)
	}
	return nil
}
