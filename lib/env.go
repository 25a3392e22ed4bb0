package lib

import (
	"os"
	"strings"
)

// GetEnvDefault returns value of env key,
// or defaultValue if key is not set or blank
func GetEnvDefault(key, defaultValue string) string {
	val, ok := os.LookupEnv(key)
	if !ok || strings.TrimSpace(val) == "" {
		return defaultValue
	}
	return val
}
