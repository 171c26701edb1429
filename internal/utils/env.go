package utils

import "os"

// GetEnv returns the value of key, or defaultValue when the variable is
// unset. An empty-but-set variable is returned as is.
func GetEnv(key, defaultValue string) string {
	if value, ok := os.LookupEnv(key); ok {
		return value
	}
	return defaultValue
}
