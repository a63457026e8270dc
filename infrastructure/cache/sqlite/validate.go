// ABOUTME: Key and value checks applied before SQLite writes
// ABOUTME: Oversized input is rejected and odd keys are logged

package sqlite

import (
	"errors"
	"fmt"
	"strings"

	"splitview-api/core/interfaces"
)

const (
	maxKeyLength   = 255
	maxValueLength = 1024 * 1024
	maxKeyPreview  = 50
)

// suspiciousPatterns are logged but allowed. Queries are parameterized.
var suspiciousPatterns = []string{"--", "/*", "*/", ";", "'", "\"", "\\", "\n", "\r", "\t"}

// validateKey rejects keys SQLite cannot store safely
func validateKey(key string, logger interfaces.Logger) error {
	if key == "" {
		return errors.New("key cannot be empty")
	}
	if len(key) > maxKeyLength {
		return fmt.Errorf("key too long: max %d characters", maxKeyLength)
	}
	if strings.Contains(key, "\x00") {
		return errors.New("key cannot contain null bytes")
	}

	if logger == nil {
		return nil
	}
	for _, pattern := range suspiciousPatterns {
		if strings.Contains(key, pattern) {
			logger.Warn("Suspicious pattern detected in cache key", map[string]interface{}{
				"pattern":     pattern,
				"key_length":  len(key),
				"key_preview": truncateKey(key),
			})
		}
	}

	return nil
}

func truncateKey(key string) string {
	if len(key) <= maxKeyPreview {
		return key
	}
	return key[:maxKeyPreview] + "..."
}

func validateValue(value []byte) error {
	if len(value) == 0 {
		return errors.New("value cannot be empty")
	}
	if len(value) > maxValueLength {
		return fmt.Errorf("value too large: max %d bytes", maxValueLength)
	}
	return nil
}
