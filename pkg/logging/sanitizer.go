package logging

import (
	"regexp"
	"strings"
)

// RedactedText is the replacement text for masked data.
const RedactedText = "[REDACTED]"

var (
	// Matches email addresses in generated sample data.
	emailPattern = regexp.MustCompile(`[A-Za-z0-9._%+-]+@[A-Za-z0-9.-]+\.[A-Za-z]{2,}`)

	// Matches local mobile numbers (08xx, 9-13 digits total).
	phonePattern = regexp.MustCompile(`\b08\d{7,11}\b`)

	// Matches connection string credentials (user:pass@host format).
	connStringPattern = regexp.MustCompile(`://[^:]+:[^@]+@[^/\s]+`)
)

// MaskPII masks email addresses and phone numbers in a string. Generated
// records are synthetic, but samples logged at debug level can end up in
// shared log sinks, so they are masked the same as real PII would be.
func MaskPII(s string) string {
	if s == "" {
		return ""
	}
	masked := emailPattern.ReplaceAllString(s, RedactedText)
	return phonePattern.ReplaceAllString(masked, RedactedText)
}

// MaskRecordValue masks a single field value when its name suggests PII.
func MaskRecordValue(fieldName, value string) string {
	lower := strings.ToLower(fieldName)
	if strings.Contains(lower, "email") || strings.Contains(lower, "phone") {
		return RedactedText
	}
	return value
}

// SanitizeConnectionString removes credentials from a connection string
// before it is logged.
func SanitizeConnectionString(connStr string) string {
	if connStr == "" {
		return ""
	}
	return connStringPattern.ReplaceAllString(connStr, "://"+RedactedText+"@"+RedactedText)
}
