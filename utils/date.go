package utils

import (
	"fmt"
	"time"
)

// BrasiliaTZ is the timezone all punch dates and times are recorded in.
var BrasiliaTZ = time.FixedZone("BRT", -3*60*60)

func BrasiliaNow() time.Time {
	return time.Now().In(BrasiliaTZ)
}

func MustParseDate(dateStr string) time.Time {
	t, _ := time.ParseInLocation("2006-01-02", dateStr, time.UTC)
	return t
}

// FormatDate renders a time as the yyyy-MM-dd wire format.
func FormatDate(t time.Time) string {
	return t.Format("2006-01-02")
}

// FormatHora renders a time as the HH:MM wire format used for punch fields.
func FormatHora(t time.Time) string {
	return t.Format("15:04")
}

func ParseISOTime(s string) (*time.Time, error) {
	if s == "" {
		return nil, fmt.Errorf("empty time string")
	}

	// Try standard RFC3339 format (ISO 8601)
	t, err := time.Parse(time.RFC3339, s)
	if err == nil {
		return &t, nil
	}

	// Try with nanoseconds (e.g. 2025-10-13T09:30:00.123Z)
	t, err = time.Parse(time.RFC3339Nano, s)
	if err == nil {
		return &t, nil
	}

	// Try fallback common formats
	layouts := []string{
		"2006-01-02 15:04:05",
		"2006-01-02T15:04:05",
		"2006-01-02",
	}
	for _, layout := range layouts {
		if tt, e := time.ParseInLocation(layout, s, time.UTC); e == nil {
			return &tt, nil
		}
	}

	return nil, fmt.Errorf("failed to parse time: %v", s)
}

// ValidarHora checks the HH:MM punch format.
func ValidarHora(s string) bool {
	if len(s) != 5 || s[2] != ':' {
		return false
	}
	_, err := time.Parse("15:04", s)
	return err == nil
}
