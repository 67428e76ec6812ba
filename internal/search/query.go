package search

import (
	"fmt"
	"strings"
	"time"
)

// DateLayout is the accepted format for date searches
const DateLayout = "2006-01-02"

// CVEQuery searches for a CVE identifier as a plain keyword
func CVEQuery(id string) string {
	return strings.TrimSpace(id)
}

// NewCVEsQuery matches CVE repositories created after since
func NewCVEsQuery(since time.Time) string {
	return fmt.Sprintf("CVE created:>%s", since.UTC().Format("2006-01-02T15:04:05Z"))
}

// DateQuery matches CVE repositories created on day
func DateQuery(day time.Time) string {
	return fmt.Sprintf("CVE created:%s", day.Format(DateLayout))
}

// KeywordQuery searches for free-text keywords
func KeywordQuery(keywords string) string {
	return strings.TrimSpace(keywords)
}

// ParseDate parses a YYYY-MM-DD date
func ParseDate(s string) (time.Time, error) {
	t, err := time.Parse(DateLayout, strings.TrimSpace(s))
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date %q, expected YYYY-MM-DD: %w", s, err)
	}

	return t, nil
}
