package service

import (
	"fmt"
	"time"
)

// ErrInvalidFilter marks filter validation failures so handlers can map
// them to 400 responses
type ErrInvalidFilter struct {
	Reason string
}

func (e ErrInvalidFilter) Error() string {
	return "invalid filter: " + e.Reason
}

// ValidateFilter checks the filter dimensions shared by trip and stats
// queries. Empty values are valid and mean no restriction.
func ValidateFilter(startDate, endDate string, hours []int) error {
	for _, d := range []string{startDate, endDate} {
		if d == "" {
			continue
		}
		if _, err := time.Parse("2006-01-02", d); err != nil {
			return ErrInvalidFilter{Reason: fmt.Sprintf("date %q is not YYYY-MM-DD", d)}
		}
	}
	if startDate != "" && endDate != "" && startDate > endDate {
		return ErrInvalidFilter{Reason: "startDate is after endDate"}
	}
	for _, h := range hours {
		if h < 0 || h > 23 {
			return ErrInvalidFilter{Reason: fmt.Sprintf("hour %d out of range 0-23", h)}
		}
	}
	return nil
}
