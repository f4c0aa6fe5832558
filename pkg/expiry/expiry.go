package expiry

import (
	"fmt"
	"math"
	"time"
)

// Status is the categorical freshness of an item relative to a reference instant.
type Status int

const (
	StatusFresh Status = iota
	StatusExpiringSoon
	StatusExpired
)

// soonWindowDays is the inclusive lookahead used for proactive alerts.
const soonWindowDays = 2

func (s Status) String() string {
	switch s {
	case StatusExpired:
		return "Expired"
	case StatusExpiringSoon:
		return "ExpiringSoon"
	default:
		return "Fresh"
	}
}

// daysUntil returns the ceiling day difference between expiry and ref,
// so a partial day still counts as a full day toward the threshold.
func daysUntil(ref, expiryDate time.Time) int {
	return int(math.Ceil(expiryDate.Sub(ref).Hours() / 24))
}

// Evaluate computes the freshness status of an item expiring at expiryDate
// as seen from ref. Expired means expiry lies at least one whole day in the
// past; 0 to 2 days out inclusive is ExpiringSoon.
func Evaluate(ref, expiryDate time.Time) Status {
	days := daysUntil(ref, expiryDate)
	switch {
	case days < 0:
		return StatusExpired
	case days <= soonWindowDays:
		return StatusExpiringSoon
	default:
		return StatusFresh
	}
}

// TimeLeftPhrase renders the remaining shelf life as a short human phrase:
// "expired", "in N day(s)" when at least one whole day remains, otherwise
// "in N hour(s)".
func TimeLeftPhrase(ref, expiryDate time.Time) string {
	left := expiryDate.Sub(ref)
	if left <= 0 {
		return "expired"
	}

	days := int(left.Hours()) / 24
	hours := int(left.Hours()) % 24
	if days > 0 {
		if days > 1 {
			return fmt.Sprintf("in %d days", days)
		}
		return "in 1 day"
	}
	if hours == 1 {
		return "in 1 hour"
	}
	return fmt.Sprintf("in %d hours", hours)
}
