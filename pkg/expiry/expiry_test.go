package expiry

import (
	"testing"
	"time"
)

var ref = time.Date(2025, time.March, 10, 12, 0, 0, 0, time.UTC)

func TestEvaluateBoundaryDays(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name string
		days int
		want Status
	}{
		{name: "one day past", days: -1, want: StatusExpired},
		{name: "same moment", days: 0, want: StatusExpiringSoon},
		{name: "window edge", days: 2, want: StatusExpiringSoon},
		{name: "past window", days: 3, want: StatusFresh},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			got := Evaluate(ref, ref.AddDate(0, 0, tt.days))
			if got != tt.want {
				t.Fatalf("Evaluate(%+d days) = %v, want %v", tt.days, got, tt.want)
			}
		})
	}
}

func TestEvaluatePartialDaysRoundUp(t *testing.T) {
	t.Parallel()
	// An hour past two full days rounds up to three days out.
	if got := Evaluate(ref, ref.Add(49*time.Hour)); got != StatusFresh {
		t.Fatalf("Evaluate(+49h) = %v, want Fresh", got)
	}
	// An hour in the past is not yet a whole day past.
	if got := Evaluate(ref, ref.Add(-time.Hour)); got != StatusExpiringSoon {
		t.Fatalf("Evaluate(-1h) = %v, want ExpiringSoon", got)
	}
	if got := Evaluate(ref, ref.Add(-25*time.Hour)); got != StatusExpired {
		t.Fatalf("Evaluate(-25h) = %v, want Expired", got)
	}
}

func TestTimeLeftPhrase(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name   string
		offset time.Duration
		want   string
	}{
		{name: "already expired", offset: -time.Minute, want: "expired"},
		{name: "exact expiry", offset: 0, want: "expired"},
		{name: "single day", offset: 25 * time.Hour, want: "in 1 day"},
		{name: "plural days", offset: 49 * time.Hour, want: "in 2 days"},
		{name: "plural hours", offset: 5 * time.Hour, want: "in 5 hours"},
		{name: "single hour", offset: 90 * time.Minute, want: "in 1 hour"},
		{name: "under an hour", offset: 20 * time.Minute, want: "in 0 hours"},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			got := TimeLeftPhrase(ref, ref.Add(tt.offset))
			if got != tt.want {
				t.Fatalf("TimeLeftPhrase(%v) = %q, want %q", tt.offset, got, tt.want)
			}
		})
	}
}

func TestStatusString(t *testing.T) {
	t.Parallel()
	if StatusExpired.String() != "Expired" || StatusExpiringSoon.String() != "ExpiringSoon" || StatusFresh.String() != "Fresh" {
		t.Fatalf("unexpected status names: %v %v %v", StatusExpired, StatusExpiringSoon, StatusFresh)
	}
}
