package notification

import (
	"fmt"
	"strings"
	"time"

	"food-expiry-tracker/pkg/expiry"
)

const prettyDateLayout = "Jan 2, 2006"

// AlertItem is the per-item subset the alert body needs.
type AlertItem struct {
	ItemName   string
	Category   string
	ExpiryDate time.Time
}

// ExpiryGroup is the transient per-user aggregation built for one job run.
type ExpiryGroup struct {
	UserID uint
	Name   string
	Phone  string
	Items  []AlertItem
}

// AlertPayload is what one dispatch attempt carries: the free-form body and
// the two pre-approved template variables.
type AlertPayload struct {
	Text         string
	TemplateVars map[string]string
}

// BuildAlertText renders the itemized expiry warning for one recipient.
func BuildAlertText(items []AlertItem, userName string, now time.Time) string {
	lines := make([]string, 0, len(items))
	for _, i := range items {
		cat := ""
		if i.Category != "" {
			cat = fmt.Sprintf(" (%s)", i.Category)
		}
		lines = append(lines, fmt.Sprintf("• %s%s — %s (%s)",
			i.ItemName, cat, i.ExpiryDate.Format(prettyDateLayout), expiry.TimeLeftPhrase(now, i.ExpiryDate)))
	}

	greeting := ""
	if userName != "" {
		greeting = fmt.Sprintf("Hi %s, ", userName)
	}
	return fmt.Sprintf("⚠ Food Alert!\n%sthese item(s) will expire soon:\n\n%s\n\nPlease check your inventory.",
		greeting, strings.Join(lines, "\n"))
}

// BuildNothingExpiringText is the positive confirmation sent by the daily
// today-exact job when nothing qualifies. It deliberately contains no bullets.
func BuildNothingExpiringText(userName string) string {
	return fmt.Sprintf("⚠ Food Alert!\nHi %s — No food is expiring today. ✅", userName)
}

// TemplateVariables fills the fixed two-variable set of the pre-approved chat
// template: "1" the send date (dd/mm/yyyy) and "2" the send time (12-hour).
// Callers pass the instant the alert is sent, not when data was fetched.
func TemplateVariables(now time.Time) map[string]string {
	return map[string]string{
		"1": now.Format("02/01/2006"),
		"2": strings.ToLower(now.Format("3:04 PM")),
	}
}
