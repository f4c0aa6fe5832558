package domain

import "errors"

const (
	NotifyStatusSent    = "sent"
	NotifyStatusSkipped = "skipped"
	NotifyStatusNoItems = "no_items"
)

var (
	MessageSuccessSendAlert    = "expiry alert dispatched"
	MessageNoExpiringItems     = "no expiring-soon items for this user"
	MessageAlertSkipped        = "alert skipped, messaging client not configured"
	MessageFailedSendAlert     = "failed to send expiry alert"
	MessageFailedNotifyRequest = "failed to process notification request"

	ErrInvalidUserID          = errors.New("user id must be a positive integer")
	ErrInvalidPhone           = errors.New("user phone is missing or not in international format")
	ErrChannelsExhausted      = errors.New("all alert channels exhausted")
	ErrMessagingNotConfigured = errors.New("messaging client not configured")
)

// NotifyUserResponse is the outcome returned to the on-demand notification
// caller. It carries the dispatch result, never the message body.
type NotifyUserResponse struct {
	Status     string `json:"status"`
	Channel    string `json:"channel,omitempty"`
	MessageSID string `json:"message_sid,omitempty"`
}
