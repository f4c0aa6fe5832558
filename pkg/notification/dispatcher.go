package notification

import (
	"context"
	"fmt"
	"strings"

	"food-expiry-tracker/domain"

	"github.com/gofiber/fiber/v2/log"
	"github.com/google/uuid"
)

type (
	// DispatchResult reports how a payload left the system: which channel
	// carried it and the provider message identifier, or that dispatch was
	// skipped because no messaging client is configured.
	DispatchResult struct {
		Channel    string
		MessageSID string
		Skipped    bool
	}

	// Dispatcher delivers one AlertPayload to one phone number through an
	// ordered fallback chain, stopping at the first success. A nil sender
	// means credentials were never configured and every dispatch is skipped.
	Dispatcher struct {
		sender   MessageSender
		channels []Channel
	}

	DispatcherConfig struct {
		WhatsAppFrom string
		TemplateSID  string
		SMSFrom      string
	}
)

func NewDispatcher(sender MessageSender, cfg DispatcherConfig) *Dispatcher {
	return &Dispatcher{
		sender: sender,
		channels: []Channel{
			whatsAppFreeform{from: cfg.WhatsAppFrom},
			whatsAppTemplate{from: cfg.WhatsAppFrom, templateSID: cfg.TemplateSID},
			smsFallback{from: cfg.SMSFrom},
		},
	}
}

// Dispatch tries each channel in order. Per-channel failures are logged and
// swallowed; only the exhaustion of every channel is surfaced as an error.
func (d *Dispatcher) Dispatch(ctx context.Context, to string, payload AlertPayload) (DispatchResult, error) {
	if d.sender == nil {
		log.Warnf("%v, alert to %s skipped", domain.ErrMessagingNotConfigured, to)
		return DispatchResult{Skipped: true}, nil
	}

	// One attempt id ties the chain's log lines together.
	attemptID := uuid.NewString()
	reasons := make([]string, 0, len(d.channels))
	for _, ch := range d.channels {
		sid, err := ch.Send(ctx, d.sender, to, payload)
		if err != nil {
			log.Warnf("dispatch %s: %s failed for %s: %v", attemptID, ch.Name(), to, err)
			reasons = append(reasons, fmt.Sprintf("%s: %v", ch.Name(), err))
			continue
		}
		log.Infof("dispatch %s: %s sent to %s, sid %s", attemptID, ch.Name(), to, sid)
		return DispatchResult{Channel: ch.Name(), MessageSID: sid}, nil
	}

	return DispatchResult{}, fmt.Errorf("%w for %s: %s",
		domain.ErrChannelsExhausted, to, strings.Join(reasons, "; "))
}
