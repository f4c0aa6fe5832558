package notification

import (
	"context"
	"errors"
)

// Channel is one concrete outbound transport in the fallback chain. Each
// implementation validates its own configuration before attempting a send;
// missing configuration is a channel-local failure, not a system fault.
type Channel interface {
	Name() string
	Send(ctx context.Context, sender MessageSender, to string, payload AlertPayload) (string, error)
}

const whatsAppPrefix = "whatsapp:"

type whatsAppFreeform struct {
	from string
}

func (c whatsAppFreeform) Name() string { return "whatsapp-freeform" }

func (c whatsAppFreeform) Send(ctx context.Context, sender MessageSender, to string, payload AlertPayload) (string, error) {
	if c.from == "" {
		return "", errors.New("no WhatsApp sender number configured")
	}
	return sender.SendFreeform(ctx, c.from, whatsAppPrefix+to, payload.Text)
}

type whatsAppTemplate struct {
	from        string
	templateSID string
}

func (c whatsAppTemplate) Name() string { return "whatsapp-template" }

func (c whatsAppTemplate) Send(ctx context.Context, sender MessageSender, to string, payload AlertPayload) (string, error) {
	if c.from == "" {
		return "", errors.New("no WhatsApp sender number configured")
	}
	if c.templateSID == "" {
		return "", errors.New("no WhatsApp template SID configured")
	}
	return sender.SendTemplate(ctx, c.from, whatsAppPrefix+to, c.templateSID, payload.TemplateVars)
}

type smsFallback struct {
	from string
}

func (c smsFallback) Name() string { return "sms" }

func (c smsFallback) Send(ctx context.Context, sender MessageSender, to string, payload AlertPayload) (string, error) {
	if c.from == "" {
		return "", errors.New("no SMS sender number configured")
	}
	return sender.SendPlain(ctx, c.from, to, payload.Text)
}
