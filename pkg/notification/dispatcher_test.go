package notification

import (
	"context"
	"errors"
	"strings"
	"testing"

	"food-expiry-tracker/domain"
)

// fakeSender counts calls per send operation and fails the operations listed
// in failing.
type fakeSender struct {
	freeformCalls int
	templateCalls int
	plainCalls    int
	failing       map[string]error

	lastTo   string
	lastBody string
	lastVars map[string]string
}

func (f *fakeSender) SendFreeform(_ context.Context, _, to, body string) (string, error) {
	f.freeformCalls++
	f.lastTo, f.lastBody = to, body
	if err := f.failing["freeform"]; err != nil {
		return "", err
	}
	return "SM-freeform", nil
}

func (f *fakeSender) SendTemplate(_ context.Context, _, to, _ string, vars map[string]string) (string, error) {
	f.templateCalls++
	f.lastTo, f.lastVars = to, vars
	if err := f.failing["template"]; err != nil {
		return "", err
	}
	return "SM-template", nil
}

func (f *fakeSender) SendPlain(_ context.Context, _, to, body string) (string, error) {
	f.plainCalls++
	f.lastTo, f.lastBody = to, body
	if err := f.failing["plain"]; err != nil {
		return "", err
	}
	return "SM-plain", nil
}

var testConfig = DispatcherConfig{
	WhatsAppFrom: "whatsapp:+14155550100",
	TemplateSID:  "HX0000000000000000000000000000000a",
	SMSFrom:      "+14155550101",
}

var testPayload = AlertPayload{
	Text:         "⚠ Food Alert!\ntest body",
	TemplateVars: map[string]string{"1": "10/03/2025", "2": "3:04 pm"},
}

func TestDispatchFirstChannelWins(t *testing.T) {
	t.Parallel()
	sender := &fakeSender{}
	d := NewDispatcher(sender, testConfig)

	result, err := d.Dispatch(context.Background(), "+911234567890", testPayload)
	if err != nil {
		t.Fatalf("Dispatch: %v", err)
	}
	if result.Channel != "whatsapp-freeform" || result.MessageSID != "SM-freeform" {
		t.Fatalf("unexpected result: %+v", result)
	}
	if sender.freeformCalls != 1 {
		t.Fatalf("freeform calls = %d, want 1", sender.freeformCalls)
	}
	if sender.templateCalls != 0 || sender.plainCalls != 0 {
		t.Fatalf("later channels invoked: template=%d plain=%d", sender.templateCalls, sender.plainCalls)
	}
	if sender.lastTo != "whatsapp:+911234567890" {
		t.Fatalf("recipient = %q, want whatsapp prefix", sender.lastTo)
	}
}

func TestDispatchFallsThroughToSMS(t *testing.T) {
	t.Parallel()
	sender := &fakeSender{failing: map[string]error{
		"freeform": errors.New("63016 outside session window"),
		"template": errors.New("template rejected"),
	}}
	d := NewDispatcher(sender, testConfig)

	result, err := d.Dispatch(context.Background(), "+911234567890", testPayload)
	if err != nil {
		t.Fatalf("Dispatch: %v", err)
	}
	if result.Channel != "sms" || result.MessageSID != "SM-plain" {
		t.Fatalf("unexpected result: %+v", result)
	}
	if sender.freeformCalls != 1 || sender.templateCalls != 1 || sender.plainCalls != 1 {
		t.Fatalf("calls = %d/%d/%d, want 1/1/1", sender.freeformCalls, sender.templateCalls, sender.plainCalls)
	}
	if sender.lastTo != "+911234567890" {
		t.Fatalf("sms recipient = %q, want bare number", sender.lastTo)
	}
}

func TestDispatchAllChannelsExhausted(t *testing.T) {
	t.Parallel()
	sender := &fakeSender{failing: map[string]error{
		"freeform": errors.New("refused"),
		"template": errors.New("refused"),
		"plain":    errors.New("refused"),
	}}
	d := NewDispatcher(sender, testConfig)

	_, err := d.Dispatch(context.Background(), "+911234567890", testPayload)
	if !errors.Is(err, domain.ErrChannelsExhausted) {
		t.Fatalf("err = %v, want ErrChannelsExhausted", err)
	}
	for _, name := range []string{"whatsapp-freeform", "whatsapp-template", "sms"} {
		if !strings.Contains(err.Error(), name) {
			t.Fatalf("error %q does not mention channel %s", err, name)
		}
	}
}

func TestDispatchSkippedWhenNotConfigured(t *testing.T) {
	t.Parallel()
	d := NewDispatcher(nil, testConfig)

	result, err := d.Dispatch(context.Background(), "+911234567890", testPayload)
	if err != nil {
		t.Fatalf("Dispatch: %v", err)
	}
	if !result.Skipped {
		t.Fatalf("expected skipped result, got %+v", result)
	}
}

func TestDispatchMissingChannelConfigFallsThrough(t *testing.T) {
	t.Parallel()
	sender := &fakeSender{}
	// No WhatsApp sender configured: both chat channels must fail locally
	// without touching the network client, leaving SMS to carry the alert.
	d := NewDispatcher(sender, DispatcherConfig{SMSFrom: "+14155550101"})

	result, err := d.Dispatch(context.Background(), "+911234567890", testPayload)
	if err != nil {
		t.Fatalf("Dispatch: %v", err)
	}
	if result.Channel != "sms" {
		t.Fatalf("channel = %q, want sms", result.Channel)
	}
	if sender.freeformCalls != 0 || sender.templateCalls != 0 {
		t.Fatalf("unconfigured channels hit the client: %d/%d", sender.freeformCalls, sender.templateCalls)
	}
	if sender.plainCalls != 1 {
		t.Fatalf("plain calls = %d, want 1", sender.plainCalls)
	}
}
