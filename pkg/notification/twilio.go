package notification

import (
	"context"
	"encoding/json"

	"github.com/twilio/twilio-go"
	openapi "github.com/twilio/twilio-go/rest/api/v2010"
)

type (
	// MessageSender is the outbound messaging client the channels talk to.
	// Each operation returns the provider message identifier on success.
	MessageSender interface {
		SendFreeform(ctx context.Context, from, to, body string) (string, error)
		SendTemplate(ctx context.Context, from, to, templateSID string, vars map[string]string) (string, error)
		SendPlain(ctx context.Context, from, to, body string) (string, error)
	}

	twilioSender struct {
		client *twilio.RestClient
	}
)

// NewTwilioSender wraps a Twilio REST client with the three send operations
// the dispatcher needs. Credential presence is the caller's concern.
func NewTwilioSender(accountSID, authToken string) MessageSender {
	return &twilioSender{
		client: twilio.NewRestClientWithParams(twilio.ClientParams{
			Username: accountSID,
			Password: authToken,
		}),
	}
}

func (s *twilioSender) SendFreeform(_ context.Context, from, to, body string) (string, error) {
	params := &openapi.CreateMessageParams{}
	params.SetFrom(from)
	params.SetTo(to)
	params.SetBody(body)
	return s.create(params)
}

func (s *twilioSender) SendTemplate(_ context.Context, from, to, templateSID string, vars map[string]string) (string, error) {
	encoded, err := json.Marshal(vars)
	if err != nil {
		return "", err
	}
	params := &openapi.CreateMessageParams{}
	params.SetFrom(from)
	params.SetTo(to)
	params.SetContentSid(templateSID)
	params.SetContentVariables(string(encoded))
	return s.create(params)
}

func (s *twilioSender) SendPlain(_ context.Context, from, to, body string) (string, error) {
	params := &openapi.CreateMessageParams{}
	params.SetFrom(from)
	params.SetTo(to)
	params.SetBody(body)
	return s.create(params)
}

func (s *twilioSender) create(params *openapi.CreateMessageParams) (string, error) {
	msg, err := s.client.Api.CreateMessage(params)
	if err != nil {
		return "", err
	}
	if msg.Sid == nil {
		return "", nil
	}
	return *msg.Sid, nil
}
