package email

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/ses"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeSES struct {
	input *ses.SendEmailInput
	err   error
}

func (f *fakeSES) SendEmail(ctx context.Context, params *ses.SendEmailInput, optFns ...func(*ses.Options)) (*ses.SendEmailOutput, error) {
	f.input = params
	if f.err != nil {
		return nil, f.err
	}
	return &ses.SendEmailOutput{MessageId: aws.String("msg-1")}, nil
}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestSESMailer_Send(t *testing.T) {
	client := &fakeSES{}
	m := newSESMailer(client, MailerConfig{FromAddress: "events@example.com", FromName: "Partner Events"}, discardLogger())

	err := m.Send(context.Background(), "a@example.com", "Hi", "<p>hi</p>", "hi")

	require.NoError(t, err)
	require.NotNil(t, client.input)
	assert.Equal(t, "Partner Events <events@example.com>", aws.ToString(client.input.Source))
	assert.Equal(t, []string{"a@example.com"}, client.input.Destination.ToAddresses)
	assert.Equal(t, "Hi", aws.ToString(client.input.Message.Subject.Data))
	assert.Equal(t, "<p>hi</p>", aws.ToString(client.input.Message.Body.Html.Data))
	assert.Equal(t, "hi", aws.ToString(client.input.Message.Body.Text.Data))
}

func TestSESMailer_SendTextOnlyAndError(t *testing.T) {
	client := &fakeSES{err: errors.New("throttled")}
	m := newSESMailer(client, MailerConfig{FromAddress: "events@example.com"}, discardLogger())

	err := m.Send(context.Background(), "a@example.com", "Hi", "", "hi")

	require.Error(t, err)
	assert.Contains(t, err.Error(), "throttled")
	assert.Equal(t, "events@example.com", aws.ToString(client.input.Source))
	assert.Nil(t, client.input.Message.Body.Html)
}

func TestNewMailer(t *testing.T) {
	m, err := NewMailer(MailerConfig{Provider: "noop"}, discardLogger())
	require.NoError(t, err)
	assert.IsType(t, &noopMailer{}, m)
	assert.NoError(t, m.Send(context.Background(), "a@example.com", "s", "", "t"))

	m, err = NewMailer(MailerConfig{Provider: "carrier-pigeon"}, discardLogger())
	require.NoError(t, err)
	assert.IsType(t, &noopMailer{}, m)

	_, err = NewMailer(MailerConfig{Provider: "ses"}, discardLogger())
	assert.Error(t, err)

	m, err = NewMailer(MailerConfig{
		Provider:    "ses",
		FromAddress: "events@example.com",
		SES:         SESConfig{Region: "eu-west-1", AccessKeyID: "id", SecretAccessKey: "secret"},
	}, discardLogger())
	require.NoError(t, err)
	assert.IsType(t, &sesMailer{}, m)
}
