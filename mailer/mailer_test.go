package mailer

import (
	"bytes"
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/gomail.v2"
)

type recordingDialer struct {
	messages []*gomail.Message
	err      error
}

func (d *recordingDialer) DialAndSend(m ...*gomail.Message) error {
	if d.err != nil {
		return d.err
	}
	d.messages = append(d.messages, m...)
	return nil
}

func TestSendAssemblesMessage(t *testing.T) {
	recorder := &recordingDialer{}
	notifier := NewSMTPNotifier(&Config{FromAddress: "billing@example.com"})
	notifier.dialer = recorder

	err := notifier.Send(context.Background(), "company@example.com", "Invoice Created", "An invoice has been created.")
	require.NoError(t, err)
	require.Len(t, recorder.messages, 1)

	m := recorder.messages[0]
	assert.Equal(t, []string{"billing@example.com"}, m.GetHeader("From"))
	assert.Equal(t, []string{"company@example.com"}, m.GetHeader("To"))
	assert.Equal(t, []string{"Invoice Created"}, m.GetHeader("Subject"))

	var buf bytes.Buffer
	_, err = m.WriteTo(&buf)
	require.NoError(t, err)
	assert.Contains(t, buf.String(), "An invoice has been created.")
}

func TestSendSurfacesDialerError(t *testing.T) {
	notifier := NewSMTPNotifier(&Config{FromAddress: "billing@example.com"})
	notifier.dialer = &recordingDialer{err: errors.New("dial tcp: connection refused")}

	err := notifier.Send(context.Background(), "company@example.com", "Invoice Created", "body")
	assert.Error(t, err)
}

func TestSendHonorsCancelledContext(t *testing.T) {
	recorder := &recordingDialer{}
	notifier := NewSMTPNotifier(&Config{FromAddress: "billing@example.com"})
	notifier.dialer = recorder

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := notifier.Send(ctx, "company@example.com", "Invoice Created", "body")
	assert.ErrorIs(t, err, context.Canceled)
	assert.Empty(t, recorder.messages)
}
