package email_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"consult-contact-relay/config"
	"consult-contact-relay/pkg/email"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// Mock transport
type MockSender struct {
	mock.Mock
}

func (m *MockSender) Send(ctx context.Context, msg *email.Message) error {
	return m.Called(ctx, msg).Error(0)
}

func sampleData() email.ContactEmailData {
	return email.ContactEmailData{
		Name:      "Kim",
		Phone:     "010-1234-5678",
		Email:     "visitor@example.com",
		Message:   "hello\nworld",
		Agreement: true,
	}
}

func TestSendContactEmail(t *testing.T) {
	t.Run("Should send exactly once to the configured admin", func(t *testing.T) {
		sender := new(MockSender)
		sender.On("Send", mock.Anything, mock.MatchedBy(func(msg *email.Message) bool {
			return msg.From == "relay@example.com" &&
				len(msg.To) == 1 && msg.To[0] == "admin@example.com" &&
				msg.ReplyTo == "visitor@example.com" &&
				msg.Subject == email.ContactSubject("Kim")
		})).Return(nil).Once()

		svc := email.NewEmailServiceWithSender(sender, "relay@example.com", "admin@example.com")
		require.NoError(t, svc.SendContactEmail(context.Background(), sampleData()))
		sender.AssertNumberOfCalls(t, "Send", 1)
		sender.AssertExpectations(t)
	})

	t.Run("Should wrap transport errors", func(t *testing.T) {
		transportErr := errors.New("535 authentication failed")
		sender := new(MockSender)
		sender.On("Send", mock.Anything, mock.Anything).Return(transportErr).Once()

		svc := email.NewEmailServiceWithSender(sender, "relay@example.com", "admin@example.com")
		err := svc.SendContactEmail(context.Background(), sampleData())
		require.Error(t, err)
		assert.ErrorIs(t, err, transportErr)
	})

	t.Run("Should refuse when admin address is missing", func(t *testing.T) {
		sender := new(MockSender)
		svc := email.NewEmailServiceWithSender(sender, "relay@example.com", "")

		err := svc.SendContactEmail(context.Background(), sampleData())
		assert.ErrorIs(t, err, email.ErrNotConfigured)
		sender.AssertNotCalled(t, "Send", mock.Anything, mock.Anything)
	})

	t.Run("Should drop a Reply-To carrying line breaks", func(t *testing.T) {
		sender := new(MockSender)
		sender.On("Send", mock.Anything, mock.MatchedBy(func(msg *email.Message) bool {
			return msg.ReplyTo == ""
		})).Return(nil).Once()

		data := sampleData()
		data.Email = "a@b.com\r\nBcc: x@y.z"
		svc := email.NewEmailServiceWithSender(sender, "relay@example.com", "admin@example.com")
		require.NoError(t, svc.SendContactEmail(context.Background(), data))
		sender.AssertExpectations(t)
	})
}

func TestSendContactEmailTimeout(t *testing.T) {
	sender := new(MockSender)
	sender.On("Send", mock.MatchedBy(func(ctx context.Context) bool {
		deadline, ok := ctx.Deadline()
		return ok && time.Until(deadline) <= 2*time.Second
	}), mock.Anything).Return(nil).Once()

	svc := email.NewEmailService(&config.Config{
		EmailUser:          "relay@example.com",
		EmailPass:          "secret",
		AdminEmail:         "admin@example.com",
		MailTransport:      config.TransportSMTP,
		MailTimeoutSeconds: 2,
	})
	svc.SetSender(sender)

	require.NoError(t, svc.SendContactEmail(context.Background(), sampleData()))
	sender.AssertExpectations(t)
}

func TestStatus(t *testing.T) {
	t.Run("SMTP reports the password length only", func(t *testing.T) {
		svc := email.NewEmailService(&config.Config{
			EmailUser:     "relay@example.com",
			EmailPass:     "abcd efgh ijkl mnop",
			AdminEmail:    "admin@example.com",
			MailTransport: config.TransportSMTP,
		})
		st := svc.Status()
		assert.Equal(t, "relay@example.com", st.User)
		assert.Equal(t, 19, st.PassLength)
		assert.Equal(t, "admin@example.com", st.Admin)
		assert.Equal(t, config.TransportSMTP, st.Transport)
		assert.True(t, st.Configured)
	})

	t.Run("Missing credential is not configured", func(t *testing.T) {
		svc := email.NewEmailService(&config.Config{
			EmailUser:     "relay@example.com",
			AdminEmail:    "admin@example.com",
			MailTransport: config.TransportSMTP,
		})
		assert.False(t, svc.IsConfigured())
		assert.Equal(t, 0, svc.Status().PassLength)
	})

	t.Run("Resend uses the API key as credential", func(t *testing.T) {
		svc := email.NewEmailService(&config.Config{
			EmailUser:     "relay@example.com",
			EmailPass:     "ignored",
			ResendAPIKey:  "re_123456",
			AdminEmail:    "admin@example.com",
			MailTransport: config.TransportResend,
		})
		assert.True(t, svc.IsConfigured())
		assert.Equal(t, 9, svc.Status().PassLength)
		assert.Equal(t, config.TransportResend, svc.Status().Transport)
	})
}
