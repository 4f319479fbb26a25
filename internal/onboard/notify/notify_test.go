package notify

import (
	"context"
	"errors"
	"net/smtp"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

var now = time.Date(2026, 7, 1, 9, 0, 0, 0, time.UTC)

func message() Invitation {
	return Invitation{
		To:           "grace@acme.test",
		EmployeeName: "Grace Hopper",
		CompanyName:  "Acme",
		Link:         "https://onboard.acme.test/accept?token=abc",
		ExpiresAt:    now.Add(7 * 24 * time.Hour),
	}
}

func TestInvitationBody(t *testing.T) {
	body := message().Body(now)
	require.Contains(t, body, "Hi Grace Hopper")
	require.Contains(t, body, "https://onboard.acme.test/accept?token=abc")
	require.Contains(t, body, "from now")
	require.Equal(t, "Welcome to Acme: start your onboarding", message().Subject())
}

func TestSMTPSender(t *testing.T) {
	_, err := NewSMTPSender(SMTPConfig{Addr: "mail.acme.test"})
	require.Error(t, err)

	s, err := NewSMTPSender(SMTPConfig{Addr: "mail.acme.test:587", From: "hr@acme.test", Username: "hr", Password: "pw"})
	require.NoError(t, err)
	s.now = func() time.Time { return now }

	var gotTo []string
	var gotMsg string
	var gotAuth smtp.Auth
	s.send = func(addr string, a smtp.Auth, from string, to []string, msg []byte) error {
		require.Equal(t, "mail.acme.test:587", addr)
		require.Equal(t, "hr@acme.test", from)
		gotTo, gotMsg, gotAuth = to, string(msg), a
		return nil
	}

	require.NoError(t, s.SendInvitation(context.Background(), message()))
	require.Equal(t, []string{"grace@acme.test"}, gotTo)
	require.NotNil(t, gotAuth)
	require.Contains(t, gotMsg, "Subject: Welcome to Acme: start your onboarding\r\n")
	require.Contains(t, gotMsg, "token=abc")

	t.Run("header injection rejected", func(t *testing.T) {
		m := message()
		m.To = "grace@acme.test\r\nBcc: all@acme.test"
		require.Error(t, s.SendInvitation(context.Background(), m))
	})

	t.Run("transport errors are wrapped", func(t *testing.T) {
		boom := errors.New("connection refused")
		s.send = func(string, smtp.Auth, string, []string, []byte) error { return boom }
		require.ErrorIs(t, s.SendInvitation(context.Background(), message()), boom)
	})
}

func TestMemorySender(t *testing.T) {
	m := &MemorySender{}
	require.NoError(t, m.SendInvitation(context.Background(), message()))
	require.Len(t, m.Sent(), 1)

	m.Err = errors.New("down")
	require.Error(t, m.SendInvitation(context.Background(), message()))
	require.Len(t, m.Sent(), 2)
	require.NoError(t, LogSender{}.SendInvitation(context.Background(), message()))
}
