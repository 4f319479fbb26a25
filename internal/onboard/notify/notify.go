// Package notify delivers invitation links to new hires.
package notify

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"sync"
	"time"

	"github.com/aussiebroadwan/onboard/pkg/slogx"
	"github.com/dustin/go-humanize"
)

// Invitation is the message sent when HR or a manager invites an employee.
type Invitation struct {
	To           string
	EmployeeName string
	CompanyName  string
	Link         string
	ExpiresAt    time.Time
}

// Subject is the email subject line.
func (m Invitation) Subject() string {
	return fmt.Sprintf("Welcome to %s: start your onboarding", m.CompanyName)
}

// Body renders the plain text message relative to now.
func (m Invitation) Body(now time.Time) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Hi %s,\n\n", m.EmployeeName)
	fmt.Fprintf(&b, "%s has invited you to complete your onboarding.\n\n", m.CompanyName)
	fmt.Fprintf(&b, "Open this link to get started:\n%s\n\n", m.Link)
	fmt.Fprintf(&b, "The link can be used once and expires %s (%s).\n",
		humanize.RelTime(m.ExpiresAt, now, "ago", "from now"),
		m.ExpiresAt.UTC().Format("Mon 2 Jan 2006 15:04 MST"))
	return b.String()
}

type Sender interface {
	SendInvitation(ctx context.Context, msg Invitation) error
}

// LogSender writes invitations to the log instead of delivering them. It is
// the default when no SMTP server is configured.
type LogSender struct{}

func (LogSender) SendInvitation(ctx context.Context, msg Invitation) error {
	slogx.FromContext(ctx).Info("invitation ready",
		slog.String("to", msg.To),
		slog.String("employee", msg.EmployeeName),
		slog.String("link", msg.Link),
		slog.Time("expires_at", msg.ExpiresAt),
	)
	return nil
}

// MemorySender keeps every message. Tests read them back with Sent.
type MemorySender struct {
	mu   sync.Mutex
	sent []Invitation

	// Err, when set, is returned from every send after recording.
	Err error
}

func (m *MemorySender) SendInvitation(_ context.Context, msg Invitation) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.sent = append(m.sent, msg)
	return m.Err
}

func (m *MemorySender) Sent() []Invitation {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]Invitation(nil), m.sent...)
}
