package service

import (
	"context"
	"errors"
	"net/url"
	"testing"
	"time"

	"github.com/aussiebroadwan/onboard/internal/onboard/domain"
	"github.com/aussiebroadwan/onboard/pkg/cryptox"
	"github.com/stretchr/testify/require"
)

func TestSendInvitation(t *testing.T) {
	t.Parallel()
	f := newFixture(t)
	ctx := context.Background()

	emp, _ := f.hire(t, "invitee@acme.test", f.manager.ID)

	issued, err := f.invitations.Send(ctx, f.manager, SendInvitationInput{EmployeeID: emp.ID})
	require.NoError(t, err)
	require.NotEmpty(t, issued.Token)
	require.Equal(t, "invitee@acme.test", issued.Invitation.Email)
	require.Equal(t, cryptox.FingerprintToken(issued.Token), issued.Invitation.TokenHash)
	require.True(t, issued.Invitation.ExpiresAt.Equal(t0.Add(domain.DefaultInvitationTTL)))

	stored := f.reload(t, emp.ID)
	require.Equal(t, domain.StatusInvited, stored.Status)
	require.True(t, stored.InvitationSentAt.Equal(t0))

	sent := f.mail.Sent()
	require.Len(t, sent, 1)
	require.Equal(t, "invitee@acme.test", sent[0].To)
	require.Equal(t, "Acme", sent[0].CompanyName)
	link, err := url.Parse(sent[0].Link)
	require.NoError(t, err)
	require.Equal(t, issued.Token, link.Query().Get("token"))

	t.Run("token is hidden unless enabled", func(t *testing.T) {
		quiet := *f.invitations
		quiet.ReturnToken = false
		out, err := quiet.Send(ctx, f.hr, SendInvitationInput{EmployeeID: emp.ID, Email: "other@example.test"})
		require.NoError(t, err)
		require.Empty(t, out.Token)
		require.Equal(t, "other@example.test", out.Invitation.Email)
	})

	t.Run("other manager is forbidden", func(t *testing.T) {
		other := f.addActor(t, f.company.ID, "other-manager@acme.test", domain.RoleManager)
		_, err := f.invitations.Send(ctx, other, SendInvitationInput{EmployeeID: emp.ID})
		require.ErrorIs(t, err, domain.ErrForbidden)
	})

	t.Run("employee is forbidden", func(t *testing.T) {
		_, err := f.invitations.Send(ctx, f.employee, SendInvitationInput{EmployeeID: emp.ID})
		require.ErrorIs(t, err, domain.ErrForbidden)
	})

	t.Run("bad override", func(t *testing.T) {
		_, err := f.invitations.Send(ctx, f.hr, SendInvitationInput{EmployeeID: emp.ID, Email: "not an email"})
		require.ErrorIs(t, err, domain.ErrValidation)
	})
}

func TestInvitationSupersedes(t *testing.T) {
	t.Parallel()
	f := newFixture(t)
	ctx := context.Background()

	emp, _ := f.hire(t, "twice@acme.test", "")

	first, err := f.invitations.Send(ctx, f.hr, SendInvitationInput{EmployeeID: emp.ID})
	require.NoError(t, err)

	f.clock.T = t0.Add(time.Hour)
	second, err := f.invitations.Send(ctx, f.hr, SendInvitationInput{EmployeeID: emp.ID})
	require.NoError(t, err)

	_, err = f.invitations.Validate(ctx, first.Token)
	require.ErrorIs(t, err, domain.ErrExpired)

	got, err := f.invitations.Validate(ctx, second.Token)
	require.NoError(t, err)
	require.Equal(t, second.Invitation.ID, got.ID)

	require.True(t, f.reload(t, emp.ID).InvitationSentAt.Equal(t0.Add(time.Hour)))
}

func TestInvitationExpiry(t *testing.T) {
	t.Parallel()
	f := newFixture(t)
	ctx := context.Background()

	emp, _ := f.hire(t, "late@acme.test", "")
	issued, err := f.invitations.Send(ctx, f.hr, SendInvitationInput{EmployeeID: emp.ID})
	require.NoError(t, err)

	f.clock.T = t0.Add(8 * 24 * time.Hour)

	_, err = f.invitations.Validate(ctx, issued.Token)
	require.ErrorIs(t, err, domain.ErrExpired)

	_, err = f.invitations.Accept(ctx, AcceptInvitationInput{Token: issued.Token})
	require.ErrorIs(t, err, domain.ErrExpired)
	require.Equal(t, domain.StatusInvited, f.reload(t, emp.ID).Status)
}

func TestAcceptInvitation(t *testing.T) {
	t.Parallel()
	f := newFixture(t)
	ctx := context.Background()

	f.addTask(t, "Sign contract", true)
	emp, list := f.hire(t, "joiner@acme.test", "")
	issued, err := f.invitations.Send(ctx, f.hr, SendInvitationInput{EmployeeID: emp.ID})
	require.NoError(t, err)

	f.clock.T = t0.Add(24 * time.Hour)
	acc, err := f.invitations.Accept(ctx, AcceptInvitationInput{Token: issued.Token, FirstName: "Joan"})
	require.NoError(t, err)
	require.Equal(t, domain.RoleEmployee, acc.Actor.Role)
	require.Equal(t, "joiner@acme.test", acc.Actor.Email)
	require.Equal(t, "Joan", acc.Actor.FirstName)
	require.Equal(t, f.company.ID, acc.Actor.CompanyID)

	stored := f.reload(t, emp.ID)
	require.Equal(t, acc.Actor.ID, stored.UserID)
	require.Equal(t, domain.StatusInProgress, stored.Status)
	require.True(t, stored.FirstLoginAt.Equal(f.clock.T))

	t.Run("second use is rejected", func(t *testing.T) {
		_, err := f.invitations.Accept(ctx, AcceptInvitationInput{Token: issued.Token})
		require.ErrorIs(t, err, domain.ErrAlreadyUsed)
		_, err = f.invitations.Validate(ctx, issued.Token)
		require.ErrorIs(t, err, domain.ErrAlreadyUsed)
	})

	t.Run("new actor can work its tasks", func(t *testing.T) {
		actor, err := f.identity.ResolveActor(ctx, acc.Actor.ID)
		require.NoError(t, err)
		_, err = f.assignments.Complete(ctx, actor, CompleteTaskInput{AssignmentID: list[0].ID})
		require.NoError(t, err)
		require.Equal(t, domain.StatusCompleted, f.reload(t, emp.ID).Status)
	})
}

func TestAcceptLinksExistingActor(t *testing.T) {
	t.Parallel()
	f := newFixture(t)
	ctx := context.Background()

	emp, _ := f.hire(t, "known@acme.test", "")
	existing := f.addActor(t, f.company.ID, "known@acme.test", domain.RoleEmployee)

	issued, err := f.invitations.Send(ctx, f.hr, SendInvitationInput{EmployeeID: emp.ID})
	require.NoError(t, err)

	acc, err := f.invitations.Accept(ctx, AcceptInvitationInput{Token: issued.Token})
	require.NoError(t, err)
	require.Equal(t, existing.ID, acc.Actor.ID)
	require.NotNil(t, acc.Actor.LastLoginAt)
}

func TestAcceptRejectsForeignEmail(t *testing.T) {
	t.Parallel()
	f := newFixture(t)
	ctx := context.Background()

	emp, _ := f.hire(t, "clash@acme.test", "")
	issued, err := f.invitations.Send(ctx, f.hr, SendInvitationInput{EmployeeID: emp.ID, Email: f.outsider.Email})
	require.NoError(t, err)

	_, err = f.invitations.Accept(ctx, AcceptInvitationInput{Token: issued.Token})
	require.ErrorIs(t, err, domain.ErrConflict)

	// The rollback leaves the invitation usable.
	_, err = f.invitations.Validate(ctx, issued.Token)
	require.NoError(t, err)
}

func TestAcceptInactiveEmployee(t *testing.T) {
	t.Parallel()
	f := newFixture(t)
	ctx := context.Background()

	emp, _ := f.hire(t, "gone@acme.test", "")
	issued, err := f.invitations.Send(ctx, f.hr, SendInvitationInput{EmployeeID: emp.ID})
	require.NoError(t, err)
	_, err = f.employees.Deactivate(ctx, f.hr, emp.ID)
	require.NoError(t, err)

	_, err = f.invitations.Accept(ctx, AcceptInvitationInput{Token: issued.Token})
	require.ErrorIs(t, err, domain.ErrForbidden)

	_, err = f.invitations.Send(ctx, f.hr, SendInvitationInput{EmployeeID: emp.ID})
	require.ErrorIs(t, err, domain.ErrInvalidTransition)
}

func TestValidateUnknownToken(t *testing.T) {
	t.Parallel()
	f := newFixture(t)
	ctx := context.Background()

	_, err := f.invitations.Validate(ctx, "never-issued")
	require.ErrorIs(t, err, domain.ErrNotFound)

	_, err = f.invitations.Validate(ctx, "  ")
	require.ErrorIs(t, err, domain.ErrValidation)
}

func TestDeliveryFailureKeepsInvitation(t *testing.T) {
	t.Parallel()
	f := newFixture(t)
	ctx := context.Background()

	f.mail.Err = errors.New("smtp down")
	emp, _ := f.hire(t, "bounce@acme.test", "")

	issued, err := f.invitations.Send(ctx, f.hr, SendInvitationInput{EmployeeID: emp.ID})
	require.NoError(t, err)
	require.Len(t, f.mail.Sent(), 1)

	_, err = f.invitations.Validate(ctx, issued.Token)
	require.NoError(t, err)
	require.Equal(t, domain.StatusInvited, f.reload(t, emp.ID).Status)
}
