package service

import (
	"context"
	"errors"
	"log/slog"
	"net/url"
	"strings"
	"time"

	"github.com/aussiebroadwan/onboard/internal/onboard/domain"
	"github.com/aussiebroadwan/onboard/internal/onboard/notify"
	"github.com/aussiebroadwan/onboard/internal/onboard/policy"
	"github.com/aussiebroadwan/onboard/internal/onboard/store"
	"github.com/aussiebroadwan/onboard/pkg/cryptox"
	"github.com/aussiebroadwan/onboard/pkg/slogx"
)

type InvitationService struct {
	Base
	Sender notify.Sender

	// TTL defaults to domain.DefaultInvitationTTL.
	TTL time.Duration

	// LinkBase is the activation page; the token is appended as ?token=.
	LinkBase string

	// ReturnToken echoes the raw token in responses. Dev and tests only.
	ReturnToken bool
}

type SendInvitationInput struct {
	EmployeeID string
	// Email overrides the employee's work, then personal, email.
	Email string
}

type IssuedInvitation struct {
	Invitation domain.Invitation
	// Token is set only when ReturnToken is enabled.
	Token string
}

func (s *InvitationService) ttl() time.Duration {
	if s.TTL <= 0 {
		return domain.DefaultInvitationTTL
	}
	return s.TTL
}

// Send issues a fresh invitation, supersedes any open ones and moves the
// employee to invited. The link is delivered after commit; delivery failures
// are logged and do not undo the invitation.
func (s *InvitationService) Send(ctx context.Context, actor domain.Actor, in SendInvitationInput) (IssuedInvitation, error) {
	log := slogx.FromContext(ctx)

	// 1. Load and authorize.
	emp, err := loadEmployee(ctx, s.Store.Employees(), in.EmployeeID)
	if err != nil {
		return IssuedInvitation{}, err
	}
	if _, err := s.authorize(ctx, actor, policy.OpSendInvitation, employeeTarget(policy.OpSendInvitation, emp)); err != nil {
		return IssuedInvitation{}, err
	}
	if !emp.IsActive {
		return IssuedInvitation{}, domain.InvalidTransition("employee is inactive")
	}

	// 2. Work out where it goes.
	email := strings.TrimSpace(in.Email)
	if email == "" {
		email = emp.ContactEmail()
	}
	if err := domain.ValidateEmail(email); err != nil {
		return IssuedInvitation{}, err
	}

	// 3. Check the lifecycle allows it before minting anything. The check is
	// repeated under the row lock below.
	now := s.now()
	if _, err := emp.Transition(domain.StatusInvited, now); err != nil {
		return IssuedInvitation{}, err
	}

	// 4. Mint the token; only its fingerprint is stored.
	token, fingerprint, err := cryptox.NewOpaqueToken()
	if err != nil {
		log.Error("failed to generate invitation token", slog.Any("error", err))
		return IssuedInvitation{}, err
	}
	inv := domain.Invitation{
		ID:         s.id(),
		CompanyID:  emp.CompanyID,
		EmployeeID: emp.ID,
		TokenHash:  fingerprint,
		Email:      email,
		ExpiresAt:  now.Add(s.ttl()),
		CreatedBy:  actor.ID,
		CreatedAt:  now,
	}

	// 5. Supersede, insert and advance the employee atomically.
	var superseded int64
	err = s.Store.WithTx(ctx, func(tx store.Tx) error {
		var err error
		emp, err = lockEmployee(ctx, tx, emp.ID)
		if err != nil {
			return err
		}
		if err := active(emp); err != nil {
			return err
		}
		if _, err := emp.Transition(domain.StatusInvited, now); err != nil {
			return err
		}

		superseded, err = tx.Invitations().ExpireOpenInvitations(ctx, emp.ID, now)
		if err != nil {
			return translate(err, "invitations")
		}
		if err := tx.Invitations().CreateInvitation(ctx, inv); err != nil {
			return translate(err, "invitation")
		}
		return translate(tx.Employees().UpdateEmployee(ctx, emp), "employee")
	})
	if err != nil {
		return IssuedInvitation{}, err
	}

	log.Info("invitation issued",
		slog.String("invitation_id", inv.ID),
		slog.String("employee_id", emp.ID),
		slog.Int64("superseded", superseded),
		slog.Time("expires_at", inv.ExpiresAt),
	)

	// 6. Deliver. Fire and forget.
	s.deliver(ctx, emp, inv, token)

	out := IssuedInvitation{Invitation: inv}
	if s.ReturnToken {
		out.Token = token
	}
	return out, nil
}

func (s *InvitationService) deliver(ctx context.Context, emp domain.EmployeeProfile, inv domain.Invitation, token string) {
	if s.Sender == nil {
		return
	}
	log := slogx.FromContext(ctx)

	companyName := emp.CompanyID
	if co, err := s.Store.Companies().GetCompanyByID(ctx, emp.CompanyID); err == nil {
		companyName = co.Name
	}

	msg := notify.Invitation{
		To:           inv.Email,
		EmployeeName: emp.FullName(),
		CompanyName:  companyName,
		Link:         s.link(token),
		ExpiresAt:    inv.ExpiresAt,
	}
	if err := s.Sender.SendInvitation(ctx, msg); err != nil {
		log.Error("invitation delivery failed",
			slog.String("invitation_id", inv.ID),
			slog.Any("error", err),
		)
	}
}

func (s *InvitationService) link(token string) string {
	base := s.LinkBase
	if base == "" {
		base = "http://localhost:8080/accept"
	}
	sep := "?"
	if strings.Contains(base, "?") {
		sep = "&"
	}
	return base + sep + "token=" + url.QueryEscape(token)
}

// Validate checks a presented token without consuming it.
func (s *InvitationService) Validate(ctx context.Context, token string) (domain.Invitation, error) {
	inv, err := s.lookup(ctx, s.Store.Invitations(), token)
	if err != nil {
		return domain.Invitation{}, err
	}
	if err := inv.Check(s.now()); err != nil {
		slogx.FromContext(ctx).Info("invitation rejected",
			slog.String("invitation_id", inv.ID),
			slog.String("reason", string(domain.KindOf(err))),
		)
		return domain.Invitation{}, err
	}
	return inv, nil
}

func (s *InvitationService) lookup(ctx context.Context, repo store.Invitations, token string) (domain.Invitation, error) {
	token = strings.TrimSpace(token)
	if token == "" {
		return domain.Invitation{}, domain.Validation("token is required")
	}
	inv, err := repo.GetInvitationByTokenHash(ctx, cryptox.FingerprintToken(token))
	if errors.Is(err, store.ErrNotFound) {
		return domain.Invitation{}, domain.NotFound("invitation not found")
	}
	return inv, translate(err, "invitation")
}

type AcceptInvitationInput struct {
	Token     string
	FirstName string
	LastName  string
}

type Acceptance struct {
	Actor    domain.Actor
	Employee domain.EmployeeProfile
}

// Accept consumes the invitation, links or creates an employee-role actor for
// the invited email and starts the employee's onboarding, all in one
// transaction.
func (s *InvitationService) Accept(ctx context.Context, in AcceptInvitationInput) (Acceptance, error) {
	log := slogx.FromContext(ctx)
	now := s.now()

	var out Acceptance
	err := s.Store.WithTx(ctx, func(tx store.Tx) error {
		// 1. Validate and consume.
		inv, err := s.lookup(ctx, tx.Invitations(), in.Token)
		if err != nil {
			return err
		}
		if err := inv.Consume(now); err != nil {
			return err
		}
		if err := tx.Invitations().MarkInvitationUsed(ctx, inv.ID, now); err != nil {
			if errors.Is(err, store.ErrNotFound) {
				return domain.NewError(domain.KindAlreadyUsed, "invitation has already been used")
			}
			return translate(err, "invitation")
		}

		emp, err := lockEmployee(ctx, tx, inv.EmployeeID)
		if err != nil {
			return err
		}
		if !emp.IsActive {
			return domain.Forbidden("employee record is inactive")
		}

		// 2. Find or create the actor behind the invited email.
		actor, err := s.linkActor(ctx, tx, inv, emp, in, now)
		if err != nil {
			return err
		}

		// 3. Link and begin onboarding.
		emp.RecordFirstLogin(actor.ID, now)
		if err := tx.Employees().UpdateEmployee(ctx, emp); err != nil {
			return translate(err, "employee link")
		}
		if err := tx.Actors().TouchLastLogin(ctx, actor.ID, now); err != nil {
			return translate(err, "actor")
		}
		actor.LastLoginAt = &now

		out = Acceptance{Actor: actor, Employee: emp}
		return nil
	})
	if err != nil {
		return Acceptance{}, err
	}

	log.Info("invitation accepted",
		slog.String("employee_id", out.Employee.ID),
		slog.String("actor_id", out.Actor.ID),
	)
	return out, nil
}

func (s *InvitationService) linkActor(
	ctx context.Context,
	tx store.Tx,
	inv domain.Invitation,
	emp domain.EmployeeProfile,
	in AcceptInvitationInput,
	now time.Time,
) (domain.Actor, error) {
	existing, err := tx.Actors().GetActorByEmail(ctx, inv.Email)
	switch {
	case err == nil:
		if existing.CompanyID != emp.CompanyID {
			return domain.Actor{}, domain.Conflict("email is registered with another company")
		}
		if emp.UserID != "" && emp.UserID != existing.ID {
			return domain.Actor{}, domain.Conflict("employee is already linked to another account")
		}
		return existing, nil
	case !errors.Is(err, store.ErrNotFound):
		return domain.Actor{}, translate(err, "actor")
	}

	first, last := strings.TrimSpace(in.FirstName), strings.TrimSpace(in.LastName)
	if first == "" {
		first = emp.FirstName
	}
	if last == "" {
		last = emp.LastName
	}
	actor := domain.Actor{
		ID:        s.id(),
		CompanyID: emp.CompanyID,
		Email:     inv.Email,
		FirstName: first,
		LastName:  last,
		Role:      domain.RoleEmployee,
		IsActive:  true,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := tx.Actors().CreateActor(ctx, actor); err != nil {
		return domain.Actor{}, translate(err, "account")
	}
	return actor, nil
}
