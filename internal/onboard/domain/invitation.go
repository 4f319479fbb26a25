package domain

import "time"

// DefaultInvitationTTL is how long an issued invitation remains valid.
const DefaultInvitationTTL = 7 * 24 * time.Hour

// Invitation is a single-use onboarding link. Only the fingerprint of the
// token is stored.
type Invitation struct {
	ID         string
	CompanyID  string
	EmployeeID string
	TokenHash  string
	Email      string
	ExpiresAt  time.Time
	IsUsed     bool
	UsedAt     *time.Time
	CreatedBy  string
	CreatedAt  time.Time
}

// Check reports why the invitation cannot be consumed at now, if at all.
// Used takes precedence over expiry so a consumed link never reads as merely
// expired.
func (i Invitation) Check(now time.Time) error {
	if i.IsUsed {
		return NewError(KindAlreadyUsed, "invitation has already been used")
	}
	if !now.Before(i.ExpiresAt) {
		return NewError(KindExpired, "invitation expired at %s", i.ExpiresAt.UTC().Format(time.RFC3339))
	}
	return nil
}

// Consume marks the invitation used.
func (i *Invitation) Consume(now time.Time) error {
	if err := i.Check(now); err != nil {
		return err
	}
	i.IsUsed = true
	i.UsedAt = &now
	return nil
}

// Status is the derived lifecycle state: issued, consumed or expired.
func (i Invitation) Status(now time.Time) string {
	switch {
	case i.IsUsed:
		return "consumed"
	case !now.Before(i.ExpiresAt):
		return "expired"
	default:
		return "issued"
	}
}
