package postgres

import (
	"context"
	"database/sql"
	"time"

	"github.com/aussiebroadwan/onboard/internal/onboard/domain"
)

const (
	invitationColumns = `id, company_id, employee_id, token_hash, email, expires_at, is_used, used_at, created_by, created_at`

	sqlInsertInvitation      = `INSERT INTO invitations (` + invitationColumns + `) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`
	sqlInvitationByTokenHash = `SELECT ` + invitationColumns + ` FROM invitations WHERE token_hash = $1`
	sqlExpireOpenInvitations = `UPDATE invitations SET expires_at = $1 WHERE employee_id = $2 AND NOT is_used AND expires_at > $1`
	sqlMarkInvitationUsed    = `UPDATE invitations SET is_used = TRUE, used_at = $1 WHERE id = $2 AND NOT is_used`
	sqlDeleteExpiredInvites  = `DELETE FROM invitations WHERE expires_at < $1`
)

type invitationsRepo struct {
	q Queryer
}

func (r *invitationsRepo) CreateInvitation(ctx context.Context, inv domain.Invitation) error {
	_, err := r.q.Exec(ctx, sqlInsertInvitation,
		inv.ID, inv.CompanyID, inv.EmployeeID, inv.TokenHash, inv.Email, inv.ExpiresAt.UTC(),
		inv.IsUsed, nullableTime(inv.UsedAt), nullableString(inv.CreatedBy), inv.CreatedAt.UTC())
	return translatePgError(err)
}

func (r *invitationsRepo) GetInvitationByTokenHash(ctx context.Context, hash string) (domain.Invitation, error) {
	var (
		inv       domain.Invitation
		usedAt    sql.NullTime
		createdBy sql.NullString
	)
	err := r.q.QueryRow(ctx, sqlInvitationByTokenHash, hash).
		Scan(&inv.ID, &inv.CompanyID, &inv.EmployeeID, &inv.TokenHash, &inv.Email, &inv.ExpiresAt,
			&inv.IsUsed, &usedAt, &createdBy, &inv.CreatedAt)
	if err != nil {
		return domain.Invitation{}, translatePgError(err)
	}
	inv.ExpiresAt = inv.ExpiresAt.UTC()
	inv.CreatedAt = inv.CreatedAt.UTC()
	inv.UsedAt = timePtr(usedAt)
	inv.CreatedBy = createdBy.String
	return inv, nil
}

func (r *invitationsRepo) ExpireOpenInvitations(ctx context.Context, employeeID string, at time.Time) (int64, error) {
	return execCount(ctx, r.q, sqlExpireOpenInvitations, at.UTC(), employeeID)
}

func (r *invitationsRepo) MarkInvitationUsed(ctx context.Context, id string, at time.Time) error {
	return execOne(ctx, r.q, sqlMarkInvitationUsed, at.UTC(), id)
}

func (r *invitationsRepo) DeleteInvitationsExpiredBefore(ctx context.Context, cutoff time.Time) (int64, error) {
	return execCount(ctx, r.q, sqlDeleteExpiredInvites, cutoff.UTC())
}
