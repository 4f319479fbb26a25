package sqlite

import (
	"context"
	"database/sql"
	"time"

	"github.com/aussiebroadwan/onboard/internal/onboard/domain"
)

type invitationsRepo struct {
	db DBTX
}

const invitationColumns = `id, company_id, employee_id, token_hash, email, expires_at, is_used, used_at, created_by, created_at`

func (r *invitationsRepo) CreateInvitation(ctx context.Context, inv domain.Invitation) error {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO invitations (`+invitationColumns+`)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		inv.ID, inv.CompanyID, inv.EmployeeID, inv.TokenHash, inv.Email, ts(inv.ExpiresAt),
		inv.IsUsed, nullTS(inv.UsedAt), mapStringNull(inv.CreatedBy), ts(inv.CreatedAt),
	)
	return mapConstraint(err)
}

func (r *invitationsRepo) GetInvitationByTokenHash(ctx context.Context, hash string) (domain.Invitation, error) {
	var (
		inv       domain.Invitation
		usedAt    sql.NullTime
		createdBy sql.NullString
	)
	err := r.db.QueryRowContext(ctx, `SELECT `+invitationColumns+` FROM invitations WHERE token_hash = ?`, hash).
		Scan(&inv.ID, &inv.CompanyID, &inv.EmployeeID, &inv.TokenHash, &inv.Email, &inv.ExpiresAt,
			&inv.IsUsed, &usedAt, &createdBy, &inv.CreatedAt)
	if err != nil {
		return domain.Invitation{}, mapNotFound(err)
	}
	inv.ExpiresAt = inv.ExpiresAt.UTC()
	inv.CreatedAt = inv.CreatedAt.UTC()
	inv.UsedAt = mapNullTimePtr(usedAt)
	inv.CreatedBy = mapNullString(createdBy)
	return inv, nil
}

func (r *invitationsRepo) ExpireOpenInvitations(ctx context.Context, employeeID string, at time.Time) (int64, error) {
	return execCount(ctx, r.db, `
		UPDATE invitations
		   SET expires_at = ?
		 WHERE employee_id = ? AND is_used = 0 AND expires_at > ?`,
		ts(at), employeeID, ts(at),
	)
}

func (r *invitationsRepo) MarkInvitationUsed(ctx context.Context, id string, at time.Time) error {
	return execOne(ctx, r.db, `UPDATE invitations SET is_used = 1, used_at = ? WHERE id = ? AND is_used = 0`, ts(at), id)
}

func (r *invitationsRepo) DeleteInvitationsExpiredBefore(ctx context.Context, cutoff time.Time) (int64, error) {
	return execCount(ctx, r.db, `DELETE FROM invitations WHERE expires_at < ?`, ts(cutoff))
}
