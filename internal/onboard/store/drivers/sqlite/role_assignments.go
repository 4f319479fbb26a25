package sqlite

import (
	"context"
	"database/sql"
	"time"

	"github.com/aussiebroadwan/onboard/internal/onboard/domain"
	"github.com/aussiebroadwan/onboard/internal/onboard/store"
)

type roleAssignmentsRepo struct {
	db DBTX
}

const roleAssignmentColumns = `id, company_id, actor_id, role, scope_type, scope_value, expires_at, granted_by, revoked_at, created_at`

func (r *roleAssignmentsRepo) CreateRoleAssignment(ctx context.Context, g domain.RoleAssignment) error {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO role_assignments (`+roleAssignmentColumns+`)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		g.ID, g.CompanyID, g.ActorID, string(g.Role), string(g.ScopeType), g.ScopeValue,
		nullTS(g.ExpiresAt), mapStringNull(g.GrantedBy), nullTS(g.RevokedAt), ts(g.CreatedAt),
	)
	return mapConstraint(err)
}

func (r *roleAssignmentsRepo) GetRoleAssignmentByID(ctx context.Context, id string) (domain.RoleAssignment, error) {
	grants, err := r.list(ctx, `WHERE id = ?`, id)
	if err != nil {
		return domain.RoleAssignment{}, err
	}
	if len(grants) == 0 {
		return domain.RoleAssignment{}, store.ErrNotFound
	}
	return grants[0], nil
}

func (r *roleAssignmentsRepo) ListRoleAssignments(ctx context.Context, companyID, actorID string) ([]domain.RoleAssignment, error) {
	if actorID == "" {
		return r.list(ctx, `WHERE company_id = ? ORDER BY created_at DESC, id DESC`, companyID)
	}
	return r.list(ctx, `WHERE company_id = ? AND actor_id = ? ORDER BY created_at DESC, id DESC`, companyID, actorID)
}

func (r *roleAssignmentsRepo) ListActiveRoleAssignments(ctx context.Context, actorID string, now time.Time) ([]domain.RoleAssignment, error) {
	return r.list(ctx, `
		WHERE actor_id = ? AND revoked_at IS NULL AND (expires_at IS NULL OR expires_at > ?)
		ORDER BY created_at, id`, actorID, ts(now))
}

func (r *roleAssignmentsRepo) RevokeRoleAssignment(ctx context.Context, id string, at time.Time) error {
	return execOne(ctx, r.db, `UPDATE role_assignments SET revoked_at = ? WHERE id = ? AND revoked_at IS NULL`, ts(at), id)
}

func (r *roleAssignmentsRepo) DeleteStaleRoleAssignments(ctx context.Context, now time.Time) (int64, error) {
	return execCount(ctx, r.db, `
		DELETE FROM role_assignments
		 WHERE revoked_at IS NOT NULL OR (expires_at IS NOT NULL AND expires_at <= ?)`, ts(now))
}

func (r *roleAssignmentsRepo) list(ctx context.Context, where string, args ...any) ([]domain.RoleAssignment, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT `+roleAssignmentColumns+` FROM role_assignments `+where, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []domain.RoleAssignment
	for rows.Next() {
		var (
			g                domain.RoleAssignment
			role, scope      string
			expires, revoked sql.NullTime
			grantedBy        sql.NullString
		)
		if err := rows.Scan(&g.ID, &g.CompanyID, &g.ActorID, &role, &scope, &g.ScopeValue,
			&expires, &grantedBy, &revoked, &g.CreatedAt); err != nil {
			return nil, err
		}
		g.Role = domain.Role(role)
		g.ScopeType = domain.ScopeType(scope)
		g.ExpiresAt = mapNullTimePtr(expires)
		g.RevokedAt = mapNullTimePtr(revoked)
		g.GrantedBy = mapNullString(grantedBy)
		g.CreatedAt = g.CreatedAt.UTC()
		out = append(out, g)
	}
	return out, rows.Err()
}
