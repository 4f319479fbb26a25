package postgres

import (
	"context"
	"database/sql"
	"time"

	"github.com/aussiebroadwan/onboard/internal/onboard/domain"
	"github.com/aussiebroadwan/onboard/internal/onboard/store"
	"github.com/jackc/pgx/v5"
)

const (
	roleAssignmentColumns = `id, company_id, actor_id, role, scope_type, scope_value, expires_at, granted_by, revoked_at, created_at`

	sqlInsertRoleAssignment = `INSERT INTO role_assignments (` + roleAssignmentColumns + `) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`
	sqlRoleAssignmentByID   = `SELECT ` + roleAssignmentColumns + ` FROM role_assignments WHERE id = $1`
	sqlRoleAssignmentsByCo  = `SELECT ` + roleAssignmentColumns + ` FROM role_assignments WHERE company_id = $1 ORDER BY created_at DESC, id DESC`
	sqlRoleAssignmentsByAct = `SELECT ` + roleAssignmentColumns + ` FROM role_assignments WHERE company_id = $1 AND actor_id = $2 ORDER BY created_at DESC, id DESC`
	sqlActiveRoleAssignment = `SELECT ` + roleAssignmentColumns + ` FROM role_assignments
 WHERE actor_id = $1 AND revoked_at IS NULL AND (expires_at IS NULL OR expires_at > $2)
 ORDER BY created_at, id`
	sqlRevokeRoleAssignment = `UPDATE role_assignments SET revoked_at = $1 WHERE id = $2 AND revoked_at IS NULL`
	sqlDeleteStaleGrants    = `DELETE FROM role_assignments WHERE revoked_at IS NOT NULL OR (expires_at IS NOT NULL AND expires_at <= $1)`
)

type roleAssignmentsRepo struct {
	q Queryer
}

func (r *roleAssignmentsRepo) CreateRoleAssignment(ctx context.Context, g domain.RoleAssignment) error {
	_, err := r.q.Exec(ctx, sqlInsertRoleAssignment,
		g.ID, g.CompanyID, g.ActorID, string(g.Role), string(g.ScopeType), g.ScopeValue,
		nullableTime(g.ExpiresAt), nullableString(g.GrantedBy), nullableTime(g.RevokedAt), g.CreatedAt.UTC())
	return translatePgError(err)
}

func (r *roleAssignmentsRepo) GetRoleAssignmentByID(ctx context.Context, id string) (domain.RoleAssignment, error) {
	grants, err := r.list(ctx, sqlRoleAssignmentByID, id)
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
		return r.list(ctx, sqlRoleAssignmentsByCo, companyID)
	}
	return r.list(ctx, sqlRoleAssignmentsByAct, companyID, actorID)
}

func (r *roleAssignmentsRepo) ListActiveRoleAssignments(ctx context.Context, actorID string, now time.Time) ([]domain.RoleAssignment, error) {
	return r.list(ctx, sqlActiveRoleAssignment, actorID, now.UTC())
}

func (r *roleAssignmentsRepo) RevokeRoleAssignment(ctx context.Context, id string, at time.Time) error {
	return execOne(ctx, r.q, sqlRevokeRoleAssignment, at.UTC(), id)
}

func (r *roleAssignmentsRepo) DeleteStaleRoleAssignments(ctx context.Context, now time.Time) (int64, error) {
	return execCount(ctx, r.q, sqlDeleteStaleGrants, now.UTC())
}

func (r *roleAssignmentsRepo) list(ctx context.Context, query string, args ...any) ([]domain.RoleAssignment, error) {
	rows, err := r.q.Query(ctx, query, args...)
	if err != nil {
		return nil, translatePgError(err)
	}
	defer rows.Close()

	var out []domain.RoleAssignment
	for rows.Next() {
		g, err := scanRoleAssignment(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, g)
	}
	return out, translatePgError(rows.Err())
}

func scanRoleAssignment(rows pgx.Rows) (domain.RoleAssignment, error) {
	var (
		g                domain.RoleAssignment
		role, scope      string
		expires, revoked sql.NullTime
		grantedBy        sql.NullString
	)
	if err := rows.Scan(&g.ID, &g.CompanyID, &g.ActorID, &role, &scope, &g.ScopeValue,
		&expires, &grantedBy, &revoked, &g.CreatedAt); err != nil {
		return domain.RoleAssignment{}, translatePgError(err)
	}
	g.Role = domain.Role(role)
	g.ScopeType = domain.ScopeType(scope)
	g.ExpiresAt = timePtr(expires)
	g.RevokedAt = timePtr(revoked)
	g.GrantedBy = grantedBy.String
	g.CreatedAt = g.CreatedAt.UTC()
	return g, nil
}
