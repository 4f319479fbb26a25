package sqlite

import (
	"context"
	"database/sql"
	"time"

	"github.com/aussiebroadwan/onboard/internal/onboard/domain"
)

type actorsRepo struct {
	db DBTX
}

const actorColumns = `id, company_id, email, first_name, last_name, role, is_active, last_login_at, created_at, updated_at`

func (r *actorsRepo) CreateActor(ctx context.Context, a domain.Actor) error {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO actors (`+actorColumns+`)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		a.ID, a.CompanyID, a.Email, a.FirstName, a.LastName, string(a.Role), a.IsActive,
		nullTS(a.LastLoginAt), ts(a.CreatedAt), ts(a.UpdatedAt),
	)
	return mapConstraint(err)
}

func (r *actorsRepo) GetActorByID(ctx context.Context, id string) (domain.Actor, error) {
	row := r.db.QueryRowContext(ctx, `SELECT `+actorColumns+` FROM actors WHERE id = ?`, id)
	return scanActor(row)
}

func (r *actorsRepo) GetActorByEmail(ctx context.Context, email string) (domain.Actor, error) {
	row := r.db.QueryRowContext(ctx, `SELECT `+actorColumns+` FROM actors WHERE email = ?`, email)
	return scanActor(row)
}

func (r *actorsRepo) TouchLastLogin(ctx context.Context, id string, at time.Time) error {
	return execOne(ctx, r.db, `UPDATE actors SET last_login_at = ?, updated_at = ? WHERE id = ?`, ts(at), ts(at), id)
}

func scanActor(row *sql.Row) (domain.Actor, error) {
	var (
		a         domain.Actor
		role      string
		lastLogin sql.NullTime
	)
	if err := row.Scan(&a.ID, &a.CompanyID, &a.Email, &a.FirstName, &a.LastName, &role, &a.IsActive,
		&lastLogin, &a.CreatedAt, &a.UpdatedAt); err != nil {
		return domain.Actor{}, mapNotFound(err)
	}
	a.Role = domain.Role(role)
	a.LastLoginAt = mapNullTimePtr(lastLogin)
	a.CreatedAt = a.CreatedAt.UTC()
	a.UpdatedAt = a.UpdatedAt.UTC()
	return a, nil
}
