package postgres

import (
	"context"
	"database/sql"
	"time"

	"github.com/aussiebroadwan/onboard/internal/onboard/domain"
)

const (
	actorColumns = `id, company_id, email, first_name, last_name, role, is_active, last_login_at, created_at, updated_at`

	sqlInsertActor    = `INSERT INTO actors (` + actorColumns + `) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`
	sqlActorByID      = `SELECT ` + actorColumns + ` FROM actors WHERE id = $1`
	sqlActorByEmail   = `SELECT ` + actorColumns + ` FROM actors WHERE lower(email) = lower($1)`
	sqlTouchLastLogin = `UPDATE actors SET last_login_at = $1, updated_at = $1 WHERE id = $2`
)

type actorsRepo struct {
	q Queryer
}

func (r *actorsRepo) CreateActor(ctx context.Context, a domain.Actor) error {
	_, err := r.q.Exec(ctx, sqlInsertActor,
		a.ID, a.CompanyID, a.Email, a.FirstName, a.LastName, string(a.Role), a.IsActive,
		nullableTime(a.LastLoginAt), a.CreatedAt.UTC(), a.UpdatedAt.UTC())
	return translatePgError(err)
}

func (r *actorsRepo) GetActorByID(ctx context.Context, id string) (domain.Actor, error) {
	return scanActor(r.q.QueryRow(ctx, sqlActorByID, id))
}

func (r *actorsRepo) GetActorByEmail(ctx context.Context, email string) (domain.Actor, error) {
	return scanActor(r.q.QueryRow(ctx, sqlActorByEmail, email))
}

func (r *actorsRepo) TouchLastLogin(ctx context.Context, id string, at time.Time) error {
	return execOne(ctx, r.q, sqlTouchLastLogin, at.UTC(), id)
}

func scanActor(row interface{ Scan(...any) error }) (domain.Actor, error) {
	var (
		a         domain.Actor
		role      string
		lastLogin sql.NullTime
	)
	if err := row.Scan(&a.ID, &a.CompanyID, &a.Email, &a.FirstName, &a.LastName, &role, &a.IsActive,
		&lastLogin, &a.CreatedAt, &a.UpdatedAt); err != nil {
		return domain.Actor{}, translatePgError(err)
	}
	a.Role = domain.Role(role)
	a.LastLoginAt = timePtr(lastLogin)
	a.CreatedAt = a.CreatedAt.UTC()
	a.UpdatedAt = a.UpdatedAt.UTC()
	return a, nil
}
