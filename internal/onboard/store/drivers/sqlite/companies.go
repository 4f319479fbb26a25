package sqlite

import (
	"context"
	"database/sql"
	"strings"

	"github.com/aussiebroadwan/onboard/internal/onboard/domain"
)

type companiesRepo struct {
	db DBTX
}

const companyColumns = `id, name, domain, subscription_plan, employee_limit, created_at, updated_at`

func (r *companiesRepo) CreateCompany(ctx context.Context, c domain.Company) error {
	plan := c.SubscriptionPlan
	if plan == "" {
		plan = domain.DefaultSubscriptionPlan
	}
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO companies (`+companyColumns+`)
		VALUES (?, ?, ?, ?, ?, ?, ?)`,
		c.ID, c.Name, mapStringNull(strings.ToLower(c.Domain)), plan, c.EmployeeLimit,
		ts(c.CreatedAt), ts(c.UpdatedAt),
	)
	return mapConstraint(err)
}

func (r *companiesRepo) GetCompanyByID(ctx context.Context, id string) (domain.Company, error) {
	row := r.db.QueryRowContext(ctx, `SELECT `+companyColumns+` FROM companies WHERE id = ?`, id)
	return scanCompany(row)
}

// GetCompanyForUpdate is a plain read; see GetEmployeeForUpdate.
func (r *companiesRepo) GetCompanyForUpdate(ctx context.Context, id string) (domain.Company, error) {
	return r.GetCompanyByID(ctx, id)
}

func (r *companiesRepo) GetCompanyByDomain(ctx context.Context, domainName string) (domain.Company, error) {
	row := r.db.QueryRowContext(ctx, `SELECT `+companyColumns+` FROM companies WHERE domain = ?`, strings.ToLower(domainName))
	return scanCompany(row)
}

func scanCompany(row *sql.Row) (domain.Company, error) {
	var (
		c   domain.Company
		dom sql.NullString
	)
	if err := row.Scan(&c.ID, &c.Name, &dom, &c.SubscriptionPlan, &c.EmployeeLimit, &c.CreatedAt, &c.UpdatedAt); err != nil {
		return domain.Company{}, mapNotFound(err)
	}
	c.Domain = mapNullString(dom)
	c.CreatedAt = c.CreatedAt.UTC()
	c.UpdatedAt = c.UpdatedAt.UTC()
	return c, nil
}
