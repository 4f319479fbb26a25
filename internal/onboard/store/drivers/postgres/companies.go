package postgres

import (
	"context"
	"database/sql"
	"strings"

	"github.com/aussiebroadwan/onboard/internal/onboard/domain"
)

const (
	companyColumns = `id, name, domain, subscription_plan, employee_limit, created_at, updated_at`

	sqlInsertCompany = `INSERT INTO companies (` + companyColumns + `) VALUES ($1, $2, $3, $4, $5, $6, $7)`
	sqlCompanyByID   = `SELECT ` + companyColumns + ` FROM companies WHERE id = $1`
	sqlCompanyForUpd = sqlCompanyByID + ` FOR UPDATE`
	sqlCompanyByDom  = `SELECT ` + companyColumns + ` FROM companies WHERE domain = $1`
)

type companiesRepo struct {
	q Queryer
}

func (r *companiesRepo) CreateCompany(ctx context.Context, c domain.Company) error {
	plan := c.SubscriptionPlan
	if plan == "" {
		plan = domain.DefaultSubscriptionPlan
	}
	_, err := r.q.Exec(ctx, sqlInsertCompany,
		c.ID, c.Name, nullableString(strings.ToLower(c.Domain)), plan, c.EmployeeLimit,
		c.CreatedAt.UTC(), c.UpdatedAt.UTC())
	return translatePgError(err)
}

func (r *companiesRepo) GetCompanyByID(ctx context.Context, id string) (domain.Company, error) {
	return scanCompany(r.q.QueryRow(ctx, sqlCompanyByID, id))
}

func (r *companiesRepo) GetCompanyForUpdate(ctx context.Context, id string) (domain.Company, error) {
	return scanCompany(r.q.QueryRow(ctx, sqlCompanyForUpd, id))
}

func (r *companiesRepo) GetCompanyByDomain(ctx context.Context, domainName string) (domain.Company, error) {
	return scanCompany(r.q.QueryRow(ctx, sqlCompanyByDom, strings.ToLower(domainName)))
}

func scanCompany(row interface{ Scan(...any) error }) (domain.Company, error) {
	var (
		c   domain.Company
		dom sql.NullString
	)
	if err := row.Scan(&c.ID, &c.Name, &dom, &c.SubscriptionPlan, &c.EmployeeLimit, &c.CreatedAt, &c.UpdatedAt); err != nil {
		return domain.Company{}, translatePgError(err)
	}
	c.Domain = dom.String
	c.CreatedAt = c.CreatedAt.UTC()
	c.UpdatedAt = c.UpdatedAt.UTC()
	return c, nil
}
