package service

import (
	"context"
	"errors"
	"log/slog"
	"strings"

	"github.com/aussiebroadwan/onboard/internal/onboard/domain"
	"github.com/aussiebroadwan/onboard/internal/onboard/store"
	"github.com/aussiebroadwan/onboard/pkg/slogx"
)

// ProvisionService creates tenants. It is not behind the policy table: the
// transport gates it with a shared provisioning token.
type ProvisionService struct {
	Base
}

type ProvisionCompanyInput struct {
	Name             string
	Domain           string
	SubscriptionPlan string
	EmployeeLimit    int
}

type ProvisionAdminInput struct {
	Email     string
	FirstName string
	LastName  string
}

type ProvisionInput struct {
	Company ProvisionCompanyInput
	Admin   ProvisionAdminInput
}

type Provisioned struct {
	Company domain.Company
	Admin   domain.Actor
}

// Provision creates a company and its first admin in one transaction.
func (s *ProvisionService) Provision(ctx context.Context, in ProvisionInput) (Provisioned, error) {
	// 1. Validate.
	name := strings.TrimSpace(in.Company.Name)
	if name == "" {
		return Provisioned{}, domain.Validation("company name is required")
	}
	domainName := strings.ToLower(strings.TrimSpace(in.Company.Domain))
	if domainName == "" || strings.ContainsAny(domainName, " /@") {
		return Provisioned{}, domain.Validation("invalid company domain %q", in.Company.Domain)
	}
	if in.Company.EmployeeLimit < 0 {
		return Provisioned{}, domain.Validation("employee limit must not be negative")
	}
	email := strings.TrimSpace(in.Admin.Email)
	if err := domain.ValidateEmail(email); err != nil {
		return Provisioned{}, err
	}
	plan := strings.TrimSpace(in.Company.SubscriptionPlan)
	if plan == "" {
		plan = domain.DefaultSubscriptionPlan
	}

	now := s.now()
	co := domain.Company{
		ID:               s.id(),
		Name:             name,
		Domain:           domainName,
		SubscriptionPlan: plan,
		EmployeeLimit:    in.Company.EmployeeLimit,
		CreatedAt:        now,
		UpdatedAt:        now,
	}
	admin := domain.Actor{
		ID:        s.id(),
		CompanyID: co.ID,
		Email:     email,
		FirstName: strings.TrimSpace(in.Admin.FirstName),
		LastName:  strings.TrimSpace(in.Admin.LastName),
		Role:      domain.RoleAdmin,
		IsActive:  true,
		CreatedAt: now,
		UpdatedAt: now,
	}

	// 2. Write both or neither.
	err := s.Store.WithTx(ctx, func(tx store.Tx) error {
		if _, err := tx.Companies().GetCompanyByDomain(ctx, domainName); err == nil {
			return domain.Conflict("domain %s is already registered", domainName)
		} else if !errors.Is(err, store.ErrNotFound) {
			return translate(err, "company")
		}
		if err := tx.Companies().CreateCompany(ctx, co); err != nil {
			return translate(err, "company")
		}
		return translate(tx.Actors().CreateActor(ctx, admin), "an account with this email")
	})
	if err != nil {
		return Provisioned{}, err
	}

	slogx.FromContext(ctx).Info("company provisioned",
		slog.String("company_id", co.ID),
		slog.String("domain", co.Domain),
		slog.String("admin_id", admin.ID),
	)
	return Provisioned{Company: co, Admin: admin}, nil
}
