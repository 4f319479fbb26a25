package service

import (
	"context"
	"testing"

	"github.com/aussiebroadwan/onboard/internal/onboard/domain"
	"github.com/stretchr/testify/require"
)

func TestProvision(t *testing.T) {
	t.Parallel()
	f := newFixture(t)
	ctx := context.Background()

	require.Equal(t, domain.DefaultSubscriptionPlan, f.company.SubscriptionPlan)
	require.Equal(t, domain.RoleAdmin, f.admin.Role)
	require.Equal(t, f.company.ID, f.admin.CompanyID)

	t.Run("domain taken", func(t *testing.T) {
		_, err := f.provision.Provision(ctx, ProvisionInput{
			Company: ProvisionCompanyInput{Name: "Acme Again", Domain: "ACME.test"},
			Admin:   ProvisionAdminInput{Email: "second@acme.test"},
		})
		require.ErrorIs(t, err, domain.ErrConflict)
	})

	t.Run("admin email taken rolls back the company", func(t *testing.T) {
		_, err := f.provision.Provision(ctx, ProvisionInput{
			Company: ProvisionCompanyInput{Name: "Initech", Domain: "initech.test"},
			Admin:   ProvisionAdminInput{Email: f.admin.Email},
		})
		require.ErrorIs(t, err, domain.ErrConflict)

		_, err = f.store.Companies().GetCompanyByDomain(ctx, "initech.test")
		require.Error(t, err)
	})

	t.Run("validation", func(t *testing.T) {
		for _, in := range []ProvisionInput{
			{Company: ProvisionCompanyInput{Domain: "x.test"}, Admin: ProvisionAdminInput{Email: "a@x.test"}},
			{Company: ProvisionCompanyInput{Name: "X", Domain: "bad domain"}, Admin: ProvisionAdminInput{Email: "a@x.test"}},
			{Company: ProvisionCompanyInput{Name: "X", Domain: "x.test", EmployeeLimit: -1}, Admin: ProvisionAdminInput{Email: "a@x.test"}},
			{Company: ProvisionCompanyInput{Name: "X", Domain: "x.test"}, Admin: ProvisionAdminInput{Email: "nope"}},
		} {
			_, err := f.provision.Provision(ctx, in)
			require.ErrorIs(t, err, domain.ErrValidation)
		}
	})
}
