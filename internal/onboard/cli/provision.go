package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/aussiebroadwan/onboard/internal/onboard/service"
)

func newProvisionCommand(e *env) *cobra.Command {
	var in service.ProvisionInput

	cmd := &cobra.Command{
		Use:   "provision",
		Short: "Create a company and its first admin",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()
			db, svc, err := e.openServices(ctx)
			if err != nil {
				return err
			}
			defer db.Close()

			p, err := svc.Provision.Provision(ctx, in)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "company %s (%s)\nadmin   %s <%s>\n",
				p.Company.ID, p.Company.Domain, p.Admin.ID, p.Admin.Email)
			return nil
		},
	}

	f := cmd.Flags()
	f.StringVar(&in.Company.Name, "name", "", "company name")
	f.StringVar(&in.Company.Domain, "domain", "", "company domain, unique across tenants")
	f.StringVar(&in.Company.SubscriptionPlan, "plan", "", "subscription plan")
	f.IntVar(&in.Company.EmployeeLimit, "employee-limit", 0, "maximum active employees, 0 for unlimited")
	f.StringVar(&in.Admin.Email, "admin-email", "", "first admin's email")
	f.StringVar(&in.Admin.FirstName, "admin-first-name", "", "first admin's first name")
	f.StringVar(&in.Admin.LastName, "admin-last-name", "", "first admin's last name")
	_ = cmd.MarkFlagRequired("name")
	_ = cmd.MarkFlagRequired("domain")
	_ = cmd.MarkFlagRequired("admin-email")
	return cmd
}
