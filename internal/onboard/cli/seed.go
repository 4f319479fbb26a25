package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/aussiebroadwan/onboard/internal/onboard/seed"
)

func newSeedCommand(e *env) *cobra.Command {
	var file, as string

	cmd := &cobra.Command{
		Use:   "seed",
		Short: "Load a YAML catalog of tasks and employees into a company",
		Long: `Loads tasks, and optionally employees, from a YAML catalog. Records are
created as the --as actor, so they land in that actor's company. Running the
same file twice creates nothing new.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()

			catalog, err := seed.LoadFile(file)
			if err != nil {
				return err
			}

			db, svc, err := e.openServices(ctx)
			if err != nil {
				return err
			}
			defer db.Close()

			actor, err := resolveActor(ctx, db, svc, as)
			if err != nil {
				return err
			}

			s := &seed.Seeder{Tasks: svc.Tasks, Employees: svc.Employees}
			res, err := s.Apply(ctx, actor, catalog)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "tasks: %d created, %d skipped\nemployees: %d created, %d skipped\n",
				res.TasksCreated, res.TasksSkipped, res.EmployeesCreated, res.EmployeesSkipped)
			return nil
		},
	}

	cmd.Flags().StringVarP(&file, "file", "f", "", "catalog file")
	cmd.Flags().StringVar(&as, "as", "", "actor id or email to seed as (admin or hr)")
	_ = cmd.MarkFlagRequired("file")
	_ = cmd.MarkFlagRequired("as")
	return cmd
}
