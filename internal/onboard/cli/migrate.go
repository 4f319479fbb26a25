package cli

import (
	"errors"
	"fmt"

	"github.com/golang-migrate/migrate/v4"
	"github.com/spf13/cobra"

	"github.com/aussiebroadwan/onboard/internal/onboard/app"
)

func newMigrateCommand(e *env) *cobra.Command {
	var steps int

	cmd := &cobra.Command{
		Use:       "migrate [up|down|version]",
		Short:     "Apply, roll back or inspect schema migrations",
		Long:      "Runs the embedded migrations against DATABASE_DRIVER. down rolls back --steps migrations (default 1).",
		Args:      cobra.MatchAll(cobra.MaximumNArgs(1), cobra.OnlyValidArgs),
		ValidArgs: []string{"up", "down", "version"},
		RunE: func(cmd *cobra.Command, args []string) error {
			action := "up"
			if len(args) == 1 {
				action = args[0]
			}

			db, err := app.OpenStore(cmd.Context(), e.cfg.Database)
			if err != nil {
				return err
			}
			defer db.Close()

			m, err := db.Migrator()
			if err != nil {
				return fmt.Errorf("create migrator: %w", err)
			}
			defer m.Close()

			out := cmd.OutOrStdout()
			switch action {
			case "up":
				err = m.Up()
			case "down":
				if steps <= 0 {
					return fmt.Errorf("--steps must be positive")
				}
				err = m.Steps(-steps)
			case "version":
				v, dirty, verr := m.Version()
				if errors.Is(verr, migrate.ErrNilVersion) {
					fmt.Fprintln(out, "no migrations applied")
					return nil
				}
				if verr != nil {
					return verr
				}
				fmt.Fprintf(out, "version %d (dirty: %t)\n", v, dirty)
				return nil
			}

			if errors.Is(err, migrate.ErrNoChange) {
				fmt.Fprintln(out, "no change")
				return nil
			}
			if err != nil {
				return fmt.Errorf("migrate %s: %w", action, err)
			}
			fmt.Fprintf(out, "migrate %s done\n", action)
			return nil
		},
	}
	cmd.Flags().IntVar(&steps, "steps", 1, "number of migrations to roll back with down")
	return cmd
}
