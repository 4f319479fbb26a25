// Package cli is the onboard command tree.
package cli

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/spf13/cobra"

	"github.com/aussiebroadwan/onboard/internal/onboard/app"
	"github.com/aussiebroadwan/onboard/internal/onboard/domain"
	"github.com/aussiebroadwan/onboard/internal/onboard/notify"
)

// env carries what every subcommand needs once the config is loaded.
type env struct {
	cfg    app.Config
	logger *slog.Logger
}

// NewRootCommand builds the command tree. Configuration comes from the
// environment, loaded before any subcommand runs.
func NewRootCommand() *cobra.Command {
	e := &env{}

	root := &cobra.Command{
		Use:   "onboard",
		Short: "Multi-tenant employee onboarding service",
		Long: `onboard tracks new hires through their onboarding checklist: employee
records, task templates, assignments, invitations and progress.

Configuration is read from the environment and an optional .env file.`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := app.LoadConfig()
			if err != nil {
				return err
			}
			e.cfg = cfg
			e.logger = app.NewLogger(cfg)
			return nil
		},
	}

	root.AddCommand(
		newServeCommand(e),
		newMigrateCommand(e),
		newProvisionCommand(e),
		newSeedCommand(e),
		newTokenCommand(e),
	)
	return root
}

// Execute runs the root command.
func Execute(ctx context.Context) error {
	return NewRootCommand().ExecuteContext(ctx)
}

// openServices opens the migrated store and the services over it. Mail goes
// to the log so CLI runs never send real invitations.
func (e *env) openServices(ctx context.Context) (app.Database, *app.Services, error) {
	db, err := app.OpenMigratedStore(ctx, e.cfg.Database)
	if err != nil {
		return nil, nil, err
	}
	return db, app.NewServices(e.cfg, db, notify.LogSender{}, e.logger), nil
}

// resolveActor accepts an actor id or email.
func resolveActor(ctx context.Context, db app.Database, svc *app.Services, ref string) (domain.Actor, error) {
	id := ref
	if strings.Contains(ref, "@") {
		a, err := db.Actors().GetActorByEmail(ctx, ref)
		if err != nil {
			return domain.Actor{}, fmt.Errorf("no actor with email %s: %w", ref, err)
		}
		id = a.ID
	}
	return svc.Identity.ResolveActor(ctx, id)
}
