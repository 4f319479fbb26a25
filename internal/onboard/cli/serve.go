package cli

import (
	"github.com/spf13/cobra"

	"github.com/aussiebroadwan/onboard/internal/onboard/app"
)

func newServeCommand(e *env) *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP API",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			a, err := app.New(cmd.Context(), e.cfg)
			if err != nil {
				return err
			}
			return a.Run()
		},
	}
}
