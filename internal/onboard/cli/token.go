package cli

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/aussiebroadwan/onboard/internal/onboard/app"
	"github.com/aussiebroadwan/onboard/pkg/jwtx"
)

func newTokenCommand(e *env) *cobra.Command {
	var (
		subject string
		scopes  []string
		ttl     time.Duration
	)

	cmd := &cobra.Command{
		Use:   "token",
		Short: "Mint a development access token with the local signing key",
		Long: `Signs a JWT with AUTH_SIGNING_KEY_FILE for local testing. Servers that
verify against AUTH_JWKS_URL will reject it.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if e.cfg.Auth.JWKSURL != "" {
				return fmt.Errorf("token: AUTH_JWKS_URL is set; tokens come from the auth service")
			}
			signer, err := app.LoadSigner(e.cfg.Auth)
			if err != nil {
				return err
			}
			claims := jwtx.NewAccessClaims(subject, scopes, ttl, e.cfg.Auth.Issuer, e.cfg.Auth.Audience, time.Now())
			token, err := signer.Sign(claims)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), token)
			return nil
		},
	}

	cmd.Flags().StringVar(&subject, "sub", "", "actor id to put in the sub claim")
	cmd.Flags().StringSliceVar(&scopes, "scope", nil, "scopes to grant")
	cmd.Flags().DurationVar(&ttl, "ttl", time.Hour, "token lifetime")
	_ = cmd.MarkFlagRequired("sub")
	return cmd
}
