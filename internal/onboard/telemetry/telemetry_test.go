package telemetry

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestSetupDisabled(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	shutdown, err := Setup(ctx, Config{Enabled: false, Endpoint: "http://collector:4318"})
	require.NoError(t, err)
	require.NoError(t, shutdown(ctx))

	shutdown, err = Setup(ctx, Config{Enabled: true})
	require.NoError(t, err)
	require.NoError(t, shutdown(ctx))
}
