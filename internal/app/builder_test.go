package app_test

import (
	"context"
	"testing"

	"github.com/grindlemire/graft"
	"github.com/stretchr/testify/require"
	"go.bittr.nu/spoolsync/internal/app"
	_ "go.bittr.nu/spoolsync/internal/wiring"
)

func TestComponentsNodeBuilds(t *testing.T) {
	components, _, err := graft.ExecuteFor[*app.Components](context.Background())
	require.NoError(t, err)
	require.NotNil(t, components.App)
	require.NotNil(t, components.Logger)
}
