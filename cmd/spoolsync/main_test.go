package main

import (
	"bytes"
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.bittr.nu/spoolsync/internal/app"
	"go.bittr.nu/spoolsync/internal/core/domain"
	"go.bittr.nu/spoolsync/internal/core/ports/mocks"
	"go.uber.org/mock/gomock"
)

func testProvider(t *testing.T) ComponentProvider {
	t.Helper()
	ctrl := gomock.NewController(t)

	log := mocks.NewMockLogger(ctrl)
	log.EXPECT().Debug(gomock.Any()).AnyTimes()
	log.EXPECT().Info(gomock.Any()).AnyTimes()
	log.EXPECT().Warn(gomock.Any()).AnyTimes()
	log.EXPECT().Error(gomock.Any()).AnyTimes()
	log.EXPECT().SetVerbose(gomock.Any()).AnyTimes()
	log.EXPECT().SetOutput(gomock.Any()).AnyTimes()

	loader := mocks.NewMockConfigLoader(ctrl)
	loader.EXPECT().Load(gomock.Any()).Return(domain.Settings{}, nil).AnyTimes()

	return func(context.Context) (*app.Components, func(), error) {
		return &app.Components{
			App:    app.New(loader, log),
			Logger: log,
		}, func() {}, nil
	}
}

func TestRunVersion(t *testing.T) {
	stderr := &bytes.Buffer{}

	code := run(context.Background(), []string{"version"}, stderr, testProvider(t))

	assert.Equal(t, 0, code)
	assert.Empty(t, stderr.String())
}

func TestRunProviderFailure(t *testing.T) {
	stderr := &bytes.Buffer{}
	provider := func(context.Context) (*app.Components, func(), error) {
		return nil, nil, errors.New("wiring failed")
	}

	code := run(context.Background(), []string{"version"}, stderr, provider)

	assert.Equal(t, 1, code)
	require.Contains(t, stderr.String(), "Error: wiring failed")
}

func TestRunCommandFailure(t *testing.T) {
	stderr := &bytes.Buffer{}

	// sync without an output directory fails during session setup.
	code := run(context.Background(), []string{"sync", "-t", t.TempDir()}, stderr, testProvider(t))

	assert.Equal(t, 1, code)
}
