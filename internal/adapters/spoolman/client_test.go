package spoolman_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.bittr.nu/spoolsync/internal/adapters/spoolman"
	"go.bittr.nu/spoolsync/internal/core/domain"
	"go.bittr.nu/spoolsync/internal/core/ports/mocks"
	"go.uber.org/mock/gomock"
)

func quietLogger(t *testing.T) *mocks.MockLogger {
	t.Helper()
	ctrl := gomock.NewController(t)
	log := mocks.NewMockLogger(ctrl)
	log.EXPECT().Debug(gomock.Any()).AnyTimes()
	log.EXPECT().Info(gomock.Any()).AnyTimes()
	log.EXPECT().Warn(gomock.Any()).AnyTimes()
	log.EXPECT().Error(gomock.Any()).AnyTimes()
	return log
}

func TestClientFetchesEntities(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/api/v1/vendor":
			_, _ = w.Write([]byte(`[{"id": 3, "name": "acme"}]`))
		case "/api/v1/filament":
			_, _ = w.Write([]byte(`[{"id": 7, "vendor_id": 3, "material": "PLA"}]`))
		case "/api/v1/spool":
			_, _ = w.Write([]byte(`[{"id": 10, "filament_id": 7, "filament": {"id": 7}}]`))
		default:
			w.WriteHeader(http.StatusNotFound)
		}
	}))
	defer srv.Close()

	client := spoolman.NewClient(srv.URL+"/", quietLogger(t))
	ctx := context.Background()

	vendors, err := client.Vendors(ctx)
	require.NoError(t, err)
	require.Len(t, vendors, 1)
	assert.Equal(t, int64(3), vendors[0].ID)

	filaments, err := client.Filaments(ctx)
	require.NoError(t, err)
	require.Len(t, filaments, 1)
	assert.Equal(t, "PLA", filaments[0].Material)

	spools, err := client.Spools(ctx)
	require.NoError(t, err)
	require.Len(t, spools, 1)
	require.NotNil(t, spools[0].Filament)
	assert.Equal(t, int64(7), spools[0].Filament.ID)
}

func TestClientRetriesConnectionErrors(t *testing.T) {
	var calls atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		if calls.Add(1) < 3 {
			// Kill the connection without a response.
			hj, ok := w.(http.Hijacker)
			require.True(t, ok)
			conn, _, err := hj.Hijack()
			require.NoError(t, err)
			_ = conn.Close()
			return
		}
		_, _ = w.Write([]byte(`[]`))
	}))
	defer srv.Close()

	client := spoolman.NewClient(srv.URL, quietLogger(t))

	vendors, err := client.Vendors(context.Background())
	require.NoError(t, err)
	assert.Empty(t, vendors)
	assert.Equal(t, int32(3), calls.Load())
}

func TestClientStatusErrorIsTerminal(t *testing.T) {
	var calls atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		calls.Add(1)
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer srv.Close()

	client := spoolman.NewClient(srv.URL, quietLogger(t))

	_, err := client.Spools(context.Background())
	require.ErrorIs(t, err, domain.ErrTransport)
	// Status errors are not retried; the server already answered.
	assert.Equal(t, int32(1), calls.Load())
}

func TestClientMalformedBodyIsTerminal(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(`{"not": "an array"}`))
	}))
	defer srv.Close()

	client := spoolman.NewClient(srv.URL, quietLogger(t))

	_, err := client.Filaments(context.Background())
	require.ErrorIs(t, err, domain.ErrMalformedPayload)
}

func TestClientHonorsContextCancellation(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		hj, ok := w.(http.Hijacker)
		if ok {
			conn, _, _ := hj.Hijack()
			_ = conn.Close()
		}
	}))
	defer srv.Close()

	client := spoolman.NewClient(srv.URL, quietLogger(t))

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := client.Vendors(ctx)
	require.Error(t, err)
}
