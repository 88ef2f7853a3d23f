package catalog

import (
	"context"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"eventrec.dev/internal/appconf"
	"eventrec.dev/internal/models"
)

func TestLoadEvents_LocalSources(t *testing.T) {
	testCases := []struct {
		name    string
		fixture string
	}{
		{name: "PlainCSV", fixture: "events_seed.csv"},
		{name: "GzippedCSV", fixture: "events_seed.csv.gz"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			c, err := loadEvents(context.Background(), appconf.CatalogConfig{
				Source: models.GetFixturePath(t, tc.fixture),
			})
			require.NoError(t, err)

			assert.Equal(t, 12, c.Len())
			e, ok := c.Get("1")
			require.True(t, ok)
			assert.Equal(t, "Village Jazz Night", e.Name)
			assert.Equal(t, 35.0, e.TicketPrice)
			assert.False(t, c.LoadedAt().IsZero())
		})
	}
}

func TestLoadEvents_MissingFile(t *testing.T) {
	_, err := loadEvents(context.Background(), appconf.CatalogConfig{
		Source: t.TempDir() + "/does-not-exist.csv",
	})
	assert.ErrorIs(t, err, ErrSourceNotFound)
}

func TestLoadEvents_MalformedFile(t *testing.T) {
	path := t.TempDir() + "/bad.csv"
	require.NoError(t, os.WriteFile(path, []byte(header+"1,A,Jazz,free,0,0,x,2025-01-01,,,\n"), 0o600))

	_, err := loadEvents(context.Background(), appconf.CatalogConfig{Source: path})
	assert.ErrorIs(t, err, ErrMalformedRecord)
	assert.Contains(t, err.Error(), "ticket_price")
}

func TestLoadEvents_RemoteSource(t *testing.T) {
	plain, err := os.ReadFile(models.GetFixturePath(t, "events_seed.csv"))
	require.NoError(t, err)
	gzipped, err := os.ReadFile(models.GetFixturePath(t, "events_seed.csv.gz"))
	require.NoError(t, err)

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Header.Get("Authorization") != "Bearer secret" {
			w.WriteHeader(http.StatusUnauthorized)
			return
		}
		switch r.URL.Path {
		case "/events.csv":
			_, _ = w.Write(plain)
		case "/events.csv.gz":
			_, _ = w.Write(gzipped)
		default:
			http.NotFound(w, r)
		}
	}))
	defer server.Close()

	authed := func(path string) appconf.CatalogConfig {
		return appconf.CatalogConfig{
			Source:          server.URL + path,
			AuthHeaderKey:   "Authorization",
			AuthHeaderValue: "Bearer secret",
		}
	}

	t.Run("PlainWithAuthHeader", func(t *testing.T) {
		c, err := loadEvents(context.Background(), authed("/events.csv"))
		require.NoError(t, err)
		assert.Equal(t, 12, c.Len())
	})

	t.Run("Gzipped", func(t *testing.T) {
		c, err := loadEvents(context.Background(), authed("/events.csv.gz"))
		require.NoError(t, err)
		assert.Equal(t, 12, c.Len())
	})

	t.Run("NotFound", func(t *testing.T) {
		_, err := loadEvents(context.Background(), authed("/missing.csv"))
		assert.ErrorIs(t, err, ErrSourceNotFound)
	})

	t.Run("Unauthorized", func(t *testing.T) {
		_, err := loadEvents(context.Background(), appconf.CatalogConfig{Source: server.URL + "/events.csv"})
		require.Error(t, err)
		assert.NotErrorIs(t, err, ErrSourceNotFound)
		assert.Contains(t, err.Error(), "401")
	})
}

func TestLoadEvents_UnreachableHost(t *testing.T) {
	server := httptest.NewServer(http.NotFoundHandler())
	url := server.URL
	server.Close()

	_, err := loadEvents(context.Background(), appconf.CatalogConfig{Source: url + "/events.csv"})
	assert.ErrorIs(t, err, ErrSourceNotFound)
}

func TestDecompress_PassesThroughPlainData(t *testing.T) {
	out, err := decompress([]byte("id,name\n"))
	require.NoError(t, err)
	assert.Equal(t, "id,name\n", string(out))

	_, err = decompress([]byte{0x1f, 0x8b, 0x00})
	assert.Error(t, err)
}
