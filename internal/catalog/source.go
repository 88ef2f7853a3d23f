package catalog

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"log/slog"
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/klauspost/compress/gzip"

	"eventrec.dev/internal/appconf"
	"eventrec.dev/internal/logging"
)

const maxSourceSize = 64 << 20

var gzipMagic = []byte{0x1f, 0x8b}

func isRemote(source string) bool {
	return strings.HasPrefix(source, "http://") || strings.HasPrefix(source, "https://")
}

// rawCatalogData fetches the catalog bytes from a local file or an HTTP(S) URL.
func rawCatalogData(ctx context.Context, config appconf.CatalogConfig) ([]byte, error) {
	if !isRemote(config.Source) {
		b, err := os.ReadFile(config.Source)
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", ErrSourceNotFound, config.Source)
		}
		if err != nil {
			return nil, fmt.Errorf("error reading local catalog file: %w", err)
		}
		return b, nil
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, config.Source, nil)
	if err != nil {
		return nil, fmt.Errorf("error creating catalog request: %w", err)
	}
	if config.AuthHeaderKey != "" && config.AuthHeaderValue != "" {
		req.Header.Set(config.AuthHeaderKey, config.AuthHeaderValue)
	}

	client := &http.Client{Timeout: 60 * time.Second}
	resp, err := client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: error downloading catalog: %v", ErrSourceNotFound, err)
	}
	defer logging.SafeCloseWithLogging(resp.Body,
		slog.Default().With(slog.String("component", "catalog_downloader")),
		"http_response_body")

	if resp.StatusCode == http.StatusNotFound {
		return nil, fmt.Errorf("%w: %s returned 404", ErrSourceNotFound, config.Source)
	}
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("error downloading catalog: unexpected status %d", resp.StatusCode)
	}

	b, err := io.ReadAll(io.LimitReader(resp.Body, maxSourceSize+1))
	if err != nil {
		return nil, fmt.Errorf("error reading catalog response: %w", err)
	}
	if len(b) > maxSourceSize {
		return nil, fmt.Errorf("catalog exceeds %d bytes", maxSourceSize)
	}
	return b, nil
}

// decompress gunzips data that starts with the gzip magic number and returns anything else unchanged.
func decompress(data []byte) ([]byte, error) {
	if !bytes.HasPrefix(data, gzipMagic) {
		return data, nil
	}
	zr, err := gzip.NewReader(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("error opening gzip catalog: %w", err)
	}
	defer func() { _ = zr.Close() }()

	out, err := io.ReadAll(io.LimitReader(zr, maxSourceSize+1))
	if err != nil {
		return nil, fmt.Errorf("error decompressing catalog: %w", err)
	}
	if len(out) > maxSourceSize {
		return nil, fmt.Errorf("decompressed catalog exceeds %d bytes", maxSourceSize)
	}
	return out, nil
}

// loadEvents fetches, decompresses and parses a catalog source.
func loadEvents(ctx context.Context, config appconf.CatalogConfig) (*Catalog, error) {
	raw, err := rawCatalogData(ctx, config)
	if err != nil {
		return nil, err
	}
	data, err := decompress(raw)
	if err != nil {
		return nil, err
	}
	events, err := ParseEvents(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("error parsing catalog %s: %w", config.Source, err)
	}
	return New(events, time.Now()), nil
}
