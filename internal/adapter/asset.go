// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"

	"github.com/MKhiriev/go-house-builder/internal/config"
	"github.com/MKhiriev/go-house-builder/internal/logger"
	"github.com/MKhiriev/go-house-builder/internal/utils"
)

const assetChunkSize = 32 * 1024

type httpAssetFetcher struct {
	client *utils.HTTPClient
	logger *logger.Logger
}

// NewHTTPAssetFetcher constructs an [AssetFetcher] rooted at the gateway's
// base URL. cfg.RequestTimeout bounds only the wait for response headers;
// the body streams for up to preview.FetchTimeout, or until ctx is done when
// that is zero.
func NewHTTPAssetFetcher(cfg config.ClientAdapter, preview config.ClientPreview, logger *logger.Logger) (AssetFetcher, error) {
	client, err := newGatewayClient(cfg)
	if err != nil {
		return nil, err
	}

	transport := http.DefaultTransport.(*http.Transport).Clone()
	transport.ResponseHeaderTimeout = cfg.RequestTimeout
	client.
		SetTransport(transport).
		SetTimeout(preview.FetchTimeout)

	return &httpAssetFetcher{client: client, logger: logger}, nil
}

// Fetch implements [AssetFetcher].
func (f *httpAssetFetcher) Fetch(ctx context.Context, path string, progress func(loaded, total int64)) ([]byte, error) {
	resp, err := f.client.R().
		SetContext(ctx).
		SetDoNotParseResponse(true).
		Get(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %w", ErrTransport, path, err)
	}

	raw := resp.RawBody()
	defer raw.Close()

	if err = mapHTTPError(resp); err != nil {
		return nil, err
	}

	total := int64(-1)
	if resp.RawResponse != nil {
		total = resp.RawResponse.ContentLength
	}

	var buf bytes.Buffer
	chunk := make([]byte, assetChunkSize)
	for {
		n, readErr := raw.Read(chunk)
		if n > 0 {
			buf.Write(chunk[:n])
			if progress != nil {
				progress(int64(buf.Len()), total)
			}
		}
		if readErr == io.EOF {
			break
		}
		if readErr != nil {
			f.logger.Debug().Err(readErr).Str("func", "*httpAssetFetcher.Fetch").Msg("asset stream interrupted")
			return nil, fmt.Errorf("%w: %s: %w", ErrTransport, path, readErr)
		}
	}

	return buf.Bytes(), nil
}
