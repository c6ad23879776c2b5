// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package preview

import (
	"context"
	"encoding/binary"
	"errors"
	"fmt"
	"path"
	"strings"
	"sync"

	"github.com/MKhiriev/go-house-builder/internal/adapter"
	"github.com/MKhiriev/go-house-builder/internal/config"
	"github.com/MKhiriev/go-house-builder/internal/logger"
)

var (
	ErrLoadInProgress = errors.New("model load already in progress")
	ErrInvalidAsset   = errors.New("invalid model asset")
)

// State of the model asset.
type State int

const (
	Idle State = iota
	Loading
	Loaded
	Failed
)

func (s State) String() string {
	switch s {
	case Loading:
		return "loading"
	case Loaded:
		return "loaded"
	case Failed:
		return "failed"
	default:
		return "idle"
	}
}

// Progress is a byte count of the asset download. Total is -1 when the
// server did not announce a length.
type Progress struct {
	Loaded int64
	Total  int64
}

// Fraction returns Loaded/Total clamped to [0, 1], or 0 if Total is unknown.
func (p Progress) Fraction() float64 {
	if p.Total <= 0 {
		return 0
	}
	f := float64(p.Loaded) / float64(p.Total)
	if f > 1 {
		return 1
	}
	return f
}

// Status is a snapshot of the loader.
type Status struct {
	State    State
	Progress Progress
	// GLTFVersion is set for binary glTF assets once loaded.
	GLTFVersion uint32
	Err         error
}

// glb header: magic, version, total length, little-endian uint32 each.
const (
	glbMagic      = 0x46546C67 // "glTF"
	glbHeaderSize = 12
)

// Loader downloads the model asset and tracks its state.
type Loader struct {
	mu     sync.Mutex
	status Status

	fetcher   adapter.AssetFetcher
	modelPath string

	logger *logger.Logger
}

// NewLoader constructs an idle Loader for cfg.ModelPath.
func NewLoader(fetcher adapter.AssetFetcher, cfg config.ClientPreview, log *logger.Logger) *Loader {
	return &Loader{
		fetcher:   fetcher,
		modelPath: cfg.ModelPath,
		logger:    log,
	}
}

// ModelPath returns the asset path requested from the gateway.
func (l *Loader) ModelPath() string {
	return l.modelPath
}

// Status returns the current snapshot.
func (l *Loader) Status() Status {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.status
}

// Load fetches the asset, calling onProgress for every received chunk.
// A loader that already finished may be loaded again (retry after failure).
func (l *Loader) Load(ctx context.Context, onProgress func(Progress)) (Status, error) {
	l.mu.Lock()
	if l.status.State == Loading {
		defer l.mu.Unlock()
		return l.status, ErrLoadInProgress
	}
	l.status = Status{State: Loading, Progress: Progress{Total: -1}}
	l.mu.Unlock()

	data, err := l.fetcher.Fetch(ctx, l.modelPath, func(loaded, total int64) {
		p := Progress{Loaded: loaded, Total: total}
		l.mu.Lock()
		l.status.Progress = p
		l.mu.Unlock()
		if onProgress != nil {
			onProgress(p)
		}
	})

	var version uint32
	if err == nil && strings.EqualFold(path.Ext(l.modelPath), ".glb") {
		version, err = parseGLBHeader(data)
	}

	l.mu.Lock()
	defer l.mu.Unlock()

	if err != nil {
		l.status.State = Failed
		l.status.Err = err
		l.logger.Warn().Err(err).Str("func", "*Loader.Load").Str("path", l.modelPath).Msg("model load failed")
		return l.status, err
	}

	size := int64(len(data))
	l.status = Status{
		State:       Loaded,
		Progress:    Progress{Loaded: size, Total: size},
		GLTFVersion: version,
	}
	l.logger.Debug().Str("path", l.modelPath).Int64("bytes", size).Msg("model loaded")

	return l.status, nil
}

func parseGLBHeader(data []byte) (uint32, error) {
	if len(data) < glbHeaderSize {
		return 0, fmt.Errorf("%w: %d bytes is shorter than a glb header", ErrInvalidAsset, len(data))
	}
	if binary.LittleEndian.Uint32(data[0:4]) != glbMagic {
		return 0, fmt.Errorf("%w: missing glTF magic", ErrInvalidAsset)
	}

	version := binary.LittleEndian.Uint32(data[4:8])
	length := binary.LittleEndian.Uint32(data[8:12])
	if int(length) != len(data) {
		return 0, fmt.Errorf("%w: header length %d, got %d bytes", ErrInvalidAsset, length, len(data))
	}

	return version, nil
}
