// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"encoding/json"
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ── helpers ───────────────────────────────────────────────────────────────────

func writeTempJSONConfig(t *testing.T, v any) string {
	t.Helper()
	data, err := json.Marshal(v)
	require.NoError(t, err)
	f, err := os.CreateTemp(t.TempDir(), "config-*.json")
	require.NoError(t, err)
	_, err = f.Write(data)
	require.NoError(t, err)
	require.NoError(t, f.Close())
	return f.Name()
}

// ── newConfigBuilder ──────────────────────────────────────────────────────────

func TestNewConfigBuilder_InitialState(t *testing.T) {
	b := newConfigBuilder()
	require.NotNil(t, b)
	assert.NoError(t, b.err)
	assert.Empty(t, b.configs)
}

// ── build ─────────────────────────────────────────────────────────────────────

func TestBuild_EmptyBuilder(t *testing.T) {
	cfg, err := newConfigBuilder().build()
	require.NoError(t, err)
	assert.Equal(t, &StructuredConfig{}, cfg)
}

func TestBuild_PropagatesBuilderError(t *testing.T) {
	b := newConfigBuilder()
	b.err = assert.AnError

	cfg, err := b.build()
	assert.Nil(t, cfg)
	require.Error(t, err)
	assert.ErrorIs(t, err, assert.AnError)
}

// TestBuild_LaterSourceWins verifies that non-zero fields of later configs
// override earlier ones while zero fields keep the earlier value.
func TestBuild_LaterSourceWins(t *testing.T) {
	b := newConfigBuilder().withDefaults()
	b.configs = append(b.configs,
		&StructuredConfig{Adapter: Adapter{HTTPAddress: "http://from-env:5000"}},
		&StructuredConfig{Adapter: Adapter{HTTPAddress: "http://from-flags:5000"}},
	)

	cfg, err := b.build()
	require.NoError(t, err)
	assert.Equal(t, "http://from-flags:5000", cfg.Adapter.HTTPAddress)
	assert.Equal(t, DefaultRequestTimeout, cfg.Adapter.RequestTimeout)
	assert.Equal(t, DefaultModelPath, cfg.Preview.ModelPath)
}

func TestBuild_RejectsNegativePasswordLength(t *testing.T) {
	b := newConfigBuilder()
	b.configs = append(b.configs, &StructuredConfig{App: App{PasswordMinLength: -1}})

	_, err := b.build()
	assert.ErrorIs(t, err, ErrInvalidAppConfigs)
}

// ── withFlags / withJSON ──────────────────────────────────────────────────────

func TestWithFlags_InvalidFlagRecordsError(t *testing.T) {
	b := newConfigBuilder().withFlags([]string{"-a", "bad"})
	assert.Error(t, b.err)
	assert.Empty(t, b.configs)
}

func TestWithJSON_NoPathIsNoop(t *testing.T) {
	b := newConfigBuilder().withDefaults().withJSON()
	assert.NoError(t, b.err)
	assert.Len(t, b.configs, 1)
}

func TestWithJSON_UsesLastPath(t *testing.T) {
	first := writeTempJSONConfig(t, map[string]any{"preview": map[string]any{"model_path": "/models/first.glb"}})
	second := writeTempJSONConfig(t, map[string]any{"preview": map[string]any{"model_path": "/models/second.glb"}})

	b := newConfigBuilder()
	b.configs = append(b.configs,
		&StructuredConfig{JSONFilePath: first},
		&StructuredConfig{JSONFilePath: second},
	)

	cfg, err := b.withJSON().build()
	require.NoError(t, err)
	assert.Equal(t, "/models/second.glb", cfg.Preview.ModelPath)
}

func TestWithJSON_SkippedAfterError(t *testing.T) {
	b := newConfigBuilder()
	b.err = assert.AnError
	b.configs = append(b.configs, &StructuredConfig{JSONFilePath: "/does/not/exist.json"})

	b.withJSON()
	assert.ErrorIs(t, b.err, assert.AnError)
	assert.Len(t, b.configs, 1)
}

func TestWithJSON_MissingFileRecordsError(t *testing.T) {
	b := newConfigBuilder()
	b.configs = append(b.configs, &StructuredConfig{JSONFilePath: "/does/not/exist.json"})

	b.withJSON()
	assert.Error(t, b.err)
}

// ── views ─────────────────────────────────────────────────────────────────────

func TestNewClientConfig_DefaultsDSN(t *testing.T) {
	cfg := newClientConfig(defaultConfig())

	assert.Equal(t, DefaultClientDSN, cfg.Storage.DSN)
	assert.Equal(t, DefaultGatewayURL, cfg.Adapter.HTTPAddress)
	assert.Equal(t, DefaultModelPath, cfg.Preview.ModelPath)
	assert.Zero(t, cfg.Preview.FetchTimeout, "asset download is unbounded by default")
	assert.NoError(t, cfg.validate())
}

func TestNewServerConfig_DefaultsDSN(t *testing.T) {
	cfg := newServerConfig(defaultConfig())

	assert.Equal(t, DefaultServerDSN, cfg.Storage.DSN)
	assert.Equal(t, DefaultModelsDir, cfg.Storage.ModelsDir)
	assert.Equal(t, DefaultPasswordMinLength, cfg.App.PasswordMinLength)
	assert.NoError(t, cfg.validate())
}

func TestClientConfig_Validate(t *testing.T) {
	valid := func() *ClientConfig { return newClientConfig(defaultConfig()) }

	cfg := valid()
	cfg.Adapter.HTTPAddress = ""
	assert.ErrorIs(t, cfg.validate(), ErrInvalidAdapterConfigs)

	cfg = valid()
	cfg.Adapter.RequestTimeout = 0
	assert.ErrorIs(t, cfg.validate(), ErrInvalidAdapterConfigs)

	cfg = valid()
	cfg.Storage.DSN = ""
	assert.ErrorIs(t, cfg.validate(), ErrInvalidStorageConfigs)

	cfg = valid()
	cfg.Preview.ModelPath = ""
	assert.ErrorIs(t, cfg.validate(), ErrInvalidPreviewConfigs)

	cfg = valid()
	cfg.Preview.FetchTimeout = -time.Second
	assert.ErrorIs(t, cfg.validate(), ErrInvalidPreviewConfigs)
}

func TestServerConfig_Validate(t *testing.T) {
	valid := func() *ServerConfig { return newServerConfig(defaultConfig()) }

	cfg := valid()
	cfg.Server.HTTPAddress = ""
	assert.ErrorIs(t, cfg.validate(), ErrInvalidServerConfigs)

	cfg = valid()
	cfg.Server.RequestTimeout = -time.Second
	assert.ErrorIs(t, cfg.validate(), ErrInvalidServerConfigs)

	cfg = valid()
	cfg.Storage.ModelsDir = ""
	assert.ErrorIs(t, cfg.validate(), ErrInvalidStorageConfigs)

	cfg = valid()
	cfg.App.PasswordMinLength = 0
	assert.ErrorIs(t, cfg.validate(), ErrInvalidAppConfigs)
}
