// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"errors"
	"fmt"

	"dario.cat/mergo"
)

// configBuilder layers configuration sources. Later layers override earlier
// ones field by field; zero values never override.
type configBuilder struct {
	configs []*StructuredConfig
	err     error
}

func newConfigBuilder() *configBuilder {
	return &configBuilder{
		configs: make([]*StructuredConfig, 0, 4),
	}
}

func (b *configBuilder) build() (*StructuredConfig, error) {
	if b.err != nil {
		return nil, fmt.Errorf("error occured during building config: %w", b.err)
	}

	merged := new(StructuredConfig)
	for _, layer := range b.configs {
		if err := mergo.Merge(merged, layer, mergo.WithOverride); err != nil {
			return nil, fmt.Errorf("error merging configs: %w", err)
		}
	}

	return merged, merged.validate()
}

// layer appends the result of load, or records its error.
func (b *configBuilder) layer(load func() (*StructuredConfig, error)) *configBuilder {
	cfg, err := load()
	if err != nil {
		b.err = errors.Join(b.err, err)
		return b
	}

	b.configs = append(b.configs, cfg)
	return b
}

func (b *configBuilder) withDefaults() *configBuilder {
	return b.layer(func() (*StructuredConfig, error) { return defaultConfig(), nil })
}

func (b *configBuilder) withEnv() *configBuilder {
	return b.layer(envConfig)
}

func (b *configBuilder) withFlags(args []string) *configBuilder {
	return b.layer(func() (*StructuredConfig, error) { return ParseFlags(args) })
}

// withJSON loads the file named by the last layer that set JSONFilePath.
// It is a no-op once an earlier layer failed.
func (b *configBuilder) withJSON() *configBuilder {
	if b.err != nil {
		return b
	}

	path := ""
	for _, cfg := range b.configs {
		if cfg.JSONFilePath != "" {
			path = cfg.JSONFilePath
		}
	}
	if path == "" {
		return b
	}

	return b.layer(func() (*StructuredConfig, error) { return parseJSON(path) })
}
