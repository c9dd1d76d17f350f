package config

import (
	"errors"
	"fmt"

	"dario.cat/mergo"
)

// layer is one configuration source. Later layers override the non-zero
// fields of earlier ones.
type layer struct {
	source string
	cfg    *StructuredConfig
}

// configBuilder stacks configuration sources. Source failures are
// collected and reported together by build, each tagged with its source.
type configBuilder struct {
	layers []layer
	err    error
}

func newConfigBuilder() *configBuilder {
	return &configBuilder{layers: make([]layer, 0, 4)}
}

func (b *configBuilder) add(source string, cfg *StructuredConfig) *configBuilder {
	b.layers = append(b.layers, layer{source: source, cfg: cfg})
	return b
}

func (b *configBuilder) fail(source string, err error) *configBuilder {
	b.err = errors.Join(b.err, fmt.Errorf("%s: %w", source, err))
	return b
}

// configs lists the collected layers in override order.
func (b *configBuilder) configs() []*StructuredConfig {
	out := make([]*StructuredConfig, len(b.layers))
	for i, l := range b.layers {
		out[i] = l.cfg
	}
	return out
}

func (b *configBuilder) build() (*StructuredConfig, error) {
	if b.err != nil {
		return nil, fmt.Errorf("loading configuration: %w", b.err)
	}

	merged := new(StructuredConfig)
	for _, l := range b.layers {
		if err := mergo.Merge(merged, l.cfg, mergo.WithOverride); err != nil {
			return nil, fmt.Errorf("merging %s configuration: %w", l.source, err)
		}
	}

	if err := merged.validate(); err != nil {
		return nil, err
	}
	return merged, nil
}

func (b *configBuilder) withDefaults() *configBuilder {
	return b.add("defaults", Defaults())
}

// withDotEnv only exports variables, which withEnv then picks up.
func (b *configBuilder) withDotEnv(path string) *configBuilder {
	if err := loadDotEnv(path); err != nil {
		return b.fail("dotenv", err)
	}
	return b
}

func (b *configBuilder) withEnv() *configBuilder {
	cfg := &StructuredConfig{}
	if err := parseEnv(cfg); err != nil {
		return b.fail("env", err)
	}
	return b.add("env", cfg)
}

func (b *configBuilder) withFlags(args []string) *configBuilder {
	cfg, err := ParseFlags(args)
	if err != nil {
		return b.fail("flags", err)
	}
	return b.add("flags", cfg)
}

// withJSON loads the file named by the last layer that set a path.
func (b *configBuilder) withJSON() *configBuilder {
	path := ""
	for _, l := range b.layers {
		if l.cfg.JSONFilePath != "" {
			path = l.cfg.JSONFilePath
		}
	}
	if path == "" {
		return b
	}

	cfg, err := parseJSON(path)
	if err != nil {
		return b.fail("json", err)
	}
	return b.add("json", cfg)
}
