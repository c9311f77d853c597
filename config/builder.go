package config

import (
	"errors"
	"fmt"

	"dario.cat/mergo"
)

type builder struct {
	layers  []*Settings
	err     error
	// homeErr is reported only if the default output path ends up being used.
	homeErr error
}

func newBuilder() *builder {
	return &builder{
		layers: make([]*Settings, 0, 3),
	}
}

func (b *builder) build() (*Settings, error) {
	if b.err != nil {
		return nil, fmt.Errorf("error occurred during loading settings: %w", b.err)
	}

	settings := new(Settings)
	for _, layer := range b.layers {
		if err := mergo.Merge(settings, layer, mergo.WithOverride); err != nil {
			return nil, fmt.Errorf("error merging settings: %w", err)
		}
	}

	if settings.Out == "" && b.homeErr != nil {
		return nil, fmt.Errorf("error resolving default output path (set --out or MCP_CONFIG_PATH): %w", b.homeErr)
	}

	out, err := expandHome(settings.Out)
	if err != nil {
		return nil, fmt.Errorf("error expanding %q: %w", settings.Out, err)
	}
	settings.Out = out

	if err := settings.Validate(); err != nil {
		return nil, err
	}
	return settings, nil
}

func (b *builder) withDefaults() *builder {
	out, err := DefaultOutPath()
	if err != nil {
		b.homeErr = err
		out = ""
	}

	b.layers = append(b.layers, &Settings{
		URL:    PlaceholderURL,
		APIKey: PlaceholderKey,
		Out:    out,
	})
	return b
}

func (b *builder) withEnv() *builder {
	envSettings := &Settings{}
	if err := parseEnv(envSettings); err != nil {
		b.err = errors.Join(b.err, err)
		return b
	}

	b.layers = append(b.layers, envSettings)
	return b
}

func (b *builder) withFlags(flags Settings) *builder {
	b.layers = append(b.layers, &flags)
	return b
}
