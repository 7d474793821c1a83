package config

import (
	"errors"
	"fmt"

	"dario.cat/mergo"
)

// source yields one configuration layer. It sees the layers collected so
// far; a nil layer with a nil error contributes nothing.
type source func(earlier []*StructuredConfig) (*StructuredConfig, error)

type configBuilder struct {
	layers []*StructuredConfig
	errs   []error
}

func newConfigBuilder() *configBuilder {
	return &configBuilder{layers: make([]*StructuredConfig, 0, 4)}
}

func (b *configBuilder) add(name string, src source) *configBuilder {
	layer, err := src(b.layers)
	switch {
	case err != nil:
		b.errs = append(b.errs, fmt.Errorf("%s: %w", name, err))
	case layer != nil:
		b.layers = append(b.layers, layer)
	}
	return b
}

func (b *configBuilder) withEnv() *configBuilder {
	return b.add("env", func([]*StructuredConfig) (*StructuredConfig, error) {
		return readEnv(nil)
	})
}

func (b *configBuilder) withFlags(args []string) *configBuilder {
	return b.add("flags", func([]*StructuredConfig) (*StructuredConfig, error) {
		return ParseFlags(args)
	})
}

// withJSON loads the file named by path or, when path is empty, by the
// first earlier layer that set JSONFilePath.
func (b *configBuilder) withJSON(path string) *configBuilder {
	return b.add("json", func(earlier []*StructuredConfig) (*StructuredConfig, error) {
		for _, l := range earlier {
			if path != "" {
				break
			}
			path = l.JSONFilePath
		}
		if path == "" {
			return nil, nil
		}
		return parseJSON(path)
	})
}

func (b *configBuilder) withDefaults() *configBuilder {
	return b.add("defaults", func([]*StructuredConfig) (*StructuredConfig, error) {
		return defaults(), nil
	})
}

// merge folds the layers into one config. mergo fills only zero fields, so
// earlier layers win.
func (b *configBuilder) merge() (*StructuredConfig, error) {
	if err := errors.Join(b.errs...); err != nil {
		return nil, fmt.Errorf("error occurred during building config: %w", err)
	}

	out := new(StructuredConfig)
	for _, l := range b.layers {
		if err := mergo.Merge(out, l); err != nil {
			return nil, fmt.Errorf("error merging configs: %w", err)
		}
	}
	return out, nil
}

func (b *configBuilder) build() (*StructuredConfig, error) {
	cfg, err := b.merge()
	if err != nil {
		return nil, err
	}
	return cfg, cfg.validate()
}
