package config

import (
	"errors"
	"fmt"

	"dario.cat/mergo"
	"github.com/spf13/pflag"
)

type configBuilder struct {
	layers []Layer
	err    error
}

func newConfigBuilder() *configBuilder {
	return &configBuilder{
		layers: make([]Layer, 0, 4),
	}
}

func (b *configBuilder) build() (Environment, error) {
	if b.err != nil {
		return Environment{}, fmt.Errorf("error occurred during building environment: %w", b.err)
	}

	var env Environment
	production := false
	for _, l := range b.layers {
		if err := mergo.Merge(&env, l.Values, mergo.WithOverride); err != nil {
			return Environment{}, fmt.Errorf("error merging %s layer: %w", l.Source, err)
		}
		if l.Production != nil {
			production = *l.Production
		}
	}
	env.Production = production

	if err := env.Validate(); err != nil {
		return Environment{}, err
	}

	return env, nil
}

func (b *configBuilder) withSource(s Source) *configBuilder {
	l, err := s.Layer()
	if err != nil {
		b.err = errors.Join(b.err, err)
		return b
	}

	b.layers = append(b.layers, l)
	return b
}

// withPreset resolves the preset name from, in order: name, the --env flag,
// APP_ENV.
func (b *configBuilder) withPreset(name string, fs *pflag.FlagSet) *configBuilder {
	if name == "" && fs != nil && fs.Changed(flagEnv) {
		v, err := fs.GetString(flagEnv)
		if err != nil {
			b.err = errors.Join(b.err, fmt.Errorf("error reading --%s flag: %w", flagEnv, err))
			return b
		}
		name = v
	}

	if name == "" {
		v, err := presetFromEnv()
		if err != nil {
			b.err = errors.Join(b.err, err)
			return b
		}
		name = v
	}

	return b.withSource(presetSource(name))
}

func (b *configBuilder) withEnv() *configBuilder {
	return b.withSource(SourceFunc(parseEnv))
}

func (b *configBuilder) withFlags(fs *pflag.FlagSet) *configBuilder {
	if fs == nil {
		return b
	}

	return b.withSource(SourceFunc(func() (Layer, error) {
		return parseFlags(fs)
	}))
}

// withFile reads path, or the last config file named by an earlier layer when
// path is empty.
func (b *configBuilder) withFile(path string) *configBuilder {
	if path == "" {
		for _, l := range b.layers {
			if l.FilePath != "" {
				path = l.FilePath
			}
		}
	}

	if path == "" {
		return b
	}

	return b.withSource(SourceFunc(func() (Layer, error) {
		return parseFile(path)
	}))
}

func presetSource(name string) Source {
	return SourceFunc(func() (Layer, error) {
		env, err := PresetByName(name)
		if err != nil {
			return Layer{}, err
		}

		production := env.Production
		return Layer{
			Source:     "preset",
			Production: &production,
			Values:     env,
		}, nil
	})
}
