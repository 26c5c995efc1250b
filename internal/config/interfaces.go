// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

//go:generate mockgen -source=interfaces.go -destination=../mock/source_mock.go -package=mock

// Layer is one source's partial contribution to the environment record.
type Layer struct {
	// Source names the layer in error messages (e.g. "env", "flags").
	Source string

	// Production is nil when the source does not state the production flag.
	// The last layer that states it wins, so an explicit false can demote an
	// earlier true.
	Production *bool

	// Values carries the string settings of the layer. Empty fields are left
	// to earlier layers. Values.Production is ignored in favour of
	// Production.
	Values Environment

	// FilePath is the config file named by the layer, if any.
	FilePath string
}

// Source produces a single [Layer]. Implementations are the preset, the
// process environment, a parsed flag set and a config file.
type Source interface {
	// Layer reads the source and returns its contribution, or an error if the
	// source exists but cannot be read or decoded.
	Layer() (Layer, error)
}

// LoadFrom merges the layers of sources in order and validates the result.
// It is the composition point behind [Load] for callers that bring their own
// sources.
func LoadFrom(sources ...Source) (Environment, error) {
	b := newConfigBuilder()
	for _, s := range sources {
		b.withSource(s)
	}

	return b.build()
}

// SourceFunc adapts a plain function to [Source].
type SourceFunc func() (Layer, error)

// Layer calls f.
func (f SourceFunc) Layer() (Layer, error) {
	return f()
}
