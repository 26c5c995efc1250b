package config_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MKhiriev/cafe-env/internal/config"
	"github.com/MKhiriev/cafe-env/internal/mock"
)

func TestLoadFrom_MergesSourcesInOrder(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	base := mock.NewMockSource(ctrl)
	override := mock.NewMockSource(ctrl)

	production := true
	gomock.InOrder(
		base.EXPECT().Layer().Return(config.Layer{Source: "base", Values: config.Default()}, nil),
		override.EXPECT().Layer().Return(config.Layer{
			Source:     "override",
			Production: &production,
			Values:     config.Environment{APIServerURL: "https://api.cafe.example"},
		}, nil),
	)

	env, err := config.LoadFrom(base, override)
	require.NoError(t, err)

	assert.True(t, env.Production)
	assert.Equal(t, "https://api.cafe.example", env.APIServerURL)
	assert.Equal(t, config.Default().Auth0, env.Auth0)
}

func TestLoadFrom_SourceError(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	failing := mock.NewMockSource(ctrl)
	healthy := mock.NewMockSource(ctrl)

	failing.EXPECT().Layer().Return(config.Layer{}, assert.AnError)
	healthy.EXPECT().Layer().Return(config.Layer{Values: config.Default()}, nil)

	env, err := config.LoadFrom(failing, healthy)
	require.Error(t, err)
	assert.ErrorIs(t, err, assert.AnError)
	assert.Equal(t, config.Environment{}, env)
}

func TestLoadFrom_ValidatesResult(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	src := mock.NewMockSource(ctrl)
	src.EXPECT().Layer().Return(config.Layer{Values: config.Production()}, nil)

	_, err := config.LoadFrom(src)
	require.Error(t, err)
	assert.ErrorIs(t, err, config.ErrInvalidAPIServerConfigs)
}

func TestSourceFunc(t *testing.T) {
	want := config.Layer{Source: "func", FilePath: "/etc/cafe/env.yaml"}

	got, err := config.SourceFunc(func() (config.Layer, error) { return want, nil }).Layer()
	require.NoError(t, err)
	assert.Equal(t, want, got)
}
