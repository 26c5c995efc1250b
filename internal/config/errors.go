package config

import "errors"

// Load errors.
var (
	// ErrUnknownPreset indicates a preset name other than development or
	// production.
	ErrUnknownPreset = errors.New("unknown environment preset")
	// ErrUnsupportedFileFormat indicates a config file whose extension is
	// neither .json, .yaml nor .yml.
	ErrUnsupportedFileFormat = errors.New("unsupported config file format")
	// ErrUnknownConfigKey indicates a config file key that is not one of the
	// record keys, compared case-sensitively.
	ErrUnknownConfigKey = errors.New("unknown config file key")
	// ErrTrailingConfigData indicates data after the first JSON value or YAML
	// document of a config file.
	ErrTrailingConfigData = errors.New("trailing data after config document")
	// ErrUnrenderableValue indicates a value that the chosen output format
	// cannot represent, such as a line break in the env format.
	ErrUnrenderableValue = errors.New("value cannot be rendered")
	// ErrUnsupportedFormat indicates an unknown output format passed to
	// [Render].
	ErrUnsupportedFormat = errors.New("unsupported output format")
)

// Validation errors returned by [Environment.Validate] when a group of
// settings is incomplete or malformed.
var (
	// ErrInvalidAPIServerConfigs indicates a missing or non-HTTP(S) API server
	// URL.
	ErrInvalidAPIServerConfigs = errors.New("invalid api server configuration")
	// ErrInvalidAuth0Domain indicates a missing Auth0 domain, or one carrying
	// a scheme or path.
	ErrInvalidAuth0Domain = errors.New("invalid auth0 domain")
	// ErrInvalidAuth0Configs indicates missing Auth0 audience or client id, or
	// a malformed callback URL.
	ErrInvalidAuth0Configs = errors.New("invalid auth0 configuration")
)
