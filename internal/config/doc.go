// Package config provides the environment configuration record of the
// coffee-shop client together with its loading, merging, validation and
// rendering facilities.
//
// The record is assembled from layers in the following priority order
// (later layers override earlier non-empty fields):
//  1. Preset (development or production)
//  2. Environment variables
//  3. Command-line flags
//  4. JSON or YAML config file
//
// The main entry points are [Default] for the built-in development record and
// [Load] for a layered, validated record. Both return [Environment] by value,
// so a loaded record can be shared between goroutines without locking.
package config
