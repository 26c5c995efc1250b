package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"gopkg.in/yaml.v3"
)

// fileLayer is the on-disk shape of a config file. Keys match the consumer
// shape of [Environment]; production is a pointer so that an absent key does
// not override earlier layers.
type fileLayer struct {
	Production   *bool  `json:"production" yaml:"production"`
	APIServerURL string `json:"apiServerUrl" yaml:"apiServerUrl"`
	Auth0        Auth0  `json:"auth0" yaml:"auth0"`
}

var (
	fileKeys  = []string{"production", "apiServerUrl", "auth0"}
	auth0Keys = []string{"url", "audience", "clientId", "callbackURL"}
)

// parseFile decodes the config file at path. The format is chosen by the
// extension: .json, .yaml or .yml. Keys must match the record keys exactly,
// the file must hold a single document, and an empty file contributes
// nothing.
func parseFile(path string) (Layer, error) {
	var decode func(r io.Reader, fl *fileLayer) error
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		decode = decodeJSON
	case ".yaml", ".yml":
		decode = decodeYAML
	default:
		return Layer{}, fmt.Errorf("%w: %q", ErrUnsupportedFileFormat, path)
	}

	f, err := os.Open(path)
	if err != nil {
		return Layer{}, fmt.Errorf("error reading a config file: %w", err)
	}
	defer f.Close()

	var fl fileLayer
	if err := decode(f, &fl); err != nil {
		return Layer{}, fmt.Errorf("error decoding config file %s: %w", path, err)
	}

	return Layer{
		Source:     "file",
		Production: fl.Production,
		Values: Environment{
			APIServerURL: fl.APIServerURL,
			Auth0:        fl.Auth0,
		},
	}, nil
}

// decodeJSON checks key names before the typed decode: encoding/json matches
// field names case-insensitively, so DisallowUnknownFields alone lets
// "clientID" through as clientId.
func decodeJSON(r io.Reader, fl *fileLayer) error {
	dec := json.NewDecoder(r)

	var raw json.RawMessage
	if err := dec.Decode(&raw); err != nil {
		if errors.Is(err, io.EOF) {
			return nil
		}
		return err
	}

	if _, err := dec.Token(); !errors.Is(err, io.EOF) {
		return ErrTrailingConfigData
	}

	var top map[string]json.RawMessage
	if err := json.Unmarshal(raw, &top); err != nil {
		return err
	}
	if err := checkKeys("", top, fileKeys); err != nil {
		return err
	}

	if nested, ok := top["auth0"]; ok {
		var auth0 map[string]json.RawMessage
		if err := json.Unmarshal(nested, &auth0); err != nil {
			return err
		}
		if err := checkKeys("auth0.", auth0, auth0Keys); err != nil {
			return err
		}
	}

	return json.Unmarshal(raw, fl)
}

func decodeYAML(r io.Reader, fl *fileLayer) error {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)

	if err := dec.Decode(fl); err != nil {
		if errors.Is(err, io.EOF) {
			return nil
		}
		return err
	}

	var extra yaml.Node
	if err := dec.Decode(&extra); !errors.Is(err, io.EOF) {
		return ErrTrailingConfigData
	}

	return nil
}

func checkKeys[V any](prefix string, m map[string]V, allowed []string) error {
	for k := range m {
		if !slices.Contains(allowed, k) {
			return fmt.Errorf("%w: %q", ErrUnknownConfigKey, prefix+k)
		}
	}

	return nil
}
