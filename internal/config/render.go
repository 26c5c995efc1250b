// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"encoding/json"
	"fmt"
	"io"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

// Output formats accepted by [Render].
const (
	FormatJSON = "json"
	FormatYAML = "yaml"
	FormatTS   = "ts"
	FormatEnv  = "env"
)

// Formats lists the formats accepted by [Render].
var Formats = []string{FormatJSON, FormatYAML, FormatTS, FormatEnv}

// Render writes e to w in the given format:
//   - json: indented JSON in the consumer shape;
//   - yaml: the same keys as YAML;
//   - ts:   a drop-in environment.ts module exporting `environment`;
//   - env:  KEY=value lines using the variable names read by [Load]; values
//     with line breaks are refused with [ErrUnrenderableValue].
func Render(w io.Writer, e Environment, format string) error {
	switch format {
	case FormatJSON:
		data, err := json.MarshalIndent(e, "", "  ")
		if err != nil {
			return fmt.Errorf("error marshaling environment to JSON: %w", err)
		}
		_, err = fmt.Fprintf(w, "%s\n", data)
		return err
	case FormatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(e); err != nil {
			return fmt.Errorf("error marshaling environment to YAML: %w", err)
		}
		return enc.Close()
	case FormatTS:
		data, err := json.MarshalIndent(e, "", "  ")
		if err != nil {
			return fmt.Errorf("error marshaling environment to JSON: %w", err)
		}
		_, err = fmt.Fprintf(w, "export const environment = %s;\n", data)
		return err
	case FormatEnv:
		for key, v := range map[string]string{
			"API_SERVER_URL":     e.APIServerURL,
			"AUTH0_URL":          e.Auth0.URL,
			"AUTH0_AUDIENCE":     e.Auth0.Audience,
			"AUTH0_CLIENT_ID":    e.Auth0.ClientID,
			"AUTH0_CALLBACK_URL": e.Auth0.CallbackURL,
		} {
			if strings.ContainsAny(v, "\r\n") {
				return fmt.Errorf("%w: %s contains a line break", ErrUnrenderableValue, key)
			}
		}
		_, err := fmt.Fprintf(w,
			"PRODUCTION=%s\nAPI_SERVER_URL=%s\nAUTH0_URL=%s\nAUTH0_AUDIENCE=%s\nAUTH0_CLIENT_ID=%s\nAUTH0_CALLBACK_URL=%s\n",
			strconv.FormatBool(e.Production),
			e.APIServerURL,
			e.Auth0.URL,
			e.Auth0.Audience,
			e.Auth0.ClientID,
			e.Auth0.CallbackURL,
		)
		return err
	default:
		return fmt.Errorf("%w: %q", ErrUnsupportedFormat, format)
	}
}
