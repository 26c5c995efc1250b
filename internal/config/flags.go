package config

import (
	"errors"
	"fmt"

	"github.com/spf13/pflag"
)

const (
	flagEnv              = "env"
	flagConfig           = "config"
	flagProduction       = "production"
	flagAPIServerURL     = "api-server-url"
	flagAuth0URL         = "auth0-url"
	flagAuth0Audience    = "auth0-audience"
	flagAuth0ClientID    = "auth0-client-id"
	flagAuth0CallbackURL = "auth0-callback-url"
)

// RegisterFlags defines the configuration flags on fs.
//
// Flags:
//
//	--env preset name (development, production)
//	-c/--config JSON or YAML config file path
//	--production production mode
//	--api-server-url API server base URL
//	--auth0-url Auth0 tenant domain
//	--auth0-audience Auth0 API audience
//	--auth0-client-id Auth0 client id
//	--auth0-callback-url Auth0 callback URL
func RegisterFlags(fs *pflag.FlagSet) {
	fs.String(flagEnv, "", "Environment preset (development, production)")
	fs.StringP(flagConfig, "c", "", "JSON or YAML config file path")
	fs.Bool(flagProduction, false, "Production mode")
	fs.String(flagAPIServerURL, "", "API server base URL")
	fs.String(flagAuth0URL, "", "Auth0 tenant domain, without scheme")
	fs.String(flagAuth0Audience, "", "Auth0 API audience")
	fs.String(flagAuth0ClientID, "", "Auth0 client id")
	fs.String(flagAuth0CallbackURL, "", "Auth0 callback URL")
}

// parseFlags builds the flag layer from the flags explicitly set on fs.
// Flags left at their defaults do not contribute.
func parseFlags(fs *pflag.FlagSet) (Layer, error) {
	l := Layer{Source: "flags"}

	var errs error
	str := func(name string, dst *string) {
		if !fs.Changed(name) {
			return
		}
		v, err := fs.GetString(name)
		if err != nil {
			errs = errors.Join(errs, err)
			return
		}
		*dst = v
	}

	str(flagConfig, &l.FilePath)
	str(flagAPIServerURL, &l.Values.APIServerURL)
	str(flagAuth0URL, &l.Values.Auth0.URL)
	str(flagAuth0Audience, &l.Values.Auth0.Audience)
	str(flagAuth0ClientID, &l.Values.Auth0.ClientID)
	str(flagAuth0CallbackURL, &l.Values.Auth0.CallbackURL)

	if fs.Changed(flagProduction) {
		v, err := fs.GetBool(flagProduction)
		if err != nil {
			errs = errors.Join(errs, err)
		} else {
			l.Production = &v
		}
	}

	if errs != nil {
		return Layer{}, fmt.Errorf("error getting flag configs: %w", errs)
	}

	return l, nil
}
