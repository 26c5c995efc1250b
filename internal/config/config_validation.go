// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"errors"
	"fmt"
	"net/url"
	"strings"
	"unicode"
)

// Validate checks that every field of the record is present and well formed.
// All violations are reported together; callers match them with
// [errors.Is] against the ErrInvalid* sentinels.
func (e Environment) Validate() error {
	var errs []error

	if !isHTTPURL(e.APIServerURL) {
		errs = append(errs, fmt.Errorf("%w: apiServerUrl %q is not an absolute http(s) URL",
			ErrInvalidAPIServerConfigs, e.APIServerURL))
	}

	if !isBareHost(e.Auth0.URL) {
		errs = append(errs, fmt.Errorf("%w: auth0.url %q must be a host without scheme or path",
			ErrInvalidAuth0Domain, e.Auth0.URL))
	}

	switch {
	case e.Auth0.Audience == "":
		errs = append(errs, fmt.Errorf("%w: auth0.audience is empty", ErrInvalidAuth0Configs))
	case hasControl(e.Auth0.Audience):
		errs = append(errs, fmt.Errorf("%w: auth0.audience contains control characters", ErrInvalidAuth0Configs))
	}

	switch {
	case e.Auth0.ClientID == "":
		errs = append(errs, fmt.Errorf("%w: auth0.clientId is empty", ErrInvalidAuth0Configs))
	case hasControl(e.Auth0.ClientID):
		errs = append(errs, fmt.Errorf("%w: auth0.clientId contains control characters", ErrInvalidAuth0Configs))
	}

	if !isHTTPURL(e.Auth0.CallbackURL) {
		errs = append(errs, fmt.Errorf("%w: auth0.callbackURL %q is not an absolute http(s) URL",
			ErrInvalidAuth0Configs, e.Auth0.CallbackURL))
	}

	return errors.Join(errs...)
}

func isHTTPURL(raw string) bool {
	u, err := url.Parse(raw)
	if err != nil {
		return false
	}

	return (u.Scheme == "http" || u.Scheme == "https") && u.Hostname() != ""
}

func hasControl(s string) bool {
	return strings.IndexFunc(s, unicode.IsControl) >= 0
}

func isBareHost(raw string) bool {
	if raw == "" || strings.ContainsAny(raw, "/?#@ ") {
		return false
	}

	u, err := url.Parse("https://" + raw)
	if err != nil {
		return false
	}

	return u.Host == raw
}
