package config

import "github.com/rs/zerolog"

// MarshalZerologObject lets an [Environment] be logged with
// zerolog.Event.Object.
func (e Environment) MarshalZerologObject(ev *zerolog.Event) {
	ev.Bool("production", e.Production).
		Str("apiServerUrl", e.APIServerURL).
		Object("auth0", e.Auth0)
}

// MarshalZerologObject implements zerolog.LogObjectMarshaler.
func (a Auth0) MarshalZerologObject(ev *zerolog.Event) {
	ev.Str("url", a.URL).
		Str("audience", a.Audience).
		Str("clientId", a.ClientID).
		Str("callbackURL", a.CallbackURL)
}
