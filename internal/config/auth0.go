package config

import "net/url"

// IssuerURL returns the "iss" claim value of tokens issued by the tenant.
func (a Auth0) IssuerURL() string {
	return "https://" + a.URL + "/"
}

// JWKSURL returns the tenant's JSON Web Key Set endpoint.
func (a Auth0) JWKSURL() string {
	u := url.URL{Scheme: "https", Host: a.URL, Path: "/.well-known/jwks.json"}
	return u.String()
}

// AuthorizeURL returns the login page address for the implicit flow: Auth0
// redirects to CallbackURL with an access token scoped to Audience.
func (a Auth0) AuthorizeURL() string {
	q := url.Values{}
	q.Set("audience", a.Audience)
	q.Set("client_id", a.ClientID)
	q.Set("redirect_uri", a.CallbackURL)
	q.Set("response_type", "token")

	u := url.URL{Scheme: "https", Host: a.URL, Path: "/authorize", RawQuery: q.Encode()}
	return u.String()
}
