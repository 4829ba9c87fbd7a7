package models

// OIDCDiscovery is the subset of an OpenID Provider configuration document
// (/.well-known/openid-configuration) inspected when checking the identity
// provider.
type OIDCDiscovery struct {
	Issuer                string `json:"issuer"`
	AuthorizationEndpoint string `json:"authorization_endpoint"`
	TokenEndpoint         string `json:"token_endpoint"`
	JWKSURI               string `json:"jwks_uri"`
}
