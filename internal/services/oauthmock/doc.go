// Package oauthsvc mints and tracks mock OAuth2 tokens in the Google token
// endpoint shape. Tokens are held in memory only; validation is permissive
// so pre-existing client fixtures keep working, but tokens minted here are
// checked for expiry.
package oauthsvc
