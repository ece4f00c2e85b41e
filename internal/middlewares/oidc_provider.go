package middlewares

import (
	"github.com/coreos/go-oidc/v3/oidc"
	"golang.org/x/oauth2"
)

//go:generate mockgen -source=oidc_provider.go -destination=../mocks/oidc.go -package=mocks

// OIDCProvider drives the local-development login flow. In production the
// load balancer injects the token and this provider is nil.
type OIDCProvider interface {
	GetProvider() *oidc.Provider
	GetOAuth2Config() *oauth2.Config
	StartLogin(ctx *AppContext) (authURL string, err error)
	HandleCallback(ctx *AppContext) (accessToken string, err error)
}
