package auth

type SessionKey string

var (
	SessionKeyAccessToken        SessionKey = "access_token"
	SessionKeyIsAdmin            SessionKey = "is_admin"
	SessionKeyRedirectAfterLogin SessionKey = "redirect_after_login"
	SessionKeyOauthState         SessionKey = "oauth_state"
	SessionKeyOauthNonce         SessionKey = "oauth_nonce"
	SessionKeyOauthCodeVerifier  SessionKey = "oauth_code_verifier"
)
