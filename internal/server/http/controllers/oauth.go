package controllers

import (
	"encoding/json"
	"net/http"
	"strconv"

	oauthsvc "github.com/yuge42/yt-api-mock/internal/services/oauthmock"
)

// OAuthController handles the mock token endpoint.
type OAuthController struct {
	oa *oauthsvc.Service
}

// NewOAuthController creates a new OAuth controller.
func NewOAuthController(svc *oauthsvc.Service) *OAuthController {
	return &OAuthController{oa: svc}
}

// RegisterRoutes registers the token route with the given mux.
func (c *OAuthController) RegisterRoutes(mux *http.ServeMux) {
	mux.HandleFunc("/token", c.handleToken)
}

// handleToken mints mock tokens from a form-encoded token request, the
// same wire shape Google's real token endpoint uses.
func (c *OAuthController) handleToken(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		writeJSONStatus(w, http.StatusMethodNotAllowed, &oauthsvc.Error{Code: "invalid_request", Description: "POST required"})
		return
	}
	if err := r.ParseForm(); err != nil {
		writeJSONStatus(w, http.StatusBadRequest, &oauthsvc.Error{Code: "invalid_request", Description: "malformed form body"})
		return
	}
	req := oauthsvc.TokenRequest{
		GrantType:    r.PostFormValue("grant_type"),
		Code:         r.PostFormValue("code"),
		RefreshToken: r.PostFormValue("refresh_token"),
		ClientID:     r.PostFormValue("client_id"),
		ClientSecret: r.PostFormValue("client_secret"),
		RedirectURI:  r.PostFormValue("redirect_uri"),
		Scope:        r.PostFormValue("scope"),
	}
	if raw := r.PostFormValue("expires_in"); raw != "" {
		if n, err := strconv.ParseInt(raw, 10, 64); err == nil {
			req.ExpiresIn = &n
		}
	}
	resp, oerr := c.oa.Token(req)
	if oerr != nil {
		writeJSONStatus(w, http.StatusBadRequest, oerr)
		return
	}
	writeJSON(w, resp)
}

func writeJSONStatus(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(data)
}
