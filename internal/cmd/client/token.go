package client

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"github.com/spf13/cobra"
)

// NewTokenCommand constructs the `token` command.
func NewTokenCommand(baseURL BaseURLFunc) *cobra.Command {
	tokenCmd := &cobra.Command{
		Use:   "token",
		Short: "Mint a mock OAuth token",
		RunE: func(cmd *cobra.Command, _ []string) error {
			grantType, _ := cmd.Flags().GetString("grant-type")
			code, _ := cmd.Flags().GetString("code")
			refreshToken, _ := cmd.Flags().GetString("refresh-token")
			scope, _ := cmd.Flags().GetString("scope")
			expiresIn, _ := cmd.Flags().GetInt64("expires-in")

			form := url.Values{"grant_type": {grantType}}
			if code != "" {
				form.Set("code", code)
			}
			if refreshToken != "" {
				form.Set("refresh_token", refreshToken)
			}
			if scope != "" {
				form.Set("scope", scope)
			}
			if cmd.Flags().Changed("expires-in") {
				form.Set("expires_in", strconv.FormatInt(expiresIn, 10))
			}

			resp, err := http.Post(baseURL()+"/token",
				"application/x-www-form-urlencoded", strings.NewReader(form.Encode()))
			if err != nil {
				return err
			}
			defer resp.Body.Close()
			var out map[string]any
			if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
				return err
			}
			if resp.StatusCode != http.StatusOK {
				return fmt.Errorf("server returned %d: %v", resp.StatusCode, out["error"])
			}
			printJSON(cmd.OutOrStdout(), out)
			return nil
		},
	}
	tokenCmd.Flags().String("grant-type", "authorization_code", "Grant type: authorization_code|refresh_token")
	tokenCmd.Flags().String("code", "mock-code", "Authorization code")
	tokenCmd.Flags().String("refresh-token", "", "Refresh token (for grant-type refresh_token)")
	tokenCmd.Flags().String("scope", "", "Requested scope")
	tokenCmd.Flags().Int64("expires-in", 0, "Token lifetime in seconds (negative mints an expired token)")
	return tokenCmd
}
