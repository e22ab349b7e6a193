package client

import (
	"github.com/spf13/cobra"
)

// BaseURLFunc provides the base HTTP API URL (e.g., from env or flag).
type BaseURLFunc func() string

// NewRoot constructs a root Cobra command for the mock client.
// It registers the chat, video, and token command groups.
func NewRoot(baseURL BaseURLFunc) *cobra.Command {
	root := &cobra.Command{
		Use:   "ytmock",
		Short: "YouTube API mock client commands",
	}
	root.AddCommand(NewChatCommand(baseURL))
	root.AddCommand(NewVideoCommand(baseURL))
	root.AddCommand(NewTokenCommand(baseURL))
	return root
}
