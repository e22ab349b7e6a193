package client

import (
	"fmt"
	"net/http"
	"net/url"
	"strings"

	"github.com/spf13/cobra"
)

// NewVideoCommand constructs the `video` command group and subcommands.
func NewVideoCommand(baseURL BaseURLFunc) *cobra.Command {
	videoCmd := &cobra.Command{Use: "video", Short: "Video operations"}

	videoCmd.AddCommand(
		newVideoCreateCommand(baseURL),
		newVideoListCommand(baseURL),
	)

	return videoCmd
}

// newVideoCreateCommand constructs the `video create` subcommand.
func newVideoCreateCommand(baseURL BaseURLFunc) *cobra.Command {
	createCmd := &cobra.Command{
		Use:   "create",
		Short: "Create a video resource",
		RunE: func(cmd *cobra.Command, _ []string) error {
			id, _ := cmd.Flags().GetString("id")
			channelID, _ := cmd.Flags().GetString("channel-id")
			title, _ := cmd.Flags().GetString("title")
			description, _ := cmd.Flags().GetString("description")
			channelTitle, _ := cmd.Flags().GetString("channel-title")
			liveChatID, _ := cmd.Flags().GetString("live-chat-id")

			body := map[string]any{
				"id":           id,
				"channelId":    channelID,
				"title":        title,
				"description":  description,
				"channelTitle": channelTitle,
			}
			if liveChatID != "" {
				body["liveChatId"] = liveChatID
			}
			out, status, err := postJSON(baseURL()+"/control/videos", body)
			if err != nil {
				return err
			}
			if status != http.StatusCreated {
				return fmt.Errorf("server returned %d: %v", status, out["error"])
			}
			printJSON(cmd.OutOrStdout(), out)
			return nil
		},
	}
	createCmd.Flags().String("id", "", "Video id (required)")
	createCmd.Flags().String("channel-id", "", "Channel id")
	createCmd.Flags().String("title", "", "Video title")
	createCmd.Flags().String("description", "", "Video description")
	createCmd.Flags().String("channel-title", "", "Channel title")
	createCmd.Flags().String("live-chat-id", "", "Active live chat id")
	_ = createCmd.MarkFlagRequired("id")
	return createCmd
}

// newVideoListCommand constructs the `video list` subcommand.
func newVideoListCommand(baseURL BaseURLFunc) *cobra.Command {
	listCmd := &cobra.Command{
		Use:   "list",
		Short: "List video resources",
		RunE: func(cmd *cobra.Command, _ []string) error {
			ids, _ := cmd.Flags().GetStringSlice("id")
			part, _ := cmd.Flags().GetString("part")

			q := url.Values{}
			if len(ids) > 0 {
				q.Set("id", strings.Join(ids, ","))
			}
			if part != "" {
				q.Set("part", part)
			}
			u := baseURL() + "/youtube/v3/videos"
			if enc := q.Encode(); enc != "" {
				u += "?" + enc
			}
			out, status, err := getJSON(u)
			if err != nil {
				return err
			}
			if status != http.StatusOK {
				return fmt.Errorf("server returned %d: %v", status, out["error"])
			}
			printJSON(cmd.OutOrStdout(), out)
			return nil
		},
	}
	listCmd.Flags().StringSlice("id", nil, "Video ids (repeatable; empty lists all)")
	listCmd.Flags().String("part", "", "Comma-separated parts (snippet,liveStreamingDetails)")
	return listCmd
}
