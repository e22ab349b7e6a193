package client

import (
	"bufio"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"

	"github.com/spf13/cobra"
)

// NewChatCommand constructs the `chat` command group and subcommands.
func NewChatCommand(baseURL BaseURLFunc) *cobra.Command {
	chatCmd := &cobra.Command{Use: "chat", Short: "Live chat operations"}

	chatCmd.AddCommand(
		newChatPostCommand(baseURL),
		newChatGenerateCommand(baseURL),
		newChatListCommand(baseURL),
		newChatTailCommand(baseURL),
	)

	return chatCmd
}

// newChatPostCommand constructs the `chat post` subcommand.
func newChatPostCommand(baseURL BaseURLFunc) *cobra.Command {
	postCmd := &cobra.Command{
		Use:   "post",
		Short: "Append a fully-specified chat message",
		RunE: func(cmd *cobra.Command, _ []string) error {
			chatID, _ := cmd.Flags().GetString("chat-id")
			id, _ := cmd.Flags().GetString("id")
			channelID, _ := cmd.Flags().GetString("channel-id")
			author, _ := cmd.Flags().GetString("author")
			text, _ := cmd.Flags().GetString("text")
			verified, _ := cmd.Flags().GetBool("verified")

			body := map[string]any{
				"id":                id,
				"liveChatId":        chatID,
				"authorChannelId":   channelID,
				"authorDisplayName": author,
				"messageText":       text,
				"isVerified":        verified,
			}
			out, status, err := postJSON(baseURL()+"/control/chat_messages", body)
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
	postCmd.Flags().String("chat-id", "", "Live chat id (required)")
	postCmd.Flags().String("id", "", "Message id (required)")
	postCmd.Flags().String("channel-id", "", "Author channel id")
	postCmd.Flags().String("author", "", "Author display name")
	postCmd.Flags().String("text", "", "Message text")
	postCmd.Flags().Bool("verified", false, "Mark the author as verified")
	_ = postCmd.MarkFlagRequired("chat-id")
	_ = postCmd.MarkFlagRequired("id")
	return postCmd
}

// newChatGenerateCommand constructs the `chat generate` subcommand.
func newChatGenerateCommand(baseURL BaseURLFunc) *cobra.Command {
	genCmd := &cobra.Command{
		Use:   "generate",
		Short: "Append a message with generated author and text",
		RunE: func(cmd *cobra.Command, _ []string) error {
			chatID, _ := cmd.Flags().GetString("chat-id")
			text, _ := cmd.Flags().GetString("text")
			author, _ := cmd.Flags().GetString("author")
			count, _ := cmd.Flags().GetInt("count")

			for i := 0; i < count; i++ {
				body := map[string]any{"liveChatId": chatID}
				if text != "" {
					body["messageText"] = text
				}
				if author != "" {
					body["authorDisplayName"] = author
				}
				out, status, err := postJSON(baseURL()+"/control/chat_messages/generate", body)
				if err != nil {
					return err
				}
				if status != http.StatusCreated {
					return fmt.Errorf("server returned %d: %v", status, out["error"])
				}
				printJSON(cmd.OutOrStdout(), out)
			}
			return nil
		},
	}
	genCmd.Flags().String("chat-id", "", "Live chat id (required)")
	genCmd.Flags().String("text", "", "Message text (generated when empty)")
	genCmd.Flags().String("author", "", "Author display name (generated when empty)")
	genCmd.Flags().Int("count", 1, "Number of messages to generate")
	_ = genCmd.MarkFlagRequired("chat-id")
	return genCmd
}

// newChatListCommand constructs the `chat list` subcommand.
func newChatListCommand(baseURL BaseURLFunc) *cobra.Command {
	listCmd := &cobra.Command{
		Use:   "list",
		Short: "List unread chat messages in one batched response",
		RunE: func(cmd *cobra.Command, _ []string) error {
			chatID, _ := cmd.Flags().GetString("chat-id")
			pageToken, _ := cmd.Flags().GetString("page-token")

			q := url.Values{"liveChatId": {chatID}}
			if pageToken != "" {
				q.Set("pageToken", pageToken)
			}
			out, status, err := getJSON(baseURL() + "/youtube/v3/liveChat/messages?" + q.Encode())
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
	listCmd.Flags().String("chat-id", "", "Live chat id (required)")
	listCmd.Flags().String("page-token", "", "Resume cursor from a previous response")
	_ = listCmd.MarkFlagRequired("chat-id")
	return listCmd
}

// newChatTailCommand constructs the `chat tail` subcommand.
func newChatTailCommand(baseURL BaseURLFunc) *cobra.Command {
	tailCmd := &cobra.Command{
		Use:   "tail",
		Short: "Stream chat messages, one response frame per line",
		RunE: func(cmd *cobra.Command, _ []string) error {
			chatID, _ := cmd.Flags().GetString("chat-id")
			pageToken, _ := cmd.Flags().GetString("page-token")
			limit, _ := cmd.Flags().GetInt("limit")

			q := url.Values{"liveChatId": {chatID}}
			if pageToken != "" {
				q.Set("pageToken", pageToken)
			}
			req, err := http.NewRequestWithContext(cmd.Context(), http.MethodGet,
				baseURL()+"/youtube/v3/liveChat/messages/stream?"+q.Encode(), nil)
			if err != nil {
				return err
			}
			resp, err := http.DefaultClient.Do(req)
			if err != nil {
				return err
			}
			defer resp.Body.Close()
			if resp.StatusCode != http.StatusOK {
				var out map[string]any
				_ = json.NewDecoder(resp.Body).Decode(&out)
				return fmt.Errorf("server returned %d: %v", resp.StatusCode, out["error"])
			}

			n := 0
			sc := bufio.NewScanner(resp.Body)
			for sc.Scan() {
				line := sc.Text()
				if !strings.HasPrefix(line, "data: ") {
					continue
				}
				fmt.Fprintln(cmd.OutOrStdout(), strings.TrimPrefix(line, "data: "))
				n++
				if limit > 0 && n >= limit {
					return nil
				}
			}
			return sc.Err()
		},
	}
	tailCmd.Flags().String("chat-id", "", "Live chat id (required)")
	tailCmd.Flags().String("page-token", "", "Resume cursor from a previous response")
	tailCmd.Flags().Int("limit", 0, "Stop after N response frames (0 = until the stream closes)")
	_ = tailCmd.MarkFlagRequired("chat-id")
	return tailCmd
}
