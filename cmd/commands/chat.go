package commands

import (
	"errors"
	"fmt"
	"strings"

	"github.com/atotto/clipboard"
	"github.com/spf13/cobra"

	"github.com/hrayfi/hrayfi-cli/internal/cli"
	"github.com/hrayfi/hrayfi-cli/pkg/api"
	"github.com/hrayfi/hrayfi-cli/pkg/chat"
)

var chatCopyAnswer bool

// NewChatCommand creates the chat command
func NewChatCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "chat <question...>",
		Short: "Ask the Hrayfi assistant a question",
		Long: `Ask a one-shot question about products, artisans, shipping and so on.
Uses the configured assistant endpoint when one is set, otherwise a
built-in script answers common questions.

Examples:
  hrayfi chat where does tamegroute pottery come from
  hrayfi chat "how long does shipping take" --copy`,
		Args: cobra.MinimumNArgs(1),
		RunE: runChat,
	}

	cmd.Flags().BoolVar(&chatCopyAnswer, "copy", false, "Copy the answer to the clipboard")

	return cmd
}

func runChat(cmd *cobra.Command, args []string) error {
	question := strings.Join(args, " ")

	ctx, err := cli.NewCommandContext()
	if err != nil {
		return err
	}

	answer, err := ctx.Client.Chat(cmd.Context(), question)
	if err != nil {
		if !errors.Is(err, api.ErrNoChatEndpoint) {
			cli.PrintWarning("Assistant unreachable, answering from the built-in script: %v", err)
		}
		answer = chat.Respond(question)
	}

	fmt.Fprintln(cmd.OutOrStdout(), answer)

	if chatCopyAnswer {
		if err := clipboard.WriteAll(answer); err != nil {
			cli.PrintWarning("Could not copy answer to clipboard: %v", err)
		}
	}
	return nil
}
