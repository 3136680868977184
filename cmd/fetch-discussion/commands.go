package main

import (
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"discussion-fetcher/bootstrap"
)

func (c *cli) runCmd() *cobra.Command {
	var commentCap int

	cmd := &cobra.Command{
		Use:   "run <content-id>",
		Short: "Fetch a discussion now and store it",
		Long: `Fetch the discussion of one content item and replace its stored record.

The result is printed as JSON. The exit code is 1 when the fetch did not succeed,
so callers can tell a stored failure from a completed or partial fetch.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			contentID, err := parseContentID(args[0])
			if err != nil {
				return err
			}

			return c.withCore(cmd.Context(), func(core *bootstrap.Core) error {
				result, err := core.Ingestion.FetchAndStoreDiscussion(cmd.Context(), contentID, commentCap)
				if result != nil {
					if perr := printJSON(cmd.OutOrStdout(), result); perr != nil {
						return perr
					}
				}
				if err != nil {
					return fmt.Errorf("storing discussion: %w", err)
				}
				if !result.Success {
					return &exitError{code: 1}
				}
				return nil
			})
		},
	}
	cmd.Flags().IntVar(&commentCap, "cap", 0, "maximum number of comments (0 uses DISCUSSION_COMMENT_CAP)")
	return cmd
}

func (c *cli) showCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "show <content-id>",
		Short: "Print the stored discussion record",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			contentID, err := parseContentID(args[0])
			if err != nil {
				return err
			}

			return c.withCore(cmd.Context(), func(core *bootstrap.Core) error {
				record, err := core.DiscussionRepo.FindByContentID(cmd.Context(), contentID)
				if err != nil {
					return fmt.Errorf("loading discussion: %w", err)
				}
				if record == nil {
					fmt.Fprintf(cmd.ErrOrStderr(), "no discussion stored for %s\n", contentID)
					return &exitError{code: 1}
				}
				return printJSON(cmd.OutOrStdout(), storedDiscussion{
					ContentID:    record.ContentID,
					Platform:     record.Platform,
					Status:       string(record.Status),
					ErrorMessage: record.ErrorMessage,
					FetchedAt:    record.FetchedAt,
					Discussion:   record.Data,
				})
			})
		},
	}
}

func parseContentID(raw string) (string, error) {
	id, err := uuid.Parse(strings.TrimSpace(raw))
	if err != nil {
		return "", fmt.Errorf("content id %q is not a UUID", raw)
	}
	return id.String(), nil
}
