package cli

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"
)

// NewDiscussionsCommand creates the discussions command group.
func NewDiscussionsCommand(opts *RootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "discussions",
		Aliases: []string{"d"},
		Short:   "List and create discussions",
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "list",
		Short: "List all discussions",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := opts.client()
			if err != nil {
				return err
			}
			discussions, err := c.ListDiscussions(cmd.Context())
			if err != nil {
				return err
			}
			return formatter(opts, cmd).Discussions(discussions)
		},
	})

	var content string
	create := &cobra.Command{
		Use:   "create <title>",
		Short: "Create a discussion",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := opts.client()
			if err != nil {
				return err
			}
			if err = c.CreateDiscussion(cmd.Context(), args[0], content); err != nil {
				return err
			}
			return formatter(opts, cmd).Message("created discussion %q", args[0])
		},
	}
	create.Flags().StringVarP(&content, "content", "c", "", "discussion text")
	cmd.AddCommand(create)

	return cmd
}

// parseID parses a positive id argument.
func parseID(name, raw string) (int64, error) {
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("invalid %s %q: must be a positive number", name, raw)
	}
	return id, nil
}
