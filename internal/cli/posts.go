package cli

import (
	"github.com/spf13/cobra"
)

// NewPostsCommand creates the posts command group. Every subcommand takes
// the discussion id as its first argument.
func NewPostsCommand(opts *RootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "posts",
		Aliases: []string{"p"},
		Short:   "Manage posts of a discussion",
	}

	cmd.AddCommand(newPostsListCommand(opts))
	cmd.AddCommand(newPostsCreateCommand(opts))
	cmd.AddCommand(newPostsEditCommand(opts))
	cmd.AddCommand(newPostsDeleteCommand(opts))

	return cmd
}

func newPostsListCommand(opts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "list <discussion-id>",
		Short: "List posts, oldest first",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			discussionID, err := parseID("discussion id", args[0])
			if err != nil {
				return err
			}
			c, err := opts.client()
			if err != nil {
				return err
			}
			posts, err := c.ListPosts(cmd.Context(), discussionID)
			if err != nil {
				return err
			}
			return formatter(opts, cmd).Posts(posts)
		},
	}
}

func newPostsCreateCommand(opts *RootOptions) *cobra.Command {
	var content string

	cmd := &cobra.Command{
		Use:   "create <discussion-id> <title>",
		Short: "Post to a discussion",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			discussionID, err := parseID("discussion id", args[0])
			if err != nil {
				return err
			}
			c, err := opts.client()
			if err != nil {
				return err
			}
			posts, err := c.CreatePost(cmd.Context(), discussionID, args[1], content)
			if err != nil {
				return err
			}
			return formatter(opts, cmd).Posts(posts)
		},
	}
	cmd.Flags().StringVarP(&content, "content", "c", "", "post text")

	return cmd
}

func newPostsEditCommand(opts *RootOptions) *cobra.Command {
	var title, content string

	cmd := &cobra.Command{
		Use:   "edit <discussion-id> <post-id>",
		Short: "Replace the title and content of a post",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			discussionID, err := parseID("discussion id", args[0])
			if err != nil {
				return err
			}
			postID, err := parseID("post id", args[1])
			if err != nil {
				return err
			}
			c, err := opts.client()
			if err != nil {
				return err
			}
			if err = c.EditPost(cmd.Context(), discussionID, postID, title, content); err != nil {
				return err
			}
			return formatter(opts, cmd).Message("edited post %d", postID)
		},
	}
	cmd.Flags().StringVar(&title, "title", "", "new title")
	cmd.Flags().StringVarP(&content, "content", "c", "", "new text")

	return cmd
}

func newPostsDeleteCommand(opts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "delete <discussion-id> <post-id>",
		Short: "Delete a post permanently",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			discussionID, err := parseID("discussion id", args[0])
			if err != nil {
				return err
			}
			postID, err := parseID("post id", args[1])
			if err != nil {
				return err
			}
			c, err := opts.client()
			if err != nil {
				return err
			}
			if err = c.DeletePost(cmd.Context(), discussionID, postID); err != nil {
				return err
			}
			return formatter(opts, cmd).Message("deleted post %d", postID)
		},
	}
}
