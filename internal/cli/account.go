package cli

import (
	"github.com/spf13/cobra"
)

// NewRegisterCommand creates the register command.
func NewRegisterCommand(opts *RootOptions) *cobra.Command {
	var email, password string

	cmd := &cobra.Command{
		Use:   "register <username>",
		Short: "Create an account",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := opts.client()
			if err != nil {
				return err
			}
			if err = c.Register(cmd.Context(), args[0], email, password); err != nil {
				return err
			}
			return formatter(opts, cmd).Message("registered %s", args[0])
		},
	}

	cmd.Flags().StringVarP(&email, "email", "e", "", "account email")
	cmd.Flags().StringVarP(&password, "password", "p", "", "account password")
	_ = cmd.MarkFlagRequired("email")
	_ = cmd.MarkFlagRequired("password")

	return cmd
}

// NewLoginCommand creates the login command. It prints the signed session
// for use with --token.
func NewLoginCommand(opts *RootOptions) *cobra.Command {
	var password string

	cmd := &cobra.Command{
		Use:   "login <username>",
		Short: "Log in and print the session token",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := opts.client()
			if err != nil {
				return err
			}
			token, err := c.Login(cmd.Context(), args[0], password)
			if err != nil {
				return err
			}

			out := formatter(opts, cmd)
			if out.Format == "json" {
				return out.json(map[string]string{"token": token})
			}
			_, err = cmd.OutOrStdout().Write([]byte(token + "\n"))
			return err
		},
	}

	cmd.Flags().StringVarP(&password, "password", "p", "", "account password")
	_ = cmd.MarkFlagRequired("password")

	return cmd
}

// NewLogoutCommand creates the logout command.
func NewLogoutCommand(opts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "logout",
		Short: "End the session given by --token",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := opts.client()
			if err != nil {
				return err
			}
			if err = c.Logout(cmd.Context()); err != nil {
				return err
			}
			return formatter(opts, cmd).Message("logged out")
		},
	}
}

// NewVersionCommand creates the version command.
func NewVersionCommand(opts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the server version",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := opts.client()
			if err != nil {
				return err
			}
			version, err := c.Version(cmd.Context())
			if err != nil {
				return err
			}
			return formatter(opts, cmd).Message("%s", version)
		},
	}
}

func formatter(opts *RootOptions, cmd *cobra.Command) *OutputFormatter {
	return &OutputFormatter{Format: opts.Format, Writer: cmd.OutOrStdout()}
}
