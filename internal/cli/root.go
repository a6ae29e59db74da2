// Package cli implements forumctl, a command-line client for the forum.
package cli

import (
	"fmt"
	"io"
	"os"
	"slices"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/spf13/cobra"

	"github.com/MKhiriev/go-forum/internal/adapter"
	"github.com/MKhiriev/go-forum/internal/logger"
)

// ValidFormats defines the allowed output formats.
var ValidFormats = []string{"text", "json"}

// RootOptions holds global flags for all commands.
type RootOptions struct {
	Server  string
	Token   string
	Format  string // "json" | "text"
	Timeout time.Duration
	Verbose bool

	// newClient builds the forum client once flags are parsed.
	newClient func(opts *RootOptions) (adapter.ForumClient, error)

	// stderr receives verbose logs.
	stderr io.Writer
}

const (
	defaultServer  = "localhost:8080"
	defaultTimeout = 15 * time.Second
)

// environment supplies flag defaults.
type environment struct {
	Server  string        `env:"FORUM_SERVER" envDefault:"localhost:8080"`
	Token   string        `env:"FORUM_TOKEN"`
	Timeout time.Duration `env:"FORUM_TIMEOUT" envDefault:"15s"`
}

// NewRootCommand creates the root command of forumctl.
func NewRootCommand() *cobra.Command {
	return newRootCommand(&RootOptions{newClient: newHTTPClient})
}

func newRootCommand(opts *RootOptions) *cobra.Command {
	var defaults environment
	// A malformed variable falls back to the built-in default and is
	// reported once --verbose is known.
	envErr := env.Parse(&defaults)
	if defaults.Server == "" {
		defaults.Server = defaultServer
	}
	if defaults.Timeout <= 0 {
		defaults.Timeout = defaultTimeout
	}

	cmd := &cobra.Command{
		Use:   "forumctl",
		Short: "forumctl - command-line client for go-forum",
		Long: `Register, log in, browse discussions and manage posts on a go-forum server.

The session printed by "login" is accepted by every other command through
--token or the FORUM_TOKEN environment variable.`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if !slices.Contains(ValidFormats, opts.Format) {
				return fmt.Errorf("invalid format %q: must be one of %v", opts.Format, ValidFormats)
			}
			opts.stderr = cmd.ErrOrStderr()
			if envErr != nil {
				opts.debugLogger().Debug().Err(envErr).Msg("ignoring malformed FORUM_* environment")
			}
			return nil
		},
	}

	cmd.PersistentFlags().StringVarP(&opts.Server, "server", "s", defaults.Server, "forum server address (env FORUM_SERVER)")
	cmd.PersistentFlags().StringVarP(&opts.Token, "token", "t", defaults.Token, "signed session from login (env FORUM_TOKEN)")
	cmd.PersistentFlags().StringVar(&opts.Format, "format", "text", "output format (json|text)")
	cmd.PersistentFlags().DurationVar(&opts.Timeout, "timeout", defaults.Timeout, "request timeout (env FORUM_TIMEOUT)")
	cmd.PersistentFlags().BoolVarP(&opts.Verbose, "verbose", "v", false, "log every request to stderr")

	cmd.AddCommand(NewRegisterCommand(opts))
	cmd.AddCommand(NewLoginCommand(opts))
	cmd.AddCommand(NewLogoutCommand(opts))
	cmd.AddCommand(NewVersionCommand(opts))
	cmd.AddCommand(NewDiscussionsCommand(opts))
	cmd.AddCommand(NewPostsCommand(opts))

	return cmd
}

// client builds a forum client carrying the --token session.
func (o *RootOptions) client() (adapter.ForumClient, error) {
	c, err := o.newClient(o)
	if err != nil {
		return nil, err
	}
	if o.Token != "" {
		c.SetToken(o.Token)
	}
	return c, nil
}

// debugLogger returns a debug logger on stderr with --verbose, a no-op one
// otherwise.
func (o *RootOptions) debugLogger() *logger.Logger {
	if !o.Verbose {
		return logger.Nop()
	}

	w := o.stderr
	if w == nil {
		w = os.Stderr
	}
	return logger.NewLogger("forumctl", logger.WithOutput(w), logger.WithLevel("debug"))
}

func newHTTPClient(opts *RootOptions) (adapter.ForumClient, error) {
	return adapter.NewHTTPForumClient(adapter.HTTPClientConfig{
		BaseURL: opts.Server,
		Timeout: opts.Timeout,
	}, opts.debugLogger())
}
