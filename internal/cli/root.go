package cli

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/ericfisherdev/tajmahal/internal/client"
)

// ServerEnv overrides the default --server value.
const ServerEnv = "TAJMAHAL_SERVER"

type globalFlags struct {
	Server string
	Format string
}

// NewRootCommand builds the complete command tree.
func NewRootCommand(deps Dependencies) *cobra.Command {
	flags := &globalFlags{}

	root := &cobra.Command{
		Use:           "tajmahalctl",
		Short:         "Inspect the Taj Mahal restaurant and manage its reviews.",
		SilenceErrors: true,
		SilenceUsage:  true,
		Version:       resolvedVersion(deps.Version),
		CompletionOptions: cobra.CompletionOptions{
			DisableDefaultCmd: true,
		},
		PersistentPreRunE: func(_ *cobra.Command, _ []string) error {
			_, err := ParseFormat(flags.Format)
			return err
		},
	}
	addGlobalFlags(root.PersistentFlags(), flags, defaultServer(deps))

	root.AddCommand(newRestaurantCommand(deps, flags))
	root.AddCommand(newReviewsCommand(deps, flags))

	return root
}

func addGlobalFlags(fs *pflag.FlagSet, flags *globalFlags, server string) {
	fs.StringVar(&flags.Server, "server", server, "Base URL of the tajmahal server (env "+ServerEnv+").")
	fs.StringVar(&flags.Format, "format", string(FormatTable), "Output format: table, json, or yaml.")
}

func defaultServer(deps Dependencies) string {
	if v := strings.TrimSpace(os.Getenv(ServerEnv)); v != "" {
		return v
	}
	if deps.DefaultServer != "" {
		return deps.DefaultServer
	}
	return client.DefaultBaseURL
}

func resolvedVersion(v string) string {
	if strings.TrimSpace(v) == "" {
		return "dev"
	}
	return v
}

// apiFor resolves the API for the current invocation.
func apiFor(deps Dependencies, flags *globalFlags) (API, error) {
	if deps.NewAPI == nil {
		return nil, fmt.Errorf("no API client configured")
	}
	return deps.NewAPI(flags.Server), nil
}
