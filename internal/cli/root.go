package cli

import (
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
)

// NewRootCmd creates the gopaginator command with the html and tui
// subcommands.
func NewRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:          "gopaginator",
		Short:        "Render a pagination control strip",
		Long:         "gopaginator renders page-selector controls as HTML or in the terminal.",
		Example:      rootCmdExample,
		SilenceUsage: true,
	}

	cmd.PersistentFlags().Bool("debug", false, "enable debug logging")
	cmd.PersistentFlags().Int("total", 10, "total number of pages")
	cmd.PersistentFlags().Int("page", 1, "initial page")
	cmd.AddCommand(newHTMLCmd(), newTUICmd())

	return cmd
}

const rootCmdExample = `  # Print the markup for page 5 of 10
  gopaginator html --total 10 --page 5

  # Render into an element of an existing document and click page 7
  gopaginator html --input index.html --container-id pager --click 7

  # Browse pages interactively
  gopaginator tui --total 42`

// commandContext is the state every subcommand starts from.
type commandContext struct {
	cfg Config
	log zerolog.Logger
}

func newCommandContext(cmd *cobra.Command) (*commandContext, error) {
	cfg, err := loadConfig(cmd.Flags())
	if err != nil {
		return nil, err
	}

	debug, _ := cmd.Flags().GetBool("debug")
	log := newLogger(cmd.ErrOrStderr(), cfg.LogLevel, debug)
	log.Debug().
		Int("total", cfg.Total).
		Int("page", cfg.Page).
		Str("command", cmd.Name()).
		Msg("configuration loaded")

	return &commandContext{cfg: cfg, log: log}, nil
}
