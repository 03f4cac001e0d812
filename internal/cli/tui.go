package cli

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/Alp4ka/gopaginator"
	"github.com/Alp4ka/gopaginator/tui"
)

func newTUICmd() *cobra.Command {
	return &cobra.Command{
		Use:   "tui",
		Short: "Browse pages in the terminal",
		RunE: func(cmd *cobra.Command, _ []string) error {
			cc, err := newCommandContext(cmd)
			if err != nil {
				return err
			}

			surface := tui.NewSurface(tui.DefaultStyles())
			p, err := gopaginator.New(gopaginator.Config{
				Container:   gopaginator.Direct(surface),
				TotalPages:  cc.cfg.Total,
				CurrentPage: cc.cfg.Page,
				Logger:      &cc.log,
			})
			if err != nil {
				return err
			}
			defer p.Destroy()

			page, err := tui.Run(p, surface,
				tea.WithInput(cmd.InOrStdin()),
				tea.WithOutput(cmd.OutOrStdout()),
			)
			if err != nil {
				return err
			}

			_, err = fmt.Fprintf(cmd.OutOrStdout(), "selected page %d\n", page)
			return err
		},
	}
}
