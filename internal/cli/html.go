package cli

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/Alp4ka/gopaginator"
)

func newHTMLCmd() *cobra.Command {
	var (
		input string
		click []int
	)

	cmd := &cobra.Command{
		Use:   "html",
		Short: "Print the pagination markup",
		Long: "Render the control strip into the element with --container-id and print it. " +
			"With --input the element is looked up in that document and the whole document is printed.",
		RunE: func(cmd *cobra.Command, _ []string) error {
			cc, err := newCommandContext(cmd)
			if err != nil {
				return err
			}

			doc, err := loadDocument(input, cc.cfg.ContainerID)
			if err != nil {
				return err
			}

			p, err := gopaginator.New(gopaginator.Config{
				Container:   gopaginator.ByID(cc.cfg.ContainerID, doc),
				TotalPages:  cc.cfg.Total,
				CurrentPage: cc.cfg.Page,
				OnPageChange: func(page int) {
					cc.log.Info().Int("page", page).Msg("page changed")
				},
				Logger: &cc.log,
			})
			if err != nil {
				return err
			}

			surface, _ := doc.SurfaceByID(cc.cfg.ContainerID)
			htmlSurface := surface.(*gopaginator.HTMLSurface)
			for _, page := range click {
				c, ok := htmlSurface.Control(page)
				if !ok {
					cc.log.Warn().Int("page", page).Msg("no control targets page")
					continue
				}
				c.Click()
			}
			cc.log.Debug().Int("page", p.CurrentPage()).Msg("final page")

			out := cmd.OutOrStdout()
			if input == "" {
				_, err = fmt.Fprintln(out, htmlSurface.String())
				return err
			}

			return doc.Render(out)
		},
	}

	cmd.Flags().StringVar(&input, "input", "", "HTML document to render into (default: an empty document)")
	cmd.Flags().String("container-id", "pager", "id of the element that hosts the pagination")
	cmd.Flags().IntSliceVar(&click, "click", nil, "pages whose controls are clicked after the first render, in order")

	return cmd
}

func loadDocument(path, containerID string) (*gopaginator.HTMLDocument, error) {
	if path == "" {
		return gopaginator.ParseHTMLDocument(strings.NewReader(fmt.Sprintf(`<div id=%q></div>`, containerID)))
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open document: %w", err)
	}
	defer f.Close()

	return gopaginator.ParseHTMLDocument(f)
}
