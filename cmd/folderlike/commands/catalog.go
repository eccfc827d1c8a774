package commands

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/justyntemme/folderlike/internal/catalog"
)

var (
	headerStyle = lipgloss.NewStyle().Bold(true).Underline(true)
	priceStyle  = lipgloss.NewStyle().Width(10).Align(lipgloss.Right)
)

func catalogCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "catalog",
		Short: "Print the books on the shelf",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			row := func(id, title, author, price string, style lipgloss.Style) {
				fmt.Fprintln(out, lipgloss.JoinHorizontal(lipgloss.Top,
					style.Copy().Width(38).Render(id),
					style.Copy().Width(40).Render(title),
					style.Copy().Width(40).Render(author),
					priceStyle.Copy().Inherit(style).Render(price),
				))
			}
			row("ID", "TITLE", "AUTHOR", "PRICE", headerStyle)
			for _, b := range catalog.Default().All() {
				row(b.ID, b.Title, b.Author, b.Price.Dollars(), lipgloss.NewStyle())
			}
			return nil
		},
	}
}
