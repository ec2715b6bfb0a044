package cli

import (
	"fmt"

	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"
)

var statusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show the discovered source groups and their file counts",
	RunE: func(cmd *cobra.Command, args []string) error {
		services, err := loadServicesForCurrentDir()
		if err != nil {
			return MapError(err)
		}

		set, err := services.Generate.Collect()
		if err != nil {
			return MapError(err)
		}

		columns := []table.Column{
			{Title: "Group", Width: 24},
			{Title: "Files", Width: 8},
			{Title: "First entry", Width: 48},
		}

		rows := []table.Row{}
		for _, g := range set.Groups {
			first := ""
			if len(g.Entries) > 0 {
				first = g.Entries[0]
			}
			rows = append(rows, table.Row{
				g.Label,
				fmt.Sprintf("%d", len(g.Entries)),
				first,
			})
		}

		t := table.New(
			table.WithColumns(columns),
			table.WithRows(rows),
			table.WithHeight(len(rows)+1),
		)

		s := table.DefaultStyles()
		s.Header = s.Header.
			BorderStyle(lipgloss.NormalBorder()).
			BorderForeground(lipgloss.Color("240")).
			Bold(true)
		s.Selected = lipgloss.NewStyle() // Disable selection style for static view
		t.SetStyles(s)

		fmt.Printf("%s: %d files in %d groups (+ helper %s)\n",
			services.Conventions.SourceRoot, set.FileCount(), len(set.Groups), set.HelperEntry)
		fmt.Println(t.View())
		return nil
	},
}

func init() {
	RootCmd.AddCommand(statusCmd)
}
