package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

var historyLimit int

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "List recent applies recorded in .srclist/history.jsonl",
	RunE: func(cmd *cobra.Command, args []string) error {
		services, err := loadServicesForCurrentDir()
		if err != nil {
			return MapError(err)
		}

		records, err := services.History.Timeline()
		if err != nil {
			return MapError(err)
		}
		if len(records) == 0 {
			fmt.Println("No applies recorded yet.")
			return nil
		}

		if historyLimit > 0 && len(records) > historyLimit {
			records = records[len(records)-historyLimit:]
		}

		for _, rec := range records {
			fmt.Printf("%s  %s  %4d files  %s\n",
				rec.Timestamp.Format("2006-01-02 15:04:05"), rec.ID, rec.FileCount, rec.Target)
		}
		return nil
	},
}

func init() {
	historyCmd.Flags().IntVar(&historyLimit, "limit", 10, "Maximum number of entries to show (0 for all)")
	RootCmd.AddCommand(historyCmd)
}
