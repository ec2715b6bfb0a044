package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

var applyChanges bool

var generateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Render the src_files array, optionally rewriting it in the build file",

	RunE: func(cmd *cobra.Command, args []string) error {
		services, err := loadServicesForCurrentDir()
		if err != nil {
			return MapError(err)
		}

		block, fileCount, err := services.Generate.RenderBlock()
		if err != nil {
			return MapError(err)
		}

		// The block always goes to stdout so it can be pasted by hand even
		// when apply fails.
		fmt.Println(block)

		if !applyChanges {
			return nil
		}

		if err := services.Apply.Apply(block, fileCount); err != nil {
			return MapError(err)
		}

		fmt.Printf("Applied updated %s to %s (backup at %s)\n",
			services.Conventions.Declaration,
			services.Apply.TargetPath(),
			services.Apply.BackupPath(),
		)
		return nil
	},
}

func init() {
	generateCmd.Flags().BoolVar(&applyChanges, "apply", false, "Rewrite the existing block in the build file, keeping a backup")
	RootCmd.AddCommand(generateCmd)
}
