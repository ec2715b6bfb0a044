package cli

import (
	"github.com/spf13/cobra"
)

var (
	Version = "dev"
	Commit  = "none"
	Date    = "unknown"
)

var projectPath string

// RootCmd represents the base command when called without any subcommands
var RootCmd = &cobra.Command{
	Use:     "srclist",
	Version: Version,
	Short:   "Keep a Zig build file's source list in sync with the sources on disk",
	Long: `srclist scans a project's native source tree and renders the matching
src_files array for its Zig build file. It can print the array for manual
pasting or rewrite the existing block in place, keeping a backup of the
previous build file for recovery.`,
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the RootCmd.
func Execute() error {
	return RootCmd.Execute()
}

func init() {
	RootCmd.PersistentFlags().StringVar(&projectPath, "root", "", "project root directory (defaults to the current directory)")
}
