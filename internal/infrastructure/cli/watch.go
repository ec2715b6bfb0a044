package cli

import (
	"fmt"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/felixgeelhaar/srclist/internal/infrastructure/watch"
	"github.com/spf13/cobra"
)

var (
	watchApply    bool
	watchDebounce time.Duration
)

var watchCmd = &cobra.Command{
	Use:   "watch",
	Short: "Watch the source tree and regenerate the src_files array on changes",

	RunE: func(cmd *cobra.Command, args []string) error {
		services, err := loadServicesForCurrentDir()
		if err != nil {
			return MapError(err)
		}

		regenerate := func(ev watch.ChangeEvent) {
			block, fileCount, err := services.Generate.RenderBlock()
			if err != nil {
				fmt.Printf("Regeneration failed: %v\n", MapError(err))
				return
			}

			fmt.Printf("\nSource change detected (%s %s) at %s\n",
				ev.ChangeType, ev.Path, time.Now().Format("15:04:05"))
			fmt.Println(block)

			if watchApply {
				if err := services.Apply.Apply(block, fileCount); err != nil {
					fmt.Printf("Apply failed: %v\n", MapError(err))
					return
				}
				fmt.Printf("Applied updated %s to %s (backup at %s)\n",
					services.Conventions.Declaration,
					services.Apply.TargetPath(),
					services.Apply.BackupPath(),
				)
			}
		}

		watcher, err := watch.NewSourceWatcher(services.Conventions.Extension, watchDebounce, regenerate)
		if err != nil {
			return err
		}

		sourceRoot := filepath.Join(services.Root, filepath.FromSlash(services.Conventions.SourceRoot))
		if err := watcher.WatchRecursive(sourceRoot); err != nil {
			// Run never starts, so its deferred close never happens.
			_ = watcher.Close()
			return MapError(err)
		}

		fmt.Printf("Watching %s for %s changes... (Apply: %v)\n",
			sourceRoot, services.Conventions.Extension, watchApply)

		ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
		defer stop()

		if err := watcher.Run(ctx); err != nil && ctx.Err() == nil {
			return err
		}
		return nil
	},
}

func init() {
	watchCmd.Flags().BoolVar(&watchApply, "apply", false, "Also rewrite the build file after each regeneration")
	watchCmd.Flags().DurationVar(&watchDebounce, "debounce", 500*time.Millisecond, "Quiet window before a change burst triggers regeneration")
	RootCmd.AddCommand(watchCmd)
}
