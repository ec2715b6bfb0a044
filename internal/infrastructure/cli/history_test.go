package cli

import (
	"strings"
	"testing"

	"github.com/felixgeelhaar/srclist/internal/application"
	"github.com/felixgeelhaar/srclist/internal/infrastructure/config"
	"github.com/felixgeelhaar/srclist/internal/infrastructure/storage"
)

func TestHistoryCommand_Empty(t *testing.T) {
	setupProject(t)

	out := captureStdout(t, func() error {
		return historyCmd.RunE(historyCmd, nil)
	})

	if !strings.Contains(out, "No applies recorded yet.") {
		t.Errorf("expected the empty-history message:\n%s", out)
	}
}

func TestHistoryCommand_ListsAndTruncates(t *testing.T) {
	root := setupProject(t)
	t.Cleanup(func() { historyLimit = 10 })

	conv, err := config.Load(root)
	if err != nil {
		t.Fatal(err)
	}
	repo := storage.NewFilesystemRepository(root, conv)
	history := application.NewHistoryService(repo)
	for _, count := range []int{1, 2, 3} {
		if err := history.Record(repo.TargetPath(), repo.BackupPath(), count); err != nil {
			t.Fatal(err)
		}
	}

	historyLimit = 2
	out := captureStdout(t, func() error {
		return historyCmd.RunE(historyCmd, nil)
	})

	lines := strings.Split(strings.TrimSpace(out), "\n")
	if len(lines) != 2 {
		t.Fatalf("expected 2 lines with --limit 2, got %d:\n%s", len(lines), out)
	}
	// The oldest record is truncated away; the newest two survive.
	if strings.Contains(out, "   1 files") {
		t.Errorf("oldest record should be truncated:\n%s", out)
	}
	if !strings.Contains(out, "   2 files") || !strings.Contains(out, "   3 files") {
		t.Errorf("newest records missing:\n%s", out)
	}
	if !strings.Contains(out, "build.zig") {
		t.Errorf("target path missing from listing:\n%s", out)
	}
}
