package storage

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/felixgeelhaar/srclist/internal/domain"
)

func testConventions() domain.Conventions {
	return domain.Conventions{
		Target:          "out/build.zig",
		BackupExtension: ".zig.bak",
	}
}

func newTestRepo(t *testing.T) (*FilesystemRepository, string) {
	t.Helper()
	root := t.TempDir()
	if err := os.MkdirAll(filepath.Join(root, "out"), 0700); err != nil {
		t.Fatal(err)
	}
	return NewFilesystemRepository(root, testConventions()), root
}

func TestFilesystemRepository_Paths(t *testing.T) {
	repo, root := newTestRepo(t)

	if got := repo.TargetPath(); got != filepath.Join(root, "out", "build.zig") {
		t.Errorf("unexpected target path %q", got)
	}
	if got := repo.BackupPath(); got != filepath.Join(root, "out", "build.zig.bak") {
		t.Errorf("unexpected backup path %q", got)
	}
}

func TestFilesystemRepository_RotateReadWriteRemove(t *testing.T) {
	repo, _ := newTestRepo(t)

	if repo.TargetExists() || repo.BackupExists() {
		t.Fatal("fresh repo should have neither target nor backup")
	}

	if err := repo.WriteTarget("original\n"); err != nil {
		t.Fatal(err)
	}
	if !repo.TargetExists() {
		t.Fatal("target should exist after write")
	}

	if err := repo.RotateToBackup(); err != nil {
		t.Fatal(err)
	}
	if repo.TargetExists() {
		t.Error("target should be gone after rotation")
	}
	if !repo.BackupExists() {
		t.Error("backup should exist after rotation")
	}

	text, err := repo.ReadBackup()
	if err != nil {
		t.Fatal(err)
	}
	if text != "original\n" {
		t.Errorf("backup content mismatch: %q", text)
	}

	if err := repo.WriteTarget("patched\n"); err != nil {
		t.Fatal(err)
	}
	if err := repo.RemoveTarget(); err != nil {
		t.Fatal(err)
	}
	if repo.TargetExists() {
		t.Error("target should be gone after removal")
	}
}

func TestFilesystemRepository_RotateOverwritesStaleBackup(t *testing.T) {
	repo, _ := newTestRepo(t)

	if err := os.WriteFile(repo.BackupPath(), []byte("stale\n"), 0600); err != nil {
		t.Fatal(err)
	}
	if err := repo.WriteTarget("live\n"); err != nil {
		t.Fatal(err)
	}

	if err := repo.RotateToBackup(); err != nil {
		t.Fatal(err)
	}

	text, err := repo.ReadBackup()
	if err != nil {
		t.Fatal(err)
	}
	if text != "live\n" {
		t.Errorf("stale backup should be overwritten by the live target, got %q", text)
	}
}

func TestFilesystemRepository_History(t *testing.T) {
	repo, root := newTestRepo(t)

	records, err := repo.LoadHistory()
	if err != nil {
		t.Fatal(err)
	}
	if len(records) != 0 {
		t.Fatalf("expected empty history, got %d records", len(records))
	}

	rec := domain.ApplyRecord{
		ID:        "rec-1",
		Timestamp: time.Now().UTC(),
		Target:    repo.TargetPath(),
		Backup:    repo.BackupPath(),
		FileCount: 3,
	}
	if err := repo.RecordApply(rec); err != nil {
		t.Fatal(err)
	}
	if err := repo.RecordApply(domain.ApplyRecord{ID: "rec-2"}); err != nil {
		t.Fatal(err)
	}

	// A malformed line must not poison the trail.
	path := filepath.Join(root, SrclistDir, HistoryFile)
	f, err := os.OpenFile(path, os.O_APPEND|os.O_WRONLY, 0600)
	if err != nil {
		t.Fatal(err)
	}
	if _, err := f.WriteString("{not json\n"); err != nil {
		t.Fatal(err)
	}
	f.Close()

	records, err = repo.LoadHistory()
	if err != nil {
		t.Fatal(err)
	}
	if len(records) != 2 {
		t.Fatalf("expected 2 records, got %d", len(records))
	}
	if records[0].ID != "rec-1" || records[0].FileCount != 3 {
		t.Errorf("unexpected first record: %+v", records[0])
	}
}
