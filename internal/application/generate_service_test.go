package application_test

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/felixgeelhaar/srclist/internal/application"
	"github.com/felixgeelhaar/srclist/internal/infrastructure/discovery"
)

func writeSource(t *testing.T, root, rel string) {
	t.Helper()
	path := filepath.Join(root, filepath.FromSlash(rel))
	if err := os.MkdirAll(filepath.Dir(path), 0700); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(path, []byte("// stub\n"), 0600); err != nil {
		t.Fatal(err)
	}
}

func TestGenerateService_RenderBlock(t *testing.T) {
	root := t.TempDir()
	writeSource(t, root, "src/c/z.c")
	writeSource(t, root, "src/a.c")
	writeSource(t, root, "src/b/y.c")
	writeSource(t, root, "src/b/x.c")
	writeSource(t, root, "src/b/notes.txt")

	svc := application.NewGenerateService(discovery.NewScanner(root), testConventions())

	block, fileCount, err := svc.RenderBlock()
	if err != nil {
		t.Fatal(err)
	}
	if fileCount != 4 {
		t.Errorf("expected 4 files, got %d", fileCount)
	}

	want := strings.Join([]string{
		"const src_files = [_][]const u8{",
		`    "helpers.c",`,
		"",
		"    // core",
		`    "src/a.c",`,
		"",
		"    // b",
		`    "src/b/x.c",`,
		`    "src/b/y.c",`,
		"",
		"    // c",
		`    "src/c/z.c",`,
		"",
		"};",
	}, "\n")
	if block != want {
		t.Errorf("rendered block mismatch:\n--- got ---\n%s\n--- want ---\n%s", block, want)
	}

	// Two consecutive renders of an unchanged tree are byte-identical.
	again, _, err := svc.RenderBlock()
	if err != nil {
		t.Fatal(err)
	}
	if again != block {
		t.Error("render is not deterministic across runs")
	}
}

func TestGenerateService_MissingSourceRoot(t *testing.T) {
	root := t.TempDir()
	svc := application.NewGenerateService(discovery.NewScanner(root), testConventions())

	_, _, err := svc.RenderBlock()
	if !errors.Is(err, discovery.ErrSourceRootMissing) {
		t.Fatalf("expected ErrSourceRootMissing, got %v", err)
	}
}
