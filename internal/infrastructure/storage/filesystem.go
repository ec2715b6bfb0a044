package storage

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/felixgeelhaar/fortify/retry"
	"github.com/felixgeelhaar/srclist/internal/domain"
)

const SrclistDir = ".srclist"
const HistoryFile = "history.jsonl"

// FilesystemRepository persists the build file, its backup sibling, and the
// apply history under a project root.
type FilesystemRepository struct {
	root        string
	target      string // slash path relative to root
	backup      string // slash path relative to root
	retryConfig retry.Config
}

// Compile-time check that FilesystemRepository implements TargetRepository
var _ domain.TargetRepository = (*FilesystemRepository)(nil)

func NewFilesystemRepository(root string, conv domain.Conventions) *FilesystemRepository {
	return &FilesystemRepository{
		root:   root,
		target: conv.Target,
		backup: conv.BackupTarget(),
		retryConfig: retry.Config{
			MaxAttempts:   3,
			InitialDelay:  10 * time.Millisecond,
			BackoffPolicy: retry.BackoffExponential,
		},
	}
}

func (r *FilesystemRepository) TargetPath() string {
	return filepath.Join(r.root, filepath.FromSlash(r.target))
}

func (r *FilesystemRepository) BackupPath() string {
	return filepath.Join(r.root, filepath.FromSlash(r.backup))
}

func (r *FilesystemRepository) TargetExists() bool {
	_, err := os.Stat(r.TargetPath())
	return err == nil
}

func (r *FilesystemRepository) BackupExists() bool {
	_, err := os.Stat(r.BackupPath())
	return err == nil
}

// RotateToBackup moves the live target onto the backup path, overwriting any
// stale backup there.
func (r *FilesystemRepository) RotateToBackup() error {
	if err := os.Rename(r.TargetPath(), r.BackupPath()); err != nil {
		return fmt.Errorf("failed to back up %s: %w", r.TargetPath(), err)
	}
	return nil
}

func (r *FilesystemRepository) ReadBackup() (string, error) {
	retryer := retry.New[string](r.retryConfig)

	return retryer.Do(context.Background(), func(ctx context.Context) (string, error) {
		// #nosec G304 -- Path is derived from the project manifest
		data, err := os.ReadFile(r.BackupPath())
		if err != nil {
			return "", fmt.Errorf("failed to read backup file: %w", err)
		}
		return string(data), nil
	})
}

func (r *FilesystemRepository) WriteTarget(text string) error {
	// G306: Use 0600 for files
	if err := os.WriteFile(r.TargetPath(), []byte(text), 0600); err != nil {
		return fmt.Errorf("failed to write target file: %w", err)
	}
	return nil
}

func (r *FilesystemRepository) RemoveTarget() error {
	return os.Remove(r.TargetPath())
}
