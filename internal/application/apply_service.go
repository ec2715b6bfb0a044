package application

import (
	"errors"
	"fmt"

	"github.com/felixgeelhaar/srclist/internal/domain"
	"github.com/felixgeelhaar/srclist/internal/domain/applysession"
	"github.com/felixgeelhaar/srclist/internal/domain/buildfile"
)

// ErrNothingToApply means apply was requested but neither the target file nor
// its backup exists.
var ErrNothingToApply = errors.New("neither target nor backup exists")

// ApplyService rewrites the generated block inside the target build file
// using backup-then-patch semantics: the live target is moved to the backup
// path first, the backup is read, patched, and the result written back to the
// target path. If a prior run was interrupted after creating the backup, the
// backup is used as the read source, so repeated applies always succeed from
// the sole surviving recovery point.
type ApplyService struct {
	repo    domain.TargetRepository
	history *HistoryService
	conv    domain.Conventions
}

func NewApplyService(repo domain.TargetRepository, history *HistoryService, conv domain.Conventions) *ApplyService {
	return &ApplyService{repo: repo, history: history, conv: conv}
}

func (s *ApplyService) TargetPath() string { return s.repo.TargetPath() }
func (s *ApplyService) BackupPath() string { return s.repo.BackupPath() }

// Apply patches the target build file with block. fileCount is recorded in
// the apply history; a history write failure never fails the apply.
func (s *ApplyService) Apply(block string, fileCount int) error {
	session, err := applysession.NewSession(s.repo.TargetPath())
	if err != nil {
		return err
	}

	switch {
	case s.repo.TargetExists():
		// The live target is trusted as newer; a stale backup is overwritten.
		if err := s.repo.RotateToBackup(); err != nil {
			return err
		}
	case s.repo.BackupExists():
		// A prior run was interrupted after backup creation; the backup is
		// the ground truth.
	default:
		return fmt.Errorf("%w: %s, %s", ErrNothingToApply, s.repo.TargetPath(), s.repo.BackupPath())
	}
	if err := session.Transition(applysession.EventBackup); err != nil {
		return err
	}

	text, err := s.repo.ReadBackup()
	if err != nil {
		return s.rollback(session, err)
	}

	patched, err := buildfile.Replace(text, block, s.conv.Declaration)
	if err != nil {
		return s.rollback(session, err)
	}
	if err := session.Transition(applysession.EventPatch); err != nil {
		return err
	}

	if err := s.repo.WriteTarget(patched); err != nil {
		return s.rollback(session, err)
	}
	if err := session.Transition(applysession.EventCommit); err != nil {
		return err
	}

	// Best effort; the target is already committed.
	_ = s.history.Record(s.repo.TargetPath(), s.repo.BackupPath(), fileCount)

	return nil
}

// rollback removes a partially written or stale target so no corrupted file
// is left behind, then propagates the original error. The backup stays
// intact as the recovery point; a failed removal is deliberately suppressed
// so the original cause is not masked.
func (s *ApplyService) rollback(session *applysession.Session, cause error) error {
	_ = session.Transition(applysession.EventFail)
	if s.repo.TargetExists() {
		_ = s.repo.RemoveTarget()
	}
	return cause
}
