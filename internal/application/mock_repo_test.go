package application_test

import (
	"errors"

	"github.com/felixgeelhaar/srclist/internal/domain"
)

// MockRepo is an in-memory TargetRepository for failure-path tests.
type MockRepo struct {
	Target    *string
	Backup    *string
	WriteErr  error
	Removed   bool
	History   []domain.ApplyRecord
	RecordErr error
}

func strptr(s string) *string { return &s }

func (m *MockRepo) TargetPath() string { return "out/build.zig" }
func (m *MockRepo) BackupPath() string { return "out/build.zig.bak" }
func (m *MockRepo) TargetExists() bool { return m.Target != nil }
func (m *MockRepo) BackupExists() bool { return m.Backup != nil }

func (m *MockRepo) RotateToBackup() error {
	if m.Target == nil {
		return errors.New("no target to rotate")
	}
	m.Backup = m.Target
	m.Target = nil
	return nil
}

func (m *MockRepo) ReadBackup() (string, error) {
	if m.Backup == nil {
		return "", errors.New("no backup")
	}
	return *m.Backup, nil
}

func (m *MockRepo) WriteTarget(text string) error {
	if m.WriteErr != nil {
		// Simulate a partial write left on disk.
		m.Target = strptr(text[:len(text)/2])
		return m.WriteErr
	}
	m.Target = strptr(text)
	return nil
}

func (m *MockRepo) RemoveTarget() error {
	m.Target = nil
	m.Removed = true
	return nil
}

func (m *MockRepo) RecordApply(rec domain.ApplyRecord) error {
	if m.RecordErr != nil {
		return m.RecordErr
	}
	m.History = append(m.History, rec)
	return nil
}

func (m *MockRepo) LoadHistory() ([]domain.ApplyRecord, error) {
	return m.History, nil
}
